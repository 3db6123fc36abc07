// Package store provides file-based persistence for travelbook's two books.
//
// BookFileStore implements domain.SnapshotStore, serialising contacts and trips as JSON
// under the configured home directory. When a passphrase is configured each file is
// sealed in an encrypted envelope instead of being written in the clear. All methods are
// concurrency-safe via internal locking, and every write goes through a temp file that
// is renamed over the target.
//
// Files:
//   - contacts.json / contacts.enc
//   - trips.json / trips.enc
//
// Records are decoded through the domain constructors, so a stored value that no longer
// validates fails the load rather than entering the books.
package store
