// Package app wires application dependencies for the CLI.
//
// It loads Config, builds the logger and the snapshot store, loads the stored books
// into a model, and hands the result to commands via App. After a command runs, Commit
// saves the books only when their contents changed.
package app
