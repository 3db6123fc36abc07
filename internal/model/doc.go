// Package model is the single point of access the command layer uses to query and
// mutate contacts and trips.
//
// A Manager shares one AddressBook and one TripBook for the whole session and keeps a
// filtered view over each. Filtered views are derived read models: they hold the
// predicate and a reference to the backing list, and recompute lazily when the list
// version or the predicate changes. Views handed out earlier stay valid; they see every
// mutation on the next read.
package model
