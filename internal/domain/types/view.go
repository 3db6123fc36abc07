package types

import "slices"

// FilterKind names how a filtered view selects entities.
type FilterKind string

const (
	FilterAll      FilterKind = ""
	FilterKeywords FilterKind = "keywords"
	FilterTag      FilterKind = "tag"
	FilterCustomer FilterKind = "customer"
)

// Filter describes a view predicate in a form that can be stored and rebuilt.
type Filter struct {
	Kind FilterKind
	Args []string
}

// Equal reports whether both filters select the same way.
func (f Filter) Equal(other Filter) bool {
	return f.Kind == other.Kind && slices.Equal(f.Args, other.Args)
}

// ViewState is the active filter of each list. It is kept between runs so that an
// index typed by the user refers to the list last shown.
type ViewState struct {
	Contacts Filter
	Trips    Filter
}

// Equal reports whether both states hold equal filters.
func (v ViewState) Equal(other ViewState) bool {
	return v.Contacts.Equal(other.Contacts) && v.Trips.Equal(other.Trips)
}
