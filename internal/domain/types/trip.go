package types

import (
	"fmt"
	"slices"
	"strings"
)

// Trip is a planned trip in the trip book. Customer names refer to contacts by value only;
// renaming or deleting a contact does not touch trips.
type Trip struct {
	// Identity fields
	name TripName

	// Data fields
	accommodation Accommodation
	itinerary     Itinerary
	date          TripDate
	customers     []Name // sorted, no repeats
	note          Note
}

// NewTrip builds a trip. Every field except customers and note is required.
func NewTrip(
	name TripName,
	accommodation Accommodation,
	itinerary Itinerary,
	date TripDate,
	customers []Name,
	note Note,
) (Trip, error) {
	if name.IsZero() || accommodation.IsZero() || itinerary.IsZero() || date.IsZero() {
		return Trip{}, fmt.Errorf("trip requires name, accommodation, itinerary and date: %w", ErrInvalidArgument)
	}
	return Trip{
		name:          name,
		accommodation: accommodation,
		itinerary:     itinerary,
		date:          date,
		customers:     normalizeNames(customers),
		note:          note,
	}, nil
}

func (t Trip) Name() TripName               { return t.name }
func (t Trip) Accommodation() Accommodation { return t.accommodation }
func (t Trip) Itinerary() Itinerary         { return t.itinerary }
func (t Trip) Date() TripDate               { return t.date }
func (t Trip) Note() Note                   { return t.note }

// CustomerNames returns a copy of the customer names in sorted order.
func (t Trip) CustomerNames() []Name { return slices.Clone(t.customers) }

// HasCustomer reports whether name is booked on the trip, ignoring case.
func (t Trip) HasCustomer(name string) bool {
	return slices.ContainsFunc(t.customers, func(n Name) bool { return strings.EqualFold(n.value, name) })
}

// IsZero reports whether t is the zero Trip.
func (t Trip) IsZero() bool { return t.name.IsZero() }

// Same reports whether both trips have the same name.
func (t Trip) Same(other Trip) bool {
	if t.IsZero() || other.IsZero() {
		return false
	}
	return t.name == other.name
}

// Equal reports whether every field matches.
func (t Trip) Equal(other Trip) bool {
	return t.name == other.name &&
		t.accommodation == other.accommodation &&
		t.itinerary == other.itinerary &&
		t.date == other.date &&
		slices.Equal(t.customers, other.customers) &&
		t.note == other.note
}

func (t Trip) String() string {
	names := make([]string, len(t.customers))
	for i, n := range t.customers {
		names[i] = n.value
	}
	return fmt.Sprintf("Trip{name=%s, accommodation=%s, itinerary=%s, date=%s, customers=[%s], note=%s}",
		t.name, t.accommodation, t.itinerary, t.date, strings.Join(names, ", "), t.note)
}

func normalizeNames(names []Name) []Name {
	out := make([]Name, 0, len(names))
	for _, n := range names {
		if !n.IsZero() {
			out = append(out, n)
		}
	}
	slices.SortFunc(out, func(a, b Name) int { return strings.Compare(a.value, b.value) })
	return slices.Compact(out)
}
