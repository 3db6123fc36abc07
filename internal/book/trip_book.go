package book

import (
	"fmt"
	"slices"

	"travelbook/internal/domain"
	"travelbook/internal/domain/types"
	"travelbook/internal/uniquelist"
)

// TripBook owns the trip list. Duplicates are detected with Trip.Same.
type TripBook struct {
	trips uniquelist.List[domain.Trip]
}

// NewTripBook returns an empty trip book.
func NewTripBook() *TripBook { return &TripBook{} }

// NewTripBookFrom returns a trip book holding a copy of src's trips.
func NewTripBookFrom(src domain.ReadOnlyTripBook) (*TripBook, error) {
	tb := NewTripBook()
	if err := tb.ResetData(src); err != nil {
		return nil, err
	}
	return tb, nil
}

// SetTrips replaces all trips. trips must not contain duplicates.
func (tb *TripBook) SetTrips(trips []domain.Trip) error {
	if err := tb.trips.SetAll(trips); err != nil {
		return fmt.Errorf("set trips: %w", tripErr(err))
	}
	return nil
}

// ResetData replaces all trips with those of src.
func (tb *TripBook) ResetData(src domain.ReadOnlyTripBook) error {
	if src == nil {
		return fmt.Errorf("reset trip book: %w", domain.ErrInvalidArgument)
	}
	return tb.SetTrips(src.Trips().Slice())
}

// HasTrip reports whether a trip with the same name as t is present.
func (tb *TripBook) HasTrip(t domain.Trip) bool { return tb.trips.Contains(t) }

// AddTrip appends t. It must not already be present.
func (tb *TripBook) AddTrip(t domain.Trip) error {
	if err := tb.trips.Add(t); err != nil {
		return fmt.Errorf("add trip %q: %w", t.Name(), tripErr(err))
	}
	return nil
}

// SetTrip replaces target with edited in place.
func (tb *TripBook) SetTrip(target, edited domain.Trip) error {
	if err := tb.trips.Set(target, edited); err != nil {
		return fmt.Errorf("set trip %q: %w", target.Name(), tripErr(err))
	}
	return nil
}

// RemoveTrip removes the trip equal to t.
func (tb *TripBook) RemoveTrip(t domain.Trip) error {
	if err := tb.trips.Remove(t); err != nil {
		return fmt.Errorf("remove trip %q: %w", t.Name(), tripErr(err))
	}
	return nil
}

// Trips returns a live read-only view of the trips.
func (tb *TripBook) Trips() domain.ReadOnlyList[domain.Trip] { return tb.trips.View() }

// Equal reports whether other holds equal trips in the same order.
func (tb *TripBook) Equal(other domain.ReadOnlyTripBook) bool {
	if other == nil {
		return false
	}
	if o, ok := other.(*TripBook); ok {
		return o != nil && tb.trips.Equal(&o.trips)
	}
	return slices.EqualFunc(tb.trips.View().Slice(), other.Trips().Slice(), domain.Trip.Equal)
}

func (tb *TripBook) String() string {
	return fmt.Sprintf("TripBook{trips=%d}", tb.trips.View().Len())
}

// tripErr narrows list errors to their trip-specific sentinel.
func tripErr(err error) error {
	switch err {
	case types.ErrDuplicateEntity:
		return domain.ErrDuplicateTrip
	case types.ErrEntityNotFound:
		return domain.ErrTripNotFound
	}
	return err
}

var _ domain.ReadOnlyTripBook = (*TripBook)(nil)
