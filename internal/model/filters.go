package model

import (
	"fmt"

	"travelbook/internal/domain"
)

// ContactFilter builds the contact predicate described by f.
func ContactFilter(f domain.Filter) (domain.Predicate[domain.Contact], error) {
	switch f.Kind {
	case domain.FilterAll:
		return ShowAll[domain.Contact], nil
	case domain.FilterKeywords:
		if len(f.Args) == 0 {
			return nil, fmt.Errorf("keyword filter without keywords: %w", domain.ErrInvalidArgument)
		}
		return ContactNameContainsKeywords(f.Args), nil
	case domain.FilterTag:
		if len(f.Args) != 1 {
			return nil, fmt.Errorf("tag filter takes one tag, got %d: %w", len(f.Args), domain.ErrInvalidArgument)
		}
		return ContactHasTag(f.Args[0]), nil
	}
	return nil, fmt.Errorf("contact filter %q: %w", f.Kind, domain.ErrInvalidArgument)
}

// TripFilter builds the trip predicate described by f.
func TripFilter(f domain.Filter) (domain.Predicate[domain.Trip], error) {
	switch f.Kind {
	case domain.FilterAll:
		return ShowAll[domain.Trip], nil
	case domain.FilterKeywords:
		if len(f.Args) == 0 {
			return nil, fmt.Errorf("keyword filter without keywords: %w", domain.ErrInvalidArgument)
		}
		return TripNameContainsKeywords(f.Args), nil
	case domain.FilterCustomer:
		if len(f.Args) != 1 {
			return nil, fmt.Errorf("customer filter takes one name, got %d: %w", len(f.Args), domain.ErrInvalidArgument)
		}
		return TripHasCustomer(f.Args[0]), nil
	}
	return nil, fmt.Errorf("trip filter %q: %w", f.Kind, domain.ErrInvalidArgument)
}
