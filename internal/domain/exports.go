package domain

import (
	interfaces "travelbook/internal/domain/interfaces"
	types "travelbook/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	Contact       = types.Contact
	Trip          = types.Trip
	Name          = types.Name
	Phone         = types.Phone
	Email         = types.Email
	Address       = types.Address
	Tag           = types.Tag
	Note          = types.Note
	TripName      = types.TripName
	Accommodation = types.Accommodation
	Itinerary     = types.Itinerary
	TripDate      = types.TripDate
	Snapshot      = types.Snapshot
	FieldError    = types.FieldError
	Filter        = types.Filter
	FilterKind    = types.FilterKind
	ViewState     = types.ViewState
)

// Generic aliases for read-only views and predicates.
type (
	ReadOnlyList[T any] = types.ReadOnlyList[T]
	Predicate[T any]    = types.Predicate[T]
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	ReadOnlyAddressBook = interfaces.ReadOnlyAddressBook
	ReadOnlyTripBook    = interfaces.ReadOnlyTripBook
	Model               = interfaces.Model
	SnapshotStore       = interfaces.SnapshotStore
	ViewStore           = interfaces.ViewStore
)

// Error sentinels, re-exported so callers can errors.Is against domain.*.
var (
	ErrDuplicateEntity  = types.ErrDuplicateEntity
	ErrEntityNotFound   = types.ErrEntityNotFound
	ErrInvalidArgument  = types.ErrInvalidArgument
	ErrDuplicateContact = types.ErrDuplicateContact
	ErrContactNotFound  = types.ErrContactNotFound
	ErrDuplicateTrip    = types.ErrDuplicateTrip
	ErrTripNotFound     = types.ErrTripNotFound
)

// Accepted tag values.
const (
	TagCustomer = types.TagCustomer
	TagService  = types.TagService
)

// Filter kinds.
const (
	FilterAll      = types.FilterAll
	FilterKeywords = types.FilterKeywords
	FilterTag      = types.FilterTag
	FilterCustomer = types.FilterCustomer
)
