package interfaces

import domaintypes "travelbook/internal/domain/types"

// Model is what commands use to query and mutate contacts and trips.
type Model interface {
	// Contacts
	HasContact(contact domaintypes.Contact) bool
	AddContact(contact domaintypes.Contact) error
	SetContact(target, edited domaintypes.Contact) error
	DeleteContact(contact domaintypes.Contact) error
	UpdateFilteredContactList(predicate domaintypes.Predicate[domaintypes.Contact]) error
	FilteredContactList() domaintypes.ReadOnlyList[domaintypes.Contact]

	// Trips
	HasTrip(trip domaintypes.Trip) bool
	AddTrip(trip domaintypes.Trip) error
	SetTrip(target, edited domaintypes.Trip) error
	DeleteTrip(trip domaintypes.Trip) error
	UpdateFilteredTripList(predicate domaintypes.Predicate[domaintypes.Trip]) error
	FilteredTripList() domaintypes.ReadOnlyList[domaintypes.Trip]

	// Whole books
	AddressBook() ReadOnlyAddressBook
	TripBook() ReadOnlyTripBook
	SetAddressBook(book ReadOnlyAddressBook) error
	SetTripBook(book ReadOnlyTripBook) error
}
