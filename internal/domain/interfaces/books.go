package interfaces

import domaintypes "travelbook/internal/domain/types"

// ReadOnlyAddressBook exposes the contacts of an address book without mutation.
type ReadOnlyAddressBook interface {
	Contacts() domaintypes.ReadOnlyList[domaintypes.Contact]
}

// ReadOnlyTripBook exposes the trips of a trip book without mutation.
type ReadOnlyTripBook interface {
	Trips() domaintypes.ReadOnlyList[domaintypes.Trip]
}
