package commands

import (
	"fmt"
	"strings"

	"travelbook/internal/domain"
)

// User visible messages.
const (
	msgInvalidContactIndex = "the contact index provided is invalid"
	msgInvalidTripIndex    = "the trip index provided is invalid"
	msgContactsListed      = "%d contacts listed!"
	msgTripsListed         = "%d trips listed!"
	msgNothingToEdit       = "at least one field to edit must be provided"

	msgContactAdded     = "New contact added: %s"
	msgContactEdited    = "Edited contact: %s"
	msgContactDeleted   = "Deleted contact: %s"
	msgDuplicateContact = "this contact already exists in the address book"

	msgTripAdded     = "New trip added: %s"
	msgTripEdited    = "Edited trip: %s"
	msgTripDeleted   = "Deleted trip: %s"
	msgDuplicateTrip = "this trip already exists in the trip book"

	msgCleared = "Address book and trip book have been cleared!"
)

// formatContact renders c for display.
func formatContact(c domain.Contact) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s; Phone: %s; Email: %s; Address: %s; Tags: ", c.Name(), c.Phone(), c.Email(), c.Address())
	for _, t := range c.Tags() {
		b.WriteString(t.String())
	}
	if !c.Note().IsZero() {
		fmt.Fprintf(&b, "; Note: %s", c.Note())
	}
	return b.String()
}

// formatTrip renders t for display.
func formatTrip(t domain.Trip) string {
	names := t.CustomerNames()
	customers := make([]string, len(names))
	for i, n := range names {
		customers[i] = n.String()
	}
	return fmt.Sprintf("%s; Accommodation: %s; Itinerary: %s; Date: %s; Customers: %s; Note: %s",
		t.Name(), t.Accommodation(), t.Itinerary(), t.Date(), strings.Join(customers, ", "), t.Note())
}
