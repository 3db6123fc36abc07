package model

import (
	"fmt"

	"go.uber.org/zap"

	"travelbook/internal/book"
	"travelbook/internal/domain"
)

// Manager implements domain.Model over one AddressBook and one TripBook.
type Manager struct {
	addressBook *book.AddressBook
	tripBook    *book.TripBook

	filteredContacts *FilteredList[domain.Contact]
	filteredTrips    *FilteredList[domain.Trip]

	log *zap.Logger
}

// New returns a Manager sharing ab and tb. Nil books start empty; a nil logger is a no-op.
func New(ab *book.AddressBook, tb *book.TripBook, log *zap.Logger) *Manager {
	if ab == nil {
		ab = book.NewAddressBook()
	}
	if tb == nil {
		tb = book.NewTripBook()
	}
	if log == nil {
		log = zap.NewNop()
	}
	log.Debug("initializing model",
		zap.Int("contacts", ab.Contacts().Len()),
		zap.Int("trips", tb.Trips().Len()),
	)
	return &Manager{
		addressBook:      ab,
		tripBook:         tb,
		filteredContacts: newFilteredList(ab.Contacts()),
		filteredTrips:    newFilteredList(tb.Trips()),
		log:              log,
	}
}

// ---------- Address book ----------

// AddressBook returns the shared address book, read-only.
func (m *Manager) AddressBook() domain.ReadOnlyAddressBook { return m.addressBook }

// SetAddressBook replaces every contact with those from rb. The contact filter is kept.
func (m *Manager) SetAddressBook(rb domain.ReadOnlyAddressBook) error {
	if err := m.addressBook.ResetData(rb); err != nil {
		return err
	}
	m.log.Debug("address book replaced", zap.Int("contacts", m.addressBook.Contacts().Len()))
	return nil
}

func (m *Manager) HasContact(c domain.Contact) bool { return m.addressBook.HasContact(c) }

func (m *Manager) AddContact(c domain.Contact) error {
	if err := m.addressBook.AddContact(c); err != nil {
		return err
	}
	m.log.Debug("contact added", zap.Stringer("email", c.Email()))
	return nil
}

func (m *Manager) SetContact(target, edited domain.Contact) error {
	if err := m.addressBook.SetContact(target, edited); err != nil {
		return err
	}
	m.log.Debug("contact replaced",
		zap.Stringer("from", target.Email()),
		zap.Stringer("to", edited.Email()),
	)
	return nil
}

func (m *Manager) DeleteContact(c domain.Contact) error {
	if err := m.addressBook.RemoveContact(c); err != nil {
		return err
	}
	m.log.Debug("contact deleted", zap.Stringer("email", c.Email()))
	return nil
}

// FilteredContactList returns the live filtered view of contacts.
func (m *Manager) FilteredContactList() domain.ReadOnlyList[domain.Contact] {
	return m.filteredContacts
}

// UpdateFilteredContactList narrows the contact view to contacts matching p.
func (m *Manager) UpdateFilteredContactList(p domain.Predicate[domain.Contact]) error {
	if p == nil {
		return fmt.Errorf("contact predicate: %w", domain.ErrInvalidArgument)
	}
	m.filteredContacts.setPredicate(p)
	return nil
}

// ---------- Trip book ----------

// TripBook returns the shared trip book, read-only.
func (m *Manager) TripBook() domain.ReadOnlyTripBook { return m.tripBook }

// SetTripBook replaces every trip with those from rb. The trip filter is kept.
func (m *Manager) SetTripBook(rb domain.ReadOnlyTripBook) error {
	if err := m.tripBook.ResetData(rb); err != nil {
		return err
	}
	m.log.Debug("trip book replaced", zap.Int("trips", m.tripBook.Trips().Len()))
	return nil
}

func (m *Manager) HasTrip(t domain.Trip) bool { return m.tripBook.HasTrip(t) }

func (m *Manager) AddTrip(t domain.Trip) error {
	if err := m.tripBook.AddTrip(t); err != nil {
		return err
	}
	m.log.Debug("trip added", zap.Stringer("name", t.Name()))
	return nil
}

func (m *Manager) SetTrip(target, edited domain.Trip) error {
	if err := m.tripBook.SetTrip(target, edited); err != nil {
		return err
	}
	m.log.Debug("trip replaced",
		zap.Stringer("from", target.Name()),
		zap.Stringer("to", edited.Name()),
	)
	return nil
}

func (m *Manager) DeleteTrip(t domain.Trip) error {
	if err := m.tripBook.RemoveTrip(t); err != nil {
		return err
	}
	m.log.Debug("trip deleted", zap.Stringer("name", t.Name()))
	return nil
}

// FilteredTripList returns the live filtered view of trips.
func (m *Manager) FilteredTripList() domain.ReadOnlyList[domain.Trip] { return m.filteredTrips }

// UpdateFilteredTripList narrows the trip view to trips matching p.
func (m *Manager) UpdateFilteredTripList(p domain.Predicate[domain.Trip]) error {
	if p == nil {
		return fmt.Errorf("trip predicate: %w", domain.ErrInvalidArgument)
	}
	m.filteredTrips.setPredicate(p)
	return nil
}

// Compile-time assertion that Manager implements domain.Model.
var _ domain.Model = (*Manager)(nil)
