package book

import (
	"fmt"
	"slices"

	"travelbook/internal/domain"
	"travelbook/internal/domain/types"
	"travelbook/internal/uniquelist"
)

// AddressBook owns the contact list. Duplicates are detected with Contact.Same.
type AddressBook struct {
	contacts uniquelist.List[domain.Contact]
}

// NewAddressBook returns an empty address book.
func NewAddressBook() *AddressBook { return &AddressBook{} }

// NewAddressBookFrom returns an address book holding a copy of src's contacts.
func NewAddressBookFrom(src domain.ReadOnlyAddressBook) (*AddressBook, error) {
	ab := NewAddressBook()
	if err := ab.ResetData(src); err != nil {
		return nil, err
	}
	return ab, nil
}

// SetContacts replaces all contacts. contacts must not contain duplicates.
func (ab *AddressBook) SetContacts(contacts []domain.Contact) error {
	if err := ab.contacts.SetAll(contacts); err != nil {
		return fmt.Errorf("set contacts: %w", contactErr(err))
	}
	return nil
}

// ResetData replaces all contacts with those of src.
func (ab *AddressBook) ResetData(src domain.ReadOnlyAddressBook) error {
	if src == nil {
		return fmt.Errorf("reset address book: %w", domain.ErrInvalidArgument)
	}
	return ab.SetContacts(src.Contacts().Slice())
}

// HasContact reports whether a contact that is the same as c is present.
func (ab *AddressBook) HasContact(c domain.Contact) bool { return ab.contacts.Contains(c) }

// AddContact appends c. It must not already be present.
func (ab *AddressBook) AddContact(c domain.Contact) error {
	if err := ab.contacts.Add(c); err != nil {
		return fmt.Errorf("add contact %s: %w", c.Email(), contactErr(err))
	}
	return nil
}

// SetContact replaces target with edited in place.
func (ab *AddressBook) SetContact(target, edited domain.Contact) error {
	if err := ab.contacts.Set(target, edited); err != nil {
		return fmt.Errorf("set contact %s: %w", target.Email(), contactErr(err))
	}
	return nil
}

// RemoveContact removes the contact equal to c.
func (ab *AddressBook) RemoveContact(c domain.Contact) error {
	if err := ab.contacts.Remove(c); err != nil {
		return fmt.Errorf("remove contact %s: %w", c.Email(), contactErr(err))
	}
	return nil
}

// Contacts returns a live read-only view of the contacts.
func (ab *AddressBook) Contacts() domain.ReadOnlyList[domain.Contact] { return ab.contacts.View() }

// Equal reports whether other holds equal contacts in the same order.
func (ab *AddressBook) Equal(other domain.ReadOnlyAddressBook) bool {
	if other == nil {
		return false
	}
	if o, ok := other.(*AddressBook); ok {
		return o != nil && ab.contacts.Equal(&o.contacts)
	}
	return slices.EqualFunc(ab.contacts.View().Slice(), other.Contacts().Slice(), domain.Contact.Equal)
}

func (ab *AddressBook) String() string {
	return fmt.Sprintf("AddressBook{contacts=%d}", ab.contacts.View().Len())
}

// contactErr narrows list errors to their contact-specific sentinel.
func contactErr(err error) error {
	switch err {
	case types.ErrDuplicateEntity:
		return domain.ErrDuplicateContact
	case types.ErrEntityNotFound:
		return domain.ErrContactNotFound
	}
	return err
}

var _ domain.ReadOnlyAddressBook = (*AddressBook)(nil)
