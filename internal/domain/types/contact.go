package types

import (
	"fmt"
	"slices"
	"strings"
)

// Contact is a person or service provider in the address book. Contacts are immutable;
// edits build a new Contact that replaces the old one.
type Contact struct {
	// Identity fields
	name    Name
	phone   Phone
	email   Email
	address Address

	// Data fields
	tags []Tag // sorted, no repeats
	note Note
}

// NewContact builds a contact. Every field except note is required.
func NewContact(name Name, phone Phone, email Email, address Address, tags []Tag, note Note) (Contact, error) {
	if name.IsZero() || phone.IsZero() || email.IsZero() || address.IsZero() {
		return Contact{}, fmt.Errorf("contact requires name, phone, email and address: %w", ErrInvalidArgument)
	}
	return Contact{
		name:    name,
		phone:   phone,
		email:   email,
		address: address,
		tags:    normalizeTags(tags),
		note:    note,
	}, nil
}

func (c Contact) Name() Name       { return c.name }
func (c Contact) Phone() Phone     { return c.phone }
func (c Contact) Email() Email     { return c.email }
func (c Contact) Address() Address { return c.address }
func (c Contact) Note() Note       { return c.note }

// Tags returns a copy of the tag set in sorted order.
func (c Contact) Tags() []Tag { return slices.Clone(c.tags) }

// HasTag reports whether the contact carries the tag named value.
func (c Contact) HasTag(value string) bool {
	return slices.ContainsFunc(c.tags, func(t Tag) bool { return t.value == value })
}

// IsCustomer and IsService report the two accepted tags.
func (c Contact) IsCustomer() bool { return c.HasTag(TagCustomer) }
func (c Contact) IsService() bool  { return c.HasTag(TagService) }

// IsZero reports whether c is the zero Contact.
func (c Contact) IsZero() bool { return c.name.IsZero() && c.email.IsZero() }

// Same reports whether both contacts have the same email, ignoring case.
// This is the weaker notion of equality used for duplicate detection.
func (c Contact) Same(other Contact) bool {
	if c.IsZero() || other.IsZero() {
		return false
	}
	return c.email.EqualFold(other.email)
}

// Equal reports whether every identity and data field matches.
func (c Contact) Equal(other Contact) bool {
	return c.name == other.name &&
		c.phone == other.phone &&
		c.email == other.email &&
		c.address == other.address &&
		slices.Equal(c.tags, other.tags) &&
		c.note == other.note
}

func (c Contact) String() string {
	tags := make([]string, len(c.tags))
	for i, t := range c.tags {
		tags[i] = t.value
	}
	return fmt.Sprintf("Contact{name=%s, phone=%s, email=%s, address=%s, tags=[%s], note=%s}",
		c.name, c.phone, c.email, c.address, strings.Join(tags, ", "), c.note)
}

func normalizeTags(tags []Tag) []Tag {
	out := make([]Tag, 0, len(tags))
	for _, t := range tags {
		if t.value != "" {
			out = append(out, t)
		}
	}
	slices.SortFunc(out, func(a, b Tag) int { return strings.Compare(a.value, b.value) })
	return slices.Compact(out)
}
