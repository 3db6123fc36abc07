package store

import (
	"errors"
	"fmt"

	"travelbook/internal/domain"
	"travelbook/internal/domain/types"
)

// contactRecord is the stored form of a contact.
type contactRecord struct {
	Name    string   `json:"name"`
	Phone   string   `json:"phone"`
	Email   string   `json:"email"`
	Address string   `json:"address"`
	Tags    []string `json:"tags,omitempty"`
	Note    string   `json:"note,omitempty"`
}

func newContactRecord(c domain.Contact) contactRecord {
	tags := c.Tags()
	rec := contactRecord{
		Name:    c.Name().String(),
		Phone:   c.Phone().String(),
		Email:   c.Email().String(),
		Address: c.Address().String(),
		Note:    c.Note().String(),
	}
	for _, t := range tags {
		rec.Tags = append(rec.Tags, t.Value())
	}
	return rec
}

func (r contactRecord) toDomain() (domain.Contact, error) {
	name, err := types.NewName(r.Name)
	if err != nil {
		return domain.Contact{}, err
	}
	phone, err := types.NewPhone(r.Phone)
	if err != nil {
		return domain.Contact{}, err
	}
	email, err := types.NewEmail(r.Email)
	if err != nil {
		return domain.Contact{}, err
	}
	address, err := types.NewAddress(r.Address)
	if err != nil {
		return domain.Contact{}, err
	}
	tags := make([]domain.Tag, 0, len(r.Tags))
	for _, s := range r.Tags {
		tag, err := types.NewTag(s)
		if err != nil {
			return domain.Contact{}, err
		}
		tags = append(tags, tag)
	}
	return types.NewContact(name, phone, email, address, tags, types.NewNote(r.Note))
}

// tripRecord is the stored form of a trip.
type tripRecord struct {
	Name          string   `json:"name"`
	Accommodation string   `json:"accommodation"`
	Itinerary     string   `json:"itinerary"`
	Date          string   `json:"date"`
	Customers     []string `json:"customers,omitempty"`
	Note          string   `json:"note,omitempty"`
}

func newTripRecord(t domain.Trip) tripRecord {
	rec := tripRecord{
		Name:          t.Name().String(),
		Accommodation: t.Accommodation().String(),
		Itinerary:     t.Itinerary().String(),
		Date:          t.Date().String(),
		Note:          t.Note().String(),
	}
	for _, n := range t.CustomerNames() {
		rec.Customers = append(rec.Customers, n.String())
	}
	return rec
}

func (r tripRecord) toDomain() (domain.Trip, error) {
	name, err := types.NewTripName(r.Name)
	if err != nil {
		return domain.Trip{}, err
	}
	acc, err := types.NewAccommodation(r.Accommodation)
	if err != nil {
		return domain.Trip{}, err
	}
	itinerary, err := types.NewItinerary(r.Itinerary)
	if err != nil {
		return domain.Trip{}, err
	}
	date, err := types.NewTripDate(r.Date)
	if err != nil {
		return domain.Trip{}, err
	}
	customers := make([]domain.Name, 0, len(r.Customers))
	for _, s := range r.Customers {
		n, err := types.NewName(s)
		if err != nil {
			return domain.Trip{}, err
		}
		customers = append(customers, n)
	}
	return types.NewTrip(name, acc, itinerary, date, customers, types.NewNote(r.Note))
}

// contactsFile and tripsFile are the on-disk document shapes.
type contactsFile struct {
	Contacts []contactRecord `json:"contacts"`
}

type tripsFile struct {
	Trips []tripRecord `json:"trips"`
}

// ErrInvalidRecord wraps any stored record that fails domain validation.
var ErrInvalidRecord = errors.New("invalid stored record")

func decodeContacts(doc contactsFile) ([]domain.Contact, error) {
	out := make([]domain.Contact, 0, len(doc.Contacts))
	for i, rec := range doc.Contacts {
		c, err := rec.toDomain()
		if err != nil {
			return nil, fmt.Errorf("%w: contact %d: %w", ErrInvalidRecord, i+1, err)
		}
		out = append(out, c)
	}
	return out, nil
}

func decodeTrips(doc tripsFile) ([]domain.Trip, error) {
	out := make([]domain.Trip, 0, len(doc.Trips))
	for i, rec := range doc.Trips {
		t, err := rec.toDomain()
		if err != nil {
			return nil, fmt.Errorf("%w: trip %d: %w", ErrInvalidRecord, i+1, err)
		}
		out = append(out, t)
	}
	return out, nil
}

// filterRecord is the stored form of a domain.Filter.
type filterRecord struct {
	Kind string   `json:"kind,omitempty"`
	Args []string `json:"args,omitempty"`
}

type viewFile struct {
	Contacts filterRecord `json:"contacts"`
	Trips    filterRecord `json:"trips"`
}

func newViewFile(v domain.ViewState) viewFile {
	return viewFile{
		Contacts: filterRecord{Kind: string(v.Contacts.Kind), Args: v.Contacts.Args},
		Trips:    filterRecord{Kind: string(v.Trips.Kind), Args: v.Trips.Args},
	}
}

// toDomain does not check the kinds; the caller rebuilds predicates and rejects unknown ones.
func (f viewFile) toDomain() domain.ViewState {
	return domain.ViewState{
		Contacts: domain.Filter{Kind: domain.FilterKind(f.Contacts.Kind), Args: f.Contacts.Args},
		Trips:    domain.Filter{Kind: domain.FilterKind(f.Trips.Kind), Args: f.Trips.Args},
	}
}
