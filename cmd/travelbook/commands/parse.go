package commands

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"travelbook/internal/domain"
	"travelbook/internal/domain/types"
)

// parseIndex reads a 1-based index argument.
func parseIndex(arg string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil || n < 1 {
		return 0, fmt.Errorf("index must be a positive integer, got %q", arg)
	}
	return n, nil
}

// pick returns the item at a 1-based index of list, or invalid as the error.
func pick[T any](list domain.ReadOnlyList[T], index int, invalid string) (T, error) {
	if index > list.Len() {
		var zero T
		return zero, errors.New(invalid)
	}
	return list.At(index - 1), nil
}

func parseTags(values []string) ([]domain.Tag, error) {
	tags := make([]domain.Tag, 0, len(values))
	for _, v := range values {
		tag, err := types.NewTag(v)
		if err != nil {
			return nil, err
		}
		tags = append(tags, tag)
	}
	return tags, nil
}

func parseNames(values []string) ([]domain.Name, error) {
	names := make([]domain.Name, 0, len(values))
	for _, v := range values {
		n, err := types.NewName(v)
		if err != nil {
			return nil, err
		}
		names = append(names, n)
	}
	return names, nil
}

// contactFields are the raw flag values of a contact.
type contactFields struct {
	name, phone, email, address, note string
	tags                              []string
}

func (f contactFields) build() (domain.Contact, error) {
	name, err := types.NewName(f.name)
	if err != nil {
		return domain.Contact{}, err
	}
	phone, err := types.NewPhone(f.phone)
	if err != nil {
		return domain.Contact{}, err
	}
	email, err := types.NewEmail(f.email)
	if err != nil {
		return domain.Contact{}, err
	}
	address, err := types.NewAddress(f.address)
	if err != nil {
		return domain.Contact{}, err
	}
	tags, err := parseTags(f.tags)
	if err != nil {
		return domain.Contact{}, err
	}
	return types.NewContact(name, phone, email, address, tags, types.NewNote(f.note))
}

// fieldsOfContact returns c's values as raw fields, ready to be partially overwritten.
func fieldsOfContact(c domain.Contact) contactFields {
	f := contactFields{
		name:    c.Name().String(),
		phone:   c.Phone().String(),
		email:   c.Email().String(),
		address: c.Address().String(),
		note:    c.Note().String(),
	}
	for _, t := range c.Tags() {
		f.tags = append(f.tags, t.Value())
	}
	return f
}

// tripFields are the raw flag values of a trip.
type tripFields struct {
	name, accommodation, itinerary, date, note string
	customers                                  []string
}

func (f tripFields) build() (domain.Trip, error) {
	name, err := types.NewTripName(f.name)
	if err != nil {
		return domain.Trip{}, err
	}
	acc, err := types.NewAccommodation(f.accommodation)
	if err != nil {
		return domain.Trip{}, err
	}
	itinerary, err := types.NewItinerary(f.itinerary)
	if err != nil {
		return domain.Trip{}, err
	}
	date, err := types.NewTripDate(f.date)
	if err != nil {
		return domain.Trip{}, err
	}
	customers, err := parseNames(f.customers)
	if err != nil {
		return domain.Trip{}, err
	}
	return types.NewTrip(name, acc, itinerary, date, customers, types.NewNote(f.note))
}

func fieldsOfTrip(t domain.Trip) tripFields {
	f := tripFields{
		name:          t.Name().String(),
		accommodation: t.Accommodation().String(),
		itinerary:     t.Itinerary().String(),
		date:          t.Date().String(),
		note:          t.Note().String(),
	}
	for _, n := range t.CustomerNames() {
		f.customers = append(f.customers, n.String())
	}
	return f
}
