package types

import "strings"

// Constraint messages shown to users when a field fails validation.
const (
	NameConstraints = "names should only contain letters, digits, spaces, '.', ''' and '-', " +
		"and must start with a letter or digit"
	PhoneConstraints   = "phone numbers should only contain digits, and be at least 3 digits long"
	EmailConstraints   = "emails should be of the format local-part@domain"
	AddressConstraints = "addresses can take any values, but must not be blank"
	TagConstraints     = "tags must be either 'customer' or 'service'"
	TextConstraints    = "this field can take any value, but must not be blank"
	DateConstraints    = "dates should be of the format YYYY-MM-DD and be a real calendar date"
)

// DateLayout is the canonical text form of a TripDate.
const DateLayout = "2006-01-02"

// TagCustomer and TagService are the only accepted tag values.
const (
	TagCustomer = "customer"
	TagService  = "service"
)

// Name is a validated person name.
type Name struct{ value string }

// NewName trims s and validates it as a person name.
func NewName(s string) (Name, error) {
	s = strings.TrimSpace(s)
	if err := checkField("name", s, "required,entityname", NameConstraints); err != nil {
		return Name{}, err
	}
	return Name{value: s}, nil
}

func (n Name) String() string { return n.value }

// IsZero reports whether n was never set.
func (n Name) IsZero() bool { return n.value == "" }

// Phone is a validated phone number.
type Phone struct{ value string }

func NewPhone(s string) (Phone, error) {
	s = strings.TrimSpace(s)
	if err := checkField("phone", s, "required,phone", PhoneConstraints); err != nil {
		return Phone{}, err
	}
	return Phone{value: s}, nil
}

func (p Phone) String() string { return p.value }
func (p Phone) IsZero() bool   { return p.value == "" }

// Email is a validated email address, stored as given.
type Email struct{ value string }

func NewEmail(s string) (Email, error) {
	s = strings.TrimSpace(s)
	if err := checkField("email", s, "required,email", EmailConstraints); err != nil {
		return Email{}, err
	}
	return Email{value: s}, nil
}

func (e Email) String() string { return e.value }
func (e Email) IsZero() bool   { return e.value == "" }

// EqualFold reports whether e and other are the same address ignoring case.
func (e Email) EqualFold(other Email) bool { return strings.EqualFold(e.value, other.value) }

// Address is a non-blank postal address.
type Address struct{ value string }

func NewAddress(s string) (Address, error) {
	s = strings.TrimSpace(s)
	if err := checkField("address", s, "nonblank", AddressConstraints); err != nil {
		return Address{}, err
	}
	return Address{value: s}, nil
}

func (a Address) String() string { return a.value }
func (a Address) IsZero() bool   { return a.value == "" }

// Tag classifies a contact as a customer, a service provider, or both.
type Tag struct{ value string }

func NewTag(s string) (Tag, error) {
	s = strings.TrimSpace(s)
	if err := checkField("tag", s, "oneof="+TagCustomer+" "+TagService, TagConstraints); err != nil {
		return Tag{}, err
	}
	return Tag{value: s}, nil
}

func (t Tag) String() string { return "[" + t.value + "]" }

// Value returns the bare tag name.
func (t Tag) Value() string { return t.value }

// Note is optional free text. Any value is accepted.
type Note struct{ value string }

func NewNote(s string) Note { return Note{value: strings.TrimSpace(s)} }

func (n Note) String() string { return n.value }
func (n Note) IsZero() bool   { return n.value == "" }

// TripName is a validated trip name.
type TripName struct{ value string }

func NewTripName(s string) (TripName, error) {
	s = strings.TrimSpace(s)
	if err := checkField("trip name", s, "required,entityname", NameConstraints); err != nil {
		return TripName{}, err
	}
	return TripName{value: s}, nil
}

func (n TripName) String() string { return n.value }
func (n TripName) IsZero() bool   { return n.value == "" }

// Accommodation is where a trip stays.
type Accommodation struct{ value string }

func NewAccommodation(s string) (Accommodation, error) {
	s = strings.TrimSpace(s)
	if err := checkField("accommodation", s, "nonblank", TextConstraints); err != nil {
		return Accommodation{}, err
	}
	return Accommodation{value: s}, nil
}

func (a Accommodation) String() string { return a.value }
func (a Accommodation) IsZero() bool   { return a.value == "" }

// Itinerary describes what a trip does.
type Itinerary struct{ value string }

func NewItinerary(s string) (Itinerary, error) {
	s = strings.TrimSpace(s)
	if err := checkField("itinerary", s, "nonblank", TextConstraints); err != nil {
		return Itinerary{}, err
	}
	return Itinerary{value: s}, nil
}

func (i Itinerary) String() string { return i.value }
func (i Itinerary) IsZero() bool   { return i.value == "" }

// TripDate is a calendar date kept in DateLayout form.
type TripDate struct{ value string }

func NewTripDate(s string) (TripDate, error) {
	s = strings.TrimSpace(s)
	if err := checkField("date", s, "required,datetime="+DateLayout, DateConstraints); err != nil {
		return TripDate{}, err
	}
	return TripDate{value: s}, nil
}

func (d TripDate) String() string { return d.value }
func (d TripDate) IsZero() bool   { return d.value == "" }
