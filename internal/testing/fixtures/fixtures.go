package fixtures

import (
	"testing"

	"travelbook/internal/domain/types"
)

// ContactOpts customizes contact creation.
type ContactOpts struct {
	Name    string
	Phone   string
	Email   string
	Address string
	Tags    []string
	Note    string
}

func WithName(name string) func(*ContactOpts)       { return func(o *ContactOpts) { o.Name = name } }
func WithPhone(phone string) func(*ContactOpts)     { return func(o *ContactOpts) { o.Phone = phone } }
func WithEmail(email string) func(*ContactOpts)     { return func(o *ContactOpts) { o.Email = email } }
func WithAddress(address string) func(*ContactOpts) { return func(o *ContactOpts) { o.Address = address } }
func WithTags(tags ...string) func(*ContactOpts)    { return func(o *ContactOpts) { o.Tags = tags } }
func WithNote(note string) func(*ContactOpts)       { return func(o *ContactOpts) { o.Note = note } }

// Contact builds a valid contact, failing the test on bad input.
func Contact(t testing.TB, opts ...func(*ContactOpts)) types.Contact {
	t.Helper()

	o := &ContactOpts{
		Name:    "Amy Bee",
		Phone:   "85355255",
		Email:   "amy@example.com",
		Address: "123, Jurong West Ave 6, #08-111",
		Tags:    []string{types.TagCustomer},
	}
	for _, fn := range opts {
		fn(o)
	}

	name, err := types.NewName(o.Name)
	must(t, err)
	phone, err := types.NewPhone(o.Phone)
	must(t, err)
	email, err := types.NewEmail(o.Email)
	must(t, err)
	address, err := types.NewAddress(o.Address)
	must(t, err)
	tags := make([]types.Tag, 0, len(o.Tags))
	for _, s := range o.Tags {
		tag, err := types.NewTag(s)
		must(t, err)
		tags = append(tags, tag)
	}

	c, err := types.NewContact(name, phone, email, address, tags, types.NewNote(o.Note))
	must(t, err)
	return c
}

// TripOpts customizes trip creation.
type TripOpts struct {
	Name          string
	Accommodation string
	Itinerary     string
	Date          string
	Customers     []string
	Note          string
}

func WithTripName(name string) func(*TripOpts)       { return func(o *TripOpts) { o.Name = name } }
func WithAccommodation(acc string) func(*TripOpts)   { return func(o *TripOpts) { o.Accommodation = acc } }
func WithItinerary(itinerary string) func(*TripOpts) { return func(o *TripOpts) { o.Itinerary = itinerary } }
func WithDate(date string) func(*TripOpts)           { return func(o *TripOpts) { o.Date = date } }
func WithCustomers(names ...string) func(*TripOpts)  { return func(o *TripOpts) { o.Customers = names } }
func WithTripNote(note string) func(*TripOpts)       { return func(o *TripOpts) { o.Note = note } }

// Trip builds a valid trip, failing the test on bad input.
func Trip(t testing.TB, opts ...func(*TripOpts)) types.Trip {
	t.Helper()

	o := &TripOpts{
		Name:          "PARIS 2025",
		Accommodation: "Hotel Lutetia",
		Itinerary:     "Louvre, Eiffel Tower, Versailles",
		Date:          "2025-06-01",
		Customers:     []string{"Amy Bee"},
	}
	for _, fn := range opts {
		fn(o)
	}

	name, err := types.NewTripName(o.Name)
	must(t, err)
	acc, err := types.NewAccommodation(o.Accommodation)
	must(t, err)
	itinerary, err := types.NewItinerary(o.Itinerary)
	must(t, err)
	date, err := types.NewTripDate(o.Date)
	must(t, err)
	customers := make([]types.Name, 0, len(o.Customers))
	for _, s := range o.Customers {
		n, err := types.NewName(s)
		must(t, err)
		customers = append(customers, n)
	}

	trip, err := types.NewTrip(name, acc, itinerary, date, customers, types.NewNote(o.Note))
	must(t, err)
	return trip
}

// TypicalContacts returns three distinct contacts in a fixed order.
func TypicalContacts(t testing.TB) []types.Contact {
	t.Helper()
	return []types.Contact{
		Contact(t, WithName("Alice Pauline"), WithEmail("alice@example.com"), WithPhone("94351253"),
			WithTags(types.TagCustomer)),
		Contact(t, WithName("Benson Meier"), WithEmail("benson@example.com"), WithPhone("98765432"),
			WithTags(types.TagService), WithNote("Runs the shuttle service")),
		Contact(t, WithName("Carl Kurz"), WithEmail("carl@example.com"), WithPhone("95352563"),
			WithTags(types.TagCustomer, types.TagService)),
	}
}

// TypicalTrips returns three distinct trips in a fixed order.
func TypicalTrips(t testing.TB) []types.Trip {
	t.Helper()
	return []types.Trip{
		Trip(t, WithTripName("PARIS 2025"), WithCustomers("Alice Pauline")),
		Trip(t, WithTripName("TOKYO 2026"), WithAccommodation("Park Hyatt"), WithItinerary("Shibuya, Asakusa"),
			WithDate("2026-03-20"), WithCustomers("Carl Kurz", "Alice Pauline")),
		Trip(t, WithTripName("ROME 2025"), WithAccommodation("Hotel Artemide"), WithItinerary("Colosseum"),
			WithDate("2025-09-10"), WithCustomers()),
	}
}

func must(t testing.TB, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("fixtures: %v", err)
	}
}
