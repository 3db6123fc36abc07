// Package fixtures provides contact and trip factories for tests.
//
// Each factory starts from sensible defaults and accepts option functions:
//
//	amy := fixtures.Contact(t, fixtures.WithName("Amy"), fixtures.WithEmail("amy@x.com"))
//	paris := fixtures.Trip(t, fixtures.WithTripName("PARIS 2025"))
//
// Typical data sets mirror what a small agency would hold:
//
//	contacts := fixtures.TypicalContacts(t)
//	trips := fixtures.TypicalTrips(t)
package fixtures
