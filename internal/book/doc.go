// Package book holds the two aggregate roots: AddressBook for contacts and TripBook for
// trips. Each owns exactly one unique list and is the only code that mutates it.
package book
