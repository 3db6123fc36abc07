package model

import (
	"slices"
	"strings"

	"travelbook/internal/domain"
)

// ContactNameContainsKeywords matches contacts whose name contains any keyword as a
// whole word, ignoring case.
func ContactNameContainsKeywords(keywords []string) domain.Predicate[domain.Contact] {
	return func(c domain.Contact) bool {
		return containsAnyWord(c.Name().String(), keywords)
	}
}

// ContactHasTag matches contacts carrying the given tag value.
func ContactHasTag(tag string) domain.Predicate[domain.Contact] {
	switch tag {
	case domain.TagCustomer:
		return domain.Contact.IsCustomer
	case domain.TagService:
		return domain.Contact.IsService
	}
	return func(c domain.Contact) bool { return c.HasTag(tag) }
}

// TripNameContainsKeywords matches trips whose name contains any keyword as a whole
// word, ignoring case.
func TripNameContainsKeywords(keywords []string) domain.Predicate[domain.Trip] {
	return func(t domain.Trip) bool {
		return containsAnyWord(t.Name().String(), keywords)
	}
}

// TripHasCustomer matches trips that book the named customer.
func TripHasCustomer(name string) domain.Predicate[domain.Trip] {
	return func(t domain.Trip) bool { return t.HasCustomer(name) }
}

func containsAnyWord(sentence string, keywords []string) bool {
	words := strings.Fields(sentence)
	return slices.ContainsFunc(keywords, func(k string) bool {
		return slices.ContainsFunc(words, func(w string) bool { return strings.EqualFold(w, k) })
	})
}
