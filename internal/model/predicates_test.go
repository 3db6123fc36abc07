package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travelbook/internal/domain"
	"travelbook/internal/model"
	"travelbook/internal/testing/fixtures"
)

func TestContactNameContainsKeywords(t *testing.T) {
	c := fixtures.Contact(t, fixtures.WithName("Alice Pauline"))

	assert.True(t, model.ContactNameContainsKeywords([]string{"alice"})(c))
	assert.True(t, model.ContactNameContainsKeywords([]string{"Bob", "PAULINE"})(c))
	// Whole words only.
	assert.False(t, model.ContactNameContainsKeywords([]string{"Ali"})(c))
	assert.False(t, model.ContactNameContainsKeywords(nil)(c))
}

func TestContactHasTag(t *testing.T) {
	c := fixtures.Contact(t, fixtures.WithTags(domain.TagService))
	assert.True(t, model.ContactHasTag(domain.TagService)(c))
	assert.False(t, model.ContactHasTag(domain.TagCustomer)(c))
}

func TestTripPredicates(t *testing.T) {
	trip := fixtures.Trip(t, fixtures.WithTripName("PARIS 2025"), fixtures.WithCustomers("Carl Kurz"))

	assert.True(t, model.TripNameContainsKeywords([]string{"paris"})(trip))
	assert.False(t, model.TripNameContainsKeywords([]string{"tokyo"})(trip))
	assert.True(t, model.TripHasCustomer("carl kurz")(trip))
	assert.False(t, model.TripHasCustomer("Carl")(trip))
}

func TestContactFilter(t *testing.T) {
	alice := fixtures.Contact(t, fixtures.WithName("Alice Pauline"), fixtures.WithTags(domain.TagCustomer))

	p, err := model.ContactFilter(domain.Filter{})
	require.NoError(t, err)
	assert.True(t, p(alice))

	p, err = model.ContactFilter(domain.Filter{Kind: domain.FilterKeywords, Args: []string{"pauline"}})
	require.NoError(t, err)
	assert.True(t, p(alice))

	p, err = model.ContactFilter(domain.Filter{Kind: domain.FilterTag, Args: []string{domain.TagService}})
	require.NoError(t, err)
	assert.False(t, p(alice))

	for _, f := range []domain.Filter{
		{Kind: domain.FilterKeywords},
		{Kind: domain.FilterTag, Args: []string{"a", "b"}},
		{Kind: domain.FilterCustomer, Args: []string{"Alice"}},
		{Kind: "bogus"},
	} {
		_, err := model.ContactFilter(f)
		assert.ErrorIs(t, err, domain.ErrInvalidArgument, "filter %+v", f)
	}
}

func TestTripFilter(t *testing.T) {
	trip := fixtures.Trip(t, fixtures.WithTripName("PARIS 2025"), fixtures.WithCustomers("Carl Kurz"))

	p, err := model.TripFilter(domain.Filter{Kind: domain.FilterCustomer, Args: []string{"carl kurz"}})
	require.NoError(t, err)
	assert.True(t, p(trip))

	p, err = model.TripFilter(domain.Filter{Kind: domain.FilterKeywords, Args: []string{"tokyo"}})
	require.NoError(t, err)
	assert.False(t, p(trip))

	_, err = model.TripFilter(domain.Filter{Kind: domain.FilterTag, Args: []string{domain.TagCustomer}})
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}
