package types_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"travelbook/internal/domain/types"
	"travelbook/internal/testing/fixtures"
)

func TestTrip_Same_IsNameIdentity(t *testing.T) {
	paris := fixtures.Trip(t, fixtures.WithTripName("PARIS 2025"))
	parisEdited := fixtures.Trip(t, fixtures.WithTripName("PARIS 2025"), fixtures.WithDate("2025-07-01"))
	parisLower := fixtures.Trip(t, fixtures.WithTripName("paris 2025"))

	assert.True(t, paris.Same(parisEdited))
	assert.False(t, paris.Equal(parisEdited))
	assert.False(t, paris.Same(parisLower))
	assert.False(t, paris.Same(types.Trip{}))
}

func TestTrip_CustomerNames(t *testing.T) {
	trip := fixtures.Trip(t, fixtures.WithCustomers("Carl Kurz", "Alice Pauline", "Carl Kurz"))

	names := trip.CustomerNames()
	assert.Len(t, names, 2)
	assert.Equal(t, "Alice Pauline", names[0].String())
	assert.True(t, trip.HasCustomer("carl kurz"))
	assert.False(t, trip.HasCustomer("Benson Meier"))

	reordered := fixtures.Trip(t, fixtures.WithCustomers("Alice Pauline", "Carl Kurz"))
	assert.True(t, trip.Equal(reordered))
}
