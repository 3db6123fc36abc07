package types_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travelbook/internal/domain/types"
	"travelbook/internal/testing/fixtures"
)

func TestContact_Same_IsCaseInsensitiveEmail(t *testing.T) {
	amy := fixtures.Contact(t, fixtures.WithName("Amy"), fixtures.WithEmail("amy@x.com"))
	amyB := fixtures.Contact(t, fixtures.WithName("Amy B."), fixtures.WithEmail("AMY@X.com"))
	other := fixtures.Contact(t, fixtures.WithName("Amy"), fixtures.WithEmail("amy@y.com"))

	assert.True(t, amy.Same(amyB))
	assert.True(t, amyB.Same(amy))
	assert.True(t, amy.Same(amy))
	// Same name alone does not make the same person.
	assert.False(t, amy.Same(other))
	assert.False(t, amy.Same(types.Contact{}))
}

func TestContact_Equal_RequiresEveryField(t *testing.T) {
	base := fixtures.Contact(t)
	assert.True(t, base.Equal(fixtures.Contact(t)))

	variants := map[string]types.Contact{
		"name":    fixtures.Contact(t, fixtures.WithName("Bob")),
		"phone":   fixtures.Contact(t, fixtures.WithPhone("99999999")),
		"email":   fixtures.Contact(t, fixtures.WithEmail("AMY@example.com")),
		"address": fixtures.Contact(t, fixtures.WithAddress("Elsewhere")),
		"tags":    fixtures.Contact(t, fixtures.WithTags(types.TagService)),
		"note":    fixtures.Contact(t, fixtures.WithNote("vip")),
	}
	for field, c := range variants {
		assert.False(t, base.Equal(c), field)
		// Equal implies Same, never the other way round.
		if field != "email" {
			assert.True(t, base.Same(c), field)
		}
	}
}

func TestContact_TagsAreASet(t *testing.T) {
	a := fixtures.Contact(t, fixtures.WithTags(types.TagService, types.TagCustomer, types.TagService))
	b := fixtures.Contact(t, fixtures.WithTags(types.TagCustomer, types.TagService))

	assert.True(t, a.Equal(b))
	assert.Len(t, a.Tags(), 2)
	assert.True(t, a.IsCustomer())
	assert.True(t, a.IsService())
}

func TestContact_TagsCopy(t *testing.T) {
	c := fixtures.Contact(t, fixtures.WithTags(types.TagCustomer))
	tags := c.Tags()
	tags[0] = types.Tag{}

	assert.True(t, c.IsCustomer())
}

func TestNewContact_MissingRequired(t *testing.T) {
	name, err := types.NewName("Amy")
	require.NoError(t, err)

	_, err = types.NewContact(name, types.Phone{}, types.Email{}, types.Address{}, nil, types.Note{})
	assert.ErrorIs(t, err, types.ErrInvalidArgument)
}
