package model_test

import (
	"iter"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"travelbook/internal/book"
	"travelbook/internal/domain"
	"travelbook/internal/model"
	"travelbook/internal/testing/fixtures"
)

func newManager(t *testing.T) (*model.Manager, *book.AddressBook, *book.TripBook) {
	t.Helper()
	ab := book.NewAddressBook()
	tb := book.NewTripBook()
	return model.New(ab, tb, zaptest.NewLogger(t)), ab, tb
}

func TestNew_NilArguments(t *testing.T) {
	m := model.New(nil, nil, nil)
	assert.Equal(t, 0, m.FilteredContactList().Len())
	assert.Equal(t, 0, m.FilteredTripList().Len())
}

func TestManager_SharesBooks(t *testing.T) {
	m, ab, tb := newManager(t)
	require.NoError(t, m.AddContact(fixtures.Contact(t)))
	require.NoError(t, m.AddTrip(fixtures.Trip(t)))

	assert.Equal(t, 1, ab.Contacts().Len())
	assert.Equal(t, 1, tb.Trips().Len())
	assert.Same(t, ab, m.AddressBook())
	assert.Same(t, tb, m.TripBook())
}

func TestHasContact_EmailIdentityScenario(t *testing.T) {
	m, _, _ := newManager(t)
	require.NoError(t, m.AddContact(fixtures.Contact(t, fixtures.WithName("Amy"), fixtures.WithEmail("amy@x.com"))))

	amyB := fixtures.Contact(t, fixtures.WithName("Amy B."), fixtures.WithEmail("AMY@X.com"))
	assert.True(t, m.HasContact(amyB))
	assert.ErrorIs(t, m.AddContact(amyB), domain.ErrDuplicateEntity)
}

func TestSetTrip_CollisionScenario(t *testing.T) {
	m, _, tb := newManager(t)
	paris := fixtures.Trip(t, fixtures.WithTripName("PARIS 2025"))
	tokyo := fixtures.Trip(t, fixtures.WithTripName("TOKYO 2026"), fixtures.WithDate("2026-04-01"))
	require.NoError(t, m.AddTrip(paris))
	require.NoError(t, m.AddTrip(tokyo))
	before, err := book.NewTripBookFrom(tb)
	require.NoError(t, err)

	err = m.SetTrip(paris, fixtures.Trip(t, fixtures.WithTripName("TOKYO 2026")))
	require.ErrorIs(t, err, domain.ErrDuplicateEntity)
	assert.True(t, tb.Equal(before))
}

func TestSetTripBook_DuplicateScenario(t *testing.T) {
	m, _, tb := newManager(t)
	rome := fixtures.Trip(t, fixtures.WithTripName("ROME 2025"))
	require.NoError(t, m.AddTrip(rome))

	snapshot := snapshotTrips{
		fixtures.Trip(t, fixtures.WithTripName("PARIS 2025")),
		fixtures.Trip(t, fixtures.WithTripName("PARIS 2025"), fixtures.WithTripNote("twice")),
	}
	require.ErrorIs(t, m.SetTripBook(snapshot), domain.ErrDuplicateEntity)

	require.Equal(t, 1, tb.Trips().Len())
	assert.True(t, m.FilteredTripList().At(0).Equal(rome))
}

func TestDeleteContact(t *testing.T) {
	m, _, _ := newManager(t)
	c := fixtures.Contact(t)
	assert.ErrorIs(t, m.DeleteContact(c), domain.ErrEntityNotFound)

	require.NoError(t, m.AddContact(c))
	require.NoError(t, m.DeleteContact(c))
	assert.False(t, m.HasContact(c))
}

func TestFilteredContactList_DefaultShowsAll(t *testing.T) {
	m, _, _ := newManager(t)
	contacts := fixtures.TypicalContacts(t)
	for _, c := range contacts {
		require.NoError(t, m.AddContact(c))
	}

	view := m.FilteredContactList()
	require.Equal(t, len(contacts), view.Len())
	for i, c := range view.All() {
		assert.True(t, c.Equal(contacts[i]))
	}
}

func TestFilteredContactList_IsLiveAcrossMutations(t *testing.T) {
	m, _, _ := newManager(t)
	view := m.FilteredContactList()
	require.NoError(t, m.UpdateFilteredContactList(model.ContactHasTag(domain.TagCustomer)))

	contacts := fixtures.TypicalContacts(t)
	for _, c := range contacts {
		require.NoError(t, m.AddContact(c))
	}
	// Alice and Carl are customers.
	require.Equal(t, 2, view.Len())
	assert.Equal(t, "Alice Pauline", view.At(0).Name().String())
	assert.Equal(t, "Carl Kurz", view.At(1).Name().String())

	edited := fixtures.Contact(t,
		fixtures.WithName("Alice Pauline"),
		fixtures.WithEmail("alice@example.com"),
		fixtures.WithPhone("94351253"),
		fixtures.WithTags("service"),
	)
	require.NoError(t, m.SetContact(contacts[0], edited))
	require.Equal(t, 1, view.Len())
	assert.Equal(t, "Carl Kurz", view.At(0).Name().String())
}

func TestUpdateFilteredList_Nil(t *testing.T) {
	m, _, _ := newManager(t)
	assert.ErrorIs(t, m.UpdateFilteredContactList(nil), domain.ErrInvalidArgument)
	assert.ErrorIs(t, m.UpdateFilteredTripList(nil), domain.ErrInvalidArgument)
}

func TestFilteredTripList_SubsequenceInBackingOrder(t *testing.T) {
	m, _, tb := newManager(t)
	trips := fixtures.TypicalTrips(t)
	require.NoError(t, m.SetTripBook(bookOf(t, trips)))

	require.NoError(t, m.UpdateFilteredTripList(model.TripHasCustomer("Alice Pauline")))
	got := m.FilteredTripList().Slice()
	require.Len(t, got, 2)
	assert.Equal(t, "PARIS 2025", got[0].Name().String())
	assert.Equal(t, "TOKYO 2026", got[1].Name().String())

	require.NoError(t, m.UpdateFilteredTripList(model.ShowAll[domain.Trip]))
	assert.Equal(t, tb.Trips().Slice(), m.FilteredTripList().Slice())
}

func TestSetTripBook_KeepsPredicate(t *testing.T) {
	m, _, _ := newManager(t)
	require.NoError(t, m.UpdateFilteredTripList(model.TripNameContainsKeywords([]string{"2025"})))
	view := m.FilteredTripList()

	require.NoError(t, m.SetTripBook(bookOf(t, fixtures.TypicalTrips(t))))
	assert.Equal(t, 2, view.Len())

	require.NoError(t, m.SetTripBook(book.NewTripBook()))
	assert.Equal(t, 0, view.Len())
}

func TestFilteredList_VersionStableWithoutChanges(t *testing.T) {
	m, _, _ := newManager(t)
	require.NoError(t, m.AddContact(fixtures.Contact(t)))
	view := m.FilteredContactList()

	v1 := view.Version()
	assert.Equal(t, v1, view.Version())

	require.NoError(t, m.AddContact(fixtures.Contact(t, fixtures.WithEmail("new@example.com"))))
	assert.NotEqual(t, v1, view.Version())
}

func TestSetAddressBook_Nil(t *testing.T) {
	m, _, _ := newManager(t)
	assert.ErrorIs(t, m.SetAddressBook(nil), domain.ErrInvalidArgument)
}

func bookOf(t *testing.T, trips []domain.Trip) *book.TripBook {
	t.Helper()
	tb := book.NewTripBook()
	require.NoError(t, tb.SetTrips(trips))
	return tb
}

// snapshotTrips is a trip book as a loader might hand it over, unchecked for duplicates.
type snapshotTrips []domain.Trip

func (s snapshotTrips) Trips() domain.ReadOnlyList[domain.Trip] { return sliceList[domain.Trip](s) }

type sliceList[T any] []T

func (l sliceList[T]) Len() int        { return len(l) }
func (l sliceList[T]) At(i int) T      { return l[i] }
func (l sliceList[T]) Slice() []T      { return append([]T(nil), l...) }
func (l sliceList[T]) Version() uint64 { return 0 }
func (l sliceList[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, v := range l {
			if !yield(i, v) {
				return
			}
		}
	}
}
