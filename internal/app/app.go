package app

import (
	"fmt"

	"go.uber.org/zap"

	"travelbook/internal/book"
	"travelbook/internal/domain"
	"travelbook/internal/model"
)

// App is what every command runs against.
type App struct {
	Model domain.Model
	Store domain.SnapshotStore
	// Views keeps the active filters between runs. It is nil until RestoreView is called.
	Views domain.ViewStore
	Log   *zap.Logger

	// Committed copies of the books, used to detect whether a command changed anything.
	committedContacts *book.AddressBook
	committedTrips    *book.TripBook

	view          domain.ViewState
	committedView domain.ViewState
}

// New loads the stored snapshot into fresh books and returns an App over them.
// A snapshot that violates uniqueness is a load error.
func New(store domain.SnapshotStore, log *zap.Logger) (*App, error) {
	if log == nil {
		log = zap.NewNop()
	}
	snap, found, err := store.Load()
	if err != nil {
		return nil, err
	}
	if !found {
		log.Info("no stored books found, starting empty")
	}

	ab := book.NewAddressBook()
	if err := ab.SetContacts(snap.Contacts); err != nil {
		return nil, fmt.Errorf("load address book: %w", err)
	}
	tb := book.NewTripBook()
	if err := tb.SetTrips(snap.Trips); err != nil {
		return nil, fmt.Errorf("load trip book: %w", err)
	}

	a := &App{
		Model: model.New(ab, tb, log.Named("model")),
		Store: store,
		Log:   log,
	}
	if err := a.markCommitted(); err != nil {
		return nil, err
	}
	return a, nil
}

// RestoreView loads the saved filters from views and applies them. A stored filter
// that no longer builds a predicate is dropped in favour of showing everything.
func (a *App) RestoreView(views domain.ViewStore) error {
	saved, err := views.LoadView()
	if err != nil {
		return err
	}
	a.Views = views
	if err := a.FilterContacts(saved.Contacts); err != nil {
		a.Log.Warn("discarding stored contact filter", zap.Error(err))
	}
	if err := a.FilterTrips(saved.Trips); err != nil {
		a.Log.Warn("discarding stored trip filter", zap.Error(err))
	}
	// Against the stored value, so a discarded filter is rewritten on the next commit.
	a.committedView = saved
	return nil
}

// FilterContacts narrows the filtered contact list to f.
func (a *App) FilterContacts(f domain.Filter) error {
	p, err := model.ContactFilter(f)
	if err != nil {
		return err
	}
	if err := a.Model.UpdateFilteredContactList(p); err != nil {
		return err
	}
	a.view.Contacts = f
	return nil
}

// FilterTrips narrows the filtered trip list to f.
func (a *App) FilterTrips(f domain.Filter) error {
	p, err := model.TripFilter(f)
	if err != nil {
		return err
	}
	if err := a.Model.UpdateFilteredTripList(p); err != nil {
		return err
	}
	a.view.Trips = f
	return nil
}

// View returns the active filters.
func (a *App) View() domain.ViewState { return a.view }

// Changed reports whether either book differs from what was last loaded or saved.
func (a *App) Changed() bool {
	return !a.committedContacts.Equal(a.Model.AddressBook()) ||
		!a.committedTrips.Equal(a.Model.TripBook())
}

// Commit saves both books if they changed, then the active filters if they changed
// and a view store is set. It reports whether the books were saved.
func (a *App) Commit() (bool, error) {
	saved := false
	if a.Changed() {
		snap := domain.Snapshot{
			Contacts: a.Model.AddressBook().Contacts().Slice(),
			Trips:    a.Model.TripBook().Trips().Slice(),
		}
		if err := a.Store.Save(snap); err != nil {
			return false, err
		}
		saved = true
		if err := a.markCommitted(); err != nil {
			return true, err
		}
	} else {
		a.Log.Debug("books unchanged, skipping save")
	}

	if a.Views != nil && !a.view.Equal(a.committedView) {
		if err := a.Views.SaveView(a.view); err != nil {
			return saved, err
		}
		a.committedView = a.view
	}
	return saved, nil
}

func (a *App) markCommitted() error {
	ab, err := book.NewAddressBookFrom(a.Model.AddressBook())
	if err != nil {
		return err
	}
	tb, err := book.NewTripBookFrom(a.Model.TripBook())
	if err != nil {
		return err
	}
	a.committedContacts, a.committedTrips = ab, tb
	return nil
}
