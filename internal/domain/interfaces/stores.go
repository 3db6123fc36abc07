package interfaces

import domaintypes "travelbook/internal/domain/types"

// SnapshotStore loads and saves the full state of both books.
type SnapshotStore interface {
	// Load returns the stored snapshot and whether one existed.
	Load() (domaintypes.Snapshot, bool, error)
	Save(snapshot domaintypes.Snapshot) error
}

// ViewStore loads and saves the active filters of both lists.
type ViewStore interface {
	// LoadView returns the stored view, or the zero ViewState if none was saved.
	LoadView() (domaintypes.ViewState, error)
	SaveView(view domaintypes.ViewState) error
}
