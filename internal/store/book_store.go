package store

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"sync"

	"go.uber.org/zap"

	"travelbook/internal/domain"
)

const (
	contactsFilename       = "contacts.json"
	tripsFilename          = "trips.json"
	sealedContactsFilename = "contacts.enc"
	sealedTripsFilename    = "trips.enc"
	viewFilename           = "view.json"
	sealedViewFilename     = "view.enc"

	sealLabelContacts = "travelbook/contacts"
	sealLabelTrips    = "travelbook/trips"
	sealLabelView     = "travelbook/view"
)

// BookFileStore persists both books to disk.
type BookFileStore struct {
	dir        string
	passphrase string
	kdf        kdfParams
	log        *zap.Logger
	mu         sync.Mutex
}

// Option configures a BookFileStore.
type Option func(*BookFileStore)

// WithPassphrase seals every file with an envelope keyed by passphrase.
func WithPassphrase(passphrase string) Option {
	return func(s *BookFileStore) { s.passphrase = passphrase }
}

// WithLogger sets the logger used for load/save events.
func WithLogger(log *zap.Logger) Option {
	return func(s *BookFileStore) {
		if log != nil {
			s.log = log
		}
	}
}

// withKDFParams overrides the scrypt cost; tests use it to keep runs fast.
func withKDFParams(kdf kdfParams) Option {
	return func(s *BookFileStore) { s.kdf = kdf }
}

// NewBookFileStore returns a BookFileStore rooted at dir.
func NewBookFileStore(dir string, opts ...Option) *BookFileStore {
	s := &BookFileStore{dir: dir, kdf: defaultKDFParams(), log: zap.NewNop()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Sealed reports whether files are written encrypted.
func (s *BookFileStore) Sealed() bool { return s.passphrase != "" }

// Load reads both books. ok is false when neither file exists yet.
func (s *BookFileStore) Load() (domain.Snapshot, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var cf contactsFile
	haveContacts, err := s.readDoc(s.contactsPath(), sealLabelContacts, &cf)
	if err != nil {
		return domain.Snapshot{}, false, fmt.Errorf("load contacts: %w", err)
	}
	var tf tripsFile
	haveTrips, err := s.readDoc(s.tripsPath(), sealLabelTrips, &tf)
	if err != nil {
		return domain.Snapshot{}, false, fmt.Errorf("load trips: %w", err)
	}

	contacts, err := decodeContacts(cf)
	if err != nil {
		return domain.Snapshot{}, false, fmt.Errorf("load contacts: %w", err)
	}
	trips, err := decodeTrips(tf)
	if err != nil {
		return domain.Snapshot{}, false, fmt.Errorf("load trips: %w", err)
	}

	s.log.Debug("snapshot loaded",
		zap.String("dir", s.dir),
		zap.Bool("sealed", s.Sealed()),
		zap.Int("contacts", len(contacts)),
		zap.Int("trips", len(trips)),
	)
	return domain.Snapshot{Contacts: contacts, Trips: trips}, haveContacts || haveTrips, nil
}

// Save writes both books, replacing whatever was stored.
func (s *BookFileStore) Save(snapshot domain.Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cf := contactsFile{Contacts: make([]contactRecord, 0, len(snapshot.Contacts))}
	for _, c := range snapshot.Contacts {
		cf.Contacts = append(cf.Contacts, newContactRecord(c))
	}
	tf := tripsFile{Trips: make([]tripRecord, 0, len(snapshot.Trips))}
	for _, t := range snapshot.Trips {
		tf.Trips = append(tf.Trips, newTripRecord(t))
	}

	if err := s.writeDoc(s.contactsPath(), sealLabelContacts, cf); err != nil {
		return fmt.Errorf("save contacts: %w", err)
	}
	if err := s.writeDoc(s.tripsPath(), sealLabelTrips, tf); err != nil {
		return fmt.Errorf("save trips: %w", err)
	}

	s.log.Info("snapshot saved",
		zap.String("dir", s.dir),
		zap.Bool("sealed", s.Sealed()),
		zap.Int("contacts", len(snapshot.Contacts)),
		zap.Int("trips", len(snapshot.Trips)),
	)
	return nil
}

func (s *BookFileStore) contactsPath() string {
	if s.Sealed() {
		return filepath.Join(s.dir, sealedContactsFilename)
	}
	return filepath.Join(s.dir, contactsFilename)
}

func (s *BookFileStore) tripsPath() string {
	if s.Sealed() {
		return filepath.Join(s.dir, sealedTripsFilename)
	}
	return filepath.Join(s.dir, tripsFilename)
}

// LoadView reads the active filters. A missing file yields the zero ViewState.
func (s *BookFileStore) LoadView() (domain.ViewState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var vf viewFile
	if _, err := s.readDoc(s.viewPath(), sealLabelView, &vf); err != nil {
		return domain.ViewState{}, fmt.Errorf("load view: %w", err)
	}
	return vf.toDomain(), nil
}

// SaveView writes the active filters.
func (s *BookFileStore) SaveView(view domain.ViewState) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.writeDoc(s.viewPath(), sealLabelView, newViewFile(view)); err != nil {
		return fmt.Errorf("save view: %w", err)
	}
	s.log.Debug("view saved",
		zap.String("contacts", string(view.Contacts.Kind)),
		zap.String("trips", string(view.Trips.Kind)),
	)
	return nil
}

func (s *BookFileStore) viewPath() string {
	if s.Sealed() {
		return filepath.Join(s.dir, sealedViewFilename)
	}
	return filepath.Join(s.dir, viewFilename)
}

func (s *BookFileStore) readDoc(path, label string, out any) (bool, error) {
	b, ok, err := readFile(path)
	if err != nil || !ok {
		return false, err
	}
	if s.Sealed() {
		if b, err = open(s.passphrase, label, b); err != nil {
			return false, err
		}
	}
	if err := json.Unmarshal(b, out); err != nil {
		return false, fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}
	return true, nil
}

func (s *BookFileStore) writeDoc(path, label string, v any) error {
	b, err := marshalJSON(v)
	if err != nil {
		return err
	}
	if s.Sealed() {
		if b, err = seal(s.passphrase, label, b, s.kdf); err != nil {
			return err
		}
	}
	return writeFile(path, b, 0o600)
}

// Compile-time assertions that BookFileStore implements the domain store interfaces.
var (
	_ domain.SnapshotStore = (*BookFileStore)(nil)
	_ domain.ViewStore     = (*BookFileStore)(nil)
)
