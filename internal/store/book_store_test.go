package store

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"travelbook/internal/domain"
	"travelbook/internal/testing/fixtures"
)

// fastKDF keeps sealed-store tests quick.
var fastKDF = withKDFParams(kdfParams{N: 1 << 4, R: 8, P: 1})

func TestLoad_EmptyDir_NotFound(t *testing.T) {
	s := NewBookFileStore(t.TempDir())

	snap, ok, err := s.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if ok {
		t.Fatal("expected no snapshot in an empty dir")
	}
	if len(snap.Contacts) != 0 || len(snap.Trips) != 0 {
		t.Fatalf("expected empty snapshot, got %d contacts, %d trips", len(snap.Contacts), len(snap.Trips))
	}
}

func TestSaveLoad_RoundTrip_OK(t *testing.T) {
	home := t.TempDir()
	var s domain.SnapshotStore = NewBookFileStore(home)

	want := domain.Snapshot{
		Contacts: fixtures.TypicalContacts(t),
		Trips:    fixtures.TypicalTrips(t),
	}
	if err := s.Save(want); err != nil {
		t.Fatalf("save: %v", err)
	}
	if _, err := os.Stat(filepath.Join(home, contactsFilename)); err != nil {
		t.Fatalf("contacts file missing: %v", err)
	}

	got, ok, err := s.Load()
	if err != nil || !ok {
		t.Fatalf("load: ok=%v err=%v", ok, err)
	}
	assertSnapshotEqual(t, want, got)
}

func TestSave_Overwrites(t *testing.T) {
	s := NewBookFileStore(t.TempDir())
	if err := s.Save(domain.Snapshot{Contacts: fixtures.TypicalContacts(t)}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := s.Save(domain.Snapshot{}); err != nil {
		t.Fatalf("save empty: %v", err)
	}

	got, ok, err := s.Load()
	if err != nil || !ok {
		t.Fatalf("load: ok=%v err=%v", ok, err)
	}
	if len(got.Contacts) != 0 {
		t.Fatalf("want 0 contacts after overwrite, got %d", len(got.Contacts))
	}
}

func TestSealed_RoundTrip_OK(t *testing.T) {
	home := t.TempDir()
	s := NewBookFileStore(home, WithPassphrase("correct horse"), fastKDF)

	want := domain.Snapshot{Contacts: fixtures.TypicalContacts(t), Trips: fixtures.TypicalTrips(t)}
	if err := s.Save(want); err != nil {
		t.Fatalf("save: %v", err)
	}

	raw, err := os.ReadFile(filepath.Join(home, sealedContactsFilename))
	if err != nil {
		t.Fatalf("read sealed file: %v", err)
	}
	if strings.Contains(string(raw), "alice@example.com") {
		t.Fatal("sealed file leaks plaintext")
	}

	got, ok, err := s.Load()
	if err != nil || !ok {
		t.Fatalf("load: ok=%v err=%v", ok, err)
	}
	assertSnapshotEqual(t, want, got)
}

func TestSealed_WrongPassphrase_Fails(t *testing.T) {
	home := t.TempDir()
	if err := NewBookFileStore(home, WithPassphrase("correct"), fastKDF).Save(domain.Snapshot{
		Contacts: fixtures.TypicalContacts(t),
	}); err != nil {
		t.Fatalf("save: %v", err)
	}

	_, _, err := NewBookFileStore(home, WithPassphrase("wrong"), fastKDF).Load()
	if !errors.Is(err, ErrWrongPassphrase) {
		t.Fatalf("want ErrWrongPassphrase, got %v", err)
	}
}

func TestSealed_LabelsAreNotInterchangeable(t *testing.T) {
	sealed, err := seal("pass", sealLabelContacts, []byte(`{"contacts":[]}`), kdfParams{N: 1 << 4, R: 8, P: 1})
	if err != nil {
		t.Fatalf("seal: %v", err)
	}
	if _, err := open("pass", sealLabelTrips, sealed); !errors.Is(err, ErrWrongPassphrase) {
		t.Fatalf("want ErrWrongPassphrase for mismatched label, got %v", err)
	}
}

func TestOpen_OversizedKDFParams_Rejected(t *testing.T) {
	sealed, err := seal("pass", sealLabelTrips, []byte(`{"trips":[]}`), kdfParams{N: 1 << 4, R: 8, P: 1})
	if err != nil {
		t.Fatalf("seal: %v", err)
	}
	var env envelope
	if err := json.Unmarshal(sealed, &env); err != nil {
		t.Fatalf("decode: %v", err)
	}

	for name, kdf := range map[string]kdfParams{
		"huge N":       {N: 1 << 30, R: 8, P: 1},
		"N not pow2":   {N: 1000, R: 8, P: 1},
		"huge r*p":     {N: 1 << 4, R: 1 << 15, P: 1 << 15},
		"memory bound": {N: 1 << 20, R: 16, P: 1},
		"zero r":       {N: 1 << 4, R: 0, P: 1},
	} {
		env.N, env.R, env.P = kdf.N, kdf.R, kdf.P
		tampered, err := json.Marshal(env)
		if err != nil {
			t.Fatalf("%s: encode: %v", name, err)
		}
		if _, err := open("pass", sealLabelTrips, tampered); !errors.Is(err, ErrWrongPassphrase) {
			t.Fatalf("%s: want ErrWrongPassphrase, got %v", name, err)
		}
	}
}

func TestView_MissingFile_IsShowAll(t *testing.T) {
	view, err := NewBookFileStore(t.TempDir()).LoadView()
	if err != nil {
		t.Fatalf("load view: %v", err)
	}
	if !view.Equal(domain.ViewState{}) {
		t.Fatalf("want zero view, got %+v", view)
	}
}

func TestView_RoundTrip_OK(t *testing.T) {
	for name, opts := range map[string][]Option{
		"plain":  nil,
		"sealed": {WithPassphrase("correct horse"), fastKDF},
	} {
		home := t.TempDir()
		s := NewBookFileStore(home, opts...)
		want := domain.ViewState{
			Contacts: domain.Filter{Kind: domain.FilterKeywords, Args: []string{"alice", "bob"}},
			Trips:    domain.Filter{Kind: domain.FilterCustomer, Args: []string{"Carl Kurz"}},
		}
		if err := s.SaveView(want); err != nil {
			t.Fatalf("%s: save view: %v", name, err)
		}
		got, err := s.LoadView()
		if err != nil {
			t.Fatalf("%s: load view: %v", name, err)
		}
		if !got.Equal(want) {
			t.Fatalf("%s: want %+v, got %+v", name, want, got)
		}
	}
}

func TestLoad_InvalidRecord_Fails(t *testing.T) {
	home := t.TempDir()
	doc := `{"contacts":[{"name":"Amy","phone":"12","email":"amy@x.com","address":"Somewhere"}]}`
	if err := os.WriteFile(filepath.Join(home, contactsFilename), []byte(doc), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	_, _, err := NewBookFileStore(home).Load()
	if !errors.Is(err, ErrInvalidRecord) {
		t.Fatalf("want ErrInvalidRecord, got %v", err)
	}
	if !errors.Is(err, domain.ErrInvalidArgument) {
		t.Fatalf("want wrapped ErrInvalidArgument, got %v", err)
	}
}

func TestLoad_MalformedJSON_Fails(t *testing.T) {
	home := t.TempDir()
	if err := os.WriteFile(filepath.Join(home, tripsFilename), []byte("{not json"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, _, err := NewBookFileStore(home).Load(); err == nil {
		t.Fatal("expected error for malformed trips file")
	}
}

func TestWriteFile_LeavesNoTempFiles(t *testing.T) {
	home := t.TempDir()
	if err := NewBookFileStore(home).Save(domain.Snapshot{Trips: fixtures.TypicalTrips(t)}); err != nil {
		t.Fatalf("save: %v", err)
	}
	entries, err := os.ReadDir(home)
	if err != nil {
		t.Fatalf("readdir: %v", err)
	}
	for _, e := range entries {
		if strings.Contains(e.Name(), ".tmp-") {
			t.Fatalf("temp file left behind: %s", e.Name())
		}
	}
}

func assertSnapshotEqual(t *testing.T, want, got domain.Snapshot) {
	t.Helper()
	if len(got.Contacts) != len(want.Contacts) {
		t.Fatalf("contacts: want %d, got %d", len(want.Contacts), len(got.Contacts))
	}
	for i := range want.Contacts {
		if !want.Contacts[i].Equal(got.Contacts[i]) {
			t.Fatalf("contact %d mismatch:\nwant %v\ngot  %v", i, want.Contacts[i], got.Contacts[i])
		}
	}
	if len(got.Trips) != len(want.Trips) {
		t.Fatalf("trips: want %d, got %d", len(want.Trips), len(got.Trips))
	}
	for i := range want.Trips {
		if !want.Trips[i].Equal(got.Trips[i]) {
			t.Fatalf("trip %d mismatch:\nwant %v\ngot  %v", i, want.Trips[i], got.Trips[i])
		}
	}
}
