package palesignal

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/snarigra/palesignal/date"
)

// newTestStore returns a store backed by a file in a fresh temp directory.
func newTestStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(filepath.Join(t.TempDir(), "data.json"))
}

// entryOn returns a valid entry for the given date.
func entryOn(d date.Date) Entry {
	e := validEntry()
	e.Date = d
	return e
}

func TestLoadInitializesEmptyStore(t *testing.T) {
	s := newTestStore(t)

	j, err := s.Load()
	if err != nil {
		t.Fatalf("Load() on missing file failed: %v", err)
	}
	if len(j.Entries) != 0 {
		t.Errorf("Load() = %d entries, want 0", len(j.Entries))
	}

	// The backing file now exists with an empty collection.
	data, err := os.ReadFile(s.File())
	if err != nil {
		t.Fatalf("backing file was not created: %v", err)
	}
	if want := "{\n  \"entries\": []\n}"; string(data) != want {
		t.Errorf("initial file = %q, want %q", data, want)
	}
}

func TestLoadCorruptFile(t *testing.T) {
	s := newTestStore(t)
	if err := os.MkdirAll(filepath.Dir(s.File()), 0o700); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(s.File(), []byte("{not json"), 0o600); err != nil {
		t.Fatal(err)
	}

	_, err := s.Load()
	var serr *StorageError
	if !errors.As(err, &serr) {
		t.Fatalf("Load() on corrupt file = %v, want *StorageError", err)
	}
	if serr.Op != "decode" {
		t.Errorf("StorageError.Op = %q, want %q", serr.Op, "decode")
	}
}

func TestAddEntryRejectsInvalid(t *testing.T) {
	s := newTestStore(t)
	e := validEntry()
	e.Focus = 0

	err := s.AddEntry(e)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("AddEntry() = %v, want *ValidationError", err)
	}

	// An invalid entry is never persisted.
	entries, err := s.Entries(0)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("store holds %d entries after rejected write, want 0", len(entries))
	}
}

func TestAddEntryRejectsDuplicateDate(t *testing.T) {
	s := newTestStore(t)
	d := date.New(2024, time.March, 1)

	if err := s.AddEntry(entryOn(d)); err != nil {
		t.Fatalf("first AddEntry() failed: %v", err)
	}

	// The second write for the same date always fails, even with
	// different field values.
	second := entryOn(d)
	second.Mood = 2
	err := s.AddEntry(second)
	var derr *DuplicateDateError
	if !errors.As(err, &derr) {
		t.Fatalf("second AddEntry() = %v, want *DuplicateDateError", err)
	}
	if derr.Date != d {
		t.Errorf("DuplicateDateError.Date = %v, want %v", derr.Date, d)
	}

	got, err := s.EntryByDate(d)
	if err != nil {
		t.Fatal(err)
	}
	if got.Mood != validEntry().Mood {
		t.Errorf("duplicate write overwrote the original entry: mood = %d", got.Mood)
	}
}

func TestReplaceEntry(t *testing.T) {
	s := newTestStore(t)
	d := date.New(2024, time.March, 1)

	if err := s.AddEntry(entryOn(d)); err != nil {
		t.Fatal(err)
	}

	updated := entryOn(d)
	updated.Mood = 2
	if err := s.ReplaceEntry(updated); err != nil {
		t.Fatalf("ReplaceEntry() failed: %v", err)
	}

	entries, err := s.Entries(0)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("store holds %d entries after replace, want 1", len(entries))
	}
	if entries[0].Mood != 2 {
		t.Errorf("replaced entry mood = %d, want 2", entries[0].Mood)
	}
}

func TestReplaceEntryInsertsWhenAbsent(t *testing.T) {
	s := newTestStore(t)
	if err := s.ReplaceEntry(entryOn(date.New(2024, time.March, 1))); err != nil {
		t.Fatalf("ReplaceEntry() on empty store failed: %v", err)
	}
	entries, err := s.Entries(0)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("store holds %d entries, want 1", len(entries))
	}
}

func TestEntriesSortedAndLimited(t *testing.T) {
	s := newTestStore(t)

	// Insert out of order; retrieval must be newest first.
	days := []date.Date{
		date.New(2024, time.January, 2),
		date.New(2024, time.January, 5),
		date.New(2024, time.January, 1),
		date.New(2024, time.January, 4),
		date.New(2024, time.January, 3),
	}
	for _, d := range days {
		if err := s.AddEntry(entryOn(d)); err != nil {
			t.Fatalf("AddEntry(%v) failed: %v", d, err)
		}
	}

	testCases := []struct {
		name  string
		limit int
		want  int
	}{
		{name: "all", limit: 0, want: 5},
		{name: "negative means all", limit: -1, want: 5},
		{name: "limited", limit: 3, want: 3},
		{name: "limit beyond size", limit: 10, want: 5},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			entries, err := s.Entries(tc.limit)
			if err != nil {
				t.Fatal(err)
			}
			if len(entries) != tc.want {
				t.Fatalf("Entries(%d) = %d entries, want %d", tc.limit, len(entries), tc.want)
			}
			for i := 1; i < len(entries); i++ {
				if !entries[i-1].Date.After(entries[i].Date) {
					t.Errorf("entries not strictly descending at %d: %v then %v", i, entries[i-1].Date, entries[i].Date)
				}
			}
		})
	}

	entries, err := s.Entries(1)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := entries[0].Date, date.New(2024, time.January, 5); got != want {
		t.Errorf("most recent entry = %v, want %v", got, want)
	}
}

func TestEntryByDateAbsent(t *testing.T) {
	s := newTestStore(t)
	got, err := s.EntryByDate(date.New(2024, time.July, 14))
	if err != nil {
		t.Fatalf("EntryByDate() failed: %v", err)
	}
	if got != nil {
		t.Errorf("EntryByDate() = %v, want nil for absent date", got)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := newTestStore(t)
	for i := 0; i < 3; i++ {
		if err := s.AddEntry(entryOn(date.New(2024, time.April, 1+i))); err != nil {
			t.Fatal(err)
		}
	}
	before, err := os.ReadFile(s.File())
	if err != nil {
		t.Fatal(err)
	}

	// save(load()) must not change the backing representation.
	j, err := s.Load()
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Save(j); err != nil {
		t.Fatal(err)
	}
	after, err := os.ReadFile(s.File())
	if err != nil {
		t.Fatal(err)
	}
	if string(before) != string(after) {
		t.Errorf("save(load()) changed the file:\nbefore: %s\nafter:  %s", before, after)
	}
}

func TestSaveLeavesNoTempFile(t *testing.T) {
	s := newTestStore(t)
	if err := s.AddEntry(validEntry()); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(s.File() + ".tmp"); !os.IsNotExist(err) {
		t.Errorf("temporary file left behind after save")
	}
}

func TestStoredFieldNames(t *testing.T) {
	s := newTestStore(t)
	if err := s.AddEntry(validEntry()); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(s.File())
	if err != nil {
		t.Fatal(err)
	}
	for _, field := range []string{
		`"entries"`, `"date"`, `"sleep_hours"`, `"focus"`, `"mood"`,
		`"work_hours"`, `"social"`, `"timestamp"`,
	} {
		if !strings.Contains(string(data), field) {
			t.Errorf("stored file lacks field %s", field)
		}
	}
}
