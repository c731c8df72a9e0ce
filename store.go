package palesignal

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/snarigra/palesignal/date"
)

// Store owns the durable journal: it validates entries, enforces the
// one-entry-per-day invariant, and persists the collection as a single
// JSON document.
//
// The store is built for a single local user. Concurrent writers are not
// supported; saves are atomic (write to a temporary file, then rename) so
// a crash mid-write never leaves a truncated file behind.
type Store struct {
	file string
}

// NewStore returns a store backed by the given JSON file. The file and its
// directory need not exist yet.
func NewStore(file string) *Store {
	return &Store{file: file}
}

// File returns the path of the backing file.
func (s *Store) File() string { return s.file }

// DefaultFile returns the conventional backing file location,
// ~/.pale-signal/data.json.
func DefaultFile() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".pale-signal", "data.json"), nil
}

// Load reads the full journal from the backing file. A missing file is not
// an error: the store initializes an empty journal on disk and returns it.
// An existing but unreadable or malformed file yields a *StorageError.
func (s *Store) Load() (*Journal, error) {
	data, err := os.ReadFile(s.file)
	if errors.Is(err, fs.ErrNotExist) {
		j := NewJournal()
		if err := s.Save(j); err != nil {
			return nil, err
		}
		return j, nil
	}
	if err != nil {
		return nil, &StorageError{Path: s.file, Op: "read", Err: err}
	}

	var j Journal
	if err := json.Unmarshal(data, &j); err != nil {
		return nil, &StorageError{Path: s.file, Op: "decode", Err: err}
	}
	if j.Entries == nil {
		j.Entries = []Entry{}
	}
	j.sort()
	return &j, nil
}

// Save persists the full journal, replacing prior content. The document is
// written to a temporary file in the same directory and renamed into
// place, so readers never observe a partial journal.
func (s *Store) Save(j *Journal) error {
	if err := os.MkdirAll(filepath.Dir(s.file), 0o700); err != nil {
		return &StorageError{Path: s.file, Op: "write", Err: err}
	}

	data, err := json.MarshalIndent(j, "", "  ")
	if err != nil {
		return &StorageError{Path: s.file, Op: "write", Err: err}
	}

	tmp := s.file + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return &StorageError{Path: tmp, Op: "write", Err: err}
	}
	if err := os.Rename(tmp, s.file); err != nil {
		os.Remove(tmp)
		return &StorageError{Path: s.file, Op: "write", Err: err}
	}
	return nil
}

// AddEntry validates the entry and appends it to the journal. Adding a
// second entry for the same date is rejected with *DuplicateDateError, it
// never silently overwrites; see ReplaceEntry for the overwrite flow.
func (s *Store) AddEntry(e Entry) error {
	if err := ValidateEntry(e); err != nil {
		return err
	}
	j, err := s.Load()
	if err != nil {
		return err
	}
	if j.Has(e.Date) {
		return &DuplicateDateError{Date: e.Date}
	}
	j.Entries = append(j.Entries, e)
	j.sort()
	return s.Save(j)
}

// ReplaceEntry validates the entry and writes it, dropping any previous
// entry recorded for the same date. The one-entry-per-day invariant is
// enforced here rather than by caller discipline.
func (s *Store) ReplaceEntry(e Entry) error {
	if err := ValidateEntry(e); err != nil {
		return err
	}
	j, err := s.Load()
	if err != nil {
		return err
	}
	j.remove(e.Date)
	j.Entries = append(j.Entries, e)
	j.sort()
	return s.Save(j)
}

// Entries returns entries sorted by date, most recent first. A positive
// limit returns only the most recent limit entries; zero or a negative
// limit returns all of them.
func (s *Store) Entries(limit int) ([]Entry, error) {
	j, err := s.Load()
	if err != nil {
		return nil, err
	}
	if limit > 0 && limit < len(j.Entries) {
		return j.Entries[:limit], nil
	}
	return j.Entries, nil
}

// EntryByDate returns the entry recorded for the given date, or nil if
// that day has no entry.
func (s *Store) EntryByDate(d date.Date) (*Entry, error) {
	j, err := s.Load()
	if err != nil {
		return nil, err
	}
	return j.ByDate(d), nil
}
