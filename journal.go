package palesignal

import (
	"slices"

	"github.com/snarigra/palesignal/date"
)

// Journal is the full persisted collection of entries.
//
// In a Journal entries are always sorted by date, most recent first. The
// sort is re-applied after every mutation; insertion order is irrelevant.
type Journal struct {
	Entries []Entry `json:"entries"`
}

// NewJournal creates an empty journal.
func NewJournal() *Journal {
	return &Journal{Entries: []Entry{}}
}

// sort restores the newest-first ordering invariant.
func (j *Journal) sort() {
	slices.SortStableFunc(j.Entries, func(a, b Entry) int {
		switch {
		case a.Date.After(b.Date):
			return -1
		case a.Date.Before(b.Date):
			return 1
		default:
			return 0
		}
	})
}

// Has reports whether the journal holds an entry for the given date.
func (j *Journal) Has(d date.Date) bool {
	return j.ByDate(d) != nil
}

// ByDate returns the entry recorded for the given date, or nil if that day
// has no entry. Absence is a normal outcome, not an error.
func (j *Journal) ByDate(d date.Date) *Entry {
	for i := range j.Entries {
		if j.Entries[i].Date == d {
			return &j.Entries[i]
		}
	}
	return nil
}

// remove drops the entry for the given date, if any, preserving order.
func (j *Journal) remove(d date.Date) {
	j.Entries = slices.DeleteFunc(j.Entries, func(e Entry) bool {
		return e.Date == d
	})
}
