package palesignal

import (
	"testing"

	"github.com/snarigra/palesignal/date"
)

func TestDemoEntries(t *testing.T) {
	entries := DemoEntries(30)
	if len(entries) != 30 {
		t.Fatalf("DemoEntries(30) = %d entries, want 30", len(entries))
	}

	// Every generated entry must pass the same validation as real input.
	seen := make(map[date.Date]bool)
	for i, e := range entries {
		if err := ValidateEntry(e); err != nil {
			t.Errorf("entry %d is invalid: %v", i, err)
		}
		if seen[e.Date] {
			t.Errorf("duplicate date %v in generated data", e.Date)
		}
		seen[e.Date] = true
	}

	// Newest first, one entry per consecutive day ending today.
	if entries[0].Date != date.Today() {
		t.Errorf("first entry date = %v, want today", entries[0].Date)
	}
	for i := 1; i < len(entries); i++ {
		if entries[i].Date != entries[i-1].Date.Add(-1) {
			t.Errorf("entry %d date = %v, want %v", i, entries[i].Date, entries[i-1].Date.Add(-1))
		}
	}
}

func TestDemoEntriesZeroDays(t *testing.T) {
	if got := DemoEntries(0); len(got) != 0 {
		t.Errorf("DemoEntries(0) = %d entries, want 0", len(got))
	}
}
