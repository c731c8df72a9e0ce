package palesignal

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/snarigra/palesignal/date"
)

// DemoEntries generates a synthetic journal of the given number of days
// ending today, newest first. The data is shaped to look plausible: sleep
// varies around 7 hours, work hours move inversely to sleep, focus and
// mood sit in the middle of the scale. Intended for demos and for
// exercising the analytics when too little real data exists; the analytics
// are agnostic of entry origin.
func DemoEntries(days int) []Entry {
	entries := make([]Entry, 0, days)
	today := date.Today()
	now := time.Now()

	for i := 0; i < days; i++ {
		sleep := clamp(7.0+rand.Float64()*3-1.5, 4, 10)
		// Long nights tend to follow short work days and vice versa.
		work := clamp(8.0-(sleep-7.0)+rand.Float64()*2-1, 4, 12)

		entries = append(entries, Entry{
			Date:       today.Add(-i),
			SleepHours: round1(sleep),
			Focus:      clampInt(6+rand.IntN(6)-2, 1, 10),
			Mood:       clampInt(6+rand.IntN(6)-2, 1, 10),
			WorkHours:  round1(work),
			Social:     Socials[rand.IntN(len(Socials))],
			Timestamp:  date.Timestamp(now.AddDate(0, 0, -i)),
		})
	}
	return entries
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(hi, math.Max(lo, v))
}

func clampInt(v, lo, hi int) int {
	return max(lo, min(hi, v))
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
