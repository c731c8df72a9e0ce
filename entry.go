package palesignal

import (
	"fmt"
	"strings"

	"github.com/snarigra/palesignal/date"
)

// Social is the kind of social interaction recorded for a day. It is an
// ordered, closed set: each value represents a deeper interaction than the
// previous one.
type Social string

const (
	SocialNone       Social = "none"
	SocialOnline     Social = "online"
	SocialCasual     Social = "casual"
	SocialMeaningful Social = "meaningful"
	SocialDeep       Social = "deep"
)

// Socials lists all social interaction kinds, from shallowest to deepest.
var Socials = []Social{SocialNone, SocialOnline, SocialCasual, SocialMeaningful, SocialDeep}

// Known reports whether s is one of the defined social interaction kinds.
func (s Social) Known() bool {
	for _, v := range Socials {
		if s == v {
			return true
		}
	}
	return false
}

// Rank returns the ordinal position of s in the interaction-depth order,
// starting at 0 for "none". Unknown values rank as 0.
func (s Social) Rank() int {
	for i, v := range Socials {
		if s == v {
			return i
		}
	}
	return 0
}

// ParseSocial parses a string into a Social.
func ParseSocial(str string) (Social, error) {
	s := Social(str)
	if !s.Known() {
		return "", fmt.Errorf("social must be one of: %s", socialList())
	}
	return s, nil
}

func socialList() string {
	names := make([]string, len(Socials))
	for i, v := range Socials {
		names[i] = string(v)
	}
	return strings.Join(names, ", ")
}

// Metric identifies one of the four numeric daily metrics. Social is not a
// Metric: it is categorical and excluded from numeric statistics.
type Metric int

const (
	SleepHours Metric = iota
	Focus
	Mood
	WorkHours
)

// Metrics lists all numeric metrics in their fixed enumeration order.
var Metrics = []Metric{SleepHours, Focus, Mood, WorkHours}

func (m Metric) String() string {
	switch m {
	case SleepHours:
		return "sleep_hours"
	case Focus:
		return "focus"
	case Mood:
		return "mood"
	case WorkHours:
		return "work_hours"
	default:
		return "unknown"
	}
}

// ParseMetric parses a serialized metric name into a Metric.
func ParseMetric(s string) (Metric, error) {
	switch s {
	case "sleep_hours":
		return SleepHours, nil
	case "focus":
		return Focus, nil
	case "mood":
		return Mood, nil
	case "work_hours":
		return WorkHours, nil
	default:
		return 0, fmt.Errorf("unknown metric: %q", s)
	}
}

// Value extracts the metric's value from an entry.
func (m Metric) Value(e Entry) float64 {
	switch m {
	case SleepHours:
		return e.SleepHours
	case Focus:
		return float64(e.Focus)
	case Mood:
		return float64(e.Mood)
	case WorkHours:
		return float64(e.WorkHours)
	default:
		return 0
	}
}

// Entry is one calendar day's signal record. Entries are immutable once
// persisted: updating a day is modeled as replacing the whole entry.
type Entry struct {
	Date       date.Date `json:"date"`
	SleepHours float64   `json:"sleep_hours"`
	Focus      int       `json:"focus"`
	Mood       int       `json:"mood"`
	WorkHours  float64   `json:"work_hours"`
	Social     Social    `json:"social"`
	Timestamp  string    `json:"timestamp"`
}

// ValidateEntry checks a candidate entry against the field constraints and
// returns nil or a *ValidationError naming the first failing field. Checks
// run in a fixed priority order and stop at the first failure: missing
// field, malformed timestamp, then each range in field order, then the
// social category.
func ValidateEntry(e Entry) error {
	if e.Date.IsZero() {
		return &ValidationError{Field: "date", Reason: "missing required field"}
	}
	if e.Timestamp == "" {
		return &ValidationError{Field: "timestamp", Reason: "missing required field"}
	}
	if e.Social == "" {
		return &ValidationError{Field: "social", Reason: "missing required field"}
	}
	if _, err := date.ParseTimestamp(e.Timestamp); err != nil {
		return &ValidationError{Field: "timestamp", Reason: "must be an ISO-8601 date-time"}
	}
	if e.SleepHours < 0 || e.SleepHours > 24 {
		return &ValidationError{Field: "sleep_hours", Reason: "must be between 0 and 24"}
	}
	if e.Focus < 1 || e.Focus > 10 {
		return &ValidationError{Field: "focus", Reason: "must be between 1 and 10"}
	}
	if e.Mood < 1 || e.Mood > 10 {
		return &ValidationError{Field: "mood", Reason: "must be between 1 and 10"}
	}
	if e.WorkHours < 0 || e.WorkHours > 24 {
		return &ValidationError{Field: "work_hours", Reason: "must be between 0 and 24"}
	}
	if !e.Social.Known() {
		return &ValidationError{Field: "social", Reason: "must be one of: " + socialList()}
	}
	return nil
}
