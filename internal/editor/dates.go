package editor

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// DayLayout is the day-precision format the date inputs use.
const DayLayout = "2006-01-02"

// ParseDay converts a day string to a timestamp at local midnight. Unset or
// unparseable input yields nil, never an error; a malformed date is treated
// as absent.
func ParseDay(s string, loc *time.Location) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	t, err := time.ParseInLocation(DayLayout, s, loc)
	if err != nil {
		return nil
	}
	return &t
}

// FormatDay converts a stored timestamp back to the day string for the date
// input. The timestamp is viewed in the editor's location so the round trip
// has no timezone drift.
func FormatDay(t *time.Time, loc *time.Location) string {
	if t == nil {
		return ""
	}
	return t.In(loc).Format(DayLayout)
}

// SplitInterviewQuestions normalizes the free-text question field: CRLF is
// folded to LF, the text splits on commas and line breaks, entries are
// trimmed and empties dropped.
func SplitInterviewQuestions(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	var out []string
	for _, part := range strings.FieldsFunc(text, func(r rune) bool {
		return r == ',' || r == '\n'
	}) {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// ExpiryHint recomputes the expiry helper text on input change. The date is
// considered live until the end of its day.
func ExpiryHint(dayStr string, now time.Time, loc *time.Location) string {
	day := ParseDay(dayStr, loc)
	if day == nil {
		return ""
	}
	endOfDay := day.Add(24*time.Hour - time.Second)
	diffDays := int(math.Ceil(endOfDay.Sub(now).Hours() / 24))
	switch {
	case diffDays < 0:
		return "This date is in the past!"
	case diffDays == 0:
		return "Expires today"
	default:
		return fmt.Sprintf("Expires in %d days", diffDays)
	}
}
