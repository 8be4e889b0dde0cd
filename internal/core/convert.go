package core

// convert.go provides the text and date coercions shared by the transform
// rules and the spreadsheet reader.
//
// Source workbooks are hand-maintained, so dates arrive in many shapes:
//   - ISO with or without zero padding (2024-3-5, 2024-03-05)
//   - US slash and dash forms (3/5/2024, 03-05-2024, 3/5/24)
//   - Month names (Mar 5, 2024, 5 Mar 2024)
//   - Compact integers (20240305)
//   - Any of the above followed by a time of day
//
// ParseDate tries them in a fixed order and reports failure instead of
// guessing.

import (
	"strings"
	"time"
)

// TwoDigitYearPivot defines how 2-digit years are interpreted.
// Years that would result in dates more than this many years in the future
// are assumed to be in the previous century.
var TwoDigitYearPivot = 20

// Date layouts split by year format for proper 2-digit year handling
var (
	twoDigitYearLayouts = []string{
		"1/2/06", "1-2-06", "1.2.06", "2-Jan-06",
	}
	fourDigitYearLayouts = []string{
		"2006-1-2", "2006/1/2", "2006.1.2",
		"1/2/2006", "1-2-2006", "1.2.2006",
		"Jan 2, 2006", "January 2, 2006", "2 Jan 2006", "2 January 2006",
		"2-Jan-2006",
		"20060102",
	}
	timeSuffixes = []string{
		"", " 15:04:05", " 15:04", "T15:04:05", " 3:04:05 PM", " 3:04 PM",
	}
)

// ParseDate parses s as a calendar date. It returns false when no known
// layout matches. Time-of-day components are accepted and preserved.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}

	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}

	// Try 4-digit year layouts first (unambiguous)
	for _, layout := range fourDigitYearLayouts {
		for _, suffix := range timeSuffixes {
			if t, err := time.Parse(layout+suffix, s); err == nil {
				return t, true
			}
		}
	}

	// Try 2-digit year layouts with pivot year adjustment
	pivotYear := time.Now().Year() + TwoDigitYearPivot
	for _, layout := range twoDigitYearLayouts {
		for _, suffix := range timeSuffixes {
			t, err := time.Parse(layout+suffix, s)
			if err != nil {
				continue
			}
			// time.Parse maps 00-68 to 2000-2068 and 69-99 to 1969-1999
			if t.Year() > pivotYear {
				t = t.AddDate(-100, 0, 0)
			}
			return t, true
		}
	}

	return time.Time{}, false
}

// CleanHeader normalizes a header cell: trims whitespace and strips a
// leading UTF-8 BOM that some exporters leave on the first column.
func CleanHeader(s string) string {
	s = strings.TrimPrefix(s, "\ufeff")
	return strings.TrimSpace(s)
}

// truncateAtDot drops everything from the first '.' onward.
func truncateAtDot(s string) string {
	if i := strings.IndexByte(s, '.'); i >= 0 {
		return s[:i]
	}
	return s
}

// zeroFill left-pads s with '0' to width characters. Strings already at or
// beyond width are returned unchanged.
func zeroFill(s string, width int) string {
	n := len([]rune(s))
	if n >= width {
		return s
	}
	return strings.Repeat("0", width-n) + s
}
