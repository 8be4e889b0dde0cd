package core

import (
	"strconv"
	"time"
)

// CellKind identifies the type of value held by a Cell.
type CellKind int

const (
	CellNull CellKind = iota
	CellText
	CellNumber
	CellDate
)

// String returns the kind name used in log output.
func (k CellKind) String() string {
	switch k {
	case CellText:
		return "text"
	case CellNumber:
		return "number"
	case CellDate:
		return "date"
	default:
		return "null"
	}
}

// Cell is a single typed value read from a spreadsheet.
// The zero value is a null cell.
type Cell struct {
	Kind CellKind
	Str  string
	Num  float64
	Time time.Time
}

// NullCell returns an empty cell.
func NullCell() Cell { return Cell{} }

// TextCell returns a text cell holding s.
func TextCell(s string) Cell { return Cell{Kind: CellText, Str: s} }

// NumberCell returns a numeric cell holding v.
func NumberCell(v float64) Cell { return Cell{Kind: CellNumber, Num: v} }

// DateCell returns a date cell holding t.
func DateCell(t time.Time) Cell { return Cell{Kind: CellDate, Time: t} }

// IsNull reports whether the cell holds no value.
func (c Cell) IsNull() bool { return c.Kind == CellNull }

// Text is the canonical cell-to-text coercion used before every text rule
// and by the CSV writer.
//
//   - Text cells are returned unchanged.
//   - Numbers never use an exponent and carry no trailing zeros: 7 -> "7",
//     1234.5 -> "1234.5".
//   - Dates at midnight render as "2006-01-02", otherwise "2006-01-02 15:04:05".
//   - Null cells render as "".
func (c Cell) Text() string {
	switch c.Kind {
	case CellText:
		return c.Str
	case CellNumber:
		return FormatNumber(c.Num)
	case CellDate:
		if c.Time.Hour() == 0 && c.Time.Minute() == 0 && c.Time.Second() == 0 && c.Time.Nanosecond() == 0 {
			return c.Time.Format(time.DateOnly)
		}
		return c.Time.Format(time.DateTime)
	default:
		return ""
	}
}

// FormatNumber renders a float in plain decimal notation with the shortest
// representation that round-trips.
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
