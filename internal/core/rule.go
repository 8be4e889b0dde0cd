package core

import (
	"fmt"
	"sort"
	"strings"
)

// RuleKind identifies a column transform.
type RuleKind int

const (
	KindQuoteWrap RuleKind = iota
	KindCustomWrap
	KindDateFormat
	KindZeroPad
	KindStripSeparator
)

// String returns the rule kind name used in logs and reports.
func (k RuleKind) String() string {
	switch k {
	case KindQuoteWrap:
		return "quote_wrap"
	case KindCustomWrap:
		return "custom_wrap"
	case KindDateFormat:
		return "date_format"
	case KindZeroPad:
		return "zero_pad"
	case KindStripSeparator:
		return "strip_separator"
	default:
		return fmt.Sprintf("rule(%d)", int(k))
	}
}

// Default parameters for the parameterized rules.
const (
	DefaultCustomPrefix = `"'`
	DefaultCustomSuffix = `'"`
	DefaultDateLayout   = "2006-01-02"
	DefaultSeparator    = ","
)

// Rule is one column transform bound to its target columns.
//
// Transform is only called for non-null cells of columns present in the
// row-set; the engine enforces both conditions.
type Rule interface {
	Kind() RuleKind
	Targets() []string
	Transform(column string, c Cell) Cell
	Describe() string
}

// QuoteWrap surrounds each value with double quotes. Wrapping is literal
// concatenation, so re-applying it nests quotes: "a" becomes ""a"".
type QuoteWrap struct {
	Columns []string
}

func (r QuoteWrap) Kind() RuleKind    { return KindQuoteWrap }
func (r QuoteWrap) Targets() []string { return r.Columns }

func (r QuoteWrap) Transform(_ string, c Cell) Cell {
	return TextCell(`"` + c.Text() + `"`)
}

func (r QuoteWrap) Describe() string {
	return "Encapsulating text in double quotes for columns: " + strings.Join(r.Columns, ", ")
}

// CustomWrap surrounds each value with Prefix and Suffix. Empty Prefix and
// Suffix fall back to DefaultCustomPrefix and DefaultCustomSuffix, which
// produce a single-quoted value inside double quotes: X becomes "'X'".
type CustomWrap struct {
	Columns []string
	Prefix  string
	Suffix  string
}

func (r CustomWrap) Kind() RuleKind    { return KindCustomWrap }
func (r CustomWrap) Targets() []string { return r.Columns }

func (r CustomWrap) Transform(_ string, c Cell) Cell {
	return TextCell(r.prefix() + c.Text() + r.suffix())
}

func (r CustomWrap) Describe() string {
	return fmt.Sprintf("Applying custom encapsulation (%s{value}%s) to columns: %s",
		r.prefix(), r.suffix(), strings.Join(r.Columns, ", "))
}

func (r CustomWrap) prefix() string {
	if r.Prefix == "" {
		return DefaultCustomPrefix
	}
	return r.Prefix
}

func (r CustomWrap) suffix() string {
	if r.Suffix == "" {
		return DefaultCustomSuffix
	}
	return r.Suffix
}

// DateFormat reformats each value as a date using Layout (Go reference
// time notation, default DefaultDateLayout). Values that cannot be read as a
// date become null.
type DateFormat struct {
	Columns []string
	Layout  string
}

func (r DateFormat) Kind() RuleKind    { return KindDateFormat }
func (r DateFormat) Targets() []string { return r.Columns }

func (r DateFormat) Transform(_ string, c Cell) Cell {
	layout := r.layout()
	if c.Kind == CellDate {
		return TextCell(c.Time.Format(layout))
	}
	t, ok := ParseDate(c.Text())
	if !ok {
		return NullCell()
	}
	return TextCell(t.Format(layout))
}

func (r DateFormat) Describe() string {
	return fmt.Sprintf("Formatting dates to %s for columns: %s", r.layout(), strings.Join(r.Columns, ", "))
}

func (r DateFormat) layout() string {
	if r.Layout == "" {
		return DefaultDateLayout
	}
	return r.Layout
}

// ZeroPad truncates each value at the first '.' and left-pads it with zeros
// to the column's width. Values already at or beyond the width are not
// truncated.
type ZeroPad struct {
	Widths map[string]int
}

func (r ZeroPad) Kind() RuleKind { return KindZeroPad }

// Targets returns the padded columns sorted by name so rule application
// order is stable.
func (r ZeroPad) Targets() []string {
	cols := make([]string, 0, len(r.Widths))
	for c := range r.Widths {
		cols = append(cols, c)
	}
	sort.Strings(cols)
	return cols
}

func (r ZeroPad) Transform(column string, c Cell) Cell {
	return TextCell(zeroFill(truncateAtDot(c.Text()), r.Widths[column]))
}

func (r ZeroPad) Describe() string {
	parts := make([]string, 0, len(r.Widths))
	for _, col := range r.Targets() {
		parts = append(parts, fmt.Sprintf("%s:%d", col, r.Widths[col]))
	}
	return "Applying zero-padding for columns: " + strings.Join(parts, ", ")
}

// StripSeparator removes every occurrence of Sep (default ",") from each
// value.
type StripSeparator struct {
	Columns []string
	Sep     string
}

func (r StripSeparator) Kind() RuleKind    { return KindStripSeparator }
func (r StripSeparator) Targets() []string { return r.Columns }

func (r StripSeparator) Transform(_ string, c Cell) Cell {
	return TextCell(strings.ReplaceAll(c.Text(), r.sep(), ""))
}

func (r StripSeparator) Describe() string {
	return fmt.Sprintf("Removing %q separators from columns: %s", r.sep(), strings.Join(r.Columns, ", "))
}

func (r StripSeparator) sep() string {
	if r.Sep == "" {
		return DefaultSeparator
	}
	return r.Sep
}
