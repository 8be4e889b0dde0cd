package core

import "fmt"

// Row maps column names to cells. Missing keys read as null.
type Row map[string]Cell

// RowSet is the in-memory table for one source file: an ordered column list
// plus ordered rows. Columns are matched by exact name.
type RowSet struct {
	columns []string
	index   map[string]int
	rows    []Row
}

// NewRowSet creates an empty row-set with the given column order.
// Returns an error if a column name is empty or repeated.
func NewRowSet(columns []string) (*RowSet, error) {
	rs := &RowSet{
		columns: make([]string, 0, len(columns)),
		index:   make(map[string]int, len(columns)),
	}
	for _, c := range columns {
		if c == "" {
			return nil, fmt.Errorf("empty column name at position %d", len(rs.columns))
		}
		if _, dup := rs.index[c]; dup {
			return nil, fmt.Errorf("duplicate column %q", c)
		}
		rs.index[c] = len(rs.columns)
		rs.columns = append(rs.columns, c)
	}
	return rs, nil
}

// MustRowSet is NewRowSet for fixed column lists. Panics on invalid columns.
func MustRowSet(columns ...string) *RowSet {
	rs, err := NewRowSet(columns)
	if err != nil {
		panic(err)
	}
	return rs
}

// Columns returns the column names in source order.
func (rs *RowSet) Columns() []string {
	out := make([]string, len(rs.columns))
	copy(out, rs.columns)
	return out
}

// HasColumn reports whether name is one of the row-set's columns.
func (rs *RowSet) HasColumn(name string) bool {
	_, ok := rs.index[name]
	return ok
}

// Len returns the number of rows.
func (rs *RowSet) Len() int { return len(rs.rows) }

// Append adds a row. Keys that are not columns of the row-set are dropped.
func (rs *RowSet) Append(r Row) {
	row := make(Row, len(r))
	for k, v := range r {
		if rs.HasColumn(k) {
			row[k] = v
		}
	}
	rs.rows = append(rs.rows, row)
}

// Cell returns the cell at row i, column col. Out-of-range rows and
// unknown columns read as null.
func (rs *RowSet) Cell(i int, col string) Cell {
	if i < 0 || i >= len(rs.rows) {
		return NullCell()
	}
	return rs.rows[i][col]
}

// Set replaces the cell at row i, column col. Unknown columns and
// out-of-range rows are ignored.
func (rs *RowSet) Set(i int, col string, c Cell) {
	if i < 0 || i >= len(rs.rows) || !rs.HasColumn(col) {
		return
	}
	rs.rows[i][col] = c
}

// Record returns row i as text fields in column order, for serialization.
func (rs *RowSet) Record(i int) []string {
	out := make([]string, len(rs.columns))
	for j, col := range rs.columns {
		out[j] = rs.rows[i][col].Text()
	}
	return out
}

// Clone returns a deep copy of the row-set.
func (rs *RowSet) Clone() *RowSet {
	cp := &RowSet{
		columns: rs.Columns(),
		index:   make(map[string]int, len(rs.index)),
		rows:    make([]Row, len(rs.rows)),
	}
	for k, v := range rs.index {
		cp.index[k] = v
	}
	for i, r := range rs.rows {
		row := make(Row, len(r))
		for k, v := range r {
			row[k] = v
		}
		cp.rows[i] = row
	}
	return cp
}
