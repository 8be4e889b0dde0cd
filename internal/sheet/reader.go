package sheet

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/JonMunkholm/FileTransform/internal/core"
)

// ReadFirstSheet reads the first worksheet of the workbook at path.
//
// Header names are cleaned with [core.CleanHeader]. A blank header becomes
// "Unnamed: N" (N is the zero-based column index) and a repeated header
// gets a ".1", ".2", ... suffix, so every column has a unique name. Rows
// with no values are dropped.
//
// Errors wrap core.ErrSourceNotFound, core.ErrLegacyWorkbook or
// core.ErrReadFailure.
func ReadFirstSheet(path string) (*core.RowSet, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", core.ErrSourceNotFound, path)
		}
		return nil, fmt.Errorf("%w: %s: %w", core.ErrReadFailure, path, err)
	}

	legacy, err := IsLegacyWorkbook(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", core.ErrReadFailure, path, err)
	}
	if legacy {
		return nil, fmt.Errorf("%w: %s", core.ErrLegacyWorkbook, path)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", core.ErrReadFailure, path, err)
	}
	defer f.Close()

	name := f.GetSheetName(0)
	if name == "" {
		return nil, fmt.Errorf("%w: %s: workbook has no sheets", core.ErrReadFailure, path)
	}

	rs, err := newSheetReader(f, name).read()
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", core.ErrReadFailure, path, err)
	}
	return rs, nil
}

// sheetReader types the raw cells of one worksheet.
type sheetReader struct {
	f        *excelize.File
	sheet    string
	date1904 bool
	styles   map[int]bool // style index -> has a date number format
}

func newSheetReader(f *excelize.File, sheet string) *sheetReader {
	r := &sheetReader{f: f, sheet: sheet, styles: make(map[int]bool)}
	if props, err := f.GetWorkbookProps(); err == nil && props.Date1904 != nil {
		r.date1904 = *props.Date1904
	}
	return r
}

func (r *sheetReader) read() (*core.RowSet, error) {
	rows, err := r.f.GetRows(r.sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("read rows: %w", err)
	}
	if len(rows) == 0 {
		return core.NewRowSet(nil)
	}

	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}

	columns := headerNames(rows[0], width)
	rs, err := core.NewRowSet(columns)
	if err != nil {
		return nil, err
	}

	for i, raw := range rows[1:] {
		rowNum := i + 2 // 1-based, after the header
		row := make(core.Row, len(raw))
		for j, v := range raw {
			if v == "" {
				continue
			}
			c, err := r.cell(j+1, rowNum, v)
			if err != nil {
				return nil, err
			}
			row[columns[j]] = c
		}
		if len(row) == 0 {
			continue
		}
		rs.Append(row)
	}

	return rs, nil
}

// cell converts one raw value at (col, row) to a typed cell.
func (r *sheetReader) cell(col, row int, raw string) (core.Cell, error) {
	ref, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return core.Cell{}, err
	}

	typ, err := r.f.GetCellType(r.sheet, ref)
	if err != nil {
		return core.Cell{}, fmt.Errorf("cell %s: %w", ref, err)
	}

	switch typ {
	case excelize.CellTypeBool:
		if raw == "1" {
			return core.TextCell("TRUE"), nil
		}
		return core.TextCell("FALSE"), nil

	case excelize.CellTypeDate:
		if t, ok := core.ParseDate(raw); ok {
			return core.DateCell(t), nil
		}
		return core.TextCell(raw), nil

	case excelize.CellTypeUnset, excelize.CellTypeNumber:
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return core.TextCell(raw), nil
		}
		if r.isDateStyled(ref) {
			if t, err := excelize.ExcelDateToTime(v, r.date1904); err == nil {
				return core.DateCell(t.Round(time.Second)), nil
			}
		}
		return core.NumberCell(v), nil
	}

	return core.TextCell(raw), nil
}

// isDateStyled reports whether the cell's number format displays a date.
func (r *sheetReader) isDateStyled(ref string) bool {
	idx, err := r.f.GetCellStyle(r.sheet, ref)
	if err != nil || idx == 0 {
		return false
	}
	if isDate, ok := r.styles[idx]; ok {
		return isDate
	}

	isDate := false
	if style, err := r.f.GetStyle(idx); err == nil && style != nil {
		if style.CustomNumFmt != nil {
			isDate = isDateFormatCode(*style.CustomNumFmt)
		} else {
			isDate = isBuiltinDateFormat(style.NumFmt)
		}
	}
	r.styles[idx] = isDate
	return isDate
}

// isBuiltinDateFormat reports whether a built-in number format ID shows a
// calendar date. Time-only formats (18-21, 45-47) are excluded.
func isBuiltinDateFormat(id int) bool {
	switch {
	case id >= 14 && id <= 17, id == 22:
		return true
	case id >= 27 && id <= 36, id >= 50 && id <= 58:
		return true
	}
	return false
}

// isDateFormatCode reports whether a custom format code has a year or day
// token outside quoted literals, escapes and bracketed sections.
func isDateFormatCode(code string) bool {
	code = strings.ToLower(code)
	inQuote, inBracket := false, false
	for i := 0; i < len(code); i++ {
		ch := code[i]
		switch {
		case inQuote:
			inQuote = ch != '"'
		case inBracket:
			inBracket = ch != ']'
		case ch == '"':
			inQuote = true
		case ch == '[':
			inBracket = true
		case ch == '\\', ch == '_', ch == '*':
			i++ // skip the escaped or padding character
		case ch == 'y', ch == 'd':
			return true
		}
	}
	return false
}

// headerNames builds unique column names from the header row.
func headerNames(header []string, width int) []string {
	names := make([]string, width)
	used := make(map[string]bool, width)

	for i := 0; i < width; i++ {
		name := ""
		if i < len(header) {
			name = core.CleanHeader(header[i])
		}
		if name == "" {
			name = fmt.Sprintf("Unnamed: %d", i)
		}
		if used[name] {
			for n := 1; ; n++ {
				candidate := fmt.Sprintf("%s.%d", name, n)
				if !used[candidate] {
					name = candidate
					break
				}
			}
		}
		used[name] = true
		names[i] = name
	}

	return names
}
