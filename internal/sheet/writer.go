package sheet

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/JonMunkholm/FileTransform/internal/core"
)

// WriteCSV writes rs to path as CSV: a header row, then one record per row.
// An existing file is truncated. Errors wrap core.ErrWriteFailure.
func WriteCSV(path string, rs *core.RowSet) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", core.ErrWriteFailure, path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%w: %s: %w", core.ErrWriteFailure, path, cerr)
		}
	}()

	if err := Encode(f, rs); err != nil {
		return fmt.Errorf("%w: %s: %w", core.ErrWriteFailure, path, err)
	}
	return nil
}

// Encode writes rs as CSV to w.
func Encode(w io.Writer, rs *core.RowSet) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(rs.Columns()); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i := 0; i < rs.Len(); i++ {
		if err := cw.Write(rs.Record(i)); err != nil {
			return fmt.Errorf("write row %d: %w", i+1, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush: %w", err)
	}
	return nil
}
