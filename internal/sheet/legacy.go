package sheet

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// ole2Magic starts every Compound File Binary container, which is how
// Excel 97-2003 .xls workbooks are stored.
var ole2Magic = []byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}

// IsLegacyWorkbook reports whether path holds an Excel 97-2003 workbook.
// An OLE2 container named .xlsx or .xlsm is an encrypted modern workbook,
// not a legacy one, and is left for excelize to reject.
func IsLegacyWorkbook(path string) (bool, error) {
	head, err := readHead(path, len(ole2Magic))
	if err != nil {
		return false, err
	}
	if !bytes.HasPrefix(head, ole2Magic) {
		return false, nil
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return false, nil
	}
	return true, nil
}

func readHead(path string, n int) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	buf := make([]byte, n)
	read, err := io.ReadFull(f, buf)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return nil, err
	}
	return buf[:read], nil
}
