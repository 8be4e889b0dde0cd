package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for the per-file pipeline. Callers wrap them with %w and
// test with errors.Is; MapError turns them into coded user messages.
var (
	ErrSourceNotFound       = errors.New("source file not found")
	ErrReadFailure          = errors.New("source file unreadable")
	ErrUnrecognizedCategory = errors.New("unrecognized file category")
	ErrTransformFailure     = errors.New("transform failed")
	ErrWriteFailure         = errors.New("output write failed")
	ErrCleanupTargetMissing = errors.New("cleanup target missing")
	ErrIntermediateRemoval  = errors.New("intermediate file removal failed")
	ErrTargetDirNotFound    = errors.New("target directory not found")
)

// ErrLegacyWorkbook wraps ErrReadFailure for Excel 97-2003 (OLE2) files,
// which the reader cannot open.
var ErrLegacyWorkbook = fmt.Errorf("%w: legacy .xls workbook", ErrReadFailure)
