package batch

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/JonMunkholm/FileTransform/internal/core"
	"github.com/JonMunkholm/FileTransform/internal/logging"
)

// SpreadsheetExtensions are the file extensions Scan accepts, lowercased.
var SpreadsheetExtensions = []string{".xlsx", ".xlsm", ".xls"}

// TempFilePrefix marks the lock files Excel leaves next to open workbooks.
const TempFilePrefix = "~"

// SkipReason says why Scan passed over a directory entry.
type SkipReason string

const (
	SkipNone      SkipReason = ""
	SkipDirectory SkipReason = "directory"
	SkipTempFile  SkipReason = "temporary file"
	SkipExtension SkipReason = "not a spreadsheet"
)

// skipReason classifies one directory entry.
func skipReason(entry fs.DirEntry) SkipReason {
	name := entry.Name()
	switch {
	case entry.IsDir():
		return SkipDirectory
	case strings.HasPrefix(name, TempFilePrefix):
		return SkipTempFile
	case !isSpreadsheet(name):
		return SkipExtension
	}
	return SkipNone
}

func isSpreadsheet(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range SpreadsheetExtensions {
		if ext == e {
			return true
		}
	}
	return false
}

// Scan lists the spreadsheet files in dir in name order. Skipped entries
// are logged at debug level only.
func Scan(ctx context.Context, dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", core.ErrTargetDirNotFound, dir)
		}
		return nil, fmt.Errorf("reading directory %s: %w", dir, err)
	}

	log := logging.FromContext(ctx)
	files := make([]string, 0, len(entries))
	for _, entry := range entries {
		if reason := skipReason(entry); reason != SkipNone {
			log.Debug("skipping entry", "name", entry.Name(), "reason", string(reason))
			continue
		}
		files = append(files, entry.Name())
	}

	return files, nil
}

// OutputPaths returns the intermediate and final CSV paths for a source
// file in dir.
func OutputPaths(dir, name string) (intermediate, final string) {
	base := strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))
	return filepath.Join(dir, base+"_intermediate.csv"), filepath.Join(dir, base+"_final.csv")
}
