package batch

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JonMunkholm/FileTransform/internal/core"
)

func TestScan_SkipRules(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{
		"Enrollment_Oct.xlsx",
		"usage.XLSX",
		"Usage_macro.xlsm",
		"old_usage.xls",
		"~$Enrollment_Oct.xlsx",
		"notes.txt",
		"Enrollment_Oct_final.csv",
		"README",
	} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "archive.xlsx"), 0o755))

	files, err := Scan(context.Background(), dir)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"Enrollment_Oct.xlsx",
		"Usage_macro.xlsm",
		"old_usage.xls",
		"usage.XLSX",
	}, files)
}

func TestScan_MissingDir(t *testing.T) {
	_, err := Scan(context.Background(), filepath.Join(t.TempDir(), "nope"))
	assert.ErrorIs(t, err, core.ErrTargetDirNotFound)
}

func TestOutputPaths(t *testing.T) {
	tests := []struct {
		name             string
		wantIntermediate string
		wantFinal        string
	}{
		{"Enrollment.xlsx", "Enrollment_intermediate.csv", "Enrollment_final.csv"},
		{"Usage.March.xlsm", "Usage.March_intermediate.csv", "Usage.March_final.csv"},
		{"noext", "noext_intermediate.csv", "noext_final.csv"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inter, final := OutputPaths("/data", tt.name)
			assert.Equal(t, filepath.Join("/data", tt.wantIntermediate), inter)
			assert.Equal(t, filepath.Join("/data", tt.wantFinal), final)
		})
	}
}
