package batch

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/JonMunkholm/FileTransform/internal/core"
)

// DefaultFolderName is the input folder looked up by FindTargetDir.
const DefaultFolderName = "FileTransform"

// ProgramDir returns the directory holding the running executable, with
// symlinks resolved. Falls back to the working directory.
func ProgramDir() (string, error) {
	exe, err := os.Executable()
	if err == nil {
		if resolved, rerr := filepath.EvalSymlinks(exe); rerr == nil {
			exe = resolved
		}
		return filepath.Dir(exe), nil
	}

	wd, werr := os.Getwd()
	if werr != nil {
		return "", fmt.Errorf("locate program: %w", err)
	}
	return wd, nil
}

// Candidates returns the folders FindTargetDir checks, in order.
func Candidates(programDir, name string) []string {
	return []string{
		filepath.Join(programDir, name),
		filepath.Join(filepath.Dir(programDir), name),
	}
}

// FindTargetDir returns programDir/name if it is a directory, else
// <parent of programDir>/name. Returns an error wrapping
// core.ErrTargetDirNotFound when neither exists.
func FindTargetDir(programDir, name string) (string, error) {
	if name == "" {
		name = DefaultFolderName
	}

	candidates := Candidates(programDir, name)
	for _, dir := range candidates {
		info, err := os.Stat(dir)
		if err == nil && info.IsDir() {
			return dir, nil
		}
	}

	return "", fmt.Errorf("%w: looked for %s and %s", core.ErrTargetDirNotFound, candidates[0], candidates[1])
}
