package core

// cleanup.go repairs quoting artifacts in serialized CSV text.
//
// QuoteWrap and CustomWrap put literal '"' characters into cells. The CSV
// writer then quotes those fields and doubles the embedded quotes, so the
// value "Jane Doe" is written as """Jane Doe""". The patch collapses each
// """ back to a single " on the finished text. It never parses CSV
// structure and must only run after serialization.

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
)

// Patch is a textual repair applied to a fully serialized output file.
// Implementations are tied to a writer's quoting convention and can be
// swapped without touching the rule engine.
type Patch interface {
	Name() string
	Apply(text string) string
}

// TripleQuotePatch replaces every """ with ". Matches are taken left to
// right without overlap, so """""" becomes "".
type TripleQuotePatch struct{}

func (TripleQuotePatch) Name() string { return "triple_quote" }

func (TripleQuotePatch) Apply(text string) string {
	return strings.ReplaceAll(text, `"""`, `"`)
}

// DefaultPatch is the patch matching encoding/csv quoting.
var DefaultPatch Patch = TripleQuotePatch{}

// CleanupFile reads src, applies p to the whole content and writes dst.
// If src does not exist it returns an error wrapping ErrCleanupTargetMissing
// and writes nothing.
func CleanupFile(p Patch, src, dst string) error {
	if p == nil {
		p = DefaultPatch
	}

	content, err := os.ReadFile(src)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrCleanupTargetMissing, src)
		}
		return fmt.Errorf("read %s: %w", src, err)
	}

	if err := os.WriteFile(dst, []byte(p.Apply(string(content))), 0o644); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrWriteFailure, dst, err)
	}
	return nil
}
