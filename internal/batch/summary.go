package batch

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/jedib0t/go-pretty/v6/table"
)

// Status returns "processed", "skipped" or "failed".
func (r *FileResult) Status() string {
	switch {
	case r.Success:
		return "processed"
	case r.Skipped:
		return "skipped"
	default:
		return "failed"
	}
}

// WriteSummary renders one table row per file followed by the totals.
func (r *Report) WriteSummary(w io.Writer) {
	if len(r.Results) == 0 {
		_, _ = fmt.Fprintln(w, "(no spreadsheet files found)")
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"File", "Category", "Status", "Code", "Output"})

	for _, res := range r.Results {
		output := ""
		if res.Output != "" {
			output = filepath.Base(res.Output)
		}
		t.AppendRow(table.Row{res.File, string(res.Category), res.Status(), res.Code(), output})
	}

	t.Render()
	_, _ = fmt.Fprintf(w, "%d files processed, %d failed, %d skipped\n", r.Processed, r.Failed, r.Skipped)
}
