package batch

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/JonMunkholm/FileTransform/internal/core"
	_ "github.com/JonMunkholm/FileTransform/internal/core/rules" // register rule sets
	"github.com/JonMunkholm/FileTransform/internal/logging"
	"github.com/JonMunkholm/FileTransform/internal/sheet"
)

// Source loads a spreadsheet into a row-set.
type Source interface {
	Read(path string) (*core.RowSet, error)
}

// Sink serializes a row-set to path.
type Sink interface {
	Write(path string, rs *core.RowSet) error
}

// SourceFunc adapts a function to Source.
type SourceFunc func(path string) (*core.RowSet, error)

func (f SourceFunc) Read(path string) (*core.RowSet, error) { return f(path) }

// SinkFunc adapts a function to Sink.
type SinkFunc func(path string, rs *core.RowSet) error

func (f SinkFunc) Write(path string, rs *core.RowSet) error { return f(path, rs) }

// Processor runs the per-file pipeline. The zero value is not usable; use
// NewProcessor.
type Processor struct {
	Source Source
	Sink   Sink
	Patch  core.Patch
	Remove func(path string) error
}

// NewProcessor returns a Processor reading workbooks with excelize,
// writing CSV with encoding/csv and cleaning with core.DefaultPatch.
func NewProcessor() *Processor {
	return &Processor{
		Source: SourceFunc(sheet.ReadFirstSheet),
		Sink:   SinkFunc(sheet.WriteCSV),
		Patch:  core.DefaultPatch,
		Remove: os.Remove,
	}
}

// Run processes every spreadsheet in dir and returns the report.
// A run ID is generated when ctx carries none. The context is checked
// between files; on cancellation the partial report is returned with the
// context's error.
func (p *Processor) Run(ctx context.Context, dir string) (*Report, error) {
	if logging.RunID(ctx) == "" {
		ctx = logging.WithRunID(ctx, uuid.NewString())
	}
	log := logging.FromContext(ctx)

	report := &Report{RunID: logging.RunID(ctx), Dir: dir, Started: time.Now()}
	defer func() { report.Finished = time.Now() }()

	log.Info("starting scan", "dir", dir)
	files, err := Scan(ctx, dir)
	if err != nil {
		return report, err
	}

	for _, name := range files {
		if err := ctx.Err(); err != nil {
			log.Warn("run cancelled", "remaining", len(files)-len(report.Results))
			return report, fmt.Errorf("run cancelled: %w", err)
		}
		report.add(p.ProcessFile(ctx, dir, name))
	}

	log.Info("scan finished",
		"processed", report.Processed,
		"failed", report.Failed,
		"skipped", report.Skipped,
	)
	return report, nil
}

// ProcessFile runs one file through the pipeline. It never panics on a
// faulty file; every failure is recorded in the result.
func (p *Processor) ProcessFile(ctx context.Context, dir, name string) (res FileResult) {
	start := time.Now()
	path := filepath.Join(dir, name)
	intermediate, final := OutputPaths(dir, name)

	res = FileResult{File: name, Category: core.CategoryOf(name)}
	log := logging.WithFields(ctx, "file", name)
	defer func() { res.Duration = time.Since(start) }()

	log.Info("processing file", "category", string(res.Category))

	fail := func(stage string, err error) FileResult {
		res.Err = err
		res.addf("%s: %s", stage, core.FormatUserError(err))
		logFailure(log, stage, err)
		return res
	}

	rs, err := p.Source.Read(path)
	if err != nil {
		return fail("read", err)
	}
	log.Info("read source", "rows", rs.Len(), "columns", len(rs.Columns()))

	set, err := core.Classify(name)
	if err != nil {
		res.Skipped = true
		res.Err = err
		res.addf("skipped: %s", core.FormatUserError(err))
		log.Warn("filename does not contain 'Enrollment' or 'Usage', skipping", "code", res.Code())
		return res
	}

	res.Rules, err = core.ApplyDetailed(set, rs)
	logRules(log, res.Rules)
	if err != nil {
		return fail("transform", err)
	}

	if err := p.Sink.Write(intermediate, rs); err != nil {
		return fail("write", err)
	}
	log.Debug("intermediate written", "path", intermediate)

	if err := core.CleanupFile(p.Patch, intermediate, final); err != nil {
		return fail("cleanup", err)
	}
	res.Success = true
	res.Output = final
	res.addf("saved %s", filepath.Base(final))
	log.Info("final csv written", "path", final)

	if err := p.Remove(intermediate); err != nil {
		rerr := fmt.Errorf("%w: %s: %w", core.ErrIntermediateRemoval, intermediate, err)
		res.addf("warning: %s", core.FormatUserError(rerr))
		log.Error("intermediate file not removed", "code", core.MapError(rerr).Code, "error", err)
		return res
	}
	log.Debug("intermediate removed", "path", intermediate)

	return res
}

func logFailure(log *slog.Logger, stage string, err error) {
	msg := core.MapError(err)
	log.Error("file failed",
		"stage", stage,
		"code", msg.Code,
		"error", err,
		"action", msg.Action,
	)
}

func logRules(log *slog.Logger, results []core.RuleResult) {
	for _, r := range results {
		if len(r.Applied) == 0 {
			log.Debug("rule skipped, no target columns present", "rule", r.Kind.String(), "missing", r.Missing)
			continue
		}
		log.Info("rule applied",
			"rule", r.Describe,
			"columns", r.Applied,
			"changed", r.Changed,
			"nulled", r.Nulled,
		)
		if len(r.Missing) > 0 {
			log.Debug("rule columns not present", "rule", r.Kind.String(), "missing", r.Missing)
		}
	}
}
