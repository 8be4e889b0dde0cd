package batch

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/JonMunkholm/FileTransform/internal/core"
	"github.com/JonMunkholm/FileTransform/internal/logging"
)

type MockSource struct {
	mock.Mock
}

func (m *MockSource) Read(path string) (*core.RowSet, error) {
	args := m.Called(path)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*core.RowSet), args.Error(1)
}

type MockSink struct {
	mock.Mock
}

func (m *MockSink) Write(path string, rs *core.RowSet) error {
	return m.Called(path, rs).Error(0)
}

func saveWorkbook(t *testing.T, path string, rows [][]any) {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()
	for r, row := range rows {
		ref, err := excelize.CoordinatesToCellName(1, r+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", ref, &row))
	}
	require.NoError(t, f.SaveAs(path))
}

func enrollmentRows() *core.RowSet {
	rs := core.MustRowSet("CUSTOMER_NAME", "CITY_GATE")
	rs.Append(core.Row{"CUSTOMER_NAME": core.TextCell("Jane Doe"), "CITY_GATE": core.NumberCell(7)})
	return rs
}

func TestRun_EndToEnd(t *testing.T) {
	dir := t.TempDir()

	saveWorkbook(t, filepath.Join(dir, "Enrollment_Oct.xlsx"), [][]any{
		{"CUSTOMER_NAME", "DT_EFF", "CITY_GATE", "TX_SERV_SUPP", "TOT_ANNUAL_USAGE"},
		{"Jane Doe", time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC), 7, "Acme Co", "1,234,567"},
	})
	saveWorkbook(t, filepath.Join(dir, "daily usage.xlsx"), [][]any{
		{"CUST_NAME", "USAGE", "DT_RDG_FROM"},
		{"Doe, Jane", 12500, "1/5/2024"},
	})
	saveWorkbook(t, filepath.Join(dir, "invoices.xlsx"), [][]any{{"A"}, {"1"}})
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Usage_broken.xlsx"), []byte("not a zip"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "~$Enrollment_Oct.xlsx"), []byte("lock"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("hi"), 0o644))

	ctx := logging.WithRunID(context.Background(), "run-e2e")
	report, err := NewProcessor().Run(ctx, dir)
	require.NoError(t, err)

	assert.Equal(t, "run-e2e", report.RunID)
	assert.Equal(t, 2, report.Processed)
	assert.Equal(t, 1, report.Failed)
	assert.Equal(t, 1, report.Skipped)
	require.Len(t, report.Results, 4)
	assert.False(t, report.Finished.Before(report.Started))

	enrollment, err := os.ReadFile(filepath.Join(dir, "Enrollment_Oct_final.csv"))
	require.NoError(t, err)
	assert.Equal(t,
		"CUSTOMER_NAME,DT_EFF,CITY_GATE,TX_SERV_SUPP,TOT_ANNUAL_USAGE\n"+
			`"Jane Doe",2023-01-15,0007,"'Acme Co'",1234567`+"\n",
		string(enrollment))

	usage, err := os.ReadFile(filepath.Join(dir, "daily usage_final.csv"))
	require.NoError(t, err)
	assert.Equal(t, "CUST_NAME,USAGE,DT_RDG_FROM\n"+`"Doe, Jane",12500,2024-01-05`+"\n", string(usage))

	for _, name := range []string{"Enrollment_Oct_intermediate.csv", "daily usage_intermediate.csv", "invoices_final.csv", "Usage_broken_final.csv"} {
		assert.NoFileExists(t, filepath.Join(dir, name))
	}

	failures := report.Failures()
	require.Len(t, failures, 1)
	assert.Equal(t, "Usage_broken.xlsx", failures[0].File)
	assert.Equal(t, "SRC002", failures[0].Code())
	assert.Equal(t, core.CategoryUsage, failures[0].Category)
}

func TestRun_MissingDir(t *testing.T) {
	_, err := NewProcessor().Run(context.Background(), filepath.Join(t.TempDir(), "gone"))
	assert.ErrorIs(t, err, core.ErrTargetDirNotFound)
}

func TestRun_GeneratesRunID(t *testing.T) {
	report, err := NewProcessor().Run(context.Background(), t.TempDir())
	require.NoError(t, err)
	assert.Len(t, report.RunID, 36)
	assert.Empty(t, report.Results)
}

func TestRun_Cancelled(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Usage.xlsx"), []byte("x"), 0o644))

	src := new(MockSource)
	p := NewProcessor()
	p.Source = src

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	report, err := p.Run(ctx, dir)
	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, report.Results)
	src.AssertNotCalled(t, "Read", mock.Anything)
}

func TestProcessFile_ReadFailure(t *testing.T) {
	dir := t.TempDir()
	src := new(MockSource)
	sink := new(MockSink)
	src.On("Read", filepath.Join(dir, "Enrollment.xlsx")).
		Return(nil, fmt.Errorf("%w: Enrollment.xlsx", core.ErrSourceNotFound))

	p := NewProcessor()
	p.Source, p.Sink = src, sink

	res := p.ProcessFile(context.Background(), dir, "Enrollment.xlsx")
	assert.False(t, res.Success)
	assert.False(t, res.Skipped)
	assert.Equal(t, "SRC001", res.Code())
	require.Len(t, res.Messages, 1)
	assert.Contains(t, res.Messages[0], "Code: SRC001")

	src.AssertExpectations(t)
	sink.AssertNotCalled(t, "Write", mock.Anything, mock.Anything)
}

func TestProcessFile_UnrecognizedIsSkipped(t *testing.T) {
	dir := t.TempDir()
	src := new(MockSource)
	sink := new(MockSink)
	src.On("Read", mock.Anything).Return(enrollmentRows(), nil)

	p := NewProcessor()
	p.Source, p.Sink = src, sink

	res := p.ProcessFile(context.Background(), dir, "billing.xlsx")
	assert.True(t, res.Skipped)
	assert.False(t, res.Success)
	assert.Equal(t, core.CategoryUnknown, res.Category)
	assert.Equal(t, "CAT001", res.Code())
	sink.AssertNotCalled(t, "Write", mock.Anything, mock.Anything)
}

func TestProcessFile_WriteFailure(t *testing.T) {
	dir := t.TempDir()
	src := new(MockSource)
	sink := new(MockSink)
	src.On("Read", mock.Anything).Return(enrollmentRows(), nil)
	sink.On("Write", filepath.Join(dir, "Enrollment_intermediate.csv"), mock.Anything).
		Return(fmt.Errorf("%w: disk", core.ErrWriteFailure))

	p := NewProcessor()
	p.Source, p.Sink = src, sink

	res := p.ProcessFile(context.Background(), dir, "Enrollment.xlsx")
	assert.False(t, res.Success)
	assert.Equal(t, "OUT001", res.Code())
	assert.NotEmpty(t, res.Rules)
	assert.NoFileExists(t, filepath.Join(dir, "Enrollment_final.csv"))
	sink.AssertExpectations(t)
}

func TestProcessFile_CleanupTargetMissing(t *testing.T) {
	dir := t.TempDir()
	src := new(MockSource)
	sink := new(MockSink)
	src.On("Read", mock.Anything).Return(enrollmentRows(), nil)
	// Reports success without writing anything.
	sink.On("Write", mock.Anything, mock.Anything).Return(nil)

	p := NewProcessor()
	p.Source, p.Sink = src, sink

	res := p.ProcessFile(context.Background(), dir, "Enrollment.xlsx")
	assert.False(t, res.Success)
	assert.ErrorIs(t, res.Err, core.ErrCleanupTargetMissing)
	assert.Equal(t, "CLN001", res.Code())
	assert.NoFileExists(t, filepath.Join(dir, "Enrollment_final.csv"))
}

func TestProcessFile_TransformedRowsReachSink(t *testing.T) {
	dir := t.TempDir()
	src := new(MockSource)
	sink := new(MockSink)
	rows := enrollmentRows()
	src.On("Read", mock.Anything).Return(rows, nil)
	sink.On("Write", mock.Anything, mock.MatchedBy(func(rs *core.RowSet) bool {
		return rs.Cell(0, "CUSTOMER_NAME").Str == `"Jane Doe"` && rs.Cell(0, "CITY_GATE").Str == "0007"
	})).Return(errors.New("stop here"))

	p := NewProcessor()
	p.Source, p.Sink = src, sink

	res := p.ProcessFile(context.Background(), dir, "Enrollment.xlsx")
	assert.False(t, res.Success)
	sink.AssertExpectations(t)
}

func TestProcessFile_IntermediateRemovalIsNonFatal(t *testing.T) {
	dir := t.TempDir()
	src := new(MockSource)
	src.On("Read", mock.Anything).Return(enrollmentRows(), nil)

	p := NewProcessor()
	p.Source = src
	p.Remove = func(string) error { return os.ErrPermission }

	res := p.ProcessFile(context.Background(), dir, "Enrollment.xlsx")
	require.True(t, res.Success, "messages: %v", res.Messages)
	assert.NoError(t, res.Err)
	assert.Equal(t, filepath.Join(dir, "Enrollment_final.csv"), res.Output)
	assert.FileExists(t, filepath.Join(dir, "Enrollment_final.csv"))
	assert.FileExists(t, filepath.Join(dir, "Enrollment_intermediate.csv"))

	require.NotEmpty(t, res.Messages)
	assert.Contains(t, res.Messages[len(res.Messages)-1], "Code: CLN002")
}

func TestReport_Add(t *testing.T) {
	var r Report
	r.add(FileResult{File: "a", Success: true})
	r.add(FileResult{File: "b", Skipped: true})
	r.add(FileResult{File: "c", Err: core.ErrReadFailure})
	r.add(FileResult{File: "d", Success: true})

	assert.Equal(t, 2, r.Processed)
	assert.Equal(t, 1, r.Skipped)
	assert.Equal(t, 1, r.Failed)
	require.Len(t, r.Failures(), 1)
	assert.Equal(t, "c", r.Failures()[0].File)
}
