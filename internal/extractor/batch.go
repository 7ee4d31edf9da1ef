package extractor

import (
	"path/filepath"
	"time"

	"takeoff/internal/model"
	"takeoff/internal/reader"
)

// Batch accumulates extraction output across workbooks. It is the
// explicit accumulator for a run: every workbook is added in caller
// order, read failures are recorded without stopping the batch, and
// Report seals the result.
type Batch struct {
	// FallbackTitle is used for blocks with no title candidate nearby
	FallbackTitle string

	detail    []model.DetailRow
	failures  []model.FileFailure
	processed int
}

// NewBatch creates an empty batch with the given fallback title.
func NewBatch(fallbackTitle string) *Batch {
	return &Batch{FallbackTitle: fallbackTitle}
}

// AddWorkbook reads every sheet of the workbook at path and extracts
// its tables. A workbook that cannot be read is recorded as a failure
// and the error returned for logging; the batch itself stays usable.
func (b *Batch) AddWorkbook(path string) error {
	sheets, err := reader.ReadWorkbook(path)
	if err != nil {
		b.failures = append(b.failures, model.FileFailure{File: filepath.Base(path), Err: err})
		return err
	}
	b.processed++
	name := filepath.Base(path)
	for _, s := range sheets {
		b.AddSheet(name, s.Name, s.Grid)
	}
	return nil
}

// AddSheet extracts tables from one already-loaded grid.
func (b *Batch) AddSheet(sourceFile, sheet string, grid model.Grid) {
	b.detail = append(b.detail, ParseBlocks(grid, sourceFile, sheet, b.FallbackTitle)...)
}

// Detail returns the rows extracted so far, in extraction order.
func (b *Batch) Detail() []model.DetailRow {
	return b.detail
}

// Report consolidates the accumulated rows and returns the batch
// outcome, including per-file failures.
func (b *Batch) Report() *model.Report {
	return &model.Report{
		Detail:         b.detail,
		Consolidated:   Consolidate(b.detail),
		FilesProcessed: b.processed,
		Failures:       b.failures,
		GeneratedAt:    time.Now().Format("2006-01-02"),
	}
}
