package model

// DetailRow is one extracted table row, tagged with its origin. Values
// are kept as the normalized cell text; numeric interpretation happens
// only during consolidation.
type DetailRow struct {
	// SourceFile is the workbook file name the row came from
	SourceFile string

	// Sheet is the sheet name within the workbook
	Sheet string

	// Title is the drawing name located near the table (may be empty)
	Title string

	// Block is the 1-based index of the table within its sheet
	Block int

	Item         string
	CodeInternal string
	CodeClient   string
	Description  string
	Quantity     string
	Unit         string
}

// Value returns the canonical field value of the row.
func (r *DetailRow) Value(f Field) string {
	switch f {
	case FieldItem:
		return r.Item
	case FieldCodeInternal:
		return r.CodeInternal
	case FieldCodeClient:
		return r.CodeClient
	case FieldDescription:
		return r.Description
	case FieldQuantity:
		return r.Quantity
	case FieldUnit:
		return r.Unit
	default:
		return ""
	}
}

// ConsolidatedRow is one aggregated record keyed by exact trimmed
// description text. Codes and unit come from the first detail row seen
// for the description; later rows only grow the sum and the sets.
type ConsolidatedRow struct {
	CodeInternal string
	CodeClient   string
	Description  string

	// Quantity is the running sum of all parsed quantities
	Quantity float64

	Unit string

	// Drawings holds the distinct titles seen, sorted and joined with "; "
	Drawings string

	// Sources holds the distinct provenance tokens, sorted and joined with "; "
	Sources string
}

// FileFailure records a workbook that could not be read. Failures never
// abort the batch; they ride along in the report.
type FileFailure struct {
	File string
	Err  error
}

// Report is the full outcome of one batch run.
type Report struct {
	Detail       []DetailRow
	Consolidated []ConsolidatedRow

	// FilesProcessed counts workbooks that were opened successfully
	FilesProcessed int

	Failures []FileFailure

	// GeneratedAt is the run date (YYYY-MM-DD) stamped into reports
	GeneratedAt string
}

// Empty reports whether no table was found anywhere in the batch. This
// is distinct from a partial result: callers use it to say "no tables
// found" instead of writing an empty report.
func (r *Report) Empty() bool {
	return len(r.Detail) == 0
}
