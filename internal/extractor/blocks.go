package extractor

import (
	"takeoff/internal/model"
	"takeoff/internal/textutil"
)

// parserState is the block parser's position in its scan: hunting for
// the next header row, or consuming the body of a table.
type parserState int

const (
	stateSeekingHeader parserState = iota
	stateInBlock
)

// blankRowsToClose is the table-termination rule: this many consecutive
// fully blank rows end the current block. A single blank row inside a
// table is tolerated.
const blankRowsToClose = 2

// ParseBlocks scans one sheet top to bottom and extracts every table it
// can recognize. A block opens at a header row and closes at the next
// header row or after two consecutive blank rows. Rows whose
// description cell is empty are dropped. Content between tables is
// skipped, so explanatory text and stray rows never abort a scan; at
// worst the sheet contributes no rows.
func ParseBlocks(grid model.Grid, sourceFile, sheet, fallbackTitle string) []model.DetailRow {
	norm := make(model.Grid, len(grid))
	for r, row := range grid {
		norm[r] = make([]string, len(row))
		for c, cell := range row {
			norm[r][c] = textutil.NormalizeCell(cell)
		}
	}

	var out []model.DetailRow
	var mapping model.HeaderMapping
	var title string

	state := stateSeekingHeader
	block := 0
	blanks := 0

	i := 0
	for i < len(norm) {
		switch state {
		case stateSeekingHeader:
			if m, ok := MatchHeader(norm[i]); ok {
				mapping = m
				block++
				title = FindTitle(norm, i)
				if title == "" {
					title = fallbackTitle
				}
				blanks = 0
				state = stateInBlock
			}
			i++

		case stateInBlock:
			row := norm[i]

			// A repeated header starts a new block; do not consume
			// it as data.
			if _, ok := MatchHeader(row); ok {
				state = stateSeekingHeader
				continue
			}

			if textutil.IsBlankRow(row) {
				blanks++
				if blanks >= blankRowsToClose {
					state = stateSeekingHeader
				}
				i++
				continue
			}
			blanks = 0

			desc := norm.Cell(i, mapping[model.FieldDescription])
			if desc != "" {
				out = append(out, model.DetailRow{
					SourceFile:   sourceFile,
					Sheet:        sheet,
					Title:        title,
					Block:        block,
					Item:         norm.Cell(i, mapping[model.FieldItem]),
					CodeInternal: norm.Cell(i, mapping[model.FieldCodeInternal]),
					CodeClient:   norm.Cell(i, mapping[model.FieldCodeClient]),
					Description:  desc,
					Quantity:     norm.Cell(i, mapping[model.FieldQuantity]),
					Unit:         norm.Cell(i, mapping[model.FieldUnit]),
				})
			}
			i++
		}
	}

	return out
}
