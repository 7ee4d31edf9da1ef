package reader

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"takeoff/internal/model"
	"takeoff/internal/textutil"
)

// Sheet is one worksheet read into a normalized grid.
type Sheet struct {
	Name string
	Grid model.Grid
}

// ReadWorkbook opens an xlsx file and reads every sheet into a grid of
// normalized text cells, in workbook sheet order. All cells are read as
// display text; typing is left to downstream consumers.
func ReadWorkbook(path string) ([]Sheet, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	var sheets []Sheet
	for _, name := range f.GetSheetList() {
		rows, err := f.GetRows(name)
		if err != nil {
			return nil, fmt.Errorf("failed to read sheet %q: %w", name, err)
		}
		grid := make(model.Grid, len(rows))
		for r, row := range rows {
			grid[r] = make([]string, len(row))
			for c, cell := range row {
				grid[r][c] = textutil.NormalizeCell(cell)
			}
		}
		sheets = append(sheets, Sheet{Name: name, Grid: grid})
	}
	return sheets, nil
}
