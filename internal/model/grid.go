package model

// Grid is one sheet's cells as normalized text, row-major. Rows may be
// ragged: indices past a row's length read as blank.
type Grid [][]string

// Cell returns the value at (row, col), or "" when either index falls
// outside the grid.
func (g Grid) Cell(row, col int) string {
	if row < 0 || row >= len(g) {
		return ""
	}
	r := g[row]
	if col < 0 || col >= len(r) {
		return ""
	}
	return r[col]
}
