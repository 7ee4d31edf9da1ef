package extractor

import (
	"testing"

	"takeoff/internal/model"
)

var headerRow = []string{"ITEM", "CÓD. BK", "CÓD. CLIENTE", "DESCRIÇÃO", "QUANT.", "UN."}

func TestParseBlocksSingleTable(t *testing.T) {
	grid := model.Grid{
		{"ESCADA PARA DISJUNTOR"},
		headerRow,
		{"1", "BK01", "C01", "Parafuso M8", "3,5", "UN"},
		{"2", "BK02", "C02", "Porca M8", "7", "UN"},
		{},
		{},
		{"texto solto que não é tabela"},
	}

	rows := ParseBlocks(grid, "obra.xlsx", "Plan1", "")
	if len(rows) != 2 {
		t.Fatalf("Extracted %d rows, expected 2", len(rows))
	}

	first := rows[0]
	if first.SourceFile != "obra.xlsx" || first.Sheet != "Plan1" {
		t.Errorf("Provenance = %s/%s, expected obra.xlsx/Plan1", first.SourceFile, first.Sheet)
	}
	if first.Title != "ESCADA PARA DISJUNTOR" {
		t.Errorf("Title = %q, expected %q", first.Title, "ESCADA PARA DISJUNTOR")
	}
	if first.Block != 1 {
		t.Errorf("Block = %d, expected 1", first.Block)
	}
	if first.Description != "Parafuso M8" || first.Quantity != "3,5" || first.Unit != "UN" {
		t.Errorf("Unexpected row values: %+v", first)
	}
}

// A single blank row does not end a table; two consecutive ones do
func TestParseBlocksBlankRowRules(t *testing.T) {
	grid := model.Grid{
		headerRow,
		{"1", "BK01", "C01", "Parafuso M8", "1", "UN"},
		{},
		{"2", "BK02", "C02", "Porca M8", "2", "UN"},
		{},
		{},
		{"3", "BK03", "C03", "Arruela M8", "4", "UN"}, // after the block ended
	}

	rows := ParseBlocks(grid, "f.xlsx", "s", "")
	if len(rows) != 2 {
		t.Fatalf("Extracted %d rows, expected 2", len(rows))
	}
	if rows[1].Description != "Porca M8" {
		t.Errorf("Second row = %q, expected Porca M8", rows[1].Description)
	}
}

// A repeated header starts a new block and is never consumed as data
func TestParseBlocksRepeatedHeader(t *testing.T) {
	grid := model.Grid{
		headerRow,
		{"1", "BK01", "C01", "Parafuso M8", "1", "UN"},
		headerRow,
		{"1", "BK02", "C02", "Porca M8", "2", "UN"},
	}

	rows := ParseBlocks(grid, "f.xlsx", "s", "")
	if len(rows) != 2 {
		t.Fatalf("Extracted %d rows, expected 2", len(rows))
	}
	if rows[0].Block != 1 || rows[1].Block != 2 {
		t.Errorf("Blocks = %d,%d, expected 1,2", rows[0].Block, rows[1].Block)
	}
	for _, r := range rows {
		if r.Description == "DESCRIÇÃO" {
			t.Error("Header row was materialized as data")
		}
	}
}

func TestParseBlocksDropsEmptyDescription(t *testing.T) {
	grid := model.Grid{
		headerRow,
		{"1", "BK01", "C01", "", "5", "UN"},
		{"2", "BK02", "C02", "  ", "5", "UN"},
		{"3", "BK03", "C03", "Porca M8", "2", "UN"},
	}

	rows := ParseBlocks(grid, "f.xlsx", "s", "")
	if len(rows) != 1 {
		t.Fatalf("Extracted %d rows, expected 1", len(rows))
	}
	if rows[0].Description != "Porca M8" {
		t.Errorf("Row = %q, expected Porca M8", rows[0].Description)
	}
}

// Rows shorter than the header mapping read missing fields as blank
func TestParseBlocksShortRows(t *testing.T) {
	grid := model.Grid{
		headerRow,
		{"1", "BK01", "C01", "Parafuso M8"},
	}

	rows := ParseBlocks(grid, "f.xlsx", "s", "")
	if len(rows) != 1 {
		t.Fatalf("Extracted %d rows, expected 1", len(rows))
	}
	if rows[0].Quantity != "" || rows[0].Unit != "" {
		t.Errorf("Expected blank quantity/unit, got %q/%q", rows[0].Quantity, rows[0].Unit)
	}
}

func TestParseBlocksFallbackTitle(t *testing.T) {
	grid := model.Grid{
		headerRow,
		{"1", "B01", "C01", "P-9", "1", "UN"},
	}

	rows := ParseBlocks(grid, "f.xlsx", "s", "DESENHO GERAL")
	if len(rows) != 1 {
		t.Fatalf("Extracted %d rows, expected 1", len(rows))
	}
	if rows[0].Title != "DESENHO GERAL" {
		t.Errorf("Title = %q, expected fallback", rows[0].Title)
	}
}

func TestParseBlocksNoHeader(t *testing.T) {
	grid := model.Grid{
		{"apenas", "texto"},
		{"sem", "tabela", "nenhuma"},
	}

	if rows := ParseBlocks(grid, "f.xlsx", "s", ""); len(rows) != 0 {
		t.Errorf("Extracted %d rows from headerless sheet, expected 0", len(rows))
	}
}

func TestParseBlocksMultipleTablesWithTitles(t *testing.T) {
	grid := model.Grid{
		{"QUADRO DE FORÇA PRINCIPAL"},
		headerRow,
		{"1", "BK01", "C01", "Parafuso M8", "2", "UN"},
		{},
		{},
		{"BANDEJAMENTO SUPERIOR"},
		headerRow,
		{"1", "BK09", "C09", "Eletrocalha 100mm", "6", "M"},
	}

	rows := ParseBlocks(grid, "f.xlsx", "s", "")
	if len(rows) != 2 {
		t.Fatalf("Extracted %d rows, expected 2", len(rows))
	}
	if rows[0].Title != "QUADRO DE FORÇA PRINCIPAL" {
		t.Errorf("First title = %q", rows[0].Title)
	}
	if rows[1].Title != "BANDEJAMENTO SUPERIOR" {
		t.Errorf("Second title = %q", rows[1].Title)
	}
	if rows[1].Block != 2 {
		t.Errorf("Second block index = %d, expected 2", rows[1].Block)
	}
}
