package extractor

import (
	"math"
	"strings"
	"testing"

	"takeoff/internal/model"
)

func detailRow(file, sheet, title string, block int, desc, qty string) model.DetailRow {
	return model.DetailRow{
		SourceFile:   file,
		Sheet:        sheet,
		Title:        title,
		Block:        block,
		CodeInternal: "BK01",
		CodeClient:   "C01",
		Description:  desc,
		Quantity:     qty,
		Unit:         "UN",
	}
}

func TestConsolidateSumsAcrossBlocks(t *testing.T) {
	rows := []model.DetailRow{
		detailRow("a.xlsx", "Plan1", "ESCADA", 1, "Parafuso M8", "2"),
		detailRow("b.xlsx", "Plan1", "PORTICO", 1, "Parafuso M8", "1,5"),
	}

	out := Consolidate(rows)
	if len(out) != 1 {
		t.Fatalf("Consolidated into %d rows, expected 1", len(out))
	}

	c := out[0]
	if math.Abs(c.Quantity-3.5) > 1e-9 {
		t.Errorf("Quantity = %v, expected 3.5", c.Quantity)
	}
	if c.Sources != "a.xlsx | Plan1 | T1; b.xlsx | Plan1 | T1" {
		t.Errorf("Sources = %q", c.Sources)
	}
	if c.Drawings != "ESCADA; PORTICO" {
		t.Errorf("Drawings = %q", c.Drawings)
	}
}

func TestConsolidateFirstSeenRepresentative(t *testing.T) {
	rows := []model.DetailRow{
		{SourceFile: "a.xlsx", Sheet: "s", Block: 1, CodeInternal: "BK01", CodeClient: "C01", Description: "Porca M8", Quantity: "1", Unit: "UN"},
		{SourceFile: "a.xlsx", Sheet: "s", Block: 2, CodeInternal: "BK99", CodeClient: "C99", Description: "Porca M8", Quantity: "2", Unit: "CX"},
	}

	out := Consolidate(rows)
	if len(out) != 1 {
		t.Fatalf("Consolidated into %d rows, expected 1", len(out))
	}
	if out[0].CodeInternal != "BK01" || out[0].CodeClient != "C01" || out[0].Unit != "UN" {
		t.Errorf("Representative fields = %s/%s/%s, expected first-seen BK01/C01/UN",
			out[0].CodeInternal, out[0].CodeClient, out[0].Unit)
	}
}

func TestConsolidatePreservesFirstSeenOrder(t *testing.T) {
	rows := []model.DetailRow{
		detailRow("a.xlsx", "s", "", 1, "Zeta", "1"),
		detailRow("a.xlsx", "s", "", 1, "Alfa", "1"),
		detailRow("a.xlsx", "s", "", 1, "Zeta", "1"),
	}

	out := Consolidate(rows)
	if len(out) != 2 {
		t.Fatalf("Consolidated into %d rows, expected 2", len(out))
	}
	if out[0].Description != "Zeta" || out[1].Description != "Alfa" {
		t.Errorf("Order = %s,%s, expected Zeta,Alfa", out[0].Description, out[1].Description)
	}
}

func TestConsolidateSkipsEmptyDescriptions(t *testing.T) {
	rows := []model.DetailRow{
		detailRow("a.xlsx", "s", "", 1, "  ", "5"),
		detailRow("a.xlsx", "s", "", 1, "", "5"),
	}

	if out := Consolidate(rows); len(out) != 0 {
		t.Errorf("Consolidated into %d rows, expected 0", len(out))
	}
}

func TestConsolidateMalformedQuantityContributesZero(t *testing.T) {
	rows := []model.DetailRow{
		detailRow("a.xlsx", "s", "", 1, "Parafuso M8", "abc"),
		detailRow("a.xlsx", "s", "", 1, "Parafuso M8", "2"),
	}

	out := Consolidate(rows)
	if len(out) != 1 {
		t.Fatalf("Consolidated into %d rows, expected 1", len(out))
	}
	if out[0].Quantity != 2 {
		t.Errorf("Quantity = %v, expected 2", out[0].Quantity)
	}
}

// Quantity sums and set membership are independent of input order;
// only key order and representative fields follow first-seen
func TestConsolidateOrderIndependentSums(t *testing.T) {
	rows := []model.DetailRow{
		detailRow("a.xlsx", "s1", "D1", 1, "Parafuso M8", "1"),
		detailRow("b.xlsx", "s2", "D2", 3, "Parafuso M8", "2,5"),
		detailRow("c.xlsx", "s3", "D3", 2, "Parafuso M8", "0,5"),
	}
	reversed := []model.DetailRow{rows[2], rows[1], rows[0]}

	a := Consolidate(rows)
	b := Consolidate(reversed)
	if len(a) != 1 || len(b) != 1 {
		t.Fatalf("Expected single consolidated row for both orders")
	}
	if math.Abs(a[0].Quantity-b[0].Quantity) > 1e-9 {
		t.Errorf("Sums differ by order: %v vs %v", a[0].Quantity, b[0].Quantity)
	}
	if a[0].Sources != b[0].Sources {
		t.Errorf("Provenance sets differ by order: %q vs %q", a[0].Sources, b[0].Sources)
	}
	if a[0].Drawings != b[0].Drawings {
		t.Errorf("Drawing sets differ by order: %q vs %q", a[0].Drawings, b[0].Drawings)
	}
	if got := strings.Count(a[0].Sources, ";") + 1; got != 3 {
		t.Errorf("Expected 3 provenance tokens, got %d (%q)", got, a[0].Sources)
	}
}
