package extractor

import (
	"testing"

	"takeoff/internal/model"
)

func TestMatchHeaderCanonical(t *testing.T) {
	row := []string{"ITEM", "CÓD. BK", "CÓD. CLIENTE", "DESCRIÇÃO", "QUANT.", "UN."}

	mapping, ok := MatchHeader(row)
	if !ok {
		t.Fatal("Expected canonical header row to match")
	}

	expected := model.HeaderMapping{0, 1, 2, 3, 4, 5}
	if mapping != expected {
		t.Errorf("Mapping = %v, expected %v", mapping, expected)
	}
}

func TestMatchHeaderVariants(t *testing.T) {
	tests := []struct {
		name string
		row  []string
	}{
		{"lowercase no accents", []string{"item", "cod bk", "cod cliente", "descricao", "qtd", "un"}},
		{"alias spellings", []string{"ITEM", "CÓDIGO BK", "CÓDIGO CLIENTE", "MATERIAL", "QUANTIDADE", "UNIDADE"}},
		{"fallback substrings", []string{"ITEM", "CD.BK", "CD.CLIENTE", "DESCRIÇÃO DO MATERIAL", "QTDE.", "UND."}},
		{"shuffled order", []string{"DESCRIÇÃO", "UN.", "ITEM", "QUANT.", "CÓD. CLIENTE", "CÓD. BK"}},
		{"leading blanks", []string{"", "", "ITEM", "CÓD. BK", "CÓD. CLIENTE", "DESCRIÇÃO", "QUANT.", "UN."}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, ok := MatchHeader(tt.row); !ok {
				t.Errorf("Expected header match for row %v", tt.row)
			}
		})
	}
}

func TestMatchHeaderRejectsPartial(t *testing.T) {
	tests := []struct {
		name string
		row  []string
	}{
		{"missing unit", []string{"ITEM", "CÓD. BK", "CÓD. CLIENTE", "DESCRIÇÃO", "QUANT."}},
		{"missing item", []string{"CÓD. BK", "CÓD. CLIENTE", "DESCRIÇÃO", "QUANT.", "UN."}},
		{"missing client code", []string{"ITEM", "CÓD. BK", "DESCRIÇÃO", "QUANT.", "UN."}},
		{"data row", []string{"1", "BK01", "C01", "Parafuso M8", "3,5", "UN"}},
		{"empty row", []string{"", "", "", "", "", ""}},
		{"free text", []string{"ESCADA PARA DISJUNTOR"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if mapping, ok := MatchHeader(tt.row); ok {
				t.Errorf("Expected no match for row %v, got mapping %v", tt.row, mapping)
			}
		})
	}
}

// The leftmost satisfying column wins when a field's alias repeats
func TestMatchHeaderLeftmostWins(t *testing.T) {
	row := []string{"ITEM", "CÓD. BK", "CÓD. CLIENTE", "DESCRIÇÃO", "QUANT.", "UN.", "DESCRIÇÃO", "QUANT."}

	mapping, ok := MatchHeader(row)
	if !ok {
		t.Fatal("Expected header match")
	}
	if mapping[model.FieldDescription] != 3 {
		t.Errorf("Description column = %d, expected 3", mapping[model.FieldDescription])
	}
	if mapping[model.FieldQuantity] != 4 {
		t.Errorf("Quantity column = %d, expected 4", mapping[model.FieldQuantity])
	}
}
