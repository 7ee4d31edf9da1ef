package extractor

import (
	"strings"

	"takeoff/internal/model"
	"takeoff/internal/textutil"
)

// fieldRule declares how one canonical field is recognized in a header
// cell: an exact alias set over normalized keys, plus an optional
// substring fallback for the looser labelings seen in pasted tables.
type fieldRule struct {
	Field    model.Field
	Aliases  []string
	Fallback func(key string) bool
}

var fieldRules = []fieldRule{
	{
		Field:   model.FieldItem,
		Aliases: []string{"ITEM"},
	},
	{
		Field:   model.FieldCodeInternal,
		Aliases: []string{"CODBK", "CODIGOBK", "CDBK"},
		Fallback: func(key string) bool {
			return strings.Contains(key, "COD") && strings.Contains(key, "BK")
		},
	},
	{
		Field:   model.FieldCodeClient,
		Aliases: []string{"CODCLIENTE", "CODIGOCLIENTE", "CDCLIENTE"},
		Fallback: func(key string) bool {
			return strings.Contains(key, "COD") && strings.Contains(key, "CLIENTE")
		},
	},
	{
		Field:   model.FieldDescription,
		Aliases: []string{"DESCRICAO", "DESCR", "DESCRI", "MATERIAL", "NOME"},
		Fallback: func(key string) bool {
			return strings.Contains(key, "DESCR")
		},
	},
	{
		Field:   model.FieldQuantity,
		Aliases: []string{"QUANT", "QUANTIDADE", "QTD", "QTDE"},
		Fallback: func(key string) bool {
			return strings.Contains(key, "QUANT") || strings.Contains(key, "QTD")
		},
	},
	{
		Field:   model.FieldUnit,
		Aliases: []string{"UN", "UND", "UNID", "UNIDADE"},
	},
}

func (r *fieldRule) matches(key string) bool {
	for _, a := range r.Aliases {
		if key == a {
			return true
		}
	}
	return r.Fallback != nil && r.Fallback(key)
}

// MatchHeader decides whether the row is a header row. It resolves each
// canonical field to the leftmost column whose normalized key satisfies
// that field's rule. Only a row resolving all six fields is a header;
// partial matches report no mapping at all.
func MatchHeader(row []string) (model.HeaderMapping, bool) {
	keys := make([]string, len(row))
	for i, c := range row {
		keys[i] = textutil.NormalizeKey(c)
	}

	var mapping model.HeaderMapping
	for _, rule := range fieldRules {
		col := -1
		for i, k := range keys {
			if k == "" {
				continue
			}
			if rule.matches(k) {
				col = i
				break
			}
		}
		if col < 0 {
			return model.HeaderMapping{}, false
		}
		mapping[rule.Field] = col
	}
	return mapping, true
}
