package extractor

import (
	"fmt"
	"sort"
	"strings"

	"takeoff/internal/model"
	"takeoff/internal/textutil"
)

type aggregate struct {
	codeInternal string
	codeClient   string
	unit         string
	sum          float64
	sources      map[string]struct{}
	drawings     map[string]struct{}
}

// Consolidate merges detail rows by exact trimmed description,
// summing quantities and collecting the distinct drawing titles and
// provenance tokens per description. The representative codes and unit
// are those of the first row seen for each description, and output
// order is first-seen order, so results are deterministic for a fixed
// input order.
func Consolidate(rows []model.DetailRow) []model.ConsolidatedRow {
	agg := make(map[string]*aggregate)
	var order []string

	for i := range rows {
		row := &rows[i]
		desc := strings.TrimSpace(row.Description)
		if desc == "" {
			continue
		}

		a, ok := agg[desc]
		if !ok {
			a = &aggregate{
				codeInternal: row.CodeInternal,
				codeClient:   row.CodeClient,
				unit:         row.Unit,
				sources:      make(map[string]struct{}),
				drawings:     make(map[string]struct{}),
			}
			agg[desc] = a
			order = append(order, desc)
		}

		a.sum += textutil.ParseNumber(row.Quantity)
		a.sources[fmt.Sprintf("%s | %s | T%d", row.SourceFile, row.Sheet, row.Block)] = struct{}{}
		if t := strings.TrimSpace(row.Title); t != "" {
			a.drawings[t] = struct{}{}
		}
	}

	out := make([]model.ConsolidatedRow, 0, len(order))
	for _, desc := range order {
		a := agg[desc]
		out = append(out, model.ConsolidatedRow{
			CodeInternal: a.codeInternal,
			CodeClient:   a.codeClient,
			Description:  desc,
			Quantity:     a.sum,
			Unit:         a.unit,
			Drawings:     joinSorted(a.drawings),
			Sources:      joinSorted(a.sources),
		})
	}
	return out
}

func joinSorted(set map[string]struct{}) string {
	items := make([]string, 0, len(set))
	for s := range set {
		items = append(items, s)
	}
	sort.Strings(items)
	return strings.Join(items, "; ")
}
