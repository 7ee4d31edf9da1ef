package html

import (
	"fmt"
	"html/template"
	"os"
	"strings"

	"takeoff/internal/config"
	"takeoff/internal/model"
)

type HTMLExporter struct{}

func NewHTMLExporter() *HTMLExporter {
	return &HTMLExporter{}
}

// Data structures for the consolidated report template
type ReportData struct {
	GeneratedAt      string
	FilesProcessed   int
	TotalRows        int
	TotalDescription int
	TotalFailures    int
	Rows             []model.ConsolidatedRow
	Failures         []string
}

func (e *HTMLExporter) Export(report *model.Report, cfg *config.Config) error {
	failures := make([]string, 0, len(report.Failures))
	for _, f := range report.Failures {
		failures = append(failures, fmt.Sprintf("%s: %v", f.File, f.Err))
	}

	data := ReportData{
		GeneratedAt:      report.GeneratedAt,
		FilesProcessed:   report.FilesProcessed,
		TotalRows:        len(report.Detail),
		TotalDescription: len(report.Consolidated),
		TotalFailures:    len(report.Failures),
		Rows:             report.Consolidated,
		Failures:         failures,
	}

	outputFile := strings.TrimSuffix(cfg.GetOutputPath(), ".xlsx") + ".html"
	f, err := os.Create(outputFile)
	if err != nil {
		return err
	}
	defer f.Close()

	tmpl, err := template.New("takeoff-report").Funcs(template.FuncMap{
		"quantity": func(q float64) string {
			return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.3f", q), "0"), ".")
		},
	}).Parse(ReportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(f, data)
}
