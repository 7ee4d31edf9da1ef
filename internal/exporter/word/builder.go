package word

import (
	"embed"
	"fmt"
	"os"
	"strings"

	"takeoff/internal/config"
	"takeoff/internal/model"

	"github.com/nguyenthenguyen/docx"
)

//go:embed template.docx
var templateFS embed.FS

type WordExporter struct{}

func NewWordExporter() *WordExporter {
	return &WordExporter{}
}

func (e *WordExporter) Export(report *model.Report, cfg *config.Config) error {
	// The docx library only opens files, so the embedded template goes
	// through a temp file first
	templateBytes, err := templateFS.ReadFile("template.docx")
	if err != nil {
		return fmt.Errorf("failed to read embedded template: %w", err)
	}

	tmpFile, err := os.CreateTemp("", "takeoff-template-*.docx")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmpFile.Name())

	if _, err := tmpFile.Write(templateBytes); err != nil {
		return fmt.Errorf("failed to write template to temp file: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	r, err := docx.ReadDocxFile(tmpFile.Name())
	if err != nil {
		return fmt.Errorf("failed to read docx from temp file: %w", err)
	}
	defer r.Close()

	doc := r.Editable()

	doc.Replace("{{Date}}", report.GeneratedAt, -1)
	doc.Replace("{{TotalFiles}}", fmt.Sprintf("%d", report.FilesProcessed), -1)
	doc.Replace("{{TotalMaterials}}", fmt.Sprintf("%d", len(report.Consolidated)), -1)

	// The consolidated listing goes in as plain text; the docx library
	// handles the XML encoding
	var contentBuilder strings.Builder

	contentBuilder.WriteString("CONSOLIDATED MATERIAL LIST\n\n")
	contentBuilder.WriteString(fmt.Sprintf("%-14s %-14s %-44s %12s %-6s\n",
		"Internal Code", "Client Code", "Description", "Quantity", "Unit"))
	contentBuilder.WriteString(strings.Repeat("-", 96) + "\n")

	for i := range report.Consolidated {
		row := &report.Consolidated[i]
		contentBuilder.WriteString(fmt.Sprintf("%-14s %-14s %-44s %12.2f %-6s\n",
			truncate(row.CodeInternal, 14),
			truncate(row.CodeClient, 14),
			truncate(row.Description, 44),
			row.Quantity,
			truncate(row.Unit, 6)))
		if row.Drawings != "" {
			contentBuilder.WriteString(fmt.Sprintf("    Drawings: %s\n", row.Drawings))
		}
		contentBuilder.WriteString(fmt.Sprintf("    Sources:  %s\n", row.Sources))
	}

	if len(report.Failures) > 0 {
		contentBuilder.WriteString("\n" + strings.Repeat("=", 96) + "\n")
		contentBuilder.WriteString(fmt.Sprintf("UNREADABLE WORKBOOKS (%d)\n", len(report.Failures)))
		for _, f := range report.Failures {
			contentBuilder.WriteString(fmt.Sprintf("  %s: %v\n", f.File, f.Err))
		}
	}

	doc.Replace("{{Content}}", contentBuilder.String(), -1)

	outFile := strings.TrimSuffix(cfg.GetOutputPath(), ".xlsx") + ".docx"
	if err := doc.WriteToFile(outFile); err != nil {
		return fmt.Errorf("failed to write Word document: %w", err)
	}

	return nil
}

// truncate truncates a string to a maximum length
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
