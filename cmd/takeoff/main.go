package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"takeoff/internal/config"
	"takeoff/internal/extractor"
	"takeoff/internal/exporter"
	"takeoff/internal/logger"
	"takeoff/internal/model"
	"takeoff/internal/ui"
)

const (
	appName    = "Takeoff"
	appVersion = "1.0.0"
	appDesc    = "Material quantity takeoff from AutoCAD tables pasted into Excel workbooks"
)

var (
	configPath    string
	verbose       bool
	showVersion   bool
	inputDir      string
	outputDir     string
	formats       string
	fallbackTitle string
)

func init() {
	flag.StringVar(&configPath, "config", "config.yaml", "Path to configuration file")
	flag.StringVar(&configPath, "c", "config.yaml", "Path to configuration file (shorthand)")
	flag.BoolVar(&verbose, "verbose", false, "Enable verbose logging (DEBUG level)")
	flag.BoolVar(&verbose, "v", false, "Enable verbose logging (shorthand)")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.StringVar(&inputDir, "input", "", "Override input directory from config")
	flag.StringVar(&outputDir, "output", "", "Override output directory from config")
	flag.StringVar(&formats, "format", "", "Comma-separated report formats (excel,html,word); overrides config")
	flag.StringVar(&fallbackTitle, "title", "", "Override fallback drawing title from config")
}

func main() {
	// Ensure "Press Enter to Exit" runs even on panic or error
	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("\n❌ PANIC: %v\n", r)
		}
		waitForEnter()
	}()

	exitCode := run()
	os.Exit(exitCode)
}

func run() int {
	flag.Parse()

	if showVersion {
		fmt.Printf("%s v%s\n%s\n", appName, appVersion, appDesc)
		return 0
	}

	printBanner()

	logger.Info("Loading configuration...")
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Printf("❌ Failed to load configuration: %v\n", err)
		return 1
	}

	if inputDir != "" {
		cfg.Input.Dir, _ = filepath.Abs(inputDir)
	}
	if outputDir != "" {
		cfg.Output.Dir, _ = filepath.Abs(outputDir)
		cfg.EnsureOutputDir()
	}
	if fallbackTitle != "" {
		cfg.Input.FallbackTitle = fallbackTitle
	}

	logPath := filepath.Join(cfg.Output.Dir, "takeoff.log")
	if err := logger.Init(os.Stdout, logPath, verbose); err != nil {
		fmt.Printf("❌ Failed to initialize logger: %v\n", err)
		return 1
	}
	defer logger.Close()

	if err := cfg.Validate(); err != nil {
		logger.Error("Invalid configuration: %v", err)
		return 1
	}

	if err := runExtraction(cfg); err != nil {
		logger.Error("Extraction failed: %v", err)
		return 1
	}

	logger.Info("✅ Extraction Complete. Check [%s] directory.", cfg.Output.Dir)
	return 0
}

// waitForEnter pauses execution and waits for user to press Enter
// This prevents the console window from closing immediately when double-clicked
func waitForEnter() {
	fmt.Println("\n==========================================")
	fmt.Println("Execution Finished. Press 'Enter' to exit.")
	fmt.Println("==========================================")
	bufio.NewReader(os.Stdin).ReadBytes('\n')
}

func runExtraction(cfg *config.Config) error {
	pipeline := ui.NewPipeline([]ui.Phase{
		ui.PhaseScanning,
		ui.PhaseExtracting,
		ui.PhaseGenerating,
	})

	// --- Phase 1: Scanning ---
	logger.Info("Phase 1: Scanning input directory...")
	scanBar := pipeline.NextPhase(1)

	files, skipped, err := cfg.ListInputFiles()
	if err != nil {
		return err
	}
	scanBar.Finish()

	if len(files) == 0 {
		return fmt.Errorf("no workbooks matching %q found in %s", cfg.Input.Pattern, cfg.Input.Dir)
	}
	if skipped > 0 {
		logger.Warn("Batch limit reached: processing %d workbooks, skipping %d", len(files), skipped)
	}
	logger.Info("Found %d workbook(s)", len(files))

	// --- Phase 2: Extracting ---
	logger.Info("Phase 2: Extracting tables...")
	extractBar := pipeline.NextPhase(len(files))

	batch := extractor.NewBatch(cfg.Input.FallbackTitle)
	for _, path := range files {
		before := len(batch.Detail())
		if err := batch.AddWorkbook(path); err != nil {
			logger.Warn("Skipping %s: %v", filepath.Base(path), err)
			logger.LogFileFailure(filepath.Base(path), err)
			extractBar.Increment()
			continue
		}
		logger.Debug("%s: extracted %d row(s)", filepath.Base(path), len(batch.Detail())-before)
		extractBar.Increment()
	}
	extractBar.Finish()

	report := batch.Report()

	if report.Empty() {
		// Distinct from a partial result: nothing recognizable anywhere
		return fmt.Errorf("no tables found in the scanned workbooks; expected headers like %s", headerHint())
	}

	logger.Info("Extracted %d row(s), %d distinct material(s)",
		len(report.Detail), len(report.Consolidated))
	for _, f := range report.Failures {
		logger.Warn("Unreadable workbook: %s", f.File)
	}
	if logger.IsVerbose() {
		logTitleSample(report)
	}

	// --- Phase 3: Reporting ---
	logger.Info("Phase 3: Generating reports...")
	targetFormats := cfg.Report.Formats
	if formats != "" {
		targetFormats = strings.Split(formats, ",")
	}
	exporters := exporter.GetExporters(targetFormats)
	if len(exporters) == 0 {
		logger.Warn("No valid report format selected; defaulting to excel")
		exporters = exporter.GetExporters([]string{"excel"})
	}

	genBar := pipeline.NextPhase(len(exporters))

	var exportErrors []error
	for _, exp := range exporters {
		if err := exp.Export(report, cfg); err != nil {
			logger.Error("Export failed: %v", err)
			exportErrors = append(exportErrors, err)
		}
		genBar.Increment()
	}
	genBar.Finish()

	pipeline.Finish()

	if len(exportErrors) > 0 {
		return fmt.Errorf("one or more exports failed: %d errors", len(exportErrors))
	}

	return nil
}

// logTitleSample logs the distinct drawing titles found, for checking
// title attribution during debugging
func logTitleSample(report *model.Report) {
	seen := make(map[string]bool)
	var titles []string
	for i := range report.Detail {
		t := report.Detail[i].Title
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		titles = append(titles, t)
	}
	sort.Strings(titles)
	logger.Debug("Drawing titles found: %s", strings.Join(titles, "; "))
}

func headerHint() string {
	return "ITEM / CÓD. BK / CÓD. CLIENTE / DESCRIÇÃO / QUANT. / UN."
}

func printBanner() {
	banner := `
╔═══════════════════════════════════════════════════════════╗
║                       TAKEOFF v1.0.0                      ║
║      Material Quantities from Pasted AutoCAD Tables       ║
╚═══════════════════════════════════════════════════════════╝
`
	fmt.Println(banner)
}
