package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/viper"
)

// Config represents the application configuration
type Config struct {
	Input  InputConfig  `mapstructure:"input"`
	Output OutputConfig `mapstructure:"output"`
	Report ReportConfig `mapstructure:"report"`
}

// InputConfig holds batch input settings
type InputConfig struct {
	Dir           string `mapstructure:"dir"`            // Directory holding the source workbooks
	Pattern       string `mapstructure:"pattern"`        // Glob for workbook files (e.g. "*.xlsx")
	MaxFiles      int    `mapstructure:"max_files"`      // Workbooks processed per batch; extras are skipped
	FallbackTitle string `mapstructure:"fallback_title"` // Drawing title used when none is found near a table
}

// OutputConfig holds report output settings
type OutputConfig struct {
	Dir      string `mapstructure:"dir"`       // Output directory
	FileName string `mapstructure:"file_name"` // Report file name (without extension)
}

// ReportConfig holds report generation settings
type ReportConfig struct {
	Formats []string `mapstructure:"formats"` // Report formats (excel, html, word)
}

// Load reads the configuration from a file or uses defaults
// If configPath is empty, it looks for "config.yaml" in the current directory
// If the file doesn't exist, it uses sensible defaults
func Load(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if configPath == "" {
		configPath = "config.yaml"
	}
	v.SetConfigFile(configPath)

	// Read config file (ignore error if file doesn't exist)
	if err := v.ReadInConfig(); err != nil {
		if os.IsNotExist(err) || strings.Contains(err.Error(), "no such file") ||
			strings.Contains(err.Error(), "cannot find") {
			fmt.Println("==========================================")
			fmt.Println("Config file not found. Using defaults:")
			fmt.Println("  Input:  ./input")
			fmt.Println("  Output: ./output")
			fmt.Println("==========================================")
		} else {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else {
		fmt.Printf("Loaded config from: %s\n", v.ConfigFileUsed())
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.normalizePaths(); err != nil {
		return nil, err
	}

	if err := cfg.EnsureOutputDir(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// setDefaults configures sensible default values
func setDefaults(v *viper.Viper) {
	// Input defaults - use ./input for double-click usability
	v.SetDefault("input.dir", "./input")
	v.SetDefault("input.pattern", "*.xlsx")
	v.SetDefault("input.max_files", 40)
	v.SetDefault("input.fallback_title", "")

	// Output defaults
	v.SetDefault("output.dir", "./output")
	v.SetDefault("output.file_name", "takeoff-report")

	// Report defaults
	v.SetDefault("report.formats", []string{"excel"})
}

// normalizePaths converts relative paths to absolute paths
func (c *Config) normalizePaths() error {
	absInput, err := filepath.Abs(c.Input.Dir)
	if err != nil {
		return fmt.Errorf("failed to resolve input.dir: %w", err)
	}
	c.Input.Dir = absInput

	absOutput, err := filepath.Abs(c.Output.Dir)
	if err != nil {
		return fmt.Errorf("failed to resolve output.dir: %w", err)
	}
	c.Output.Dir = absOutput

	return nil
}

// EnsureOutputDir creates the output directory if it doesn't exist
func (c *Config) EnsureOutputDir() error {
	if err := os.MkdirAll(c.Output.Dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	return nil
}

// GetOutputPath returns the full path for the output Excel report
func (c *Config) GetOutputPath() string {
	return filepath.Join(c.Output.Dir, c.Output.FileName+".xlsx")
}

// ListInputFiles globs the input directory for workbooks, in sorted
// order, capped at MaxFiles. The second return value reports how many
// matching files were skipped by the cap.
func (c *Config) ListInputFiles() ([]string, int, error) {
	matches, err := filepath.Glob(filepath.Join(c.Input.Dir, c.Input.Pattern))
	if err != nil {
		return nil, 0, fmt.Errorf("invalid input pattern %q: %w", c.Input.Pattern, err)
	}

	// Temporary files left behind by Excel start with "~$"
	files := matches[:0]
	for _, m := range matches {
		if strings.HasPrefix(filepath.Base(m), "~$") {
			continue
		}
		files = append(files, m)
	}
	sort.Strings(files)

	skipped := 0
	if c.Input.MaxFiles > 0 && len(files) > c.Input.MaxFiles {
		skipped = len(files) - c.Input.MaxFiles
		files = files[:c.Input.MaxFiles]
	}
	return files, skipped, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if _, err := os.Stat(c.Input.Dir); os.IsNotExist(err) {
		return fmt.Errorf("input.dir does not exist: %s", c.Input.Dir)
	}

	if c.Input.Pattern == "" {
		return fmt.Errorf("input.pattern cannot be empty")
	}

	if c.Input.MaxFiles < 1 {
		return fmt.Errorf("input.max_files must be at least 1")
	}

	if c.Output.FileName == "" {
		return fmt.Errorf("output.file_name cannot be empty")
	}

	return nil
}

// Print displays the current configuration
func (c *Config) Print() {
	fmt.Println("=== Takeoff Configuration ===")
	fmt.Printf("Input Directory:  %s\n", c.Input.Dir)
	fmt.Printf("Input Pattern:    %s\n", c.Input.Pattern)
	fmt.Printf("Max Files:        %d\n", c.Input.MaxFiles)
	fmt.Printf("Fallback Title:   %q\n", c.Input.FallbackTitle)
	fmt.Printf("Report Formats:   %v\n", c.Report.Formats)
	fmt.Printf("Output Directory: %s\n", c.Output.Dir)
	fmt.Printf("Output File:      %s\n", c.GetOutputPath())
	fmt.Println("=============================")
}
