package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/AlexJ-StL/unified-repo-analyzer-sub009/internal/config"
	"github.com/AlexJ-StL/unified-repo-analyzer-sub009/internal/language"
	"github.com/AlexJ-StL/unified-repo-analyzer-sub009/internal/report"
	"github.com/AlexJ-StL/unified-repo-analyzer-sub009/internal/scanner"
	"github.com/AlexJ-StL/unified-repo-analyzer-sub009/pkg/models"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ANSI colors
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorOrange = "\033[38;5;208m"
	colorGray   = "\033[38;5;245m"
)

var (
	version = "0.1.0"
	logger  *zap.Logger
	verbose bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "repo-analyzer",
		Short: "Unified Repository Analyzer - snapshot a repository's structure and contents",
		Long: `Scans a source repository, builds a typed snapshot of its directory
structure and textual contents, and exports the result as JSON, Markdown,
HTML or plain text.`,
		Version: version,
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Help()
		},
	}

	// Global verbose flag
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")

	// Add commands
	rootCmd.AddCommand(analyzeCmd())
	rootCmd.AddCommand(languagesCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// initLogger builds the logger based on the verbose flag
func initLogger() error {
	var err error
	if verbose {
		logger, err = zap.NewDevelopment()
		return err
	}
	// Silent logger - only errors
	cfg := zap.Config{
		Level:            zap.NewAtomicLevelAt(zapcore.ErrorLevel),
		Encoding:         "json",
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
		EncoderConfig:    zap.NewProductionEncoderConfig(),
	}
	logger, err = cfg.Build()
	return err
}

// analyzeCmd creates the analyze command
func analyzeCmd() *cobra.Command {
	var (
		maxSize       string
		noContent     bool
		exclude       []string
		languagesPath string
		reportFormat  string
		outputFile    string
	)

	cmd := &cobra.Command{
		Use:   "analyze [path]",
		Short: "Analyze a repository's structure and contents",
		Long:  `Recursively walk a directory, capture its structure, file contents and summary metadata.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]

			// Validate flags before doing anything
			if err := validateFlags(reportFormat); err != nil {
				fmt.Printf("\n  %s✗ Invalid parameter:%s %s\n\n", colorRed, colorReset, err.Error())
				return err
			}

			if err := initLogger(); err != nil {
				fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
				return err
			}
			defer logger.Sync()

			// Load configuration
			cfg, err := config.LoadConfig()
			if err != nil {
				logger.Error("Failed to load config", zap.Error(err))
				return err
			}

			// Override config with CLI flags
			if maxSize != "" {
				cfg.MaxSize = maxSize
			}
			if noContent {
				cfg.IncludeContent = false
			}
			if len(exclude) > 0 {
				cfg.Exclude = exclude
			}
			if languagesPath != "" {
				cfg.LanguagesPath = languagesPath
			}
			if reportFormat != "" {
				cfg.ReportFormat = reportFormat
			}
			if outputFile != "" {
				cfg.OutputFile = outputFile
			}

			// Load the language table (defaults plus optional overrides)
			table, err := language.LoadTable(cfg.LanguagesPath)
			if err != nil {
				logger.Error("Failed to load language table", zap.Error(err))
				return err
			}

			fmt.Println()
			fmt.Printf("  %sAnalyzing:%s %s%s%s\n", colorGray, colorReset, colorOrange, path, colorReset)

			// Run the scan pipeline: structure, contents, report
			s := scanner.New(cfg, logger, table)
			tree, err := s.ScanStructure(path)
			if err != nil {
				logger.Error("Scan failed", zap.Error(err))
				return err
			}

			var contents models.ContentMap
			if cfg.IncludeContent {
				contents = s.BuildContentMap(tree)
			}

			rep := s.BuildReport(tree.Path, tree, contents)

			// Write or print the report
			generator := report.NewGenerator(cfg, logger)
			reportPath, err := generator.Generate(rep)
			if err != nil {
				logger.Error("Report generation failed", zap.Error(err))
				return err
			}
			if reportPath != "" {
				fmt.Printf("  %sReport:%s    %s%s%s\n", colorGray, colorReset, colorOrange, reportPath, colorReset)
				fmt.Println()
			}

			return nil
		},
	}

	// Flags
	cmd.Flags().StringVar(&maxSize, "max-size", "", "Maximum file size to read content from (default: 1M)")
	cmd.Flags().BoolVar(&noContent, "no-content", false, "Skip content materialization, structure only")
	cmd.Flags().StringSliceVar(&exclude, "exclude", nil, "Directory names to exclude (comma-separated)")
	cmd.Flags().StringVar(&languagesPath, "languages", "", "YAML file with language-table overrides")
	cmd.Flags().StringVarP(&reportFormat, "report", "r", "", "Report format: json, md, html, txt (default: console output)")
	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file path")

	return cmd
}

// validateFlags validates CLI flag values
func validateFlags(reportFormat string) error {
	if reportFormat != "" {
		validFormats := []string{"json", "md", "markdown", "html", "txt", "text"}
		if !contains(validFormats, reportFormat) {
			return fmt.Errorf("--report must be one of: %s (got: %s)", strings.Join(validFormats, ", "), reportFormat)
		}
	}
	return nil
}

// contains checks if a slice contains a string
func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}

// languagesCmd creates the languages command
func languagesCmd() *cobra.Command {
	var languagesPath string

	cmd := &cobra.Command{
		Use:   "languages",
		Short: "List the extension to language mappings",
		Long:  `Display the effective extension-to-language table, including any overrides.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := language.LoadTable(languagesPath)
			if err != nil {
				return err
			}

			exts := table.Extensions()
			sort.Strings(exts)

			fmt.Println("EXTENSION -> LANGUAGE")
			for _, ext := range exts {
				fmt.Printf("  %-8s %s\n", ext, table.Detect(ext))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&languagesPath, "languages", "", "YAML file with language-table overrides")

	return cmd
}
