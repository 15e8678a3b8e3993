package report

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/AlexJ-StL/unified-repo-analyzer-sub009/internal/config"
	"github.com/AlexJ-StL/unified-repo-analyzer-sub009/pkg/models"
	"go.uber.org/zap"
)

// ANSI color codes
const (
	colorReset  = "\033[0m"
	colorBold   = "\033[1m"
	colorCyan   = "\033[36m"
	colorOrange = "\033[38;5;208m"
	colorGray   = "\033[38;5;245m"
)

// Generator writes analysis reports in various formats
type Generator struct {
	config *config.Config
	logger *zap.Logger
}

// NewGenerator creates a new report generator
func NewGenerator(cfg *config.Config, logger *zap.Logger) *Generator {
	return &Generator{
		config: cfg,
		logger: logger,
	}
}

// Generate writes a report in the configured format and returns the
// output path. With no format configured, a summary is printed to the
// console and no file is written.
func (g *Generator) Generate(rep *models.Report) (string, error) {
	format := g.config.ReportFormat
	outputFile := g.config.OutputFile

	// If no format specified, print to console
	if format == "" {
		g.printConsole(rep)
		return "", nil
	}

	// Generate default filename if not specified
	if outputFile == "" {
		timestamp := time.Now().Format("20060102-150405")
		switch format {
		case "json":
			outputFile = fmt.Sprintf("REPO-ANALYZER-REPORT-%s.json", timestamp)
		case "md", "markdown":
			outputFile = fmt.Sprintf("REPO-ANALYZER-REPORT-%s.md", timestamp)
		case "html":
			outputFile = fmt.Sprintf("REPO-ANALYZER-REPORT-%s.html", timestamp)
		case "txt", "text":
			outputFile = fmt.Sprintf("REPO-ANALYZER-REPORT-%s.txt", timestamp)
		default:
			return "", fmt.Errorf("unknown report format: %s", format)
		}
	}

	g.logger.Info("Generating report",
		zap.String("format", format),
		zap.String("output", outputFile))

	var err error
	switch format {
	case "json":
		err = g.generateJSON(rep, outputFile)
	case "md", "markdown":
		err = g.generateMarkdown(rep, outputFile)
	case "html":
		err = g.generateHTML(rep, outputFile)
	case "txt", "text":
		err = g.generateText(rep, outputFile)
	default:
		return "", fmt.Errorf("unknown report format: %s", format)
	}
	if err != nil {
		return "", err
	}

	return outputFile, nil
}

// printConsole prints a colored summary to stdout
func (g *Generator) printConsole(rep *models.Report) {
	fmt.Println()
	fmt.Printf("  %sAnalyzed:%s    %s\n", colorGray, colorReset, rep.RootPath)
	fmt.Printf("  %sFiles:%s       %d\n", colorGray, colorReset, rep.Metadata.TotalFiles)
	fmt.Printf("  %sDirectories:%s %d\n", colorGray, colorReset, rep.Metadata.TotalDirs)
	fmt.Printf("  %sTotal Size:%s  %s\n", colorGray, colorReset, FormatSize(rep.Metadata.TotalSize))
	fmt.Println()

	stats := LanguageStats(rep.Tree)
	if len(stats) > 0 {
		fmt.Printf("  %s%sLanguages%s\n", colorBold, colorOrange, colorReset)
		for _, stat := range stats {
			fmt.Printf("  %s%-14s%s %d\n", colorCyan, stat.Language, colorReset, stat.Files)
		}
		fmt.Println()
	}
}

// FormatSize formats a byte count to a human-readable string
func FormatSize(size int64) string {
	const (
		kib = 1024
		mib = 1024 * kib
		gib = 1024 * mib
	)
	switch {
	case size >= gib:
		return fmt.Sprintf("%.2f GB", float64(size)/float64(gib))
	case size >= mib:
		return fmt.Sprintf("%.2f MB", float64(size)/float64(mib))
	case size >= kib:
		return fmt.Sprintf("%.2f KB", float64(size)/float64(kib))
	}
	return fmt.Sprintf("%d B", size)
}

// LanguageStat is the per-language file count used by report sections
type LanguageStat struct {
	Language string
	Files    int
}

// LanguageStats counts files per detected language, most files first.
// Files with no detected language are grouped under "Other".
func LanguageStats(tree *models.DirectoryEntry) []LanguageStat {
	counts := make(map[string]int)
	models.WalkTree(tree, func(n models.Node) {
		file, ok := n.(*models.FileEntry)
		if !ok {
			return
		}
		lang := file.Language
		if lang == "" {
			lang = "Other"
		}
		counts[lang]++
	})

	stats := make([]LanguageStat, 0, len(counts))
	for lang, files := range counts {
		stats = append(stats, LanguageStat{Language: lang, Files: files})
	}
	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Files != stats[j].Files {
			return stats[i].Files > stats[j].Files
		}
		return stats[i].Language < stats[j].Language
	})
	return stats
}

// renderTree writes an indented listing of the tree into sb
func renderTree(sb *strings.Builder, node models.Node, depth int) {
	indent := strings.Repeat("  ", depth)
	switch entry := node.(type) {
	case *models.DirectoryEntry:
		sb.WriteString(fmt.Sprintf("%s%s/\n", indent, entry.Name))
		for _, child := range entry.Children {
			renderTree(sb, child, depth+1)
		}
	case *models.FileEntry:
		sb.WriteString(fmt.Sprintf("%s%s (%s)\n", indent, entry.Name, FormatSize(entry.Size)))
	}
}
