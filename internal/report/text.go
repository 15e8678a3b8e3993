package report

import (
	"fmt"
	"os"
	"strings"

	"github.com/AlexJ-StL/unified-repo-analyzer-sub009/pkg/models"
)

// generateText generates a plain text report
func (g *Generator) generateText(rep *models.Report, outputFile string) error {
	var sb strings.Builder

	// Header
	sb.WriteString("=" + strings.Repeat("=", 78) + "\n")
	sb.WriteString("  REPOSITORY ANALYSIS REPORT\n")
	sb.WriteString("=" + strings.Repeat("=", 78) + "\n\n")

	// Summary
	sb.WriteString("SUMMARY\n")
	sb.WriteString(strings.Repeat("-", 79) + "\n")
	sb.WriteString(fmt.Sprintf("Root Path:        %s\n", rep.RootPath))
	sb.WriteString(fmt.Sprintf("Analyzed At:      %s\n", rep.Metadata.AnalyzedAt.Format("2006-01-02 15:04:05")))
	sb.WriteString(fmt.Sprintf("Total Files:      %d\n", rep.Metadata.TotalFiles))
	sb.WriteString(fmt.Sprintf("Total Dirs:       %d\n", rep.Metadata.TotalDirs))
	sb.WriteString(fmt.Sprintf("Total Size:       %s\n", FormatSize(rep.Metadata.TotalSize)))
	sb.WriteString("\n")

	// Language breakdown
	stats := LanguageStats(rep.Tree)
	if len(stats) > 0 {
		sb.WriteString("LANGUAGES\n")
		sb.WriteString(strings.Repeat("-", 79) + "\n")
		for _, stat := range stats {
			sb.WriteString(fmt.Sprintf("  %-14s: %d\n", stat.Language, stat.Files))
		}
		sb.WriteString("\n")
	}

	// Directory tree
	sb.WriteString("STRUCTURE\n")
	sb.WriteString(strings.Repeat("-", 79) + "\n")
	renderTree(&sb, rep.Tree, 0)

	return os.WriteFile(outputFile, []byte(sb.String()), 0644)
}
