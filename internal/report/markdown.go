package report

import (
	"fmt"
	"os"
	"strings"

	"github.com/AlexJ-StL/unified-repo-analyzer-sub009/pkg/models"
)

// generateMarkdown generates a Markdown report
func (g *Generator) generateMarkdown(rep *models.Report, outputFile string) error {
	var sb strings.Builder

	// Header
	sb.WriteString("# Repository Analysis Report\n\n")

	// Summary
	sb.WriteString("## Summary\n\n")
	sb.WriteString("| Parameter | Value |\n")
	sb.WriteString("|-----------|-------|\n")
	sb.WriteString(fmt.Sprintf("| Root Path | `%s` |\n", rep.RootPath))
	sb.WriteString(fmt.Sprintf("| Analyzed At | %s |\n", rep.Metadata.AnalyzedAt.Format("2006-01-02 15:04:05")))
	sb.WriteString(fmt.Sprintf("| Total Files | %d |\n", rep.Metadata.TotalFiles))
	sb.WriteString(fmt.Sprintf("| Total Directories | %d |\n", rep.Metadata.TotalDirs))
	sb.WriteString(fmt.Sprintf("| Total Size | %s |\n", FormatSize(rep.Metadata.TotalSize)))
	sb.WriteString("\n")

	// Language breakdown
	stats := LanguageStats(rep.Tree)
	if len(stats) > 0 {
		sb.WriteString("## Languages\n\n")
		sb.WriteString("| Language | Files |\n")
		sb.WriteString("|----------|-------|\n")
		for _, stat := range stats {
			sb.WriteString(fmt.Sprintf("| %s | %d |\n", stat.Language, stat.Files))
		}
		sb.WriteString("\n")
	}

	// Directory tree
	sb.WriteString("## Structure\n\n")
	sb.WriteString("```\n")
	renderTree(&sb, rep.Tree, 0)
	sb.WriteString("```\n")

	return os.WriteFile(outputFile, []byte(sb.String()), 0644)
}
