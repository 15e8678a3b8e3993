package report

import (
	"fmt"
	"html"
	"os"
	"strings"

	"github.com/AlexJ-StL/unified-repo-analyzer-sub009/pkg/models"
)

// generateHTML generates a self-contained HTML report
func (g *Generator) generateHTML(rep *models.Report, outputFile string) error {
	var sb strings.Builder

	sb.WriteString(`<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Repository Analysis Report</title>
    <style>
        :root {
            --bg-primary: #0C0C0C;
            --bg-secondary: #161616;
            --text-primary: #ECECEC;
            --text-secondary: #A0A0A0;
            --accent: #D97706;
            --border-color: #2A2A2A;
            --code-bg: #0A0A0A;
        }
        * { margin: 0; padding: 0; box-sizing: border-box; }
        body {
            font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', sans-serif;
            background: var(--bg-primary);
            color: var(--text-primary);
            padding: 32px 24px;
            line-height: 1.5;
        }
        .container { max-width: 960px; margin: 0 auto; }
        h1 { font-size: 24px; margin-bottom: 4px; }
        h2 { font-size: 18px; margin: 32px 0 12px; color: var(--accent); }
        .subtitle { color: var(--text-secondary); margin-bottom: 24px; }
        .cards { display: flex; gap: 16px; flex-wrap: wrap; }
        .card {
            background: var(--bg-secondary);
            border: 1px solid var(--border-color);
            border-radius: 8px;
            padding: 16px 24px;
            min-width: 140px;
        }
        .card .value { font-size: 22px; font-weight: 600; }
        .card .label { color: var(--text-secondary); font-size: 13px; }
        table { border-collapse: collapse; width: 100%; }
        th, td {
            text-align: left;
            padding: 8px 12px;
            border-bottom: 1px solid var(--border-color);
        }
        th { color: var(--text-secondary); font-weight: 500; }
        pre {
            background: var(--code-bg);
            border: 1px solid var(--border-color);
            border-radius: 8px;
            padding: 16px;
            overflow-x: auto;
            font-family: 'JetBrains Mono', monospace;
            font-size: 13px;
        }
    </style>
</head>
<body>
<div class="container">
`)

	sb.WriteString("    <h1>Repository Analysis Report</h1>\n")
	sb.WriteString(fmt.Sprintf("    <div class=\"subtitle\">%s &middot; %s</div>\n",
		html.EscapeString(rep.RootPath),
		rep.Metadata.AnalyzedAt.Format("2006-01-02 15:04:05")))

	// Summary cards
	sb.WriteString("    <div class=\"cards\">\n")
	writeCard(&sb, fmt.Sprintf("%d", rep.Metadata.TotalFiles), "Files")
	writeCard(&sb, fmt.Sprintf("%d", rep.Metadata.TotalDirs), "Directories")
	writeCard(&sb, FormatSize(rep.Metadata.TotalSize), "Total Size")
	sb.WriteString("    </div>\n")

	// Language breakdown
	stats := LanguageStats(rep.Tree)
	if len(stats) > 0 {
		sb.WriteString("    <h2>Languages</h2>\n")
		sb.WriteString("    <table>\n")
		sb.WriteString("        <tr><th>Language</th><th>Files</th></tr>\n")
		for _, stat := range stats {
			sb.WriteString(fmt.Sprintf("        <tr><td>%s</td><td>%d</td></tr>\n",
				html.EscapeString(stat.Language), stat.Files))
		}
		sb.WriteString("    </table>\n")
	}

	// Directory tree
	var tree strings.Builder
	renderTree(&tree, rep.Tree, 0)
	sb.WriteString("    <h2>Structure</h2>\n")
	sb.WriteString("    <pre>")
	sb.WriteString(html.EscapeString(tree.String()))
	sb.WriteString("</pre>\n")

	sb.WriteString("</div>\n</body>\n</html>\n")

	return os.WriteFile(outputFile, []byte(sb.String()), 0644)
}

func writeCard(sb *strings.Builder, value, label string) {
	sb.WriteString("        <div class=\"card\">\n")
	sb.WriteString(fmt.Sprintf("            <div class=\"value\">%s</div>\n", html.EscapeString(value)))
	sb.WriteString(fmt.Sprintf("            <div class=\"label\">%s</div>\n", label))
	sb.WriteString("        </div>\n")
}
