package report

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/AlexJ-StL/unified-repo-analyzer-sub009/internal/config"
	"github.com/AlexJ-StL/unified-repo-analyzer-sub009/pkg/models"
	"go.uber.org/zap"
)

func testReport() *models.Report {
	now := time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)
	root := models.NewDirectoryEntry("repo", "/repo", now)
	sub := models.NewDirectoryEntry("sub", "/repo/sub", now)
	root.Children = append(root.Children,
		models.NewFileEntry("a.ts", "/repo/a.ts", 50, now, ".ts", "TypeScript"),
		models.NewFileEntry("image.png", "/repo/image.png", 2000, now, ".png", ""),
		sub,
	)
	sub.Children = append(sub.Children,
		models.NewFileEntry("b.md", "/repo/sub/b.md", 30, now, ".md", "Markdown"),
	)

	return &models.Report{
		RootPath: "/repo",
		Tree:     root,
		Contents: models.ContentMap{
			"/repo/a.ts":      "const x = 1;",
			"/repo/image.png": "[Binary file]",
			"/repo/sub/b.md":  "# b",
		},
		Metadata: models.Metadata{
			TotalFiles: 3,
			TotalDirs:  2,
			TotalSize:  2080,
			AnalyzedAt: now,
		},
	}
}

func generatorFor(t *testing.T, format, output string) *Generator {
	t.Helper()
	cfg := &config.Config{ReportFormat: format, OutputFile: output}
	return NewGenerator(cfg, zap.NewNop())
}

func TestGenerateJSON(t *testing.T) {
	output := filepath.Join(t.TempDir(), "report.json")
	g := generatorFor(t, "json", output)

	path, err := g.Generate(testReport())
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if path != output {
		t.Errorf("Generate() path = %q, want %q", path, output)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatal(err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("report is not valid JSON: %v", err)
	}
	if decoded["root_path"] != "/repo" {
		t.Errorf("root_path = %v, want /repo", decoded["root_path"])
	}
	if !strings.Contains(string(data), `"type": "file"`) {
		t.Error("JSON report missing file node discriminator")
	}
}

func TestGenerateMarkdown(t *testing.T) {
	output := filepath.Join(t.TempDir(), "report.md")
	g := generatorFor(t, "md", output)

	if _, err := g.Generate(testReport()); err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatal(err)
	}
	content := string(data)

	for _, want := range []string{
		"# Repository Analysis Report",
		"| Total Files | 3 |",
		"| TypeScript | 1 |",
		"b.md (30 B)",
	} {
		if !strings.Contains(content, want) {
			t.Errorf("markdown report missing %q", want)
		}
	}
}

func TestGenerateHTML(t *testing.T) {
	output := filepath.Join(t.TempDir(), "report.html")
	g := generatorFor(t, "html", output)

	if _, err := g.Generate(testReport()); err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatal(err)
	}
	content := string(data)

	for _, want := range []string{
		"<!DOCTYPE html>",
		"Repository Analysis Report",
		"<td>Markdown</td>",
		"2.03 KB",
	} {
		if !strings.Contains(content, want) {
			t.Errorf("html report missing %q", want)
		}
	}
}

func TestGenerateText(t *testing.T) {
	output := filepath.Join(t.TempDir(), "report.txt")
	g := generatorFor(t, "txt", output)

	if _, err := g.Generate(testReport()); err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatal(err)
	}
	content := string(data)

	for _, want := range []string{
		"REPOSITORY ANALYSIS REPORT",
		"Total Files:      3",
		"repo/",
	} {
		if !strings.Contains(content, want) {
			t.Errorf("text report missing %q", want)
		}
	}
}

func TestGenerateUnknownFormat(t *testing.T) {
	g := generatorFor(t, "pdf", "")
	if _, err := g.Generate(testReport()); err == nil {
		t.Error("Generate() expected error for unknown format")
	}
}

func TestFormatSize(t *testing.T) {
	tests := []struct {
		name     string
		size     int64
		expected string
	}{
		{"Bytes", 512, "512 B"},
		{"Kilobytes", 2080, "2.03 KB"},
		{"Megabytes", 5 * 1024 * 1024, "5.00 MB"},
		{"Gigabytes", 3 * 1024 * 1024 * 1024, "3.00 GB"},
		{"Zero", 0, "0 B"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatSize(tt.size); got != tt.expected {
				t.Errorf("FormatSize(%d) = %q, want %q", tt.size, got, tt.expected)
			}
		})
	}
}

func TestLanguageStats(t *testing.T) {
	stats := LanguageStats(testReport().Tree)

	if len(stats) != 3 {
		t.Fatalf("LanguageStats() returned %d entries, want 3", len(stats))
	}
	// Equal counts tie-break alphabetically
	expected := []LanguageStat{
		{Language: "Markdown", Files: 1},
		{Language: "Other", Files: 1},
		{Language: "TypeScript", Files: 1},
	}
	for i, want := range expected {
		if stats[i] != want {
			t.Errorf("stats[%d] = %+v, want %+v", i, stats[i], want)
		}
	}
}
