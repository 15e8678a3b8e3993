package report

import (
	"encoding/json"
	"os"

	"github.com/AlexJ-StL/unified-repo-analyzer-sub009/pkg/models"
)

// generateJSON writes the full report as indented JSON
func (g *Generator) generateJSON(rep *models.Report, outputFile string) error {
	data, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(outputFile, data, 0644)
}
