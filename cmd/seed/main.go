package main

import (
	"encoding/csv"
	"flag"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"riskradar/internal/model"
	"riskradar/internal/sheets"
)

// Exports the built-in fallback tables as CSV files in the sheet column
// layout. Useful for bootstrapping a new spreadsheet per pathway.
func main() {
	dir := flag.String("dir", "seed", "output directory for CSV files")
	flag.Parse()

	if err := os.MkdirAll(*dir, 0o755); err != nil {
		log.Fatalf("Failed to create %s: %v", *dir, err)
	}

	for _, pathway := range model.Pathways() {
		table := sheets.FallbackTable(pathway)
		path := filepath.Join(*dir, string(pathway)+".csv")
		if err := writeTable(path, table); err != nil {
			log.Fatalf("Failed to write %s: %v", path, err)
		}
		log.Printf("Wrote %s (%d questions, %d weights)", path, len(table.Questions), len(table.Weights))
	}
}

func writeTable(path string, table *model.PathwayTable) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"id", "question", "answer", "points", "mainRisk", "sideRisks", "comment"}); err != nil {
		return err
	}

	questionText := make(map[string]string, len(table.Questions))
	for _, q := range table.Questions {
		questionText[q.ID] = q.Text
	}

	for _, entry := range table.Weights {
		record := []string{
			entry.QuestionID,
			questionText[entry.QuestionID],
			entry.Answer,
			strconv.Itoa(entry.RiskPoints),
			entry.MainRisk,
			strings.Join(entry.SideRisks, ", "),
			"",
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}
