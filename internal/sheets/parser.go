package sheets

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"
	"time"

	"riskradar/internal/model"
)

// Unified sheet columns: id, question, answer, risk points, main risk,
// side risks, optional comment.
const minColumns = 6

// ParseTable reads a unified CSV document into a pathway table. The first
// row is a header. Malformed rows (too few columns, unparseable points) are
// skipped with a diagnostic; parsing continues. Option rows sharing a
// question id are grouped into one question, in first-seen order.
func ParseTable(pathway model.Pathway, r io.Reader) (*model.PathwayTable, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("empty document")
	}

	table := &model.PathwayTable{
		Pathway:   pathway,
		Source:    model.TableSourceSheet,
		FetchedAt: time.Now(),
	}
	questionIndex := map[string]int{}

	for i, row := range records[1:] {
		if len(row) < minColumns {
			log.Printf("sheets: skipping %s row %d: %d of %d columns", pathway, i+2, len(row), minColumns)
			continue
		}

		id := strings.TrimSpace(row[0])
		questionText := strings.TrimSpace(row[1])
		answer := strings.TrimSpace(row[2])
		if id == "" || answer == "" {
			log.Printf("sheets: skipping %s row %d: missing question id or answer", pathway, i+2)
			continue
		}

		points, err := strconv.Atoi(strings.TrimSpace(row[3]))
		if err != nil {
			log.Printf("sheets: skipping %s row %d: bad risk points %q", pathway, i+2, row[3])
			continue
		}

		mainRisk := strings.TrimSpace(row[4])
		if mainRisk == "" {
			mainRisk = model.NoRisk
		}
		sideRisks := splitSideRisks(row[5])

		option := model.QuestionOption{
			Text:       answer,
			RiskPoints: points,
			MainRisk:   mainRisk,
			SideRisks:  sideRisks,
		}
		idx, ok := questionIndex[id]
		if !ok {
			if questionText == "" {
				questionText = "Pytanie " + id
			}
			table.Questions = append(table.Questions, model.Question{ID: id, Text: questionText})
			idx = len(table.Questions) - 1
			questionIndex[id] = idx
		}
		table.Questions[idx].Options = append(table.Questions[idx].Options, option)

		table.Weights = append(table.Weights, model.WeightEntry{
			QuestionID: id,
			Answer:     answer,
			RiskPoints: points,
			MainRisk:   mainRisk,
			SideRisks:  sideRisks,
		})
	}

	return table, nil
}

// splitSideRisks accepts comma or period separated lists and drops the
// "-" sentinel.
func splitSideRisks(raw string) []string {
	fields := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == '.'
	})
	var risks []string
	for _, f := range fields {
		f = strings.TrimSpace(f)
		if f != "" && f != model.NoRisk {
			risks = append(risks, f)
		}
	}
	return risks
}
