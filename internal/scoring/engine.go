package scoring

import (
	"io"
	"log"
	"math"
	"sort"

	"riskradar/internal/model"
)

// Engine matches submitted answers against a weight table and accumulates
// per-category risk scores. It performs no I/O; diagnostics go to the
// injected logger.
type Engine struct {
	log *log.Logger
}

// NewEngine creates an engine. A nil logger silences diagnostics.
func NewEngine(logger *log.Logger) *Engine {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Engine{log: logger}
}

// Score computes the scoring result for an answer set against a weight
// table. Questions are processed in sorted id order so category ordering and
// diagnostics are deterministic; the math does not depend on order.
//
// A question with no matching weight entry contributes nothing and is not an
// error. Duplicate (questionId, answer) entries resolve first-match-wins and
// are reported as a diagnostic.
func (e *Engine) Score(answers map[string]string, weights []model.WeightEntry) model.ScoringResult {
	ids := make([]string, 0, len(answers))
	for id := range answers {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	res := model.ScoringResult{
		MatchedWeights: []model.WeightEntry{},
	}
	var (
		order  []string
		points = map[string]float64{}
	)
	credit := func(category string, pts float64) {
		if category == "" || category == model.NoRisk {
			return
		}
		if _, ok := points[category]; !ok {
			order = append(order, category)
		}
		points[category] += pts
	}

	for _, id := range ids {
		answer := answers[id]
		entry, extra := findEntry(weights, id, answer)
		if extra > 0 {
			e.log.Printf("scoring: %d duplicate weight entries for (%s, %q), using first", extra, id, answer)
		}
		if entry == nil {
			res.UnmatchedQuestions = append(res.UnmatchedQuestions, id)
			e.log.Printf("scoring: no weight entry for (%s, %q); candidates: %v", id, answer, availableAnswers(weights, id))
		} else {
			e.log.Printf("scoring: match %s = %q -> %d pts (main %s)", id, answer, entry.RiskPoints, entry.MainRisk)
			res.MatchedWeights = append(res.MatchedWeights, *entry)
			res.TotalRiskPoints += entry.RiskPoints
			credit(entry.MainRisk, float64(entry.RiskPoints))
			for _, side := range entry.SideRisks {
				credit(side, float64(entry.RiskPoints)*0.5)
			}
		}
		res.MaxPossiblePoints += model.MaxPointsPerQuestion
	}

	if res.MaxPossiblePoints > 0 {
		res.OverallRiskPercentage = roundPct(float64(res.TotalRiskPoints) / float64(res.MaxPossiblePoints))
	}

	var totalCategoryPoints float64
	for _, c := range order {
		totalCategoryPoints += points[c]
	}
	res.Categories = make([]model.CategoryScore, 0, len(order))
	for _, c := range order {
		score := model.CategoryScore{Category: c, Points: points[c]}
		if totalCategoryPoints > 0 {
			score.Percent = roundPct(points[c] / totalCategoryPoints)
		}
		res.Categories = append(res.Categories, score)
	}

	res.RiskLevel = model.RiskLevelFor(res.OverallRiskPercentage)
	return res
}

// findEntry returns the first entry matching the pair exactly, plus the
// number of additional matches found.
func findEntry(weights []model.WeightEntry, questionID, answer string) (*model.WeightEntry, int) {
	var first *model.WeightEntry
	extra := 0
	for i := range weights {
		if weights[i].QuestionID == questionID && weights[i].Answer == answer {
			if first == nil {
				first = &weights[i]
			} else {
				extra++
			}
		}
	}
	return first, extra
}

func availableAnswers(weights []model.WeightEntry, questionID string) []string {
	var answers []string
	for _, w := range weights {
		if w.QuestionID == questionID {
			answers = append(answers, w.Answer)
		}
	}
	return answers
}

func roundPct(ratio float64) int {
	return int(math.Round(ratio * 100))
}
