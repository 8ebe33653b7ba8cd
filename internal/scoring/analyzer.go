package scoring

import (
	"sort"
	"strings"

	"riskradar/internal/model"
)

// Analyze derives the behavioral signals from the raw answers and the
// category breakdown of a scoring run. The boolean signals re-scan the
// answers with keyword heuristics, independent of whether the weight table
// matched them; the numeric sub-scores are direct breakdown lookups.
func Analyze(answers map[string]string, result model.ScoringResult) model.Analysis {
	return model.Analysis{
		HasKids:             matchesKeyword(answers, ruleHasKids),
		KidsConflict:        matchesKeyword(answers, ruleKidsConflict),
		FinancialControl:    matchesKeyword(answers, ruleFinancialControl),
		SharedAssets:        matchesKeyword(answers, ruleSharedAssets),
		PoorCommunication:   matchesKeyword(answers, rulePoorComms),
		Manipulation:        matchesKeyword(answers, ruleManipulation),
		EmotionalAbuse:      matchesKeyword(answers, ruleEmotionalAbuse),
		FearLevel:           matchesKeyword(answers, ruleFearLevel),
		HasSupport:          matchesKeyword(answers, ruleHasSupport),
		IsolatedFromFriends: matchesKeyword(answers, ruleIsolated),

		TopRisks: topRisks(result.Categories, 3),

		DivorceRisk:         result.PercentOf(model.CategoryDivorce),
		AlienationRisk:      result.PercentOf(model.CategoryAlienation),
		FalseAccusationRisk: result.PercentOf(model.CategoryFalseAccusation),
		FinancialRisk:       result.PercentOf(model.CategoryFinancialLoss),
		ManipulationRisk:    result.PercentOf(model.CategoryManipulation),
	}
}

// matchesKeyword is a best-effort heuristic, deliberately tolerant of
// differing question-id schemes across pathways (kids_relationship vs
// contact_kids). Case-insensitive substring match on both sides,
// short-circuiting on the first hit.
func matchesKeyword(answers map[string]string, rule keywordRule) bool {
	for question, answer := range answers {
		q := strings.ToLower(question)
		fragmentHit := false
		for _, fragment := range rule.questionFragments {
			if strings.Contains(q, strings.ToLower(fragment)) {
				fragmentHit = true
				break
			}
		}
		if !fragmentHit {
			continue
		}
		a := strings.ToLower(answer)
		for _, keyword := range rule.answerKeywords {
			if strings.Contains(a, strings.ToLower(keyword)) {
				return true
			}
		}
	}
	return false
}

// topRisks returns up to n category names with the highest breakdown
// percentage. The sort is stable, so ties keep first-credit order.
func topRisks(categories []model.CategoryScore, n int) []string {
	ranked := make([]model.CategoryScore, len(categories))
	copy(ranked, categories)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Percent > ranked[j].Percent
	})
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	names := make([]string, 0, len(ranked))
	for _, c := range ranked {
		names = append(names, c.Category)
	}
	return names
}
