package content

import "riskradar/internal/model"

// generateProbabilities caps each headline probability and substitutes a
// per-name default when the category never received points. A category
// present with a zero share keeps its zero.
func generateProbabilities(result model.ScoringResult) model.Probabilities {
	return model.Probabilities{
		Divorce:         cappedPercent(result, model.CategoryDivorce, 95, 15),
		FalseAccusation: cappedPercent(result, model.CategoryFalseAccusation, 90, 5),
		Alienation:      cappedPercent(result, model.CategoryAlienation, 95, 10),
		FinancialLoss:   cappedPercent(result, model.CategoryFinancialLoss, 90, 10),
	}
}

func cappedPercent(result model.ScoringResult, category string, limit, def int) int {
	pct, ok := result.Percent(category)
	if !ok {
		pct = def
	}
	if pct > limit {
		return limit
	}
	return pct
}
