package content

import (
	"sort"

	"riskradar/internal/model"
)

// generateScenarios checks five category-threshold rules in fixed order,
// sorts the hits by probability and keeps at most five. When nothing fires
// a single generic scenario is emitted so the list is never empty.
func generateScenarios(result model.ScoringResult, analysis model.Analysis) []model.Scenario {
	var scenarios []model.Scenario

	if pct := result.PercentOf(model.CategoryDivorce); pct > 30 {
		why := "Zauważalne wzorce dystansowania się i zmiany w relacji"
		if analysis.PoorCommunication {
			why = "Brak komunikacji i narastające konflikty wskazują na nieuchronność"
		}
		scenarios = append(scenarios, model.Scenario{
			Scenario:    "Rozwód lub trwałe rozstanie",
			Probability: capInt(pct, 95),
			Why:         why,
			ImpactScore: 9,
		})
	}

	if pct := result.PercentOf(model.CategoryAlienation); analysis.HasKids && pct > 25 {
		why := "Wzorce zachowań mogące prowadzić do alienacji"
		if analysis.KidsConflict {
			why = "Konflikt dotyczący dzieci i próby ich izolowania"
		}
		scenarios = append(scenarios, model.Scenario{
			Scenario:    "Alienacja rodzicielska",
			Probability: capInt(pct, 90),
			Why:         why,
			ImpactScore: 10,
		})
	}

	if pct := result.PercentOf(model.CategoryFalseAccusation); pct > 20 {
		why := "Sytuacja konfliktowa stwarza ryzyko wykorzystania oskarżeń jako broni"
		if analysis.Manipulation {
			why = "Zauważone wzorce manipulacji mogą eskalować do fałszywych oskarżeń"
		}
		scenarios = append(scenarios, model.Scenario{
			Scenario:    "Fałszywe oskarżenia (przemoc, zaniedbanie)",
			Probability: capInt(pct, 85),
			Why:         why,
			ImpactScore: 10,
		})
	}

	if pct := result.PercentOf(model.CategoryFinancialLoss); pct > 30 {
		why := "Wspólne aktywa i brak przejrzystości finansowej"
		if analysis.FinancialControl {
			why = "Brak kontroli nad finansami zwiększa ryzyko manipulacji majątkiem"
		}
		scenarios = append(scenarios, model.Scenario{
			Scenario:    "Znaczne straty finansowe",
			Probability: capInt(pct, 88),
			Why:         why,
			ImpactScore: 8,
		})
	}

	if pct := result.PercentOf(model.CategoryManipulation); pct > 25 {
		scenarios = append(scenarios, model.Scenario{
			Scenario:    "Eskalacja manipulacji emocjonalnej",
			Probability: capInt(pct, 80),
			Why:         "Wykryte wzorce manipulacji często nasilają się w czasie",
			ImpactScore: 7,
		})
	}

	if len(scenarios) == 0 {
		scenarios = append(scenarios, model.Scenario{
			Scenario:    "Stopniowe oddalanie się",
			Probability: 30,
			Why:         "Naturalna ewolucja związków bez aktywnej pracy nad relacją",
			ImpactScore: 5,
		})
	}

	sort.SliceStable(scenarios, func(i, j int) bool {
		return scenarios[i].Probability > scenarios[j].Probability
	})
	if len(scenarios) > 5 {
		scenarios = scenarios[:5]
	}
	return scenarios
}

func capInt(v, limit int) int {
	if v > limit {
		return limit
	}
	return v
}
