package scoring

import (
	"reflect"
	"testing"

	"riskradar/internal/model"
)

func TestAnalyzeKeywordSignals(t *testing.T) {
	tests := []struct {
		name    string
		answers map[string]string
		check   func(a model.Analysis) bool
	}{
		{
			name:    "has kids polish",
			answers: map[string]string{"has_kids": "Tak"},
			check:   func(a model.Analysis) bool { return a.HasKids },
		},
		{
			name:    "has kids english",
			answers: map[string]string{"children_count": "Yes, two"},
			check:   func(a model.Analysis) bool { return a.HasKids },
		},
		{
			name:    "kids conflict",
			answers: map[string]string{"kids_relationship": "Bardzo konfliktowa"},
			check:   func(a model.Analysis) bool { return a.KidsConflict },
		},
		{
			name:    "financial control",
			answers: map[string]string{"financial_control": "Partnerka kontroluje wszystkie finanse"},
			check:   func(a model.Analysis) bool { return a.FinancialControl },
		},
		{
			name:    "shared assets",
			answers: map[string]string{"assets_division": "Wspólny majątek bez porozumienia"},
			check:   func(a model.Analysis) bool { return a.SharedAssets },
		},
		{
			name:    "poor communication",
			answers: map[string]string{"communication_quality": "Bardzo zła"},
			check:   func(a model.Analysis) bool { return a.PoorCommunication },
		},
		{
			name:    "emotional abuse",
			answers: map[string]string{"emotional_abuse": "Tak, często"},
			check:   func(a model.Analysis) bool { return a.EmotionalAbuse },
		},
		{
			name:    "fear level",
			answers: map[string]string{"fear_level": "Bardzo wysoki"},
			check:   func(a model.Analysis) bool { return a.FearLevel },
		},
		{
			name:    "has support",
			answers: map[string]string{"support_network": "Tak, mam wsparcie"},
			check:   func(a model.Analysis) bool { return a.HasSupport },
		},
		{
			name:    "isolated",
			answers: map[string]string{"friends_contact": "Brak kontaktu"},
			check:   func(a model.Analysis) bool { return a.IsolatedFromFriends },
		},
		{
			name:    "no support is not support",
			answers: map[string]string{"support_network": "Nie, jestem odcięty"},
			check:   func(a model.Analysis) bool { return !a.HasSupport },
		},
		{
			name:    "fragment without keyword stays quiet",
			answers: map[string]string{"has_kids": "Nie"},
			check:   func(a model.Analysis) bool { return !a.HasKids },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := Analyze(tt.answers, model.ScoringResult{})
			if !tt.check(a) {
				t.Fatalf("signal check failed for %v: %+v", tt.answers, a)
			}
		})
	}
}

func TestAnalyzeSubScoresFromBreakdown(t *testing.T) {
	result := model.ScoringResult{
		Categories: []model.CategoryScore{
			{Category: model.CategoryDivorce, Percent: 40},
			{Category: model.CategoryAlienation, Percent: 25},
			{Category: model.CategoryManipulation, Percent: 35},
		},
	}

	a := Analyze(map[string]string{}, result)
	if a.DivorceRisk != 40 || a.AlienationRisk != 25 || a.ManipulationRisk != 35 {
		t.Fatalf("sub-scores mismatch: %+v", a)
	}
	if a.FalseAccusationRisk != 0 || a.FinancialRisk != 0 {
		t.Fatalf("absent categories should read 0: %+v", a)
	}
}

func TestTopRisksOrderAndLimit(t *testing.T) {
	categories := []model.CategoryScore{
		{Category: model.CategoryDivorce, Percent: 20},
		{Category: model.CategoryManipulation, Percent: 45},
		{Category: model.CategoryAlienation, Percent: 20},
		{Category: model.CategoryFinancialLoss, Percent: 15},
	}

	got := topRisks(categories, 3)
	// 45 first; the 20/20 tie keeps first-credit order.
	want := []string{model.CategoryManipulation, model.CategoryDivorce, model.CategoryAlienation}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("topRisks = %v, want %v", got, want)
	}
}

func TestTopRisksFewerCategories(t *testing.T) {
	got := topRisks([]model.CategoryScore{{Category: model.CategoryDivorce, Percent: 10}}, 3)
	if !reflect.DeepEqual(got, []string{model.CategoryDivorce}) {
		t.Fatalf("topRisks = %v", got)
	}
}
