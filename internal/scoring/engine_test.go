package scoring

import (
	"reflect"
	"testing"

	"riskradar/internal/model"
)

var testWeights = []model.WeightEntry{
	{QuestionID: "q1", Answer: "good", RiskPoints: 1, MainRisk: model.NoRisk},
	{QuestionID: "q1", Answer: "bad", RiskPoints: 8, MainRisk: model.CategoryDivorce, SideRisks: []string{model.CategoryManipulation}},
	{QuestionID: "q2", Answer: "yes", RiskPoints: 6, MainRisk: model.CategoryFinancialLoss},
	{QuestionID: "q3", Answer: "often", RiskPoints: 10, MainRisk: model.CategoryManipulation, SideRisks: []string{model.CategoryDivorce, model.CategoryFalseAccusation}},
}

func TestScoreEmptyAnswers(t *testing.T) {
	engine := NewEngine(nil)
	res := engine.Score(map[string]string{}, testWeights)

	if res.TotalRiskPoints != 0 || res.MaxPossiblePoints != 0 {
		t.Fatalf("expected zero points, got total %d max %d", res.TotalRiskPoints, res.MaxPossiblePoints)
	}
	if res.OverallRiskPercentage != 0 {
		t.Fatalf("expected 0%%, got %d", res.OverallRiskPercentage)
	}
	if res.RiskLevel != model.RiskLow {
		t.Fatalf("expected low level, got %s", res.RiskLevel)
	}
	if len(res.Categories) != 0 {
		t.Fatalf("expected no categories, got %v", res.Categories)
	}
}

func TestScoreUnmatchedAnswer(t *testing.T) {
	engine := NewEngine(nil)
	res := engine.Score(map[string]string{"q1": "never seen"}, testWeights)

	if res.TotalRiskPoints != 0 {
		t.Fatalf("expected 0 total points, got %d", res.TotalRiskPoints)
	}
	if res.MaxPossiblePoints != model.MaxPointsPerQuestion {
		t.Fatalf("expected max %d, got %d", model.MaxPointsPerQuestion, res.MaxPossiblePoints)
	}
	if !reflect.DeepEqual(res.UnmatchedQuestions, []string{"q1"}) {
		t.Fatalf("expected q1 unmatched, got %v", res.UnmatchedQuestions)
	}
	if len(res.MatchedWeights) != 0 {
		t.Fatalf("expected no matches, got %v", res.MatchedWeights)
	}
}

func TestScoreSideRisksHalfPoints(t *testing.T) {
	engine := NewEngine(nil)
	res := engine.Score(map[string]string{"q1": "bad"}, testWeights)

	if res.TotalRiskPoints != 8 {
		t.Fatalf("expected 8 total points, got %d", res.TotalRiskPoints)
	}
	if len(res.Categories) != 2 {
		t.Fatalf("expected 2 categories, got %v", res.Categories)
	}
	if res.Categories[0].Category != model.CategoryDivorce || res.Categories[0].Points != 8 {
		t.Fatalf("main risk mis-credited: %+v", res.Categories[0])
	}
	if res.Categories[1].Category != model.CategoryManipulation || res.Categories[1].Points != 4 {
		t.Fatalf("side risk should get half points: %+v", res.Categories[1])
	}
	// 8/12 and 4/12 of the category pool
	if res.Categories[0].Percent != 67 || res.Categories[1].Percent != 33 {
		t.Fatalf("unexpected breakdown: %d / %d", res.Categories[0].Percent, res.Categories[1].Percent)
	}
}

func TestScoreOverallPercentageAndLevel(t *testing.T) {
	engine := NewEngine(nil)
	res := engine.Score(map[string]string{"q1": "bad", "q2": "yes"}, testWeights)

	if res.TotalRiskPoints != 14 || res.MaxPossiblePoints != 20 {
		t.Fatalf("expected 14/20, got %d/%d", res.TotalRiskPoints, res.MaxPossiblePoints)
	}
	if res.OverallRiskPercentage != 70 {
		t.Fatalf("expected 70%%, got %d", res.OverallRiskPercentage)
	}
	if res.RiskLevel != model.RiskHigh {
		t.Fatalf("expected high level, got %s", res.RiskLevel)
	}
}

func TestScoreNoRiskEntryCreditsNoCategory(t *testing.T) {
	engine := NewEngine(nil)
	res := engine.Score(map[string]string{"q1": "good"}, testWeights)

	if res.TotalRiskPoints != 1 {
		t.Fatalf("expected 1 total point, got %d", res.TotalRiskPoints)
	}
	if len(res.Categories) != 0 {
		t.Fatalf("no-risk entries must not open categories, got %v", res.Categories)
	}
	if len(res.MatchedWeights) != 1 {
		t.Fatalf("expected the entry to count as matched, got %v", res.MatchedWeights)
	}
}

func TestScoreFirstMatchWins(t *testing.T) {
	weights := []model.WeightEntry{
		{QuestionID: "q1", Answer: "x", RiskPoints: 3, MainRisk: model.CategoryDivorce},
		{QuestionID: "q1", Answer: "x", RiskPoints: 9, MainRisk: model.CategoryManipulation},
	}
	engine := NewEngine(nil)
	res := engine.Score(map[string]string{"q1": "x"}, weights)

	if res.TotalRiskPoints != 3 {
		t.Fatalf("expected first entry to win with 3 points, got %d", res.TotalRiskPoints)
	}
	if len(res.Categories) != 1 || res.Categories[0].Category != model.CategoryDivorce {
		t.Fatalf("expected only the first entry's category, got %v", res.Categories)
	}
}

func TestScoreDeterministic(t *testing.T) {
	answers := map[string]string{"q1": "bad", "q2": "yes", "q3": "often"}
	engine := NewEngine(nil)

	first := engine.Score(answers, testWeights)
	for i := 0; i < 10; i++ {
		if res := engine.Score(answers, testWeights); !reflect.DeepEqual(first, res) {
			t.Fatalf("run %d differs:\nfirst: %+v\nnow:   %+v", i, first, res)
		}
	}
}

func TestScoreBreakdownSumsToRoughly100(t *testing.T) {
	engine := NewEngine(nil)
	res := engine.Score(map[string]string{"q1": "bad", "q2": "yes", "q3": "often"}, testWeights)

	sum := 0
	for _, c := range res.Categories {
		if c.Percent < 0 || c.Percent > 100 {
			t.Fatalf("percent out of range: %+v", c)
		}
		sum += c.Percent
	}
	// Per-category rounding allows a small drift around 100.
	if sum < 98 || sum > 102 {
		t.Fatalf("breakdown sums to %d", sum)
	}
}
