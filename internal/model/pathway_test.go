package model

import "testing"

func TestRiskLevelFor(t *testing.T) {
	tests := []struct {
		percentage int
		want       RiskLevel
	}{
		{0, RiskLow},
		{24, RiskLow},
		{25, RiskMedium},
		{49, RiskMedium},
		{50, RiskHigh},
		{74, RiskHigh},
		{75, RiskCritical},
		{100, RiskCritical},
	}

	for _, tt := range tests {
		if got := RiskLevelFor(tt.percentage); got != tt.want {
			t.Errorf("RiskLevelFor(%d) = %s, want %s", tt.percentage, got, tt.want)
		}
	}
}

func TestPathwayValid(t *testing.T) {
	for _, p := range Pathways() {
		if !p.Valid() {
			t.Errorf("expected %s to be valid", p)
		}
	}
	if Pathway("unknown").Valid() {
		t.Error("expected unknown pathway to be invalid")
	}
	if Pathway("").Valid() {
		t.Error("expected empty pathway to be invalid")
	}
}

func TestWeightsFlattensOptions(t *testing.T) {
	questions := []Question{
		{
			ID: "q1",
			Options: []QuestionOption{
				{Text: "a", RiskPoints: 2, MainRisk: NoRisk},
				{Text: "b", RiskPoints: 7, MainRisk: CategoryDivorce, SideRisks: []string{CategoryManipulation}},
			},
		},
		{
			ID: "q2",
			Options: []QuestionOption{
				{Text: "c", RiskPoints: 5, MainRisk: CategoryFinancialLoss},
			},
		},
	}

	weights := Weights(questions)
	if len(weights) != 3 {
		t.Fatalf("expected 3 weight entries, got %d", len(weights))
	}
	if weights[1].QuestionID != "q1" || weights[1].Answer != "b" {
		t.Fatalf("unexpected second entry: %+v", weights[1])
	}
	if weights[1].MainRisk != CategoryDivorce || len(weights[1].SideRisks) != 1 {
		t.Fatalf("second entry lost its risks: %+v", weights[1])
	}
	if weights[2].QuestionID != "q2" || weights[2].RiskPoints != 5 {
		t.Fatalf("unexpected third entry: %+v", weights[2])
	}
}
