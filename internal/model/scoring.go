package model

// CategoryScore is the accumulated points and breakdown share of a single
// risk category. Categories are kept in the order they first received points
// so results are stable across runs.
type CategoryScore struct {
	Category string  `json:"category"`
	Points   float64 `json:"points"`
	Percent  int     `json:"percent"`
}

// ScoringResult is the outcome of matching an answer set against a weight
// table.
type ScoringResult struct {
	TotalRiskPoints       int             `json:"totalRiskPoints"`
	MaxPossiblePoints     int             `json:"maxPossiblePoints"`
	OverallRiskPercentage int             `json:"overallRiskPercentage"`
	Categories            []CategoryScore `json:"categories"`
	RiskLevel             RiskLevel       `json:"riskLevel"`
	MatchedWeights        []WeightEntry   `json:"matchedWeights"`
	UnmatchedQuestions    []string        `json:"unmatchedQuestions,omitempty"`
}

// Percent returns the breakdown percentage for a category and whether the
// category received any points at all.
func (r ScoringResult) Percent(category string) (int, bool) {
	for _, c := range r.Categories {
		if c.Category == category {
			return c.Percent, true
		}
	}
	return 0, false
}

// PercentOf returns the breakdown percentage for a category, 0 when absent.
func (r ScoringResult) PercentOf(category string) int {
	pct, _ := r.Percent(category)
	return pct
}

// BreakdownMap returns the breakdown as a plain map for serialization.
func (r ScoringResult) BreakdownMap() map[string]int {
	m := make(map[string]int, len(r.Categories))
	for _, c := range r.Categories {
		m[c.Category] = c.Percent
	}
	return m
}

// Analysis is the fixed set of behavioral signals derived from the raw
// answers and the category breakdown. The booleans come from keyword
// heuristics, the numeric sub-scores are direct breakdown lookups.
type Analysis struct {
	HasKids             bool `json:"hasKids"`
	KidsConflict        bool `json:"kidsConflict"`
	FinancialControl    bool `json:"financialControl"`
	SharedAssets        bool `json:"sharedAssets"`
	PoorCommunication   bool `json:"poorCommunication"`
	Manipulation        bool `json:"manipulation"`
	EmotionalAbuse      bool `json:"emotionalAbuse"`
	FearLevel           bool `json:"fearLevel"`
	HasSupport          bool `json:"hasSupport"`
	IsolatedFromFriends bool `json:"isolatedFromFriends"`

	TopRisks []string `json:"topRisks"`

	DivorceRisk         int `json:"divorceRisk"`
	AlienationRisk      int `json:"alienationRisk"`
	FalseAccusationRisk int `json:"falseAccusationRisk"`
	FinancialRisk       int `json:"financialRisk"`
	ManipulationRisk    int `json:"manipulationRisk"`
}
