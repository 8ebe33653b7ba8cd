package model

import "time"

// Probabilities are the four headline likelihoods shown on the report,
// capped per name.
type Probabilities struct {
	Divorce         int `json:"divorce" bson:"divorce"`
	FalseAccusation int `json:"falseAccusation" bson:"falseAccusation"`
	Alienation      int `json:"alienation" bson:"alienation"`
	FinancialLoss   int `json:"financialLoss" bson:"financialLoss"`
}

// Scenario is one projected development with its likelihood and impact.
type Scenario struct {
	Scenario    string `json:"scenario" bson:"scenario"`
	Probability int    `json:"probability" bson:"probability"`
	Why         string `json:"why" bson:"why"`
	ImpactScore int    `json:"impactScore" bson:"impactScore"`
}

// ActionItem is a prioritized step the user should take.
type ActionItem struct {
	Priority string `json:"priority" bson:"priority"`
	Action   string `json:"action" bson:"action"`
}

// Recommendation is a category-tagged piece of advice.
type Recommendation struct {
	Type string `json:"type" bson:"type"`
	Text string `json:"text" bson:"text"`
}

// Timeline groups suggested steps into three horizons.
type Timeline struct {
	Days30  []string `json:"days30" bson:"days30"`
	Days90  []string `json:"days90" bson:"days90"`
	Days365 []string `json:"days365" bson:"days365"`
}

// Book is a reading list entry.
type Book struct {
	Title       string `json:"title" bson:"title"`
	Author      string `json:"author" bson:"author"`
	Description string `json:"description" bson:"description"`
}

// Trait is a single labeled observation in a psychological profile.
type Trait struct {
	Label string `json:"label" bson:"label"`
	Value string `json:"value" bson:"value"`
}

// Profiles holds the two independent trait lists.
type Profiles struct {
	User    []Trait `json:"user" bson:"user"`
	Partner []Trait `json:"partner" bson:"partner"`
}

// Conclusion is the closing summary with its call to action.
type Conclusion struct {
	Summary string `json:"summary" bson:"summary"`
	CTA     string `json:"cta" bson:"cta"`
}

// ReportContent is everything the content generator derives. It holds no
// independent state.
type ReportContent struct {
	MainTitle       string           `json:"mainTitle" bson:"mainTitle"`
	MainDescription string           `json:"mainDescription" bson:"mainDescription"`
	Probabilities   Probabilities    `json:"probabilities" bson:"probabilities"`
	Scenarios       []Scenario       `json:"scenarios" bson:"scenarios"`
	ActionItems     []ActionItem     `json:"actionItems" bson:"actionItems"`
	Recommendations []Recommendation `json:"recommendations" bson:"recommendations"`
	Timeline        Timeline         `json:"timeline" bson:"timeline"`
	ReadingList     []Book           `json:"readingList" bson:"readingList"`
	Profiles        Profiles         `json:"psychologicalProfiles" bson:"psychologicalProfiles"`
	Conclusion      Conclusion       `json:"conclusion" bson:"conclusion"`
}

// ReportMeta describes how a report was produced.
type ReportMeta struct {
	Source            Pathway   `json:"source" bson:"source"`
	Score             int       `json:"score" bson:"score"`
	GeneratedAt       time.Time `json:"generatedAt" bson:"generatedAt"`
	TotalQuestions    int       `json:"totalQuestions" bson:"totalQuestions"`
	AnsweredQuestions int       `json:"answeredQuestions" bson:"answeredQuestions"`
}

// Report is the externally visible assessment result.
type Report struct {
	ID                    string         `json:"id" bson:"_id,omitempty"`
	Pathway               Pathway        `json:"pathway" bson:"pathway"`
	RiskLevel             RiskLevel      `json:"riskLevel" bson:"riskLevel"`
	Confidence            int            `json:"confidence" bson:"confidence"`
	OverallRiskPercentage int            `json:"overallRiskPercentage" bson:"overallRiskPercentage"`
	RiskBreakdown         map[string]int `json:"riskBreakdown" bson:"riskBreakdown"`
	Analysis              Analysis       `json:"analysis" bson:"analysis"`
	ReportContent         `bson:",inline"`
	Meta                  ReportMeta `json:"meta" bson:"meta"`
}
