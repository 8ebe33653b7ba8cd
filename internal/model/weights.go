package model

import "time"

// NoRisk is the sentinel category meaning "no category credited".
const NoRisk = "-"

// MaxPointsPerQuestion is the assumed maximum contribution of a single
// answered question, whether or not a weight entry matched it.
const MaxPointsPerQuestion = 10

// Risk category names as they appear in the weight sheets.
const (
	CategoryDivorce         = "Rozstanie/Rozwód"
	CategoryManipulation    = "Manipulacja"
	CategoryAlienation      = "Alienacja rodzicielska"
	CategoryFalseAccusation = "Fałszywe oskarżenia"
	CategoryFinancialLoss   = "Straty finansowe"
)

// WeightEntry is the risk consequence of choosing one specific answer to one
// specific question. MainRisk is credited the full RiskPoints, each SideRisk
// half of them. A MainRisk of NoRisk credits no category.
type WeightEntry struct {
	QuestionID string   `json:"questionId" bson:"questionId"`
	Answer     string   `json:"answer" bson:"answer"`
	RiskPoints int      `json:"riskPoints" bson:"riskPoints"`
	MainRisk   string   `json:"mainRisk" bson:"mainRisk"`
	SideRisks  []string `json:"sideRisks,omitempty" bson:"sideRisks,omitempty"`
}

// QuestionOption is one selectable answer with its weight attached.
type QuestionOption struct {
	Text       string   `json:"text"`
	RiskPoints int      `json:"riskPoints"`
	MainRisk   string   `json:"mainRisk"`
	SideRisks  []string `json:"sideRisks,omitempty"`
}

// Question is a single questionnaire entry with its answer options.
type Question struct {
	ID      string           `json:"id"`
	Text    string           `json:"text"`
	Options []QuestionOption `json:"options"`
}

// Table sources.
const (
	TableSourceSheet    = "sheet"
	TableSourceFallback = "fallback"
)

// PathwayTable is the question set and weight table for one pathway, as
// parsed from the unified CSV sheet or substituted from the built-in
// fallback data.
type PathwayTable struct {
	Pathway   Pathway       `json:"pathway"`
	Questions []Question    `json:"questions"`
	Weights   []WeightEntry `json:"weights"`
	Source    string        `json:"source"`
	FetchedAt time.Time     `json:"fetchedAt"`
}

// Weights derives the flat weight table from a question list. Used by the
// fallback tables, where weights live on the options.
func Weights(questions []Question) []WeightEntry {
	var weights []WeightEntry
	for _, q := range questions {
		for _, opt := range q.Options {
			weights = append(weights, WeightEntry{
				QuestionID: q.ID,
				Answer:     opt.Text,
				RiskPoints: opt.RiskPoints,
				MainRisk:   opt.MainRisk,
				SideRisks:  opt.SideRisks,
			})
		}
	}
	return weights
}
