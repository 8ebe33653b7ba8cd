package model

// Pathway identifies the questionnaire variant for the user's relationship stage.
type Pathway string

const (
	PathwayBefore  Pathway = "before"
	PathwayMarried Pathway = "married"
	PathwayCrisis  Pathway = "crisis"
	PathwayDivorce Pathway = "divorce"
)

// Pathways returns all known pathways in a fixed order.
func Pathways() []Pathway {
	return []Pathway{PathwayBefore, PathwayMarried, PathwayCrisis, PathwayDivorce}
}

// Valid reports whether p is one of the known pathways.
func (p Pathway) Valid() bool {
	switch p {
	case PathwayBefore, PathwayMarried, PathwayCrisis, PathwayDivorce:
		return true
	}
	return false
}

// RiskLevel is the four-tier severity classification of the overall risk percentage.
type RiskLevel string

const (
	RiskLow      RiskLevel = "low"
	RiskMedium   RiskLevel = "medium"
	RiskHigh     RiskLevel = "high"
	RiskCritical RiskLevel = "critical"
)

// RiskLevelFor classifies an overall risk percentage. Boundaries are
// lower-inclusive: 25 is medium, 50 is high, 75 is critical.
func RiskLevelFor(percentage int) RiskLevel {
	switch {
	case percentage < 25:
		return RiskLow
	case percentage < 50:
		return RiskMedium
	case percentage < 75:
		return RiskHigh
	default:
		return RiskCritical
	}
}
