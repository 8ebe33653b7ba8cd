// Package content derives the human-readable report from a scoring result.
// Every generator is a deterministic, side-effect-free function of its
// inputs; unrecognized pathways or risk levels fall back to generic
// defaults instead of failing.
package content

import "riskradar/internal/model"

// Generate builds the full report content for one scoring run.
func Generate(pathway model.Pathway, level model.RiskLevel, result model.ScoringResult, analysis model.Analysis) model.ReportContent {
	return model.ReportContent{
		MainTitle:       generateTitle(pathway, level, result.OverallRiskPercentage),
		MainDescription: generateDescription(level, analysis),
		Probabilities:   generateProbabilities(result),
		Scenarios:       generateScenarios(result, analysis),
		ActionItems:     generateActionItems(level, analysis),
		Recommendations: generateRecommendations(analysis),
		Timeline:        generateTimeline(pathway, level, analysis),
		ReadingList:     generateReadingList(pathway, result),
		Profiles:        generateProfiles(level, analysis),
		Conclusion:      generateConclusion(level, result.OverallRiskPercentage, analysis),
	}
}
