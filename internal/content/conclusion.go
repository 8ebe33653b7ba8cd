package content

import (
	"fmt"

	"riskradar/internal/model"
)

// generateConclusion selects the summary and call-to-action by level. One
// emphasis sentence may be appended, alienation checked before false
// accusations; the two are mutually exclusive.
func generateConclusion(level model.RiskLevel, percentage int, analysis model.Analysis) model.Conclusion {
	var summary, cta string

	switch level {
	case model.RiskCritical:
		summary = fmt.Sprintf("Twoja sytuacja wymaga NATYCHMIASTOWEJ interwencji (%d%% ryzyka). Nie działaj sam - skontaktuj się z prawnikiem i terapeutą DZIŚ.", percentage)
		cta = "🚨 Działaj TERAZ - każda godzina ma znaczenie"
	case model.RiskHigh:
		summary = fmt.Sprintf("Znajdujesz się w sytuacji wysokiego ryzyka (%d%%). Potrzebujesz profesjonalnej pomocy i konkretnego planu działania.", percentage)
		cta = "⚠️ Zacznij działać w ciągu 48 godzin"
	case model.RiskMedium:
		summary = fmt.Sprintf("Widzę niepokojące sygnały (%d%% ryzyka). To moment na zwiększoną czujność i potencjalne działania prewencyjne.", percentage)
		cta = "📋 Rozpocznij dokumentację i obserwację"
	default:
		summary = fmt.Sprintf("Sytuacja wydaje się stabilna (%d%% ryzyka), ale nie zapominaj o ciągłej pracy nad sobą i relacją.", percentage)
		cta = "✅ Kontynuuj dobre praktyki"
	}

	if analysis.AlienationRisk > 40 {
		summary += " KRYTYCZNE: Wysokie ryzyko alienacji rodzicielskiej!"
	} else if analysis.FalseAccusationRisk > 40 {
		summary += " KRYTYCZNE: Wysokie ryzyko fałszywych oskarżeń!"
	}

	return model.Conclusion{Summary: summary, CTA: cta}
}
