package content

import (
	"fmt"
	"strings"

	"riskradar/internal/model"
)

// generateDescription builds the main description from conditionally
// appended fragments. The evaluation order is fixed and significant:
// intro, top risks, kids, finance, manipulation, false accusations, support.
func generateDescription(level model.RiskLevel, analysis model.Analysis) string {
	var parts []string

	switch level {
	case model.RiskCritical:
		parts = append(parts, "⚠️ UWAGA: Znajdujesz się w sytuacji wysokiego ryzyka.")
	case model.RiskHigh:
		parts = append(parts, "Twoja sytuacja wymaga pilnej uwagi i działania.")
	case model.RiskMedium:
		parts = append(parts, "Widzę niepokojące sygnały, które wymagają monitorowania.")
	default:
		parts = append(parts, "Ogólnie sytuacja wygląda stabilnie, ale czujność zawsze się opłaca.")
	}

	if len(analysis.TopRisks) > 0 {
		parts = append(parts, fmt.Sprintf("Główne obszary ryzyka: %s.", strings.Join(analysis.TopRisks, ", ")))
	}

	if analysis.HasKids && analysis.AlienationRisk > 30 {
		parts = append(parts, "🚨 Wykryto ryzyko alienacji rodzicielskiej - wymaga natychmiastowej uwagi.")
	} else if analysis.HasKids && analysis.KidsConflict {
		parts = append(parts, "Konflikt dotyczący dzieci może eskalować - dokumentuj wszystko.")
	}

	if analysis.FinancialRisk > 40 {
		parts = append(parts, "💰 Wysokie ryzyko strat finansowych - zabezpiecz majątek i konta.")
	} else if analysis.FinancialControl {
		parts = append(parts, "Brak kontroli nad finansami to poważny sygnał ostrzegawczy.")
	}

	if analysis.ManipulationRisk > 35 || analysis.Manipulation {
		parts = append(parts, "🎭 Zauważam wzorce manipulacji - nie daj się kontrolować emocjonalnie.")
	}

	if analysis.FalseAccusationRisk > 30 {
		parts = append(parts, "⚖️ Ryzyko fałszywych oskarżeń - DOKUMENTUJ każdą interakcję.")
	}

	if !analysis.HasSupport || analysis.IsolatedFromFriends {
		parts = append(parts, "Brak sieci wsparcia zwiększa ryzyko - odbuduj kontakty ze znajomymi.")
	}

	return strings.Join(parts, " ")
}
