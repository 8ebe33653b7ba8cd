package content

import "riskradar/internal/model"

// generateActionItems tiers the action list by risk level: the
// critical/high tier first, then the medium/high tier, then the low tier,
// and a final unconditional item. Append order is preserved; at most six
// items survive.
func generateActionItems(level model.RiskLevel, analysis model.Analysis) []model.ActionItem {
	var actions []model.ActionItem

	if level == model.RiskCritical || level == model.RiskHigh {
		actions = append(actions, model.ActionItem{
			Priority: "🚨 NATYCHMIASTOWE",
			Action:   "Skonsultuj się z prawnikiem specjalizującym się w prawie rodzinnym",
		})
		if analysis.HasKids && analysis.AlienationRisk > 30 {
			actions = append(actions, model.ActionItem{
				Priority: "🚨 KRYTYCZNE",
				Action:   "Dokumentuj WSZYSTKIE interakcje z dziećmi - nagrania audio (jeśli legalne), SMS, email",
			})
		}
		if analysis.FinancialRisk > 40 {
			actions = append(actions, model.ActionItem{
				Priority: "🚨 PILNE",
				Action:   "Zabezpiecz finanse: osobne konto, zmień hasła, skopiuj wszystkie dokumenty",
			})
		}
		if analysis.FalseAccusationRisk > 30 {
			actions = append(actions, model.ActionItem{
				Priority: "🚨 KRYTYCZNE",
				Action:   "NIE spotykaj się sam na sam bez świadków - każda interakcja musi być udokumentowana",
			})
		}
	}

	if level == model.RiskMedium || level == model.RiskHigh {
		actions = append(actions, model.ActionItem{
			Priority: "⚠️ WAŻNE",
			Action:   "Rozpocznij prowadzenie dziennika zdarzeń - daty, fakty, kontekst (bez emocji)",
		})
		if !analysis.HasSupport {
			actions = append(actions, model.ActionItem{
				Priority: "⚠️ WAŻNE",
				Action:   "Odbuduj sieć wsparcia - zaufani przyjaciele, rodzina, grupa wsparcia",
			})
		}
		actions = append(actions, model.ActionItem{
			Priority: "⚠️ ZALECANE",
			Action:   "Rozważ konsultację z terapeutą specjalizującym się w sytuacjach kryzysowych",
		})
	}

	if level == model.RiskLow {
		actions = append(actions, model.ActionItem{
			Priority: "✓ ZALECANE",
			Action:   "Kontynuuj obserwację - zwracaj uwagę na zmiany w zachowaniu",
		})
		actions = append(actions, model.ActionItem{
			Priority: "✓ ROZWÓJ",
			Action:   "Pracuj nad sobą: trening, hobby, rozwój osobisty - utrzymuj niezależność",
		})
	}

	actions = append(actions, model.ActionItem{
		Priority: "💪 FUNDAMENTALNE",
		Action:   "Zachowaj spokój i kontrolę emocjonalną - nie reaguj impulsywnie",
	})

	if len(actions) > 6 {
		actions = actions[:6]
	}
	return actions
}
