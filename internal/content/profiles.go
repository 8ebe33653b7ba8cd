package content

import "riskradar/internal/model"

// generateProfiles builds the two independent trait lists. The partner list
// gets a neutral placeholder when no signal fired, so it is never empty.
func generateProfiles(level model.RiskLevel, analysis model.Analysis) model.Profiles {
	var user, partner []model.Trait

	switch level {
	case model.RiskCritical, model.RiskHigh:
		user = append(user,
			model.Trait{Label: "Stan emocjonalny", Value: "Wysoki stres - ryzyko impulsywnych decyzji ⚠️"},
			model.Trait{Label: "Priorytet", Value: "Zachowanie kontroli i spokoju - NIE reaguj emocjonalnie"},
		)
	case model.RiskMedium:
		user = append(user,
			model.Trait{Label: "Stan emocjonalny", Value: "Niepewność, wyczulenie na sygnały"},
			model.Trait{Label: "Wyzwanie", Value: "Balans między troską a niepotrzebnym stresem"},
		)
	default:
		user = append(user,
			model.Trait{Label: "Stan emocjonalny", Value: "Względnie stabilny, świadomy"},
			model.Trait{Label: "Zalecenie", Value: "Utrzymuj czujność bez paranoi"},
		)
	}

	if analysis.FearLevel {
		user = append(user, model.Trait{Label: "Wykryty wzorzec", Value: "Wysoki poziom lęku - może wpływać na postrzeganie sytuacji"})
	}
	if !analysis.HasSupport {
		user = append(user, model.Trait{Label: "Izolacja społeczna", Value: "⚠️ Brak sieci wsparcia - krytyczne zagrożenie"})
	}

	if analysis.Manipulation || analysis.ManipulationRisk > 30 {
		partner = append(partner, model.Trait{Label: "Wykryte wzorce", Value: "🚨 Manipulacja emocjonalna - gaslighting, kontrola"})
	}
	if analysis.PoorCommunication {
		partner = append(partner, model.Trait{Label: "Komunikacja", Value: "Dystans, unikanie, emocjonalny chłód"})
	}
	if analysis.FinancialControl {
		partner = append(partner, model.Trait{Label: "Kontrola finansowa", Value: "⚠️ Próby kontroli majątku i dostępu do pieniędzy"})
	}
	if analysis.KidsConflict && analysis.HasKids {
		partner = append(partner, model.Trait{Label: "Strategia", Value: "🚨 Wykorzystywanie dzieci jako broni w konflikcie"})
	}
	if analysis.AlienationRisk > 30 {
		partner = append(partner, model.Trait{Label: "Sygnały alarmowe", Value: "🔴 Wzorce alienacyjne - izolowanie od dzieci"})
	}

	if len(partner) == 0 {
		partner = append(partner, model.Trait{Label: "Obserwowane zachowanie", Value: "Brak wyraźnych sygnałów alarmowych"})
	}

	if len(user) > 5 {
		user = user[:5]
	}
	if len(partner) > 5 {
		partner = partner[:5]
	}
	return model.Profiles{User: user, Partner: partner}
}
