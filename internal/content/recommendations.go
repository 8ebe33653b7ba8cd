package content

import "riskradar/internal/model"

func generateRecommendations(analysis model.Analysis) []model.Recommendation {
	var recs []model.Recommendation

	if analysis.PoorCommunication || analysis.Manipulation {
		recs = append(recs, model.Recommendation{
			Type: "komunikacja",
			Text: "TYLKO pisemna komunikacja (SMS, email) - nic ustnie, wszystko udokumentowane",
		})
		recs = append(recs, model.Recommendation{
			Type: "komunikacja",
			Text: "Bądź konkretny, rzeczowy, bez emocji - nie daj się sprowokować",
		})
	}

	recs = append(recs, model.Recommendation{
		Type: "mentalne",
		Text: "Techniki oddychania i mindfulness - kontroluj reakcje w stresie",
	})

	if analysis.EmotionalAbuse {
		recs = append(recs, model.Recommendation{
			Type: "mentalne",
			Text: "Praca z terapeutą nad trauma bond i manipulacją emocjonalną",
		})
	}

	if analysis.FalseAccusationRisk > 20 || analysis.FinancialRisk > 30 {
		recs = append(recs, model.Recommendation{
			Type: "prawne",
			Text: "Przygotuj teczkę obronną: dokumenty, nagrania, świadkowie, timeline zdarzeń",
		})
	}

	recs = append(recs, model.Recommendation{
		Type: "fizyczne",
		Text: "Regularny trening - redukuje stres i buduje odporność psychiczną",
	})

	if !analysis.HasSupport {
		recs = append(recs, model.Recommendation{
			Type: "społeczne",
			Text: "Odbuduj relacje społeczne - izolacja jest bronią manipulatora",
		})
	}

	if len(recs) > 6 {
		recs = recs[:6]
	}
	return recs
}
