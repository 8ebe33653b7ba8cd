package content

import "riskradar/internal/model"

// Base timelines per pathway. The before timeline doubles as the default
// arm for unrecognized pathways.
var baseTimelines = map[model.Pathway]model.Timeline{
	model.PathwayBefore: {
		Days30: []string{
			"Zacznij prowadzić dziennik obserwacji",
			"Wzmocnij swoją niezależność",
			"Nie konfrontuj się emocjonalnie",
		},
		Days90: []string{
			"Oceń czy sytuacja się poprawia",
			"Rozważ rozmowę z terapeutą",
			"Ustanów granice",
		},
		Days365: []string{
			"Podejmij decyzję: kontynuacja czy rozstanie",
			"Jeśli kontynuacja - wspólne cele",
			"Jeśli rozstanie - przygotuj się prawnie",
		},
	},
	model.PathwayCrisis: {
		Days30: []string{
			"Skonsultuj się z prawnikiem",
			"Zabezpiecz dokumenty",
			"Ogranicz kontakt do minimum",
			"NIE podpisuj niczego bez prawnika",
		},
		Days90: []string{
			"Jeśli są dzieci: ustal harmonogram",
			"Oddziel finanse",
			"Zbuduj sieć wsparcia",
			"Przygotuj plan awaryjny",
		},
		Days365: []string{
			"Doprowadź sprawę do końca",
			"Odbuduj stabilność",
			"Pracuj z terapeutą",
			"Buduj relację z dziećmi",
		},
	},
	model.PathwayDivorce: {
		Days30: []string{
			"ZABEZPIECZ dokumenty finansowe",
			"KRYTYCZNE: żadnych ruchów bez prawnika",
			"Zmień hasła do wszystkiego",
			"Dokumentuj WSZYSTKO",
			"Jeśli dzieci: plan kontaktów",
		},
		Days90: []string{
			"Sfinalizuj podział majątku",
			"Ustabilizuj finanse",
			"Walcz o sprawiedliwy harmonogram",
			"Praca z terapeutą",
			"Odciąć toksyczne kontakty",
		},
		Days365: []string{
			"Zamknij sprawy prawne",
			"Odbuduj życie",
			"Utrzymuj relację z dziećmi",
			"Trening i rozwój",
			"Wyciągnij wnioski",
		},
	},
	model.PathwayMarried: {
		Days30: []string{
			"Oceń stan relacji",
			"Wspólna aktywność",
			"Zadbaj o swoją przestrzeń",
		},
		Days90: []string{
			"Wprowadź zmiany",
			"Oceń czy partnerka się rozwija",
			"Finanse przejrzyste",
		},
		Days365: []string{
			"Podsumuj rok",
			"Wspólne cele",
			"Balans relacja/rozwój osobisty",
		},
	},
}

// generateTimeline copies the pathway's base timeline and, for high and
// critical levels, prepends up to two urgent items to the 30-day horizon.
// The alienation item is evaluated first, so when both fire the false
// accusation item ends up at the front.
func generateTimeline(pathway model.Pathway, level model.RiskLevel, analysis model.Analysis) model.Timeline {
	base, ok := baseTimelines[pathway]
	if !ok {
		base = baseTimelines[model.PathwayBefore]
	}
	timeline := model.Timeline{
		Days30:  append([]string(nil), base.Days30...),
		Days90:  append([]string(nil), base.Days90...),
		Days365: append([]string(nil), base.Days365...),
	}

	if level == model.RiskCritical || level == model.RiskHigh {
		if analysis.HasKids && analysis.AlienationRisk > 30 {
			timeline.Days30 = append([]string{"⚠️ Skontaktuj się z prawnikiem nt. zabezpieczenia kontaktów z dziećmi"}, timeline.Days30...)
		}
		if analysis.FalseAccusationRisk > 30 {
			timeline.Days30 = append([]string{"🚨 Zainstaluj aplikację do nagrywania rozmów (jeśli legalne w PL)"}, timeline.Days30...)
		}
	}

	return timeline
}
