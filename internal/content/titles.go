package content

import (
	"fmt"

	"riskradar/internal/model"
)

// Title templates per pathway and level; %d is the overall risk percentage.
var titleTemplates = map[model.Pathway]map[model.RiskLevel]string{
	model.PathwayBefore: {
		model.RiskLow:      "Stabilny początek (%d%% ryzyka)",
		model.RiskMedium:   "Sygnały ostrzegawcze (%d%% ryzyka) - obserwuj",
		model.RiskHigh:     "Poważne sygnały alarmowe (%d%% ryzyka) - działaj",
		model.RiskCritical: "KRYTYCZNE ryzyko (%d%%) - natychmiastowa interwencja",
	},
	model.PathwayCrisis: {
		model.RiskLow:      "Kryzys pod kontrolą (%d%% ryzyka)",
		model.RiskMedium:   "Relacja na ostrzu noża (%d%% ryzyka)",
		model.RiskHigh:     "Głęboki kryzys (%d%% ryzyka) - pilna interwencja",
		model.RiskCritical: "KRYZYS KRYTYCZNY (%d%%) - zabezpiecz się TERAZ",
	},
	model.PathwayDivorce: {
		model.RiskLow:      "Rozstanie pod kontrolą (%d%% ryzyka)",
		model.RiskMedium:   "Rozwód - maksymalne zabezpieczenie (%d%% ryzyka)",
		model.RiskHigh:     "Rozwód wysokiego konfliktu (%d%%) - OCHRONA priorytetem",
		model.RiskCritical: "EKSTREMALNIE trudna sytuacja (%d%%) - NIE działaj sam",
	},
	model.PathwayMarried: {
		model.RiskLow:      "Zdrowy związek (%d%% ryzyka) - utrzymaj balans",
		model.RiskMedium:   "Stabilny związek (%d%%) - obserwuj równowagę",
		model.RiskHigh:     "Rutyna szkodzi (%d%%) - potrzeba zmian",
		model.RiskCritical: "Stagnacja zaawansowana (%d%%) - radykalne zmiany TERAZ",
	},
}

const titleFallback = "Analiza: %d%% ryzyka"

func generateTitle(pathway model.Pathway, level model.RiskLevel, percentage int) string {
	if byLevel, ok := titleTemplates[pathway]; ok {
		if tmpl, ok := byLevel[level]; ok {
			return fmt.Sprintf(tmpl, percentage)
		}
	}
	return fmt.Sprintf(titleFallback, percentage)
}
