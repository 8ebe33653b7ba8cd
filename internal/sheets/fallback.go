package sheets

import (
	"time"

	"riskradar/internal/model"
)

// Built-in tables used when sheet retrieval fails or no URL is configured.
// Weights live on the options; FallbackTable derives the flat weight table.
var fallbackQuestions = map[model.Pathway][]model.Question{
	model.PathwayBefore: {
		{
			ID: "communication_quality", Text: "Jak oceniasz komunikację w Waszym związku?",
			Options: []model.QuestionOption{
				{Text: "Bardzo dobra", RiskPoints: 1, MainRisk: model.NoRisk},
				{Text: "Dobra", RiskPoints: 2, MainRisk: model.NoRisk},
				{Text: "Średnia", RiskPoints: 4, MainRisk: model.CategoryDivorce},
				{Text: "Zła", RiskPoints: 7, MainRisk: model.CategoryDivorce, SideRisks: []string{model.CategoryManipulation}},
				{Text: "Bardzo zła", RiskPoints: 9, MainRisk: model.CategoryDivorce, SideRisks: []string{model.CategoryManipulation}},
			},
		},
		{
			ID: "financial_control", Text: "Kto kontroluje finanse w związku?",
			Options: []model.QuestionOption{
				{Text: "Wspólna kontrola", RiskPoints: 1, MainRisk: model.NoRisk},
				{Text: "Głównie ja", RiskPoints: 2, MainRisk: model.NoRisk},
				{Text: "Głównie partnerka", RiskPoints: 5, MainRisk: model.CategoryFinancialLoss, SideRisks: []string{model.CategoryManipulation}},
				{Text: "Partnerka kontroluje wszystkie finanse", RiskPoints: 9, MainRisk: model.CategoryFinancialLoss, SideRisks: []string{model.CategoryManipulation}},
			},
		},
		{
			ID: "has_kids", Text: "Czy macie dzieci?",
			Options: []model.QuestionOption{
				{Text: "Tak", MainRisk: model.NoRisk},
				{Text: "Nie", MainRisk: model.NoRisk},
			},
		},
		{
			ID: "kids_relationship", Text: "Jak wygląda relacja wokół dzieci?",
			Options: []model.QuestionOption{
				{Text: "Dobra", RiskPoints: 1, MainRisk: model.NoRisk},
				{Text: "Średnia", RiskPoints: 4, MainRisk: model.CategoryAlienation},
				{Text: "Konfliktowa", RiskPoints: 7, MainRisk: model.CategoryAlienation, SideRisks: []string{model.CategoryFalseAccusation}},
				{Text: "Bardzo konfliktowa", RiskPoints: 10, MainRisk: model.CategoryAlienation, SideRisks: []string{model.CategoryFalseAccusation}},
			},
		},
		{
			ID: "emotional_abuse", Text: "Czy doświadczasz przemocy emocjonalnej?",
			Options: []model.QuestionOption{
				{Text: "Nie", MainRisk: model.NoRisk},
				{Text: "Czasami", RiskPoints: 5, MainRisk: model.CategoryManipulation, SideRisks: []string{model.CategoryDivorce}},
				{Text: "Tak, często", RiskPoints: 8, MainRisk: model.CategoryManipulation, SideRisks: []string{model.CategoryDivorce, model.CategoryFalseAccusation}},
				{Text: "Bardzo często", RiskPoints: 10, MainRisk: model.CategoryManipulation, SideRisks: []string{model.CategoryDivorce, model.CategoryFalseAccusation}},
			},
		},
		{
			ID: "support_network", Text: "Czy masz sieć wsparcia (rodzina, przyjaciele)?",
			Options: []model.QuestionOption{
				{Text: "Tak, mam wsparcie", MainRisk: model.NoRisk},
				{Text: "Niewielkie", RiskPoints: 3, MainRisk: model.CategoryManipulation},
				{Text: "Nie, jestem odcięty", RiskPoints: 8, MainRisk: model.CategoryManipulation, SideRisks: []string{model.CategoryFinancialLoss}},
			},
		},
	},
	model.PathwayCrisis: {
		{
			ID: "conflict_level", Text: "Jak oceniasz poziom konfliktu w ostatnim czasie?",
			Options: []model.QuestionOption{
				{Text: "Niski", RiskPoints: 2, MainRisk: model.NoRisk},
				{Text: "Średni", RiskPoints: 5, MainRisk: model.CategoryDivorce},
				{Text: "Wysoki", RiskPoints: 8, MainRisk: model.CategoryDivorce, SideRisks: []string{model.CategoryFalseAccusation}},
				{Text: "Ekstremalny", RiskPoints: 10, MainRisk: model.CategoryDivorce, SideRisks: []string{model.CategoryFalseAccusation, model.CategoryAlienation}},
			},
		},
		{
			ID: "communication_quality", Text: "Jak wygląda komunikacja z partnerką?",
			Options: []model.QuestionOption{
				{Text: "Bardzo dobra", RiskPoints: 1, MainRisk: model.NoRisk},
				{Text: "Dobra", RiskPoints: 2, MainRisk: model.NoRisk},
				{Text: "Średnia", RiskPoints: 4, MainRisk: model.CategoryDivorce},
				{Text: "Zła", RiskPoints: 7, MainRisk: model.CategoryDivorce, SideRisks: []string{model.CategoryManipulation}},
				{Text: "Bardzo zła", RiskPoints: 9, MainRisk: model.CategoryDivorce, SideRisks: []string{model.CategoryManipulation}},
			},
		},
		{
			ID: "financial_control", Text: "Czy partnerka kontroluje Twoje finanse?",
			Options: []model.QuestionOption{
				{Text: "Wspólna kontrola", RiskPoints: 1, MainRisk: model.NoRisk},
				{Text: "Głównie ja", RiskPoints: 2, MainRisk: model.NoRisk},
				{Text: "Głównie partnerka", RiskPoints: 5, MainRisk: model.CategoryFinancialLoss, SideRisks: []string{model.CategoryManipulation}},
				{Text: "Partnerka kontroluje wszystkie finanse", RiskPoints: 9, MainRisk: model.CategoryFinancialLoss, SideRisks: []string{model.CategoryManipulation}},
			},
		},
		{
			ID: "has_kids", Text: "Czy są dzieci w związku?",
			Options: []model.QuestionOption{
				{Text: "Tak", MainRisk: model.NoRisk},
				{Text: "Nie", MainRisk: model.NoRisk},
				{Text: "Partnerka jest w ciąży", MainRisk: model.NoRisk},
			},
		},
		{
			ID: "kids_relationship", Text: "Jak wygląda sytuacja wokół dzieci?",
			Options: []model.QuestionOption{
				{Text: "Dobra", RiskPoints: 1, MainRisk: model.NoRisk},
				{Text: "Średnia", RiskPoints: 4, MainRisk: model.CategoryAlienation},
				{Text: "Konfliktowa", RiskPoints: 7, MainRisk: model.CategoryAlienation, SideRisks: []string{model.CategoryFalseAccusation}},
				{Text: "Bardzo konfliktowa", RiskPoints: 10, MainRisk: model.CategoryAlienation, SideRisks: []string{model.CategoryFalseAccusation}},
			},
		},
		{
			ID: "emotional_abuse", Text: "Czy doświadczasz przemocy emocjonalnej?",
			Options: []model.QuestionOption{
				{Text: "Nie", MainRisk: model.NoRisk},
				{Text: "Czasami", RiskPoints: 5, MainRisk: model.CategoryManipulation, SideRisks: []string{model.CategoryDivorce}},
				{Text: "Tak, często", RiskPoints: 8, MainRisk: model.CategoryManipulation, SideRisks: []string{model.CategoryDivorce, model.CategoryFalseAccusation}},
				{Text: "Bardzo często", RiskPoints: 10, MainRisk: model.CategoryManipulation, SideRisks: []string{model.CategoryDivorce, model.CategoryFalseAccusation}},
			},
		},
		{
			ID: "support_network", Text: "Czy masz wsparcie bliskich?",
			Options: []model.QuestionOption{
				{Text: "Tak, mam wsparcie", MainRisk: model.NoRisk},
				{Text: "Niewielkie", RiskPoints: 3, MainRisk: model.CategoryManipulation},
				{Text: "Nie, jestem odcięty", RiskPoints: 8, MainRisk: model.CategoryManipulation, SideRisks: []string{model.CategoryFinancialLoss}},
			},
		},
	},
	model.PathwayDivorce: {
		{
			ID: "legal_representation", Text: "Czy masz prawnika?",
			Options: []model.QuestionOption{
				{Text: "Tak, mam prawnika", MainRisk: model.NoRisk},
				{Text: "Jeszcze szukam", RiskPoints: 4, MainRisk: model.CategoryFinancialLoss},
				{Text: "Nie", RiskPoints: 7, MainRisk: model.CategoryFinancialLoss, SideRisks: []string{model.CategoryFalseAccusation}},
			},
		},
		{
			ID: "assets_division", Text: "Jak wygląda podział majątku?",
			Options: []model.QuestionOption{
				{Text: "Uzgodniony", RiskPoints: 1, MainRisk: model.NoRisk},
				{Text: "W negocjacjach", RiskPoints: 4, MainRisk: model.CategoryFinancialLoss},
				{Text: "Wspólny majątek bez porozumienia", RiskPoints: 7, MainRisk: model.CategoryFinancialLoss, SideRisks: []string{model.CategoryManipulation}},
				{Text: "Partnerka ukrywa majątek", RiskPoints: 10, MainRisk: model.CategoryFinancialLoss, SideRisks: []string{model.CategoryManipulation}},
			},
		},
		{
			ID: "contact_kids", Text: "Jak wygląda kontakt z dziećmi?",
			Options: []model.QuestionOption{
				{Text: "Regularny", RiskPoints: 1, MainRisk: model.NoRisk},
				{Text: "Utrudniany", RiskPoints: 6, MainRisk: model.CategoryAlienation, SideRisks: []string{model.CategoryManipulation}},
				{Text: "Konflikt o każde spotkanie", RiskPoints: 8, MainRisk: model.CategoryAlienation, SideRisks: []string{model.CategoryFalseAccusation}},
				{Text: "Niemożliwy - partnerka blokuje kontakt", RiskPoints: 10, MainRisk: model.CategoryAlienation, SideRisks: []string{model.CategoryFalseAccusation, model.CategoryManipulation}},
			},
		},
		{
			ID: "accusations", Text: "Czy pojawiły się oskarżenia wobec Ciebie?",
			Options: []model.QuestionOption{
				{Text: "Nie", MainRisk: model.NoRisk},
				{Text: "Groźby oskarżeń", RiskPoints: 6, MainRisk: model.CategoryFalseAccusation, SideRisks: []string{model.CategoryManipulation}},
				{Text: "Tak, fałszywe oskarżenia", RiskPoints: 10, MainRisk: model.CategoryFalseAccusation, SideRisks: []string{model.CategoryAlienation}},
			},
		},
		{
			ID: "fear_level", Text: "Jak oceniasz swój poziom stresu i strachu?",
			Options: []model.QuestionOption{
				{Text: "Niski", RiskPoints: 1, MainRisk: model.NoRisk},
				{Text: "Średni", RiskPoints: 3, MainRisk: model.NoRisk},
				{Text: "Wysoki", RiskPoints: 6, MainRisk: model.CategoryManipulation},
				{Text: "Bardzo wysoki", RiskPoints: 8, MainRisk: model.CategoryManipulation},
			},
		},
	},
	model.PathwayMarried: {
		{
			ID: "relationship_satisfaction", Text: "Jak oceniasz swoje zadowolenie ze związku?",
			Options: []model.QuestionOption{
				{Text: "Bardzo zadowolony", MainRisk: model.NoRisk},
				{Text: "Zadowolony", RiskPoints: 2, MainRisk: model.NoRisk},
				{Text: "Średnio", RiskPoints: 5, MainRisk: model.CategoryDivorce},
				{Text: "Niezadowolony", RiskPoints: 8, MainRisk: model.CategoryDivorce, SideRisks: []string{model.CategoryManipulation}},
			},
		},
		{
			ID: "communication_quality", Text: "Jak oceniasz Waszą komunikację?",
			Options: []model.QuestionOption{
				{Text: "Bardzo dobra", RiskPoints: 1, MainRisk: model.NoRisk},
				{Text: "Dobra", RiskPoints: 2, MainRisk: model.NoRisk},
				{Text: "Średnia", RiskPoints: 4, MainRisk: model.CategoryDivorce},
				{Text: "Zła", RiskPoints: 7, MainRisk: model.CategoryDivorce, SideRisks: []string{model.CategoryManipulation}},
				{Text: "Bardzo zła", RiskPoints: 9, MainRisk: model.CategoryDivorce, SideRisks: []string{model.CategoryManipulation}},
			},
		},
		{
			ID: "shared_assets", Text: "Czy macie wspólny majątek?",
			Options: []model.QuestionOption{
				{Text: "Rozdzielność majątkowa", MainRisk: model.NoRisk},
				{Text: "Częściowo wspólny", RiskPoints: 2, MainRisk: model.CategoryFinancialLoss},
				{Text: "Wszystko wspólne", RiskPoints: 4, MainRisk: model.CategoryFinancialLoss},
			},
		},
		{
			ID: "support_network", Text: "Czy masz własne grono znajomych i wsparcie?",
			Options: []model.QuestionOption{
				{Text: "Tak, mam wsparcie", MainRisk: model.NoRisk},
				{Text: "Niewielkie", RiskPoints: 3, MainRisk: model.CategoryManipulation},
				{Text: "Nie, jestem odcięty", RiskPoints: 8, MainRisk: model.CategoryManipulation, SideRisks: []string{model.CategoryFinancialLoss}},
			},
		},
	},
}

// FallbackTable returns the built-in table for a pathway. Unknown pathways
// get the before table. The returned questions are shared package data and
// must be treated as read-only.
func FallbackTable(pathway model.Pathway) *model.PathwayTable {
	questions, ok := fallbackQuestions[pathway]
	if !ok {
		questions = fallbackQuestions[model.PathwayBefore]
	}
	return &model.PathwayTable{
		Pathway:   pathway,
		Questions: questions,
		Weights:   model.Weights(questions),
		Source:    model.TableSourceFallback,
		FetchedAt: time.Now(),
	}
}
