package content

import "riskradar/internal/model"

var baseReadingLists = map[model.Pathway][]model.Book{
	model.PathwayBefore: {
		{Title: "No More Mr. Nice Guy", Author: "Robert Glover", Description: "Jak przestać się dostosowywać i odzyskać męską pewność siebie"},
		{Title: "Attached", Author: "Amir Levine", Description: "Zrozumienie stylów przywiązania i ich wpływu na relacje"},
		{Title: "Męska energia w związku", Author: "David Deida", Description: "Jak utrzymać siłę i autonomię nie tracąc bliskości"},
	},
	model.PathwayCrisis: {
		{Title: "48 praw władzy", Author: "Robert Greene", Description: "Strategiczne myślenie - nie daj się manipulować"},
		{Title: "Prawo rodzinne dla ojców", Author: "Zespół prawników", Description: "Praktyczny przewodnik po prawach ojców w Polsce"},
		{Title: "Emocjonalna inteligencja 2.0", Author: "Travis Bradberry", Description: "Kontrola emocji w sytuacjach kryzysowych"},
		{Title: "Granice w związkach", Author: "Henry Cloud", Description: "Ustalanie i utrzymywanie zdrowych granic"},
	},
	model.PathwayDivorce: {
		{Title: "Rozwód i alimenty - praktyczny poradnik", Author: "Kancelaria prawna", Description: "Kompleksowy przewodnik po procesie rozwodowym w Polsce"},
		{Title: "Ojcowie po rozwodzie", Author: "Eksperci prawa rodzinnego", Description: "Walka o prawa do dzieci i unikanie alienacji"},
		{Title: "Sztuka wojny", Author: "Sun Tzu", Description: "Strategia - zachowaj spokój i myśl długoterminowo"},
		{Title: "Medytacje", Author: "Marek Aureliusz", Description: "Stoicka filozofia - kontroluj tylko to, co możesz"},
		{Title: "Odporność psychiczna", Author: "Monika Górska", Description: "Jak przetrwać najtrudniejsze momenty"},
	},
	model.PathwayMarried: {
		{Title: "5 języków miłości", Author: "Gary Chapman", Description: "Skuteczna komunikacja w długoletnim związku"},
		{Title: "Atomic Habits", Author: "James Clear", Description: "Małe zmiany, wielkie efekty - rozwój osobisty"},
		{Title: "Siła woli", Author: "Kelly McGonigal", Description: "Kontrola impulsów i budowanie dobrych nawyków"},
	},
}

var alienationBook = model.Book{
	Title:       "Alienacja rodzicielska - Poradnik dla ojców",
	Author:      "Eksperci prawa rodzinnego",
	Description: "Jak rozpoznać i przeciwdziałać alienacji - praktyczne strategie",
}

var manipulationBook = model.Book{
	Title:       "W pułapce toksycznego związku",
	Author:      "Shannon Thomas",
	Description: "Rozpoznawanie i wychodzenie z relacji z osobami narcystycznymi",
}

// generateReadingList prepends topic-specific books over the pathway's base
// list when the matching category share is high, then keeps at most five
// entries so the specific books take priority over the base ones.
func generateReadingList(pathway model.Pathway, result model.ScoringResult) []model.Book {
	base, ok := baseReadingLists[pathway]
	if !ok {
		base = baseReadingLists[model.PathwayBefore]
	}
	books := append([]model.Book(nil), base...)

	if result.PercentOf(model.CategoryAlienation) > 40 {
		books = append([]model.Book{alienationBook}, books...)
	}
	if result.PercentOf(model.CategoryManipulation) > 40 {
		books = append([]model.Book{manipulationBook}, books...)
	}

	if len(books) > 5 {
		books = books[:5]
	}
	return books
}
