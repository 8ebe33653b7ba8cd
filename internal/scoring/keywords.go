package scoring

// keywordRule pairs question-identifier fragments with answer keywords. A
// rule fires when any answered question whose lowercased id contains one of
// the fragments has an answer whose lowercased text contains one of the
// keywords.
//
// The tables are data, not logic: keyword sets are locale-specific
// (Polish/English mixed) and are expected to be swapped per locale without
// touching the matcher.
type keywordRule struct {
	questionFragments []string
	answerKeywords    []string
}

var (
	ruleHasKids          = keywordRule{[]string{"has_kids", "kids", "children"}, []string{"tak", "yes"}}
	ruleKidsConflict     = keywordRule{[]string{"kids_relationship", "contact_kids"}, []string{"konflikt", "trudny", "niemożliwy"}}
	ruleFinancialControl = keywordRule{[]string{"financial", "money", "control"}, []string{"kontroluje", "brak dostępu", "całkowita"}}
	ruleSharedAssets     = keywordRule{[]string{"assets", "property", "majątek"}, []string{"wspólny", "shared"}}
	rulePoorComms        = keywordRule{[]string{"communication", "talk", "rozmowy"}, []string{"zła", "brak", "trudna", "niemożliwa"}}
	ruleManipulation     = keywordRule{[]string{"manipulation", "control", "gaslighting"}, []string{"tak", "często", "czasami"}}
	ruleEmotionalAbuse   = keywordRule{[]string{"abuse", "emotional", "verbal"}, []string{"tak", "często"}}
	ruleFearLevel        = keywordRule{[]string{"fear", "afraid", "strach"}, []string{"wysoki", "bardzo", "tak"}}
	ruleHasSupport       = keywordRule{[]string{"support", "friends", "family", "wsparcie"}, []string{"tak", "mam"}}
	ruleIsolated         = keywordRule{[]string{"friends", "isolated", "izolacja"}, []string{"nie", "brak", "odcięty"}}
)
