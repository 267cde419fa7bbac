package services

import (
	"strings"

	"github.com/Emna-borji/tourismrep/internal/types"
)

const searchMatchScore = 5

// searchScore flags candidates whose text matches the user's recent
// searches of the same entity type. Circuits match on name and
// description, everything else on name only. With no recent searches of
// the type, no match is attempted.
func searchScore(sig *userSignals, c types.Candidate) float64 {
	tokens := sig.searchTerms[c.Type]
	if len(tokens) == 0 {
		return 0
	}

	haystack := strings.ToLower(c.Name)
	if c.Type == types.EntityCircuit {
		haystack += " " + strings.ToLower(c.Description)
	}

	for _, token := range tokens {
		if strings.Contains(haystack, token) {
			return searchMatchScore
		}
	}
	return 0
}
