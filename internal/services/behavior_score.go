package services

import (
	"github.com/google/uuid"

	"github.com/Emna-borji/tourismrep/internal/types"
)

// behaviorScore is presence-based, not frequency-based: one click and a
// hundred clicks on the same entity contribute the same flat amount.
func behaviorScore(sig *userSignals, typ types.EntityType, id uuid.UUID) float64 {
	key := types.EntityKey{Type: typ, ID: id}

	var score float64
	if _, ok := sig.clicked[key]; ok {
		score += 5
	}
	if _, ok := sig.favorited[key]; ok {
		score += 5
	}
	if typ == types.EntityCircuit {
		if _, ok := sig.booked[id]; ok {
			score += 10
		}
	}
	return score
}
