package services

import (
	"github.com/google/uuid"

	"github.com/Emna-borji/tourismrep/internal/types"
)

// neutralRating stands in for entities nobody has rated yet: absence of
// data is not poor quality.
const neutralRating = 3.0

func reviewScore(sig *userSignals, typ types.EntityType, id uuid.UUID) float64 {
	avg, ok := sig.ratings[types.EntityKey{Type: typ, ID: id}]
	if !ok {
		avg = neutralRating
	}
	return avg * 2
}
