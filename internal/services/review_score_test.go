package services

import (
	"testing"

	"github.com/google/uuid"

	"github.com/Emna-borji/tourismrep/internal/types"
)

func TestReviewScore_UnratedGetsNeutralDefault(t *testing.T) {
	sig := newUserSignals(&types.User{ID: uuid.New()}, nil)
	if got := reviewScore(sig, types.EntityHotel, uuid.New()); got != 6 {
		t.Fatalf("expected neutral 3*2=6, got %v", got)
	}
}

func TestReviewScore_DoublesAverage(t *testing.T) {
	id := uuid.New()
	sig := newUserSignals(&types.User{ID: uuid.New()}, nil)
	sig.ratings[types.EntityKey{Type: types.EntityRestaurant, ID: id}] = 4.5

	if got := reviewScore(sig, types.EntityRestaurant, id); got != 9 {
		t.Fatalf("expected 9, got %v", got)
	}
}

func TestReviewScore_PoorRatingScoresBelowNeutral(t *testing.T) {
	id := uuid.New()
	sig := newUserSignals(&types.User{ID: uuid.New()}, nil)
	sig.ratings[types.EntityKey{Type: types.EntityMuseum, ID: id}] = 1

	if got := reviewScore(sig, types.EntityMuseum, id); got != 2 {
		t.Fatalf("expected 2, got %v", got)
	}
}
