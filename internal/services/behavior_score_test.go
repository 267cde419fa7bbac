package services

import (
	"testing"

	"github.com/google/uuid"

	"github.com/Emna-borji/tourismrep/internal/types"
)

func TestBehaviorScore_PresenceIsFlat(t *testing.T) {
	id := uuid.New()
	sig := newUserSignals(&types.User{ID: uuid.New()}, nil)
	sig.clicked = clickKeySet([]*types.ClickEvent{
		{EntityType: types.EntityHotel, EntityID: id},
		{EntityType: types.EntityHotel, EntityID: id},
		{EntityType: types.EntityHotel, EntityID: id},
	})

	// repeated clicks collapse to one flat +5
	if got := behaviorScore(sig, types.EntityHotel, id); got != 5 {
		t.Fatalf("expected 5, got %v", got)
	}
}

func TestBehaviorScore_ClickAndFavoriteStack(t *testing.T) {
	id := uuid.New()
	sig := newUserSignals(&types.User{ID: uuid.New()}, nil)
	sig.clicked[types.EntityKey{Type: types.EntityMuseum, ID: id}] = struct{}{}
	sig.favorited[types.EntityKey{Type: types.EntityMuseum, ID: id}] = struct{}{}

	if got := behaviorScore(sig, types.EntityMuseum, id); got != 10 {
		t.Fatalf("expected 10, got %v", got)
	}
}

func TestBehaviorScore_BookedCircuit(t *testing.T) {
	circuitID := uuid.New()
	sig := newUserSignals(&types.User{ID: uuid.New()}, nil)
	sig.booked[circuitID] = struct{}{}

	if got := behaviorScore(sig, types.EntityCircuit, circuitID); got != 10 {
		t.Fatalf("expected 10 for booked circuit, got %v", got)
	}

	// the booking bonus never leaks onto other entity types sharing the id
	if got := behaviorScore(sig, types.EntityHotel, circuitID); got != 0 {
		t.Fatalf("expected 0 for non-circuit, got %v", got)
	}
}

func TestBehaviorScore_NoInteractions(t *testing.T) {
	sig := newUserSignals(&types.User{ID: uuid.New()}, nil)
	if got := behaviorScore(sig, types.EntityRestaurant, uuid.New()); got != 0 {
		t.Fatalf("expected 0, got %v", got)
	}
}
