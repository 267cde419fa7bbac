package services

import (
	"testing"

	"github.com/google/uuid"

	"github.com/Emna-borji/tourismrep/internal/types"
)

func TestCircuitBoost_TopAndBookedStack(t *testing.T) {
	restaurantID := uuid.New()
	topCircuit := uuid.New()
	bookedCircuit := uuid.New()

	schedules := map[uuid.UUID][]types.CircuitStop{
		topCircuit: {
			{Day: 1, EntityType: types.EntityRestaurant, EntityID: restaurantID},
		},
	}
	bookedSchedules := map[uuid.UUID][]types.CircuitStop{
		bookedCircuit: {
			{Day: 2, EntityType: types.EntityRestaurant, EntityID: restaurantID},
		},
	}

	got := circuitBoost(types.EntityRestaurant, restaurantID,
		[]uuid.UUID{topCircuit}, schedules,
		[]uuid.UUID{bookedCircuit}, bookedSchedules)
	if got != 15 {
		t.Fatalf("expected 10+5=15, got %v", got)
	}
}

func TestCircuitBoost_PerAppearance(t *testing.T) {
	hotelID := uuid.New()
	c1 := uuid.New()
	c2 := uuid.New()

	schedules := map[uuid.UUID][]types.CircuitStop{
		c1: {{Day: 1, EntityType: types.EntityHotel, EntityID: hotelID}},
		c2: {
			{Day: 1, EntityType: types.EntityHotel, EntityID: hotelID},
			{Day: 3, EntityType: types.EntityHotel, EntityID: hotelID},
		},
	}

	got := circuitBoost(types.EntityHotel, hotelID, []uuid.UUID{c1, c2}, schedules, nil, nil)
	if got != 30 {
		t.Fatalf("expected 3 appearances * 10 = 30, got %v", got)
	}
}

func TestCircuitBoost_CircuitsNeverBoosted(t *testing.T) {
	id := uuid.New()
	schedules := map[uuid.UUID][]types.CircuitStop{
		id: {{Day: 1, EntityType: types.EntityCircuit, EntityID: id}},
	}
	if got := circuitBoost(types.EntityCircuit, id, []uuid.UUID{id}, schedules, nil, nil); got != 0 {
		t.Fatalf("expected 0 for circuits, got %v", got)
	}
}

func TestCircuitBoost_TypeAndIDMustBothMatch(t *testing.T) {
	id := uuid.New()
	topCircuit := uuid.New()
	schedules := map[uuid.UUID][]types.CircuitStop{
		topCircuit: {{Day: 1, EntityType: types.EntityMuseum, EntityID: id}},
	}
	if got := circuitBoost(types.EntityHotel, id, []uuid.UUID{topCircuit}, schedules, nil, nil); got != 0 {
		t.Fatalf("expected 0 on type mismatch, got %v", got)
	}
}
