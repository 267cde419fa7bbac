package services

import (
	"github.com/google/uuid"

	"github.com/Emna-borji/tourismrep/internal/types"
)

const (
	topCircuitBoost    = 10
	bookedCircuitBoost = 5
)

// circuitBoost rewards non-circuit candidates that appear as scheduled
// stops inside top-ranked or previously booked circuits. Boosts are
// additive across qualifying circuits; circuits never boost themselves.
func circuitBoost(typ types.EntityType, id uuid.UUID, topCircuits []uuid.UUID, schedules map[uuid.UUID][]types.CircuitStop, bookedCircuits []uuid.UUID, bookedSchedules map[uuid.UUID][]types.CircuitStop) float64 {
	if typ == types.EntityCircuit {
		return 0
	}

	var boost float64
	for _, circuitID := range topCircuits {
		for _, stop := range schedules[circuitID] {
			if stop.EntityType == typ && stop.EntityID == id {
				boost += topCircuitBoost
			}
		}
	}
	for _, circuitID := range bookedCircuits {
		for _, stop := range bookedSchedules[circuitID] {
			if stop.EntityType == typ && stop.EntityID == id {
				boost += bookedCircuitBoost
			}
		}
	}
	return boost
}
