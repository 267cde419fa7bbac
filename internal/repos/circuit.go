package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Emna-borji/tourismrep/internal/logger"
	"github.com/Emna-borji/tourismrep/internal/types"
)

type CircuitRepo interface {
	// ByEndpoints returns circuits whose departure or arrival city falls in
	// the given destination set, projected into the scoring view.
	ByEndpoints(ctx context.Context, tx *gorm.DB, destinationIDs []uuid.UUID) ([]types.Candidate, error)
	// Schedules resolves the ordered stops of the given circuits. Hotel
	// stops carry the hotel's star rating.
	Schedules(ctx context.Context, tx *gorm.DB, circuitIDs []uuid.UUID) (map[uuid.UUID][]types.CircuitStop, error)
}

type circuitRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewCircuitRepo(db *gorm.DB, baseLog *logger.Logger) CircuitRepo {
	repoLog := baseLog.With("repo", "CircuitRepo")
	return &circuitRepo{db: db, log: repoLog}
}

func (r *circuitRepo) ByEndpoints(ctx context.Context, tx *gorm.DB, destinationIDs []uuid.UUID) ([]types.Candidate, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if len(destinationIDs) == 0 {
		return []types.Candidate{}, nil
	}

	var rows []*types.Circuit
	if err := transaction.WithContext(ctx).
		Preload("DepartureCity").
		Preload("ArrivalCity").
		Where("departure_city_id IN ? OR arrival_city_id IN ?", destinationIDs, destinationIDs).
		Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]types.Candidate, 0, len(rows))
	for _, row := range rows {
		depID := row.DepartureCityID
		arrID := row.ArrivalCityID
		c := types.Candidate{
			Type:            types.EntityCircuit,
			ID:              row.ID,
			Name:            row.Name,
			Description:     row.Description,
			CircuitCode:     row.CircuitCode,
			DepartureCityID: &depID,
			ArrivalCityID:   &arrID,
			Price:           row.Price,
			DurationDays:    row.DurationDays,
		}
		if row.DepartureCity != nil {
			c.DepartureCityName = row.DepartureCity.Name
		}
		if row.ArrivalCity != nil {
			c.ArrivalCityName = row.ArrivalCity.Name
		}
		out = append(out, c)
	}
	return out, nil
}

func (r *circuitRepo) Schedules(ctx context.Context, tx *gorm.DB, circuitIDs []uuid.UUID) (map[uuid.UUID][]types.CircuitStop, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	out := make(map[uuid.UUID][]types.CircuitStop, len(circuitIDs))
	if len(circuitIDs) == 0 {
		return out, nil
	}

	var rows []*types.CircuitSchedule
	if err := transaction.WithContext(ctx).
		Where("circuit_id IN ?", circuitIDs).
		Order("circuit_id, day ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	hotelIDs := make([]uuid.UUID, 0)
	for _, row := range rows {
		if row.EntityType == types.EntityHotel {
			hotelIDs = append(hotelIDs, row.EntityID)
		}
	}
	starsByHotel := make(map[uuid.UUID]int, len(hotelIDs))
	if len(hotelIDs) > 0 {
		var hotels []*types.Hotel
		if err := transaction.WithContext(ctx).
			Select("id", "stars").
			Where("id IN ?", hotelIDs).
			Find(&hotels).Error; err != nil {
			return nil, err
		}
		for _, h := range hotels {
			starsByHotel[h.ID] = h.Stars
		}
	}

	for _, row := range rows {
		stop := types.CircuitStop{
			Day:        row.Day,
			EntityType: row.EntityType,
			EntityID:   row.EntityID,
		}
		if row.EntityType == types.EntityHotel {
			stop.Stars = starsByHotel[row.EntityID]
		}
		out[row.CircuitID] = append(out[row.CircuitID], stop)
	}
	return out, nil
}
