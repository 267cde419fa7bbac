package repos

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Emna-borji/tourismrep/internal/logger"
	"github.com/Emna-borji/tourismrep/internal/types"
)

// ErrUnknownEntityType is returned for entity type tags outside the
// registered set.
var ErrUnknownEntityType = errors.New("unknown entity type")

// CatalogRepo serves destination-filtered candidate pools for the
// non-circuit entity variants. Each variant registers a loader that
// projects its rows into the normalized scoring view, so adding a variant
// means registering one more loader.
type CatalogRepo interface {
	CandidatesByDestination(ctx context.Context, tx *gorm.DB, entityType types.EntityType, destinationIDs []uuid.UUID) ([]types.Candidate, error)
}

type candidateLoader func(ctx context.Context, tx *gorm.DB, destinationIDs []uuid.UUID) ([]types.Candidate, error)

type catalogRepo struct {
	db      *gorm.DB
	log     *logger.Logger
	loaders map[types.EntityType]candidateLoader
}

func NewCatalogRepo(db *gorm.DB, baseLog *logger.Logger) CatalogRepo {
	repoLog := baseLog.With("repo", "CatalogRepo")
	r := &catalogRepo{db: db, log: repoLog}
	r.loaders = map[types.EntityType]candidateLoader{
		types.EntityHotel:              r.hotels,
		types.EntityGuestHouse:         r.guestHouses,
		types.EntityRestaurant:         r.restaurants,
		types.EntityActivity:           r.activities,
		types.EntityMuseum:             r.museums,
		types.EntityFestival:           r.festivals,
		types.EntityArchaeologicalSite: r.archaeologicalSites,
	}
	return r
}

func (r *catalogRepo) CandidatesByDestination(ctx context.Context, tx *gorm.DB, entityType types.EntityType, destinationIDs []uuid.UUID) ([]types.Candidate, error) {
	loader, ok := r.loaders[entityType]
	if !ok {
		return nil, ErrUnknownEntityType
	}
	if len(destinationIDs) == 0 {
		return []types.Candidate{}, nil
	}
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	return loader(ctx, transaction, destinationIDs)
}

func (r *catalogRepo) hotels(ctx context.Context, tx *gorm.DB, destinationIDs []uuid.UUID) ([]types.Candidate, error) {
	var rows []*types.Hotel
	if err := tx.WithContext(ctx).
		Preload("Destination").
		Where("destination_id IN ?", destinationIDs).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]types.Candidate, 0, len(rows))
	for _, h := range rows {
		c := placeCandidate(types.EntityHotel, h.ID, h.Name, h.Description, h.DestinationID, h.Destination, h.Price)
		c.Stars = h.Stars
		out = append(out, c)
	}
	return out, nil
}

func (r *catalogRepo) guestHouses(ctx context.Context, tx *gorm.DB, destinationIDs []uuid.UUID) ([]types.Candidate, error) {
	var rows []*types.GuestHouse
	if err := tx.WithContext(ctx).
		Preload("Destination").
		Where("destination_id IN ?", destinationIDs).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]types.Candidate, 0, len(rows))
	for _, g := range rows {
		out = append(out, placeCandidate(types.EntityGuestHouse, g.ID, g.Name, g.Description, g.DestinationID, g.Destination, g.Price))
	}
	return out, nil
}

func (r *catalogRepo) restaurants(ctx context.Context, tx *gorm.DB, destinationIDs []uuid.UUID) ([]types.Candidate, error) {
	var rows []*types.Restaurant
	if err := tx.WithContext(ctx).
		Preload("Destination").
		Where("destination_id IN ?", destinationIDs).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]types.Candidate, 0, len(rows))
	for _, rest := range rows {
		c := placeCandidate(types.EntityRestaurant, rest.ID, rest.Name, rest.Description, rest.DestinationID, rest.Destination, rest.Price)
		c.Forks = rest.Forks
		c.CuisineID = rest.CuisineID
		out = append(out, c)
	}
	return out, nil
}

func (r *catalogRepo) activities(ctx context.Context, tx *gorm.DB, destinationIDs []uuid.UUID) ([]types.Candidate, error) {
	var rows []*types.Activity
	if err := tx.WithContext(ctx).
		Preload("Destination").
		Where("destination_id IN ?", destinationIDs).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]types.Candidate, 0, len(rows))
	for _, a := range rows {
		c := placeCandidate(types.EntityActivity, a.ID, a.Name, a.Description, a.DestinationID, a.Destination, a.Price)
		c.CategoryID = a.CategoryID
		out = append(out, c)
	}
	return out, nil
}

func (r *catalogRepo) museums(ctx context.Context, tx *gorm.DB, destinationIDs []uuid.UUID) ([]types.Candidate, error) {
	var rows []*types.Museum
	if err := tx.WithContext(ctx).
		Preload("Destination").
		Where("destination_id IN ?", destinationIDs).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]types.Candidate, 0, len(rows))
	for _, m := range rows {
		out = append(out, placeCandidate(types.EntityMuseum, m.ID, m.Name, m.Description, m.DestinationID, m.Destination, m.Price))
	}
	return out, nil
}

func (r *catalogRepo) festivals(ctx context.Context, tx *gorm.DB, destinationIDs []uuid.UUID) ([]types.Candidate, error) {
	var rows []*types.Festival
	if err := tx.WithContext(ctx).
		Preload("Destination").
		Where("destination_id IN ?", destinationIDs).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]types.Candidate, 0, len(rows))
	for _, f := range rows {
		c := placeCandidate(types.EntityFestival, f.ID, f.Name, f.Description, f.DestinationID, f.Destination, f.Price)
		c.Date = f.Date
		out = append(out, c)
	}
	return out, nil
}

func (r *catalogRepo) archaeologicalSites(ctx context.Context, tx *gorm.DB, destinationIDs []uuid.UUID) ([]types.Candidate, error) {
	var rows []*types.ArchaeologicalSite
	if err := tx.WithContext(ctx).
		Preload("Destination").
		Where("destination_id IN ?", destinationIDs).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]types.Candidate, 0, len(rows))
	for _, s := range rows {
		out = append(out, placeCandidate(types.EntityArchaeologicalSite, s.ID, s.Name, s.Description, s.DestinationID, s.Destination, s.Price))
	}
	return out, nil
}

func placeCandidate(typ types.EntityType, id uuid.UUID, name, description string, destinationID uuid.UUID, destination *types.Destination, price *float64) types.Candidate {
	destID := destinationID
	c := types.Candidate{
		Type:          typ,
		ID:            id,
		Name:          name,
		Description:   description,
		DestinationID: &destID,
		Price:         price,
	}
	if destination != nil {
		c.DestinationName = destination.Name
	}
	return c
}
