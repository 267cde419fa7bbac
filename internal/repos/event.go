package repos

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Emna-borji/tourismrep/internal/logger"
	"github.com/Emna-borji/tourismrep/internal/types"
)

// EventRepo is the read-only view over the append-only interaction logs:
// clicks, favorites, searches and ratings.
type EventRepo interface {
	ClicksByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.ClickEvent, error)
	// RecentClicks returns a bounded, newest-first global sample used for
	// cohort training.
	RecentClicks(ctx context.Context, tx *gorm.DB, limit int) ([]*types.ClickEvent, error)
	FavoritesByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.FavoriteEvent, error)
	SearchesByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID, entityType types.EntityType, since time.Time) ([]*types.SearchEvent, error)
	// AverageRatings returns the mean rating per (entity type, entity id)
	// across all users.
	AverageRatings(ctx context.Context, tx *gorm.DB) (map[types.EntityKey]float64, error)
}

type eventRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewEventRepo(db *gorm.DB, baseLog *logger.Logger) EventRepo {
	repoLog := baseLog.With("repo", "EventRepo")
	return &eventRepo{db: db, log: repoLog}
}

func (r *eventRepo) ClicksByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.ClickEvent, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.ClickEvent
	if userID == uuid.Nil {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Where("user_id = ?", userID).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *eventRepo) RecentClicks(ctx context.Context, tx *gorm.DB, limit int) ([]*types.ClickEvent, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if limit <= 0 {
		return []*types.ClickEvent{}, nil
	}

	var results []*types.ClickEvent
	if err := transaction.WithContext(ctx).
		Order("clicked_at DESC").
		Limit(limit).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *eventRepo) FavoritesByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.FavoriteEvent, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.FavoriteEvent
	if userID == uuid.Nil {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Where("user_id = ?", userID).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *eventRepo) SearchesByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID, entityType types.EntityType, since time.Time) ([]*types.SearchEvent, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.SearchEvent
	if userID == uuid.Nil {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Where("user_id = ? AND entity_type = ? AND searched_at >= ?", userID, entityType, since).
		Order("searched_at DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *eventRepo) AverageRatings(ctx context.Context, tx *gorm.DB) (map[types.EntityKey]float64, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	type ratingRow struct {
		EntityType types.EntityType
		EntityID   uuid.UUID
		AvgRating  float64
	}
	var rows []ratingRow
	if err := transaction.WithContext(ctx).
		Model(&types.Review{}).
		Select("entity_type, entity_id, AVG(rating) AS avg_rating").
		Group("entity_type").
		Group("entity_id").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	out := make(map[types.EntityKey]float64, len(rows))
	for _, row := range rows {
		out[types.EntityKey{Type: row.EntityType, ID: row.EntityID}] = row.AvgRating
	}
	return out, nil
}
