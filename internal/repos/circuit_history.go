package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Emna-borji/tourismrep/internal/logger"
	"github.com/Emna-borji/tourismrep/internal/types"
)

type CircuitHistoryRepo interface {
	GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.CircuitHistory, error)
}

type circuitHistoryRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewCircuitHistoryRepo(db *gorm.DB, baseLog *logger.Logger) CircuitHistoryRepo {
	repoLog := baseLog.With("repo", "CircuitHistoryRepo")
	return &circuitHistoryRepo{db: db, log: repoLog}
}

func (r *circuitHistoryRepo) GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.CircuitHistory, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.CircuitHistory
	if userID == uuid.Nil {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
