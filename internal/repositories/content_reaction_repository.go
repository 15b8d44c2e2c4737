package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	dbm "routeplanner/internal/models/db_models"
)

type ContentReactionRepository interface {
	Exists(ctx context.Context, userID uuid.UUID, kind dbm.ReactionKind, targetType string, targetID uuid.UUID) (bool, error)
	// Add is a no-op when the same reaction already exists.
	Add(ctx context.Context, reaction *dbm.ContentReaction) error
	Remove(ctx context.Context, userID uuid.UUID, kind dbm.ReactionKind, targetType string, targetID uuid.UUID) error
	CountByTarget(ctx context.Context, kind dbm.ReactionKind, targetType string, targetID uuid.UUID) (int64, error)
	// CountByTargets omits targets with no reactions from the result.
	CountByTargets(ctx context.Context, kind dbm.ReactionKind, targetType string, targetIDs []uuid.UUID) (map[uuid.UUID]int64, error)
}

type contentReactionRepository struct {
	db *gorm.DB
}

func NewContentReactionRepository(db *gorm.DB) ContentReactionRepository {
	return &contentReactionRepository{db: db}
}

func (r *contentReactionRepository) Exists(ctx context.Context, userID uuid.UUID, kind dbm.ReactionKind, targetType string, targetID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&dbm.ContentReaction{}).
		Where("user_id = ? AND kind = ? AND target_type = ? AND target_id = ?", userID, kind, targetType, targetID).
		Count(&count).Error
	return count > 0, err
}

func (r *contentReactionRepository) Add(ctx context.Context, reaction *dbm.ContentReaction) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(reaction).Error
}

func (r *contentReactionRepository) Remove(ctx context.Context, userID uuid.UUID, kind dbm.ReactionKind, targetType string, targetID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Unscoped().
		Where("user_id = ? AND kind = ? AND target_type = ? AND target_id = ?", userID, kind, targetType, targetID).
		Delete(&dbm.ContentReaction{}).Error
}

func (r *contentReactionRepository) CountByTarget(ctx context.Context, kind dbm.ReactionKind, targetType string, targetID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&dbm.ContentReaction{}).
		Where("kind = ? AND target_type = ? AND target_id = ?", kind, targetType, targetID).
		Count(&count).Error
	return count, err
}

func (r *contentReactionRepository) CountByTargets(ctx context.Context, kind dbm.ReactionKind, targetType string, targetIDs []uuid.UUID) (map[uuid.UUID]int64, error) {
	counts := make(map[uuid.UUID]int64, len(targetIDs))
	if len(targetIDs) == 0 {
		return counts, nil
	}

	var rows []struct {
		TargetID uuid.UUID
		Total    int64
	}
	err := r.db.WithContext(ctx).
		Model(&dbm.ContentReaction{}).
		Select("target_id, COUNT(*) AS total").
		Where("kind = ? AND target_type = ? AND target_id IN ?", kind, targetType, targetIDs).
		Group("target_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		counts[row.TargetID] = row.Total
	}
	return counts, nil
}
