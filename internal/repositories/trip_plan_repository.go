package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	dbm "routeplanner/internal/models/db_models"
)

type TripPlanRepository interface {
	// Create writes the plan with its days and activities in one transaction.
	Create(ctx context.Context, plan *dbm.TripPlan) error
	FindById(ctx context.Context, id uuid.UUID) (*dbm.TripPlan, error)
	FindDetailById(ctx context.Context, id uuid.UUID) (*dbm.TripPlan, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]dbm.TripPlan, error)
	ListLatest(ctx context.Context, limit int) ([]dbm.TripPlan, error)
	DeleteWithDays(ctx context.Context, id uuid.UUID) error
}

type tripPlanRepository struct {
	db *gorm.DB
}

func NewTripPlanRepository(db *gorm.DB) TripPlanRepository {
	return &tripPlanRepository{db: db}
}

func (r *tripPlanRepository) Create(ctx context.Context, plan *dbm.TripPlan) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Omit("Owner").Create(plan).Error
	})
}

func (r *tripPlanRepository) FindById(ctx context.Context, id uuid.UUID) (*dbm.TripPlan, error) {
	var plan dbm.TripPlan
	err := r.db.WithContext(ctx).
		Preload("Owner").
		First(&plan, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &plan, nil
}

func (r *tripPlanRepository) FindDetailById(ctx context.Context, id uuid.UUID) (*dbm.TripPlan, error) {
	var plan dbm.TripPlan
	err := r.db.WithContext(ctx).
		Preload("Owner").
		Preload("Days", func(db *gorm.DB) *gorm.DB {
			return db.Order("day_index ASC")
		}).
		Preload("Days.Activities", orderActivities).
		First(&plan, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &plan, nil
}

// orderActivities sorts scheduled activities by start time and puts unscheduled
// ones (empty start_time) after them, each group in insertion order.
func orderActivities(db *gorm.DB) *gorm.DB {
	return db.Order("NULLIF(start_time, '') ASC NULLS LAST").Order("position ASC")
}

func (r *tripPlanRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]dbm.TripPlan, error) {
	var plans []dbm.TripPlan
	err := r.db.WithContext(ctx).
		Preload("Owner").
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&plans).Error

	if err != nil {
		return nil, err
	}

	return plans, nil
}

func (r *tripPlanRepository) ListLatest(ctx context.Context, limit int) ([]dbm.TripPlan, error) {
	var plans []dbm.TripPlan
	err := r.db.WithContext(ctx).
		Preload("Owner").
		Order("created_at DESC").
		Limit(limit).
		Find(&plans).Error

	if err != nil {
		return nil, err
	}

	return plans, nil
}

func (r *tripPlanRepository) DeleteWithDays(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		days := tx.Model(&dbm.TripDay{}).Select("id").Where("plan_id = ?", id)

		if err := tx.Where("trip_day_id IN (?)", days).Delete(&dbm.TripActivity{}).Error; err != nil {
			return err
		}
		if err := tx.Where("plan_id = ?", id).Delete(&dbm.TripDay{}).Error; err != nil {
			return err
		}
		return tx.Delete(&dbm.TripPlan{}, "id = ?", id).Error
	})
}
