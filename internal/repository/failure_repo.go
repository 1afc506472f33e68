package repository

import (
	"context"

	"github.com/optimusdesign/booking-api/internal/domain"
	"gorm.io/gorm"
)

type NotifyFailureRepository interface {
	Create(ctx context.Context, f *domain.NotifyFailure) error
	ListPending(ctx context.Context, limit int) ([]domain.NotifyFailure, error)
}

type GormNotifyFailureRepo struct {
	db *gorm.DB
}

func NewGormNotifyFailureRepo(db *gorm.DB) *GormNotifyFailureRepo {
	return &GormNotifyFailureRepo{db: db}
}

func (r *GormNotifyFailureRepo) Create(ctx context.Context, f *domain.NotifyFailure) error {
	model := failureModelFromDomain(f)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return err
	}
	if f != nil {
		*f = *failureModelToDomain(model)
	}
	return nil
}

func (r *GormNotifyFailureRepo) ListPending(ctx context.Context, limit int) ([]domain.NotifyFailure, error) {
	limit = clampListLimit(limit)

	var models []NotifyFailureModel
	err := r.db.WithContext(ctx).
		Where("status = ?", domain.FailureStatusPending).
		Order("created_at DESC").
		Limit(limit).
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	failures := make([]domain.NotifyFailure, 0, len(models))
	for i := range models {
		failures = append(failures, *failureModelToDomain(&models[i]))
	}

	return failures, nil
}
