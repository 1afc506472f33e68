package repository

import (
	"context"
	"errors"

	"github.com/optimusdesign/booking-api/internal/domain"
	"gorm.io/gorm"
)

const (
	defaultListLimit = 50
	maxListLimit     = 100
)

type AppointmentRepository interface {
	Create(ctx context.Context, a *domain.Appointment) error
	GetByID(ctx context.Context, id string) (*domain.Appointment, error)
	ListRecent(ctx context.Context, limit int) ([]domain.Appointment, error)
}

type GormAppointmentRepo struct {
	db *gorm.DB
}

func NewGormAppointmentRepo(db *gorm.DB) *GormAppointmentRepo {
	return &GormAppointmentRepo{db: db}
}

func (r *GormAppointmentRepo) Create(ctx context.Context, a *domain.Appointment) error {
	model := appointmentModelFromDomain(a)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return err
	}
	if a != nil {
		*a = *appointmentModelToDomain(model)
	}
	return nil
}

func (r *GormAppointmentRepo) GetByID(ctx context.Context, id string) (*domain.Appointment, error) {
	var model AppointmentModel
	err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return appointmentModelToDomain(&model), nil
}

func (r *GormAppointmentRepo) ListRecent(ctx context.Context, limit int) ([]domain.Appointment, error) {
	limit = clampListLimit(limit)

	var models []AppointmentModel
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	appointments := make([]domain.Appointment, 0, len(models))
	for i := range models {
		appointments = append(appointments, *appointmentModelToDomain(&models[i]))
	}

	return appointments, nil
}

func clampListLimit(limit int) int {
	if limit < 1 {
		return defaultListLimit
	}
	if limit > maxListLimit {
		return maxListLimit
	}
	return limit
}
