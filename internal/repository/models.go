package repository

import (
	"time"

	"github.com/optimusdesign/booking-api/internal/domain"
)

// AppointmentModel is the persistence model for the appointments table.
type AppointmentModel struct {
	ID             string `gorm:"type:uuid;primaryKey"`
	Name           string `gorm:"type:varchar(255);not null"`
	Email          string `gorm:"type:varchar(255);not null"`
	Phone          string `gorm:"type:varchar(50);not null"`
	ServiceType    string `gorm:"type:varchar(255);not null"`
	PreferredDate  string `gorm:"type:varchar(255);not null"`
	ProjectDetails string `gorm:"type:text"`
	CreatedAt      time.Time
}

func (AppointmentModel) TableName() string {
	return "appointments"
}

// NotifyFailureModel is the persistence model for notify_failures.
type NotifyFailureModel struct {
	ID            string               `gorm:"type:uuid;primaryKey"`
	AppointmentID string               `gorm:"type:uuid;not null"`
	Recipient     string               `gorm:"type:varchar(255);not null"`
	Body          string               `gorm:"type:text;not null"`
	Status        domain.FailureStatus `gorm:"type:varchar(20);not null"`
	AttemptCount  int                  `gorm:"not null;default:1"`
	Error         string               `gorm:"type:text"`
	CreatedAt     time.Time
}

func (NotifyFailureModel) TableName() string {
	return "notify_failures"
}

func appointmentModelFromDomain(a *domain.Appointment) *AppointmentModel {
	if a == nil {
		return nil
	}

	return &AppointmentModel{
		ID:             a.ID,
		Name:           a.Name,
		Email:          a.Email,
		Phone:          a.Phone,
		ServiceType:    a.ServiceType,
		PreferredDate:  a.PreferredDate,
		ProjectDetails: a.ProjectDetails,
		CreatedAt:      a.CreatedAt,
	}
}

func appointmentModelToDomain(m *AppointmentModel) *domain.Appointment {
	if m == nil {
		return nil
	}

	return &domain.Appointment{
		ID:             m.ID,
		Name:           m.Name,
		Email:          m.Email,
		Phone:          m.Phone,
		ServiceType:    m.ServiceType,
		PreferredDate:  m.PreferredDate,
		ProjectDetails: m.ProjectDetails,
		CreatedAt:      m.CreatedAt,
	}
}

func failureModelFromDomain(f *domain.NotifyFailure) *NotifyFailureModel {
	if f == nil {
		return nil
	}

	return &NotifyFailureModel{
		ID:            f.ID,
		AppointmentID: f.AppointmentID,
		Recipient:     f.Recipient,
		Body:          f.Body,
		Status:        f.Status,
		AttemptCount:  f.AttemptCount,
		Error:         f.Error,
		CreatedAt:     f.CreatedAt,
	}
}

func failureModelToDomain(m *NotifyFailureModel) *domain.NotifyFailure {
	if m == nil {
		return nil
	}

	return &domain.NotifyFailure{
		ID:            m.ID,
		AppointmentID: m.AppointmentID,
		Recipient:     m.Recipient,
		Body:          m.Body,
		Status:        m.Status,
		AttemptCount:  m.AttemptCount,
		Error:         m.Error,
		CreatedAt:     m.CreatedAt,
	}
}
