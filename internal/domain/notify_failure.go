package domain

import (
	"fmt"
	"strings"
	"time"
)

// FailureStatus represents the follow-up state of a failed notification.
type FailureStatus string

const (
	// FailureStatusPending means the entry awaits manual handling. There is
	// no automated retry, pending is the terminal state.
	FailureStatusPending FailureStatus = "PENDING"
)

func (s FailureStatus) String() string { return string(s) }

func (s FailureStatus) IsValid() bool {
	return s == FailureStatusPending
}

func ParseFailureStatusFromString(s string) (FailureStatus, error) {
	st := FailureStatus(strings.ToUpper(strings.TrimSpace(s)))
	if !st.IsValid() {
		return "", fmt.Errorf("%w: invalid failure status %q", ErrValidation, s)
	}
	return st, nil
}

// MaxFailureErrorLength bounds the stored provider error text.
const MaxFailureErrorLength = 500

// NotifyFailure records a notification that could not be delivered for an
// appointment that was stored successfully.
type NotifyFailure struct {
	ID            string        `gorm:"type:uuid;primaryKey"`
	AppointmentID string        `gorm:"type:uuid;not null"`
	Recipient     string        `gorm:"type:varchar(255);not null"`
	Body          string        `gorm:"type:text;not null"`
	Status        FailureStatus `gorm:"type:varchar(20);not null"`
	AttemptCount  int           `gorm:"not null;default:1"`
	Error         string        `gorm:"type:text"`
	CreatedAt     time.Time
}

// TruncateFailureError bounds provider error text before persistence.
func TruncateFailureError(msg string) string {
	runes := []rune(msg)
	if len(runes) <= MaxFailureErrorLength {
		return msg
	}
	return string(runes[:MaxFailureErrorLength])
}
