package domain

import (
	"regexp"
	"strings"
	"time"
	"unicode"
)

// Field limits for booking submissions.
const (
	MaxNameLength    = 255
	MaxMessageLength = 5000
	MinPhoneDigits   = 7
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9.!#$%&'*+/=?^_` + "`" + `{|}~-]+@[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?(?:\.[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)+$`)

// Submission is the validated input of a booking request. It is never
// mutated after Normalize and Validate have run.
type Submission struct {
	Name          string
	Email         string
	Phone         string
	ServiceType   string
	PreferredDate string
	Message       string
}

// Normalize trims surrounding whitespace from every field and returns the
// cleaned copy. The original value is left untouched.
func (s Submission) Normalize() Submission {
	return Submission{
		Name:          strings.TrimSpace(s.Name),
		Email:         strings.TrimSpace(s.Email),
		Phone:         strings.TrimSpace(s.Phone),
		ServiceType:   strings.TrimSpace(s.ServiceType),
		PreferredDate: strings.TrimSpace(s.PreferredDate),
		Message:       strings.TrimSpace(s.Message),
	}
}

// Validate checks every field and reports all violations at once. The
// preferred date is kept verbatim, it is not parsed as a calendar date.
func (s Submission) Validate() error {
	verr := &ValidationError{}

	if s.Name == "" {
		verr.add("name", "name is required")
	} else if len([]rune(s.Name)) > MaxNameLength {
		verr.add("name", "name must be at most 255 characters")
	}

	if s.Email == "" {
		verr.add("email", "email is required")
	} else if !emailPattern.MatchString(s.Email) {
		verr.add("email", "email must be a valid address")
	}

	if s.Phone == "" {
		verr.add("phone", "phone is required")
	} else if countDigits(s.Phone) < MinPhoneDigits {
		verr.add("phone", "phone must contain at least 7 digits")
	}

	if s.ServiceType == "" {
		verr.add("serviceType", "serviceType is required")
	}

	if s.PreferredDate == "" {
		verr.add("preferredDate", "preferredDate is required")
	}

	if len([]rune(s.Message)) > MaxMessageLength {
		verr.add("message", "message must be at most 5000 characters")
	}

	if len(verr.Fields) > 0 {
		return verr
	}
	return nil
}

func countDigits(s string) int {
	count := 0
	for _, r := range s {
		if unicode.IsDigit(r) {
			count++
		}
	}
	return count
}

// Appointment is a stored booking request: a Submission plus the generated
// identifier and creation timestamp. Rows are immutable after insert.
type Appointment struct {
	ID             string `gorm:"type:uuid;primaryKey"`
	Name           string `gorm:"type:varchar(255);not null"`
	Email          string `gorm:"type:varchar(255);not null"`
	Phone          string `gorm:"type:varchar(50);not null"`
	ServiceType    string `gorm:"type:varchar(255);not null"`
	PreferredDate  string `gorm:"type:varchar(255);not null"`
	ProjectDetails string `gorm:"type:text"`
	CreatedAt      time.Time
}

// NewAppointment builds the stored record for a validated submission.
func NewAppointment(id string, s Submission) Appointment {
	return Appointment{
		ID:             id,
		Name:           s.Name,
		Email:          s.Email,
		Phone:          s.Phone,
		ServiceType:    s.ServiceType,
		PreferredDate:  s.PreferredDate,
		ProjectDetails: s.Message,
	}
}
