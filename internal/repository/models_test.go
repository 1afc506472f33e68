package repository

import (
	"testing"
	"time"

	"github.com/optimusdesign/booking-api/internal/domain"
)

func TestAppointmentModelRoundTrip(t *testing.T) {
	t.Parallel()

	created := time.Date(2025, 12, 1, 9, 30, 0, 0, time.UTC)
	apt := &domain.Appointment{
		ID:             "11111111-2222-3333-4444-555555555555",
		Name:           "John Doe",
		Email:          "john@example.com",
		Phone:          "+1234567890",
		ServiceType:    "Vehicle Wraps",
		PreferredDate:  "2025-12-15",
		ProjectDetails: "wrap please",
		CreatedAt:      created,
	}

	got := appointmentModelToDomain(appointmentModelFromDomain(apt))
	if got == nil {
		t.Fatal("round trip returned nil")
	}
	if *got != *apt {
		t.Fatalf("round trip = %+v, want %+v", *got, *apt)
	}

	if appointmentModelFromDomain(nil) != nil {
		t.Fatal("nil domain should map to nil model")
	}
	if appointmentModelToDomain(nil) != nil {
		t.Fatal("nil model should map to nil domain")
	}
}

func TestFailureModelRoundTrip(t *testing.T) {
	t.Parallel()

	f := &domain.NotifyFailure{
		ID:            "aaaa",
		AppointmentID: "bbbb",
		Recipient:     "operator@example.com",
		Body:          "<html>body</html>",
		Status:        domain.FailureStatusPending,
		AttemptCount:  1,
		Error:         "provider returned status 500",
		CreatedAt:     time.Date(2025, 12, 1, 9, 30, 0, 0, time.UTC),
	}

	got := failureModelToDomain(failureModelFromDomain(f))
	if got == nil {
		t.Fatal("round trip returned nil")
	}
	if *got != *f {
		t.Fatalf("round trip = %+v, want %+v", *got, *f)
	}
}

func TestClampListLimit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		limit int
		want  int
	}{
		{name: "zero falls back to default", limit: 0, want: defaultListLimit},
		{name: "negative falls back to default", limit: -3, want: defaultListLimit},
		{name: "in range kept", limit: 25, want: 25},
		{name: "over max clamped", limit: 500, want: maxListLimit},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := clampListLimit(tt.limit); got != tt.want {
				t.Fatalf("clampListLimit(%d) = %d, want %d", tt.limit, got, tt.want)
			}
		})
	}
}
