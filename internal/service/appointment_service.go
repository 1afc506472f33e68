package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/optimusdesign/booking-api/internal/domain"
	"github.com/optimusdesign/booking-api/internal/notify"
	"github.com/optimusdesign/booking-api/internal/observability"
	"github.com/optimusdesign/booking-api/internal/provider"
	"github.com/optimusdesign/booking-api/internal/repository"
	"go.uber.org/zap"
)

// NotifyConfig carries the delivery settings for operator notifications.
type NotifyConfig struct {
	Sender      string
	Recipient   string
	FallbackLog bool
}

// Outcome is the result of a successful submission. The appointment is
// always stored; Notified reports whether the operator email went out.
type Outcome struct {
	Appointment *domain.Appointment
	Notified    bool
}

// AppointmentService runs the booking pipeline: validate, store, then
// best-effort notify. The store step is the only one that can fail the
// request; once it commits, every later failure is absorbed.
type AppointmentService struct {
	appointments repository.AppointmentRepository
	failures     repository.NotifyFailureRepository
	mailer       provider.EmailSender
	cfg          NotifyConfig
	logger       *zap.Logger
	metrics      *observability.Metrics
	now          func() time.Time
	newID        func() string
}

func NewAppointmentService(
	appointments repository.AppointmentRepository,
	failures repository.NotifyFailureRepository,
	mailer provider.EmailSender,
	cfg NotifyConfig,
	logger *zap.Logger,
) (*AppointmentService, error) {
	if appointments == nil {
		return nil, fmt.Errorf("appointment repository is required")
	}
	if cfg.FallbackLog && failures == nil {
		return nil, fmt.Errorf("notify failure repository is required when fallback logging is enabled")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &AppointmentService{
		appointments: appointments,
		failures:     failures,
		mailer:       mailer,
		cfg:          cfg,
		logger:       logger,
		now:          time.Now,
		newID:        uuid.NewString,
	}, nil
}

func (s *AppointmentService) SetMetrics(metrics *observability.Metrics) {
	if s == nil {
		return
	}
	s.metrics = metrics
}

// Submit validates and stores a booking request, then attempts the operator
// notification. A ValidationError or store error fails the request; a notify
// failure only flips Outcome.Notified and, when enabled, leaves a pending
// fallback entry for manual follow-up.
func (s *AppointmentService) Submit(ctx context.Context, submission domain.Submission) (*Outcome, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	logger := observability.WithContextLogger(s.logger, ctx)

	submission = submission.Normalize()
	if err := submission.Validate(); err != nil {
		return nil, err
	}

	appointment := domain.NewAppointment(s.newID(), submission)
	if err := s.appointments.Create(ctx, &appointment); err != nil {
		return nil, fmt.Errorf("failed to store appointment: %w", err)
	}
	if s.metrics != nil {
		s.metrics.IncAppointmentCreated()
	}
	logger.Info("appointment stored",
		zap.String("appointmentId", appointment.ID),
		zap.String("serviceType", appointment.ServiceType),
	)

	notified := s.sendNotification(ctx, logger, submission, appointment.ID)

	return &Outcome{
		Appointment: &appointment,
		Notified:    notified,
	}, nil
}

// sendNotification is best-effort: it never returns an error to the caller.
func (s *AppointmentService) sendNotification(
	ctx context.Context,
	logger *zap.Logger,
	submission domain.Submission,
	appointmentID string,
) bool {
	if s.mailer == nil {
		logger.Warn("email notifications disabled, skipping",
			zap.String("appointmentId", appointmentID),
		)
		return false
	}

	body, err := notify.RenderBody(submission, appointmentID, s.now().UTC())
	if err != nil {
		logger.Error("failed to render notification body",
			zap.String("appointmentId", appointmentID),
			zap.Error(err),
		)
		s.recordNotifyFailure(ctx, logger, appointmentID, "", err)
		return false
	}

	email := provider.Email{
		From:    s.cfg.Sender,
		To:      s.cfg.Recipient,
		Subject: notify.Subject(submission),
		HTML:    body,
		ReplyTo: submission.Email,
	}

	sendStart := s.now()
	resp, sendErr := s.mailer.Send(ctx, email)
	if s.metrics != nil {
		s.metrics.ObserveNotificationSendDuration(s.now().Sub(sendStart))
	}

	if sendErr != nil {
		reason := "permanent"
		if provider.IsTransient(sendErr) {
			reason = "transient"
		}
		logger.Warn("notification failed, appointment is already stored",
			zap.String("appointmentId", appointmentID),
			zap.String("classification", reason),
			zap.Error(sendErr),
		)
		if s.metrics != nil {
			s.metrics.IncNotificationFailed(reason)
		}
		s.recordNotifyFailure(ctx, logger, appointmentID, body, sendErr)
		return false
	}

	if s.metrics != nil {
		s.metrics.IncNotificationSent()
	}
	messageID := ""
	if resp != nil {
		messageID = resp.MessageID
	}
	logger.Info("notification sent",
		zap.String("appointmentId", appointmentID),
		zap.String("providerMessageId", messageID),
	)
	return true
}

// recordNotifyFailure persists a pending follow-up entry. Its own failure is
// logged and never escalated.
func (s *AppointmentService) recordNotifyFailure(
	ctx context.Context,
	logger *zap.Logger,
	appointmentID string,
	body string,
	cause error,
) {
	if !s.cfg.FallbackLog || s.failures == nil {
		return
	}

	failure := domain.NotifyFailure{
		ID:            s.newID(),
		AppointmentID: appointmentID,
		Recipient:     s.cfg.Recipient,
		Body:          body,
		Status:        domain.FailureStatusPending,
		AttemptCount:  1,
		Error:         domain.TruncateFailureError(cause.Error()),
	}

	if err := s.failures.Create(ctx, &failure); err != nil {
		logger.Error("failed to persist notify failure entry",
			zap.String("appointmentId", appointmentID),
			zap.Error(err),
		)
		return
	}

	if s.metrics != nil {
		s.metrics.IncFallbackLogged()
	}
	logger.Info("notify failure logged for manual follow-up",
		zap.String("appointmentId", appointmentID),
		zap.String("failureId", failure.ID),
	)
}

func (s *AppointmentService) GetByID(ctx context.Context, id string) (*domain.Appointment, error) {
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("%w: appointment id is required", domain.ErrValidation)
	}
	return s.appointments.GetByID(ctx, strings.TrimSpace(id))
}

func (s *AppointmentService) ListRecent(ctx context.Context, limit int) ([]domain.Appointment, error) {
	return s.appointments.ListRecent(ctx, limit)
}

func (s *AppointmentService) ListPendingFailures(ctx context.Context, limit int) ([]domain.NotifyFailure, error) {
	if s.failures == nil {
		return []domain.NotifyFailure{}, nil
	}
	return s.failures.ListPending(ctx, limit)
}
