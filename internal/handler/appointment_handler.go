package handler

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/optimusdesign/booking-api/internal/domain"
	"github.com/optimusdesign/booking-api/internal/observability"
	"github.com/optimusdesign/booking-api/internal/service"
)

const (
	defaultListLimit = 50
	maxListLimit     = 100
)

type AppointmentService interface {
	Submit(ctx context.Context, submission domain.Submission) (*service.Outcome, error)
	GetByID(ctx context.Context, id string) (*domain.Appointment, error)
	ListRecent(ctx context.Context, limit int) ([]domain.Appointment, error)
	ListPendingFailures(ctx context.Context, limit int) ([]domain.NotifyFailure, error)
}

type AppointmentHandler struct {
	service AppointmentService
}

func NewAppointmentHandler(service AppointmentService) (*AppointmentHandler, error) {
	if service == nil {
		return nil, fmt.Errorf("appointment service is required")
	}
	return &AppointmentHandler{service: service}, nil
}

func RegisterAppointmentRoutes(router fiber.Router, service AppointmentService, submitMiddleware ...fiber.Handler) error {
	h, err := NewAppointmentHandler(service)
	if err != nil {
		return err
	}

	api := router.Group("/api")
	submitHandlers := append(append([]fiber.Handler{}, submitMiddleware...), h.SubmitAppointment)
	api.Post("/appointments", submitHandlers...)
	api.Get("/appointments", h.ListAppointments)
	api.Get("/appointments/:id", h.GetAppointment)
	api.Get("/notify-failures", h.ListNotifyFailures)

	return nil
}

type submitAppointmentRequest struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	ServiceType   string `json:"serviceType"`
	PreferredDate string `json:"preferredDate"`
	Message       string `json:"message"`
}

type submitAppointmentResponse struct {
	Status        string `json:"status"`
	Message       string `json:"message"`
	AppointmentID string `json:"appointment_id"`
	Notified      bool   `json:"notified"`
}

type appointmentResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	ServiceType   string    `json:"serviceType"`
	PreferredDate string    `json:"preferredDate"`
	Message       string    `json:"message"`
	CreatedAt     time.Time `json:"createdAt"`
}

type notifyFailureResponse struct {
	ID            string    `json:"id"`
	AppointmentID string    `json:"appointmentId"`
	Recipient     string    `json:"recipient"`
	Status        string    `json:"status"`
	AttemptCount  int       `json:"attemptCount"`
	Error         string    `json:"error"`
	CreatedAt     time.Time `json:"createdAt"`
}

type listResponse[T any] struct {
	Data []T      `json:"data"`
	Meta listMeta `json:"meta"`
}

type listMeta struct {
	Limit int `json:"limit"`
	Count int `json:"count"`
}

func (h *AppointmentHandler) SubmitAppointment(c *fiber.Ctx) error {
	var req submitAppointmentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	submission := domain.Submission{
		Name:          req.Name,
		Email:         req.Email,
		Phone:         req.Phone,
		ServiceType:   req.ServiceType,
		PreferredDate: req.PreferredDate,
		Message:       req.Message,
	}

	ctx := observability.WithRequestID(c.Context(), requestID(c))
	outcome, err := h.service.Submit(ctx, submission)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(submitAppointmentResponse{
		Status:        "success",
		Message:       "Your appointment request has been received. We'll contact you shortly!",
		AppointmentID: outcome.Appointment.ID,
		Notified:      outcome.Notified,
	})
}

func (h *AppointmentHandler) GetAppointment(c *fiber.Ctx) error {
	id := strings.TrimSpace(c.Params("id"))
	appointment, err := h.service.GetByID(c.Context(), id)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(toAppointmentResponse(appointment))
}

func (h *AppointmentHandler) ListAppointments(c *fiber.Ctx) error {
	limit, err := parseLimit(c)
	if err != nil {
		return err
	}

	appointments, err := h.service.ListRecent(c.Context(), limit)
	if err != nil {
		return err
	}

	data := make([]appointmentResponse, 0, len(appointments))
	for i := range appointments {
		data = append(data, toAppointmentResponse(&appointments[i]))
	}

	return c.Status(fiber.StatusOK).JSON(listResponse[appointmentResponse]{
		Data: data,
		Meta: listMeta{Limit: limit, Count: len(data)},
	})
}

func (h *AppointmentHandler) ListNotifyFailures(c *fiber.Ctx) error {
	limit, err := parseLimit(c)
	if err != nil {
		return err
	}

	failures, err := h.service.ListPendingFailures(c.Context(), limit)
	if err != nil {
		return err
	}

	data := make([]notifyFailureResponse, 0, len(failures))
	for i := range failures {
		data = append(data, toNotifyFailureResponse(&failures[i]))
	}

	return c.Status(fiber.StatusOK).JSON(listResponse[notifyFailureResponse]{
		Data: data,
		Meta: listMeta{Limit: limit, Count: len(data)},
	})
}

func parseLimit(c *fiber.Ctx) (int, error) {
	limit := c.QueryInt("limit", defaultListLimit)
	if limit < 1 || limit > maxListLimit {
		return 0, fmt.Errorf("%w: limit must be between 1 and %d", domain.ErrValidation, maxListLimit)
	}
	return limit, nil
}

func requestID(c *fiber.Ctx) string {
	if value := strings.TrimSpace(c.Get(fiber.HeaderXRequestID)); value != "" {
		return value
	}
	if value, ok := c.Locals("requestid").(string); ok && strings.TrimSpace(value) != "" {
		return strings.TrimSpace(value)
	}
	return uuid.NewString()
}

func toAppointmentResponse(a *domain.Appointment) appointmentResponse {
	if a == nil {
		return appointmentResponse{}
	}

	return appointmentResponse{
		ID:            a.ID,
		Name:          a.Name,
		Email:         a.Email,
		Phone:         a.Phone,
		ServiceType:   a.ServiceType,
		PreferredDate: a.PreferredDate,
		Message:       a.ProjectDetails,
		CreatedAt:     a.CreatedAt,
	}
}

func toNotifyFailureResponse(f *domain.NotifyFailure) notifyFailureResponse {
	if f == nil {
		return notifyFailureResponse{}
	}

	return notifyFailureResponse{
		ID:            f.ID,
		AppointmentID: f.AppointmentID,
		Recipient:     f.Recipient,
		Status:        f.Status.String(),
		AttemptCount:  f.AttemptCount,
		Error:         f.Error,
		CreatedAt:     f.CreatedAt,
	}
}
