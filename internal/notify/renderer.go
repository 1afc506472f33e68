// Package notify renders operator notification emails for booking requests.
package notify

import (
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/optimusdesign/booking-api/internal/domain"
)

const noDetailsPlaceholder = "No additional details provided"

// bodyTemplate escapes every user-supplied field on execution, so quote
// characters and markup in submissions never reach the mailbox raw.
var bodyTemplate = template.Must(template.New("booking-email").Parse(`<!DOCTYPE html>
<html>
  <head>
    <style>
      body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
      .container { max-width: 600px; margin: 0 auto; padding: 20px; }
      .header { background: linear-gradient(135deg, #0891b2 0%, #06b6d4 100%); color: white; padding: 30px 20px; text-align: center; border-radius: 8px 8px 0 0; }
      .content { background: #f9fafb; padding: 30px; border-radius: 0 0 8px 8px; }
      .detail { margin: 15px 0; padding: 15px; background: white; border-radius: 6px; box-shadow: 0 1px 3px rgba(0,0,0,0.1); }
      .label { font-weight: bold; color: #0891b2; display: block; margin-bottom: 5px; font-size: 12px; text-transform: uppercase; }
      .value { color: #333; font-size: 16px; }
      .footer { margin-top: 30px; padding-top: 20px; border-top: 2px solid #0891b2; text-align: center; font-size: 12px; color: #666; }
    </style>
  </head>
  <body>
    <div class="container">
      <div class="header">
        <h1>New Appointment Request</h1>
        <p>Optimus Design &amp; Customs</p>
      </div>
      <div class="content">
        <div class="detail">
          <span class="label">Customer Name</span>
          <span class="value">{{.Name}}</span>
        </div>
        <div class="detail">
          <span class="label">Email Address</span>
          <span class="value">{{.Email}}</span>
        </div>
        <div class="detail">
          <span class="label">Phone Number</span>
          <span class="value">{{.Phone}}</span>
        </div>
        <div class="detail">
          <span class="label">Service Type</span>
          <span class="value">{{.ServiceType}}</span>
        </div>
        <div class="detail">
          <span class="label">Preferred Date</span>
          <span class="value">{{.PreferredDate}}</span>
        </div>
        <div class="detail">
          <span class="label">Project Details</span>
          <span class="value">{{.Message}}</span>
        </div>
        <div class="detail">
          <span class="label">Reference</span>
          <span class="value">{{.AppointmentID}}</span>
        </div>
      </div>
      <div class="footer">
        <p><strong>Optimus Design &amp; Customs</strong></p>
        <p>Submitted on {{.SentAt}}</p>
        <p>This is an automated booking notification. Please respond directly to the customer's email address.</p>
      </div>
    </div>
  </body>
</html>
`))

type bodyData struct {
	Name          string
	Email         string
	Phone         string
	ServiceType   string
	PreferredDate string
	Message       string
	AppointmentID string
	SentAt        string
}

// Subject builds the operator-facing subject line for a booking.
func Subject(s domain.Submission) string {
	return fmt.Sprintf("New Booking: %s - %s", s.ServiceType, s.Name)
}

// RenderBody produces the HTML notification body for a stored booking. It is
// a pure function of its inputs; rendering the same submission twice yields
// identical output.
func RenderBody(s domain.Submission, appointmentID string, sentAt time.Time) (string, error) {
	message := s.Message
	if strings.TrimSpace(message) == "" {
		message = noDetailsPlaceholder
	}

	data := bodyData{
		Name:          s.Name,
		Email:         s.Email,
		Phone:         s.Phone,
		ServiceType:   s.ServiceType,
		PreferredDate: s.PreferredDate,
		Message:       message,
		AppointmentID: appointmentID,
		SentAt:        sentAt.UTC().Format("2006-01-02 15:04:05 UTC"),
	}

	var sb strings.Builder
	if err := bodyTemplate.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("failed to render notification body: %w", err)
	}
	return sb.String(), nil
}
