// Package notification delivers booking confirmation email through the
// Resend HTTP API, with an in-memory mock for tests and local development.
package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/blassbarberia/salon-api/internal/booking"
)

// ---------------------------------------------------------------------------
// Sender Interface
// ---------------------------------------------------------------------------

// EmailSender is the interface for sending email messages.
type EmailSender interface {
	SendEmail(ctx context.Context, to, subject, body string) error
}

// ---------------------------------------------------------------------------
// Resend Sender
// ---------------------------------------------------------------------------

const defaultResendBaseURL = "https://api.resend.com"

// ResendSender sends email through the Resend REST API.
type ResendSender struct {
	APIKey  string
	From    string
	ReplyTo string
	BaseURL string
	Client  *http.Client
}

// NewResendSender returns a sender with a 10s request timeout.
func NewResendSender(apiKey, from, replyTo string) *ResendSender {
	return &ResendSender{
		APIKey:  apiKey,
		From:    from,
		ReplyTo: replyTo,
		BaseURL: defaultResendBaseURL,
		Client:  &http.Client{Timeout: 10 * time.Second},
	}
}

type resendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	Text    string   `json:"text"`
	ReplyTo string   `json:"reply_to,omitempty"`
}

// SendEmail posts a plain-text message to the Resend /emails endpoint.
func (s *ResendSender) SendEmail(ctx context.Context, to, subject, body string) error {
	payload, err := json.Marshal(resendRequest{
		From:    s.From,
		To:      []string{to},
		Subject: subject,
		Text:    body,
		ReplyTo: s.ReplyTo,
	})
	if err != nil {
		return err
	}

	base := s.BaseURL
	if base == "" {
		base = defaultResendBaseURL
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, base+"/emails", bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+s.APIKey)
	req.Header.Set("Content-Type", "application/json")

	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("resend: status %d: %s", resp.StatusCode, detail)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Mock Sender (test double)
// ---------------------------------------------------------------------------

// EmailCall records a single call to SendEmail.
type EmailCall struct {
	To      string
	Subject string
	Body    string
}

// MockEmailSender is a test double for EmailSender.
type MockEmailSender struct {
	mu         sync.Mutex
	calls      []EmailCall
	ShouldFail bool
	FailError  string
}

// SendEmail records the call and optionally returns an error.
func (m *MockEmailSender) SendEmail(_ context.Context, to, subject, body string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, EmailCall{To: to, Subject: subject, Body: body})
	if m.ShouldFail {
		return errors.New(m.FailError)
	}
	return nil
}

// Calls returns a copy of recorded email calls.
func (m *MockEmailSender) Calls() []EmailCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]EmailCall, len(m.calls))
	copy(out, m.calls)
	return out
}

// ---------------------------------------------------------------------------
// Confirmation Mailer
// ---------------------------------------------------------------------------

// DeliveryStatus marks the fate of one confirmation attempt.
type DeliveryStatus string

const (
	DeliverySent   DeliveryStatus = "sent"
	DeliveryFailed DeliveryStatus = "failed"
)

// Delivery is a record of one confirmation email attempt.
type Delivery struct {
	ID            string         `json:"id"`
	AppointmentID int64          `json:"appointment_id"`
	To            string         `json:"to"`
	Status        DeliveryStatus `json:"status"`
	Error         string         `json:"error,omitempty"`
	At            time.Time      `json:"at"`
}

// Mailer composes booking confirmation email and keeps an in-memory
// delivery log. It implements booking.ConfirmationMailer.
type Mailer struct {
	sender  EmailSender
	salon   booking.SalonInfo
	baseURL string
	log     zerolog.Logger

	mu         sync.Mutex
	deliveries []Delivery
}

// NewMailer constructs a Mailer. baseURL is the public address of this API,
// used to build the calendar download link in the message body.
func NewMailer(sender EmailSender, salon booking.SalonInfo, baseURL string, log zerolog.Logger) *Mailer {
	return &Mailer{sender: sender, salon: salon, baseURL: baseURL, log: log}
}

// SendBookingConfirmation composes and sends the confirmation message for a
// freshly booked appointment.
func (m *Mailer) SendBookingConfirmation(ctx context.Context, a *booking.Appointment) error {
	subject := fmt.Sprintf("Your appointment at %s", m.salon.Name)
	body := fmt.Sprintf(
		"Hi %s,\n\n"+
			"Your appointment is booked.\n\n"+
			"Stylist: %s\nService: %s\nWhen: %s\n\n"+
			"%s\n%s\n\n"+
			"Add it to your calendar: %s/api/v1/appointments/%d/calendar\n",
		a.ClientName,
		a.Stylist, a.Service, a.ScheduledAt.Format("Monday 02 Jan 2006, 15:04"),
		m.salon.Address, m.salon.Phone,
		m.baseURL, a.ID,
	)

	err := m.sender.SendEmail(ctx, a.ClientEmail, subject, body)

	d := Delivery{
		ID:            uuid.New().String(),
		AppointmentID: a.ID,
		To:            a.ClientEmail,
		Status:        DeliverySent,
		At:            time.Now().UTC(),
	}
	if err != nil {
		d.Status = DeliveryFailed
		d.Error = err.Error()
		m.log.Warn().Err(err).Int64("appointment_id", a.ID).Msg("confirmation email delivery failed")
	}

	m.mu.Lock()
	m.deliveries = append(m.deliveries, d)
	m.mu.Unlock()

	return err
}

// Deliveries returns a copy of the delivery log.
func (m *Mailer) Deliveries() []Delivery {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Delivery, len(m.deliveries))
	copy(out, m.deliveries)
	return out
}
