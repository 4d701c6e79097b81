package booking

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/blassbarberia/salon-api/internal/availability"
	"github.com/blassbarberia/salon-api/internal/catalog"
	"github.com/blassbarberia/salon-api/internal/ics"
)

// ConfirmationMailer delivers a booking confirmation. Implementations must
// tolerate concurrent calls.
type ConfirmationMailer interface {
	SendBookingConfirmation(ctx context.Context, a *Appointment) error
}

// EmailOutcome reports what happened to the confirmation email for a
// booking. Delivery failure never fails the booking itself.
type EmailOutcome int

const (
	EmailNotRequested EmailOutcome = iota
	EmailSent
	EmailFailed
)

// Service implements the booking operations on top of a Repository.
type Service struct {
	repo    Repository
	catalog catalog.Catalog
	mailer  ConfirmationMailer
	salon   SalonInfo
	log     zerolog.Logger
	now     func() time.Time
}

// NewService wires a booking service. mailer may be nil when confirmation
// email is disabled.
func NewService(repo Repository, cat catalog.Catalog, mailer ConfirmationMailer, salon SalonInfo, log zerolog.Logger) *Service {
	return &Service{
		repo:    repo,
		catalog: cat,
		mailer:  mailer,
		salon:   salon,
		log:     log,
		now:     time.Now,
	}
}

// CreateRequest is the booking input as received over the wire.
type CreateRequest struct {
	ClientName      string `json:"client_name"`
	ClientEmail     string `json:"client_email"`
	ClientPhone     string `json:"client_phone"`
	Stylist         string `json:"stylist"`
	Service         string `json:"service"`
	ScheduledAt     string `json:"scheduled_at"`
	DurationMinutes int    `json:"duration_minutes"`
	Notes           string `json:"notes"`
}

// Create validates and persists a booking, then attempts the confirmation
// email when one was requested.
func (s *Service) Create(ctx context.Context, req CreateRequest) (*Appointment, EmailOutcome, error) {
	required := []struct {
		field, value string
	}{
		{"client_name", req.ClientName},
		{"stylist", req.Stylist},
		{"service", req.Service},
		{"scheduled_at", req.ScheduledAt},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return nil, EmailNotRequested, &ValidationError{Field: f.field, Reason: "required"}
		}
	}

	scheduledAt, err := ParseScheduleTime(req.ScheduledAt)
	if err != nil {
		return nil, EmailNotRequested, &ValidationError{Field: "scheduled_at", Reason: "must be YYYY-MM-DDTHH:MM:SS"}
	}

	duration := req.DurationMinutes
	if duration <= 0 {
		duration = s.catalog.ServiceDuration(req.Service)
	}

	a := &Appointment{
		ClientName:      strings.TrimSpace(req.ClientName),
		ClientEmail:     strings.ToLower(strings.TrimSpace(req.ClientEmail)),
		ClientPhone:     strings.TrimSpace(req.ClientPhone),
		Stylist:         req.Stylist,
		Service:         req.Service,
		ScheduledAt:     scheduledAt,
		DurationMinutes: duration,
		Notes:           req.Notes,
		Status:          StatusPending,
	}

	if err := s.repo.Create(ctx, a); err != nil {
		return nil, EmailNotRequested, &DependencyError{Op: "create appointment", Err: err}
	}

	s.log.Info().
		Int64("appointment_id", a.ID).
		Str("stylist", a.Stylist).
		Time("scheduled_at", a.ScheduledAt).
		Msg("appointment booked")

	if s.mailer == nil || a.ClientEmail == "" {
		return a, EmailNotRequested, nil
	}
	if err := s.mailer.SendBookingConfirmation(ctx, a); err != nil {
		s.log.Warn().
			Err(err).
			Int64("appointment_id", a.ID).
			Msg("confirmation email failed")
		return a, EmailFailed, nil
	}
	return a, EmailSent, nil
}

// List returns appointments, optionally narrowed to today or tomorrow
// relative to the service clock.
func (s *Service) List(ctx context.Context, filter ListFilter, limit, offset int) ([]*Appointment, int, error) {
	switch filter {
	case FilterToday:
		return s.repo.ListByDate(ctx, s.now(), limit, offset)
	case FilterTomorrow:
		return s.repo.ListByDate(ctx, s.now().AddDate(0, 0, 1), limit, offset)
	case FilterNone:
		return s.repo.ListAll(ctx, limit, offset)
	default:
		return nil, 0, &ValidationError{Field: "filter", Reason: "must be today or tomorrow"}
	}
}

// Get returns one appointment by id.
func (s *Service) Get(ctx context.Context, id int64) (*Appointment, error) {
	return s.repo.GetByID(ctx, id)
}

// UpdateStatus moves an appointment to a new status.
func (s *Service) UpdateStatus(ctx context.Context, id int64, status Status) (*Appointment, error) {
	if !status.Valid() {
		return nil, &ValidationError{Field: "status", Reason: "must be pending, confirmed, finished or canceled"}
	}
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !CanTransition(a.Status, status) {
		return nil, &ValidationError{Field: "status", Reason: fmt.Sprintf("cannot move from %s to %s", a.Status, status)}
	}
	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	a.Status = status
	return a, nil
}

// Availability returns the slot grid for a day. Only pending bookings block
// a slot.
func (s *Service) Availability(ctx context.Context, day time.Time) ([]availability.Slot, error) {
	pending, err := s.repo.ListPendingByDate(ctx, day)
	if err != nil {
		return nil, err
	}
	booked := make([]availability.Booking, 0, len(pending))
	for _, a := range pending {
		booked = append(booked, availability.Booking{
			Time:    a.ScheduledAt.Format("15:04"),
			Stylist: a.Stylist,
			Service: a.Service,
		})
	}
	return availability.Compute(s.catalog.SlotTimes, booked), nil
}

// StylistSchedule returns a stylist's upcoming workload from a date on.
// Canceled appointments are excluded.
func (s *Service) StylistSchedule(ctx context.Context, stylist string, from time.Time) ([]*Appointment, error) {
	return s.repo.ListByStylistFrom(ctx, stylist, from)
}

// CalendarExport renders an appointment as an iCalendar attachment.
func (s *Service) CalendarExport(ctx context.Context, id int64) (filename, body string, err error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return "", "", err
	}

	ev := ics.Event{
		UID:     fmt.Sprintf("%d@%s", a.ID, s.salon.CalendarHost),
		Start:   a.ScheduledAt,
		End:     a.End(),
		Summary: "Appointment at " + s.salon.Name,
		Description: fmt.Sprintf("Stylist: %s\nService: %s\n%s",
			a.Stylist, a.Service, a.Notes),
		Location: s.salon.Address,
	}
	return ics.Filename(a.ID), ev.Encode(s.now()), nil
}
