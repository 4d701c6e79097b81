package booking

import (
	"context"
	"time"
)

// ListFilter narrows appointment listings to a relative day.
type ListFilter string

const (
	FilterNone     ListFilter = ""
	FilterToday    ListFilter = "today"
	FilterTomorrow ListFilter = "tomorrow"
)

// Repository persists appointments.
//
// Create fills ID and CreatedAt on success. Day-filtered listings come back
// in chronological order; unfiltered listings come back newest first.
// UpdateStatus returns ErrNotFound when no row matches the id.
type Repository interface {
	Create(ctx context.Context, a *Appointment) error
	GetByID(ctx context.Context, id int64) (*Appointment, error)
	ListByDate(ctx context.Context, day time.Time, limit, offset int) ([]*Appointment, int, error)
	ListAll(ctx context.Context, limit, offset int) ([]*Appointment, int, error)
	UpdateStatus(ctx context.Context, id int64, status Status) error
	ListPendingByDate(ctx context.Context, day time.Time) ([]*Appointment, error)
	ListByStylistFrom(ctx context.Context, stylist string, from time.Time) ([]*Appointment, error)
}
