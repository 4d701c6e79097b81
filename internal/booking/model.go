package booking

import "time"

// Status is the lifecycle stage of an appointment.
type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusFinished  Status = "finished"
	StatusCanceled  Status = "canceled"
)

var validStatuses = map[Status]bool{
	StatusPending:   true,
	StatusConfirmed: true,
	StatusFinished:  true,
	StatusCanceled:  true,
}

// Valid reports whether s is a member of the status set. No other value is
// ever persisted.
func (s Status) Valid() bool { return validStatuses[s] }

// CanTransition reports whether an appointment may move between two
// statuses. The lifecycle is permissive: any valid status may follow any
// other, finished -> pending included, which is how the front desk corrects
// mistakes. Only set membership is enforced, and nothing transitions a
// status automatically over time.
func CanTransition(from, to Status) bool {
	return from.Valid() && to.Valid()
}

// ScheduleTimeLayout is the wall-clock format bookings arrive in. There is
// no timezone component; all times are local salon time.
const ScheduleTimeLayout = "2006-01-02T15:04:05"

// scheduleTimeShortLayout accepts the minute-precision value HTML
// datetime-local inputs produce.
const scheduleTimeShortLayout = "2006-01-02T15:04"

// DateLayout is the calendar-day format used by filters and the
// availability grid.
const DateLayout = "2006-01-02"

// ParseScheduleTime parses a booking's wall-clock start time.
func ParseScheduleTime(s string) (time.Time, error) {
	t, err := time.Parse(ScheduleTimeLayout, s)
	if err == nil {
		return t, nil
	}
	return time.Parse(scheduleTimeShortLayout, s)
}

// Appointment is one booked visit: client + stylist + service + time.
// Records are never deleted; cancellation is a status value.
type Appointment struct {
	ID              int64     `db:"id" json:"id"`
	ClientName      string    `db:"client_name" json:"client_name"`
	ClientEmail     string    `db:"client_email" json:"client_email,omitempty"`
	ClientPhone     string    `db:"client_phone" json:"client_phone,omitempty"`
	Stylist         string    `db:"stylist" json:"stylist"`
	Service         string    `db:"service" json:"service"`
	ScheduledAt     time.Time `db:"scheduled_at" json:"scheduled_at"`
	DurationMinutes int       `db:"duration_minutes" json:"duration_minutes"`
	Notes           string    `db:"notes" json:"notes,omitempty"`
	Status          Status    `db:"status" json:"status"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
}

// End returns the exclusive end of the occupied interval
// [ScheduledAt, ScheduledAt+DurationMinutes).
func (a *Appointment) End() time.Time {
	d := a.DurationMinutes
	if d <= 0 {
		d = 30
	}
	return a.ScheduledAt.Add(time.Duration(d) * time.Minute)
}

// SalonInfo is the shop identity used in confirmation email and calendar
// exports.
type SalonInfo struct {
	Name         string
	Address      string
	Phone        string
	CalendarHost string
}
