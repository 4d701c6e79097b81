// Package availability computes the slot grid for a single day.
package availability

// Booking is the minimal view of an appointment the grid needs: the
// wall-clock start time in HH:MM plus who is taking it.
type Booking struct {
	Time    string
	Stylist string
	Service string
}

// Slot statuses in the grid.
const (
	StatusFree     = "free"
	StatusOccupied = "occupied"
)

// Slot is one entry of the day grid.
type Slot struct {
	Time    string `json:"time"`
	Status  string `json:"status"`
	Stylist string `json:"stylist,omitempty"`
	Service string `json:"service,omitempty"`
}

// Compute marks each slot time occupied when a booking starts at exactly
// that HH:MM. Bookings between slot times do not block anything, and the
// first booking at a time claims the slot regardless of how many stylists
// work. The caller decides which bookings count; normally only pending ones
// are passed in.
func Compute(slotTimes []string, booked []Booking) []Slot {
	byTime := make(map[string]Booking, len(booked))
	for _, b := range booked {
		if _, ok := byTime[b.Time]; !ok {
			byTime[b.Time] = b
		}
	}

	slots := make([]Slot, 0, len(slotTimes))
	for _, t := range slotTimes {
		s := Slot{Time: t, Status: StatusFree}
		if b, ok := byTime[t]; ok {
			s.Status = StatusOccupied
			s.Stylist = b.Stylist
			s.Service = b.Service
		}
		slots = append(slots, s)
	}
	return slots
}
