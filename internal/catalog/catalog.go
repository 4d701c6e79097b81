// Package catalog holds the salon's fixed offering: the stylists on staff,
// the services they perform with their nominal durations, and the daily
// booking slots. It is the single source of truth consumed by the booking
// service, the availability grid, and the options endpoint.
package catalog

// DefaultDurationMinutes applies when a booking names a service the catalog
// does not know.
const DefaultDurationMinutes = 30

// Service is one bookable service and its nominal duration.
type Service struct {
	Name            string `json:"name"`
	DurationMinutes int    `json:"duration_minutes"`
}

// Catalog describes what the salon offers on any given day.
type Catalog struct {
	Stylists  []string  `json:"stylists"`
	Services  []Service `json:"services"`
	SlotTimes []string  `json:"slot_times"`
}

// Default returns the current offering of the shop. Slot times are ordered
// start times in local salon time.
func Default() Catalog {
	return Catalog{
		Stylists: []string{"Ivan", "Matias"},
		Services: []Service{
			{Name: "Corte de cabello", DurationMinutes: 30},
			{Name: "Corte + Barba", DurationMinutes: 45},
			{Name: "color", DurationMinutes: 60},
			{Name: "Jubilados", DurationMinutes: 60},
			{Name: "Claritos", DurationMinutes: 60},
		},
		SlotTimes: []string{"10:00", "11:30", "13:00", "14:30", "16:00", "17:30"},
	}
}

// ServiceDuration returns the nominal duration in minutes for a service
// name, falling back to DefaultDurationMinutes for unknown services.
func (c Catalog) ServiceDuration(name string) int {
	for _, s := range c.Services {
		if s.Name == name {
			return s.DurationMinutes
		}
	}
	return DefaultDurationMinutes
}
