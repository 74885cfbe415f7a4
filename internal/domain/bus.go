package domain

import "strings"

// Bus is one search result. Immutable once produced for a search;
// seat occupancy lives in the seat map, not here.
type Bus struct {
	ID             int64    `json:"id"`
	Name           string   `json:"name"`
	Type           string   `json:"type"`
	Source         string   `json:"source"`
	Destination    string   `json:"destination"`
	Date           string   `json:"date"`
	DepartureTime  string   `json:"departureTime"`
	ArrivalTime    string   `json:"arrivalTime"`
	Duration       string   `json:"duration"`
	Price          int64    `json:"price"`
	Rating         float64  `json:"rating"`
	Amenities      []string `json:"amenities"`
	AvailableSeats int      `json:"availableSeats"`
}

// IsSleeper reports whether the category string marks a sleeper bus.
// Sleeper buses get an upper deck.
func (b Bus) IsSleeper() bool {
	return strings.Contains(b.Type, "Sleeper")
}
