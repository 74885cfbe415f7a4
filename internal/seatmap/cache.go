package seatmap

import (
	"sync"

	"busbuddy/internal/domain"
)

// Cache generates each bus layout once and serves stable copies after
// that, keyed by bus ID. Without it occupancy would re-roll on every view
// of the seat page.
type Cache struct {
	mu      sync.Mutex
	gen     Generator
	layouts map[int64][]domain.Seat
}

func NewCache(gen Generator) *Cache {
	return &Cache{
		gen:     gen,
		layouts: map[int64][]domain.Seat{},
	}
}

// Layout returns the seat inventory for bus, generating it on first use.
// Callers receive a copy and may decorate statuses freely.
func (c *Cache) Layout(bus domain.Bus) []domain.Seat {
	c.mu.Lock()
	defer c.mu.Unlock()

	seats, ok := c.layouts[bus.ID]
	if !ok {
		seats = c.gen.Generate(bus)
		c.layouts[bus.ID] = seats
	}
	out := make([]domain.Seat, len(seats))
	copy(out, seats)
	return out
}

// MarkBooked flips the given seat numbers to booked in the cached layout,
// so committed seats stay unavailable on later views of the same bus.
func (c *Cache) MarkBooked(busID int64, numbers []string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	seats, ok := c.layouts[busID]
	if !ok {
		return
	}
	set := map[string]bool{}
	for _, n := range numbers {
		set[n] = true
	}
	for i := range seats {
		if set[seats[i].Number] {
			seats[i].Status = domain.SeatBooked
		}
	}
}
