package seatmap

import (
	"fmt"
	"math/rand"
	"time"

	"busbuddy/internal/domain"
)

// RowsPerDeck is the standard intercity coach length.
const RowsPerDeck = 12

// occupancyRate caps how much of a layout starts out booked.
const occupancyRate = 0.7

// Generator derives a full seat inventory from a bus category and price.
// Rand is injectable so tests can re-derive layouts deterministically; when
// nil a time-seeded source is used.
type Generator struct {
	Rand *rand.Rand
}

// Generate produces the flat, ordered seat inventory for bus. Sleeper
// categories get two decks with 2+2 rows; everything else a single deck
// with 3+2 rows. Column letters continue across the aisle, so a sleeper
// row reads A,B | C,D and a seater row A,B,C | D,E. A zero-value bus
// yields a zero-priced seater layout rather than an error.
func (g Generator) Generate(bus domain.Bus) []domain.Seat {
	decks := []domain.Deck{domain.DeckLower}
	if bus.IsSleeper() {
		decks = append(decks, domain.DeckUpper)
	}

	// The occupancy pool is sized as if every row held five seats, so on
	// sleeper decks some draws land on ids that do not exist and the
	// effective occupancy runs a little under the cap.
	pool := RowsPerDeck * 5 * len(decks)
	booked := g.drawOccupancy(pool)

	seats := make([]domain.Seat, 0, pool)
	id := 1
	emit := func(deck domain.Deck, row, col int, side domain.SeatSide, seatType domain.SeatType) {
		status := domain.SeatAvailable
		if booked[id] {
			status = domain.SeatBooked
		}
		seats = append(seats, domain.Seat{
			ID:     id,
			Number: seatNumber(deck, row, col),
			Status: status,
			Price:  bus.Price,
			Type:   seatType,
			Side:   side,
			Deck:   deck,
		})
		id++
	}

	for _, deck := range decks {
		for row := 1; row <= RowsPerDeck; row++ {
			if bus.IsSleeper() {
				emit(deck, row, 1, domain.SideLeft, domain.SeatWindow)
				emit(deck, row, 2, domain.SideLeft, domain.SeatAisle)
				emit(deck, row, 3, domain.SideRight, domain.SeatAisle)
				emit(deck, row, 4, domain.SideRight, domain.SeatWindow)
			} else {
				emit(deck, row, 1, domain.SideLeft, domain.SeatWindow)
				emit(deck, row, 2, domain.SideLeft, domain.SeatMiddle)
				emit(deck, row, 3, domain.SideLeft, domain.SeatAisle)
				emit(deck, row, 4, domain.SideRight, domain.SeatAisle)
				emit(deck, row, 5, domain.SideRight, domain.SeatWindow)
			}
		}
	}
	return seats
}

// drawOccupancy marks a random subset of seat ids as booked, sized at up
// to occupancyRate of the pool. Draws may collide, so the subset is a
// ceiling, not an exact count.
func (g Generator) drawOccupancy(pool int) map[int]bool {
	rng := g.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	booked := map[int]bool{}
	max := int(float64(pool) * occupancyRate)
	if max <= 0 {
		return booked
	}
	count := rng.Intn(max)
	for i := 0; i < count; i++ {
		booked[rng.Intn(pool)+1] = true
	}
	return booked
}

func seatNumber(deck domain.Deck, row, col int) string {
	letter := rune('A' + col - 1)
	prefix := "L"
	if deck == domain.DeckUpper {
		prefix = "U"
	}
	return fmt.Sprintf("%s%d%c", prefix, row, letter)
}
