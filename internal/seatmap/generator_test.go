package seatmap

import (
	"math/rand"
	"reflect"
	"testing"

	"busbuddy/internal/domain"
)

func seededGen(seed int64) Generator {
	return Generator{Rand: rand.New(rand.NewSource(seed))}
}

func TestGenerateSeaterShape(t *testing.T) {
	bus := domain.Bus{ID: 1, Type: "AC Seater (3+2)", Price: 500}
	seats := seededGen(1).Generate(bus)

	if len(seats) != RowsPerDeck*5 {
		t.Fatalf("seat count = %d, want %d", len(seats), RowsPerDeck*5)
	}
	for _, s := range seats {
		if s.Deck != domain.DeckLower {
			t.Fatalf("seater bus produced %s deck seat %s", s.Deck, s.Number)
		}
		if s.Price != 500 {
			t.Fatalf("seat %s price = %d, want 500", s.Number, s.Price)
		}
	}

	// first row: window, middle, aisle | aisle, window as L1A..L1E
	wantTypes := []domain.SeatType{
		domain.SeatWindow, domain.SeatMiddle, domain.SeatAisle,
		domain.SeatAisle, domain.SeatWindow,
	}
	wantNumbers := []string{"L1A", "L1B", "L1C", "L1D", "L1E"}
	for i := 0; i < 5; i++ {
		if seats[i].Number != wantNumbers[i] {
			t.Fatalf("seat %d number = %s, want %s", i, seats[i].Number, wantNumbers[i])
		}
		if seats[i].Type != wantTypes[i] {
			t.Fatalf("seat %s type = %s, want %s", seats[i].Number, seats[i].Type, wantTypes[i])
		}
	}
	if seats[2].Side != domain.SideLeft || seats[3].Side != domain.SideRight {
		t.Fatalf("3+2 split sides wrong: %s/%s", seats[2].Side, seats[3].Side)
	}
}

func TestGenerateSleeperShape(t *testing.T) {
	bus := domain.Bus{ID: 2, Type: "AC Sleeper (2+2)", Price: 900}
	seats := seededGen(2).Generate(bus)

	if len(seats) != RowsPerDeck*4*2 {
		t.Fatalf("seat count = %d, want %d", len(seats), RowsPerDeck*4*2)
	}

	var upper int
	for _, s := range seats {
		if s.Deck == domain.DeckUpper {
			upper++
		}
		if s.Type == domain.SeatMiddle {
			t.Fatalf("sleeper layout has middle seat %s", s.Number)
		}
	}
	if upper != RowsPerDeck*4 {
		t.Fatalf("upper deck seats = %d, want %d", upper, RowsPerDeck*4)
	}

	// first sleeper row: window, aisle | aisle, window as L1A..L1D
	wantNumbers := []string{"L1A", "L1B", "L1C", "L1D"}
	wantTypes := []domain.SeatType{
		domain.SeatWindow, domain.SeatAisle,
		domain.SeatAisle, domain.SeatWindow,
	}
	for i := 0; i < 4; i++ {
		if seats[i].Number != wantNumbers[i] {
			t.Fatalf("seat %d number = %s, want %s", i, seats[i].Number, wantNumbers[i])
		}
		if seats[i].Type != wantTypes[i] {
			t.Fatalf("seat %s type = %s, want %s", seats[i].Number, seats[i].Type, wantTypes[i])
		}
	}

	// upper deck numbering starts over at U1A
	first := seats[RowsPerDeck*4]
	if first.Number != "U1A" || first.Deck != domain.DeckUpper {
		t.Fatalf("upper deck starts at %s (%s)", first.Number, first.Deck)
	}
}

func TestGenerateNumbersUnique(t *testing.T) {
	for _, busType := range []string{"AC Sleeper (2+2)", "Non-AC Seater (3+2)"} {
		seats := seededGen(3).Generate(domain.Bus{ID: 3, Type: busType, Price: 100})
		seen := map[string]bool{}
		for _, s := range seats {
			if seen[s.Number] {
				t.Fatalf("%s: duplicate seat number %s", busType, s.Number)
			}
			seen[s.Number] = true
		}
	}
}

func TestGenerateOccupancyBounds(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		seats := seededGen(seed).Generate(domain.Bus{ID: 4, Type: "AC Seater (3+2)", Price: 100})
		var booked int
		for _, s := range seats {
			if s.Status == domain.SeatBooked {
				booked++
			}
		}
		if limit := int(float64(len(seats)) * occupancyRate); booked > limit {
			t.Fatalf("seed %d: booked %d exceeds %d", seed, booked, limit)
		}
	}
}

func TestGenerateDeterministicWithSeed(t *testing.T) {
	bus := domain.Bus{ID: 5, Type: "AC Sleeper (2+2)", Price: 750}
	first := seededGen(42).Generate(bus)
	second := seededGen(42).Generate(bus)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("same seed produced different layouts")
	}
}

func TestGenerateZeroBus(t *testing.T) {
	seats := seededGen(6).Generate(domain.Bus{})
	if len(seats) != RowsPerDeck*5 {
		t.Fatalf("zero bus seat count = %d, want %d", len(seats), RowsPerDeck*5)
	}
	for _, s := range seats {
		if s.Price != 0 {
			t.Fatalf("zero bus produced priced seat %s", s.Number)
		}
	}
}

func TestCacheStableAcrossViews(t *testing.T) {
	cache := NewCache(seededGen(7))
	bus := domain.Bus{ID: 10, Type: "AC Seater (3+2)", Price: 300}

	first := cache.Layout(bus)
	second := cache.Layout(bus)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("cached layout reshuffled between views")
	}

	// mutating the returned copy must not leak into the cache
	first[0].Status = domain.SeatSelected
	third := cache.Layout(bus)
	if third[0].Status == domain.SeatSelected {
		t.Fatalf("caller mutation leaked into cache")
	}
}

func TestCacheMarkBooked(t *testing.T) {
	cache := NewCache(seededGen(8))
	bus := domain.Bus{ID: 11, Type: "AC Seater (3+2)", Price: 300}
	cache.Layout(bus)

	cache.MarkBooked(bus.ID, []string{"L1A", "L2B"})
	seats := cache.Layout(bus)
	for _, s := range seats {
		if (s.Number == "L1A" || s.Number == "L2B") && s.Status != domain.SeatBooked {
			t.Fatalf("seat %s not booked after MarkBooked", s.Number)
		}
	}
}
