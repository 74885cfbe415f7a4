package store

import (
	"sort"
	"sync"
	"time"

	"busbuddy/internal/catalog"
	"busbuddy/internal/domain"
	"busbuddy/internal/seatmap"
)

// Store is the process-wide application state: search parameters, current
// results, the selected bus, the seat selection and the booking list.
// Everything is volatile and lost on restart. All methods are
// mutex-guarded so each mutation is atomic with respect to the request
// that triggered it.
type Store struct {
	mu sync.Mutex

	// Now is injectable for date-filter tests; nil means time.Now.
	Now func() time.Time

	seatMaps *seatmap.Cache

	params      catalog.SearchParams
	buses       []domain.Bus
	selectedBus *domain.Bus
	selection   []domain.Seat
	bookings    []domain.Booking
}

func New(cache *seatmap.Cache) *Store {
	return &Store{seatMaps: cache}
}

func (s *Store) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// SearchBuses runs a catalog search, remembers the parameters and results
// and resets any previous bus/seat selection.
func (s *Store) SearchBuses(params catalog.SearchParams) []domain.Bus {
	buses := catalog.Search(params)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.params = params
	s.buses = buses
	s.selectedBus = nil
	s.selection = nil
	return copyBuses(buses)
}

// Params returns the last search parameters.
func (s *Store) Params() catalog.SearchParams {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.params
}

// Buses returns the current result list.
func (s *Store) Buses() []domain.Bus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyBuses(s.buses)
}

// SortBuses reorders the stored results by option and returns them.
func (s *Store) SortBuses(option string) []domain.Bus {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.buses = catalog.SortBuses(s.buses, option)
	return copyBuses(s.buses)
}

// FilterBuses returns the stored results narrowed by f, leaving the
// stored list itself untouched.
func (s *Store) FilterBuses(f catalog.Filter) []domain.Bus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return catalog.FilterBuses(s.buses, f)
}

// SelectBus picks a bus from the current results and clears the seat
// selection from any previous bus.
func (s *Store) SelectBus(id int64) (domain.Bus, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, b := range s.buses {
		if b.ID == id {
			bus := b
			s.selectedBus = &bus
			s.selection = nil
			return bus, nil
		}
	}
	return domain.Bus{}, ErrBusNotFound
}

// SelectedBus returns the bus the user is booking, if any.
func (s *Store) SelectedBus() (domain.Bus, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.selectedBus == nil {
		return domain.Bus{}, false
	}
	return *s.selectedBus, true
}

// SeatMap returns the selected bus's layout with the current selection
// applied: a seat's status is "selected" exactly when its id is in the
// selection set.
func (s *Store) SeatMap() ([]domain.Seat, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.seatMapLocked()
}

func (s *Store) seatMapLocked() ([]domain.Seat, error) {
	if s.selectedBus == nil {
		return nil, ErrNoBusSelected
	}
	seats := s.seatMaps.Layout(*s.selectedBus)
	selected := map[int]bool{}
	for _, sel := range s.selection {
		selected[sel.ID] = true
	}
	for i := range seats {
		if selected[seats[i].ID] {
			seats[i].Status = domain.SeatSelected
		}
	}
	return seats, nil
}

// ToggleSeat adds the seat to the selection, or removes it when already
// selected. Booked seats are untouchable: the selection set is left
// unchanged and ErrSeatBooked is returned.
func (s *Store) ToggleSeat(number string) (selected bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	seats, err := s.seatMapLocked()
	if err != nil {
		return false, err
	}

	var seat *domain.Seat
	for i := range seats {
		if seats[i].Number == number {
			seat = &seats[i]
			break
		}
	}
	if seat == nil {
		return false, ErrSeatNotFound
	}
	if seat.Status == domain.SeatBooked {
		return false, ErrSeatBooked
	}

	for i, sel := range s.selection {
		if sel.ID == seat.ID {
			s.selection = append(s.selection[:i], s.selection[i+1:]...)
			return false, nil
		}
	}
	picked := *seat
	picked.Status = domain.SeatSelected
	s.selection = append(s.selection, picked)
	// stable render order regardless of click order
	sort.Slice(s.selection, func(i, j int) bool { return s.selection[i].ID < s.selection[j].ID })
	return true, nil
}

// SelectSeats adds every listed seat to the selection in one step,
// skipping ones already selected. All-or-nothing: an unknown or booked
// seat in the list rejects the whole call and leaves the selection as
// it was.
func (s *Store) SelectSeats(numbers []string) ([]domain.Seat, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	seats, err := s.seatMapLocked()
	if err != nil {
		return nil, err
	}
	byNumber := map[string]domain.Seat{}
	for _, seat := range seats {
		byNumber[seat.Number] = seat
	}

	picked := []domain.Seat{}
	for _, n := range numbers {
		seat, ok := byNumber[n]
		if !ok {
			return nil, ErrSeatNotFound
		}
		if seat.Status == domain.SeatBooked {
			return nil, ErrSeatBooked
		}
		if seat.Status == domain.SeatSelected {
			continue
		}
		seat.Status = domain.SeatSelected
		picked = append(picked, seat)
		byNumber[n] = seat
	}
	s.selection = append(s.selection, picked...)
	sort.Slice(s.selection, func(i, j int) bool { return s.selection[i].ID < s.selection[j].ID })

	out := make([]domain.Seat, len(s.selection))
	copy(out, s.selection)
	return out, nil
}

// SelectedSeats returns the selection in generation order.
func (s *Store) SelectedSeats() []domain.Seat {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Seat, len(s.selection))
	copy(out, s.selection)
	return out
}

// TotalFare is the derived base fare: the sum of selected seat prices.
// It is never stored redundantly.
func (s *Store) TotalFare() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.SeatTotal(s.selection)
}

// FareSummary itemizes the current selection's fare.
func (s *Store) FareSummary(withInsurance bool) domain.FareBreakdown {
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.ComputeFare(domain.SeatTotal(s.selection), withInsurance)
}

func copyBuses(in []domain.Bus) []domain.Bus {
	out := make([]domain.Bus, len(in))
	copy(out, in)
	return out
}
