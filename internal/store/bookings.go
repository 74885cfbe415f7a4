package store

import (
	"busbuddy/internal/domain"
	"busbuddy/internal/utils"

	"github.com/google/uuid"
)

// BookingFilter selects a slice of the booking list relative to "today".
type BookingFilter string

const (
	FilterAll       BookingFilter = "all"
	FilterUpcoming  BookingFilter = "upcoming"
	FilterCompleted BookingFilter = "completed"
	FilterCancelled BookingFilter = "cancelled"
)

// CreateBooking commits the current selection atomically: one passenger
// per selected seat, total fare fixed now, status confirmed. The seat
// selection is consumed and the committed seats become booked in the
// cached layout so later views of the bus stay consistent.
func (s *Store) CreateBooking(passengers []domain.Passenger, withInsurance bool) (domain.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.selectedBus == nil {
		return domain.Booking{}, ErrNoBusSelected
	}
	if len(s.selection) == 0 {
		return domain.Booking{}, ErrNothingSelected
	}
	if len(passengers) != len(s.selection) {
		return domain.Booking{}, ErrPassengerCount
	}

	seatNumbers := make([]string, len(s.selection))
	for i, seat := range s.selection {
		seatNumbers[i] = seat.Number
	}
	// passengers ride in seat order; make sure each record points at its seat
	committed := make([]domain.Passenger, len(passengers))
	copy(committed, passengers)
	for i := range committed {
		if committed[i].SeatNumber == "" {
			committed[i].SeatNumber = seatNumbers[i]
		}
	}

	fare := domain.ComputeFare(domain.SeatTotal(s.selection), withInsurance)
	bus := *s.selectedBus

	booking := domain.Booking{
		ID:            uuid.NewString(),
		BusName:       bus.Name,
		BusType:       bus.Type,
		Source:        bus.Source,
		Destination:   bus.Destination,
		Date:          bus.Date,
		DepartureTime: bus.DepartureTime,
		ArrivalTime:   bus.ArrivalTime,
		Seats:         seatNumbers,
		Passengers:    committed,
		TotalFare:     fare.Total,
		BookingDate:   utils.FormatDate(s.now()),
		Status:        domain.BookingConfirmed,
	}

	s.bookings = append(s.bookings, booking)
	s.seatMaps.MarkBooked(bus.ID, seatNumbers)
	s.selection = nil
	return booking, nil
}

// Bookings lists bookings matching filter, newest first.
func (s *Store) Bookings(filter BookingFilter) []domain.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := []domain.Booking{}
	for i := len(s.bookings) - 1; i >= 0; i-- {
		b := s.bookings[i]
		if s.matchesLocked(b, filter) {
			out = append(out, b)
		}
	}
	return out
}

// Booking fetches one booking by id.
func (s *Store) Booking(id string) (domain.Booking, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, b := range s.bookings {
		if b.ID == id {
			return b, true
		}
	}
	return domain.Booking{}, false
}

// CancelBooking flips a confirmed, still-future booking to cancelled.
// Irreversible; already-cancelled and departed bookings are rejected.
func (s *Store) CancelBooking(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.bookings {
		if s.bookings[i].ID != id {
			continue
		}
		if s.bookings[i].Status == domain.BookingCancelled {
			return ErrAlreadyCancelled
		}
		if !s.travelIsUpcomingLocked(s.bookings[i]) {
			return ErrNotCancellable
		}
		s.bookings[i].Status = domain.BookingCancelled
		return nil
	}
	return ErrBookingNotFound
}

func (s *Store) matchesLocked(b domain.Booking, filter BookingFilter) bool {
	switch filter {
	case FilterUpcoming:
		return b.Status == domain.BookingConfirmed && s.travelIsUpcomingLocked(b)
	case FilterCompleted:
		return b.Status != domain.BookingCancelled && !s.travelIsUpcomingLocked(b)
	case FilterCancelled:
		return b.Status == domain.BookingCancelled
	default:
		return true
	}
}

// travelIsUpcomingLocked reports whether the travel date (midnight local)
// is strictly after now. A booking for today counts as not upcoming.
func (s *Store) travelIsUpcomingLocked(b domain.Booking) bool {
	d, err := utils.ParseDate(b.Date)
	if err != nil {
		return false
	}
	return d.After(s.now())
}
