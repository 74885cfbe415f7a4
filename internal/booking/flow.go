package booking

import (
	"context"
	"sync"
	"sync/atomic"

	"busbuddy/internal/domain"
	"busbuddy/internal/payment"
	"busbuddy/internal/store"
	"busbuddy/internal/utils"
)

// Stage is one step of the linear checkout: seats -> details -> payment.
type Stage string

const (
	StageSeats   Stage = "seats"
	StageDetails Stage = "details"
	StagePayment Stage = "payment"
)

// Flow drives the three-stage checkout over the shared store. Each stage
// transition is gated by validation; the commit itself is all-or-nothing.
type Flow struct {
	store   *store.Store
	gateway payment.Gateway

	mu         sync.Mutex
	stage      Stage
	passengers []domain.Passenger
	insurance  bool

	// processing suppresses re-entrant submission while a commit is in
	// flight.
	processing atomic.Bool
}

func NewFlow(st *store.Store, gw payment.Gateway) *Flow {
	return &Flow{store: st, gateway: gw, stage: StageSeats}
}

// Stage returns the current checkout step.
func (f *Flow) Stage() Stage {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.stage
}

// Reset returns the flow to seat selection and discards entered data.
// Used when the user picks a different bus or after a commit.
func (f *Flow) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.resetLocked()
}

func (f *Flow) resetLocked() {
	f.stage = StageSeats
	f.passengers = nil
	f.insurance = false
}

// Back moves one stage backwards. Navigation only: entered passenger and
// payment data stays put.
func (f *Flow) Back() Stage {
	f.mu.Lock()
	defer f.mu.Unlock()
	switch f.stage {
	case StagePayment:
		f.stage = StageDetails
	case StageDetails:
		f.stage = StageSeats
	}
	return f.stage
}

// Continue advances one stage when the current stage's guard passes.
//
// seats -> details requires a non-empty seat selection. details ->
// payment requires one fully valid passenger per selected seat. At the
// payment stage Continue has nothing to advance; Pay finishes the flow.
func (f *Flow) Continue() (Stage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch f.stage {
	case StageSeats:
		selection := f.store.SelectedSeats()
		if len(selection) == 0 {
			return f.stage, invalid("Please select at least one seat to continue")
		}
		f.syncPassengersLocked(selection)
		f.stage = StageDetails
	case StageDetails:
		if err := f.validateDetailsLocked(); err != nil {
			return f.stage, err
		}
		f.stage = StagePayment
	}
	return f.stage, nil
}

// syncPassengersLocked keeps one passenger slot per selected seat,
// preserving already-entered details for seats that are still selected.
func (f *Flow) syncPassengersLocked(selection []domain.Seat) {
	bySeat := map[string]domain.Passenger{}
	for _, p := range f.passengers {
		bySeat[p.SeatNumber] = p
	}
	next := make([]domain.Passenger, len(selection))
	for i, seat := range selection {
		if p, ok := bySeat[seat.Number]; ok {
			next[i] = p
			continue
		}
		next[i] = domain.Passenger{SeatNumber: seat.Number}
	}
	f.passengers = next
}

// validateDetailsLocked requires one passenger per selected seat and the
// slots to still point at the live selection. The seat set can change
// underneath the flow (toggles are not stage-gated), so a count check
// alone would let a same-size seat swap commit passengers against seats
// that are no longer selected.
func (f *Flow) validateDetailsLocked() error {
	selection := f.store.SelectedSeats()
	if len(f.passengers) != len(selection) {
		return invalid("Please fill details for all passengers")
	}
	for i, seat := range selection {
		if f.passengers[i].SeatNumber != seat.Number {
			return invalid("Please fill details for all passengers")
		}
	}
	return ValidatePassengers(f.passengers)
}

// SetPassenger fills the details for one seat index during the details
// stage. The seat number is pinned to the seat the slot belongs to.
func (f *Flow) SetPassenger(index int, p domain.Passenger) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.stage == StageSeats {
		return invalid("Please select your seats first")
	}
	if index < 0 || index >= len(f.passengers) {
		return invalid("Please fill details for all passengers")
	}
	p.SeatNumber = f.passengers[index].SeatNumber
	f.passengers[index] = p
	return nil
}

// Passengers returns the entered passenger slots in seat order.
func (f *Flow) Passengers() []domain.Passenger {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]domain.Passenger, len(f.passengers))
	copy(out, f.passengers)
	return out
}

// SetInsurance toggles the optional travel insurance surcharge.
func (f *Flow) SetInsurance(opted bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.insurance = opted
}

// Insurance reports whether insurance is opted in.
func (f *Flow) Insurance() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.insurance
}

// FareSummary itemizes the fare for the current selection and insurance
// choice.
func (f *Flow) FareSummary() domain.FareBreakdown {
	f.mu.Lock()
	insurance := f.insurance
	f.mu.Unlock()
	return f.store.FareSummary(insurance)
}

// Pay validates everything, submits to the payment gateway and commits
// the booking. No partial commit ever occurs: validation failures leave
// the flow on the payment stage with all inputs intact, and a gateway or
// commit failure surfaces the generic retryable message. While one
// submission is in flight, further attempts are rejected.
func (f *Flow) Pay(ctx context.Context, details domain.PaymentDetails) (domain.Booking, error) {
	if !f.processing.CompareAndSwap(false, true) {
		return domain.Booking{}, invalid("Your booking is already being processed")
	}
	defer f.processing.Store(false)

	f.mu.Lock()
	if f.stage != StagePayment {
		f.mu.Unlock()
		return domain.Booking{}, invalid("Please complete the previous steps first")
	}
	if err := f.validateDetailsLocked(); err != nil {
		f.mu.Unlock()
		return domain.Booking{}, err
	}
	if err := ValidatePayment(details); err != nil {
		f.mu.Unlock()
		return domain.Booking{}, err
	}
	passengers := make([]domain.Passenger, len(f.passengers))
	copy(passengers, f.passengers)
	insurance := f.insurance
	f.mu.Unlock()

	amount := f.store.FareSummary(insurance).Total

	// Outcome was decided above; the gateway call is the single
	// suspension point and is not cancelled from here.
	if err := f.gateway.Submit(ctx, amount, details); err != nil {
		utils.LogEvent("", "booking", "payment_failed", err.Error())
		return domain.Booking{}, invalid("Failed to process booking. Please try again.")
	}

	committed, err := f.store.CreateBooking(passengers, insurance)
	if err != nil {
		utils.LogEvent("", "booking", "commit_failed", err.Error())
		return domain.Booking{}, invalid("Failed to process booking. Please try again.")
	}

	f.mu.Lock()
	f.resetLocked()
	f.mu.Unlock()

	utils.LogEvent("", "booking", "confirmed", "booking_id="+committed.ID)
	return committed, nil
}
