package store

import "errors"

var (
	ErrNoBusSelected    = errors.New("no bus selected")
	ErrBusNotFound      = errors.New("bus not found in search results")
	ErrSeatNotFound     = errors.New("seat not found in layout")
	ErrSeatBooked       = errors.New("seat is already booked")
	ErrNothingSelected  = errors.New("no seats selected")
	ErrPassengerCount   = errors.New("passenger count does not match selected seats")
	ErrBookingNotFound  = errors.New("booking not found")
	ErrAlreadyCancelled = errors.New("booking is already cancelled")
	ErrNotCancellable   = errors.New("booking can no longer be cancelled")
)
