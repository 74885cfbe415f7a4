package domain

type BookingStatus string

const (
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
)

// Booking is a committed reservation. Created atomically on successful
// payment; the only mutation afterwards is a cancellation status flip.
type Booking struct {
	ID            string        `json:"id"`
	BusName       string        `json:"busName"`
	BusType       string        `json:"busType"`
	Source        string        `json:"source"`
	Destination   string        `json:"destination"`
	Date          string        `json:"date"`
	DepartureTime string        `json:"departureTime"`
	ArrivalTime   string        `json:"arrivalTime"`
	Seats         []string      `json:"seats"`
	Passengers    []Passenger   `json:"passengers"`
	TotalFare     int64         `json:"totalFare"`
	BookingDate   string        `json:"bookingDate"`
	Status        BookingStatus `json:"status"`
}
