package domain

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// Passenger holds the details entered for one selected seat.
type Passenger struct {
	Name       string `json:"name"`
	Age        int    `json:"age"`
	Gender     Gender `json:"gender"`
	SeatNumber string `json:"seatNumber"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`
}
