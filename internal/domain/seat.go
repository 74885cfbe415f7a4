package domain

type SeatStatus string

const (
	SeatAvailable SeatStatus = "available"
	SeatBooked    SeatStatus = "booked"
	SeatSelected  SeatStatus = "selected"
)

type SeatType string

const (
	SeatWindow SeatType = "window"
	SeatAisle  SeatType = "aisle"
	SeatMiddle SeatType = "middle"
)

type SeatSide string

const (
	SideLeft  SeatSide = "left"
	SideRight SeatSide = "right"
)

type Deck string

const (
	DeckLower Deck = "lower"
	DeckUpper Deck = "upper"
)

// Seat is one position in a generated layout. Number encodes
// deck+row+column, e.g. "U3C" = upper deck, row 3, column C.
type Seat struct {
	ID     int        `json:"id"`
	Number string     `json:"number"`
	Status SeatStatus `json:"status"`
	Price  int64      `json:"price"`
	Type   SeatType   `json:"type"`
	Side   SeatSide   `json:"side"`
	Deck   Deck       `json:"deck"`
}
