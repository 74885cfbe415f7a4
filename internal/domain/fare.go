package domain

import "math"

const (
	// ServiceFeeRate is the fixed surcharge applied to every booking.
	ServiceFeeRate = 0.05
	// InsuranceRate applies to the pre-fee seat total when opted in.
	InsuranceRate = 0.02
)

// FareBreakdown itemizes a booking total. Total is fixed at commit time.
type FareBreakdown struct {
	BaseFare   int64 `json:"baseFare"`
	ServiceFee int64 `json:"serviceFee"`
	Insurance  int64 `json:"insurance"`
	Total      int64 `json:"total"`
}

// ComputeFare derives the breakdown from the selected seat price sum.
// Example: base 1000 with insurance -> 1000 + 50 + 20 = 1070.
func ComputeFare(baseFare int64, withInsurance bool) FareBreakdown {
	fb := FareBreakdown{
		BaseFare:   baseFare,
		ServiceFee: roundMoney(float64(baseFare) * ServiceFeeRate),
	}
	if withInsurance {
		fb.Insurance = roundMoney(float64(baseFare) * InsuranceRate)
	}
	fb.Total = fb.BaseFare + fb.ServiceFee + fb.Insurance
	return fb
}

// SeatTotal sums seat prices in the order given.
func SeatTotal(seats []Seat) int64 {
	var sum int64
	for _, s := range seats {
		sum += s.Price
	}
	return sum
}

func roundMoney(x float64) int64 {
	return int64(math.Round(x))
}
