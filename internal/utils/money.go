package utils

import (
	"fmt"
	"strconv"
)

// FormatRupee renders an integer amount with the rupee sign and Indian
// digit grouping: 1234567 -> "₹12,34,567".
func FormatRupee(amount int64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	return fmt.Sprintf("%s₹%s", sign, groupIndian(amount))
}

// groupIndian inserts separators after the last three digits, then every
// two: 1234567 -> 12,34,567.
func groupIndian(n int64) string {
	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}
	head := s[:len(s)-3]
	tail := s[len(s)-3:]
	var out []byte
	for i := 0; i < len(head); i++ {
		out = append(out, head[i])
		rem := len(head) - i - 1
		if rem > 0 && rem%2 == 0 {
			out = append(out, ',')
		}
	}
	return string(out) + "," + tail
}
