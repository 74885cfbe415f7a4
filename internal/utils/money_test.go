package utils

import "testing"

func TestFormatRupee(t *testing.T) {
	cases := []struct {
		in   int64
		want string
	}{
		{0, "₹0"},
		{999, "₹999"},
		{1070, "₹1,070"},
		{100000, "₹1,00,000"},
		{1234567, "₹12,34,567"},
		{-4500, "-₹4,500"},
	}
	for _, c := range cases {
		if got := FormatRupee(c.in); got != c.want {
			t.Fatalf("FormatRupee(%d) = %q, want %q", c.in, got, c.want)
		}
	}
}
