package booking

import (
	"testing"

	"busbuddy/internal/domain"
)

func validPassenger() domain.Passenger {
	return domain.Passenger{
		Name:       "Asha Rao",
		Age:        28,
		Gender:     domain.GenderFemale,
		SeatNumber: "L1A",
		Phone:      "9876543210",
		Email:      "asha@example.com",
	}
}

func TestValidatePassengerAccepts(t *testing.T) {
	if err := ValidatePassenger(validPassenger()); err != nil {
		t.Fatalf("valid passenger rejected: %v", err)
	}
}

func TestValidatePassengerFieldOrder(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*domain.Passenger)
		message string
	}{
		{"empty name", func(p *domain.Passenger) { p.Name = "   " },
			"Please enter name for all passengers"},
		{"zero age", func(p *domain.Passenger) { p.Age = 0 },
			"Please enter valid age for all passengers"},
		{"bad gender", func(p *domain.Passenger) { p.Gender = "unknown" },
			"Please select gender for all passengers"},
		{"short phone", func(p *domain.Passenger) { p.Phone = "12345" },
			"Please enter valid phone number for all passengers"},
		{"phone with letters", func(p *domain.Passenger) { p.Phone = "98765abc10" },
			"Please enter valid phone number for all passengers"},
		{"bad email", func(p *domain.Passenger) { p.Email = "not-an-email" },
			"Please enter valid email for all passengers"},
		{"email without tld", func(p *domain.Passenger) { p.Email = "a@b" },
			"Please enter valid email for all passengers"},
	}
	for _, c := range cases {
		p := validPassenger()
		c.mutate(&p)
		err := ValidatePassenger(p)
		if err == nil {
			t.Fatalf("%s: accepted", c.name)
		}
		if err.Error() != c.message {
			t.Fatalf("%s: message = %q, want %q", c.name, err.Error(), c.message)
		}
	}
}

func TestValidatePassengerChecksNameBeforePhone(t *testing.T) {
	// both name and phone are bad: the name message must win
	p := validPassenger()
	p.Name = ""
	p.Phone = "1"
	err := ValidatePassenger(p)
	if err == nil || err.Error() != "Please enter name for all passengers" {
		t.Fatalf("err = %v, want name message first", err)
	}
}

func TestValidatePassengersEmpty(t *testing.T) {
	err := ValidatePassengers(nil)
	if err == nil || err.Error() != "Please add passenger details" {
		t.Fatalf("err = %v", err)
	}
}

func TestValidatePaymentCard(t *testing.T) {
	ok := domain.PaymentDetails{
		Method:     domain.PayCard,
		CardNumber: "1234567890123456",
		ExpiryDate: "09/27",
		CVV:        "123",
	}
	if err := ValidatePayment(ok); err != nil {
		t.Fatalf("valid card rejected: %v", err)
	}

	bad := ok
	bad.CardNumber = "123"
	if err := ValidatePayment(bad); err == nil || err.Error() != "Please enter a valid card number" {
		t.Fatalf("short card number: err = %v", err)
	}

	bad = ok
	bad.ExpiryDate = "13/27"
	if err := ValidatePayment(bad); err == nil || err.Error() != "Please enter a valid expiry date (MM/YY)" {
		t.Fatalf("month 13: err = %v", err)
	}

	bad = ok
	bad.ExpiryDate = "9/27"
	if err := ValidatePayment(bad); err == nil {
		t.Fatalf("single-digit month accepted")
	}

	bad = ok
	bad.CVV = "12"
	if err := ValidatePayment(bad); err == nil || err.Error() != "Please enter a valid CVV" {
		t.Fatalf("short cvv: err = %v", err)
	}
}

func TestValidatePaymentUPI(t *testing.T) {
	ok := domain.PaymentDetails{Method: domain.PayUPI, UPIID: "asha.rao@okbank"}
	if err := ValidatePayment(ok); err != nil {
		t.Fatalf("valid upi rejected: %v", err)
	}

	for _, id := range []string{"", "noatsign", "asha@9bank", "a@b"} {
		bad := domain.PaymentDetails{Method: domain.PayUPI, UPIID: id}
		if err := ValidatePayment(bad); err == nil {
			t.Fatalf("upi id %q accepted", id)
		}
	}
}

func TestValidatePaymentWallet(t *testing.T) {
	for _, provider := range domain.WalletProviders {
		ok := domain.PaymentDetails{Method: domain.PayWallet, WalletProvider: provider}
		if err := ValidatePayment(ok); err != nil {
			t.Fatalf("provider %q rejected: %v", provider, err)
		}
	}
	bad := domain.PaymentDetails{Method: domain.PayWallet, WalletProvider: "cashcow"}
	if err := ValidatePayment(bad); err == nil || err.Error() != "Please select a wallet provider" {
		t.Fatalf("unknown provider: err = %v", err)
	}
}

func TestValidatePaymentUnsetMethod(t *testing.T) {
	err := ValidatePayment(domain.PaymentDetails{})
	if err == nil || err.Error() != "Please select a payment method" {
		t.Fatalf("err = %v", err)
	}
}
