package booking

import (
	"regexp"
	"strings"

	"busbuddy/internal/domain"
)

// ValidationError carries a user-facing message for a rejected input.
// Every failure here is correctable and retryable; nothing is fatal.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func invalid(msg string) error { return &ValidationError{Message: msg} }

var (
	phoneRe  = regexp.MustCompile(`^\d{10}$`)
	emailRe  = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	cardRe   = regexp.MustCompile(`^\d{16}$`)
	expiryRe = regexp.MustCompile(`^(0[1-9]|1[0-2])/\d{2}$`)
	cvvRe    = regexp.MustCompile(`^\d{3}$`)
	upiRe    = regexp.MustCompile(`^[a-zA-Z0-9.-]{2,256}@[a-zA-Z][a-zA-Z]{2,64}$`)
)

// ValidatePassenger checks one passenger's fields in fixed order:
// name, age, gender, phone, email. The first failure short-circuits.
func ValidatePassenger(p domain.Passenger) error {
	if strings.TrimSpace(p.Name) == "" {
		return invalid("Please enter name for all passengers")
	}
	if p.Age < 1 {
		return invalid("Please enter valid age for all passengers")
	}
	switch p.Gender {
	case domain.GenderMale, domain.GenderFemale, domain.GenderOther:
	default:
		return invalid("Please select gender for all passengers")
	}
	if !phoneRe.MatchString(p.Phone) {
		return invalid("Please enter valid phone number for all passengers")
	}
	if !emailRe.MatchString(p.Email) {
		return invalid("Please enter valid email for all passengers")
	}
	return nil
}

// ValidatePassengers requires a non-empty list where every entry passes
// ValidatePassenger.
func ValidatePassengers(passengers []domain.Passenger) error {
	if len(passengers) == 0 {
		return invalid("Please add passenger details")
	}
	for _, p := range passengers {
		if err := ValidatePassenger(p); err != nil {
			return err
		}
	}
	return nil
}

// ValidatePayment branches on the chosen method. An unset method is
// always invalid.
func ValidatePayment(d domain.PaymentDetails) error {
	switch d.Method {
	case domain.PayCard:
		if !cardRe.MatchString(d.CardNumber) {
			return invalid("Please enter a valid card number")
		}
		if !expiryRe.MatchString(d.ExpiryDate) {
			return invalid("Please enter a valid expiry date (MM/YY)")
		}
		if !cvvRe.MatchString(d.CVV) {
			return invalid("Please enter a valid CVV")
		}
		return nil
	case domain.PayUPI:
		if !upiRe.MatchString(d.UPIID) {
			return invalid("Please enter a valid UPI ID")
		}
		return nil
	case domain.PayWallet:
		if !domain.IsWalletProvider(d.WalletProvider) {
			return invalid("Please select a wallet provider")
		}
		return nil
	default:
		return invalid("Please select a payment method")
	}
}
