package domain

type PaymentMethod string

const (
	PayCard   PaymentMethod = "card"
	PayUPI    PaymentMethod = "upi"
	PayWallet PaymentMethod = "wallet"
	PayUnset  PaymentMethod = ""
)

// WalletProviders is the fixed set a wallet payment may choose from.
var WalletProviders = []string{"paytm", "phonepe", "amazonpay", "mobikwik"}

// IsWalletProvider reports whether name is one of WalletProviders.
func IsWalletProvider(name string) bool {
	for _, p := range WalletProviders {
		if p == name {
			return true
		}
	}
	return false
}

// PaymentDetails is transient checkout input. It is validated, handed to
// the payment gateway, and discarded; it never lands on a Booking.
type PaymentDetails struct {
	Method         PaymentMethod `json:"method"`
	CardNumber     string        `json:"cardNumber,omitempty"`
	ExpiryDate     string        `json:"expiryDate,omitempty"`
	CVV            string        `json:"cvv,omitempty"`
	UPIID          string        `json:"upiId,omitempty"`
	WalletProvider string        `json:"walletProvider,omitempty"`
}
