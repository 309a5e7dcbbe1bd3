package qrcode

// QRData is the payment request a payer's app submits after scanning the code.
type QRData struct {
	DebtorAccount string `json:"debtor_account_number"`
	Amount        string `json:"amount"`
	PaymentScheme string `json:"payment_scheme"`
}

type Generator interface {
	Generate(data QRData) ([]byte, error)
}
