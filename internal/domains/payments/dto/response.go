package dto

import (
	"github.com/savioruz/culturepay/internal/ledger"
	"github.com/savioruz/culturepay/pkg/record"
)

type CreateOrderResponse struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

// VerifyPaymentResponse reports a verified payment. Status is recorded or unrecorded; a rejected
// callback never produces this response.
type VerifyPaymentResponse struct {
	Success      bool                 `json:"success"`
	Status       string               `json:"status"`
	Recorded     bool                 `json:"recorded"`
	Message      string               `json:"message"`
	PaymentID    string               `json:"paymentId"`
	SheetsResult ledger.Result        `json:"sheetsResult"`
	Record       record.PaymentRecord `json:"record"`
}
