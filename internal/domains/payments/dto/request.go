package dto

import (
	"fmt"
	"strings"
	"time"

	"github.com/savioruz/culturepay/pkg/constant"
	"github.com/savioruz/culturepay/pkg/record"
)

// CreateOrderRequest carries the amount in paise.
type CreateOrderRequest struct {
	Amount    int64  `json:"amount" validate:"required,min=10000,max=10000000" example:"50000"`
	Currency  string `json:"currency" validate:"omitempty,oneof=INR" example:"INR"`
	EventName string `json:"eventName" validate:"required,known_event" example:"Art Exhibition"`
	DonorName string `json:"donorName" validate:"required" example:"Asha"`
}

// FormData is the donation form as posted by the clients. RepName and ValidDate are the
// names the older web form uses.
type FormData struct {
	EventName          string  `json:"eventName" example:"Art Exhibition"`
	DonorName          string  `json:"donorName" example:"Asha"`
	ContactNumber      string  `json:"contactNumber,omitempty" example:"9876543210"`
	Email              string  `json:"email,omitempty" example:"asha@example.com"`
	RepresentativeName string  `json:"representativeName,omitempty"`
	RepName            string  `json:"repName,omitempty"`
	PaymentValidDate   string  `json:"paymentValidDate,omitempty" example:"2026-11-14"`
	ValidDate          string  `json:"validDate,omitempty"`
	PaymentMethod      string  `json:"paymentMethod,omitempty" example:"UPI"`
	Amount             float64 `json:"amount" example:"500"`
}

var acceptedDateLayouts = []string{
	time.RFC3339,
	constant.DateFormat,
	constant.DisplayDateFormat,
}

// ToForm normalises the posted form. An empty date stays zero.
func (f FormData) ToForm() (record.PaymentFormData, error) {
	form := record.PaymentFormData{
		EventName:          f.EventName,
		DonorName:          f.DonorName,
		ContactNumber:      f.ContactNumber,
		Email:              f.Email,
		RepresentativeName: firstNonEmpty(f.RepresentativeName, f.RepName),
		PaymentMethod:      record.PaymentMethod(strings.ToUpper(strings.TrimSpace(f.PaymentMethod))),
		Amount:             f.Amount,
	}

	raw := strings.TrimSpace(firstNonEmpty(f.PaymentValidDate, f.ValidDate))
	if raw == "" {
		return form, nil
	}

	for _, layout := range acceptedDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			form.PaymentValidDate = t

			return form, nil
		}
	}

	return form, fmt.Errorf("invalid payment valid date %q", raw)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}

	return ""
}

// VerifyPaymentRequest is the checkout callback forwarded by the client. Amount is in rupees and
// falls back to the form amount when omitted.
type VerifyPaymentRequest struct {
	OrderID   string   `json:"razorpay_order_id" validate:"required" example:"order_Nk1"`
	PaymentID string   `json:"razorpay_payment_id" validate:"required" example:"pay_Nk1"`
	Signature string   `json:"razorpay_signature" validate:"required"`
	FormData  FormData `json:"formData"`
	Amount    float64  `json:"amount" validate:"omitempty,min=0" example:"500"`
}
