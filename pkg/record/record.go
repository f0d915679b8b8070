package record

import (
	"fmt"
	"math"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/savioruz/culturepay/pkg/constant"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

type PaymentMethod string

const (
	PaymentMethodUPI          PaymentMethod = constant.PaymentMethodUPI
	PaymentMethodDebitCard    PaymentMethod = constant.PaymentMethodDebitCard
	PaymentMethodCreditCard   PaymentMethod = constant.PaymentMethodCreditCard
	PaymentMethodBankTransfer PaymentMethod = constant.PaymentMethodBankTransfer
)

var PaymentMethods = []PaymentMethod{
	PaymentMethodUPI,
	PaymentMethodDebitCard,
	PaymentMethodCreditCard,
	PaymentMethodBankTransfer,
}

func (m PaymentMethod) Valid() bool {
	for _, pm := range PaymentMethods {
		if m == pm {
			return true
		}
	}

	return false
}

type PaymentFormData struct {
	EventName          string        `json:"eventName"`
	DonorName          string        `json:"donorName"`
	ContactNumber      string        `json:"contactNumber,omitempty"`
	Email              string        `json:"email,omitempty"`
	RepresentativeName string        `json:"representativeName,omitempty"`
	PaymentValidDate   time.Time     `json:"paymentValidDate"`
	PaymentMethod      PaymentMethod `json:"paymentMethod"`
	Amount             float64       `json:"amount"`
}

type PaymentRecord struct {
	TransactionID      string  `json:"transactionId"`
	OrderID            string  `json:"orderId,omitempty"`
	EventName          string  `json:"eventName"`
	DonorName          string  `json:"donorName"`
	ContactNumber      string  `json:"contactNumber,omitempty"`
	Email              string  `json:"email,omitempty"`
	RepresentativeName string  `json:"representativeName,omitempty"`
	Amount             float64 `json:"amount"`
	Currency           string  `json:"currency"`
	PaymentValidDate   string  `json:"paymentValidDate"`
	PaymentDate        string  `json:"paymentDate"`
	PaymentMethod      string  `json:"paymentMethod,omitempty"`
}

// NewPaymentForm returns the values a fresh donation form starts with.
func NewPaymentForm(now time.Time) PaymentFormData {
	return PaymentFormData{
		PaymentValidDate: now.AddDate(0, 0, constant.PaymentValidDefaultDays),
		PaymentMethod:    PaymentMethodUPI,
		Amount:           constant.DonationDefaultAmount,
	}
}

const transactionSuffixRange = 10000

// GenerateTransactionID returns a display reference, not a security token.
func GenerateTransactionID() string {
	return fmt.Sprintf("TXN-%d-%d", time.Now().UnixMilli(), rand.IntN(transactionSuffixRange))
}

var currencyPrinter = message.NewPrinter(language.English)

// FormatCurrency renders an amount with two fraction digits, grouping every three integer digits.
func FormatCurrency(amount float64) string {
	return constant.CurrencySymbol + currencyPrinter.Sprintf("%.2f", amount)
}

func FormatDate(t time.Time) string {
	return t.Format(constant.DisplayDateFormat)
}

// CreatePaymentRecord converts the form into a ledger record. It performs no I/O.
func CreatePaymentRecord(form PaymentFormData, now time.Time) PaymentRecord {
	return PaymentRecord{
		TransactionID:      GenerateTransactionID(),
		EventName:          strings.TrimSpace(form.EventName),
		DonorName:          strings.TrimSpace(form.DonorName),
		ContactNumber:      strings.TrimSpace(form.ContactNumber),
		Email:              strings.TrimSpace(form.Email),
		RepresentativeName: strings.TrimSpace(form.RepresentativeName),
		Amount:             form.Amount,
		Currency:           constant.CurrencyINR,
		PaymentValidDate:   formatOptionalDate(form.PaymentValidDate),
		PaymentDate:        FormatDate(now),
		PaymentMethod:      string(form.PaymentMethod),
	}
}

func formatOptionalDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}

	return FormatDate(t)
}

func FormatPaymentRecord(r PaymentRecord) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Transaction ID: %s\n", r.TransactionID)
	fmt.Fprintf(&b, "Event: %s\n", r.EventName)
	fmt.Fprintf(&b, "Donor: %s\n", r.DonorName)
	fmt.Fprintf(&b, "Amount: %s %s\n", FormatCurrency(r.Amount), r.Currency)

	if r.PaymentMethod != "" {
		fmt.Fprintf(&b, "Payment Method: %s\n", r.PaymentMethod)
	}

	fmt.Fprintf(&b, "Date: %s\n", r.PaymentDate)
	fmt.Fprintf(&b, "Valid Until: %s", r.PaymentValidDate)

	return b.String()
}

// ToMinorUnits converts rupees to paise, rounding to the nearest paisa.
func ToMinorUnits(amount float64) int64 {
	return int64(math.Round(amount * constant.MinorUnitsPerRupee))
}

func FromMinorUnits(amount int64) float64 {
	return float64(amount) / constant.MinorUnitsPerRupee
}
