// Package validation holds the donation form rules shared by every client and by the HTTP layer.
package validation

import (
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/savioruz/culturepay/pkg/record"
)

type Field string

const (
	FieldEventName        Field = "eventName"
	FieldDonorName        Field = "donorName"
	FieldContactNumber    Field = "contactNumber"
	FieldEmail            Field = "email"
	FieldAmount           Field = "amount"
	FieldPaymentValidDate Field = "paymentValidDate"
)

// fieldOrder is the order errors are reported in.
var fieldOrder = []Field{
	FieldEventName,
	FieldDonorName,
	FieldContactNumber,
	FieldEmail,
	FieldAmount,
	FieldPaymentValidDate,
}

const (
	MsgEventNameRequired = "Event name is required"
	MsgEventNameUnknown  = "Event name must be one of the scheduled events"
	MsgDonorNameRequired = "Donor name is required"
	MsgContactNumber     = "Invalid contact number format (10-digit Indian phone number required)"
	MsgEmail             = "Invalid email format"
	MsgAmount            = "Amount must be between ₹100 and ₹100,000"
	MsgPaymentValidDate  = "Payment valid date must be in the future"
)

const (
	TagPhone          = "in_phone"
	TagEmail          = "lite_email"
	TagKnownEvent     = "known_event"
	TagDonationAmount = "donation_amount"
	TagFuture         = "future"
)

type Result struct {
	IsValid bool     `json:"isValid"`
	Errors  []string `json:"errors"`
}

type Validator struct {
	events map[string]struct{}
	now    func() time.Time
}

type Option func(*Validator)

func WithClock(now func() time.Time) Option {
	return func(v *Validator) {
		v.now = now
	}
}

// New builds a validator restricted to the given event names. An empty list accepts any non-blank name.
func New(events []string, opts ...Option) *Validator {
	v := &Validator{
		events: make(map[string]struct{}, len(events)),
		now:    time.Now,
	}

	for _, e := range events {
		v.events[e] = struct{}{}
	}

	for _, opt := range opts {
		opt(v)
	}

	return v
}

func (v *Validator) IsKnownEvent(name string) bool {
	if len(v.events) == 0 {
		return strings.TrimSpace(name) != ""
	}

	_, ok := v.events[strings.TrimSpace(name)]

	return ok
}

// ValidateField checks one field and returns its error message, or "" when the field is valid.
func (v *Validator) ValidateField(form record.PaymentFormData, field Field) string {
	switch field {
	case FieldEventName:
		if strings.TrimSpace(form.EventName) == "" {
			return MsgEventNameRequired
		}

		if !v.IsKnownEvent(form.EventName) {
			return MsgEventNameUnknown
		}
	case FieldDonorName:
		if strings.TrimSpace(form.DonorName) == "" {
			return MsgDonorNameRequired
		}
	case FieldContactNumber:
		if form.ContactNumber != "" && !ValidatePhoneNumber(form.ContactNumber) {
			return MsgContactNumber
		}
	case FieldEmail:
		if form.Email != "" && !ValidateEmail(form.Email) {
			return MsgEmail
		}
	case FieldAmount:
		if !ValidateAmount(form.Amount) {
			return MsgAmount
		}
	case FieldPaymentValidDate:
		if !IsFutureDate(form.PaymentValidDate, v.now()) {
			return MsgPaymentValidDate
		}
	}

	return ""
}

// ValidatePaymentForm reports every violated rule, in field order.
func (v *Validator) ValidatePaymentForm(form record.PaymentFormData) Result {
	errs := make([]string, 0)

	for _, field := range fieldOrder {
		if msg := v.ValidateField(form, field); msg != "" {
			errs = append(errs, msg)
		}
	}

	return Result{
		IsValid: len(errs) == 0,
		Errors:  errs,
	}
}

// RegisterTags exposes the form rules as validator tags.
func (v *Validator) RegisterTags(validate *validator.Validate) error {
	tags := map[string]validator.Func{
		TagPhone: func(fl validator.FieldLevel) bool {
			return ValidatePhoneNumber(fl.Field().String())
		},
		TagEmail: func(fl validator.FieldLevel) bool {
			return ValidateEmail(fl.Field().String())
		},
		TagKnownEvent: func(fl validator.FieldLevel) bool {
			return v.IsKnownEvent(fl.Field().String())
		},
		TagDonationAmount: func(fl validator.FieldLevel) bool {
			amount, ok := numeric(fl)

			return ok && ValidateAmount(amount)
		},
		TagFuture: func(fl validator.FieldLevel) bool {
			t, ok := fl.Field().Interface().(time.Time)

			return ok && IsFutureDate(t, v.now())
		},
	}

	for tag, fn := range tags {
		if err := validate.RegisterValidation(tag, fn); err != nil {
			return err
		}
	}

	return nil
}

func numeric(fl validator.FieldLevel) (float64, bool) {
	f := fl.Field()

	switch f.Kind() {
	case reflect.Float32, reflect.Float64:
		return f.Float(), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(f.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(f.Uint()), true
	default:
		return 0, false
	}
}
