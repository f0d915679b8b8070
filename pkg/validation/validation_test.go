package validation

import (
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/savioruz/culturepay/pkg/record"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, time.October, 15, 10, 0, 0, 0, time.UTC)

func newTestValidator() *Validator {
	return New([]string{"Art Exhibition", "Winter Festival"}, WithClock(func() time.Time { return fixedNow }))
}

func validForm() record.PaymentFormData {
	form := record.NewPaymentForm(fixedNow)
	form.EventName = "Art Exhibition"
	form.DonorName = "Asha"

	return form
}

func TestValidatePhoneNumber(t *testing.T) {
	tests := []struct {
		phone string
		want  bool
	}{
		{"9876543210", true},
		{"98765 43210", true},
		{"98765-43210", true},
		{"6000000000", true},
		{"1234567890", false},
		{"98765432", false},
		{"98765432100", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.phone, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidatePhoneNumber(tt.phone))
		})
	}
}

func TestValidateEmail(t *testing.T) {
	assert.True(t, ValidateEmail("asha@example.com"))
	assert.True(t, ValidateEmail("a.b@c.co.in"))
	assert.False(t, ValidateEmail("asha@example"))
	assert.False(t, ValidateEmail("asha example@x.com"))
	assert.False(t, ValidateEmail("@example.com"))
	assert.False(t, ValidateEmail(""))
}

func TestValidateAmount(t *testing.T) {
	assert.True(t, ValidateAmount(100))
	assert.True(t, ValidateAmount(100000))
	assert.True(t, ValidateAmount(500.5))
	assert.False(t, ValidateAmount(99.99))
	assert.False(t, ValidateAmount(100000.01))
	assert.False(t, ValidateAmount(0))
}

func TestIsFutureDate(t *testing.T) {
	assert.True(t, IsFutureDate(fixedNow.Add(time.Minute), fixedNow))
	assert.False(t, IsFutureDate(fixedNow, fixedNow))
	assert.False(t, IsFutureDate(fixedNow.Add(-time.Hour), fixedNow))
}

func TestValidator_ValidatePaymentForm(t *testing.T) {
	v := newTestValidator()

	t.Run("success: defaults with event and donor", func(t *testing.T) {
		res := v.ValidatePaymentForm(validForm())

		assert.True(t, res.IsValid)
		assert.Empty(t, res.Errors)
	})

	t.Run("error: fresh form reports exactly the two required fields", func(t *testing.T) {
		res := v.ValidatePaymentForm(record.NewPaymentForm(fixedNow))

		assert.False(t, res.IsValid)
		assert.Equal(t, []string{MsgEventNameRequired, MsgDonorNameRequired}, res.Errors)
	})

	t.Run("error: every rule violated in field order", func(t *testing.T) {
		form := record.PaymentFormData{
			EventName:        "  ",
			DonorName:        "",
			ContactNumber:    "12345",
			Email:            "nope",
			Amount:           50,
			PaymentValidDate: fixedNow.AddDate(0, 0, -1),
		}

		res := v.ValidatePaymentForm(form)

		assert.False(t, res.IsValid)
		assert.Equal(t, []string{
			MsgEventNameRequired,
			MsgDonorNameRequired,
			MsgContactNumber,
			MsgEmail,
			MsgAmount,
			MsgPaymentValidDate,
		}, res.Errors)
	})

	t.Run("error: unknown event", func(t *testing.T) {
		form := validForm()
		form.EventName = "Unknown Gala"

		res := v.ValidatePaymentForm(form)

		assert.Equal(t, []string{MsgEventNameUnknown}, res.Errors)
	})

	t.Run("success: optional contact fields left empty", func(t *testing.T) {
		form := validForm()
		form.ContactNumber = ""
		form.Email = ""

		assert.True(t, v.ValidatePaymentForm(form).IsValid)
	})

	t.Run("success: verdict agrees with field checks", func(t *testing.T) {
		form := validForm()
		form.Amount = 100001

		res := v.ValidatePaymentForm(form)

		fieldErrs := 0
		for _, f := range fieldOrder {
			if v.ValidateField(form, f) != "" {
				fieldErrs++
			}
		}

		assert.Equal(t, fieldErrs, len(res.Errors))
		assert.Equal(t, fieldErrs == 0, res.IsValid)
	})
}

func TestValidator_ValidateField(t *testing.T) {
	v := newTestValidator()
	form := validForm()

	assert.Empty(t, v.ValidateField(form, FieldEventName))
	assert.Empty(t, v.ValidateField(form, FieldAmount))
	assert.Empty(t, v.ValidateField(form, Field("unknown")))

	form.Amount = 10
	assert.Equal(t, MsgAmount, v.ValidateField(form, FieldAmount))
}

func TestNew_EmptyCatalogAcceptsAnyName(t *testing.T) {
	v := New(nil)

	assert.True(t, v.IsKnownEvent("Anything"))
	assert.False(t, v.IsKnownEvent("   "))
}

func TestValidator_RegisterTags(t *testing.T) {
	v := newTestValidator()
	validate := validator.New(validator.WithRequiredStructEnabled())
	require.NoError(t, v.RegisterTags(validate))

	type payload struct {
		Event  string    `validate:"required,known_event"`
		Phone  string    `validate:"omitempty,in_phone"`
		Email  string    `validate:"omitempty,lite_email"`
		Amount float64   `validate:"donation_amount"`
		Paise  int64     `validate:"min=10000"`
		Until  time.Time `validate:"future"`
	}

	t.Run("success: valid payload", func(t *testing.T) {
		err := validate.Struct(payload{
			Event:  "Winter Festival",
			Phone:  "9876543210",
			Email:  "asha@example.com",
			Amount: 500,
			Paise:  50000,
			Until:  fixedNow.AddDate(0, 0, 1),
		})

		assert.NoError(t, err)
	})

	t.Run("error: invalid payload fails each tag", func(t *testing.T) {
		err := validate.Struct(payload{
			Event:  "Nope",
			Phone:  "1234567890",
			Email:  "bad",
			Amount: 1,
			Paise:  50000,
			Until:  fixedNow,
		})

		var verrs validator.ValidationErrors
		require.ErrorAs(t, err, &verrs)

		tags := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			tags = append(tags, fe.Tag())
		}

		assert.ElementsMatch(t, []string{TagKnownEvent, TagPhone, TagEmail, TagDonationAmount, TagFuture}, tags)
	})
}
