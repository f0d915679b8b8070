package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/savioruz/culturepay/config"
	"github.com/savioruz/culturepay/internal/domains/events/catalog"
	"github.com/savioruz/culturepay/internal/domains/payments/dto"
	"github.com/savioruz/culturepay/internal/ledger"
	ledgerMock "github.com/savioruz/culturepay/internal/ledger/mock"
	"github.com/savioruz/culturepay/pkg/failure"
	log "github.com/savioruz/culturepay/pkg/logger/mock"
	"github.com/savioruz/culturepay/pkg/mail"
	mailMock "github.com/savioruz/culturepay/pkg/mail/mock"
	"github.com/savioruz/culturepay/pkg/metrics"
	"github.com/savioruz/culturepay/pkg/razorpay"
	gatewayMock "github.com/savioruz/culturepay/pkg/razorpay/mock"
	"github.com/savioruz/culturepay/pkg/record"
	cacheMock "github.com/savioruz/culturepay/pkg/redis/mock"
	"github.com/savioruz/culturepay/pkg/signature"
	"github.com/savioruz/culturepay/pkg/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testSecret = "test_secret"

var fixedNow = time.Date(2026, time.October, 15, 10, 0, 0, 0, catalog.IST)

type deps struct {
	gateway *gatewayMock.MockGateway
	ledger  *ledgerMock.MockLedger
	cache   *cacheMock.MockIRedisCache
	mail    *mailMock.MockService
	logger  *log.MockInterface
}

func newTestService(t *testing.T, withMail bool) (*paymentService, deps) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	d := deps{
		gateway: gatewayMock.NewMockGateway(ctrl),
		ledger:  ledgerMock.NewMockLedger(ctrl),
		cache:   cacheMock.NewMockIRedisCache(ctrl),
		mail:    mailMock.NewMockService(ctrl),
		logger:  log.NewMockInterface(ctrl),
	}

	cfg := &config.Config{
		App:      config.App{Name: "Culture Trust"},
		Razorpay: config.Razorpay{KeyID: "rzp_test", KeySecret: testSecret},
		Ledger:   config.Ledger{Timeout: time.Second},
	}

	clock := func() time.Time { return fixedNow }
	v := validation.New(catalog.Names, validation.WithClock(clock))

	var m mail.Service
	if withMail {
		m = d.mail
	}

	svc := New(cfg, d.gateway, d.ledger, v, d.cache, m, metrics.New(), d.logger).(*paymentService)
	svc.now = clock

	return svc, d
}

func artExhibitionForm() dto.FormData {
	return dto.FormData{
		EventName:        "Art Exhibition",
		DonorName:        "Asha",
		PaymentMethod:    "UPI",
		PaymentValidDate: "2026-11-14",
		Amount:           500,
	}
}

func TestPaymentService_CreateOrder(t *testing.T) {
	ctx := context.Background()

	req := dto.CreateOrderRequest{
		Amount:    50000,
		EventName: "Art Exhibition",
		DonorName: " Asha ",
	}

	t.Run("success: order returned verbatim", func(t *testing.T) {
		svc, d := newTestService(t, false)

		d.gateway.EXPECT().
			CreateOrder(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, in razorpay.OrderRequest) (razorpay.Order, error) {
				assert.Equal(t, int64(50000), in.Amount)
				assert.Equal(t, "INR", in.Currency)
				assert.Equal(t, fmt.Sprintf("receipt_%d", fixedNow.UnixMilli()), in.Receipt)
				assert.Equal(t, map[string]string{"eventName": "Art Exhibition", "donorName": "Asha"}, in.Notes)

				return razorpay.Order{ID: "order_1", Amount: 50000, Currency: "INR", Status: "created"}, nil
			})

		res, err := svc.CreateOrder(ctx, req)

		require.NoError(t, err)
		assert.Equal(t, dto.CreateOrderResponse{ID: "order_1", Amount: 50000, Currency: "INR"}, res)
	})

	t.Run("error: gateway failure is not retried", func(t *testing.T) {
		svc, d := newTestService(t, false)

		d.gateway.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).Return(razorpay.Order{}, errors.New("bad key")).Times(1)
		d.logger.EXPECT().Error(gomock.Any(), gomock.Any())

		_, err := svc.CreateOrder(ctx, req)

		require.Error(t, err)
		assert.Equal(t, "Failed to create order", err.Error())
		assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
		assert.Equal(t, "bad key", failure.GetDetails(err))
	})
}

func TestPaymentService_VerifyPayment(t *testing.T) {
	ctx := context.Background()

	signed := func(form dto.FormData) dto.VerifyPaymentRequest {
		return dto.VerifyPaymentRequest{
			OrderID:   "order_1",
			PaymentID: "pay_1",
			Signature: signature.Sign("order_1", "pay_1", testSecret),
			FormData:  form,
			Amount:    500,
		}
	}

	t.Run("error: wrong signature appends nothing", func(t *testing.T) {
		svc, d := newTestService(t, false)
		d.logger.EXPECT().Warn(gomock.Any(), gomock.Any())

		req := signed(artExhibitionForm())
		req.Signature = signature.Sign("order_1", "pay_2", testSecret)

		_, err := svc.VerifyPayment(ctx, req)

		assert.ErrorIs(t, err, ErrInvalidSignature)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("error: signature of another length is rejected", func(t *testing.T) {
		svc, d := newTestService(t, false)
		d.logger.EXPECT().Warn(gomock.Any(), gomock.Any())

		req := signed(artExhibitionForm())
		req.Signature = "abc"

		_, err := svc.VerifyPayment(ctx, req)

		assert.ErrorIs(t, err, ErrInvalidSignature)
	})

	t.Run("success: recorded", func(t *testing.T) {
		svc, d := newTestService(t, false)

		d.ledger.EXPECT().Driver().Return("sheets").AnyTimes()
		d.ledger.EXPECT().
			Append(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, rec record.PaymentRecord) (ledger.Result, error) {
				_, hasDeadline := ctx.Deadline()
				assert.True(t, hasDeadline)

				return ledger.Result{Driver: "sheets", Success: true, Message: "appended", Reference: "Sheet1!A2:K2"}, nil
			})
		d.cache.EXPECT().Clear(gomock.Any(), "culturepay:cache:donations:*").Return(nil)

		res, err := svc.VerifyPayment(ctx, signed(artExhibitionForm()))

		require.NoError(t, err)
		assert.True(t, res.Success)
		assert.True(t, res.Recorded)
		assert.Equal(t, "recorded", res.Status)
		assert.Equal(t, MsgRecorded, res.Message)
		assert.Equal(t, "pay_1", res.PaymentID)
		assert.Equal(t, "Sheet1!A2:K2", res.SheetsResult.Reference)

		assert.Equal(t, "pay_1", res.Record.TransactionID)
		assert.Equal(t, "order_1", res.Record.OrderID)
		assert.Equal(t, "Art Exhibition", res.Record.EventName)
		assert.Equal(t, "Asha", res.Record.DonorName)
		assert.Equal(t, 500.0, res.Record.Amount)
		assert.Equal(t, "INR", res.Record.Currency)
		assert.Equal(t, "UPI", res.Record.PaymentMethod)
		assert.Equal(t, "15/10/2026", res.Record.PaymentDate)
		assert.Equal(t, "14/11/2026", res.Record.PaymentValidDate)
	})

	t.Run("success: ledger failure is reported as unrecorded", func(t *testing.T) {
		svc, d := newTestService(t, false)

		d.ledger.EXPECT().Driver().Return("postgres").AnyTimes()
		d.ledger.EXPECT().Append(gomock.Any(), gomock.Any()).Return(ledger.Result{}, errors.New("connection refused"))
		d.logger.EXPECT().Error(gomock.Any(), gomock.Any())

		res, err := svc.VerifyPayment(ctx, signed(artExhibitionForm()))

		require.NoError(t, err)
		assert.True(t, res.Success)
		assert.False(t, res.Recorded)
		assert.Equal(t, "unrecorded", res.Status)
		assert.Equal(t, MsgUnrecorded, res.Message)
		assert.False(t, res.SheetsResult.Success)
		assert.Equal(t, "connection refused", res.SheetsResult.Message)
		assert.Equal(t, "pay_1", res.Record.TransactionID)
	})

	t.Run("success: replayed callback reports the earlier recording", func(t *testing.T) {
		svc, d := newTestService(t, true)

		form := artExhibitionForm()
		form.Email = "asha@example.com"

		d.ledger.EXPECT().Driver().Return("postgres").AnyTimes()
		d.ledger.EXPECT().
			Append(gomock.Any(), gomock.Any()).
			Return(ledger.Result{}, fmt.Errorf("%w: pay_1", ledger.ErrDuplicateTransaction))
		d.logger.EXPECT().Warn(gomock.Any(), gomock.Any())

		res, err := svc.VerifyPayment(ctx, signed(form))

		require.NoError(t, err)
		assert.True(t, res.Success)
		assert.True(t, res.Recorded)
		assert.Equal(t, "recorded", res.Status)
		assert.Equal(t, MsgDuplicate, res.Message)
		assert.True(t, res.SheetsResult.Success)
		assert.Equal(t, "pay_1", res.SheetsResult.Reference)
		assert.Equal(t, "pay_1", res.PaymentID)
	})

	t.Run("success: legacy field names and amount fallback", func(t *testing.T) {
		svc, d := newTestService(t, false)

		form := artExhibitionForm()
		form.PaymentValidDate = ""
		form.ValidDate = "14/11/2026"
		form.RepName = "Ravi"
		form.Amount = 750

		req := signed(form)
		req.Amount = 0

		d.ledger.EXPECT().Driver().Return("noop").AnyTimes()
		d.ledger.EXPECT().Append(gomock.Any(), gomock.Any()).Return(ledger.Result{Success: true}, nil)
		d.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil)

		res, err := svc.VerifyPayment(ctx, req)

		require.NoError(t, err)
		assert.Equal(t, 750.0, res.Record.Amount)
		assert.Equal(t, "Ravi", res.Record.RepresentativeName)
		assert.Equal(t, "14/11/2026", res.Record.PaymentValidDate)
	})

	t.Run("success: unreadable date is dropped", func(t *testing.T) {
		svc, d := newTestService(t, false)

		form := artExhibitionForm()
		form.PaymentValidDate = "next month"

		d.logger.EXPECT().Warn(gomock.Any(), gomock.Any())
		d.ledger.EXPECT().Driver().Return("noop").AnyTimes()
		d.ledger.EXPECT().Append(gomock.Any(), gomock.Any()).Return(ledger.Result{Success: true}, nil)
		d.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(errors.New("redis down"))
		d.logger.EXPECT().Warn(gomock.Any(), gomock.Any())

		res, err := svc.VerifyPayment(ctx, signed(form))

		require.NoError(t, err)
		assert.True(t, res.Recorded)
		assert.Empty(t, res.Record.PaymentValidDate)
	})

	t.Run("success: receipt mailed to the donor", func(t *testing.T) {
		svc, d := newTestService(t, true)

		form := artExhibitionForm()
		form.Email = "asha@example.com"

		sent := make(chan mail.DonationReceiptData, 1)

		d.ledger.EXPECT().Driver().Return("noop").AnyTimes()
		d.ledger.EXPECT().Append(gomock.Any(), gomock.Any()).Return(ledger.Result{Success: true}, nil)
		d.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil)
		d.mail.EXPECT().
			SendDonationReceipt("asha@example.com", gomock.Any()).
			DoAndReturn(func(_ string, data mail.DonationReceiptData) error {
				sent <- data

				return nil
			})

		_, err := svc.VerifyPayment(ctx, signed(form))
		require.NoError(t, err)

		select {
		case data := <-sent:
			assert.Equal(t, "pay_1", data.TransactionID)
			assert.Equal(t, "₹500.00", data.Amount)
			assert.Equal(t, "Culture Trust", data.OrganisationName)
			assert.Contains(t, data.Summary, "Transaction ID: pay_1")
		case <-time.After(time.Second):
			t.Fatal("receipt was not sent")
		}
	})
}

func TestPaymentService_ValidatePayment(t *testing.T) {
	ctx := context.Background()

	t.Run("success: fresh form reports the two required fields", func(t *testing.T) {
		svc, _ := newTestService(t, false)

		res, err := svc.ValidatePayment(ctx, dto.FormData{
			PaymentMethod:    "UPI",
			PaymentValidDate: fixedNow.AddDate(0, 0, 30).Format(time.RFC3339),
			Amount:           500,
		})

		require.NoError(t, err)
		assert.False(t, res.IsValid)
		assert.Equal(t, []string{validation.MsgEventNameRequired, validation.MsgDonorNameRequired}, res.Errors)
	})

	t.Run("success: complete form", func(t *testing.T) {
		svc, _ := newTestService(t, false)

		res, err := svc.ValidatePayment(ctx, artExhibitionForm())

		require.NoError(t, err)
		assert.True(t, res.IsValid)
	})

	t.Run("error: unreadable date", func(t *testing.T) {
		svc, d := newTestService(t, false)
		d.logger.EXPECT().Error(gomock.Any(), gomock.Any())

		form := artExhibitionForm()
		form.PaymentValidDate = "soon"

		_, err := svc.ValidatePayment(ctx, form)

		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})
}

// Order creation followed by a correctly signed callback for the same order.
func TestPaymentService_OrderThenVerify(t *testing.T) {
	ctx := context.Background()
	svc, d := newTestService(t, false)

	d.gateway.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).Return(razorpay.Order{ID: "order_Nk1", Amount: 50000, Currency: "INR"}, nil)
	d.ledger.EXPECT().Driver().Return("noop").AnyTimes()
	d.ledger.EXPECT().Append(gomock.Any(), gomock.Any()).Return(ledger.Result{Driver: "noop", Success: true}, nil)
	d.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil)

	order, err := svc.CreateOrder(ctx, dto.CreateOrderRequest{Amount: 50000, EventName: "Art Exhibition", DonorName: "Asha"})
	require.NoError(t, err)

	res, err := svc.VerifyPayment(ctx, dto.VerifyPaymentRequest{
		OrderID:   order.ID,
		PaymentID: "pay_Nk1",
		Signature: signature.Sign(order.ID, "pay_Nk1", testSecret),
		FormData:  artExhibitionForm(),
		Amount:    500,
	})

	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, "pay_Nk1", res.Record.TransactionID)
}
