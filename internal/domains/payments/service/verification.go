package service

import (
	"context"
	"errors"

	"github.com/savioruz/culturepay/internal/domains/payments/dto"
	"github.com/savioruz/culturepay/internal/ledger"
	"github.com/savioruz/culturepay/pkg/constant"
	"github.com/savioruz/culturepay/pkg/failure"
	"github.com/savioruz/culturepay/pkg/helper"
	"github.com/savioruz/culturepay/pkg/mail"
	"github.com/savioruz/culturepay/pkg/record"
	"github.com/savioruz/culturepay/pkg/signature"
)

var ErrInvalidSignature = failure.BadRequestFromString("Invalid signature")

const (
	MsgRecorded   = "Payment verified and recorded successfully"
	MsgUnrecorded = "Payment verified but could not be recorded, please keep the payment ID for reference"
	MsgDuplicate  = "Payment already verified and recorded"
)

// VerifyPayment checks the callback signature and appends the donation to the ledger. A ledger failure
// after a valid signature still succeeds, reported as unrecorded. A replayed callback reports the
// earlier recording and sends no second receipt.
func (s *paymentService) VerifyPayment(ctx context.Context, req dto.VerifyPaymentRequest) (res dto.VerifyPaymentResponse, err error) {
	if !signature.Verify(req.OrderID, req.PaymentID, req.Signature, s.cfg.Razorpay.KeySecret) {
		s.logger.Warn(identifier, "VerifyPayment - signature mismatch for order "+req.OrderID)
		s.metrics.ObserveVerification(constant.OutcomeRejected)

		return res, ErrInvalidSignature
	}

	form, err := req.FormData.ToForm()
	if err != nil {
		// keep the record without the unreadable date
		s.logger.Warn(identifier, "VerifyPayment - "+err.Error())
	}

	if req.Amount > 0 {
		form.Amount = req.Amount
	}

	rec := record.CreatePaymentRecord(form, s.now())
	rec.TransactionID = req.PaymentID
	rec.OrderID = req.OrderID

	result, err := s.append(ctx, rec)

	res = dto.VerifyPaymentResponse{
		Success:      true,
		PaymentID:    req.PaymentID,
		SheetsResult: result,
		Record:       rec,
	}

	if errors.Is(err, ledger.ErrDuplicateTransaction) {
		s.logger.Warn(identifier, "VerifyPayment - payment "+req.PaymentID+" already recorded")
		s.metrics.ObserveVerification(constant.OutcomeDuplicate)

		res.SheetsResult = ledger.Result{
			Driver:    s.ledger.Driver(),
			Success:   true,
			Message:   MsgDuplicate,
			Reference: req.PaymentID,
		}
		res.Status = constant.OutcomeRecorded
		res.Recorded = true
		res.Message = MsgDuplicate

		return res, nil
	}

	if err != nil {
		s.logger.Error(identifier, "VerifyPayment - ledger append failed for payment "+req.PaymentID+": "+err.Error())
		s.metrics.ObserveVerification(constant.OutcomeUnrecorded)

		res.Status = constant.OutcomeUnrecorded
		res.Message = MsgUnrecorded

		return res, nil
	}

	s.metrics.ObserveVerification(constant.OutcomeRecorded)

	res.Status = constant.OutcomeRecorded
	res.Recorded = true
	res.Message = MsgRecorded

	if err := s.cache.Clear(ctx, helper.BuildCacheKey(constant.CacheKeyDonations, "*")); err != nil {
		s.logger.Warn(identifier, "VerifyPayment - failed to clear donations cache: "+err.Error())
	}

	s.sendReceipt(rec)

	return res, nil
}

func (s *paymentService) append(ctx context.Context, rec record.PaymentRecord) (ledger.Result, error) {
	if s.cfg.Ledger.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.Ledger.Timeout)

		defer cancel()
	}

	result, err := s.ledger.Append(ctx, rec)
	s.metrics.ObserveLedgerWrite(s.ledger.Driver(), err)

	if err != nil {
		return ledger.Result{
			Driver:  s.ledger.Driver(),
			Success: false,
			Message: err.Error(),
		}, err
	}

	return result, nil
}

func (s *paymentService) sendReceipt(rec record.PaymentRecord) {
	if s.mail == nil || rec.Email == "" {
		return
	}

	data := mail.DonationReceiptData{
		DonorName:        rec.DonorName,
		EventName:        rec.EventName,
		TransactionID:    rec.TransactionID,
		Amount:           record.FormatCurrency(rec.Amount),
		PaymentMethod:    rec.PaymentMethod,
		PaymentDate:      rec.PaymentDate,
		ValidUntil:       rec.PaymentValidDate,
		Summary:          record.FormatPaymentRecord(rec),
		OrganisationName: s.cfg.App.Name,
	}

	go func() {
		if err := s.mail.SendDonationReceipt(rec.Email, data); err != nil {
			s.logger.Error(identifier, "sendReceipt - failed to send receipt for "+rec.TransactionID+": "+err.Error())
		}
	}()
}
