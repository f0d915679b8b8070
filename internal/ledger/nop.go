package ledger

import (
	"context"

	"github.com/savioruz/culturepay/pkg/constant"
	"github.com/savioruz/culturepay/pkg/logger"
	"github.com/savioruz/culturepay/pkg/record"
)

type nopLedger struct {
	logger logger.Interface
}

// NewNop returns a ledger that only logs. It is used when no durable sink is configured.
func NewNop(l logger.Interface) Ledger {
	return &nopLedger{logger: l}
}

func (n *nopLedger) Append(_ context.Context, rec record.PaymentRecord) (Result, error) {
	n.logger.Info("ledger - noop - append: " + rec.TransactionID)

	return Result{
		Driver:    constant.LedgerDriverNoop,
		Success:   true,
		Message:   "No ledger configured, payment logged only",
		Reference: rec.TransactionID,
	}, nil
}

func (n *nopLedger) ListAll(context.Context) ([]record.PaymentRecord, error) {
	return []record.PaymentRecord{}, nil
}

func (n *nopLedger) Driver() string {
	return constant.LedgerDriverNoop
}
