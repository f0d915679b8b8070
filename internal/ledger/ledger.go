// Package ledger appends verified donations to a durable sink and reads them back.
package ledger

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/savioruz/culturepay/pkg/record"
)

//go:generate go run go.uber.org/mock/mockgen -source=ledger.go -destination=mock/ledger_mock.go -package=mock github.com/savioruz/culturepay/internal/ledger Ledger
//go:generate go run go.uber.org/mock/mockgen -source=repository/querier.go -destination=mock/querier_mock.go -package=mock

// Columns is the fixed column order shared by every driver.
var Columns = []string{
	"transactionId",
	"orderId",
	"eventName",
	"donorName",
	"contactNumber",
	"email",
	"repName",
	"amount",
	"currency",
	"paymentDate",
	"validDate",
}

var (
	ErrShortRow = errors.New("ledger: row has fewer columns than expected")
	// ErrDuplicateTransaction means the payment id is already in the ledger.
	ErrDuplicateTransaction = errors.New("ledger: transaction already recorded")
)

type Result struct {
	Driver    string `json:"driver"`
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	Reference string `json:"reference,omitempty"`
}

type Ledger interface {
	Append(ctx context.Context, rec record.PaymentRecord) (Result, error)
	ListAll(ctx context.Context) ([]record.PaymentRecord, error)
	Driver() string
}

// Row maps a record onto the ledger columns.
func Row(rec record.PaymentRecord) []interface{} {
	return []interface{}{
		rec.TransactionID,
		rec.OrderID,
		rec.EventName,
		rec.DonorName,
		rec.ContactNumber,
		rec.Email,
		rec.RepresentativeName,
		rec.Amount,
		rec.Currency,
		rec.PaymentDate,
		rec.PaymentValidDate,
	}
}

// FromRow is the inverse of Row. Trailing empty cells may be omitted by the sheet, so only the
// first column is mandatory.
func FromRow(row []interface{}) (record.PaymentRecord, error) {
	if len(row) == 0 {
		return record.PaymentRecord{}, ErrShortRow
	}

	cell := func(i int) string {
		if i >= len(row) || row[i] == nil {
			return ""
		}

		return fmt.Sprint(row[i])
	}

	var amount float64

	if s := cell(7); s != "" {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return record.PaymentRecord{}, fmt.Errorf("ledger: invalid amount %q: %w", s, err)
		}

		amount = v
	}

	return record.PaymentRecord{
		TransactionID:      cell(0),
		OrderID:            cell(1),
		EventName:          cell(2),
		DonorName:          cell(3),
		ContactNumber:      cell(4),
		Email:              cell(5),
		RepresentativeName: cell(6),
		Amount:             amount,
		Currency:           cell(8),
		PaymentDate:        cell(9),
		PaymentValidDate:   cell(10),
	}, nil
}
