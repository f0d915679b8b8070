package ledger

import (
	"context"
	"fmt"

	"github.com/savioruz/culturepay/pkg/constant"
	"github.com/savioruz/culturepay/pkg/logger"
	"github.com/savioruz/culturepay/pkg/record"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

const (
	AppendRange = "Sheet1!A:K"
	ReadRange   = "Sheet1!A2:K"

	valueInputRaw      = "RAW"
	insertDataAsRows   = "INSERT_ROWS"
	sheetsSuccessLabel = "Payment recorded in Google Sheets"
)

type sheetsLedger struct {
	values        *sheets.SpreadsheetsValuesService
	spreadsheetID string
	logger        logger.Interface
}

func NewSheets(ctx context.Context, spreadsheetID string, l logger.Interface, opts ...option.ClientOption) (Ledger, error) {
	if spreadsheetID == "" {
		return nil, fmt.Errorf("ledger: sheets: spreadsheet id is required")
	}

	svc, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("ledger: sheets: failed to create service: %w", err)
	}

	return &sheetsLedger{
		values:        svc.Spreadsheets.Values,
		spreadsheetID: spreadsheetID,
		logger:        l,
	}, nil
}

func (s *sheetsLedger) Append(ctx context.Context, rec record.PaymentRecord) (Result, error) {
	body := &sheets.ValueRange{
		Values: [][]interface{}{Row(rec)},
	}

	resp, err := s.values.Append(s.spreadsheetID, AppendRange, body).
		ValueInputOption(valueInputRaw).
		InsertDataOption(insertDataAsRows).
		Context(ctx).
		Do()
	if err != nil {
		return Result{}, fmt.Errorf("ledger: sheets: append failed: %w", err)
	}

	reference := ""
	if resp.Updates != nil {
		reference = resp.Updates.UpdatedRange
	}

	s.logger.Debug("ledger - sheets - appended " + rec.TransactionID + " at " + reference)

	return Result{
		Driver:    constant.LedgerDriverSheets,
		Success:   true,
		Message:   sheetsSuccessLabel,
		Reference: reference,
	}, nil
}

func (s *sheetsLedger) ListAll(ctx context.Context) ([]record.PaymentRecord, error) {
	resp, err := s.values.Get(s.spreadsheetID, ReadRange).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("ledger: sheets: read failed: %w", err)
	}

	records := make([]record.PaymentRecord, 0, len(resp.Values))

	for i, row := range resp.Values {
		rec, err := FromRow(row)
		if err != nil {
			s.logger.Warn(fmt.Sprintf("ledger - sheets - skipping row %d: %v", i+2, err))

			continue
		}

		records = append(records, rec)
	}

	return records, nil
}

func (s *sheetsLedger) Driver() string {
	return constant.LedgerDriverSheets
}
