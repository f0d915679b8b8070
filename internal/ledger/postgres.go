package ledger

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/savioruz/culturepay/internal/ledger/repository"
	"github.com/savioruz/culturepay/pkg/constant"
	"github.com/savioruz/culturepay/pkg/helper"
	"github.com/savioruz/culturepay/pkg/logger"
	"github.com/savioruz/culturepay/pkg/postgres"
	"github.com/savioruz/culturepay/pkg/record"
)

const pgUniqueViolation = "23505"

type postgresLedger struct {
	db     postgres.PgxIface
	repo   repository.Querier
	logger logger.Interface
}

func NewPostgres(db postgres.PgxIface, repo repository.Querier, l logger.Interface) Ledger {
	return &postgresLedger{
		db:     db,
		repo:   repo,
		logger: l,
	}
}

func (p *postgresLedger) Append(ctx context.Context, rec record.PaymentRecord) (Result, error) {
	id, err := p.repo.InsertDonation(ctx, p.db, repository.InsertDonationParams{
		TransactionID:      rec.TransactionID,
		OrderID:            rec.OrderID,
		EventName:          rec.EventName,
		DonorName:          rec.DonorName,
		ContactNumber:      helper.PgString(rec.ContactNumber),
		Email:              helper.PgString(rec.Email),
		RepresentativeName: helper.PgString(rec.RepresentativeName),
		AmountPaise:        record.ToMinorUnits(rec.Amount),
		Currency:           rec.Currency,
		PaymentDate:        rec.PaymentDate,
		ValidDate:          helper.PgString(rec.PaymentValidDate),
		PaymentMethod:      helper.PgString(rec.PaymentMethod),
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return Result{}, fmt.Errorf("%w: %s", ErrDuplicateTransaction, rec.TransactionID)
		}

		return Result{}, fmt.Errorf("ledger: postgres: failed to insert donation: %w", err)
	}

	return Result{
		Driver:    constant.LedgerDriverPostgres,
		Success:   true,
		Message:   "Payment recorded in database",
		Reference: id,
	}, nil
}

func (p *postgresLedger) ListAll(ctx context.Context) ([]record.PaymentRecord, error) {
	rows, err := p.repo.ListDonations(ctx, p.db)
	if err != nil {
		return nil, fmt.Errorf("ledger: postgres: failed to list donations: %w", err)
	}

	records := make([]record.PaymentRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, record.PaymentRecord{
			TransactionID:      row.TransactionID,
			OrderID:            row.OrderID,
			EventName:          row.EventName,
			DonorName:          row.DonorName,
			ContactNumber:      helper.StringFromPg(row.ContactNumber),
			Email:              helper.StringFromPg(row.Email),
			RepresentativeName: helper.StringFromPg(row.RepresentativeName),
			Amount:             record.FromMinorUnits(row.AmountPaise),
			Currency:           row.Currency,
			PaymentDate:        row.PaymentDate,
			PaymentValidDate:   helper.StringFromPg(row.ValidDate),
			PaymentMethod:      helper.StringFromPg(row.PaymentMethod),
		})
	}

	return records, nil
}

func (p *postgresLedger) Driver() string {
	return constant.LedgerDriverPostgres
}
