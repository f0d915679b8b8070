package dto

import (
	"strings"

	"github.com/savioruz/culturepay/pkg/gdto"
	"github.com/savioruz/culturepay/pkg/helper"
	"github.com/savioruz/culturepay/pkg/record"
)

type ListDonationsRequest struct {
	gdto.PaginationRequest
	EventName string `query:"event_name" json:"event_name"`
}

type DonationsResponse struct {
	Donations   []record.PaymentRecord  `json:"donations"`
	TotalAmount string                  `json:"total_amount"`
	Pagination  gdto.PaginationResponse `json:"pagination"`
}

// FromRecords filters by event, sums the amounts and cuts the requested page. Newest donations come first.
func (d *DonationsResponse) FromRecords(records []record.PaymentRecord, req ListDonationsRequest) {
	page, limit := helper.DefaultPagination(req.Page, req.Limit)

	filtered := make([]record.PaymentRecord, 0, len(records))
	total := 0.0

	for i := len(records) - 1; i >= 0; i-- {
		rec := records[i]
		if req.EventName != "" && !strings.EqualFold(rec.EventName, strings.TrimSpace(req.EventName)) {
			continue
		}

		filtered = append(filtered, rec)
		total += rec.Amount
	}

	d.Donations = helper.Paginate(filtered, page, limit)
	d.TotalAmount = record.FormatCurrency(total)
	d.Pagination = gdto.PaginationResponse{
		Page:       page,
		Limit:      limit,
		TotalItems: len(filtered),
		TotalPages: helper.CalculateTotalPages(len(filtered), limit),
	}
}
