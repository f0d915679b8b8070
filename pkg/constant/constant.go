package constant

import "time"

const (
	CacheParentKey = "culturepay"

	CacheKeyDonations = "donations"
)

const (
	CurrencyINR    = "INR"
	CurrencySymbol = "₹"

	// Gateway amounts are expressed in paise.
	MinorUnitsPerRupee = 100
)

const (
	DonationMinAmount     = 100
	DonationMaxAmount     = 100000
	DonationDefaultAmount = 500

	PaymentValidDefaultDays = 30
)

const (
	PaymentMethodUPI          = "UPI"
	PaymentMethodDebitCard    = "DEBIT_CARD"
	PaymentMethodCreditCard   = "CREDIT_CARD"
	PaymentMethodBankTransfer = "BANK_TRANSFER"
)

const (
	OutcomeRecorded   = "recorded"
	OutcomeUnrecorded = "unrecorded"
	OutcomeRejected   = "rejected"
	// OutcomeDuplicate labels replayed callbacks in metrics; the response still reports recorded.
	OutcomeDuplicate = "duplicate"
)

const (
	LedgerDriverNoop     = "noop"
	LedgerDriverSheets   = "sheets"
	LedgerDriverPostgres = "postgres"
	LedgerDriverDynamoDB = "dynamodb"
)

const (
	RequestHeaderRequestID = "X-Request-ID"
	RequestLocalRequestID  = "request_id"
)

const (
	FullDateFormat    = time.RFC3339
	DateFormat        = "2006-01-02"
	DisplayDateFormat = "02/01/2006"
)

const (
	UserRoleAdmin = "9"
)

const (
	JwtFieldUser  = "user_id"
	JwtFieldEmail = "email"
	JwtFieldLevel = "level"
)

const (
	PaginationDefaultLimit = 10
	PaginationDefaultPage  = 1
)
