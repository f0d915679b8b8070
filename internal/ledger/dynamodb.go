package ledger

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	dynamodbtypes "github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/savioruz/culturepay/pkg/constant"
	"github.com/savioruz/culturepay/pkg/logger"
	"github.com/savioruz/culturepay/pkg/record"
)

// DynamoAPI is the part of *dynamodb.Client the ledger needs.
type DynamoAPI interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
}

type donationItem struct {
	TransactionID      string  `dynamodbav:"transaction_id"`
	OrderID            string  `dynamodbav:"order_id"`
	EventName          string  `dynamodbav:"event_name"`
	DonorName          string  `dynamodbav:"donor_name"`
	ContactNumber      string  `dynamodbav:"contact_number,omitempty"`
	Email              string  `dynamodbav:"email,omitempty"`
	RepresentativeName string  `dynamodbav:"representative_name,omitempty"`
	Amount             float64 `dynamodbav:"amount"`
	Currency           string  `dynamodbav:"currency"`
	PaymentDate        string  `dynamodbav:"payment_date"`
	ValidDate          string  `dynamodbav:"valid_date,omitempty"`
	PaymentMethod      string  `dynamodbav:"payment_method,omitempty"`
	RecordedAt         string  `dynamodbav:"recorded_at"`
}

type dynamoLedger struct {
	client    DynamoAPI
	tableName string
	logger    logger.Interface
	now       func() time.Time
}

func NewDynamoDB(client DynamoAPI, tableName string, l logger.Interface) (Ledger, error) {
	if tableName == "" {
		return nil, fmt.Errorf("ledger: dynamodb: table name is required")
	}

	return &dynamoLedger{
		client:    client,
		tableName: tableName,
		logger:    l,
		now:       time.Now,
	}, nil
}

func (d *dynamoLedger) Append(ctx context.Context, rec record.PaymentRecord) (Result, error) {
	item, err := attributevalue.MarshalMap(donationItem{
		TransactionID:      rec.TransactionID,
		OrderID:            rec.OrderID,
		EventName:          rec.EventName,
		DonorName:          rec.DonorName,
		ContactNumber:      rec.ContactNumber,
		Email:              rec.Email,
		RepresentativeName: rec.RepresentativeName,
		Amount:             rec.Amount,
		Currency:           rec.Currency,
		PaymentDate:        rec.PaymentDate,
		ValidDate:          rec.PaymentValidDate,
		PaymentMethod:      rec.PaymentMethod,
		RecordedAt:         d.now().UTC().Format(constant.FullDateFormat),
	})
	if err != nil {
		return Result{}, fmt.Errorf("ledger: dynamodb: failed to marshal donation: %w", err)
	}

	_, err = d.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(d.tableName),
		Item:                item,
		ConditionExpression: aws.String("attribute_not_exists(transaction_id)"),
	})
	if err != nil {
		var conditional *dynamodbtypes.ConditionalCheckFailedException
		if errors.As(err, &conditional) {
			return Result{}, fmt.Errorf("%w: %s", ErrDuplicateTransaction, rec.TransactionID)
		}

		return Result{}, fmt.Errorf("ledger: dynamodb: failed to put donation: %w", err)
	}

	d.logger.Debug("ledger - dynamodb - saved " + rec.TransactionID)

	return Result{
		Driver:    constant.LedgerDriverDynamoDB,
		Success:   true,
		Message:   "Payment recorded in DynamoDB",
		Reference: rec.TransactionID,
	}, nil
}

func (d *dynamoLedger) ListAll(ctx context.Context) ([]record.PaymentRecord, error) {
	items := make([]donationItem, 0)

	var lastEvaluatedKey map[string]dynamodbtypes.AttributeValue

	for {
		input := &dynamodb.ScanInput{
			TableName: aws.String(d.tableName),
		}
		if lastEvaluatedKey != nil {
			input.ExclusiveStartKey = lastEvaluatedKey
		}

		result, err := d.client.Scan(ctx, input)
		if err != nil {
			return nil, fmt.Errorf("ledger: dynamodb: failed to scan donations: %w", err)
		}

		page := make([]donationItem, 0, len(result.Items))
		if err := attributevalue.UnmarshalListOfMaps(result.Items, &page); err != nil {
			return nil, fmt.Errorf("ledger: dynamodb: failed to unmarshal donations: %w", err)
		}

		items = append(items, page...)

		lastEvaluatedKey = result.LastEvaluatedKey
		if len(lastEvaluatedKey) == 0 {
			break
		}
	}

	// scans are unordered
	sortByRecordedAt(items)

	records := make([]record.PaymentRecord, 0, len(items))
	for _, it := range items {
		records = append(records, record.PaymentRecord{
			TransactionID:      it.TransactionID,
			OrderID:            it.OrderID,
			EventName:          it.EventName,
			DonorName:          it.DonorName,
			ContactNumber:      it.ContactNumber,
			Email:              it.Email,
			RepresentativeName: it.RepresentativeName,
			Amount:             it.Amount,
			Currency:           it.Currency,
			PaymentDate:        it.PaymentDate,
			PaymentValidDate:   it.ValidDate,
			PaymentMethod:      it.PaymentMethod,
		})
	}

	return records, nil
}

func (d *dynamoLedger) Driver() string {
	return constant.LedgerDriverDynamoDB
}

func sortByRecordedAt(items []donationItem) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].RecordedAt < items[j].RecordedAt
	})
}
