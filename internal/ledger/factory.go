package ledger

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/savioruz/culturepay/config"
	"github.com/savioruz/culturepay/internal/ledger/repository"
	"github.com/savioruz/culturepay/pkg/constant"
	"github.com/savioruz/culturepay/pkg/logger"
	"github.com/savioruz/culturepay/pkg/postgres"
	"google.golang.org/api/option"
)

const identifier = "ledger - factory - %s"

// New picks the driver named in the config. A driver that cannot be built falls back to the
// logging no-op so that verified payments are still acknowledged.
func New(ctx context.Context, cfg *config.Config, l logger.Interface) (Ledger, func()) {
	driver := strings.ToLower(strings.TrimSpace(cfg.Ledger.Driver))

	led, cleanup, err := build(ctx, driver, cfg, l)
	if err != nil {
		l.Error(identifier, fmt.Sprintf("New - driver %q unavailable, falling back to noop: %v", driver, err))

		return NewNop(l), func() {}
	}

	l.Info(fmt.Sprintf("ledger - using %s driver", led.Driver()))

	return led, cleanup
}

func build(ctx context.Context, driver string, cfg *config.Config, l logger.Interface) (Ledger, func(), error) {
	switch driver {
	case "", constant.LedgerDriverNoop:
		return NewNop(l), func() {}, nil
	case constant.LedgerDriverSheets:
		led, err := NewSheets(ctx, cfg.Sheets.SpreadsheetID, l, sheetsOptions(cfg.Sheets)...)

		return led, func() {}, err
	case constant.LedgerDriverPostgres:
		dsn := postgres.ConnectionBuilder(cfg.Pg.Host, cfg.Pg.Port, cfg.Pg.User, cfg.Pg.Password, cfg.Pg.Dbname, cfg.Pg.SSLMode)

		pg, err := postgres.New(ctx, dsn, postgres.MaxPoolSize(cfg.Pg.PoolMax), postgres.ConnAttempts(3), postgres.Logger(l))
		if err != nil {
			return nil, nil, err
		}

		return NewPostgres(pg.Pool, repository.New(), l), pg.Close, nil
	case constant.LedgerDriverDynamoDB:
		client, err := dynamoClient(ctx, cfg.Dynamo)
		if err != nil {
			return nil, nil, err
		}

		led, err := NewDynamoDB(client, cfg.Dynamo.Table, l)

		return led, func() {}, err
	default:
		return nil, nil, fmt.Errorf("unknown ledger driver %q", driver)
	}
}

func sheetsOptions(cfg config.Sheets) []option.ClientOption {
	var opts []option.ClientOption

	if cfg.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsPath))
	}

	if cfg.Endpoint != "" {
		opts = append(opts, option.WithEndpoint(cfg.Endpoint))
	}

	return opts
}

func dynamoClient(ctx context.Context, cfg config.Dynamo) (*dynamodb.Client, error) {
	var opts []func(*awsconfig.LoadOptions) error
	if cfg.Region != "" {
		opts = append(opts, awsconfig.WithRegion(cfg.Region))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("ledger: dynamodb: failed to load aws config: %w", err)
	}

	return dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	}), nil
}
