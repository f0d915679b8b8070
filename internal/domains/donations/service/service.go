package service

import (
	"context"

	"github.com/savioruz/culturepay/config"
	"github.com/savioruz/culturepay/internal/domains/donations/dto"
	"github.com/savioruz/culturepay/internal/ledger"
	"github.com/savioruz/culturepay/pkg/constant"
	"github.com/savioruz/culturepay/pkg/failure"
	"github.com/savioruz/culturepay/pkg/helper"
	"github.com/savioruz/culturepay/pkg/logger"
	"github.com/savioruz/culturepay/pkg/record"
	"github.com/savioruz/culturepay/pkg/redis"
)

//go:generate go run go.uber.org/mock/mockgen -source=service.go -destination=../mock/service_mock.go -package=mock github.com/savioruz/culturepay/internal/domains/donations/service DonationService

type DonationService interface {
	List(ctx context.Context, req dto.ListDonationsRequest) (dto.DonationsResponse, error)
	Refresh(ctx context.Context) error
}

type donationService struct {
	cfg    *config.Config
	ledger ledger.Ledger
	cache  redis.IRedisCache
	logger logger.Interface
}

func New(cfg *config.Config, led ledger.Ledger, c redis.IRedisCache, l logger.Interface) DonationService {
	return &donationService{
		cfg:    cfg,
		ledger: led,
		cache:  c,
		logger: l,
	}
}

const (
	identifier = "service - donations - %s"
)

var cacheKey = helper.BuildCacheKey(constant.CacheKeyDonations, "all")

func (s *donationService) List(ctx context.Context, req dto.ListDonationsRequest) (res dto.DonationsResponse, err error) {
	var records []record.PaymentRecord
	if err := s.cache.Get(ctx, cacheKey, &records); err == nil {
		res.FromRecords(records, req)

		return res, nil
	}

	records, err = s.load(ctx)
	if err != nil {
		s.logger.Error(identifier, "List - failed to read ledger: "+err.Error())

		return res, failure.InternalErrorWithDetails("Failed to read donations", err)
	}

	res.FromRecords(records, req)

	return res, nil
}

// Refresh reloads the ledger into the cache.
func (s *donationService) Refresh(ctx context.Context) error {
	if _, err := s.load(ctx); err != nil {
		s.logger.Error(identifier, "Refresh - failed to read ledger: "+err.Error())

		return err
	}

	s.logger.Debug(identifier, "Refresh - donations cache refreshed")

	return nil
}

func (s *donationService) load(ctx context.Context) ([]record.PaymentRecord, error) {
	if s.cfg.Ledger.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.Ledger.Timeout)

		defer cancel()
	}

	records, err := s.ledger.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Save(ctx, cacheKey, records, s.cfg.Cache.Duration); err != nil {
		s.logger.Warn(identifier, "load - failed to cache donations: "+err.Error())
	}

	return records, nil
}
