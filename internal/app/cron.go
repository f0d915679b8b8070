package app

import (
	"context"

	"github.com/robfig/cron/v3"
	"github.com/savioruz/culturepay/config"
	"github.com/savioruz/culturepay/internal/domains/donations/service"
	"github.com/savioruz/culturepay/pkg/logger"
)

// Cron keeps the cached donations list warm. It returns nil when the schedule is empty or invalid.
func Cron(donations service.DonationService, cfg *config.Config, l logger.Interface) *cron.Cron {
	if cfg.Schedule.DonationsRefresh == "" {
		return nil
	}

	c := cron.New(cron.WithSeconds())

	_, err := c.AddFunc(cfg.Schedule.DonationsRefresh, func() {
		ctx := context.WithoutCancel(context.Background())

		if err := donations.Refresh(ctx); err != nil {
			l.Error("Cron job - RefreshDonations failed: %v", err)
		}
	})

	if err != nil {
		l.Error("Cron job - AddFunc failed: %v", err)

		return nil
	}

	c.Start()

	return c
}
