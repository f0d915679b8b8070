package app

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/savioruz/culturepay/config"
	"github.com/savioruz/culturepay/internal/delivery/http"
	"github.com/savioruz/culturepay/internal/domains/events/catalog"
	"github.com/savioruz/culturepay/internal/ledger"
	"github.com/savioruz/culturepay/pkg/httpserver"
	"github.com/savioruz/culturepay/pkg/jwt"
	"github.com/savioruz/culturepay/pkg/logger"
	"github.com/savioruz/culturepay/pkg/mail"
	"github.com/savioruz/culturepay/pkg/metrics"
	"github.com/savioruz/culturepay/pkg/razorpay"
	"github.com/savioruz/culturepay/pkg/redis"
	"github.com/savioruz/culturepay/pkg/validation"
)

func provideLogger(cfg *config.Config) logger.Interface {
	return logger.New(cfg.Log.Level)
}

func provideJWT(cfg *config.Config) (*jwt.JWT, error) {
	access, err := jwt.ParseDuration(cfg.JWT.AccessTokenExpiry)
	if err != nil {
		return nil, err
	}

	refresh, err := jwt.ParseDuration(cfg.JWT.RefreshTokenExpiry)
	if err != nil {
		return nil, err
	}

	return jwt.New(cfg.App.Name, cfg.JWT.Secret, access, refresh), nil
}

func provideFormValidator() *validation.Validator {
	return validation.New(catalog.Names)
}

func provideValidator(form *validation.Validator) (*validator.Validate, error) {
	v := validator.New(validator.WithRequiredStructEnabled())

	if err := form.RegisterTags(v); err != nil {
		return nil, fmt.Errorf("app - provideValidator: %w", err)
	}

	return v, nil
}

func provideGateway(cfg *config.Config) razorpay.Gateway {
	return razorpay.New(cfg.Razorpay.KeyID, cfg.Razorpay.KeySecret, cfg.Razorpay.Timeout)
}

func provideLedger(cfg *config.Config, l logger.Interface) (ledger.Ledger, func()) {
	return ledger.New(context.Background(), cfg, l)
}

// provideRedisCache returns a cache that never hits when redis is disabled.
func provideRedisCache(cfg *config.Config, l logger.Interface) (redis.IRedisCache, func(), error) {
	if !cfg.Redis.Enabled {
		return redis.NewNopCache(), func() {}, nil
	}

	addr := fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port)

	r, err := redis.New(addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		return nil, nil, fmt.Errorf("app - provideRedisCache: %w", err)
	}

	return redis.NewRedisCache(r.Client, l), r.Close, nil
}

// provideMail returns nil when mail is disabled, which turns receipts off.
func provideMail(cfg *config.Config) (mail.Service, error) {
	if !cfg.Mail.Enabled {
		return nil, nil
	}

	return mail.New(mail.Config{
		SMTPHost:     cfg.Mail.SMTPHost,
		SMTPPort:     cfg.Mail.SMTPPort,
		SMTPUsername: cfg.Mail.SMTPUsername,
		SMTPPassword: cfg.Mail.SMTPPassword,
		FromEmail:    cfg.Mail.FromEmail,
		FromName:     cfg.Mail.FromName,
	})
}

func provideHTTPServer(cfg *config.Config, l logger.Interface, m *metrics.Metrics, h http.Handlers) *httpserver.Server {
	server := httpserver.New(
		httpserver.Port(cfg.HTTP.Port),
		httpserver.AppName(cfg.App.Name),
		httpserver.ReadTimeout(cfg.HTTP.ReadTimeout),
		httpserver.WriteTimeout(cfg.HTTP.WriteTimeout),
	)

	http.NewRouter(server.App, cfg, l, m, h)

	return server
}
