//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"
	"github.com/savioruz/culturepay/config"
	"github.com/savioruz/culturepay/internal/delivery/http"

	authHandler "github.com/savioruz/culturepay/internal/domains/auth/handler"
	authService "github.com/savioruz/culturepay/internal/domains/auth/service"

	eventHandler "github.com/savioruz/culturepay/internal/domains/events/handler"
	eventService "github.com/savioruz/culturepay/internal/domains/events/service"

	paymentHandler "github.com/savioruz/culturepay/internal/domains/payments/handler"
	paymentService "github.com/savioruz/culturepay/internal/domains/payments/service"

	donationHandler "github.com/savioruz/culturepay/internal/domains/donations/handler"
	donationService "github.com/savioruz/culturepay/internal/domains/donations/service"

	"github.com/savioruz/culturepay/pkg/metrics"
)

var authDomain = wire.NewSet(
	authService.New,
	authHandler.New,
)

var eventDomain = wire.NewSet(
	eventService.New,
	eventHandler.New,
)

var paymentDomain = wire.NewSet(
	paymentService.New,
	paymentHandler.New,
)

var donationDomain = wire.NewSet(
	donationService.New,
	donationHandler.New,
)

var domains = wire.NewSet(
	authDomain,
	eventDomain,
	paymentDomain,
	donationDomain,
)

func InitializeApp(cfg *config.Config) (*Application, func(), error) {
	wire.Build(
		// Infrastructure providers
		provideLogger,
		provideJWT,
		provideFormValidator,
		provideValidator,
		provideGateway,
		provideLedger,
		provideRedisCache,
		provideMail,
		metrics.New,

		domains,

		wire.Struct(new(http.Handlers), "*"),

		// HTTP server
		provideHTTPServer,

		// Application
		wire.Struct(new(Application), "*"),
	)

	return &Application{}, nil, nil
}
