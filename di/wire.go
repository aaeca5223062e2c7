//go:build wireinject
// +build wireinject

package di

import (
	"busbooking/config"
	"busbooking/infras/busapi"
	"busbooking/infras/jwt"
	"busbooking/infras/kafka"
	"busbooking/infras/otel"
	"busbooking/infras/redis"
	"busbooking/infras/s3"
	"busbooking/permissions"
	"busbooking/shared/cache"
	"busbooking/transport/http"
	"busbooking/transport/http/middleware"
	"busbooking/transport/http/router"

	authService "busbooking/internal/domains/auth/service"
	bookingService "busbooking/internal/domains/booking/service"
	busService "busbooking/internal/domains/bus/service"
	eventService "busbooking/internal/domains/event/service"
	receiptService "busbooking/internal/domains/receipt/service"
	seatService "busbooking/internal/domains/seat/service"
	transferService "busbooking/internal/domains/transfer/service"
	userService "busbooking/internal/domains/user/service"

	authHandler "busbooking/internal/handlers/auth"
	bookingHandler "busbooking/internal/handlers/booking"
	busHandler "busbooking/internal/handlers/bus"
	healthHandler "busbooking/internal/handlers/health"
	receiptHandler "busbooking/internal/handlers/receipt"
	seatHandler "busbooking/internal/handlers/seat"
	transferHandler "busbooking/internal/handlers/transfer"
	userHandler "busbooking/internal/handlers/user"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	otel.New,
	redis.New,
	jwt.New,
	busapi.New,
	kafka.New,
	s3.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var catalogueDomain = wire.NewSet(
	busService.New,
	seatService.New,
)

var supportDomain = wire.NewSet(
	receiptService.NewStore,
	receiptService.New,
	eventService.New,
)

var accountDomain = wire.NewSet(
	userService.New,
	authService.New,
)

var bookingDomain = wire.NewSet(
	bookingService.New,
	transferService.New,
)

var domains = wire.NewSet(
	catalogueDomain,
	supportDomain,
	accountDomain,
	bookingDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	busHandler.New,
	seatHandler.New,
	bookingHandler.New,
	transferHandler.New,
	userHandler.New,
	receiptHandler.New,
	healthHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
