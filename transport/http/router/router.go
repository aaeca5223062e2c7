package router

import (
	"busbooking/internal/handlers/auth"
	"busbooking/internal/handlers/booking"
	"busbooking/internal/handlers/bus"
	"busbooking/internal/handlers/health"
	"busbooking/internal/handlers/receipt"
	"busbooking/internal/handlers/seat"
	"busbooking/internal/handlers/transfer"
	"busbooking/internal/handlers/user"
	"busbooking/transport/http/middleware"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Auth     auth.Handler
	Bus      bus.Handler
	Seat     seat.Handler
	Booking  booking.Handler
	Transfer transfer.Handler
	User     user.Handler
	Receipt  receipt.Handler
	Health   health.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	App            middleware.AppMiddleware
	AuthRole       middleware.AuthRole
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		routerGroup.Use(r.AuthRole.APIKey, r.AuthRole.Auth, r.AuthRole.RBAC, r.App.RateLimit())

		r.DomainHandlers.Health.Router(routerGroup)
		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.Bus.Router(routerGroup)
		r.DomainHandlers.Seat.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Transfer.Router(routerGroup)
		r.DomainHandlers.User.Router(routerGroup)
		r.DomainHandlers.Receipt.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers, app middleware.AppMiddleware, authRole middleware.AuthRole) Router {
	return Router{
		DomainHandlers: domainHandlers,
		App:            app,
		AuthRole:       authRole,
	}
}
