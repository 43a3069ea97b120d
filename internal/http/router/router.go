package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"food-marketplace/internal/domain"
	"food-marketplace/internal/http/handlers"
	mw "food-marketplace/internal/http/middleware"
	"food-marketplace/internal/logx"
)

// Deps are the handlers and middleware the router wires together.
type Deps struct {
	Base        *handlers.Handlers
	Auth        *handlers.AuthHandler
	Restaurants *handlers.RestaurantHandler
	Orders      *handlers.OrderHandler
	Helpdesk    *handlers.HelpdeskHandler

	Authenticator *mw.Authenticator
	// AuthRateLimit guards registration and login; nil disables it.
	AuthRateLimit func(http.Handler) http.Handler
	Logger        logx.Logger
	Timeout       time.Duration
}

// New constructs a chi-based http.Handler with base middleware and routes.
func New(d Deps) http.Handler {
	if d.Logger == nil {
		d.Logger = logx.Nop()
	}
	if d.Timeout <= 0 {
		d.Timeout = 5 * time.Second
	}
	limit := d.AuthRateLimit
	if limit == nil {
		limit = func(next http.Handler) http.Handler { return next }
	}
	authn := d.Authenticator.Required
	role := mw.RequireRole

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(mw.Observability(d.Logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(d.Timeout))

	r.Get("/ping", d.Base.Ping)
	r.Method(http.MethodHead, "/healthcheck", http.HandlerFunc(d.Base.HealthcheckHead))
	r.NotFound(d.Base.NotFound)
	r.MethodNotAllowed(d.Base.MethodNotAllowed)

	r.Route("/auth", func(r chi.Router) {
		r.With(limit).Post("/{role}/register", d.Auth.Register)
		r.With(limit).Post("/{role}/login", d.Auth.Login)
		r.With(authn).Get("/profile", d.Auth.Profile)
	})

	r.Route("/restaurants", func(r chi.Router) {
		r.Get("/", d.Restaurants.List)
		r.Get("/{id}", d.Restaurants.GetByID)

		r.Group(func(r chi.Router) {
			r.Use(authn, role(domain.RoleRestaurant))
			r.Post("/menu", d.Restaurants.AddMenuItem)
			r.Put("/menu/{itemID}", d.Restaurants.UpdateMenuItem)
			r.Delete("/menu/{itemID}", d.Restaurants.DeleteMenuItem)
			r.Get("/orders/my", d.Orders.ListForRestaurant)
			r.Put("/orders/{id}/status", d.Orders.UpdateStatus)
		})
	})

	r.Route("/orders", func(r chi.Router) {
		r.Use(authn)

		r.With(role(domain.RoleCustomer)).Post("/", d.Orders.Create)
		r.With(role(domain.RoleCustomer)).Get("/my", d.Orders.ListMine)

		r.Group(func(r chi.Router) {
			r.Use(role(domain.RoleDelivery))
			r.Get("/delivery/available", d.Orders.ListAvailable)
			r.Get("/delivery/my", d.Orders.ListForCourier)
			r.Put("/{id}/assign", d.Orders.Assign)
			r.Put("/{id}/delivery-status", d.Orders.UpdateDeliveryStatus)
		})

		r.Get("/{id}", d.Orders.GetByID)
		r.Get("/{id}/history", d.Orders.History)
	})

	r.Route("/helpdesk", func(r chi.Router) {
		r.With(d.Authenticator.Optional).Post("/", d.Helpdesk.Create)

		r.Group(func(r chi.Router) {
			r.Use(authn)
			r.Get("/my", d.Helpdesk.ListMine)
			r.With(role(domain.RoleAdmin)).Get("/all", d.Helpdesk.ListAll)
			r.Get("/{id}", d.Helpdesk.GetByID)
			r.With(role(domain.RoleAdmin)).Put("/{id}", d.Helpdesk.Update)
		})
	})

	return r
}
