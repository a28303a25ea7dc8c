package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/LavaJover/shvark-payment-service/internal/delivery/http/handlers"
	"github.com/LavaJover/shvark-payment-service/internal/delivery/http/middleware"
)

// NewRouter wires the payment and escalation handlers into a chi router.
// All /v1 routes require a bearer token; bulk updates and manual escalation
// runs additionally require the admin role.
func NewRouter(
	paymentHandler *handlers.PaymentHandler,
	escalationHandler *handlers.EscalationHandler,
	jwtSecret string,
) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/v1", func(r chi.Router) {
		r.Use(middleware.Auth(jwtSecret))

		r.Post("/payments/calculate", paymentHandler.HandleCalculate)
		r.Post("/payments/status", paymentHandler.HandleUpdateStatus)
		r.Get("/payments/transitions/{status}", paymentHandler.HandleGetTransitions)
		r.Get("/payments/{workOrderID}", paymentHandler.HandleGetPayment)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAdmin)

			r.Post("/payments/status/bulk", paymentHandler.HandleBulkUpdateStatus)
			r.Post("/escalation/run", escalationHandler.HandleRun)
			r.Get("/escalation/runs", escalationHandler.HandleListRuns)
		})
	})

	return r
}
