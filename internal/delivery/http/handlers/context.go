package handlers

import (
	"net/http"

	"github.com/LavaJover/shvark-payment-service/internal/delivery/http/middleware"
)

func callerFromContext(r *http.Request) string {
	return middleware.CallerFromContext(r.Context())
}
