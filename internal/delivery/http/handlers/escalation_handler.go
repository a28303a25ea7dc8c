package handlers

import (
	"net/http"
	"strconv"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/LavaJover/shvark-payment-service/internal/delivery/http/dto/payment/response"
	"github.com/LavaJover/shvark-payment-service/internal/usecase/escalation"
)

// EscalationHandler exposes the urgent-fee escalation runner and its run
// history. Both endpoints are admin-only.
type EscalationHandler struct {
	escalator *escalation.Escalator
}

func NewEscalationHandler(escalator *escalation.Escalator) *EscalationHandler {
	return &EscalationHandler{escalator: escalator}
}

// HandleRun triggers one escalation pass outside the periodic schedule and
// returns the persisted run report.
func (h *EscalationHandler) HandleRun(w http.ResponseWriter, r *http.Request) {
	runErr := h.escalator.Run(r.Context())

	runs, err := h.escalator.RecentRuns(1)
	if err != nil {
		respondWithError(w, status.Errorf(codes.Internal, "failed to load run report: %v", err))
		return
	}
	if len(runs) == 0 {
		respondWithError(w, status.Errorf(codes.Internal, "escalation run produced no report: %v", runErr))
		return
	}

	code := http.StatusOK
	if runErr != nil {
		code = http.StatusInternalServerError
	}
	respondWithJSON(w, code, response.FromEscalationRun(runs[0]))
}

func (h *EscalationHandler) HandleListRuns(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			respondWithError(w, status.Errorf(codes.InvalidArgument, "invalid limit: %s", raw))
			return
		}
		limit = parsed
	}

	runs, err := h.escalator.RecentRuns(limit)
	if err != nil {
		respondWithError(w, err)
		return
	}

	results := make([]*response.EscalationRun, len(runs))
	for i, run := range runs {
		results[i] = response.FromEscalationRun(run)
	}
	respondWithJSON(w, http.StatusOK, results)
}
