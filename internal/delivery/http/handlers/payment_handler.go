package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/LavaJover/shvark-payment-service/internal/delivery/http/dto/payment/request"
	"github.com/LavaJover/shvark-payment-service/internal/delivery/http/dto/payment/response"
	"github.com/LavaJover/shvark-payment-service/internal/domain"
	paymentdto "github.com/LavaJover/shvark-payment-service/internal/usecase/dto/payment"
	"github.com/LavaJover/shvark-payment-service/internal/usecase/payment"
)

// PaymentHandler exposes fee calculation, status transitions and payment
// queries over HTTP.
type PaymentHandler struct {
	uc payment.PaymentUsecase
}

func NewPaymentHandler(uc payment.PaymentUsecase) *PaymentHandler {
	return &PaymentHandler{uc: uc}
}

func (h *PaymentHandler) HandleCalculate(w http.ResponseWriter, r *http.Request) {
	var req request.CalculatePayment
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, status.Error(codes.InvalidArgument, "invalid request body"))
		return
	}

	output, err := h.uc.Calculate(&paymentdto.CalculateInput{
		WorkOrderID:             req.WorkOrderID,
		BaseFee:                 req.BaseFee,
		UrgentFeePercent:        req.UrgentFeePercent,
		PlatformFeePercent:      req.PlatformFeePercent,
		CurrentUrgentFeePercent: req.CurrentUrgentFeePercent,
		DiscountPercent:         req.DiscountPercent,
		TaxPercent:              req.TaxPercent,
		GradeLevel:              req.GradeLevel,
		GradeName:               req.GradeName,
	})
	if err != nil {
		respondWithError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, response.CalculatePayment{
		Valid:           output.Valid,
		Errors:          output.Errors,
		Warnings:        output.Warnings,
		Breakdown:       response.FromFeeBreakdown(output.Breakdown),
		GradeAdjustment: response.FromGradeAdjusted(output.GradeAdjusted),
	})
}

func (h *PaymentHandler) HandleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req request.UpdatePaymentStatus
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, status.Error(codes.InvalidArgument, "invalid request body"))
		return
	}

	output, err := h.uc.Transition(transitionInputFromRequest(req, callerFromContext(r)))
	if err != nil {
		respondWithError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, response.UpdatePaymentStatus{
		WorkOrderID:    output.WorkOrderID,
		Status:         string(output.Status),
		PreviousStatus: string(output.PreviousStatus),
		Warnings:       output.Warnings,
	})
}

func (h *PaymentHandler) HandleBulkUpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req request.BulkUpdatePaymentStatus
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, status.Error(codes.InvalidArgument, "invalid request body"))
		return
	}

	caller := callerFromContext(r)
	updates := make([]paymentdto.TransitionInput, len(req.Updates))
	for i, update := range req.Updates {
		updates[i] = *transitionInputFromRequest(update, "")
	}
	updatedBy := req.UpdatedBy
	if updatedBy == "" {
		updatedBy = caller
	}

	output, err := h.uc.BulkTransition(&paymentdto.BulkTransitionInput{
		Updates:   updates,
		UpdatedBy: updatedBy,
	})
	if err != nil {
		respondWithError(w, err)
		return
	}

	results := make([]response.BulkItemResult, len(output.Results))
	for i, result := range output.Results {
		results[i] = response.BulkItemResult{
			WorkOrderID: result.WorkOrderID,
			Success:     result.Success,
			Status:      result.Status,
			Error:       result.Error,
		}
	}
	respondWithJSON(w, http.StatusOK, response.BulkUpdatePaymentStatus{
		Results:   results,
		Succeeded: output.Succeeded,
		Failed:    output.Failed,
	})
}

func (h *PaymentHandler) HandleGetPayment(w http.ResponseWriter, r *http.Request) {
	workOrderID := chi.URLParam(r, "workOrderID")
	output, err := h.uc.GetPayment(workOrderID)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, response.FromPaymentOutput(output))
}

func (h *PaymentHandler) HandleGetTransitions(w http.ResponseWriter, r *http.Request) {
	current := chi.URLParam(r, "status")
	if current != "" && !domain.IsKnownPaymentStatus(domain.PaymentStatus(current)) {
		respondWithError(w, status.Errorf(codes.InvalidArgument, "unknown payment status: %s", current))
		return
	}
	respondWithJSON(w, http.StatusOK, response.ValidTransitions{
		Status:      current,
		Transitions: h.uc.ValidTransitions(current),
	})
}

func transitionInputFromRequest(req request.UpdatePaymentStatus, fallbackUpdatedBy string) *paymentdto.TransitionInput {
	updatedBy := req.UpdatedBy
	if updatedBy == "" {
		updatedBy = fallbackUpdatedBy
	}
	return &paymentdto.TransitionInput{
		WorkOrderID:   req.WorkOrderID,
		Status:        req.Status,
		PaidAt:        req.PaidAt,
		PaymentMethod: req.PaymentMethod,
		TransactionID: req.TransactionID,
		Amount:        req.Amount,
		Notes:         req.Notes,
		UpdatedBy:     updatedBy,
		RefundReason:  req.RefundReason,
		FailureReason: req.FailureReason,
	}
}
