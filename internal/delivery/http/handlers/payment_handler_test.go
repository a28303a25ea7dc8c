package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/LavaJover/shvark-payment-service/internal/delivery/http/dto/payment/response"
	"github.com/LavaJover/shvark-payment-service/internal/domain"
	paymentdto "github.com/LavaJover/shvark-payment-service/internal/usecase/dto/payment"
)

type stubPaymentUsecase struct {
	calculateOutput  *paymentdto.CalculateOutput
	transitionOutput *paymentdto.TransitionOutput
	transitionInput  *paymentdto.TransitionInput
	bulkOutput       *paymentdto.BulkTransitionOutput
	paymentOutput    *paymentdto.PaymentOutput
	err              error
}

func (s *stubPaymentUsecase) Calculate(input *paymentdto.CalculateInput) (*paymentdto.CalculateOutput, error) {
	return s.calculateOutput, s.err
}

func (s *stubPaymentUsecase) Transition(input *paymentdto.TransitionInput) (*paymentdto.TransitionOutput, error) {
	s.transitionInput = input
	return s.transitionOutput, s.err
}

func (s *stubPaymentUsecase) BulkTransition(input *paymentdto.BulkTransitionInput) (*paymentdto.BulkTransitionOutput, error) {
	return s.bulkOutput, s.err
}

func (s *stubPaymentUsecase) GetPayment(workOrderID string) (*paymentdto.PaymentOutput, error) {
	return s.paymentOutput, s.err
}

func (s *stubPaymentUsecase) ValidTransitions(current string) []string {
	transitions := domain.ValidPaymentTransitions(domain.PaymentStatus(current))
	result := make([]string, len(transitions))
	for i, next := range transitions {
		result[i] = string(next)
	}
	return result
}

func TestHandleCalculate(t *testing.T) {
	stub := &stubPaymentUsecase{
		calculateOutput: &paymentdto.CalculateOutput{
			Valid: true,
			Breakdown: &domain.FeeBreakdown{
				BaseFee:  100000,
				TotalFee: 110000,
			},
		},
	}
	handler := NewPaymentHandler(stub)

	body, _ := json.Marshal(map[string]interface{}{
		"base_fee":             100000,
		"urgent_fee_percent":   10,
		"platform_fee_percent": 15,
	})
	req := httptest.NewRequest(http.MethodPost, "/v1/payments/calculate", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	handler.HandleCalculate(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp response.CalculatePayment
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.True(t, resp.Valid)
	require.NotNil(t, resp.Breakdown)
	require.Equal(t, float64(110000), resp.Breakdown.TotalFee)
}

func TestHandleCalculateRejectsMalformedBody(t *testing.T) {
	handler := NewPaymentHandler(&stubPaymentUsecase{})

	req := httptest.NewRequest(http.MethodPost, "/v1/payments/calculate", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	handler.HandleCalculate(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleUpdateStatusMapsUsecaseErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"not found", status.Error(codes.NotFound, "work order wo-1 not found"), http.StatusNotFound},
		{"invalid argument", status.Error(codes.InvalidArgument, "illegal transition"), http.StatusBadRequest},
		{"internal", status.Error(codes.Internal, "db down"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewPaymentHandler(&stubPaymentUsecase{err: tt.err})

			body, _ := json.Marshal(map[string]string{"work_order_id": "wo-1", "status": "paid"})
			req := httptest.NewRequest(http.MethodPost, "/v1/payments/status", bytes.NewReader(body))
			rec := httptest.NewRecorder()
			handler.HandleUpdateStatus(rec, req)

			require.Equal(t, tt.wantCode, rec.Code)
			var resp map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			require.Equal(t, status.Convert(tt.err).Message(), resp["error"])
		})
	}
}

func TestHandleUpdateStatusPassesFields(t *testing.T) {
	stub := &stubPaymentUsecase{
		transitionOutput: &paymentdto.TransitionOutput{
			WorkOrderID:    "wo-1",
			Status:         domain.PaymentPaid,
			PreviousStatus: domain.PaymentPending,
		},
	}
	handler := NewPaymentHandler(stub)

	body, _ := json.Marshal(map[string]interface{}{
		"work_order_id":  "wo-1",
		"status":         "paid",
		"payment_method": "card",
		"amount":         110000,
		"updated_by":     "ops-7",
	})
	req := httptest.NewRequest(http.MethodPost, "/v1/payments/status", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	handler.HandleUpdateStatus(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "wo-1", stub.transitionInput.WorkOrderID)
	require.Equal(t, "card", stub.transitionInput.PaymentMethod)
	require.NotNil(t, stub.transitionInput.Amount)
	require.Equal(t, float64(110000), *stub.transitionInput.Amount)
	require.Equal(t, "ops-7", stub.transitionInput.UpdatedBy)

	var resp response.UpdatePaymentStatus
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "paid", resp.Status)
	require.Equal(t, "pending", resp.PreviousStatus)
}

func TestHandleGetTransitions(t *testing.T) {
	handler := NewPaymentHandler(&stubPaymentUsecase{})

	r := chi.NewRouter()
	r.Get("/v1/payments/transitions/{status}", handler.HandleGetTransitions)

	req := httptest.NewRequest(http.MethodGet, "/v1/payments/transitions/pending", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp response.ValidTransitions
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "pending", resp.Status)
	require.ElementsMatch(t, []string{"paid", "failed", "cancelled", "processing"}, resp.Transitions)
}

func TestHandleGetTransitionsUnknownStatus(t *testing.T) {
	handler := NewPaymentHandler(&stubPaymentUsecase{})

	r := chi.NewRouter()
	r.Get("/v1/payments/transitions/{status}", handler.HandleGetTransitions)

	req := httptest.NewRequest(http.MethodGet, "/v1/payments/transitions/bogus", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}
