package payment

import (
	"fmt"
	"testing"

	"github.com/LavaJover/shvark-payment-service/internal/domain"
	paymentdto "github.com/LavaJover/shvark-payment-service/internal/usecase/dto/payment"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestBulkTransition_MixedResults(t *testing.T) {
	uc, workOrderRepo, _, _ := newTestUsecase(
		testWorkOrder("wo-1", domain.PaymentPending),
		testWorkOrder("wo-2", domain.PaymentPaid),
		testWorkOrder("wo-3", domain.PaymentPending),
	)

	output, err := uc.BulkTransition(&paymentdto.BulkTransitionInput{
		UpdatedBy: "admin-1",
		Updates: []paymentdto.TransitionInput{
			{WorkOrderID: "wo-1", Status: "paid"},
			{WorkOrderID: "wo-2", Status: "pending"}, // illegal from paid
			{WorkOrderID: "missing", Status: "paid"}, // not found
			{WorkOrderID: "wo-3", Status: "cancelled"},
			{WorkOrderID: "", Status: "paid"}, // invalid
		},
	})
	require.NoError(t, err)

	require.Len(t, output.Results, 5)
	assert.Equal(t, 2, output.Succeeded)
	assert.Equal(t, 3, output.Failed)

	assert.True(t, output.Results[0].Success)
	assert.Equal(t, "paid", output.Results[0].Status)

	assert.False(t, output.Results[1].Success)
	assert.Contains(t, output.Results[1].Error, "refunded")

	assert.False(t, output.Results[2].Success)
	assert.Contains(t, output.Results[2].Error, "not found")

	assert.True(t, output.Results[3].Success)
	assert.Equal(t, "cancelled", output.Results[3].Status)

	assert.False(t, output.Results[4].Success)
	assert.Contains(t, output.Results[4].Error, "work order id is required")

	// all valid items land in one batched commit
	require.Len(t, workOrderRepo.applied, 1)
	assert.Len(t, workOrderRepo.applied[0], 2)
}

func TestBulkTransition_UpdatedByFallsBackToRequestLevel(t *testing.T) {
	uc, workOrderRepo, _, _ := newTestUsecase(testWorkOrder("wo-1", domain.PaymentPending))

	_, err := uc.BulkTransition(&paymentdto.BulkTransitionInput{
		UpdatedBy: "admin-1",
		Updates:   []paymentdto.TransitionInput{{WorkOrderID: "wo-1", Status: "processing"}},
	})
	require.NoError(t, err)

	assert.Equal(t, "admin-1", workOrderRepo.applied[0][0].Log.UpdatedBy)
}

func TestBulkTransition_EmptyRejected(t *testing.T) {
	uc, _, _, _ := newTestUsecase()

	_, err := uc.BulkTransition(&paymentdto.BulkTransitionInput{})
	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestBulkTransition_TooManyRejected(t *testing.T) {
	uc, _, _, _ := newTestUsecase()

	updates := make([]paymentdto.TransitionInput, MaxBulkUpdates+1)
	for i := range updates {
		updates[i] = paymentdto.TransitionInput{WorkOrderID: fmt.Sprintf("wo-%d", i), Status: "paid"}
	}

	_, err := uc.BulkTransition(&paymentdto.BulkTransitionInput{Updates: updates})
	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestBulkTransition_FullBatchSucceeds(t *testing.T) {
	workOrders := make([]*domain.WorkOrder, MaxBulkUpdates)
	updates := make([]paymentdto.TransitionInput, MaxBulkUpdates)
	for i := range workOrders {
		id := fmt.Sprintf("wo-%03d", i)
		workOrders[i] = testWorkOrder(id, domain.PaymentPending)
		updates[i] = paymentdto.TransitionInput{WorkOrderID: id, Status: "processing"}
	}
	uc, _, _, _ := newTestUsecase(workOrders...)

	output, err := uc.BulkTransition(&paymentdto.BulkTransitionInput{Updates: updates})
	require.NoError(t, err)
	assert.Equal(t, MaxBulkUpdates, output.Succeeded)
	assert.Equal(t, 0, output.Failed)
}
