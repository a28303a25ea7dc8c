package payment

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/LavaJover/shvark-payment-service/internal/domain"
	"github.com/LavaJover/shvark-payment-service/internal/usecase/batch"
	paymentdto "github.com/LavaJover/shvark-payment-service/internal/usecase/dto/payment"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type bulkItem struct {
	index int
	input paymentdto.TransitionInput
}

// BulkTransition applies up to MaxBulkUpdates status changes in one call.
// Every item is validated and transition-checked independently; valid items
// are committed in one batch and a per-item result array comes back. One bad
// item never blocks the others.
func (uc *DefaultPaymentUsecase) BulkTransition(input *paymentdto.BulkTransitionInput) (*paymentdto.BulkTransitionOutput, error) {
	if len(input.Updates) == 0 {
		return nil, status.Error(codes.InvalidArgument, "updates list is empty")
	}
	if len(input.Updates) > MaxBulkUpdates {
		return nil, status.Errorf(codes.InvalidArgument, "too many updates: %d, max %d", len(input.Updates), MaxBulkUpdates)
	}

	items := make([]bulkItem, len(input.Updates))
	for i, update := range input.Updates {
		if update.UpdatedBy == "" {
			update.UpdatedBy = input.UpdatedBy
		}
		items[i] = bulkItem{index: i, input: update}
	}

	prepared := make([]*domain.StatusUpdate, len(items))
	workOrders := make([]*domain.WorkOrder, len(items))

	coordinator := &batch.Coordinator[bulkItem, *domain.StatusUpdate]{
		PageSize: MaxBulkUpdates,
		FetchPage: func(_ context.Context, cursor string, limit int) ([]bulkItem, error) {
			var page []bulkItem
			for _, item := range items {
				if bulkKey(item.index) > cursor {
					page = append(page, item)
					if len(page) == limit {
						break
					}
				}
			}
			return page, nil
		},
		Key: func(item bulkItem) string { return bulkKey(item.index) },
		Process: func(_ context.Context, item bulkItem) (*domain.StatusUpdate, bool, error) {
			update, workOrder, err := uc.prepareBulkItem(item.input)
			if err != nil {
				return nil, false, err
			}
			prepared[item.index] = update
			workOrders[item.index] = workOrder
			return update, true, nil
		},
		Commit: func(_ context.Context, updates []*domain.StatusUpdate) error {
			return uc.WorkOrderRepo.ApplyStatusUpdates(updates)
		},
	}

	runResult, err := coordinator.Run(context.Background())
	if err != nil {
		return nil, status.Errorf(codes.Internal, "bulk transition failed: %v", err)
	}

	failures := make(map[int]string, len(runResult.Errors))
	for _, itemErr := range runResult.Errors {
		index, convErr := strconv.Atoi(itemErr.Key)
		if convErr != nil {
			continue
		}
		failures[index] = status.Convert(itemErr.Err).Message()
	}

	output := &paymentdto.BulkTransitionOutput{
		Results: make([]paymentdto.BulkItemResult, len(items)),
	}
	for i, item := range items {
		if message, failed := failures[i]; failed {
			output.Results[i] = paymentdto.BulkItemResult{
				WorkOrderID: item.input.WorkOrderID,
				Success:     false,
				Error:       message,
			}
			output.Failed++
			continue
		}
		output.Results[i] = paymentdto.BulkItemResult{
			WorkOrderID: item.input.WorkOrderID,
			Success:     true,
			Status:      string(prepared[i].Log.Status),
		}
		output.Succeeded++

		uc.recordTransitionMetrics(prepared[i])
		uc.dispatchTransitionEvents(workOrders[i], prepared[i])
	}

	return output, nil
}

func (uc *DefaultPaymentUsecase) prepareBulkItem(input paymentdto.TransitionInput) (*domain.StatusUpdate, *domain.WorkOrder, error) {
	paidAt, _, err := validateTransitionInput(&input)
	if err != nil {
		return nil, nil, err
	}

	workOrder, err := uc.WorkOrderRepo.GetWorkOrderByID(input.WorkOrderID)
	if err != nil {
		if errors.Is(err, domain.ErrWorkOrderNotFound) {
			return nil, nil, status.Errorf(codes.NotFound, "work order %s not found", input.WorkOrderID)
		}
		return nil, nil, status.Errorf(codes.Internal, "failed to load work order: %v", err)
	}

	update, err := uc.buildStatusUpdate(workOrder, &input, paidAt)
	if err != nil {
		return nil, nil, err
	}
	return update, workOrder, nil
}

// bulkKey gives items a stable zero-padded scan key so the coordinator walks
// the request in order.
func bulkKey(index int) string {
	return fmt.Sprintf("%04d", index)
}
