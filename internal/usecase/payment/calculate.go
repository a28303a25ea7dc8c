package payment

import (
	"errors"
	"time"

	"github.com/LavaJover/shvark-payment-service/internal/domain"
	paymentdto "github.com/LavaJover/shvark-payment-service/internal/usecase/dto/payment"
	"github.com/LavaJover/shvark-payment-service/internal/usecase/fees"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Calculate validates the input, computes the fee breakdown and, when a work
// order id is supplied, mirrors the result into its payment record. Validation
// failures come back in the output, not as an error.
func (uc *DefaultPaymentUsecase) Calculate(input *paymentdto.CalculateInput) (*paymentdto.CalculateOutput, error) {
	calcInput := fees.CalculationInput{
		BaseFee:                 input.BaseFee,
		UrgentFeePercent:        input.UrgentFeePercent,
		PlatformFeePercent:      input.PlatformFeePercent,
		CurrentUrgentFeePercent: input.CurrentUrgentFeePercent,
		DiscountPercent:         input.DiscountPercent,
		TaxPercent:              input.TaxPercent,
	}

	validation := fees.Validate(calcInput)
	output := &paymentdto.CalculateOutput{
		Valid:    validation.Valid,
		Errors:   validation.Errors,
		Warnings: validation.Warnings,
	}
	if !validation.Valid {
		return output, nil
	}

	output.Breakdown = fees.Calculate(calcInput)
	if input.GradeLevel != 0 {
		output.GradeAdjusted = fees.AdjustForGrade(output.Breakdown, fees.Grade{
			Level: input.GradeLevel,
			Name:  input.GradeName,
		})
	}

	if uc.Metrics != nil {
		uc.Metrics.RecordFeeCalculation(output.Breakdown.TotalFee, output.Breakdown.PlatformFee)
	}

	if input.WorkOrderID != "" {
		if err := uc.storeBreakdown(input.WorkOrderID, output.Breakdown); err != nil {
			return nil, err
		}
	}

	return output, nil
}

func (uc *DefaultPaymentUsecase) storeBreakdown(workOrderID string, breakdown *domain.FeeBreakdown) error {
	if _, err := uc.WorkOrderRepo.GetWorkOrderByID(workOrderID); err != nil {
		if errors.Is(err, domain.ErrWorkOrderNotFound) {
			return status.Errorf(codes.NotFound, "work order %s not found", workOrderID)
		}
		return status.Errorf(codes.Internal, "failed to load work order: %v", err)
	}

	record, err := uc.loadOrCreateRecord(workOrderID)
	if err != nil {
		return status.Errorf(codes.Internal, "failed to load payment record: %v", err)
	}

	record.Breakdown = *breakdown
	record.UpdatedAt = time.Now()
	if err := uc.PaymentRepo.SavePaymentRecord(record); err != nil {
		return status.Errorf(codes.Internal, "failed to save payment record: %v", err)
	}
	return nil
}
