package fees

import (
	"fmt"
	"math"

	"github.com/LavaJover/shvark-payment-service/internal/domain"
)

// CalculationInput carries every parameter of one fee computation. Missing
// numeric fields are zero except BaseFee, which is required.
type CalculationInput struct {
	BaseFee                 float64
	UrgentFeePercent        float64
	PlatformFeePercent      float64
	CurrentUrgentFeePercent *float64
	DiscountPercent         float64
	TaxPercent              float64
}

func (in CalculationInput) effectiveUrgentPercent() float64 {
	if in.CurrentUrgentFeePercent != nil {
		return *in.CurrentUrgentFeePercent
	}
	return in.UrgentFeePercent
}

// Calculate computes the full fee breakdown. Pure and deterministic, no side
// effects. Invariants: totalFee = discountedBaseFee + urgentFee;
// workerPayment = totalFee - platformFee; customerTotalPayment = totalFee + taxAmount.
func Calculate(in CalculationInput) *domain.FeeBreakdown {
	discountAmount := in.BaseFee * in.DiscountPercent / 100
	discountedBaseFee := in.BaseFee - discountAmount

	urgentPercent := in.effectiveUrgentPercent()
	urgentFee := discountedBaseFee * urgentPercent / 100

	totalFee := discountedBaseFee + urgentFee
	platformFee := totalFee * in.PlatformFeePercent / 100
	taxAmount := totalFee * in.TaxPercent / 100

	return &domain.FeeBreakdown{
		BaseFee:              in.BaseFee,
		DiscountPercent:      in.DiscountPercent,
		DiscountAmount:       discountAmount,
		DiscountedBaseFee:    discountedBaseFee,
		UrgentFeePercent:     urgentPercent,
		UrgentFee:            urgentFee,
		TotalFee:             totalFee,
		PlatformFeePercent:   in.PlatformFeePercent,
		PlatformFee:          platformFee,
		TaxPercent:           in.TaxPercent,
		TaxAmount:            taxAmount,
		WorkerPayment:        totalFee - platformFee,
		CustomerTotalPayment: totalFee + taxAmount,
		Items: []domain.FeeItem{
			{Label: "base_fee", Amount: in.BaseFee},
			{Label: "discount", Percent: in.DiscountPercent, Amount: -discountAmount},
			{Label: "urgent_fee", Percent: urgentPercent, Amount: urgentFee},
			{Label: "platform_fee", Percent: in.PlatformFeePercent, Amount: platformFee},
			{Label: "tax", Percent: in.TaxPercent, Amount: taxAmount},
		},
	}
}

type ValidationResult struct {
	Valid    bool
	Errors   []string
	Warnings []string
}

// Validate checks the calculation input before anything is persisted. Errors
// are collected exhaustively; warnings never block.
func Validate(in CalculationInput) *ValidationResult {
	result := &ValidationResult{Valid: true}

	if in.BaseFee <= 0 {
		result.Errors = append(result.Errors, fmt.Sprintf("base fee must be positive, got %v", in.BaseFee))
	}
	if in.UrgentFeePercent < 0 || in.UrgentFeePercent > 100 {
		result.Errors = append(result.Errors, fmt.Sprintf("urgent fee percent must be within [0, 100], got %v", in.UrgentFeePercent))
	}
	if in.PlatformFeePercent < 0 || in.PlatformFeePercent > 50 {
		result.Errors = append(result.Errors, fmt.Sprintf("platform fee percent must be within [0, 50], got %v", in.PlatformFeePercent))
	}

	if urgent := in.effectiveUrgentPercent(); urgent > 30 {
		result.Warnings = append(result.Warnings, fmt.Sprintf("urgent fee percent %v is unusually high", urgent))
	}
	if in.PlatformFeePercent > 20 {
		result.Warnings = append(result.Warnings, fmt.Sprintf("platform fee percent %v is unusually high", in.PlatformFeePercent))
	}

	result.Valid = len(result.Errors) == 0
	return result
}

// DynamicUrgentFee returns the urgent-fee percent a work order should carry
// after hoursSinceCreation hours: one step per full interval, capped at
// maxPercent. Non-decreasing in hoursSinceCreation.
func DynamicUrgentFee(basePercent, hoursSinceCreation, maxPercent, intervalHours, stepPercent float64) float64 {
	if hoursSinceCreation <= 0 {
		return basePercent
	}
	increments := math.Floor(hoursSinceCreation / intervalHours)
	return math.Min(basePercent+increments*stepPercent, maxPercent)
}
