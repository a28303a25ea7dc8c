package payment

import (
	"fmt"
	"strings"
	"time"

	"github.com/LavaJover/shvark-payment-service/internal/domain"
	paymentdto "github.com/LavaJover/shvark-payment-service/internal/usecase/dto/payment"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// validateTransitionInput checks one transition request. Violations are
// collected exhaustively and returned as a single InvalidArgument error;
// warnings never block.
func validateTransitionInput(input *paymentdto.TransitionInput) (paidAt *time.Time, warnings []string, err error) {
	var violations []string

	if input.WorkOrderID == "" {
		violations = append(violations, "work order id is required")
	}
	if input.Status == "" {
		violations = append(violations, "status is required")
	} else if !domain.IsKnownPaymentStatus(domain.PaymentStatus(input.Status)) {
		violations = append(violations, fmt.Sprintf("unknown status %q", input.Status))
	}
	if input.PaymentMethod != "" && !domain.IsKnownPaymentMethod(domain.PaymentMethod(input.PaymentMethod)) {
		violations = append(violations, fmt.Sprintf("unknown payment method %q", input.PaymentMethod))
	}
	if input.PaidAt != "" {
		parsed, parseErr := time.Parse(time.RFC3339, input.PaidAt)
		if parseErr != nil {
			violations = append(violations, fmt.Sprintf("paid_at %q is not a valid RFC3339 date", input.PaidAt))
		} else {
			paidAt = &parsed
			if parsed.After(time.Now()) {
				warnings = append(warnings, "paid_at is in the future")
			}
		}
	}
	if input.Amount != nil && *input.Amount < 0 {
		violations = append(violations, fmt.Sprintf("amount must not be negative, got %v", *input.Amount))
	}

	if len(violations) > 0 {
		return nil, warnings, status.Error(codes.InvalidArgument, strings.Join(violations, "; "))
	}
	return paidAt, warnings, nil
}
