package setup

import (
	"github.com/LavaJover/shvark-payment-service/internal/usecase/escalation"
	"github.com/LavaJover/shvark-payment-service/internal/usecase/payment"
)

type UseCases struct {
	PaymentUsecase payment.PaymentUsecase
	Escalator      *escalation.Escalator
}

func InitializeUseCases(deps *Dependencies) *UseCases {
	paymentUsecase := payment.NewDefaultPaymentUsecase(
		deps.Repositories.WorkOrderRepo,
		deps.Repositories.PaymentRepo,
		deps.Repositories.StatusLogRepo,
		deps.Publisher,
		deps.Metrics,
	)

	escalator := escalation.NewEscalator(
		deps.Repositories.WorkOrderRepo,
		deps.Repositories.RunRepo,
		deps.Publisher,
		deps.Metrics,
		escalation.Config{
			PageSize:        deps.Config.Escalation.PageSize,
			IntervalSeconds: deps.Config.Escalation.IntervalSeconds,
			StepPercent:     deps.Config.Escalation.StepPercent,
			MaxPercent:      deps.Config.Escalation.MaxPercent,
			SendAlerts:      deps.Config.Escalation.SendAlerts,
		},
	)

	return &UseCases{
		PaymentUsecase: paymentUsecase,
		Escalator:      escalator,
	}
}
