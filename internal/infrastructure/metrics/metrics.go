package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// PaymentMetrics holds every prometheus metric of the payment core.
type PaymentMetrics struct {
	// Status transitions
	TransitionsTotal prometheus.CounterVec

	// Settled amounts
	PaidAmountTotal prometheus.Counter

	// Fee calculations
	FeeCalculationsTotal prometheus.Counter
	TotalFeeAmountTotal  prometheus.Counter
	PlatformFeeTotal     prometheus.Counter

	// Escalation runs
	EscalationRunsTotal      prometheus.CounterVec
	EscalationIncreasedTotal prometheus.Counter
	EscalationErrorsTotal    prometheus.Counter
	EscalationRunDuration    prometheus.Histogram
}

func NewPaymentMetrics() *PaymentMetrics {
	return &PaymentMetrics{
		TransitionsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "payment_transitions_total",
				Help: "Total number of applied payment status transitions",
			},
			[]string{"from", "to"},
		),

		PaidAmountTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "payment_paid_amount_total",
				Help: "Total settled amount across paid transitions",
			},
		),

		FeeCalculationsTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "payment_fee_calculations_total",
				Help: "Total number of fee breakdown calculations",
			},
		),

		TotalFeeAmountTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "payment_total_fee_amount_total",
				Help: "Sum of calculated total fees",
			},
		),

		PlatformFeeTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "payment_platform_fee_amount_total",
				Help: "Sum of calculated platform fees",
			},
		),

		EscalationRunsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "urgent_fee_escalation_runs_total",
				Help: "Total number of urgent-fee escalation runs by outcome",
			},
			[]string{"status"},
		),

		EscalationIncreasedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "urgent_fee_escalation_increased_total",
				Help: "Total number of work orders whose urgent fee was raised",
			},
		),

		EscalationErrorsTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "urgent_fee_escalation_errors_total",
				Help: "Total number of per-document escalation errors",
			},
		),

		EscalationRunDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "urgent_fee_escalation_run_duration_seconds",
				Help:    "Duration of urgent-fee escalation runs in seconds",
				Buckets: prometheus.ExponentialBuckets(0.05, 2, 10),
			},
		),
	}
}

func (m *PaymentMetrics) RecordTransition(from, to string) {
	m.TransitionsTotal.WithLabelValues(from, to).Inc()
}

func (m *PaymentMetrics) RecordPaidAmount(amount float64) {
	if amount > 0 {
		m.PaidAmountTotal.Add(amount)
	}
}

func (m *PaymentMetrics) RecordFeeCalculation(totalFee, platformFee float64) {
	m.FeeCalculationsTotal.Inc()
	m.TotalFeeAmountTotal.Add(totalFee)
	m.PlatformFeeTotal.Add(platformFee)
}

func (m *PaymentMetrics) RecordEscalationRun(status string, increased, errorCount int, durationMs int64) {
	m.EscalationRunsTotal.WithLabelValues(status).Inc()
	m.EscalationIncreasedTotal.Add(float64(increased))
	m.EscalationErrorsTotal.Add(float64(errorCount))
	m.EscalationRunDuration.Observe(float64(durationMs) / 1000)
}
