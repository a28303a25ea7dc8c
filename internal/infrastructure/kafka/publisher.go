package kafka

import (
	"context"
	"encoding/json"
	"time"

	"github.com/LavaJover/shvark-payment-service/internal/domain"
	"github.com/segmentio/kafka-go"
)

// NotificationPublisher writes payment and escalation events to Kafka. It
// implements domain.NotificationPublisher; delivery to end devices is owned by
// the notification service consuming these topics.
type NotificationPublisher struct {
	writer       *kafka.Writer
	paymentTopic string
	alertTopic   string
}

func NewNotificationPublisher(brokers []string, paymentTopic, alertTopic string) *NotificationPublisher {
	return &NotificationPublisher{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(brokers...),
			Balancer: &kafka.LeastBytes{},
		},
		paymentTopic: paymentTopic,
		alertTopic:   alertTopic,
	}
}

func (p *NotificationPublisher) PublishPaymentEvent(event domain.PaymentEvent) error {
	value, err := json.Marshal(event)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return p.writer.WriteMessages(ctx, kafka.Message{
		Topic: p.paymentTopic,
		Key:   []byte(event.WorkOrderID),
		Value: value,
		Time:  time.Now(),
	})
}

func (p *NotificationPublisher) PublishEscalationAlert(alert domain.EscalationAlert) error {
	value, err := json.Marshal(alert)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return p.writer.WriteMessages(ctx, kafka.Message{
		Topic: p.alertTopic,
		Key:   []byte(alert.RunID),
		Value: value,
		Time:  time.Now(),
	})
}
