package kafka

import (
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/order-service/internal/domain"
)

// OrderPublisher публикует события заказов через Kafka producer.
// Сбой публикации логируется и не влияет на результат операции.
type OrderPublisher struct {
	producer *Producer
	logger   *log.Entry
}

// NewOrderPublisher конструирует publisher поверх готового producer.
func NewOrderPublisher(producer *Producer, logger *log.Entry) *OrderPublisher {
	if logger == nil {
		logger = log.WithField("component", "order-publisher")
	}
	return &OrderPublisher{producer: producer, logger: logger}
}

func (p *OrderPublisher) PublishOrderCreated(order domain.Order) {
	p.publish(NewOrderEvent(EventTypeOrderCreated, order))
}

func (p *OrderPublisher) PublishOrderUpdated(order domain.Order) {
	p.publish(NewOrderEvent(EventTypeOrderUpdated, order))
}

func (p *OrderPublisher) PublishOrderDeleted(orderID string) {
	p.publish(&OrderEvent{
		EventType: EventTypeOrderDeleted,
		OrderID:   orderID,
		Timestamp: time.Now().UTC(),
	})
}

func (p *OrderPublisher) publish(event *OrderEvent) {
	if err := p.producer.PublishEvent(TopicOrderEvents, event.OrderID, event); err != nil {
		p.logger.WithError(err).WithFields(log.Fields{
			"event":    event.EventType,
			"order_id": event.OrderID,
		}).Warn("failed to publish order event")
	}
}

var _ domain.OrderEventPublisher = (*OrderPublisher)(nil)
