package kafka

import (
	"time"

	"github.com/vladislavdragonenkov/order-service/internal/domain"
)

// EventType определяет тип события заказа.
type EventType string

const (
	EventTypeOrderCreated EventType = "order.created"
	EventTypeOrderUpdated EventType = "order.updated"
	EventTypeOrderDeleted EventType = "order.deleted"
)

// TopicOrderEvents — топик, в который публикуются события заказов.
const TopicOrderEvents = "orders.order.events"

// OrderEvent представляет событие жизненного цикла заказа.
type OrderEvent struct {
	EventType  EventType `json:"event_type"`
	OrderID    string    `json:"order_id"`
	UserID     string    `json:"user_id,omitempty"`
	ProductIDs []string  `json:"product_ids,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
}

// NewOrderEvent создаёт событие по состоянию заказа.
func NewOrderEvent(eventType EventType, order domain.Order) *OrderEvent {
	return &OrderEvent{
		EventType:  eventType,
		OrderID:    order.ID,
		UserID:     order.UserID,
		ProductIDs: order.ProductIDs,
		Timestamp:  time.Now().UTC(),
	}
}
