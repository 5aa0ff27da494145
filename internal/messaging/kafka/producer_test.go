package kafka

import (
	"encoding/json"
	"testing"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/order-service/internal/domain"
)

func newMockedProducer(t *testing.T) (*Producer, *mocks.SyncProducer) {
	t.Helper()
	mockProducer := mocks.NewSyncProducer(t, nil)
	return &Producer{
		producer: mockProducer,
		logger:   log.WithField("component", "kafka-producer-test"),
	}, mockProducer
}

func TestProducer_PublishEvent(t *testing.T) {
	producer, mockProducer := newMockedProducer(t)

	mockProducer.ExpectSendMessageWithCheckerFunctionAndSucceed(func(value []byte) error {
		var event OrderEvent
		return json.Unmarshal(value, &event)
	})

	event := NewOrderEvent(EventTypeOrderCreated, domain.Order{
		ID:         "order-1",
		UserID:     "user-7",
		ProductIDs: []string{"101", "102"},
	})
	if err := producer.PublishEvent(TopicOrderEvents, event.OrderID, event); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if err := mockProducer.Close(); err != nil {
		t.Fatalf("unmet producer expectations: %v", err)
	}
}

func TestOrderPublisher_SwallowsPublishFailure(t *testing.T) {
	producer, mockProducer := newMockedProducer(t)
	mockProducer.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

	publisher := NewOrderPublisher(producer, nil)
	// Сбой публикации не должен паниковать и не возвращает ошибку наружу.
	publisher.PublishOrderCreated(domain.Order{ID: "order-1", UserID: "user-7"})

	if err := mockProducer.Close(); err != nil {
		t.Fatalf("unmet producer expectations: %v", err)
	}
}

func TestOrderPublisher_DeletedEventCarriesID(t *testing.T) {
	producer, mockProducer := newMockedProducer(t)

	mockProducer.ExpectSendMessageWithCheckerFunctionAndSucceed(func(value []byte) error {
		var event OrderEvent
		if err := json.Unmarshal(value, &event); err != nil {
			return err
		}
		if event.EventType != EventTypeOrderDeleted {
			t.Errorf("unexpected event type: %s", event.EventType)
		}
		if event.OrderID != "order-1" {
			t.Errorf("unexpected order id: %s", event.OrderID)
		}
		return nil
	})

	publisher := NewOrderPublisher(producer, nil)
	publisher.PublishOrderDeleted("order-1")

	if err := mockProducer.Close(); err != nil {
		t.Fatalf("unmet producer expectations: %v", err)
	}
}
