package catalog

import (
	"context"

	"github.com/vladislavdragonenkov/order-service/internal/domain"
)

// MockClient — конфигурируемая заглушка StockClient для тестов.
// OutOfStock перечисляет товары, которые считаются недоступными.
type MockClient struct {
	OutOfStock map[string]bool
	Err        error

	Calls     int
	LastToken string
	LastIDs   []string
}

// NewMockClient возвращает mock, у которого все товары в наличии.
func NewMockClient() *MockClient {
	return &MockClient{}
}

func (m *MockClient) CheckInStock(_ context.Context, token string, productIDs []string) ([]domain.ProductStock, error) {
	m.Calls++
	m.LastToken = token
	m.LastIDs = append([]string(nil), productIDs...)

	if m.Err != nil {
		return nil, m.Err
	}

	result := make([]domain.ProductStock, 0, len(productIDs))
	for _, id := range productIDs {
		result = append(result, domain.ProductStock{
			ProductID: id,
			InStock:   !m.OutOfStock[id],
		})
	}
	return result, nil
}

var _ domain.StockClient = (*MockClient)(nil)
