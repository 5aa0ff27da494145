package auth

import (
	"context"

	"github.com/vladislavdragonenkov/order-service/internal/domain"
)

// MockClient — конфигурируемая заглушка AuthClient для тестов.
type MockClient struct {
	TokenValid bool
	OwnerValid bool
	AdminValid bool
	Err        error

	TokenCalls int
	OwnerCalls int
	AdminCalls int
}

// NewMockClient возвращает mock, принимающий любые токены.
func NewMockClient() *MockClient {
	return &MockClient{TokenValid: true, OwnerValid: true, AdminValid: true}
}

func (m *MockClient) ValidateToken(context.Context, string) (bool, error) {
	m.TokenCalls++
	if m.Err != nil {
		return false, m.Err
	}
	return m.TokenValid, nil
}

func (m *MockClient) ValidateOwnerToken(context.Context, string, string) (bool, error) {
	m.OwnerCalls++
	if m.Err != nil {
		return false, m.Err
	}
	return m.OwnerValid, nil
}

func (m *MockClient) ValidateAdminToken(context.Context, string) (bool, error) {
	m.AdminCalls++
	if m.Err != nil {
		return false, m.Err
	}
	return m.AdminValid, nil
}

var _ domain.AuthClient = (*MockClient)(nil)
