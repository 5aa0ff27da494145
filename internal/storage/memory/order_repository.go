package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/vladislavdragonenkov/order-service/internal/domain"
)

// orderRepositoryInMemory — простая in-memory реализация OrderRepository.
type orderRepositoryInMemory struct {
	mu    sync.RWMutex
	items map[string]domain.Order
}

// NewOrderRepository возвращает in-memory репозиторий для локальной разработки и тестов.
func NewOrderRepository() domain.OrderRepository {
	return &orderRepositoryInMemory{
		items: make(map[string]domain.Order),
	}
}

// Save вставляет или перезаписывает заказ. Пустой ID означает создание:
// репозиторий присваивает новый UUID и фиксирует CreatedAt.
func (r *orderRepositoryInMemory) Save(_ context.Context, order domain.Order) (domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	if order.ID == "" {
		order.ID = uuid.NewString()
		if order.CreatedAt.IsZero() {
			order.CreatedAt = now
		}
	}
	if order.UpdatedAt.IsZero() {
		order.UpdatedAt = now
	}

	// Сохраняем копию списка, чтобы избежать мутаций извне.
	order.ProductIDs = append([]string(nil), order.ProductIDs...)
	r.items[order.ID] = order
	return order, nil
}

// FindByID возвращает заказ или ErrOrderNotFound, если его нет.
func (r *orderRepositoryInMemory) FindByID(_ context.Context, id string) (domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	order, ok := r.items[id]
	if !ok {
		return domain.Order{}, domain.ErrOrderNotFound
	}
	order.ProductIDs = append([]string(nil), order.ProductIDs...)
	return order, nil
}

// FindAllByUserID возвращает заказы пользователя, отсортированные по времени создания.
func (r *orderRepositoryInMemory) FindAllByUserID(_ context.Context, userID string) ([]domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]domain.Order, 0, len(r.items))
	for _, order := range r.items {
		if order.UserID != userID {
			continue
		}
		order.ProductIDs = append([]string(nil), order.ProductIDs...)
		result = append(result, order)
	}

	sort.Slice(result, func(i, j int) bool {
		if !result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].CreatedAt.Before(result[j].CreatedAt)
		}
		return result[i].ID < result[j].ID
	})

	return result, nil
}

// DeleteByID удаляет заказ или возвращает ErrOrderNotFound.
func (r *orderRepositoryInMemory) DeleteByID(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return domain.ErrOrderNotFound
	}
	delete(r.items, id)
	return nil
}

var _ domain.OrderRepository = (*orderRepositoryInMemory)(nil)
