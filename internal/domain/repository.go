package domain

import "context"

// OrderRepository описывает требования к хранилищу заказов.
type OrderRepository interface {
	// Save вставляет или полностью перезаписывает заказ по ID.
	// Если ID пустой, хранилище присваивает новый уникальный идентификатор.
	Save(ctx context.Context, order Order) (Order, error)
	// FindByID возвращает заказ по идентификатору или ErrOrderNotFound, если его нет.
	FindByID(ctx context.Context, id string) (Order, error)
	// FindAllByUserID возвращает заказы пользователя в естественном порядке хранилища.
	FindAllByUserID(ctx context.Context, userID string) ([]Order, error)
	// DeleteByID удаляет заказ или возвращает ErrOrderNotFound, если его нет.
	DeleteByID(ctx context.Context, id string) error
}
