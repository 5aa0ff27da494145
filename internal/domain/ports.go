package domain

import "context"

// AuthClient описывает взаимодействие с внешним сервисом пользователей.
// Все методы — удалённые вызовы без кэширования и повторов; транспортный сбой
// возвращается как *TransportError и не означает "токен невалиден".
type AuthClient interface {
	// ValidateToken проверяет, что токен действителен (не истёк и не отозван).
	ValidateToken(ctx context.Context, token string) (bool, error)
	// ValidateOwnerToken проверяет, что токен действителен и принадлежит userID.
	ValidateOwnerToken(ctx context.Context, token, userID string) (bool, error)
	// ValidateAdminToken проверяет, что токен действителен и несёт права администратора.
	ValidateAdminToken(ctx context.Context, token string) (bool, error)
}

// StockClient описывает проверку доступности товаров в каталоге.
type StockClient interface {
	// CheckInStock выполняет по одному удалённому запросу на каждый товар
	// и возвращает доступность каждого. Результаты не кэшируются.
	CheckInStock(ctx context.Context, token string, productIDs []string) ([]ProductStock, error)
}

// OrderEventPublisher публикует события жизненного цикла заказа.
// Публикация не влияет на результат операции: сбой только логируется.
type OrderEventPublisher interface {
	PublishOrderCreated(order Order)
	PublishOrderUpdated(order Order)
	PublishOrderDeleted(orderID string)
}
