package app

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/order-service/internal/client/auth"
	"github.com/vladislavdragonenkov/order-service/internal/client/catalog"
	"github.com/vladislavdragonenkov/order-service/internal/domain"
	"github.com/vladislavdragonenkov/order-service/internal/messaging/kafka"
	"github.com/vladislavdragonenkov/order-service/internal/storage/memory"
	"github.com/vladislavdragonenkov/order-service/internal/storage/postgres"
)

// Dependencies содержит все зависимости приложения.
type Dependencies struct {
	Repo      domain.OrderRepository
	Auth      domain.AuthClient
	Stock     domain.StockClient
	Publisher domain.OrderEventPublisher
	Logger    *log.Entry

	// Store не nil только для драйвера postgres; используется для
	// health-проверок и закрывается вместе с приложением.
	Store *postgres.Store

	kafkaProducer *kafka.Producer
}

// NewDependencies создаёт и инициализирует все зависимости приложения
// согласно конфигурации.
func NewDependencies(ctx context.Context, cfg Config, logger *log.Entry) (*Dependencies, error) {
	if logger == nil {
		logger = log.WithField("component", "app")
	}

	deps := &Dependencies{Logger: logger}

	switch cfg.StorageDriver {
	case StorageDriverMemory:
		deps.Repo = memory.NewOrderRepository()
		logger.Info("using in-memory order storage")
	case StorageDriverPostgres:
		store, err := postgres.Open(ctx, cfg.PostgresDSN)
		if err != nil {
			return nil, fmt.Errorf("open postgres: %w", err)
		}
		if cfg.PostgresAutoMigrate {
			if err := store.MigrateUp(ctx, 0); err != nil {
				_ = store.Close()
				return nil, fmt.Errorf("apply migrations: %w", err)
			}
			logger.Info("postgres migrations applied")
		}
		deps.Store = store
		deps.Repo = postgres.NewOrderRepository(store)
		logger.Info("using postgres order storage")
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}

	deps.Auth = auth.NewClient(auth.Config{
		BaseURL: cfg.UserServiceURL,
		Timeout: cfg.ClientTimeout,
	}, logger.WithField("component", "auth-client"))

	deps.Stock = catalog.NewClient(catalog.Config{
		BaseURL: cfg.ProductServiceURL,
		Timeout: cfg.ClientTimeout,
	}, logger.WithField("component", "catalog-client"))

	producer, err := initKafkaProducer(cfg.KafkaBrokers, logger)
	if err == nil && producer != nil {
		deps.kafkaProducer = producer
		deps.Publisher = kafka.NewOrderPublisher(producer, logger.WithField("component", "order-publisher"))
	}

	return deps, nil
}

// Close освобождает ресурсы зависимостей.
func (d *Dependencies) Close() {
	closeKafka(d.kafkaProducer, d.Logger)

	if d.Store != nil {
		if err := d.Store.Close(); err != nil {
			d.Logger.WithError(err).Warn("failed to close postgres store")
		}
	}
}
