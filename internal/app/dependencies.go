package app

import (
	"context"
	"fmt"

	"github.com/avc/shopvely/internal/config"
	"github.com/avc/shopvely/internal/domain"
	"github.com/avc/shopvely/internal/events"
	"github.com/avc/shopvely/internal/handlers"
	"github.com/avc/shopvely/internal/loyalty"
	"github.com/avc/shopvely/internal/repository/cache"
	"github.com/avc/shopvely/internal/repository/postgres"
	"github.com/avc/shopvely/internal/service"
	"github.com/avc/shopvely/internal/utils/jwt"
	"github.com/avc/shopvely/internal/utils/password"
	"github.com/avc/shopvely/internal/worker"
	"github.com/jackc/pgx/v5/pgxpool"
	redis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// repositories содержит все репозитории приложения
type repositories struct {
	profile  domain.ProfileRepository
	product  domain.ProductRepository
	order    domain.OrderRepository
	ledger   domain.LedgerRepository
	withdraw domain.WithdrawRepository
	coupon   domain.CouponRepository
}

// services содержит все сервисы приложения
type services struct {
	auth       domain.AuthService
	commission domain.CommissionService
	order      *service.OrderService
	cart       *service.CartService
	loyalty    domain.LoyaltyService
	withdraw   domain.WithdrawService
	coupon     domain.CouponService
}

// handlerSet содержит все хендлеры приложения
type handlerSet struct {
	auth     *handlers.AuthHandler
	cart     *handlers.CartHandler
	checkout *handlers.CheckoutHandler
	orders   *handlers.OrdersHandler
	loyalty  *handlers.LoyaltyHandler
	withdraw *handlers.WithdrawHandler
	coupons  *handlers.CouponHandler
	health   *handlers.HealthHandler
}

// dependencies содержит все зависимости приложения
type dependencies struct {
	repos      *repositories
	services   *services
	handlers   *handlerSet
	jwtManager *jwt.Manager
	workerPool *worker.Pool
	consumer   *events.OrderStatusConsumer
	closers    []func() error
}

// initDependencies создает все зависимости приложения
func initDependencies(cfg *config.Config, dbPool *pgxpool.Pool, redisClient *redis.Client, logger *zap.Logger) (*dependencies, error) {
	rules, err := loyalty.LoadRules(cfg.LoyaltyRulesFile)
	if err != nil {
		return nil, err
	}

	deps := &dependencies{}

	publisher, err := initPublisher(cfg, logger)
	if err != nil {
		return nil, err
	}
	if closer, ok := publisher.(interface{ Close() error }); ok {
		deps.closers = append(deps.closers, closer.Close)
	}

	// Создание репозиториев
	repos := &repositories{
		profile:  postgres.NewProfileRepository(dbPool),
		product:  postgres.NewProductRepository(dbPool),
		order:    postgres.NewOrderRepository(dbPool),
		ledger:   postgres.NewLedgerRepository(dbPool),
		withdraw: postgres.NewWithdrawRepository(dbPool),
		coupon:   postgres.NewCouponRepository(dbPool),
	}
	carts := service.CartStores{
		User:  postgres.NewCartStore(dbPool),
		Guest: cache.NewGuestCartStore(redisClient, cfg.GuestCartTTL),
	}

	// Создание утилит
	passwordHasher := password.NewBCryptHasher(password.DefaultCost)
	passwordPolicy := password.Policy{MinLength: cfg.MinPasswordLength}
	jwtManager := jwt.NewManager(cfg.JWTSecret, cfg.JWTTokenTTL)

	// Создание сервисов
	commission := service.NewCommissionService(repos.profile, repos.order, repos.ledger, publisher, rules, logger)
	svcs := &services{
		auth:       service.NewAuthService(repos.profile, passwordHasher, passwordPolicy, jwtManager, logger),
		commission: commission,
		order:      service.NewOrderService(repos.order, repos.product, repos.coupon, carts, commission, rules, logger),
		cart:       service.NewCartService(carts, repos.product, repos.coupon, logger),
		loyalty:    service.NewLoyaltyService(repos.ledger),
		withdraw:   service.NewWithdrawService(repos.profile, repos.withdraw, publisher, rules, logger),
		coupon:     service.NewCouponService(repos.coupon, logger),
	}

	// Создание handlers
	redisPinger := handlers.PingFunc(func(ctx context.Context) error {
		return redisClient.Ping(ctx).Err()
	})
	deps.handlers = &handlerSet{
		auth:     handlers.NewAuthHandler(svcs.auth, logger),
		cart:     handlers.NewCartHandler(svcs.cart, logger),
		checkout: handlers.NewCheckoutHandler(svcs.order, logger),
		orders:   handlers.NewOrdersHandler(svcs.order, logger),
		loyalty:  handlers.NewLoyaltyHandler(svcs.loyalty, logger),
		withdraw: handlers.NewWithdrawHandler(svcs.withdraw, logger),
		coupons:  handlers.NewCouponHandler(svcs.coupon, logger),
		health:   handlers.NewHealthHandler(dbPool, redisPinger, logger),
	}

	// Создание worker pool
	deps.workerPool = worker.NewPool(
		cfg.WorkerPoolSize,
		cfg.WorkerQueueSize,
		cfg.WorkerScanInterval,
		cfg.WorkerScanBatch,
		repos.order,
		commission,
		logger,
	)

	if cfg.KafkaEnabled() {
		reader := events.NewKafkaReader(cfg.KafkaBrokers, cfg.KafkaOrderTopic, cfg.KafkaGroupID)
		deps.consumer = events.NewOrderStatusConsumer(reader, svcs.order, logger)
		logger.Info("kafka consumer configured",
			zap.Strings("brokers", cfg.KafkaBrokers),
			zap.String("topic", cfg.KafkaOrderTopic),
		)
	}

	deps.repos = repos
	deps.services = svcs
	deps.jwtManager = jwtManager

	return deps, nil
}

// initPublisher подключается к RabbitMQ или возвращает заглушку, если брокер не настроен
func initPublisher(cfg *config.Config, logger *zap.Logger) (domain.EventPublisher, error) {
	if cfg.RabbitMQURL == "" {
		logger.Info("rabbitmq is not configured, loyalty events are not published")
		return events.NoopPublisher{}, nil
	}

	publisher, err := events.NewRabbitPublisher(cfg.RabbitMQURL, cfg.RabbitMQQueue)
	if err != nil {
		return nil, fmt.Errorf("failed to init event publisher: %w", err)
	}
	logger.Info("connected to rabbitmq", zap.String("queue", cfg.RabbitMQQueue))

	return publisher, nil
}
