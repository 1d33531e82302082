package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config содержит конфигурацию приложения
type Config struct {
	RunAddress  string        // Адрес и порт запуска сервиса
	DatabaseURI string        // URI подключения к БД
	JWTSecret   string        // Секретный ключ для JWT
	JWTTokenTTL time.Duration // Время жизни JWT токена
	LogLevel    string        // Уровень логирования

	// Worker Pool конфигурация
	WorkerPoolSize     int           // Количество воркеров
	WorkerQueueSize    int           // Размер очереди заказов
	WorkerScanInterval time.Duration // Интервал поиска заказов без комиссии
	WorkerScanBatch    int           // Сколько заказов брать за один проход

	// Валидация
	MinPasswordLength int // Минимальная длина пароля

	// Redis для гостевых корзин
	RedisAddr     string
	RedisPassword string
	GuestCartTTL  time.Duration

	// Kafka отключена, если список брокеров пуст
	KafkaBrokers    []string
	KafkaOrderTopic string
	KafkaGroupID    string

	// Без RabbitMQ события не публикуются
	RabbitMQURL   string
	RabbitMQQueue string

	LoyaltyRulesFile string // YAML с правилами программы лояльности
}

// Load загружает конфигурацию из .env, переменных окружения и флагов командной строки
func Load() (*Config, error) {
	if err := loadDotEnv(".env"); err != nil {
		return nil, err
	}
	return Parse(os.Args[1:])
}

// loadDotEnv загружает переменные из файла. Уже заданные переменные не перезаписываются.
func loadDotEnv(path string) error {
	err := godotenv.Load(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

// Parse разбирает флаги и переменные окружения
// Приоритет: env переменные > флаги > дефолтные значения
func Parse(args []string) (*Config, error) {
	cfg := &Config{
		JWTTokenTTL:        24 * time.Hour,
		LogLevel:           "info",
		WorkerPoolSize:     3,
		WorkerQueueSize:    100,
		WorkerScanInterval: 10 * time.Second,
		WorkerScanBatch:    100,
		MinPasswordLength:  6,
		GuestCartTTL:       7 * 24 * time.Hour,
		KafkaOrderTopic:    "order-status",
		KafkaGroupID:       "shopvely-loyalty",
		RabbitMQQueue:      "loyalty-events",
	}

	// Определяем флаги
	flags := flag.NewFlagSet("shopvely", flag.ContinueOnError)
	flags.StringVar(&cfg.RunAddress, "a", ":8080", "address and port to run server")
	flags.StringVar(&cfg.DatabaseURI, "d", "", "database URI")
	flags.StringVar(&cfg.RedisAddr, "r", "localhost:6379", "redis address")
	if err := flags.Parse(args); err != nil {
		return nil, err
	}

	// Переменные окружения имеют приоритет над флагами
	stringEnv("RUN_ADDRESS", &cfg.RunAddress)
	stringEnv("DATABASE_URI", &cfg.DatabaseURI)
	stringEnv("LOG_LEVEL", &cfg.LogLevel)
	stringEnv("REDIS_ADDR", &cfg.RedisAddr)
	stringEnv("REDIS_PASSWORD", &cfg.RedisPassword)
	stringEnv("KAFKA_ORDER_TOPIC", &cfg.KafkaOrderTopic)
	stringEnv("KAFKA_GROUP_ID", &cfg.KafkaGroupID)
	stringEnv("RABBITMQ_URL", &cfg.RabbitMQURL)
	stringEnv("RABBITMQ_QUEUE", &cfg.RabbitMQQueue)
	stringEnv("LOYALTY_RULES_FILE", &cfg.LoyaltyRulesFile)

	// JWT секрет (только из env, не из флагов для безопасности)
	if envJWTSecret, ok := os.LookupEnv("JWT_SECRET"); ok {
		cfg.JWTSecret = envJWTSecret
	} else {
		cfg.JWTSecret = "default-secret-key-change-in-production"
	}

	if envBrokers, ok := os.LookupEnv("KAFKA_BROKERS"); ok {
		cfg.KafkaBrokers = splitList(envBrokers)
	}

	positiveIntEnv("WORKER_POOL_SIZE", &cfg.WorkerPoolSize)
	positiveIntEnv("WORKER_QUEUE_SIZE", &cfg.WorkerQueueSize)
	positiveIntEnv("WORKER_SCAN_BATCH", &cfg.WorkerScanBatch)
	positiveIntEnv("MIN_PASSWORD_LENGTH", &cfg.MinPasswordLength)
	positiveDurationEnv("WORKER_SCAN_INTERVAL", &cfg.WorkerScanInterval)
	positiveDurationEnv("JWT_TOKEN_TTL", &cfg.JWTTokenTTL)
	positiveDurationEnv("GUEST_CART_TTL", &cfg.GuestCartTTL)

	// Валидация обязательных параметров
	if cfg.DatabaseURI == "" {
		return nil, fmt.Errorf("database URI is required (use -d flag or DATABASE_URI env)")
	}

	return cfg, nil
}

// KafkaEnabled сообщает, нужно ли запускать потребителя статусов заказов
func (c *Config) KafkaEnabled() bool {
	return len(c.KafkaBrokers) > 0
}

func stringEnv(key string, dst *string) {
	if value, ok := os.LookupEnv(key); ok {
		*dst = value
	}
}

// Некорректные значения игнорируются, остается значение по умолчанию
func positiveIntEnv(key string, dst *int) {
	if value, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(value); err == nil && n > 0 {
			*dst = n
		}
	}
}

func positiveDurationEnv(key string, dst *time.Duration) {
	if value, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(value); err == nil && d > 0 {
			*dst = d
		}
	}
}

func splitList(value string) []string {
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
