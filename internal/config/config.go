package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

type Config struct {
	Env  string `validate:"required,oneof=development stage production"`
	Http Http

	Cors CORS `validate:"required"`

	Kafka Kafka `validate:"required"`

	Postgres Postgres `validate:"required"`

	Cache Cache

	PayPal PayPal `validate:"required"`

	Checkout Checkout

	Retry Retry
}

type Http struct {
	Host string `validate:"required,hostname|ip"`
	Port string `validate:"required,gt=0,lte=65535"`
}

type Kafka struct {
	GroupID string   `validate:"required"`
	Brokers []string `validate:"required,min=1,dive,hostname_port"`
	Topic   string   `validate:"required"`

	ReaderMaxWait time.Duration `validate:"gte=0"`
	BatchTimeout  time.Duration `validate:"gte=0"`
}

type Postgres struct {
	Host     string `validate:"required,hostname|ip"`
	Port     int    `validate:"required,gt=0,lte=65535"`
	DBName   string `validate:"required"`
	User     string `validate:"required"`
	Password string `validate:"required"`

	SSLMode string `validate:"required,oneof=disable require verify-ca verify-full"`

	MaxOpenConns    int           `validate:"gte=1"`
	MaxIdleConns    int           `validate:"gte=0"`
	ConnMaxLifetime time.Duration `validate:"gte=0"`
}

type CORS struct {
	AllowedOrigins []string `validate:"required,min=1,dive,url"`
}

type Cache struct {
	Capacity int           `validate:"gte=1"`
	TTL      time.Duration `validate:"gt=0"`

	// pending checkouts live until the buyer approves the payment
	CheckoutCapacity int           `validate:"gte=1"`
	CheckoutTTL      time.Duration `validate:"gt=0"`
}

type PayPal struct {
	BaseURL  string `validate:"required,url"`
	ClientID string `validate:"required"`
	Secret   string `validate:"required"`

	Currency      string  `validate:"required,len=3,uppercase"`
	LocalCurrency string  `validate:"required,len=3,uppercase"`
	ExchangeRate  float64 `validate:"gt=0"`

	BrandName string `validate:"max=127"`
	ReturnURL string `validate:"required,url"`
	CancelURL string `validate:"required,url"`

	Timeout time.Duration `validate:"gt=0"`

	RateLimit float64 `validate:"gte=0"`
	Burst     int     `validate:"gte=1"`
}

type Checkout struct {
	MinAmount float64 `validate:"gte=0"`
	MaxAmount float64 `validate:"gtfield=MinAmount"`
}

type Retry struct {
	MaxAttempts  int           `validate:"gte=1"`
	InitialDelay time.Duration `validate:"gt=0"`
	MaxDelay     time.Duration `validate:"gtefield=InitialDelay"`
	Multiplier   float64       `validate:"gt=1"`
}

func New() Config {
	return Config{
		Env: env("ENV", "development"),

		Http: Http{
			Host: env("HOST", "localhost"),
			Port: env("PORT", "8080"),
		},

		Cors: CORS{
			AllowedOrigins: strings.Split(env("ALLOWED_CORS_ORIGINS", "http://localhost:3000"), ","),
		},

		Kafka: Kafka{
			GroupID: env("KAFKA_GROUP_ID", "checkout-service"),
			Topic:   env("KAFKA_TOPIC", "paid-orders"),
			Brokers: strings.Split(env("KAFKA_BROKERS", "localhost:9092"), ","),

			ReaderMaxWait: envDuration("KAFKA_READER_MAX_WAIT", 10*time.Millisecond),
			BatchTimeout:  envDuration("KAFKA_BATCH_TIMEOUT", 10*time.Millisecond),
		},

		Postgres: Postgres{
			Port:     envInt("POSTGRES_PORT", 5432),
			Host:     env("POSTGRES_HOST", "localhost"),
			DBName:   env("POSTGRES_DB", "checkout"),
			User:     env("POSTGRES_USER", ""),
			Password: env("POSTGRES_PASSWORD", ""),

			SSLMode: env("POSTGRES_SSL_MODE", "disable"),

			MaxOpenConns:    envInt("POSTGRES_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    envInt("POSTGRES_MAX_IDLE_CONNS", 25),
			ConnMaxLifetime: envDuration("POSTGRES_CONN_MAX_LIFETIME", 5*time.Minute),
		},

		Cache: Cache{
			Capacity: envInt("CACHE_CAPACITY", 1000),
			TTL:      envDuration("CACHE_TTL", 30*time.Minute),

			CheckoutCapacity: envInt("CHECKOUT_CACHE_CAPACITY", 10000),
			CheckoutTTL:      envDuration("CHECKOUT_CACHE_TTL", 3*time.Hour),
		},

		PayPal: PayPal{
			BaseURL:  env("PAYPAL_BASE_URL", "https://api-m.sandbox.paypal.com"),
			ClientID: env("PAYPAL_CLIENT_ID", ""),
			Secret:   env("PAYPAL_CLIENT_SECRET", ""),

			Currency:      env("PAYPAL_CURRENCY", "USD"),
			LocalCurrency: env("LOCAL_CURRENCY", "OMR"),
			ExchangeRate:  envFloat("PAYPAL_EXCHANGE_RATE", 2.6),

			BrandName: env("PAYPAL_BRAND_NAME", ""),
			ReturnURL: env("PAYPAL_RETURN_URL", "http://localhost:3000/checkout/success"),
			CancelURL: env("PAYPAL_CANCEL_URL", "http://localhost:3000/checkout/cancel"),

			Timeout: envDuration("PAYPAL_TIMEOUT", 15*time.Second),

			RateLimit: envFloat("PAYPAL_RATE_LIMIT", 20),
			Burst:     envInt("PAYPAL_RATE_BURST", 10),
		},

		Checkout: Checkout{
			MinAmount: envFloat("CHECKOUT_MIN_AMOUNT", 0),
			MaxAmount: envFloat("CHECKOUT_MAX_AMOUNT", 999999.999),
		},

		Retry: Retry{
			MaxAttempts:  envInt("RETRY_MAX_ATTEMPTS", 3),
			InitialDelay: envDuration("RETRY_INITIAL_DELAY", 200*time.Millisecond),
			MaxDelay:     envDuration("RETRY_MAX_DELAY", 2*time.Second),
			Multiplier:   envFloat("RETRY_MULTIPLIER", 2),
		},
	}
}

func (c Config) Validate() error {
	validate := validator.New()
	return validate.Struct(c)
}

func env(key string, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		i, err := strconv.Atoi(value)
		if err == nil {
			return i
		}
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	if value, ok := os.LookupEnv(key); ok {
		f, err := strconv.ParseFloat(value, 64)
		if err == nil {
			return f
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		d, err := time.ParseDuration(value)
		if err == nil {
			return d
		}
	}
	return fallback
}
