package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/SergeyBogomolovv/checkout-service/internal/app"
	"github.com/SergeyBogomolovv/checkout-service/internal/checkout"
	"github.com/SergeyBogomolovv/checkout-service/internal/config"
	"github.com/SergeyBogomolovv/checkout-service/internal/handler"
	"github.com/SergeyBogomolovv/checkout-service/internal/paypal"
	"github.com/SergeyBogomolovv/checkout-service/internal/postgres"
	"github.com/SergeyBogomolovv/checkout-service/internal/publisher"
	"github.com/SergeyBogomolovv/checkout-service/internal/repo"
	"github.com/SergeyBogomolovv/checkout-service/internal/service"
	"github.com/SergeyBogomolovv/checkout-service/pkg/cache"
	"github.com/SergeyBogomolovv/checkout-service/pkg/trm"
	"github.com/SergeyBogomolovv/checkout-service/pkg/utils"

	"github.com/joho/godotenv"
)

// @title           Checkout Service API
// @version         1.0
// @description     Checkout with PayPal payments
func main() {
	conf := config.New()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	handler.RegisterMetrics()

	retry := utils.RetryConfig{
		MaxAttempts:  conf.Retry.MaxAttempts,
		InitialDelay: conf.Retry.InitialDelay,
		MaxDelay:     conf.Retry.MaxDelay,
		Multiplier:   conf.Retry.Multiplier,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	db, err := postgres.New(ctx, conf.Postgres, retry)
	panicIfErr("failed to connect to db", err)
	defer db.Close()
	logger.Info("postgres connected")

	orderRepo := repo.NewPostgresRepo(db)
	txManager := trm.NewManager(db)
	orderCache := cache.NewLRUCache(conf.Cache.Capacity, conf.Cache.TTL)
	checkoutCache := cache.NewLRUCache(conf.Cache.CheckoutCapacity, conf.Cache.CheckoutTTL)
	handler.RegisterCacheMetrics("orders", orderCache)
	handler.RegisterCacheMetrics("checkouts", checkoutCache)

	orderService := service.NewOrderService(logger, txManager, orderRepo, orderCache, retry)

	validator := checkout.NewValidator(logger, checkout.AmountLimits{
		Min: conf.Checkout.MinAmount,
		Max: conf.Checkout.MaxAmount,
	}, handler.CheckoutMetrics{})
	converter := checkout.NewConverter(conf.PayPal.ExchangeRate)

	gateway := paypal.NewClient(paypal.Config{
		BaseURL:  conf.PayPal.BaseURL,
		ClientID: conf.PayPal.ClientID,
		Secret:   conf.PayPal.Secret,
		Timeout:  conf.PayPal.Timeout,

		RateLimit: conf.PayPal.RateLimit,
		Burst:     conf.PayPal.Burst,
	})
	orderPublisher := publisher.NewKafkaPublisher(logger, conf.Kafka)

	paymentService := service.NewPaymentService(logger, validator, converter, gateway, checkoutCache, orderService, orderPublisher, service.PaymentConfig{
		Currency:      conf.PayPal.Currency,
		LocalCurrency: conf.PayPal.LocalCurrency,
		BrandName:     conf.PayPal.BrandName,
		ReturnURL:     conf.PayPal.ReturnURL,
		CancelURL:     conf.PayPal.CancelURL,
		Retry:         retry,
	})

	kafkaHandler := handler.NewKafkaHandler(logger, conf.Kafka, orderService)
	httpHandler := handler.NewHTTPHandler(logger, paymentService, orderService)

	app := app.New(logger, conf)

	app.SetHTTPHandlers(httpHandler)
	app.SetConsumers(kafkaHandler)
	app.SetClosers(orderPublisher)
	app.SetStarters(orderCache, checkoutCache, cacheWarmUpAdapter{svc: orderService, count: conf.Cache.Capacity})

	panicIfErr("failed to start app", app.Start(ctx))
	<-ctx.Done()
	panicIfErr("failed to stop app", app.Stop())
}

func init() {
	godotenv.Load()
}

func newLogger(env string) *slog.Logger {
	switch env {
	case "production":
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}

func panicIfErr(prefix string, err error) {
	if err != nil {
		panic(prefix + ": " + err.Error())
	}
}

type warmUpper interface {
	WarmUpCache(ctx context.Context, count int) error
}

type cacheWarmUpAdapter struct {
	svc   warmUpper
	count int
}

func (a cacheWarmUpAdapter) Start(ctx context.Context) error {
	return a.svc.WarmUpCache(ctx, a.count)
}
