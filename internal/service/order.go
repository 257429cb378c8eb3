package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SergeyBogomolovv/checkout-service/internal/entities"
	"github.com/SergeyBogomolovv/checkout-service/pkg/trm"
	"github.com/SergeyBogomolovv/checkout-service/pkg/utils"
)

type OrderRepo interface {
	GetOrderByNumber(ctx context.Context, orderNumber string) (entities.Order, error)
	LatestOrders(ctx context.Context, count int) ([]entities.Order, error)

	// Операции идемпотентны, т.к. используется ON CONFLICT DO NOTHING
	SaveOrder(ctx context.Context, o entities.Order) error
	SaveItems(ctx context.Context, orderNumber string, items []entities.Item) error
	SaveAddresses(ctx context.Context, orderNumber string, shipping entities.Address, billing *entities.Address) error
	SavePayment(ctx context.Context, orderNumber string, p entities.Payment) error
}

type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte)
	Delete(key string)
}

type orderService struct {
	logger    *slog.Logger
	txManager trm.Manager
	repo      OrderRepo
	cache     Cache
	retry     utils.RetryConfig
}

func NewOrderService(logger *slog.Logger, txManager trm.Manager, repo OrderRepo, cache Cache, retry utils.RetryConfig) *orderService {
	return &orderService{
		logger:    logger.With(slog.String("service", "order")),
		txManager: txManager,
		repo:      repo,
		cache:     cache,
		retry:     retry,
	}
}

// SaveOrder stores a finalized order with its items, addresses and payment in one transaction.
func (s *orderService) SaveOrder(ctx context.Context, order entities.Order) error {
	fn := func() error {
		return s.txManager.Do(ctx, func(ctx context.Context) error {
			if err := s.repo.SaveOrder(ctx, order); err != nil {
				return fmt.Errorf("failed to save order: %w", err)
			}
			if err := s.repo.SaveAddresses(ctx, order.OrderNumber, order.ShippingAddress, order.BillingAddress); err != nil {
				return fmt.Errorf("failed to save addresses: %w", err)
			}
			if err := s.repo.SavePayment(ctx, order.OrderNumber, order.Payment); err != nil {
				return fmt.Errorf("failed to save payment: %w", err)
			}
			if err := s.repo.SaveItems(ctx, order.OrderNumber, order.Items); err != nil {
				return fmt.Errorf("failed to save items: %w", err)
			}

			s.logger.Debug("order saved", slog.String("order_number", order.OrderNumber))
			return nil
		})
	}

	return utils.Retry(ctx, s.retry, fn)
}

// CacheOrder makes a just captured order readable before the consumer persists it.
func (s *orderService) CacheOrder(order entities.Order) {
	data, err := order.Marshal()
	if err != nil {
		s.logger.Error("failed to marshal order", slog.String("order_number", order.OrderNumber), slog.Any("error", err))
		return
	}
	s.cache.Set(order.OrderNumber, data)
}

func (s *orderService) GetOrder(ctx context.Context, orderNumber string) (entities.Order, error) {
	if data, ok := s.cache.Get(orderNumber); ok {
		var order entities.Order
		if err := order.Unmarshal(data); err != nil {
			s.logger.Error("failed to unmarshal order", slog.String("order_number", orderNumber), slog.Any("error", err))
			return entities.Order{}, fmt.Errorf("%w: %w", entities.ErrInvalidOrder, err)
		}
		return order, nil
	}

	var order entities.Order
	fn := func() error {
		var err error
		order, err = s.repo.GetOrderByNumber(ctx, orderNumber)
		return err
	}
	if err := utils.Retry(ctx, s.retry, fn, entities.ErrOrderNotFound); err != nil {
		return entities.Order{}, err
	}

	s.CacheOrder(order)
	return order, nil
}

// WarmUpCache loads the latest orders into the cache.
func (s *orderService) WarmUpCache(ctx context.Context, count int) error {
	orders, err := s.repo.LatestOrders(ctx, count)
	if err != nil {
		return fmt.Errorf("failed to load latest orders: %w", err)
	}

	for _, order := range orders {
		s.CacheOrder(order)
	}

	s.logger.Info("cache warmed up", slog.Int("orders", len(orders)))
	return nil
}
