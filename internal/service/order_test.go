package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/checkout-service/internal/entities"
	"github.com/SergeyBogomolovv/checkout-service/internal/service"
	mocks "github.com/SergeyBogomolovv/checkout-service/internal/service/mocks"
	txMocks "github.com/SergeyBogomolovv/checkout-service/pkg/trm/mocks"
	"github.com/SergeyBogomolovv/checkout-service/pkg/utils"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testRetry = utils.RetryConfig{
	MaxAttempts:  3,
	InitialDelay: time.Millisecond,
	Multiplier:   2,
}

func testOrder() entities.Order {
	return entities.Order{
		OrderNumber:    "ORD-20261017-1A2B3C4D",
		TrackingNumber: "OM0123456789AB",
		CustomerEmail:  "ahmed@example.com",
		Locale:         entities.LocaleArabic,
		Status:         entities.OrderStatusPaid,
		Currency:       "OMR",
		Items: []entities.Item{
			{ProductID: "lipstick-01", Name: "Velvet Lipstick", Quantity: 2, UnitPrice: decimal.RequireFromString("45.000")},
		},
		Totals: entities.Totals{
			Subtotal: decimal.RequireFromString("90.000"),
			Tax:      decimal.RequireFromString("4.500"),
			Shipping: decimal.RequireFromString("5.000"),
			Total:    decimal.RequireFromString("99.500"),
		},
		ShippingAddress: entities.Address{FullName: "Ahmed Al-Balushi", Phone: "91234567", CountryCode: "OM"},
		Payment: entities.Payment{
			Provider:  entities.ProviderPayPal,
			CaptureID: "CAP-1",
			Currency:  "USD",
			Amount:    decimal.RequireFromString("258.70"),
		},
	}
}

func assertSameOrder(t *testing.T, want, got entities.Order) {
	t.Helper()
	assert.Equal(t, want.OrderNumber, got.OrderNumber)
	assert.Equal(t, want.TrackingNumber, got.TrackingNumber)
	assert.Equal(t, want.Locale, got.Locale)
	assert.True(t, want.Totals.Total.Equal(got.Totals.Total), "total: want %s, got %s", want.Totals.Total, got.Totals.Total)
	assert.True(t, want.Payment.Amount.Equal(got.Payment.Amount), "payment: want %s, got %s", want.Payment.Amount, got.Payment.Amount)
	assert.Len(t, got.Items, len(want.Items))
}

func TestOrderService_SaveOrder(t *testing.T) {
	type MockBehavior func(orderRepo *mocks.MockOrderRepo)

	dbError := errors.New("db error")
	order := testOrder()

	testCases := []struct {
		name         string
		mockBehavior MockBehavior
		wantErr      error
	}{
		{
			name: "OK",
			mockBehavior: func(orderRepo *mocks.MockOrderRepo) {
				orderRepo.EXPECT().SaveOrder(mock.Anything, mock.Anything).Return(nil)
				orderRepo.EXPECT().SaveAddresses(mock.Anything, order.OrderNumber, mock.Anything, mock.Anything).Return(nil)
				orderRepo.EXPECT().SavePayment(mock.Anything, order.OrderNumber, mock.Anything).Return(nil)
				orderRepo.EXPECT().SaveItems(mock.Anything, order.OrderNumber, mock.Anything).Return(nil)
			},
		},
		{
			name: "SaveOrder fails",
			mockBehavior: func(orderRepo *mocks.MockOrderRepo) {
				orderRepo.EXPECT().SaveOrder(mock.Anything, mock.Anything).
					Times(testRetry.MaxAttempts).Return(dbError)
			},
			wantErr: dbError,
		},
		{
			name: "SaveAddresses fails",
			mockBehavior: func(orderRepo *mocks.MockOrderRepo) {
				orderRepo.EXPECT().SaveOrder(mock.Anything, mock.Anything).Return(nil)
				orderRepo.EXPECT().SaveAddresses(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
					Return(dbError)
				orderRepo.EXPECT().SavePayment(mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()
				orderRepo.EXPECT().SaveItems(mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()
			},
			wantErr: dbError,
		},
		{
			name: "Retry works (first attempt fails, second succeeds)",
			mockBehavior: func(orderRepo *mocks.MockOrderRepo) {
				// первая попытка - SaveOrder падает
				orderRepo.EXPECT().SaveOrder(mock.Anything, mock.Anything).
					Once().Return(errors.New("temporary error"))
				// вторая попытка - всё ок
				orderRepo.EXPECT().SaveOrder(mock.Anything, mock.Anything).
					Once().Return(nil)
				orderRepo.EXPECT().SaveAddresses(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)
				orderRepo.EXPECT().SavePayment(mock.Anything, mock.Anything, mock.Anything).Return(nil)
				orderRepo.EXPECT().SaveItems(mock.Anything, mock.Anything, mock.Anything).Return(nil)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			orderRepo := mocks.NewMockOrderRepo(t)
			cache := mocks.NewMockCache(t)
			tx := txMocks.NewMockManager(t)
			logger := slog.New(slog.NewTextHandler(io.Discard, nil))

			tx.EXPECT().
				Do(mock.Anything, mock.Anything).
				RunAndReturn(
					func(ctx context.Context, cb func(ctx context.Context) error) error {
						return cb(ctx)
					})

			tc.mockBehavior(orderRepo)

			svc := service.NewOrderService(logger, tx, orderRepo, cache, testRetry)

			err := svc.SaveOrder(context.Background(), order)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestOrderService_GetOrder(t *testing.T) {
	type MockBehavior func(orderRepo *mocks.MockOrderRepo, cache *mocks.MockCache)

	validOrder := testOrder()
	number := validOrder.OrderNumber
	validData, err := validOrder.Marshal()
	require.NoError(t, err)

	testCases := []struct {
		name         string
		orderNumber  string
		mockBehavior MockBehavior
		wantErr      error
		want         entities.Order
	}{
		{
			name:        "success from cache",
			orderNumber: number,
			mockBehavior: func(_ *mocks.MockOrderRepo, cache *mocks.MockCache) {
				cache.EXPECT().
					Get(number).
					Return(validData, true).Once()
			},
			want: validOrder,
		},
		{
			name:        "cache hit but unmarshal fails",
			orderNumber: number,
			mockBehavior: func(_ *mocks.MockOrderRepo, cache *mocks.MockCache) {
				cache.EXPECT().
					Get(number).
					Return([]byte("broken"), true).Once()
			},
			wantErr: entities.ErrInvalidOrder,
		},
		{
			name:        "success from repo and set to cache",
			orderNumber: number,
			mockBehavior: func(orderRepo *mocks.MockOrderRepo, cache *mocks.MockCache) {
				cache.EXPECT().
					Get(number).
					Return(nil, false).Once()
				orderRepo.EXPECT().
					GetOrderByNumber(mock.Anything, number).
					Return(validOrder, nil).Once()
				cache.EXPECT().
					Set(number, validData).
					Return().Once()
			},
			want: validOrder,
		},
		{
			name:        "not found in repo is not retried",
			orderNumber: "ORD-MISSING",
			mockBehavior: func(orderRepo *mocks.MockOrderRepo, cache *mocks.MockCache) {
				cache.EXPECT().
					Get("ORD-MISSING").
					Return(nil, false).Once()
				orderRepo.EXPECT().
					GetOrderByNumber(mock.Anything, "ORD-MISSING").
					Return(entities.Order{}, entities.ErrOrderNotFound).Once()
			},
			wantErr: entities.ErrOrderNotFound,
		},
		{
			name:        "second attempt from repo",
			orderNumber: number,
			mockBehavior: func(orderRepo *mocks.MockOrderRepo, cache *mocks.MockCache) {
				cache.EXPECT().
					Get(number).
					Return(nil, false).Once()
				orderRepo.EXPECT().
					GetOrderByNumber(mock.Anything, number).
					Return(entities.Order{}, errors.New("some error")).Once()
				orderRepo.EXPECT().
					GetOrderByNumber(mock.Anything, number).
					Return(validOrder, nil).Once()
				cache.EXPECT().
					Set(number, validData).
					Return().Once()
			},
			want: validOrder,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			orderRepo := mocks.NewMockOrderRepo(t)
			cache := mocks.NewMockCache(t)
			tx := txMocks.NewMockManager(t)
			logger := slog.New(slog.NewTextHandler(io.Discard, nil))

			tc.mockBehavior(orderRepo, cache)

			svc := service.NewOrderService(logger, tx, orderRepo, cache, testRetry)

			got, err := svc.GetOrder(context.Background(), tc.orderNumber)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assertSameOrder(t, tc.want, got)
		})
	}
}

func TestOrderService_WarmUpCache(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("caches latest orders", func(t *testing.T) {
		orderRepo := mocks.NewMockOrderRepo(t)
		cache := mocks.NewMockCache(t)

		first, second := testOrder(), testOrder()
		second.OrderNumber = "ORD-20261017-FFFF0000"

		orderRepo.EXPECT().LatestOrders(mock.Anything, 10).Return([]entities.Order{first, second}, nil).Once()
		cache.EXPECT().Set(first.OrderNumber, mock.Anything).Return().Once()
		cache.EXPECT().Set(second.OrderNumber, mock.Anything).Return().Once()

		svc := service.NewOrderService(logger, txMocks.NewMockManager(t), orderRepo, cache, testRetry)
		require.NoError(t, svc.WarmUpCache(context.Background(), 10))
	})

	t.Run("repo error", func(t *testing.T) {
		orderRepo := mocks.NewMockOrderRepo(t)
		dbError := errors.New("db error")
		orderRepo.EXPECT().LatestOrders(mock.Anything, 10).Return(nil, dbError).Once()

		svc := service.NewOrderService(logger, txMocks.NewMockManager(t), orderRepo, mocks.NewMockCache(t), testRetry)
		assert.ErrorIs(t, svc.WarmUpCache(context.Background(), 10), dbError)
	})
}
