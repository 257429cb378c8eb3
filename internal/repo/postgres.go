package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/SergeyBogomolovv/checkout-service/internal/entities"
	"github.com/SergeyBogomolovv/checkout-service/pkg/trm"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

var (
	orderColumns = []string{
		"order_number", "tracking_number", "customer_email", "locale", "status",
		"currency", "subtotal", "tax", "shipping", "total", "created_at",
	}
	itemColumns = []string{
		"order_number", "position", "product_id", "name", "quantity", "unit_price",
	}
	addressColumns = []string{
		"order_number", "kind", "full_name", "phone", "email", "street_address",
		"wilayat", "governorate", "postal_code", "country_code",
	}
	paymentColumns = []string{
		"order_number", "provider", "gateway_order_id", "capture_id", "status", "currency",
		"amount", "exchange_rate", "payer_id", "payer_email", "captured_at",
	}
)

type postgresRepo struct {
	db *sqlx.DB
	qb sq.StatementBuilderType
}

func NewPostgresRepo(db *sqlx.DB) *postgresRepo {
	return &postgresRepo{
		db: db,
		qb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *postgresRepo) LatestOrders(ctx context.Context, count int) ([]entities.Order, error) {
	query, args := r.qb.Select(orderColumns...).
		From("orders").
		OrderBy("created_at DESC").
		Limit(uint64(count)).
		MustSql()

	var orders []Order
	if err := r.selectContext(ctx, &orders, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select orders: %w", err)
	}

	if len(orders) == 0 {
		return []entities.Order{}, nil
	}

	numbers := make([]string, len(orders))
	for i, order := range orders {
		numbers[i] = order.OrderNumber
	}

	addresses, err := r.selectAddresses(ctx, sq.Eq{"order_number": numbers})
	if err != nil {
		return nil, err
	}
	addressMap := make(map[string][]Address, len(orders))
	for _, a := range addresses {
		addressMap[a.OrderNumber] = append(addressMap[a.OrderNumber], a)
	}

	payments, err := r.selectPayments(ctx, sq.Eq{"order_number": numbers})
	if err != nil {
		return nil, err
	}
	paymentMap := make(map[string]Payment, len(payments))
	for _, p := range payments {
		paymentMap[p.OrderNumber] = p
	}

	items, err := r.selectItems(ctx, sq.Eq{"order_number": numbers})
	if err != nil {
		return nil, err
	}
	itemsMap := make(map[string][]Item, len(orders))
	for _, it := range items {
		itemsMap[it.OrderNumber] = append(itemsMap[it.OrderNumber], it)
	}

	result := make([]entities.Order, 0, len(orders))
	for _, o := range orders {
		result = append(result, OrderToEntity(o, addressMap[o.OrderNumber], paymentMap[o.OrderNumber], itemsMap[o.OrderNumber]))
	}

	return result, nil
}

func (r *postgresRepo) GetOrderByNumber(ctx context.Context, orderNumber string) (entities.Order, error) {
	query, args := r.qb.Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"order_number": orderNumber}).
		MustSql()

	var order Order
	err := r.getContext(ctx, &order, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to get order: %w", err)
	}

	where := sq.Eq{"order_number": orderNumber}

	addresses, err := r.selectAddresses(ctx, where)
	if err != nil {
		return entities.Order{}, err
	}

	payments, err := r.selectPayments(ctx, where)
	if err != nil {
		return entities.Order{}, err
	}
	if len(payments) == 0 {
		return entities.Order{}, fmt.Errorf("failed to get payment: %w", sql.ErrNoRows)
	}

	items, err := r.selectItems(ctx, where)
	if err != nil {
		return entities.Order{}, err
	}

	return OrderToEntity(order, addresses, payments[0], items), nil
}

func (r *postgresRepo) selectAddresses(ctx context.Context, where sq.Eq) ([]Address, error) {
	query, args := r.qb.Select(addressColumns...).
		From("order_addresses").
		Where(where).
		MustSql()

	var addresses []Address
	if err := r.selectContext(ctx, &addresses, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select addresses: %w", err)
	}
	return addresses, nil
}

func (r *postgresRepo) selectPayments(ctx context.Context, where sq.Eq) ([]Payment, error) {
	query, args := r.qb.Select(paymentColumns...).
		From("payments").
		Where(where).
		MustSql()

	var payments []Payment
	if err := r.selectContext(ctx, &payments, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select payments: %w", err)
	}
	return payments, nil
}

func (r *postgresRepo) selectItems(ctx context.Context, where sq.Eq) ([]Item, error) {
	query, args := r.qb.Select(itemColumns...).
		From("order_items").
		Where(where).
		OrderBy("order_number", "position").
		MustSql()

	var items []Item
	if err := r.selectContext(ctx, &items, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select items: %w", err)
	}
	return items, nil
}

func (r *postgresRepo) SaveOrder(ctx context.Context, o entities.Order) error {
	query, args := r.qb.Insert("orders").
		Columns(orderColumns...).
		Values(
			o.OrderNumber, o.TrackingNumber, o.CustomerEmail, string(o.Locale), string(o.Status),
			o.Currency, o.Totals.Subtotal, o.Totals.Tax, o.Totals.Shipping, o.Totals.Total, o.CreatedAt,
		).
		Suffix("ON CONFLICT (order_number) DO NOTHING").
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save order: %w", err)
	}
	return nil
}

func (r *postgresRepo) SaveAddresses(ctx context.Context, orderNumber string, shipping entities.Address, billing *entities.Address) error {
	q := r.qb.Insert("order_addresses").
		Columns(addressColumns...).
		Suffix("ON CONFLICT (order_number, kind) DO NOTHING")

	q = q.Values(addressValues(orderNumber, entities.AddressShipping, shipping)...)
	if billing != nil {
		q = q.Values(addressValues(orderNumber, entities.AddressBilling, *billing)...)
	}

	query, args := q.MustSql()
	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save addresses: %w", err)
	}
	return nil
}

func addressValues(orderNumber string, kind entities.AddressKind, a entities.Address) []any {
	return []any{
		orderNumber, string(kind), a.FullName, a.Phone, nullString(a.Email), a.StreetAddress,
		a.Wilayat, a.Governorate, nullString(a.PostalCode), a.CountryCode,
	}
}

func (r *postgresRepo) SavePayment(ctx context.Context, orderNumber string, p entities.Payment) error {
	query, args := r.qb.Insert("payments").
		Columns(paymentColumns...).
		Values(
			orderNumber, p.Provider, p.GatewayOrderID, p.CaptureID, p.Status, p.Currency,
			p.Amount, p.ExchangeRate, nullString(p.PayerID), nullString(p.PayerEmail), p.CapturedAt,
		).
		Suffix("ON CONFLICT (order_number) DO NOTHING").
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save payment: %w", err)
	}
	return nil
}

func (r *postgresRepo) SaveItems(ctx context.Context, orderNumber string, items []entities.Item) error {
	if len(items) == 0 {
		return nil
	}

	q := r.qb.Insert("order_items").
		Columns(itemColumns...).
		Suffix("ON CONFLICT (order_number, position) DO NOTHING")

	for i, it := range items {
		q = q.Values(orderNumber, i, it.ProductID, it.Name, it.Quantity, it.UnitPrice)
	}

	query, args := q.MustSql()
	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save items: %w", err)
	}
	return nil
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

func (r *postgresRepo) execContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.ExecContext(ctx, query, args...)
	}
	return r.db.ExecContext(ctx, query, args...)
}

func (r *postgresRepo) getContext(ctx context.Context, dest any, query string, args ...any) error {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.GetContext(ctx, dest, query, args...)
	}
	return r.db.GetContext(ctx, dest, query, args...)
}

func (r *postgresRepo) selectContext(ctx context.Context, dest any, query string, args ...any) error {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.SelectContext(ctx, dest, query, args...)
	}
	return r.db.SelectContext(ctx, dest, query, args...)
}
