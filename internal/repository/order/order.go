package order

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"dispatch/internal/entities"
	"dispatch/internal/repository"
	"dispatch/internal/service/dispatch"
	"dispatch/internal/service/order"
	"dispatch/internal/service/tracking"
)

const orderColumns = `id, customer_id, food_item_id, quantity, unit_price_cents,
		status, courier_id, address_line, address_city, address_postal_code,
		address_lat, address_lng, feedback_given, created_at, updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, orderModifyEntity entities.OrderModify) (*entities.Order, error) {
	address := orderModifyEntity.DeliveryAddress

	query := `INSERT INTO orders (id, customer_id, food_item_id, quantity, unit_price_cents,
			status, address_line, address_city, address_postal_code, address_lat, address_lng)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING ` + orderColumns

	var orderModel OrderDB
	err := r.querier.QueryRow(
		ctx,
		query,
		orderModifyEntity.ID,
		orderModifyEntity.CustomerID,
		orderModifyEntity.FoodItemID,
		orderModifyEntity.Quantity,
		orderModifyEntity.UnitPriceCents,
		orderModifyEntity.Status,
		address.Line,
		address.City,
		address.PostalCode,
		address.Lat,
		address.Lng,
	).Scan(
		&orderModel.ID,
		&orderModel.CustomerID,
		&orderModel.FoodItemID,
		&orderModel.Quantity,
		&orderModel.UnitPriceCents,
		&orderModel.Status,
		&orderModel.CourierID,
		&orderModel.AddressLine,
		&orderModel.AddressCity,
		&orderModel.AddressPostalCode,
		&orderModel.AddressLat,
		&orderModel.AddressLng,
		&orderModel.FeedbackGiven,
		&orderModel.CreatedAt,
		&orderModel.UpdatedAt,
	)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, order.ErrConflict
		}
		return nil, fmt.Errorf("unexpected order repository create error: %w", err)
	}

	return ToDomain(&orderModel), nil
}

func (r *Repository) GetByID(ctx context.Context, orderID string) (*entities.Order, error) {
	query := `SELECT ` + orderColumns + `
		FROM orders
		WHERE id = $1`

	var orderModel OrderDB
	err := r.querier.QueryRow(ctx, query, orderID).
		Scan(
			&orderModel.ID,
			&orderModel.CustomerID,
			&orderModel.FoodItemID,
			&orderModel.Quantity,
			&orderModel.UnitPriceCents,
			&orderModel.Status,
			&orderModel.CourierID,
			&orderModel.AddressLine,
			&orderModel.AddressCity,
			&orderModel.AddressPostalCode,
			&orderModel.AddressLat,
			&orderModel.AddressLng,
			&orderModel.FeedbackGiven,
			&orderModel.CreatedAt,
			&orderModel.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrOrderNotFound
		}

		return nil, fmt.Errorf("unexpected order repository getbyid error: %w", err)
	}

	return ToDomain(&orderModel), nil
}

// GetRouteHistory возвращает историю маршрута в порядке получения.
// captured_at может идти не по порядку из-за сетевого джиттера.
func (r *Repository) GetRouteHistory(ctx context.Context, orderID string) ([]entities.RoutePoint, error) {
	query := `SELECT lat, lng, captured_at, received_at
		FROM route_points
		WHERE order_id = $1
		ORDER BY received_at, captured_at`

	rows, err := r.querier.Query(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository getroutehistory error: %w", err)
	}
	defer rows.Close()

	pointModels := make([]RoutePointDB, 0, 16)
	for rows.Next() {
		var pointModel RoutePointDB
		err := rows.Scan(
			&pointModel.Lat,
			&pointModel.Lng,
			&pointModel.CapturedAt,
			&pointModel.ReceivedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected order repository getroutehistory error: %w", err)
		}
		pointModels = append(pointModels, pointModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository getroutehistory error: %w", err)
	}

	return ToRoutePointDomainList(pointModels), nil
}

// CancelPreparing - compare-and-set перехода preparing -> cancelled.
// WHERE повторяет условие легальности отмены: курьер не назначен.
func (r *Repository) CancelPreparing(ctx context.Context, orderID string) error {
	query := `UPDATE orders
		SET status = 'cancelled',
			updated_at = NOW()
		WHERE id = $1 AND status = 'preparing' AND courier_id IS NULL`

	result, err := r.querier.Exec(ctx, query, orderID)
	if err != nil {
		return fmt.Errorf("unexpected order repository cancel error: %w", err)
	}

	if result.RowsAffected() == 0 {
		if _, err := r.GetByID(ctx, orderID); err != nil {
			return err
		}
		return order.ErrInvalidTransition
	}

	return nil
}

func (r *Repository) MarkDelivered(ctx context.Context, orderID string, courierID int64) error {
	query := `UPDATE orders
		SET status = 'delivered',
			updated_at = NOW()
		WHERE id = $1 AND status = 'out_for_delivery' AND courier_id = $2`

	result, err := r.querier.Exec(ctx, query, orderID, courierID)
	if err != nil {
		return fmt.Errorf("unexpected order repository markdelivered error: %w", err)
	}

	if result.RowsAffected() == 0 {
		orderEntity, err := r.GetByID(ctx, orderID)
		if err != nil {
			return err
		}
		if orderEntity.Status == entities.OrderOutForDelivery &&
			orderEntity.CourierID != nil && *orderEntity.CourierID != courierID {
			return order.ErrCourierMismatch
		}
		return order.ErrInvalidTransition
	}

	return nil
}

func (r *Repository) SetFeedbackGiven(ctx context.Context, orderID string) error {
	query := `UPDATE orders
		SET feedback_given = true,
			updated_at = NOW()
		WHERE id = $1 AND status = 'delivered' AND NOT feedback_given`

	result, err := r.querier.Exec(ctx, query, orderID)
	if err != nil {
		return fmt.Errorf("unexpected order repository setfeedback error: %w", err)
	}

	if result.RowsAffected() == 0 {
		orderEntity, err := r.GetByID(ctx, orderID)
		if err != nil {
			return err
		}
		if orderEntity.FeedbackGiven {
			return order.ErrFeedbackAlreadyGiven
		}
		return order.ErrInvalidTransition
	}

	return nil
}

// MarkOutForDelivery - compare-and-set назначения курьера. Заказ
// должен оставаться в preparing без курьера на момент UPDATE:
// конкурентное назначение увидит ноль затронутых строк.
func (r *Repository) MarkOutForDelivery(ctx context.Context, orderID string, courierID int64) error {
	query := `UPDATE orders
		SET status = 'out_for_delivery',
			courier_id = $2,
			updated_at = NOW()
		WHERE id = $1 AND status = 'preparing' AND courier_id IS NULL`

	result, err := r.querier.Exec(ctx, query, orderID, courierID)
	if err != nil {
		return fmt.Errorf("unexpected order repository markoutfordelivery error: %w", err)
	}

	if result.RowsAffected() == 0 {
		orderEntity, err := r.GetByID(ctx, orderID)
		if err != nil {
			return err
		}
		if orderEntity.CourierID != nil || orderEntity.Status == entities.OrderOutForDelivery {
			return dispatch.ErrOrderAlreadyAssigned
		}
		return dispatch.ErrOrderNotPreparing
	}

	return nil
}

func (r *Repository) ListUnassigned(ctx context.Context, limit int) ([]entities.Order, error) {
	query := `SELECT ` + orderColumns + `
		FROM orders
		WHERE status = 'preparing' AND courier_id IS NULL
		ORDER BY created_at
		LIMIT $1`

	rows, err := r.querier.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository listunassigned error: %w", err)
	}
	defer rows.Close()

	orderModels := make([]OrderDB, 0, limit)
	for rows.Next() {
		var orderModel OrderDB
		err := rows.Scan(
			&orderModel.ID,
			&orderModel.CustomerID,
			&orderModel.FoodItemID,
			&orderModel.Quantity,
			&orderModel.UnitPriceCents,
			&orderModel.Status,
			&orderModel.CourierID,
			&orderModel.AddressLine,
			&orderModel.AddressCity,
			&orderModel.AddressPostalCode,
			&orderModel.AddressLat,
			&orderModel.AddressLng,
			&orderModel.FeedbackGiven,
			&orderModel.CreatedAt,
			&orderModel.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected order repository listunassigned error: %w", err)
		}
		orderModels = append(orderModels, orderModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository listunassigned error: %w", err)
	}

	return ToDomainList(orderModels), nil
}

func (r *Repository) GetActiveByCourier(ctx context.Context, courierID int64) (*entities.Order, error) {
	query := `SELECT ` + orderColumns + `
		FROM orders
		WHERE courier_id = $1 AND status = 'out_for_delivery'
		ORDER BY updated_at DESC
		LIMIT 1`

	var orderModel OrderDB
	err := r.querier.QueryRow(ctx, query, courierID).
		Scan(
			&orderModel.ID,
			&orderModel.CustomerID,
			&orderModel.FoodItemID,
			&orderModel.Quantity,
			&orderModel.UnitPriceCents,
			&orderModel.Status,
			&orderModel.CourierID,
			&orderModel.AddressLine,
			&orderModel.AddressCity,
			&orderModel.AddressPostalCode,
			&orderModel.AddressLat,
			&orderModel.AddressLng,
			&orderModel.FeedbackGiven,
			&orderModel.CreatedAt,
			&orderModel.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, tracking.ErrNoActiveOrder
		}

		return nil, fmt.Errorf("unexpected order repository getactivebycourier error: %w", err)
	}

	return ToDomain(&orderModel), nil
}

// AppendRoutePoint идемпотентна: повторная доставка того же отсчета
// гасится уникальным индексом (order_id, captured_at).
func (r *Repository) AppendRoutePoint(ctx context.Context, orderID string, point entities.RoutePoint) error {
	query := `INSERT INTO route_points (order_id, lat, lng, captured_at, received_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (order_id, captured_at) DO NOTHING`

	_, err := r.querier.Exec(ctx, query, orderID, point.Lat, point.Lng, point.CapturedAt, point.ReceivedAt)
	if err != nil {
		return fmt.Errorf("unexpected order repository appendroutepoint error: %w", err)
	}

	return nil
}
