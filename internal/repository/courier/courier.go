package courier

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"dispatch/internal/entities"
	"dispatch/internal/repository"
	"dispatch/internal/service/courier"
	"dispatch/internal/service/dispatch"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const courierColumns = `id, username, is_online, is_busy,
		location_lat, location_lng, location_at, created_at, updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, courierModifyEntity entities.CourierModify) (int64, error) {
	courierModifyModel := FromDomainModify(&courierModifyEntity)
	query := `INSERT INTO couriers (username, is_online, is_busy)
		VALUES ($1, COALESCE($2, false), false)
		RETURNING id`

	var id int64
	err := r.querier.QueryRow(
		ctx,
		query,
		courierModifyModel.Username,
		courierModifyModel.IsOnline,
	).Scan(&id)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return 0, courier.ErrConflict
		}
		return 0, fmt.Errorf("unexpected courier repository create error: %w", err)
	}

	return id, nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Courier, error) {
	query := `SELECT ` + courierColumns + `
		FROM couriers
		WHERE id = $1`

	var courierModel CourierDB
	err := r.querier.QueryRow(ctx, query, id).
		Scan(
			&courierModel.ID,
			&courierModel.Username,
			&courierModel.IsOnline,
			&courierModel.IsBusy,
			&courierModel.LocationLat,
			&courierModel.LocationLng,
			&courierModel.LocationAt,
			&courierModel.CreatedAt,
			&courierModel.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, courier.ErrCourierNotFound
		}

		return nil, fmt.Errorf("unexpected courier repository getbyid error: %w", err)
	}

	return ToDomain(&courierModel), nil
}

func (r *Repository) ListAvailable(ctx context.Context) ([]entities.Courier, error) {
	query := `SELECT ` + courierColumns + `
		FROM couriers
		WHERE is_online AND NOT is_busy
		ORDER BY id`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected courier repository listavailable error: %w", err)
	}
	defer rows.Close()

	courierModels := make([]CourierDB, 0, 8)
	for rows.Next() {
		var courierModel CourierDB
		err := rows.Scan(
			&courierModel.ID,
			&courierModel.Username,
			&courierModel.IsOnline,
			&courierModel.IsBusy,
			&courierModel.LocationLat,
			&courierModel.LocationLng,
			&courierModel.LocationAt,
			&courierModel.CreatedAt,
			&courierModel.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected courier repository listavailable error: %w", err)
		}
		courierModels = append(courierModels, courierModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected courier repository listavailable error: %w", err)
	}

	return ToDomainList(courierModels), nil
}

func (r *Repository) Update(ctx context.Context, courierModifyEntity entities.CourierModify) (*entities.Courier, error) {
	courierModifyModel := FromDomainModify(&courierModifyEntity)

	builder := qb.
		Update("couriers")

	// опциональные поля
	if courierModifyModel.Username != nil {
		builder = builder.Set("username", courierModifyModel.Username)
	}
	if courierModifyModel.IsOnline != nil {
		builder = builder.Set("is_online", courierModifyModel.IsOnline)
	}
	if courierModifyModel.IsBusy != nil {
		builder = builder.Set("is_busy", courierModifyModel.IsBusy)
	}
	if courierModifyModel.LocationLat != nil && courierModifyModel.LocationLng != nil {
		builder = builder.
			Set("location_lat", courierModifyModel.LocationLat).
			Set("location_lng", courierModifyModel.LocationLng).
			Set("location_at", courierModifyModel.LocationAt)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": courierModifyModel.ID}).
		Suffix("RETURNING " + courierColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected courier repository update error: %w", err)
	}

	var courierModel CourierDB
	err = r.querier.QueryRow(ctx, query, args...).
		Scan(
			&courierModel.ID,
			&courierModel.Username,
			&courierModel.IsOnline,
			&courierModel.IsBusy,
			&courierModel.LocationLat,
			&courierModel.LocationLng,
			&courierModel.LocationAt,
			&courierModel.CreatedAt,
			&courierModel.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, courier.ErrCourierNotFound
		}

		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, courier.ErrConflict
		}

		return nil, fmt.Errorf("unexpected courier repository update error: %w", err)
	}

	return ToDomain(&courierModel), nil
}

// SetBusy - compare-and-set флага is_busy. Ноль затронутых строк
// разбирается повторным чтением: либо курьера нет, либо флаг уже
// в целевом состоянии.
func (r *Repository) SetBusy(ctx context.Context, id int64, busy bool) error {
	query := `UPDATE couriers
		SET is_busy = $2,
			updated_at = NOW()
		WHERE id = $1 AND is_busy = NOT $2`

	result, err := r.querier.Exec(ctx, query, id, busy)
	if err != nil {
		return fmt.Errorf("unexpected courier repository setbusy error: %w", err)
	}

	if result.RowsAffected() == 0 {
		if _, err := r.GetByID(ctx, id); err != nil {
			return err
		}
		if busy {
			return courier.ErrCourierAlreadyBusy
		}
		return courier.ErrCourierNotBusy
	}

	return nil
}

func (r *Repository) UpdateLocation(ctx context.Context, id int64, point entities.GeoPoint, at time.Time) error {
	query := `UPDATE couriers
		SET location_lat = $2,
			location_lng = $3,
			location_at = $4,
			updated_at = NOW()
		WHERE id = $1`

	result, err := r.querier.Exec(ctx, query, id, point.Lat, point.Lng, at)
	if err != nil {
		return fmt.Errorf("unexpected courier repository updatelocation error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return courier.ErrCourierNotFound
	}

	return nil
}

// GetForDispatch выбирает первого свободного курьера с блокировкой
// строки. SKIP LOCKED не дает конкурентным транзакциям встать в
// очередь за одним и тем же курьером.
func (r *Repository) GetForDispatch(ctx context.Context) (*entities.Courier, error) {
	query := `SELECT ` + courierColumns + `
		FROM couriers
		WHERE is_online AND NOT is_busy
		ORDER BY id
		LIMIT 1
		FOR UPDATE SKIP LOCKED`

	var courierModel CourierDB
	err := r.querier.QueryRow(ctx, query).
		Scan(
			&courierModel.ID,
			&courierModel.Username,
			&courierModel.IsOnline,
			&courierModel.IsBusy,
			&courierModel.LocationLat,
			&courierModel.LocationLng,
			&courierModel.LocationAt,
			&courierModel.CreatedAt,
			&courierModel.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, dispatch.ErrNoCourierAvailable
		}

		return nil, fmt.Errorf("unexpected courier repository getfordispatch error: %w", err)
	}

	return ToDomain(&courierModel), nil
}
