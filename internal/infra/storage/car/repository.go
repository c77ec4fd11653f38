package car

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/DriveX-RentalService/internal/domain"
	"github.com/m04kA/DriveX-RentalService/pkg/dbtx"
	"github.com/m04kA/DriveX-RentalService/pkg/psqlbuilder"
)

var carColumns = []string{
	"id",
	"name",
	"category",
	"hourly_rate",
	"transmission",
	"fuel_type",
	"seats",
	"location",
	"is_available",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с автопарком
type Repository struct {
	db dbtx.DBExecutor
}

// NewRepository создает новый экземпляр репозитория автомобилей
func NewRepository(db dbtx.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает автомобиль по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Car, error) {
	executor := dbtx.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(carColumns...).
		From("cars").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	c, err := r.scanCar(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrCarNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan car: %v", ErrScanRow, err)
	}

	return c, nil
}

// List получает список автомобилей.
// При onlyAvailable=true возвращает только доступные для бронирования.
func (r *Repository) List(ctx context.Context, onlyAvailable bool) ([]*domain.Car, error) {
	executor := dbtx.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(carColumns...).
		From("cars").
		OrderBy("id ASC")

	if onlyAvailable {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"is_available": true})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	cars := make([]*domain.Car, 0)
	for rows.Next() {
		c, err := r.scanCar(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		cars = append(cars, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return cars, nil
}

// Create создает новый автомобиль в автопарке
func (r *Repository) Create(ctx context.Context, c *domain.Car) (*domain.Car, error) {
	executor := dbtx.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("cars").
		Columns(
			"name",
			"category",
			"hourly_rate",
			"transmission",
			"fuel_type",
			"seats",
			"location",
			"is_available",
		).
		Values(
			c.Name,
			c.Category,
			c.HourlyRate,
			c.Transmission,
			c.FuelType,
			c.Seats,
			c.Location,
			c.IsAvailable,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&c.ID, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	c.CreatedAt = createdAt.Time
	c.UpdatedAt = updatedAt.Time

	return c, nil
}

// Update обновляет данные автомобиля (включая флаг доступности)
func (r *Repository) Update(ctx context.Context, id int64, c *domain.Car) (*domain.Car, error) {
	executor := dbtx.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("cars").
		Set("name", c.Name).
		Set("category", c.Category).
		Set("hourly_rate", c.HourlyRate).
		Set("transmission", c.Transmission).
		Set("fuel_type", c.FuelType).
		Set("seats", c.Seats).
		Set("location", c.Location).
		Set("is_available", c.IsAvailable).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrCarNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	c.ID = id
	c.CreatedAt = createdAt.Time
	c.UpdatedAt = updatedAt.Time

	return c, nil
}

// scanCar сканирует одну строку результата в автомобиль
func (r *Repository) scanCar(row interface{ Scan(dest ...interface{}) error }) (*domain.Car, error) {
	var c domain.Car
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&c.ID,
		&c.Name,
		&c.Category,
		&c.HourlyRate,
		&c.Transmission,
		&c.FuelType,
		&c.Seats,
		&c.Location,
		&c.IsAvailable,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	c.CreatedAt = createdAt.Time
	c.UpdatedAt = updatedAt.Time

	return &c, nil
}
