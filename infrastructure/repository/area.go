package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/castnavi-api/infrastructure/database/postgres"
	"github.com/vfg2006/castnavi-api/internal/domain"
)

//go:generate mockgen -source=area.go -destination=mocks/area.go -package=mocks

const areasTable = "areas"

var areaColumns = []string{"id", "name", "prefecture", "city", "created_at", "updated_at"}

type AreaRepository interface {
	ListAreas(ctx context.Context, filter domain.AreaFilter) ([]*domain.Area, error)
	ListPrefectures(ctx context.Context) ([]string, error)
	GetAreaByID(ctx context.Context, id string) (*domain.Area, error)
	CreateArea(ctx context.Context, req *domain.SaveAreaRequest) (*domain.Area, error)
	UpdateArea(ctx context.Context, req *domain.SaveAreaRequest) (*domain.Area, error)
	DeleteArea(ctx context.Context, id string) error
}

type areaRepository struct {
	conn *postgres.Connection
}

func NewAreaRepository(conn *postgres.Connection) AreaRepository {
	return &areaRepository{
		conn: conn,
	}
}

func (r *areaRepository) ListAreas(ctx context.Context, filter domain.AreaFilter) ([]*domain.Area, error) {
	queryBuilder := squirrel.
		Select(areaColumns...).
		From(areasTable).
		OrderBy("prefecture ASC", "city ASC", "name ASC").
		PlaceholderFormat(squirrel.Dollar)

	if filter.Prefecture != "" && filter.Prefecture != domain.AllPrefectures {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"prefecture": filter.Prefecture})
	}

	areasSQL, areasArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.QueryContext(ctx, areasSQL, areasArgs...)
	if err != nil {
		return nil, translateError(err)
	}
	defer rows.Close()

	areas := make([]*domain.Area, 0)
	for rows.Next() {
		area := &domain.Area{}
		if err := rows.Scan(&area.ID, &area.Name, &area.Prefecture, &area.City, &area.CreatedAt, &area.UpdatedAt); err != nil {
			return nil, err
		}
		areas = append(areas, area)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return areas, nil
}

func (r *areaRepository) ListPrefectures(ctx context.Context) ([]string, error) {
	prefSQL, _, err := squirrel.
		Select("DISTINCT prefecture").
		From(areasTable).
		OrderBy("prefecture ASC").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.QueryContext(ctx, prefSQL)
	if err != nil {
		return nil, translateError(err)
	}
	defer rows.Close()

	prefectures := make([]string, 0)
	for rows.Next() {
		var prefecture string
		if err := rows.Scan(&prefecture); err != nil {
			return nil, err
		}
		prefectures = append(prefectures, prefecture)
	}

	return prefectures, rows.Err()
}

func (r *areaRepository) GetAreaByID(ctx context.Context, id string) (*domain.Area, error) {
	areaSQL, areaArgs, err := squirrel.
		Select(areaColumns...).
		From(areasTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	area := &domain.Area{}
	err = r.conn.QueryRowContext(ctx, areaSQL, areaArgs...).
		Scan(&area.ID, &area.Name, &area.Prefecture, &area.City, &area.CreatedAt, &area.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, translateError(err)
	}

	return area, nil
}

func (r *areaRepository) CreateArea(ctx context.Context, req *domain.SaveAreaRequest) (*domain.Area, error) {
	areaSQL, areaArgs, err := squirrel.
		Insert(areasTable).
		Columns("name", "prefecture", "city").
		Values(req.Name, req.Prefecture, req.City).
		Suffix("RETURNING id, created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	area := &domain.Area{Name: req.Name, Prefecture: req.Prefecture, City: req.City}
	if err := r.conn.QueryRowContext(ctx, areaSQL, areaArgs...).Scan(&area.ID, &area.CreatedAt, &area.UpdatedAt); err != nil {
		return nil, translateError(err)
	}

	return area, nil
}

func (r *areaRepository) UpdateArea(ctx context.Context, req *domain.SaveAreaRequest) (*domain.Area, error) {
	areaSQL, areaArgs, err := squirrel.
		Update(areasTable).
		Set("name", req.Name).
		Set("prefecture", req.Prefecture).
		Set("city", req.City).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": req.ID}).
		Suffix("RETURNING id, name, prefecture, city, created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	area := &domain.Area{}
	err = r.conn.QueryRowContext(ctx, areaSQL, areaArgs...).
		Scan(&area.ID, &area.Name, &area.Prefecture, &area.City, &area.CreatedAt, &area.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, translateError(err)
	}

	return area, nil
}

func (r *areaRepository) DeleteArea(ctx context.Context, id string) error {
	areaSQL, areaArgs, err := squirrel.
		Delete(areasTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	result, err := r.conn.ExecContext(ctx, areaSQL, areaArgs...)
	if err != nil {
		return translateError(err)
	}

	return checkRowsAffected(result)
}
