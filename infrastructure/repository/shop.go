package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/castnavi-api/infrastructure/database/postgres"
	"github.com/vfg2006/castnavi-api/internal/domain"
)

//go:generate mockgen -source=shop.go -destination=mocks/shop.go -package=mocks

const shopsTable = "shops"

type ShopRepository interface {
	ListShops(ctx context.Context, areaID string) ([]*domain.Shop, error)
	GetShopByID(ctx context.Context, id string) (*domain.Shop, error)
	CreateShop(ctx context.Context, req *domain.SaveShopRequest) (*domain.Shop, error)
	UpdateShop(ctx context.Context, req *domain.SaveShopRequest) (*domain.Shop, error)
	DeleteShop(ctx context.Context, id string) error
}

type shopRepository struct {
	conn *postgres.Connection
}

func NewShopRepository(conn *postgres.Connection) ShopRepository {
	return &shopRepository{
		conn: conn,
	}
}

func (r *shopRepository) selectShops() squirrel.SelectBuilder {
	return squirrel.
		Select(
			"s.id", "s.name", "s.area_id", "s.address", "s.phone", "s.website", "s.created_at", "s.updated_at",
			"a.id", "a.name", "a.prefecture", "a.city", "a.created_at", "a.updated_at",
		).
		From("shops s").
		Join("areas a ON a.id = s.area_id").
		PlaceholderFormat(squirrel.Dollar)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanShop(row rowScanner) (*domain.Shop, error) {
	shop := &domain.Shop{Area: &domain.Area{}}
	err := row.Scan(
		&shop.ID, &shop.Name, &shop.AreaID, &shop.Address, &shop.Phone, &shop.Website, &shop.CreatedAt, &shop.UpdatedAt,
		&shop.Area.ID, &shop.Area.Name, &shop.Area.Prefecture, &shop.Area.City, &shop.Area.CreatedAt, &shop.Area.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return shop, nil
}

func (r *shopRepository) ListShops(ctx context.Context, areaID string) ([]*domain.Shop, error) {
	queryBuilder := r.selectShops().OrderBy("s.created_at DESC")
	if areaID != "" {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"s.area_id": areaID})
	}

	shopsSQL, shopsArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.QueryContext(ctx, shopsSQL, shopsArgs...)
	if err != nil {
		return nil, translateError(err)
	}
	defer rows.Close()

	shops := make([]*domain.Shop, 0)
	for rows.Next() {
		shop, err := scanShop(rows)
		if err != nil {
			return nil, err
		}
		shops = append(shops, shop)
	}

	return shops, rows.Err()
}

func (r *shopRepository) GetShopByID(ctx context.Context, id string) (*domain.Shop, error) {
	shopSQL, shopArgs, err := r.selectShops().Where(squirrel.Eq{"s.id": id}).ToSql()
	if err != nil {
		return nil, err
	}

	shop, err := scanShop(r.conn.QueryRowContext(ctx, shopSQL, shopArgs...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, translateError(err)
	}

	return shop, nil
}

func (r *shopRepository) CreateShop(ctx context.Context, req *domain.SaveShopRequest) (*domain.Shop, error) {
	shopSQL, shopArgs, err := squirrel.
		Insert(shopsTable).
		Columns("name", "area_id", "address", "phone", "website").
		Values(req.Name, req.AreaID, req.Address, req.Phone, req.Website).
		Suffix("RETURNING id, created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	shop := &domain.Shop{
		Name:    req.Name,
		AreaID:  req.AreaID,
		Address: req.Address,
		Phone:   req.Phone,
		Website: req.Website,
	}
	if err := r.conn.QueryRowContext(ctx, shopSQL, shopArgs...).Scan(&shop.ID, &shop.CreatedAt, &shop.UpdatedAt); err != nil {
		return nil, translateError(err)
	}

	return shop, nil
}

func (r *shopRepository) UpdateShop(ctx context.Context, req *domain.SaveShopRequest) (*domain.Shop, error) {
	shopSQL, shopArgs, err := squirrel.
		Update(shopsTable).
		Set("name", req.Name).
		Set("area_id", req.AreaID).
		Set("address", req.Address).
		Set("phone", req.Phone).
		Set("website", req.Website).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": req.ID}).
		Suffix("RETURNING id, name, area_id, address, phone, website, created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	shop := &domain.Shop{}
	err = r.conn.QueryRowContext(ctx, shopSQL, shopArgs...).Scan(
		&shop.ID, &shop.Name, &shop.AreaID, &shop.Address, &shop.Phone, &shop.Website, &shop.CreatedAt, &shop.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, translateError(err)
	}

	return shop, nil
}

func (r *shopRepository) DeleteShop(ctx context.Context, id string) error {
	shopSQL, shopArgs, err := squirrel.
		Delete(shopsTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	result, err := r.conn.ExecContext(ctx, shopSQL, shopArgs...)
	if err != nil {
		return translateError(err)
	}

	return checkRowsAffected(result)
}
