package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/castnavi-api/infrastructure/database/postgres"
	"github.com/vfg2006/castnavi-api/internal/domain"
)

//go:generate mockgen -source=cast.go -destination=mocks/cast.go -package=mocks

const castsTable = "casts"

type CastRepository interface {
	ListCastsByArea(ctx context.Context, areaID string, limit int) ([]*domain.Cast, error)
	ListCasts(ctx context.Context) ([]*domain.Cast, error)
	GetCastByID(ctx context.Context, id string) (*domain.Cast, error)
	CreateCast(ctx context.Context, req *domain.SaveCastRequest) (*domain.Cast, error)
	UpdateCast(ctx context.Context, req *domain.SaveCastRequest) (*domain.Cast, error)
	DeleteCast(ctx context.Context, id string) error
	ListImageURLs(ctx context.Context) ([]string, error)
}

type castRepository struct {
	conn *postgres.Connection
}

func NewCastRepository(conn *postgres.Connection) CastRepository {
	return &castRepository{
		conn: conn,
	}
}

func (r *castRepository) selectCasts() squirrel.SelectBuilder {
	return squirrel.
		Select(
			"c.id", "c.name", "c.shop_id", "c.image_url", "c.instagram_url", "c.created_at", "c.updated_at",
			"s.id", "s.name", "s.area_id",
			"a.id", "a.name", "a.prefecture", "a.city", "a.created_at", "a.updated_at",
		).
		From("casts c").
		Join("shops s ON s.id = c.shop_id").
		Join("areas a ON a.id = s.area_id").
		PlaceholderFormat(squirrel.Dollar)
}

func scanCast(row rowScanner) (*domain.Cast, error) {
	cast := &domain.Cast{Shop: &domain.ShopSummary{Area: &domain.Area{}}}
	err := row.Scan(
		&cast.ID, &cast.Name, &cast.ShopID, &cast.ImageURL, &cast.InstagramURL, &cast.CreatedAt, &cast.UpdatedAt,
		&cast.Shop.ID, &cast.Shop.Name, &cast.Shop.AreaID,
		&cast.Shop.Area.ID, &cast.Shop.Area.Name, &cast.Shop.Area.Prefecture, &cast.Shop.Area.City,
		&cast.Shop.Area.CreatedAt, &cast.Shop.Area.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return cast, nil
}

func (r *castRepository) queryCasts(ctx context.Context, queryBuilder squirrel.SelectBuilder) ([]*domain.Cast, error) {
	castsSQL, castsArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.QueryContext(ctx, castsSQL, castsArgs...)
	if err != nil {
		return nil, translateError(err)
	}
	defer rows.Close()

	casts := make([]*domain.Cast, 0)
	for rows.Next() {
		cast, err := scanCast(rows)
		if err != nil {
			return nil, err
		}
		casts = append(casts, cast)
	}

	return casts, rows.Err()
}

func (r *castRepository) ListCastsByArea(ctx context.Context, areaID string, limit int) ([]*domain.Cast, error) {
	queryBuilder := r.selectCasts().
		Where(squirrel.Eq{"s.area_id": areaID}).
		OrderBy("c.created_at DESC")

	if limit > 0 {
		queryBuilder = queryBuilder.Limit(uint64(limit))
	}

	return r.queryCasts(ctx, queryBuilder)
}

func (r *castRepository) ListCasts(ctx context.Context) ([]*domain.Cast, error) {
	return r.queryCasts(ctx, r.selectCasts().OrderBy("c.created_at DESC"))
}

func (r *castRepository) GetCastByID(ctx context.Context, id string) (*domain.Cast, error) {
	castSQL, castArgs, err := r.selectCasts().Where(squirrel.Eq{"c.id": id}).ToSql()
	if err != nil {
		return nil, err
	}

	cast, err := scanCast(r.conn.QueryRowContext(ctx, castSQL, castArgs...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, translateError(err)
	}

	return cast, nil
}

func (r *castRepository) CreateCast(ctx context.Context, req *domain.SaveCastRequest) (*domain.Cast, error) {
	castSQL, castArgs, err := squirrel.
		Insert(castsTable).
		Columns("name", "shop_id", "image_url", "instagram_url").
		Values(req.Name, req.ShopID, req.ImageURL, req.InstagramURL).
		Suffix("RETURNING id, created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	cast := &domain.Cast{
		Name:         req.Name,
		ShopID:       req.ShopID,
		ImageURL:     req.ImageURL,
		InstagramURL: req.InstagramURL,
	}
	if err := r.conn.QueryRowContext(ctx, castSQL, castArgs...).Scan(&cast.ID, &cast.CreatedAt, &cast.UpdatedAt); err != nil {
		return nil, translateError(err)
	}

	return cast, nil
}

func (r *castRepository) UpdateCast(ctx context.Context, req *domain.SaveCastRequest) (*domain.Cast, error) {
	castSQL, castArgs, err := squirrel.
		Update(castsTable).
		Set("name", req.Name).
		Set("shop_id", req.ShopID).
		Set("image_url", req.ImageURL).
		Set("instagram_url", req.InstagramURL).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": req.ID}).
		Suffix("RETURNING id, name, shop_id, image_url, instagram_url, created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	cast := &domain.Cast{}
	err = r.conn.QueryRowContext(ctx, castSQL, castArgs...).Scan(
		&cast.ID, &cast.Name, &cast.ShopID, &cast.ImageURL, &cast.InstagramURL, &cast.CreatedAt, &cast.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, translateError(err)
	}

	return cast, nil
}

func (r *castRepository) DeleteCast(ctx context.Context, id string) error {
	castSQL, castArgs, err := squirrel.
		Delete(castsTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	result, err := r.conn.ExecContext(ctx, castSQL, castArgs...)
	if err != nil {
		return translateError(err)
	}

	return checkRowsAffected(result)
}

// ListImageURLs retorna todas as URLs de imagem gravadas nas casts
func (r *castRepository) ListImageURLs(ctx context.Context) ([]string, error) {
	imagesSQL, imagesArgs, err := squirrel.
		Select("image_url").
		From(castsTable).
		Where(squirrel.NotEq{"image_url": nil}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.QueryContext(ctx, imagesSQL, imagesArgs...)
	if err != nil {
		return nil, translateError(err)
	}
	defer rows.Close()

	urls := make([]string, 0)
	for rows.Next() {
		var url string
		if err := rows.Scan(&url); err != nil {
			return nil, err
		}
		urls = append(urls, url)
	}

	return urls, rows.Err()
}
