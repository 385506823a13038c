package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/castnavi-api/infrastructure/database/postgres"
	"github.com/vfg2006/castnavi-api/internal/domain"
)

//go:generate mockgen -source=price.go -destination=mocks/price.go -package=mocks

const (
	timePricesTable       = "shop_prices_time"
	nominationPricesTable = "shop_prices_nomination"
	shopTaxTable          = "shop_tax"
)

var timePriceColumns = []string{
	"id",
	"shop_id",
	"to_char(start_time, 'HH24:MI')",
	"to_char(end_time, 'HH24:MI')",
	"price",
	"created_at",
	"updated_at",
}

type PriceRepository interface {
	GetShopPricing(ctx context.Context, shopID string) (*domain.ShopPricing, error)
	ListTimePrices(ctx context.Context, shopID string) ([]*domain.TimePrice, error)
	CreateTimePrice(ctx context.Context, req *domain.SaveTimePriceRequest) (*domain.TimePrice, error)
	UpdateTimePrice(ctx context.Context, req *domain.SaveTimePriceRequest) (*domain.TimePrice, error)
	DeleteTimePrice(ctx context.Context, shopID, id string) error
	UpsertNomination(ctx context.Context, shopID string, price int) (*domain.NominationPrice, error)
	UpsertTax(ctx context.Context, shopID string, rate float64) (*domain.ShopTax, error)
}

type priceRepository struct {
	conn *postgres.Connection
}

func NewPriceRepository(conn *postgres.Connection) PriceRepository {
	return &priceRepository{
		conn: conn,
	}
}

// GetShopPricing lê faixas, indicação e taxa da loja na mesma transação
func (r *priceRepository) GetShopPricing(ctx context.Context, shopID string) (*domain.ShopPricing, error) {
	pricing := &domain.ShopPricing{ShopID: shopID}

	err := r.conn.RunInSnapshot(ctx, func(tx *sql.Tx) error {
		timePrices, err := listTimePrices(ctx, tx, shopID)
		if err != nil {
			return err
		}
		pricing.TimePrices = timePrices

		nomination, err := getNomination(ctx, tx, shopID)
		if err != nil {
			return err
		}
		pricing.Nomination = nomination

		tax, err := getTax(ctx, tx, shopID)
		if err != nil {
			return err
		}
		pricing.Tax = tax

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar preços da loja %s: %w", shopID, err)
	}

	return pricing, nil
}

func (r *priceRepository) ListTimePrices(ctx context.Context, shopID string) ([]*domain.TimePrice, error) {
	return listTimePrices(ctx, r.conn, shopID)
}

func listTimePrices(ctx context.Context, q postgres.Queryer, shopID string) ([]*domain.TimePrice, error) {
	pricesSQL, pricesArgs, err := squirrel.
		Select(timePriceColumns...).
		From(timePricesTable).
		Where(squirrel.Eq{"shop_id": shopID}).
		OrderBy("start_time ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := q.QueryContext(ctx, pricesSQL, pricesArgs...)
	if err != nil {
		return nil, translateError(err)
	}
	defer rows.Close()

	prices := make([]*domain.TimePrice, 0)
	for rows.Next() {
		tp, err := scanTimePrice(rows)
		if err != nil {
			return nil, err
		}
		prices = append(prices, tp)
	}

	return prices, rows.Err()
}

func scanTimePrice(row rowScanner) (*domain.TimePrice, error) {
	tp := &domain.TimePrice{}
	if err := row.Scan(&tp.ID, &tp.ShopID, &tp.StartTime, &tp.EndTime, &tp.Price, &tp.CreatedAt, &tp.UpdatedAt); err != nil {
		return nil, err
	}
	return tp, nil
}

func getNomination(ctx context.Context, q postgres.Queryer, shopID string) (*domain.NominationPrice, error) {
	nominationSQL, nominationArgs, err := squirrel.
		Select("id", "shop_id", "nomination", "price", "created_at", "updated_at").
		From(nominationPricesTable).
		Where(squirrel.Eq{"shop_id": shopID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	n := &domain.NominationPrice{}
	err = q.QueryRowContext(ctx, nominationSQL, nominationArgs...).
		Scan(&n.ID, &n.ShopID, &n.Nomination, &n.Price, &n.CreatedAt, &n.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, translateError(err)
	}

	return n, nil
}

func getTax(ctx context.Context, q postgres.Queryer, shopID string) (*domain.ShopTax, error) {
	taxSQL, taxArgs, err := squirrel.
		Select("id", "shop_id", "tax_category", "price", "created_at", "updated_at").
		From(shopTaxTable).
		Where(squirrel.Eq{"shop_id": shopID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	t := &domain.ShopTax{}
	err = q.QueryRowContext(ctx, taxSQL, taxArgs...).
		Scan(&t.ID, &t.ShopID, &t.TaxCategory, &t.Price, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, translateError(err)
	}

	return t, nil
}

func (r *priceRepository) CreateTimePrice(ctx context.Context, req *domain.SaveTimePriceRequest) (*domain.TimePrice, error) {
	priceSQL, priceArgs, err := squirrel.
		Insert(timePricesTable).
		Columns("shop_id", "start_time", "end_time", "price").
		Values(req.ShopID, req.StartTime, req.EndTime, req.Price).
		Suffix("RETURNING id, shop_id, to_char(start_time, 'HH24:MI'), to_char(end_time, 'HH24:MI'), price, created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	tp, err := scanTimePrice(r.conn.QueryRowContext(ctx, priceSQL, priceArgs...))
	if err != nil {
		return nil, translateError(err)
	}

	return tp, nil
}

func (r *priceRepository) UpdateTimePrice(ctx context.Context, req *domain.SaveTimePriceRequest) (*domain.TimePrice, error) {
	priceSQL, priceArgs, err := squirrel.
		Update(timePricesTable).
		Set("start_time", req.StartTime).
		Set("end_time", req.EndTime).
		Set("price", req.Price).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": req.ID, "shop_id": req.ShopID}).
		Suffix("RETURNING id, shop_id, to_char(start_time, 'HH24:MI'), to_char(end_time, 'HH24:MI'), price, created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	tp, err := scanTimePrice(r.conn.QueryRowContext(ctx, priceSQL, priceArgs...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, translateError(err)
	}

	return tp, nil
}

func (r *priceRepository) DeleteTimePrice(ctx context.Context, shopID, id string) error {
	priceSQL, priceArgs, err := squirrel.
		Delete(timePricesTable).
		Where(squirrel.Eq{"id": id, "shop_id": shopID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	result, err := r.conn.ExecContext(ctx, priceSQL, priceArgs...)
	if err != nil {
		return translateError(err)
	}

	return checkRowsAffected(result)
}

// UpsertNomination grava a taxa de indicação; cada loja tem no máximo uma
func (r *priceRepository) UpsertNomination(ctx context.Context, shopID string, price int) (*domain.NominationPrice, error) {
	nominationSQL, nominationArgs, err := squirrel.
		Insert(nominationPricesTable).
		Columns("shop_id", "nomination", "price").
		Values(shopID, domain.DefaultNominationLabel, price).
		Suffix(`ON CONFLICT (shop_id) DO UPDATE SET price = EXCLUDED.price, updated_at = NOW()
			RETURNING id, shop_id, nomination, price, created_at, updated_at`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	n := &domain.NominationPrice{}
	err = r.conn.QueryRowContext(ctx, nominationSQL, nominationArgs...).
		Scan(&n.ID, &n.ShopID, &n.Nomination, &n.Price, &n.CreatedAt, &n.UpdatedAt)
	if err != nil {
		return nil, translateError(err)
	}

	return n, nil
}

// UpsertTax grava a taxa de serviço/imposto; cada loja tem no máximo uma
func (r *priceRepository) UpsertTax(ctx context.Context, shopID string, rate float64) (*domain.ShopTax, error) {
	taxSQL, taxArgs, err := squirrel.
		Insert(shopTaxTable).
		Columns("shop_id", "tax_category", "price").
		Values(shopID, domain.DefaultTaxCategory, rate).
		Suffix(`ON CONFLICT (shop_id) DO UPDATE SET price = EXCLUDED.price, updated_at = NOW()
			RETURNING id, shop_id, tax_category, price, created_at, updated_at`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	t := &domain.ShopTax{}
	err = r.conn.QueryRowContext(ctx, taxSQL, taxArgs...).
		Scan(&t.ID, &t.ShopID, &t.TaxCategory, &t.Price, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, translateError(err)
	}

	return t, nil
}
