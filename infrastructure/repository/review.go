package repository

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/castnavi-api/infrastructure/database/postgres"
	"github.com/vfg2006/castnavi-api/internal/domain"
)

//go:generate mockgen -source=review.go -destination=mocks/review.go -package=mocks

const reviewsTable = "reviews"

type ReviewRepository interface {
	CreateReview(ctx context.Context, review *domain.Review) (*domain.Review, error)
	ListReviewsByCast(ctx context.Context, castID string) ([]*domain.Review, error)
}

type reviewRepository struct {
	conn *postgres.Connection
}

func NewReviewRepository(conn *postgres.Connection) ReviewRepository {
	return &reviewRepository{
		conn: conn,
	}
}

func (r *reviewRepository) CreateReview(ctx context.Context, review *domain.Review) (*domain.Review, error) {
	reviewSQL, reviewArgs, err := squirrel.
		Insert(reviewsTable).
		Columns("cast_id", "ip_address", "cute_score", "talk_score", "price_score", "comment").
		Values(review.CastID, review.IPAddress, review.CuteScore, review.TalkScore, review.PriceScore, review.Comment).
		Suffix("RETURNING id, created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	err = r.conn.QueryRowContext(ctx, reviewSQL, reviewArgs...).Scan(&review.ID, &review.CreatedAt, &review.UpdatedAt)
	if err != nil {
		return nil, translateError(err)
	}

	return review, nil
}

func (r *reviewRepository) ListReviewsByCast(ctx context.Context, castID string) ([]*domain.Review, error) {
	reviewSQL, reviewArgs, err := squirrel.
		Select("id", "cast_id", "ip_address", "cute_score", "talk_score", "price_score", "comment", "created_at", "updated_at").
		From(reviewsTable).
		Where(squirrel.Eq{"cast_id": castID}).
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.QueryContext(ctx, reviewSQL, reviewArgs...)
	if err != nil {
		return nil, translateError(err)
	}
	defer rows.Close()

	reviews := make([]*domain.Review, 0)
	for rows.Next() {
		review := &domain.Review{}
		if err := rows.Scan(
			&review.ID,
			&review.CastID,
			&review.IPAddress,
			&review.CuteScore,
			&review.TalkScore,
			&review.PriceScore,
			&review.Comment,
			&review.CreatedAt,
			&review.UpdatedAt,
		); err != nil {
			return nil, err
		}
		reviews = append(reviews, review)
	}

	return reviews, rows.Err()
}
