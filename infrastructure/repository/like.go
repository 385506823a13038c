package repository

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/castnavi-api/infrastructure/database/postgres"
	"github.com/vfg2006/castnavi-api/internal/domain"
)

//go:generate mockgen -source=like.go -destination=mocks/like.go -package=mocks

const likesTable = "likes"

type LikeRepository interface {
	// CreateLike retorna ErrDuplicate quando o IP já curtiu a cast
	CreateLike(ctx context.Context, castID, ipAddress string) (*domain.Like, error)
	CountLikes(ctx context.Context, castID string) (int, error)
	HasLiked(ctx context.Context, castID, ipAddress string) (bool, error)
}

type likeRepository struct {
	conn *postgres.Connection
}

func NewLikeRepository(conn *postgres.Connection) LikeRepository {
	return &likeRepository{
		conn: conn,
	}
}

func (r *likeRepository) CreateLike(ctx context.Context, castID, ipAddress string) (*domain.Like, error) {
	likeSQL, likeArgs, err := squirrel.
		Insert(likesTable).
		Columns("cast_id", "ip_address").
		Values(castID, ipAddress).
		Suffix("RETURNING id, created_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	like := &domain.Like{CastID: castID, IPAddress: ipAddress}
	if err := r.conn.QueryRowContext(ctx, likeSQL, likeArgs...).Scan(&like.ID, &like.CreatedAt); err != nil {
		return nil, translateError(err)
	}

	return like, nil
}

func (r *likeRepository) CountLikes(ctx context.Context, castID string) (int, error) {
	countSQL, countArgs, err := squirrel.
		Select("COUNT(*)").
		From(likesTable).
		Where(squirrel.Eq{"cast_id": castID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, err
	}

	var total int
	if err := r.conn.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return 0, translateError(err)
	}

	return total, nil
}

func (r *likeRepository) HasLiked(ctx context.Context, castID, ipAddress string) (bool, error) {
	existsSQL, existsArgs, err := squirrel.
		Select("1").
		From(likesTable).
		Where(squirrel.Eq{"cast_id": castID, "ip_address": ipAddress}).
		Prefix("SELECT EXISTS (").
		Suffix(")").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return false, err
	}

	var exists bool
	if err := r.conn.QueryRowContext(ctx, existsSQL, existsArgs...).Scan(&exists); err != nil {
		return false, translateError(err)
	}

	return exists, nil
}
