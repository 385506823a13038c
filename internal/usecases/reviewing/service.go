package reviewing

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/castnavi-api/infrastructure/repository"
	"github.com/vfg2006/castnavi-api/internal/domain"
	"github.com/vfg2006/castnavi-api/pkg/apiErrors"
)

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

type ReviewService interface {
	CreateReview(ctx context.Context, req *domain.CreateReviewRequest, ipAddress string) (*domain.Review, error)
	ListReviews(ctx context.Context, castID string) ([]*domain.Review, error)
	Like(ctx context.Context, castID, ipAddress string) (*domain.Like, error)
	GetLikeStatus(ctx context.Context, castID, ipAddress string) (*domain.LikeStatus, error)
}

type Service struct {
	reviewRepo repository.ReviewRepository
	likeRepo   repository.LikeRepository
}

func NewService(reviewRepo repository.ReviewRepository, likeRepo repository.LikeRepository) ReviewService {
	return &Service{
		reviewRepo: reviewRepo,
		likeRepo:   likeRepo,
	}
}

func (s *Service) CreateReview(ctx context.Context, req *domain.CreateReviewRequest, ipAddress string) (*domain.Review, error) {
	if req == nil || strings.TrimSpace(req.CastID) == "" {
		return nil, NewReviewError(ErrCastIDRequired, apiErrors.ErrMissingRequiredData, "", "castId é obrigatório")
	}

	scores := []struct {
		field string
		value int
	}{
		{"cuteScore", req.CuteScore},
		{"talkScore", req.TalkScore},
		{"priceScore", req.PriceScore},
	}
	for _, score := range scores {
		if score.value < domain.MinReviewScore || score.value > domain.MaxReviewScore {
			return nil, NewReviewError(ErrInvalidScore, apiErrors.ErrInvalidFormat, req.CastID,
				fmt.Sprintf("%s deve estar entre %d e %d", score.field, domain.MinReviewScore, domain.MaxReviewScore))
		}
	}

	comment := normalizeComment(req.Comment)
	if comment != nil && utf8.RuneCountInString(*comment) > domain.MaxReviewCommentLength {
		return nil, NewReviewError(ErrCommentTooLong, apiErrors.ErrInvalidFormat, req.CastID,
			fmt.Sprintf("O comentário deve ter no máximo %d caracteres", domain.MaxReviewCommentLength))
	}

	review, err := s.reviewRepo.CreateReview(ctx, &domain.Review{
		CastID:     req.CastID,
		IPAddress:  ipAddress,
		CuteScore:  req.CuteScore,
		TalkScore:  req.TalkScore,
		PriceScore: req.PriceScore,
		Comment:    comment,
	})
	if err != nil {
		if errors.Is(err, repository.ErrReferenceNotFound) || errors.Is(err, repository.ErrInvalidInput) {
			return nil, NewReviewError(ErrCastNotFound, apiErrors.ErrResourceNotFound, req.CastID, "Cast não encontrada")
		}
		logrus.Errorf("Erro ao salvar avaliação da cast %s: %v", req.CastID, err)
		return nil, NewReviewError(ErrSaveReview, apiErrors.ErrDatabaseOperation, req.CastID, "Falha ao salvar avaliação")
	}

	return review, nil
}

func normalizeComment(comment *string) *string {
	if comment == nil {
		return nil
	}

	trimmed := strings.TrimSpace(*comment)
	if trimmed == "" {
		return nil
	}

	return &trimmed
}

func (s *Service) ListReviews(ctx context.Context, castID string) ([]*domain.Review, error) {
	if castID == "" {
		return nil, NewReviewError(ErrCastIDRequired, apiErrors.ErrMissingRequiredData, "", "castId é obrigatório")
	}

	reviews, err := s.reviewRepo.ListReviewsByCast(ctx, castID)
	if err != nil {
		if errors.Is(err, repository.ErrInvalidInput) {
			return []*domain.Review{}, nil
		}
		logrus.Errorf("Erro ao listar avaliações da cast %s: %v", castID, err)
		return nil, NewReviewError(ErrFetchReviews, apiErrors.ErrDatabaseOperation, castID, "Falha ao listar avaliações")
	}

	return reviews, nil
}

// Like registra a curtida do IP; cada IP curte uma cast apenas uma vez
func (s *Service) Like(ctx context.Context, castID, ipAddress string) (*domain.Like, error) {
	if castID == "" {
		return nil, NewReviewError(ErrCastIDRequired, apiErrors.ErrMissingRequiredData, "", "castId é obrigatório")
	}

	like, err := s.likeRepo.CreateLike(ctx, castID, ipAddress)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicate):
			return nil, NewReviewError(ErrAlreadyLiked, apiErrors.ErrAlreadyLiked, castID, "")
		case errors.Is(err, repository.ErrReferenceNotFound), errors.Is(err, repository.ErrInvalidInput):
			return nil, NewReviewError(ErrCastNotFound, apiErrors.ErrResourceNotFound, castID, "Cast não encontrada")
		}
		logrus.Errorf("Erro ao salvar curtida da cast %s: %v", castID, err)
		return nil, NewReviewError(ErrSaveLike, apiErrors.ErrDatabaseOperation, castID, "Falha ao salvar curtida")
	}

	return like, nil
}

func (s *Service) GetLikeStatus(ctx context.Context, castID, ipAddress string) (*domain.LikeStatus, error) {
	if castID == "" {
		return nil, NewReviewError(ErrCastIDRequired, apiErrors.ErrMissingRequiredData, "", "castId é obrigatório")
	}

	total, err := s.likeRepo.CountLikes(ctx, castID)
	if err != nil {
		if errors.Is(err, repository.ErrInvalidInput) {
			return &domain.LikeStatus{}, nil
		}
		logrus.Errorf("Erro ao contar curtidas da cast %s: %v", castID, err)
		return nil, NewReviewError(ErrFetchLikeStatus, apiErrors.ErrDatabaseOperation, castID, "Falha ao buscar curtidas")
	}

	hasLiked, err := s.likeRepo.HasLiked(ctx, castID, ipAddress)
	if err != nil {
		logrus.Errorf("Erro ao verificar curtida da cast %s: %v", castID, err)
		return nil, NewReviewError(ErrFetchLikeStatus, apiErrors.ErrDatabaseOperation, castID, "Falha ao buscar curtidas")
	}

	return &domain.LikeStatus{TotalLikes: total, HasLiked: hasLiked}, nil
}
