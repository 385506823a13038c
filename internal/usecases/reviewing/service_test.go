package reviewing

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/castnavi-api/infrastructure/repository"
	"github.com/vfg2006/castnavi-api/infrastructure/repository/mocks"
	"github.com/vfg2006/castnavi-api/internal/domain"
	"github.com/vfg2006/castnavi-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func stringPtr(s string) *string {
	return &s
}

func TestService_CreateReview(t *testing.T) {
	ctx := context.Background()
	longComment := strings.Repeat("あ", domain.MaxReviewCommentLength+1)
	maxComment := strings.Repeat("あ", domain.MaxReviewCommentLength)

	tests := []struct {
		name         string
		req          *domain.CreateReviewRequest
		setup        func(reviewRepo *mocks.MockReviewRepository)
		expectedErr  error
		expectedCode string
		validate     func(t *testing.T, review *domain.Review)
	}{
		{
			name: "Avaliação válida com comentário aparado",
			req:  &domain.CreateReviewRequest{CastID: "c1", CuteScore: 5, TalkScore: 4, PriceScore: 3, Comment: stringPtr("  最高でした  ")},
			setup: func(reviewRepo *mocks.MockReviewRepository) {
				reviewRepo.EXPECT().
					CreateReview(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, r *domain.Review) (*domain.Review, error) {
						r.ID = "r1"
						return r, nil
					})
			},
			validate: func(t *testing.T, review *domain.Review) {
				assert.Equal(t, "r1", review.ID)
				assert.Equal(t, "203.0.113.7", review.IPAddress)
				require.NotNil(t, review.Comment)
				assert.Equal(t, "最高でした", *review.Comment)
			},
		},
		{
			name: "Comentário em branco vira nulo",
			req:  &domain.CreateReviewRequest{CastID: "c1", CuteScore: 1, TalkScore: 1, PriceScore: 1, Comment: stringPtr("   ")},
			setup: func(reviewRepo *mocks.MockReviewRepository) {
				reviewRepo.EXPECT().
					CreateReview(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, r *domain.Review) (*domain.Review, error) {
						return r, nil
					})
			},
			validate: func(t *testing.T, review *domain.Review) {
				assert.Nil(t, review.Comment)
			},
		},
		{
			name: "Comentário no limite de caracteres é aceito",
			req:  &domain.CreateReviewRequest{CastID: "c1", CuteScore: 3, TalkScore: 3, PriceScore: 3, Comment: &maxComment},
			setup: func(reviewRepo *mocks.MockReviewRepository) {
				reviewRepo.EXPECT().
					CreateReview(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, r *domain.Review) (*domain.Review, error) {
						return r, nil
					})
			},
		},
		{
			name:         "Sem castId",
			req:          &domain.CreateReviewRequest{CuteScore: 3, TalkScore: 3, PriceScore: 3},
			expectedErr:  ErrCastIDRequired,
			expectedCode: apiErrors.ErrMissingRequiredData,
		},
		{
			name:         "Nota acima de 5",
			req:          &domain.CreateReviewRequest{CastID: "c1", CuteScore: 6, TalkScore: 3, PriceScore: 3},
			expectedErr:  ErrInvalidScore,
			expectedCode: apiErrors.ErrInvalidFormat,
		},
		{
			name:         "Nota zero",
			req:          &domain.CreateReviewRequest{CastID: "c1", CuteScore: 3, TalkScore: 3, PriceScore: 0},
			expectedErr:  ErrInvalidScore,
			expectedCode: apiErrors.ErrInvalidFormat,
		},
		{
			name:         "Comentário muito longo",
			req:          &domain.CreateReviewRequest{CastID: "c1", CuteScore: 3, TalkScore: 3, PriceScore: 3, Comment: &longComment},
			expectedErr:  ErrCommentTooLong,
			expectedCode: apiErrors.ErrInvalidFormat,
		},
		{
			name: "Cast inexistente",
			req:  &domain.CreateReviewRequest{CastID: "c9", CuteScore: 3, TalkScore: 3, PriceScore: 3},
			setup: func(reviewRepo *mocks.MockReviewRepository) {
				reviewRepo.EXPECT().
					CreateReview(gomock.Any(), gomock.Any()).
					Return(nil, fmt.Errorf("%w: reviews_cast_id_fkey", repository.ErrReferenceNotFound))
			},
			expectedErr:  ErrCastNotFound,
			expectedCode: apiErrors.ErrResourceNotFound,
		},
		{
			name: "Falha no banco",
			req:  &domain.CreateReviewRequest{CastID: "c1", CuteScore: 3, TalkScore: 3, PriceScore: 3},
			setup: func(reviewRepo *mocks.MockReviewRepository) {
				reviewRepo.EXPECT().CreateReview(gomock.Any(), gomock.Any()).Return(nil, errors.New("timeout"))
			},
			expectedErr:  ErrSaveReview,
			expectedCode: apiErrors.ErrDatabaseOperation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			reviewRepo := mocks.NewMockReviewRepository(ctrl)
			likeRepo := mocks.NewMockLikeRepository(ctrl)
			if tt.setup != nil {
				tt.setup(reviewRepo)
			}

			service := NewService(reviewRepo, likeRepo)
			review, err := service.CreateReview(ctx, tt.req, "203.0.113.7")

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				var reviewErr *ReviewError
				require.ErrorAs(t, err, &reviewErr)
				assert.Equal(t, tt.expectedCode, reviewErr.Code)
				return
			}

			require.NoError(t, err)
			if tt.validate != nil {
				tt.validate(t, review)
			}
		})
	}
}

func TestService_Like(t *testing.T) {
	ctx := context.Background()

	t.Run("Primeira curtida do IP", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		likeRepo := mocks.NewMockLikeRepository(ctrl)
		likeRepo.EXPECT().CreateLike(gomock.Any(), "c1", "1.1.1.1").
			Return(&domain.Like{ID: "l1", CastID: "c1", IPAddress: "1.1.1.1"}, nil)

		service := NewService(mocks.NewMockReviewRepository(ctrl), likeRepo)
		like, err := service.Like(ctx, "c1", "1.1.1.1")

		require.NoError(t, err)
		assert.Equal(t, "l1", like.ID)
	})

	t.Run("Segunda curtida do mesmo IP retorna Already liked", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		likeRepo := mocks.NewMockLikeRepository(ctrl)
		likeRepo.EXPECT().CreateLike(gomock.Any(), "c1", "1.1.1.1").
			Return(nil, fmt.Errorf("%w: likes_cast_id_ip_address_key", repository.ErrDuplicate))

		service := NewService(mocks.NewMockReviewRepository(ctrl), likeRepo)
		_, err := service.Like(ctx, "c1", "1.1.1.1")

		assert.ErrorIs(t, err, ErrAlreadyLiked)
		assert.Equal(t, "Already liked", err.Error())

		var reviewErr *ReviewError
		require.ErrorAs(t, err, &reviewErr)
		assert.Equal(t, apiErrors.ErrAlreadyLiked, reviewErr.Code)
	})

	t.Run("Sem castId", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := NewService(mocks.NewMockReviewRepository(ctrl), mocks.NewMockLikeRepository(ctrl))

		_, err := service.Like(ctx, "", "1.1.1.1")
		assert.ErrorIs(t, err, ErrCastIDRequired)
	})
}

func TestService_GetLikeStatus(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		total    int
		hasLiked bool
	}{
		{name: "IP que já curtiu", total: 12, hasLiked: true},
		{name: "IP que ainda não curtiu", total: 3, hasLiked: false},
		{name: "Cast sem curtidas", total: 0, hasLiked: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			likeRepo := mocks.NewMockLikeRepository(ctrl)
			likeRepo.EXPECT().CountLikes(gomock.Any(), "c1").Return(tt.total, nil)
			likeRepo.EXPECT().HasLiked(gomock.Any(), "c1", "1.1.1.1").Return(tt.hasLiked, nil)

			service := NewService(mocks.NewMockReviewRepository(ctrl), likeRepo)
			status, err := service.GetLikeStatus(ctx, "c1", "1.1.1.1")

			require.NoError(t, err)
			assert.Equal(t, &domain.LikeStatus{TotalLikes: tt.total, HasLiked: tt.hasLiked}, status)
		})
	}
}

func TestService_ListReviews(t *testing.T) {
	ctrl := gomock.NewController(t)
	reviewRepo := mocks.NewMockReviewRepository(ctrl)
	reviewRepo.EXPECT().ListReviewsByCast(gomock.Any(), "c1").
		Return([]*domain.Review{{ID: "r2"}, {ID: "r1"}}, nil)

	service := NewService(reviewRepo, mocks.NewMockLikeRepository(ctrl))

	reviews, err := service.ListReviews(context.Background(), "c1")
	require.NoError(t, err)
	assert.Len(t, reviews, 2)

	_, err = service.ListReviews(context.Background(), "")
	assert.ErrorIs(t, err, ErrCastIDRequired)
}
