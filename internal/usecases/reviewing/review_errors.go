package reviewing

import (
	"errors"
	"fmt"
)

var (
	ErrCastIDRequired  = errors.New("cast ID is required")
	ErrInvalidScore    = errors.New("score must be between 1 and 5")
	ErrCommentTooLong  = errors.New("comment is too long")
	ErrCastNotFound    = errors.New("cast not found")
	ErrAlreadyLiked    = errors.New("Already liked")
	ErrSaveReview      = errors.New("error saving review")
	ErrFetchReviews    = errors.New("error fetching reviews")
	ErrSaveLike        = errors.New("error saving like")
	ErrFetchLikeStatus = errors.New("error fetching like status")
)

// ReviewError é um erro com contexto adicional para avaliações e curtidas
type ReviewError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	CastID  string // ID da cast envolvida (quando aplicável)
	Details string // Detalhes adicionais
}

func (e *ReviewError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *ReviewError) Unwrap() error {
	return e.Err
}

func NewReviewError(err error, code string, castID string, details string) *ReviewError {
	return &ReviewError{
		Err:     err,
		Code:    code,
		CastID:  castID,
		Details: details,
	}
}
