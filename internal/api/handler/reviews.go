package handler

import (
	"net/http"

	"github.com/vfg2006/castnavi-api/internal/domain"
	"github.com/vfg2006/castnavi-api/internal/usecases/reviewing"
	"github.com/vfg2006/castnavi-api/pkg/utils"
)

func ListReviews(service reviewing.ReviewService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		reviews, err := service.ListReviews(r.Context(), r.URL.Query().Get("castId"))
		if err != nil {
			writeServiceError(w, err, "Erro ao listar avaliações")
			return
		}

		writeJSON(w, http.StatusOK, reviews)
	}
}

// CreateReview registra uma avaliação anônima marcada com o IP do visitante
func CreateReview(service reviewing.ReviewService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.CreateReviewRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		review, err := service.CreateReview(r.Context(), &req, utils.ClientIP(r))
		if err != nil {
			writeServiceError(w, err, "Erro ao registrar avaliação")
			return
		}

		writeJSON(w, http.StatusCreated, review)
	}
}

func GetLikeStatus(service reviewing.ReviewService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status, err := service.GetLikeStatus(r.Context(), r.URL.Query().Get("castId"), utils.ClientIP(r))
		if err != nil {
			writeServiceError(w, err, "Erro ao buscar curtidas")
			return
		}

		writeJSON(w, http.StatusOK, status)
	}
}

// CreateLike aceita uma curtida por IP para cada cast
func CreateLike(service reviewing.ReviewService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.LikeRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		like, err := service.Like(r.Context(), req.CastID, utils.ClientIP(r))
		if err != nil {
			writeServiceError(w, err, "Erro ao registrar curtida")
			return
		}

		writeJSON(w, http.StatusCreated, like)
	}
}
