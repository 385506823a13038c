package handler

import (
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/castnavi-api/internal/usecases/catalog"
	"github.com/vfg2006/castnavi-api/pkg/apiErrors"
)

func ListPrefectures(service catalog.CatalogService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		prefectures, err := service.ListPrefectures(r.Context())
		if err != nil {
			writeServiceError(w, err, "Erro ao listar prefeituras")
			return
		}

		writeJSON(w, http.StatusOK, prefectures)
	}
}

// ListAreas aceita ?prefecture= para filtrar; "全て" lista todas
func ListAreas(service catalog.CatalogService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		areas, err := service.ListAreas(r.Context(), r.URL.Query().Get("prefecture"))
		if err != nil {
			writeServiceError(w, err, "Erro ao listar áreas")
			return
		}

		writeJSON(w, http.StatusOK, areas)
	}
}

func GetArea(service catalog.CatalogService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		area, err := service.GetArea(r.Context(), id)
		if err != nil {
			writeServiceError(w, err, "Erro ao buscar área")
			return
		}

		writeJSON(w, http.StatusOK, area)
	}
}

// ListCasts lista as casts de uma área com a faixa de preço calculada
func ListCasts(service catalog.CatalogService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		limit := 0
		if raw := query.Get("limit"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "limit deve ser um número", nil)
				return
			}
			limit = parsed
		}

		casts, err := service.ListCastsByArea(r.Context(), query.Get("areaId"), limit)
		if err != nil {
			writeServiceError(w, err, "Erro ao listar casts")
			return
		}

		writeJSON(w, http.StatusOK, casts)
	}
}

func GetCast(service catalog.CatalogService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		detail, err := service.GetCastDetail(r.Context(), id)
		if err != nil {
			writeServiceError(w, err, "Erro ao buscar cast")
			return
		}

		writeJSON(w, http.StatusOK, detail)
	}
}
