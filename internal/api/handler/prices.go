package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/castnavi-api/internal/domain"
	"github.com/vfg2006/castnavi-api/internal/usecases/managing"
)

// GetShopPrices retorna a tabela de preços da loja com a prévia da faixa calculada
func GetShopPrices(service managing.ManageService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		shopID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		prices, err := service.GetShopPrices(r.Context(), shopID)
		if err != nil {
			writeServiceError(w, err, "Erro ao buscar preços da loja")
			return
		}

		writeJSON(w, http.StatusOK, prices)
	}
}

func CreateTimePrice(service managing.ManageService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.SaveTimePriceRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		req.ShopID = httprouter.ParamsFromContext(r.Context()).ByName("id")

		tp, err := service.CreateTimePrice(r.Context(), &req)
		if err != nil {
			writeServiceError(w, err, "Erro ao criar faixa de horário")
			return
		}

		writeJSON(w, http.StatusCreated, tp)
	}
}

func UpdateTimePrice(service managing.ManageService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.SaveTimePriceRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		params := httprouter.ParamsFromContext(r.Context())
		req.ShopID = params.ByName("id")
		req.ID = params.ByName("priceId")

		tp, err := service.UpdateTimePrice(r.Context(), &req)
		if err != nil {
			writeServiceError(w, err, "Erro ao atualizar faixa de horário")
			return
		}

		writeJSON(w, http.StatusOK, tp)
	}
}

func DeleteTimePrice(service managing.ManageService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params := httprouter.ParamsFromContext(r.Context())

		if err := service.DeleteTimePrice(r.Context(), params.ByName("id"), params.ByName("priceId")); err != nil {
			writeServiceError(w, err, "Erro ao remover faixa de horário")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func SaveNomination(service managing.ManageService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.SaveNominationRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		shopID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		nomination, err := service.SaveNomination(r.Context(), shopID, &req)
		if err != nil {
			writeServiceError(w, err, "Erro ao salvar taxa de indicação")
			return
		}

		writeJSON(w, http.StatusOK, nomination)
	}
}

func SaveTax(service managing.ManageService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.SaveTaxRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		shopID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		tax, err := service.SaveTax(r.Context(), shopID, &req)
		if err != nil {
			writeServiceError(w, err, "Erro ao salvar taxa de serviço")
			return
		}

		writeJSON(w, http.StatusOK, tax)
	}
}
