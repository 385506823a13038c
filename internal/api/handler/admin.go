package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/castnavi-api/internal/domain"
	"github.com/vfg2006/castnavi-api/internal/usecases/managing"
)

func AdminListAreas(service managing.ManageService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		areas, err := service.ListAreas(r.Context())
		if err != nil {
			writeServiceError(w, err, "Erro ao listar áreas")
			return
		}

		writeJSON(w, http.StatusOK, areas)
	}
}

func AdminCreateArea(service managing.ManageService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.SaveAreaRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		area, err := service.CreateArea(r.Context(), &req)
		if err != nil {
			writeServiceError(w, err, "Erro ao criar área")
			return
		}

		writeJSON(w, http.StatusCreated, area)
	}
}

func AdminUpdateArea(service managing.ManageService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.SaveAreaRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		req.ID = httprouter.ParamsFromContext(r.Context()).ByName("id")

		area, err := service.UpdateArea(r.Context(), &req)
		if err != nil {
			writeServiceError(w, err, "Erro ao atualizar área")
			return
		}

		writeJSON(w, http.StatusOK, area)
	}
}

func AdminDeleteArea(service managing.ManageService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if err := service.DeleteArea(r.Context(), id); err != nil {
			writeServiceError(w, err, "Erro ao remover área")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// AdminListShops aceita ?areaId= para filtrar
func AdminListShops(service managing.ManageService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		shops, err := service.ListShops(r.Context(), r.URL.Query().Get("areaId"))
		if err != nil {
			writeServiceError(w, err, "Erro ao listar lojas")
			return
		}

		writeJSON(w, http.StatusOK, shops)
	}
}

func AdminCreateShop(service managing.ManageService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.SaveShopRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		shop, err := service.CreateShop(r.Context(), &req)
		if err != nil {
			writeServiceError(w, err, "Erro ao criar loja")
			return
		}

		writeJSON(w, http.StatusCreated, shop)
	}
}

func AdminUpdateShop(service managing.ManageService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.SaveShopRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		req.ID = httprouter.ParamsFromContext(r.Context()).ByName("id")

		shop, err := service.UpdateShop(r.Context(), &req)
		if err != nil {
			writeServiceError(w, err, "Erro ao atualizar loja")
			return
		}

		writeJSON(w, http.StatusOK, shop)
	}
}

func AdminDeleteShop(service managing.ManageService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if err := service.DeleteShop(r.Context(), id); err != nil {
			writeServiceError(w, err, "Erro ao remover loja")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func AdminListCasts(service managing.ManageService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		casts, err := service.ListCasts(r.Context())
		if err != nil {
			writeServiceError(w, err, "Erro ao listar casts")
			return
		}

		writeJSON(w, http.StatusOK, casts)
	}
}

func AdminCreateCast(service managing.ManageService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.SaveCastRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		cast, err := service.CreateCast(r.Context(), &req)
		if err != nil {
			writeServiceError(w, err, "Erro ao criar cast")
			return
		}

		writeJSON(w, http.StatusCreated, cast)
	}
}

func AdminUpdateCast(service managing.ManageService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.SaveCastRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		req.ID = httprouter.ParamsFromContext(r.Context()).ByName("id")

		cast, err := service.UpdateCast(r.Context(), &req)
		if err != nil {
			writeServiceError(w, err, "Erro ao atualizar cast")
			return
		}

		writeJSON(w, http.StatusOK, cast)
	}
}

func AdminDeleteCast(service managing.ManageService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if err := service.DeleteCast(r.Context(), id); err != nil {
			writeServiceError(w, err, "Erro ao remover cast")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
