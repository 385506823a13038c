package router

import (
	"net/http"

	"github.com/vfg2006/castnavi-api/pkg/apiErrors"
)

func notFound(w http.ResponseWriter, r *http.Request) {
	apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Rota não encontrada", nil)
}

func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusMethodNotAllowed)
	_, _ = w.Write([]byte(`{"code":"VAL_001","message":"Método não permitido"}`))
}
