package handler

import (
	"io"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/castnavi-api/internal/usecases/authenticating"
	"github.com/vfg2006/castnavi-api/internal/usecases/catalog"
	"github.com/vfg2006/castnavi-api/internal/usecases/managing"
	"github.com/vfg2006/castnavi-api/internal/usecases/reviewing"
	"github.com/vfg2006/castnavi-api/pkg/apiErrors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const maxBodyBytes = 1 << 20

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logrus.WithError(err).Error("Erro ao enviar resposta")
	}
}

// decodeJSON decodifica o corpo da requisição. Corpo vazio é erro.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(dst)
	if err == nil {
		return true
	}

	logrus.WithError(err).Debug("Corpo da requisição inválido")
	if errors.Is(err, io.EOF) {
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição vazio", nil)
		return false
	}
	apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
	return false
}

// writeServiceError traduz os erros dos casos de uso para a resposta padronizada
func writeServiceError(w http.ResponseWriter, err error, fallback string) {
	var (
		authErr    *authenticating.AuthError
		catalogErr *catalog.CatalogError
		reviewErr  *reviewing.ReviewError
		manageErr  *managing.ManageError
	)

	switch {
	case errors.As(err, &authErr):
		apiErrors.WriteError(w, authErr.Code, message(authErr.Err, authErr.Details), nil)
	case errors.As(err, &catalogErr):
		apiErrors.WriteError(w, catalogErr.Code, message(catalogErr.Err, catalogErr.Details), nil)
	case errors.As(err, &reviewErr):
		apiErrors.WriteError(w, reviewErr.Code, message(reviewErr.Err, reviewErr.Details), nil)
	case errors.As(err, &manageErr):
		apiErrors.WriteError(w, manageErr.Code, message(manageErr.Err, manageErr.Details), nil)
	default:
		logrus.WithError(err).Error(fallback)
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, fallback, nil)
	}
}

func message(base error, details string) string {
	if details != "" {
		return details
	}
	return base.Error()
}
