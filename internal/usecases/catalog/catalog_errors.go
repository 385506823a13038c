package catalog

import (
	"errors"
	"fmt"
)

var (
	ErrAreaIDRequired = errors.New("area ID is required")
	ErrCastIDRequired = errors.New("cast ID is required")
	ErrAreaNotFound   = errors.New("area not found")
	ErrCastNotFound   = errors.New("cast not found")

	ErrFetchAreas   = errors.New("error fetching areas from database")
	ErrFetchCasts   = errors.New("error fetching casts from database")
	ErrFetchPrices  = errors.New("error fetching shop prices from database")
	ErrFetchReviews = errors.New("error fetching reviews from database")
)

// CatalogError é um erro com contexto adicional para as consultas públicas
type CatalogError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Details string // Detalhes adicionais
}

func (e *CatalogError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *CatalogError) Unwrap() error {
	return e.Err
}

func NewCatalogError(err error, code string, details string) *CatalogError {
	return &CatalogError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
