package managing

import (
	"errors"
	"fmt"
)

var (
	ErrMissingRequiredData = errors.New("missing required data")
	ErrInvalidTime         = errors.New("time must be in HH:MM format")
	ErrInvalidPrice        = errors.New("invalid price")
	ErrInvalidTaxRate      = errors.New("tax rate must be between 0 and 1")
	ErrInvalidID           = errors.New("invalid ID")
	ErrInvalidImage        = errors.New("file must be an image")
	ErrImageTooLarge       = errors.New("image is too large")

	ErrAreaNotFound      = errors.New("area not found")
	ErrShopNotFound      = errors.New("shop not found")
	ErrCastNotFound      = errors.New("cast not found")
	ErrTimePriceNotFound = errors.New("time price not found")
	ErrReferenceNotFound = errors.New("referenced record not found")
	ErrDuplicated        = errors.New("record already exists")

	ErrDatabaseOperation = errors.New("database operation error")
	ErrUploadImage       = errors.New("error uploading image")
)

// ManageError é um erro com contexto adicional para o painel administrativo
type ManageError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Details string // Detalhes adicionais
}

func (e *ManageError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *ManageError) Unwrap() error {
	return e.Err
}

func NewManageError(err error, code string, details string) *ManageError {
	return &ManageError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
