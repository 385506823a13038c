package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
)

var (
	ErrNotFound          = errors.New("registro não encontrado")
	ErrDuplicate         = errors.New("registro duplicado")
	ErrReferenceNotFound = errors.New("registro referenciado não existe")
	ErrInvalidInput      = errors.New("valor inválido para o banco de dados")
)

const (
	pqUniqueViolation     = "23505"
	pqForeignKeyViolation = "23503"
	pqInvalidText         = "22P02"
)

// translateError converte erros do driver nos erros do repositório
func translateError(err error) error {
	if err == nil {
		return nil
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case pqUniqueViolation:
			return fmt.Errorf("%w: %s", ErrDuplicate, pqErr.Constraint)
		case pqForeignKeyViolation:
			return fmt.Errorf("%w: %s", ErrReferenceNotFound, pqErr.Constraint)
		case pqInvalidText:
			return fmt.Errorf("%w: %s", ErrInvalidInput, pqErr.Message)
		}
		return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
	}

	return fmt.Errorf("erro ao executar a query: %w", err)
}

func checkRowsAffected(result sql.Result) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("erro ao verificar linhas afetadas: %w", err)
	}

	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}
