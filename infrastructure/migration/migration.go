// Package migration aplica o schema do banco e cria o administrador inicial
package migration

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/castnavi-api/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

//go:embed schema.sql
var Schema string

// Apply executa o schema em uma única transação. Todas as instruções são idempotentes.
func Apply(ctx context.Context, db *sql.DB) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("erro ao iniciar transação: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, Schema); err != nil {
		return fmt.Errorf("erro ao aplicar schema: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("erro ao confirmar schema: %w", err)
	}

	logrus.Info("Schema aplicado com sucesso")
	return nil
}

// SeedAdmin cria o administrador inicial caso o email ainda não exista
func SeedAdmin(ctx context.Context, db *sql.DB, name, email, password string) (bool, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return false, fmt.Errorf("email e senha do administrador são obrigatórios")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return false, fmt.Errorf("erro ao gerar hash da senha: %w", err)
	}

	res, err := db.ExecContext(ctx,
		`INSERT INTO admin_users (name, email, password_hash, active, role_id)
		 VALUES ($1, $2, $3, TRUE, $4)
		 ON CONFLICT (email) DO NOTHING`,
		name, email, string(hash), domain.RoleAdmin)
	if err != nil {
		return false, fmt.Errorf("erro ao criar administrador: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, err
	}

	return rows > 0, nil
}
