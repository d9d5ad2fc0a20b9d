package database

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/Ildo7Cuema/Mini-pautas-sub009/internal/infrastructure/i18n"
)

func TestUserMessage(t *testing.T) {
	tr := i18n.NewTranslator("pt")

	t.Run("nil error", func(t *testing.T) {
		assert.Equal(t, "", UserMessage(tr, nil))
	})

	t.Run("unique violation on numero de processo", func(t *testing.T) {
		pgErr := &pgconn.PgError{
			Code:           "23505",
			Message:        `duplicate key value violates unique constraint "alunos_numero_processo_key"`,
			ConstraintName: "alunos_numero_processo_key",
		}
		got := UserMessage(tr, fmt.Errorf("insert aluno: %w", pgErr))
		assert.Equal(t, "Este número de processo já está em uso. Por favor, use um número diferente ou deixe o campo vazio para gerar automaticamente.", got)
	})

	t.Run("unique violation on another constraint", func(t *testing.T) {
		pgErr := &pgconn.PgError{
			Code:           "23505",
			Message:        `duplicate key value violates unique constraint "alunos_email_key"`,
			ConstraintName: "alunos_email_key",
		}
		got := UserMessage(tr, pgErr)
		assert.Equal(t, "Este valor já existe no sistema. Por favor, use um valor único.", got)
	})

	t.Run("not-null violation", func(t *testing.T) {
		pgErr := &pgconn.PgError{
			Code:    "23502",
			Message: `null value in column "nome" violates not-null constraint`,
		}
		got := UserMessage(tr, pgErr)
		assert.Equal(t, "Todos os campos obrigatórios devem ser preenchidos", got)
	})

	t.Run("foreign key violation carries the constraint name", func(t *testing.T) {
		pgErr := &pgconn.PgError{
			Code:           "23503",
			Message:        `update or delete on table "alunos" violates foreign key constraint "notas_aluno_id_fkey" on table "notas"`,
			ConstraintName: "notas_aluno_id_fkey",
		}
		got := UserMessage(tr, pgErr)
		assert.Equal(t, "Este registro está vinculado a outros dados e não pode ser alterado", got)
	})

	t.Run("plain error goes through the tables", func(t *testing.T) {
		got := UserMessage(tr, errors.New("Invalid login credentials"))
		assert.Equal(t, "Credenciais de login inválidas", got)
	})

	t.Run("unknown error passes through", func(t *testing.T) {
		got := UserMessage(tr, errors.New("weird driver hiccup"))
		assert.Equal(t, "weird driver hiccup", got)
	})
}

func TestPgMessage(t *testing.T) {
	t.Run("appends missing constraint name", func(t *testing.T) {
		pgErr := &pgconn.PgError{
			Code:           "23505",
			Message:        "duplicate key value violates unique constraint",
			ConstraintName: "alunos_numero_processo_key",
		}
		got := pgMessage(pgErr)
		assert.Contains(t, got, "SQLSTATE 23505")
		assert.Contains(t, got, "alunos_numero_processo_key")
	})

	t.Run("does not duplicate constraint already in message", func(t *testing.T) {
		pgErr := &pgconn.PgError{
			Code:           "23505",
			Message:        `duplicate key value violates unique constraint "alunos_email_key"`,
			ConstraintName: "alunos_email_key",
		}
		assert.Equal(t, `duplicate key value violates unique constraint "alunos_email_key" (SQLSTATE 23505)`, pgMessage(pgErr))
	})
}
