package database

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/Ildo7Cuema/Mini-pautas-sub009/internal/ports/output"
)

// UserMessage renders err as a localized, user-facing message. Postgres
// errors are reformatted so the SQLSTATE code and the constraint name are
// visible to the translator's matching rules; any other error is translated
// from its plain text. A nil err yields an empty string.
func UserMessage(translator output.MessageTranslator, err error) string {
	if err == nil {
		return ""
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return translator.TranslateError(pgMessage(pgErr))
	}
	return translator.TranslateError(err.Error())
}

// pgMessage rebuilds the server-side error text the way pgx prints it,
// guaranteeing the SQLSTATE code and constraint name appear even when the
// server message omits them.
func pgMessage(e *pgconn.PgError) string {
	msg := fmt.Sprintf("%s (SQLSTATE %s)", e.Message, e.Code)
	if e.ConstraintName != "" && !strings.Contains(msg, e.ConstraintName) {
		msg = fmt.Sprintf("%s [constraint %s]", msg, e.ConstraintName)
	}
	return msg
}
