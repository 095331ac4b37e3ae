package repository

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const pgUniqueViolation = "23505"

func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

// isUniqueViolation covers both translated gorm errors and raw pgconn errors.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation
	}
	// sqlite without translation
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// likeClause builds "<column> ILIKE ? ESCAPE '\'" on PostgreSQL.
// SQLite LIKE is already case-insensitive for ASCII.
func likeClause(db *gorm.DB, column string) string {
	op := "LIKE"
	if db.Dialector != nil && db.Dialector.Name() == "postgres" {
		op = "ILIKE"
	}
	return column + " " + op + ` ? ESCAPE '\'`
}

func likePattern(q string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(strings.TrimSpace(q)) + "%"
}
