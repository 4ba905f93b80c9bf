package postgres

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
)

func pgCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// isUniqueViolation username, nombre de tenant o receipt_number repetidos.
func isUniqueViolation(err error) bool { return pgCode(err) == codeUniqueViolation }

// isForeignKeyViolation la fila referenciada no existe.
func isForeignKeyViolation(err error) bool { return pgCode(err) == codeForeignKeyViolation }

// assignment par columna = valor de un UPDATE parcial.
type assignment struct {
	column string
	value  any
}

// updateStatement arma `UPDATE table SET a = $n, ... WHERE where`. where usa $1..$len(whereArgs);
// los valores de SET se numeran a continuación.
func updateStatement(table, where string, whereArgs []any, sets []assignment) (string, []any) {
	args := make([]any, 0, len(whereArgs)+len(sets))
	args = append(args, whereArgs...)
	parts := make([]string, 0, len(sets))
	for _, s := range sets {
		args = append(args, s.value)
		parts = append(parts, fmt.Sprintf("%s = $%d", s.column, len(args)))
	}
	return fmt.Sprintf("UPDATE %s SET %s WHERE %s", table, strings.Join(parts, ", "), where), args
}
