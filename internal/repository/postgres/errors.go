package postgres

import (
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
)

// Имена ограничений из миграций
const (
	constraintProfilesEmail        = "profiles_email_key"
	constraintProfilesReferralCode = "profiles_referral_code_key"
	constraintCouponsCode          = "coupons_code_key"
)

// psql строит запросы с плейсхолдерами PostgreSQL
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// uniqueViolation возвращает имя нарушенного уникального ограничения
func uniqueViolation(err error) (string, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == codeUniqueViolation {
		return pgErr.ConstraintName, true
	}
	return "", false
}

// foreignKeyViolation сообщает о нарушении внешнего ключа
func foreignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == codeForeignKeyViolation
}
