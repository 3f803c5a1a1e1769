package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/qrlogix/qrlogix-server/models"
)

// psql is the shared squirrel statement builder configured for PostgreSQL
// dollar placeholders. All queries are built through it so parameters are
// always bound, never interpolated.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// The identity table name is the only dynamic identifier; it comes from
// configuration and is validated against an allowlist before it ever
// reaches these builders.

const userColumns = "user_id, first_name, last_name, email, password, user_type, created_at, updated_at"

func insertUserQuery(table string, user models.User) (string, []any, error) {
	return psql.Insert(table).
		Columns("first_name", "last_name", "email", "password", "user_type").
		Values(user.FirstName, user.LastName, user.Email, user.Password, user.UserType).
		Suffix("RETURNING " + userColumns).
		ToSql()
}

func selectUserByEmailQuery(table string, email string) (string, []any, error) {
	return psql.Select(userColumns).
		From(table).
		Where(sq.Eq{"email": email}).
		ToSql()
}

const qrCodeColumns = "qr_code_id, user_id, qr_code, first_name, last_name, email, is_active, created_at"

func insertQRCodeQuery(qr models.QRCode) (string, []any, error) {
	return psql.Insert(qr.TableName()).
		Columns("user_id", "qr_code", "first_name", "last_name", "email").
		Values(qr.UserID, qr.Code, qr.FirstName, qr.LastName, qr.Email).
		Suffix("RETURNING " + qrCodeColumns).
		ToSql()
}

func selectQRCodeByUserIDQuery(userID int64) (string, []any, error) {
	return psql.Select(qrCodeColumns).
		From(models.QRCode{}.TableName()).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}
