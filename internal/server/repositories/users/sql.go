package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"regexp"

	"github.com/dmitrijs2005/feastkeeper/internal/common"
	"github.com/dmitrijs2005/feastkeeper/internal/dbx"
	"github.com/dmitrijs2005/feastkeeper/internal/server/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolation = "23505"

var dollarParam = regexp.MustCompile(`\$(\d+)`)

// SQLRepository stores users in a "users" table. Queries are written with
// PostgreSQL $n placeholders and rewritten to ?n for SQLite.
type SQLRepository struct {
	db     dbx.DBTX
	rebind func(string) string
}

func NewPostgresRepository(db dbx.DBTX) *SQLRepository {
	return &SQLRepository{db: db, rebind: func(q string) string { return q }}
}

func NewSQLiteRepository(db dbx.DBTX) *SQLRepository {
	return &SQLRepository{db: db, rebind: func(q string) string {
		return dollarParam.ReplaceAllString(q, "?$1")
	}}
}

func (r *SQLRepository) InsertUser(ctx context.Context, user *models.User) error {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}

	query :=
		`INSERT INTO users (id, username, email, full_name, password_hash)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (username) DO NOTHING
		 `

	res, err := r.db.ExecContext(ctx, r.rebind(query),
		user.ID, user.UserName, user.Email, nullString(user.FullName), user.PasswordHash)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return common.ErrorConflict
		}
		return fmt.Errorf("db error: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return common.ErrorConflict
	}
	return nil
}

func (r *SQLRepository) GetUser(ctx context.Context, username string) (*models.User, error) {
	query :=
		`SELECT id, username, email, full_name, password_hash FROM users
		 WHERE username = $1
		 `

	user := &models.User{}
	var fullName sql.NullString
	err := r.db.QueryRowContext(ctx, r.rebind(query), username).
		Scan(&user.ID, &user.UserName, &user.Email, &fullName, &user.PasswordHash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	user.FullName = fullName.String

	return user, nil
}

func (r *SQLRepository) DeleteUser(ctx context.Context, username string) error {
	query :=
		`DELETE FROM users
		 WHERE username = $1
		 `

	res, err := r.db.ExecContext(ctx, r.rebind(query), username)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
