// Package repomanager vends user repositories for the configured store and
// runs the embedded goose migrations for SQL stores.
package repomanager

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/feastkeeper/internal/dbx"
	"github.com/dmitrijs2005/feastkeeper/internal/server/migrations"
	"github.com/dmitrijs2005/feastkeeper/internal/server/repositories/users"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"
)

type RepositoryManager interface {
	RunMigrations(ctx context.Context, db *sql.DB) error
	Users(db dbx.DBTX) users.Repository
}

// SQLRepositoryManager serves one SQL dialect.
type SQLRepositoryManager struct {
	driverName string
	dialect    string
	newUsers   func(dbx.DBTX) *users.SQLRepository
}

func NewPostgresRepositoryManager() *SQLRepositoryManager {
	return &SQLRepositoryManager{driverName: "pgx", dialect: "postgres", newUsers: users.NewPostgresRepository}
}

func NewSQLiteRepositoryManager() *SQLRepositoryManager {
	return &SQLRepositoryManager{driverName: "sqlite", dialect: "sqlite3", newUsers: users.NewSQLiteRepository}
}

// DriverName is the database/sql driver to open DSNs with.
func (m *SQLRepositoryManager) DriverName() string {
	return m.driverName
}

func (m *SQLRepositoryManager) Users(db dbx.DBTX) users.Repository {
	return m.newUsers(db)
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations applies the embedded migrations to db.
func (m *SQLRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect(m.dialect); err != nil {
		return err
	}
	if err := gooseUpContext(ctx, db, "."); err != nil {
		return fmt.Errorf("migrations: %w", err)
	}
	return nil
}

// Open connects to dsn, checks the connection and migrates the schema.
func (m *SQLRepositoryManager) Open(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open(m.driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db ping error: %w", err)
	}
	if err := m.RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}
