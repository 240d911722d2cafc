package storage

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/loganlanou/soleshop/internal/catalog"
	"github.com/loganlanou/soleshop/storage/db"
	"github.com/oklog/ulid/v2"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

// ErrDuplicateSlug is returned when a shoe with the same slug already exists.
var ErrDuplicateSlug = errors.New("shoe slug already exists")

type Storage struct {
	db      *sql.DB
	Queries *db.Queries
}

func New(dbPath string) (*Storage, error) {
	// Ensure the directory exists
	dir := filepath.Dir(dbPath)
	if err := ensureDir(dir); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	// Open SQLite database with proper settings
	sqliteDB, err := sql.Open("sqlite", dbPath+"?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)&_pragma=synchronous(NORMAL)")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := sqliteDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	slog.Info("running database migrations", "database", dbPath)
	if err := migrate(sqliteDB, embedMigrations); err != nil {
		return nil, err
	}
	slog.Info("database migrations completed successfully")

	return &Storage{
		db:      sqliteDB,
		Queries: db.New(sqliteDB),
	}, nil
}

// NewWithQueries wraps an already migrated database.
func NewWithQueries(database *sql.DB, queries *db.Queries) *Storage {
	return &Storage{db: database, Queries: queries}
}

func (s *Storage) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *Storage) DB() *sql.DB {
	return s.db
}

// CreateShoe validates and inserts a shoe under a fresh ULID.
func (s *Storage) CreateShoe(ctx context.Context, shoe catalog.Shoe) (db.Shoe, error) {
	if err := shoe.Validate(); err != nil {
		return db.Shoe{}, fmt.Errorf("invalid shoe: %w", err)
	}

	if err := s.Queries.CreateShoe(ctx, db.CreateParamsFromCatalog(ulid.Make().String(), shoe)); err != nil {
		if isUniqueViolation(err) {
			return db.Shoe{}, fmt.Errorf("%w: %s", ErrDuplicateSlug, shoe.Slug)
		}
		return db.Shoe{}, fmt.Errorf("failed to create shoe: %w", err)
	}

	row, err := s.Queries.GetShoeBySlug(ctx, shoe.Slug)
	if err != nil {
		return db.Shoe{}, fmt.Errorf("failed to read back shoe %s: %w", shoe.Slug, err)
	}
	return row, nil
}

// ListCatalog returns every stored shoe as card records, newest release first.
func (s *Storage) ListCatalog(ctx context.Context) ([]catalog.Shoe, error) {
	rows, err := s.Queries.ListShoes(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list shoes: %w", err)
	}
	shoes := make([]catalog.Shoe, 0, len(rows))
	for _, row := range rows {
		shoes = append(shoes, row.ToCatalog())
	}
	return shoes, nil
}

// ListOnSale returns the discounted shoes, newest release first.
func (s *Storage) ListOnSale(ctx context.Context) ([]catalog.Shoe, error) {
	rows, err := s.Queries.ListShoesOnSale(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list shoes on sale: %w", err)
	}
	shoes := make([]catalog.Shoe, 0, len(rows))
	for _, row := range rows {
		shoes = append(shoes, row.ToCatalog())
	}
	return shoes, nil
}

// DeleteShoe removes the shoe with slug. A missing shoe returns sql.ErrNoRows.
func (s *Storage) DeleteShoe(ctx context.Context, slug string) error {
	return s.WithTx(ctx, func(q *db.Queries) error {
		if _, err := q.GetShoeBySlug(ctx, slug); err != nil {
			return err
		}
		if err := q.DeleteShoe(ctx, slug); err != nil {
			return fmt.Errorf("failed to delete shoe %s: %w", slug, err)
		}
		return nil
	})
}

// WithTx runs fn inside a transaction, committing when fn returns nil.
func (s *Storage) WithTx(ctx context.Context, fn func(*db.Queries) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := fn(s.Queries.WithTx(tx)); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func migrate(database *sql.DB, migrations embed.FS) error {
	goose.SetBaseFS(migrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}
	if err := goose.Up(database, "migrations"); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

func isUniqueViolation(err error) bool {
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// ensureDir creates a directory if it doesn't exist
func ensureDir(dir string) error {
	if dir == "." || dir == "" {
		return nil
	}
	return os.MkdirAll(dir, 0755)
}
