package database

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"quizcafe/internal/logger"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"go.uber.org/zap"
)

//go:embed migrations
var migrationsFS embed.FS

const (
	triviaMigrationsDir = "migrations/trivia"
	coffeeMigrationsDir = "migrations/coffee"

	// ORA-00955: name is already used by an existing object
	oracleObjectExists = "ORA-00955"
)

// Execer is satisfied by *sql.DB, *sqlx.DB and their transactions.
type Execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// RunTriviaMigrations executes every embedded *.up.sql file for the trivia
// schema in name order. Objects that already exist are skipped so the run can
// be repeated.
func RunTriviaMigrations(ctx context.Context, db Execer) error {
	return runSQLMigrations(ctx, db, migrationsFS, triviaMigrationsDir)
}

func runSQLMigrations(ctx context.Context, db Execer, fsys fs.FS, dir string) error {
	log := logger.Get()

	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return fmt.Errorf("could not read migrations directory: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".up.sql") {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	for _, name := range names {
		content, err := fs.ReadFile(fsys, path.Join(dir, name))
		if err != nil {
			return fmt.Errorf("could not read migration file %s: %w", name, err)
		}

		for _, stmt := range SplitStatements(string(content)) {
			if _, err := db.ExecContext(ctx, stmt); err != nil {
				if strings.Contains(err.Error(), oracleObjectExists) {
					log.Info("Migration object already exists, skipping", zap.String("file", name))
					continue
				}
				return fmt.Errorf("could not execute migration %s: %w", name, err)
			}
		}

		log.Info("Executed migration", zap.String("file", name))
	}

	log.Info("Migrations completed successfully")
	return nil
}

// SplitStatements splits a script on ';' line endings. Oracle rejects a
// trailing ';' and multiple statements in one call.
func SplitStatements(script string) []string {
	var stmts []string
	for _, part := range strings.Split(script, ";") {
		if stmt := strings.TrimSpace(part); stmt != "" {
			stmts = append(stmts, stmt)
		}
	}
	return stmts
}

// CoffeeMigrator applies the embedded PostgreSQL migrations of the coffee-shop
// schema through golang-migrate.
type CoffeeMigrator struct {
	m *migrate.Migrate
}

// NewCoffeeMigrator binds the embedded migrations to an open database handle.
func NewCoffeeMigrator(db *sql.DB) (*CoffeeMigrator, error) {
	src, err := iofs.New(migrationsFS, coffeeMigrationsDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load coffee migrations: %w", err)
	}

	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to create migrate driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", src, "postgres", driver)
	if err != nil {
		return nil, fmt.Errorf("failed to create migrator: %w", err)
	}
	return &CoffeeMigrator{m: m}, nil
}

// Up applies all pending migrations. An up-to-date schema is not an error.
func (c *CoffeeMigrator) Up() error {
	if err := c.m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to apply coffee migrations: %w", err)
	}
	c.logVersion()
	return nil
}

// Down rolls back the most recent migration.
func (c *CoffeeMigrator) Down() error {
	if err := c.m.Steps(-1); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to roll back coffee migration: %w", err)
	}
	c.logVersion()
	return nil
}

func (c *CoffeeMigrator) logVersion() {
	version, dirty, err := c.m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		logger.Get().Warn("Could not read migration version", zap.Error(err))
		return
	}
	logger.Get().Info("Coffee schema version", zap.Uint("version", version), zap.Bool("dirty", dirty))
}
