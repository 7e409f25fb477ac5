// Package store persists the script globals map in a SQL database so that
// globals survive between CLI invocations.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strconv"
	"strings"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"

	"barescript/internal/value"
)

var ErrUnsupportedDriver = errors.New("unsupported globals driver")

const table = "barescript_globals"

// Drivers lists the accepted driver names.
var Drivers = []string{"mysql", "postgres", "sqlite3"}

type Store struct {
	db     *sql.DB
	driver string
}

// Open connects to the database and creates the globals table if needed.
func Open(ctx context.Context, driver, dsn string) (*Store, error) {
	if !slices.Contains(Drivers, driver) {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, driver)
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open connection: %w", err)
	}
	if driver == "sqlite3" {
		// each sqlite connection to :memory: is a separate database
		db.SetMaxOpenConns(1)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	s := &Store{db: db, driver: driver}
	create := "CREATE TABLE IF NOT EXISTS " + table + " (name VARCHAR(255) PRIMARY KEY, value TEXT NOT NULL)"
	if _, err := db.ExecContext(ctx, create); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create %s: %w", table, err)
	}
	return s, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// placeholder returns the n-th (1-based) bind parameter for the driver.
func (s *Store) placeholder(n int) string {
	if s.driver == "postgres" {
		return "$" + strconv.Itoa(n)
	}
	return "?"
}

// Load reads all stored globals.
func (s *Store) Load(ctx context.Context) (map[string]value.Value, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT name, value FROM "+table)
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	defer rows.Close()

	globals := map[string]value.Value{}
	for rows.Next() {
		var name, text string
		if err := rows.Scan(&name, &text); err != nil {
			return nil, fmt.Errorf("scan failed: %w", err)
		}
		v, err := value.ParseJSON(text)
		if err != nil {
			return nil, fmt.Errorf("global %q: %w", name, err)
		}
		globals[name] = v
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	return globals, nil
}

// Save replaces the stored globals in one transaction. Function and regex
// values cannot be stored and are skipped.
func (s *Store) Save(ctx context.Context, globals map[string]value.Value) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin failed: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
		return fmt.Errorf("exec failed: %w", err)
	}

	insert := fmt.Sprintf("INSERT INTO %s (name, value) VALUES (%s)", table,
		strings.Join([]string{s.placeholder(1), s.placeholder(2)}, ", "))
	names := make([]string, 0, len(globals))
	for name := range globals {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		v := globals[name]
		switch value.TypeOf(v) {
		case value.FUNCTION, value.REGEX:
			slog.Debug("skipping global", slog.String("name", name), slog.String("type", string(value.TypeOf(v))))
			continue
		}
		if _, err = tx.ExecContext(ctx, insert, name, value.JSON(v, 0)); err != nil {
			return fmt.Errorf("exec failed for global %q: %w", name, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit failed: %w", err)
	}
	return nil
}
