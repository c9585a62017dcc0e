package database

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog"
	_ "github.com/tursodatabase/libsql-client-go/libsql"
	_ "modernc.org/sqlite"

	"github.com/jesses-code-adventures/cms/internal/config"
	"github.com/jesses-code-adventures/cms/internal/logger"
)

type dialect int

const (
	dialectSQLite dialect = iota
	dialectMySQL
	dialectPostgres
)

func (d dialect) String() string {
	switch d {
	case dialectMySQL:
		return "mysql"
	case dialectPostgres:
		return "postgres"
	default:
		return "sqlite"
	}
}

func dialectFor(driver string) (dialect, error) {
	switch driver {
	case "sqlite3", "sqlite", "libsql":
		return dialectSQLite, nil
	case "mysql":
		return dialectMySQL, nil
	case "pgx", "postgres":
		return dialectPostgres, nil
	default:
		return 0, fmt.Errorf("unsupported database driver %q", driver)
	}
}

// SQLDB is the persistence gateway. Every call acquires its own connection
// from the pool and releases it before returning.
type SQLDB struct {
	conn    *sql.DB
	dialect dialect
	log     zerolog.Logger
}

// querier is satisfied by *sql.Conn and *sql.Tx.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type scanner interface {
	Scan(dest ...any) error
}

func NewDB(cfg *config.Config) (*SQLDB, error) {
	d, err := dialectFor(cfg.DatabaseDriver)
	if err != nil {
		return nil, err
	}

	driver := cfg.DatabaseDriver
	if driver == "postgres" {
		driver = "pgx"
	}

	conn, err := sql.Open(driver, sqliteDSN(driver, cfg.DatabaseURL))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	s := &SQLDB{
		conn:    conn,
		dialect: d,
		log:     logger.WithComponent("database"),
	}

	if d == dialectSQLite {
		// SQLite serialises writers; a single connection keeps the
		// sequence increments consistent.
		conn.SetMaxOpenConns(1)
	}

	return s, nil
}

// sqliteDSN turns on foreign keys through the DSN so that every connection the
// pool opens enforces them, including replacements for recycled ones.
func sqliteDSN(driver, dsn string) string {
	var param string
	switch driver {
	case "sqlite3":
		param = "_foreign_keys=on"
	case "sqlite":
		param = "_pragma=foreign_keys(1)"
	default:
		return dsn
	}
	if strings.Contains(dsn, param) {
		return dsn
	}
	if strings.Contains(dsn, "?") {
		return dsn + "&" + param
	}
	return dsn + "?" + param
}

func (s *SQLDB) Close() error {
	return s.conn.Close()
}

func (s *SQLDB) Ping(ctx context.Context) error {
	if err := s.conn.PingContext(ctx); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}

// rebind rewrites ? placeholders for dialects that number their parameters.
func (s *SQLDB) rebind(query string) string {
	if s.dialect != dialectPostgres {
		return query
	}
	var b strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func (s *SQLDB) acquire(ctx context.Context) (*sql.Conn, error) {
	conn, err := s.conn.Conn(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return conn, nil
}

func (s *SQLDB) withConn(ctx context.Context, fn func(q querier) error) error {
	conn, err := s.acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Close()
	return fn(conn)
}

// withTx runs fn in a transaction, rolling back on any error.
func (s *SQLDB) withTx(ctx context.Context, fn func(q querier) error) error {
	conn, err := s.acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Close()

	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			s.log.Error().Err(rbErr).Msg("rollback failed")
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func (s *SQLDB) exec(ctx context.Context, q querier, query string, args ...any) (sql.Result, error) {
	return q.ExecContext(ctx, s.rebind(query), args...)
}

func (s *SQLDB) queryRow(ctx context.Context, q querier, query string, args ...any) *sql.Row {
	return q.QueryRowContext(ctx, s.rebind(query), args...)
}

func listRows[T any](ctx context.Context, s *SQLDB, query string, scan func(scanner) (*T, error), args ...any) ([]*T, error) {
	var out []*T
	err := s.withConn(ctx, func(q querier) error {
		rows, err := q.QueryContext(ctx, s.rebind(query), args...)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			item, err := scan(rows)
			if err != nil {
				return err
			}
			out = append(out, item)
		}
		return rows.Err()
	})
	return out, err
}

func getRow[T any](ctx context.Context, s *SQLDB, query string, scan func(scanner) (*T, error), args ...any) (*T, error) {
	var out *T
	err := s.withConn(ctx, func(q querier) error {
		item, err := scan(s.queryRow(ctx, q, query, args...))
		if err != nil {
			if err == sql.ErrNoRows {
				return ErrNotFound
			}
			return err
		}
		out = item
		return nil
	})
	return out, err
}

// deleteByID removes one row. Zero affected rows is ErrNotFound and nothing is committed.
func (s *SQLDB) deleteByID(ctx context.Context, table, column, id string) error {
	return s.withTx(ctx, func(q querier) error {
		res, err := s.exec(ctx, q, fmt.Sprintf("DELETE FROM %s WHERE %s = ?", table, column), id)
		if err != nil {
			return err
		}
		n, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to read affected rows: %w", err)
		}
		if n == 0 {
			return ErrNotFound
		}
		return nil
	})
}
