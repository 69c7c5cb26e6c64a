// Package sqlstore persists dataset tables into SQL databases as text columns.
package sqlstore

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"strings"

	"github.com/Station-Manager/errors"
	"github.com/Station-Manager/tabular/dataset"

	_ "github.com/jackc/pgx/v5/stdlib" // PostgreSQL driver
	_ "modernc.org/sqlite"             // SQLite driver (pure Go)
)

// Store writes tables through a *sql.DB.
type Store struct {
	db      *sql.DB
	dialect Dialect
	logger  *slog.Logger
}

type Option func(*Store)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New wraps an open database.
func New(db *sql.DB, dialect Dialect, opts ...Option) *Store {
	s := &Store{
		db:      db,
		dialect: dialect,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Open connects to the database named by driver and dsn and checks the connection.
func Open(ctx context.Context, driver, dsn string, opts ...Option) (*Store, error) {
	const op errors.Op = "sqlstore.Open"
	dialect, err := DialectFor(driver)
	if err != nil {
		return nil, err
	}
	db, err := sql.Open(dialect.DriverName(), dsn)
	if err != nil {
		return nil, errors.New(op).Err(err).Msg("failed to open database")
	}
	if dialect == SQLite {
		// a second connection to an in-memory database would see a different database
		db.SetMaxOpenConns(1)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, errors.New(op).Err(err).Msg("failed to connect to database")
	}
	return New(db, dialect, opts...), nil
}

func (s *Store) Dialect() Dialect { return s.dialect }

func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// CreateTableSQL returns the DDL creating a table with one TEXT column per table column.
func (s *Store) CreateTableSQL(t *dataset.DataTable) string {
	cols := t.ColumnNames()
	defs := make([]string, len(cols))
	for i, c := range cols {
		defs[i] = s.dialect.QuoteIdent(c) + " TEXT"
	}
	return "CREATE TABLE IF NOT EXISTS " + s.dialect.QuoteIdent(t.Name()) + " (" + strings.Join(defs, ", ") + ")"
}

// InsertSQL returns the parameterised INSERT for one row of t.
func (s *Store) InsertSQL(t *dataset.DataTable) string {
	cols := t.ColumnNames()
	names := make([]string, len(cols))
	marks := make([]string, len(cols))
	for i, c := range cols {
		names[i] = s.dialect.QuoteIdent(c)
		marks[i] = s.dialect.Placeholder(i + 1)
	}
	return "INSERT INTO " + s.dialect.QuoteIdent(t.Name()) + " (" + strings.Join(names, ", ") + ") VALUES (" + strings.Join(marks, ", ") + ")"
}

// Save creates the table if needed and inserts every row in one transaction.
// It returns the number of rows written.
func (s *Store) Save(ctx context.Context, t *dataset.DataTable) (int64, error) {
	const op errors.Op = "sqlstore.Store.Save"
	if t == nil {
		return 0, errors.New(op).Err(dataset.ErrNilTable)
	}
	if len(t.Columns()) == 0 {
		return 0, errors.New(op).Errorf("table %q has no columns", t.Name())
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, errors.New(op).Err(err).Msg("failed to begin transaction")
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, s.CreateTableSQL(t)); err != nil {
		return 0, errors.New(op).Err(err).Msg("failed to create table")
	}

	stmt, err := tx.PrepareContext(ctx, s.InsertSQL(t))
	if err != nil {
		return 0, errors.New(op).Err(err).Msg("failed to prepare insert")
	}
	defer func() { _ = stmt.Close() }()

	var n int64
	for _, r := range t.Rows() {
		values := r.Values()
		args := make([]any, len(values))
		for i, v := range values {
			args[i] = v
		}
		if _, err = stmt.ExecContext(ctx, args...); err != nil {
			return 0, errors.New(op).Err(err).Msg("failed to insert row")
		}
		n++
	}

	if err = tx.Commit(); err != nil {
		return 0, errors.New(op).Err(err).Msg("failed to commit")
	}
	committed = true
	s.logger.Debug("table saved", "table", t.Name(), "rows", n, "dialect", s.dialect.Name())
	return n, nil
}

// Load reads a stored table back. NULL cells read as empty text.
func (s *Store) Load(ctx context.Context, name string) (*dataset.DataTable, error) {
	const op errors.Op = "sqlstore.Store.Load"
	rows, err := s.db.QueryContext(ctx, "SELECT * FROM "+s.dialect.QuoteIdent(name))
	if err != nil {
		return nil, errors.New(op).Err(err).Msg("failed to query table")
	}
	defer func() { _ = rows.Close() }()

	cols, err := rows.Columns()
	if err != nil {
		return nil, errors.New(op).Err(err)
	}
	t := dataset.NewDataTable(name)
	for _, c := range cols {
		t.EnsureColumn(c)
	}

	t.BeginLoadData()
	defer t.EndLoadData()
	for rows.Next() {
		values := make([]sql.NullString, len(cols))
		ptrs := make([]any, len(cols))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, errors.New(op).Err(err).Msg("failed to scan row")
		}
		row := t.NewRow()
		for i, c := range cols {
			if err := row.Set(c, values[i].String); err != nil {
				return nil, errors.New(op).Err(err)
			}
		}
		if err := t.AddRow(row); err != nil {
			return nil, errors.New(op).Err(err)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, errors.New(op).Err(err)
	}
	return t, nil
}
