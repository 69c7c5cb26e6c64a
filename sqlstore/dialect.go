package sqlstore

import (
	"strconv"
	"strings"

	"github.com/Station-Manager/errors"
)

// Dialect covers the SQL differences between the supported databases.
type Dialect interface {
	Name() string
	// DriverName is the database/sql driver the dialect opens connections with.
	DriverName() string
	QuoteIdent(name string) string
	// Placeholder returns the bind marker for the n-th argument, starting at 1.
	Placeholder(n int) string
}

var (
	SQLite   Dialect = sqliteDialect{}
	Postgres Dialect = postgresDialect{}
)

// DialectFor resolves a driver name given on the command line or in config.
func DialectFor(driver string) (Dialect, error) {
	const op errors.Op = "sqlstore.DialectFor"
	switch strings.ToLower(driver) {
	case "sqlite", "sqlite3":
		return SQLite, nil
	case "postgres", "postgresql", "pgx":
		return Postgres, nil
	default:
		return nil, errors.New(op).Errorf("unsupported driver %q, expected sqlite or postgres", driver)
	}
}

func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

type sqliteDialect struct{}

func (sqliteDialect) Name() string                  { return "sqlite" }
func (sqliteDialect) DriverName() string            { return "sqlite" }
func (sqliteDialect) QuoteIdent(name string) string { return quoteIdent(name) }
func (sqliteDialect) Placeholder(int) string        { return "?" }

type postgresDialect struct{}

func (postgresDialect) Name() string                  { return "postgres" }
func (postgresDialect) DriverName() string            { return "pgx" }
func (postgresDialect) QuoteIdent(name string) string { return quoteIdent(name) }
func (postgresDialect) Placeholder(n int) string      { return "$" + strconv.Itoa(n) }
