package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"midcar/pkg/storage"
	"net"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
)

const (
	// defaultLimit applies to list queries whose page carries no limit.
	defaultLimit    = 50
	applicationName = "midcar"
)

// Options configures the connection pool.
type Options struct {
	Username string
	Password string
	Host     string
	Port     int
	Database string
	// SslMode is passed through as the sslmode parameter, e.g. disable or require.
	SslMode string

	MaxOpenConnections int
	// MaxIdleConnections is kept warm by the pool.
	MaxIdleConnections int
	ConnMaxLifetime    time.Duration
	ConnMaxIdleTime    time.Duration
}

// DSN renders the options as a postgres:// URL with credentials escaped.
func (o Options) DSN() string {
	q := url.Values{}
	if o.SslMode != "" {
		q.Set("sslmode", o.SslMode)
	}
	q.Set("application_name", applicationName)

	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(o.Username, o.Password),
		Host:     net.JoinHostPort(o.Host, strconv.Itoa(o.Port)),
		Path:     "/" + o.Database,
		RawQuery: q.Encode(),
	}

	return u.String()
}

// DB is what the query code needs from *sql.DB and *sql.Tx alike.
type DB interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	PrepareContext(ctx context.Context, query string) (*sql.Stmt, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Builder is the goqu surface shared by *goqu.Database and *goqu.TxDatabase.
type Builder interface {
	From(table ...any) *goqu.SelectDataset
	Insert(table any) *goqu.InsertDataset
	Update(table any) *goqu.UpdateDataset
	Delete(table any) *goqu.DeleteDataset
}

// PgSQL is the postgres storage. A handle returned by Begin is bound to one
// transaction and has no Pool.
type PgSQL struct {
	DB      DB
	Builder Builder
	// Pool backs DB on the root handle; the river client shares it.
	Pool *pgxpool.Pool
}

var (
	_ storage.Storage   = (*PgSQL)(nil)
	_ storage.TxStorage = (*PgSQL)(nil)
)

func New(ctx context.Context, options Options) (*PgSQL, error) {
	cfg, err := pgxpool.ParseConfig(options.DSN())
	if err != nil {
		return nil, fmt.Errorf("could not parse pool config: %w", err)
	}
	if options.MaxOpenConnections > 0 {
		cfg.MaxConns = int32(options.MaxOpenConnections) //nolint: gosec
	}
	if options.MaxIdleConnections > 0 {
		cfg.MinConns = min(cfg.MaxConns, int32(options.MaxIdleConnections)) //nolint: gosec
	}
	if options.ConnMaxLifetime > 0 {
		cfg.MaxConnLifetime = options.ConnMaxLifetime
	}
	if options.ConnMaxIdleTime > 0 {
		cfg.MaxConnIdleTime = options.ConnMaxIdleTime
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("could not create pool: %w", err)
	}

	// goqu and goose speak database/sql
	sqlDB := stdlib.OpenDBFromPool(pool)

	return &PgSQL{
		DB:      sqlDB,
		Builder: goqu.Dialect("postgres").DB(sqlDB),
		Pool:    pool,
	}, nil
}

func (p *PgSQL) Close() error {
	var err error
	if db, ok := p.DB.(*sql.DB); ok {
		err = db.Close()
	}
	if p.Pool != nil {
		p.Pool.Close()
	}

	return err //nolint: wrapcheck
}

// Ping is used by the readiness probe. Transaction handles cannot ping.
func (p *PgSQL) Ping(ctx context.Context) error {
	if p.Pool == nil {
		return storage.ErrAlreadyInTx
	}
	if err := p.Pool.Ping(ctx); err != nil {
		return fmt.Errorf("could not ping postgres: %w", err)
	}

	return nil
}

func (p *PgSQL) tx() (*sql.Tx, error) {
	tx, ok := p.DB.(*sql.Tx)
	if !ok {
		return nil, storage.ErrNotInTx
	}

	return tx, nil
}

func (p *PgSQL) Commit() error {
	tx, err := p.tx()
	if err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("could not commit: %w", err)
	}

	return nil
}

func (p *PgSQL) Rollback() error {
	tx, err := p.tx()
	if err != nil {
		return err
	}
	if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
		return fmt.Errorf("could not roll back: %w", err)
	}

	return nil
}

func (p *PgSQL) Begin(ctx context.Context) (storage.TxStorage, error) {
	db, ok := p.DB.(*sql.DB)
	if !ok {
		return nil, storage.ErrAlreadyInTx
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("could not begin: %w", err)
	}

	return &PgSQL{DB: tx, Builder: goqu.NewTx("postgres", tx)}, nil
}

// WithTx commits when cb returns nil and rolls back otherwise, including
// when cb panics.
func (p *PgSQL) WithTx(ctx context.Context, cb func(storage storage.AllStorage) error) error {
	tx, err := p.Begin(ctx)
	if err != nil {
		return err
	}

	defer func() {
		if r := recover(); r != nil {
			_ = tx.Rollback()
			panic(r)
		}
	}()

	if err := cb(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return errors.Join(err, rbErr)
		}

		return err
	}

	return tx.Commit()
}

// mapWriteErr converts unique violations into storage.ErrDuplicate and wraps
// everything else with msg.
func mapWriteErr(err error, msg string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		return fmt.Errorf("%s: %w: %s", msg, storage.ErrDuplicate, pgErr.ConstraintName)
	}

	return fmt.Errorf("%s: %w", msg, err)
}

// likePattern builds a case-insensitive substring pattern with LIKE
// metacharacters escaped.
func likePattern(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

	return "%" + r.Replace(strings.TrimSpace(s)) + "%"
}

func affected(res sql.Result) (bool, error) {
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("could not read affected rows: %w", err)
	}

	return n > 0, nil
}

func limitOf(p storage.Page) uint {
	if p.Limit == 0 {
		return defaultLimit
	}

	return p.Limit
}
