package sqlstore

import (
	"context"
	"database/sql"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/jmoiron/sqlx"
)

type ConnectConfig struct {
	DSN          string `toml:"dsn"`
	MaxOpenConns int    `toml:"max_open_conns"`
	MaxIdleConns int    `toml:"max_idle_conns"`
}

func (c ConnectConfig) FormatDSN() string {
	return c.DSN
}

// SqlCommon is satisfied by both *sqlx.DB and *sqlx.Tx.
type SqlCommon interface {
	sqlx.ExtContext
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
}

type SqlProvider struct {
	master   *sqlx.DB
	replicas []*sqlx.DB
	next     atomic.Uint64
}

type txKey struct{}

func MustSetupProvider(master ConnectConfig, replicas ...ConnectConfig) *SqlProvider {
	p, err := SetupProvider(master, replicas...)
	if err != nil {
		panic(err)
	}
	return p
}

func SetupProvider(master ConnectConfig, replicas ...ConnectConfig) (*SqlProvider, error) {
	m, err := connect(master)
	if err != nil {
		return nil, fmt.Errorf("connect master: %w", err)
	}

	p := &SqlProvider{master: m}
	for i, r := range replicas {
		db, err := connect(r)
		if err != nil {
			return nil, fmt.Errorf("connect replica %d: %w", i, err)
		}
		p.replicas = append(p.replicas, db)
	}
	return p, nil
}

// NewProvider wraps already opened handles.
func NewProvider(master *sqlx.DB, replicas ...*sqlx.DB) *SqlProvider {
	return &SqlProvider{master: master, replicas: replicas}
}

func connect(cfg ConnectConfig) (*sqlx.DB, error) {
	db, err := sqlx.Open("postgres", cfg.FormatDSN())
	if err != nil {
		return nil, err
	}
	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		db.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	db.SetConnMaxLifetime(time.Hour)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()
	if err = db.PingContext(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

// GetMaster returns the transaction bound to ctx, or the master handle.
func (p *SqlProvider) GetMaster(ctx context.Context) SqlCommon {
	if tx, ok := ctx.Value(txKey{}).(*sqlx.Tx); ok {
		return tx
	}
	return p.master
}

// GetReplica returns the transaction bound to ctx so reads inside a transaction
// observe its writes, otherwise one of the replicas in turn.
func (p *SqlProvider) GetReplica(ctx context.Context) SqlCommon {
	if tx, ok := ctx.Value(txKey{}).(*sqlx.Tx); ok {
		return tx
	}
	if len(p.replicas) == 0 {
		return p.master
	}
	n := p.next.Add(1)
	return p.replicas[n%uint64(len(p.replicas))]
}

// Transaction runs f with a context carrying a new transaction. Nested calls
// reuse the outer transaction.
func (p *SqlProvider) Transaction(ctx context.Context, f func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txKey{}).(*sqlx.Tx); ok {
		return f(ctx)
	}

	tx, err := p.master.BeginTxx(ctx, &sql.TxOptions{})
	if err != nil {
		return err
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	if err = f(context.WithValue(ctx, txKey{}, tx)); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("%w, rollback: %v", err, rbErr)
		}
		return err
	}
	return tx.Commit()
}

func (p *SqlProvider) Close() error {
	for _, r := range p.replicas {
		r.Close()
	}
	return p.master.Close()
}
