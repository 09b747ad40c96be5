package sqlstore

import (
	"context"
	_ "embed"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"

	"github.com/breeew/hairlog-api/internal/store"
	"github.com/breeew/hairlog-api/pkg/register"
	"github.com/breeew/hairlog-api/pkg/sqlstore"
)

func init() {
	sq.StatementBuilder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
}

//go:embed schema.sql
var schemaSQL string

var _ store.Provider = (*Provider)(nil)

type Provider struct {
	*sqlstore.SqlProvider
	Stores *Stores
}

type Stores struct {
	store.UserStore
	store.ProfileStore
	JournalStore store.ContentRepository
}

type RegisterKey struct{}

// MustSetup connects to postgres and builds every registered store.
func MustSetup(m sqlstore.ConnectConfig, s ...sqlstore.ConnectConfig) func() *Provider {
	provider := NewProvider(sqlstore.MustSetupProvider(m, s...))

	return func() *Provider {
		return provider
	}
}

func NewProvider(p *sqlstore.SqlProvider) *Provider {
	provider := &Provider{
		SqlProvider: p,
		Stores:      &Stores{},
	}
	for _, f := range register.ResolveFuncHandlers[*Provider](RegisterKey{}) {
		f(provider)
	}
	return provider
}

// Install creates the tables when they do not exist yet.
func (p *Provider) Install(ctx context.Context) error {
	_, err := p.GetMaster(ctx).ExecContext(ctx, schemaSQL)
	return err
}

func (p *Provider) UserStore() store.UserStore {
	return p.Stores.UserStore
}

func (p *Provider) ProfileStore() store.ProfileStore {
	return p.Stores.ProfileStore
}

func (p *Provider) ContentRepository() store.ContentRepository {
	return p.Stores.JournalStore
}
