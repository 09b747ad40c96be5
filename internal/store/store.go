package store

import (
	"context"

	"github.com/breeew/hairlog-api/pkg/types"
)

type UserStore interface {
	GetUser(ctx context.Context, id string) (*types.User, error)
	Create(ctx context.Context, data types.User) error
}

type ProfileStore interface {
	Get(ctx context.Context, userID string) (*types.Profile, error)
	// CreateIfAbsent inserts data unless a profile for data.UserID exists and
	// reports whether a row was written.
	CreateIfAbsent(ctx context.Context, data types.Profile) (bool, error)
}

// ContentRepository reads posts published by the content management system.
type ContentRepository interface {
	// ListRecentEntries returns at most limit published posts of postType by
	// authorID, newest first, with their metadata attached.
	ListRecentEntries(ctx context.Context, authorID, postType string, limit uint64) ([]types.JournalEntry, error)
}

type Provider interface {
	UserStore() UserStore
	ProfileStore() ProfileStore
	ContentRepository() ContentRepository
	Transaction(ctx context.Context, f func(ctx context.Context) error) error
}

// Installer is implemented by providers that can create their own schema.
type Installer interface {
	Install(ctx context.Context) error
}
