// Package storage is the persistence boundary: level definitions from the
// data dir, active saves, append-only results, and user accounts.
package storage

import (
	"context"
	"errors"

	"github.com/jasonfuller/relic-quest/internal/auth"
	"github.com/jasonfuller/relic-quest/pkg/level"
	"github.com/jasonfuller/relic-quest/pkg/record"
)

// ErrUserExists is returned by CreateUser when the email is taken.
var ErrUserExists = errors.New("user already exists")

// Storage defines the persistence operations the engine's boundary needs.
// Lookups that find nothing return (nil, nil), not an error.
type Storage interface {
	// Health and lifecycle
	Ping(ctx context.Context) error
	Close() error

	// Level definitions (static data)
	ListLevelDefinitions(ctx context.Context) ([]*level.Definition, error)
	GetLevelDefinition(ctx context.Context, id string) (*level.Definition, error)

	// Active saves, at most one per user
	SaveActive(ctx context.Context, save *record.GameSave) error
	GetActiveSave(ctx context.Context, userEmail string) (*record.GameSave, error)
	DeleteActiveSave(ctx context.Context, userEmail string) error

	// Results (append-only)
	AddResult(ctx context.Context, result *record.GameResult) error
	TopScores(ctx context.Context, levelID string, limit int) ([]*record.GameResult, error)
	ResultsByUser(ctx context.Context, userEmail string) ([]*record.GameResult, error)

	// Users
	CreateUser(ctx context.Context, user *auth.User) error
	GetUser(ctx context.Context, email string) (*auth.User, error)
}
