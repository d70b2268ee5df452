// Package session orchestrates gameplay at the application boundary: it
// owns the session lifecycle (start, restore, move, abandon, finalize)
// and is the only code that touches both the engine and storage.
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jasonfuller/relic-quest/internal/levels"
	"github.com/jasonfuller/relic-quest/internal/storage"
	"github.com/jasonfuller/relic-quest/pkg/game"
	"github.com/jasonfuller/relic-quest/pkg/record"
)

var (
	// ErrUnknownLevel is returned when a level id has no built level.
	ErrUnknownLevel = errors.New("unknown level id")
	// ErrNoActiveSession is returned when the user has nothing to act on.
	ErrNoActiveSession = errors.New("no active session")
	// ErrSessionExists is returned by Start when a run is already active.
	ErrSessionExists = errors.New("an active session already exists")
)

// Service coordinates one user's gameplay against the level registry and
// the storage collaborator. The engine itself does no locking; callers of
// a single user's session must not race (the HTTP layer serializes per
// request, and storage keeps one active save per user).
type Service struct {
	levels  *levels.Registry
	storage storage.Storage
	logger  *slog.Logger
}

func NewService(registry *levels.Registry, store storage.Storage, logger *slog.Logger) *Service {
	return &Service{
		levels:  registry,
		storage: store,
		logger:  logger,
	}
}

// View is what the boundary returns to a client after any operation:
// state plus the visibility-filtered level view, and the score once the
// session is terminal.
type View struct {
	Save  *record.GameSave `json:"save"`
	Level game.LevelView   `json:"level"`
	Score *int             `json:"score,omitempty"`
}

// Start begins a new run for a user on a level. Fails with
// ErrSessionExists when an active save is present; use Restart to replace
// it.
func (s *Service) Start(ctx context.Context, userEmail, levelID string) (*View, error) {
	lvl := s.levels.Get(levelID)
	if lvl == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownLevel, levelID)
	}

	existing, err := s.storage.GetActiveSave(ctx, userEmail)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrSessionExists
	}

	state := game.NewGameState(levelID, lvl.StartRoom)
	state.Message = fmt.Sprintf("Started %s", lvl.Name)
	state.EventLog = append(state.EventLog, fmt.Sprintf("Started level %s", lvl.Name))

	save := record.NewGameSave(userEmail, levelID, state)
	if err := s.storage.SaveActive(ctx, save); err != nil {
		return nil, err
	}

	s.logger.Info("Session started",
		"user", userEmail,
		"level_id", levelID,
		"start_room", lvl.StartRoom)

	return s.view(save, lvl), nil
}

// Restart abandons any active run and starts fresh on the given level.
func (s *Service) Restart(ctx context.Context, userEmail, levelID string) (*View, error) {
	if err := s.storage.DeleteActiveSave(ctx, userEmail); err != nil {
		return nil, err
	}
	return s.Start(ctx, userEmail, levelID)
}

// Restore returns the user's active session, or ErrNoActiveSession.
func (s *Service) Restore(ctx context.Context, userEmail string) (*View, error) {
	save, lvl, err := s.active(ctx, userEmail)
	if err != nil {
		return nil, err
	}
	return s.view(save, lvl), nil
}

// Abandon discards the user's active session without recording a result.
func (s *Service) Abandon(ctx context.Context, userEmail string) error {
	s.logger.Info("Session abandoned", "user", userEmail)
	return s.storage.DeleteActiveSave(ctx, userEmail)
}

// Move applies one movement action, autosaves, and finalizes the run when
// it reaches a terminal status: compute the score, append the result
// record, and delete the active save.
func (s *Service) Move(ctx context.Context, userEmail, direction string) (*View, error) {
	save, lvl, err := s.active(ctx, userEmail)
	if err != nil {
		return nil, err
	}

	game.Move(save.State, lvl, direction)

	if !save.State.Status.IsTerminal() {
		if err := s.storage.SaveActive(ctx, save); err != nil {
			return nil, err
		}
		return s.view(save, lvl), nil
	}

	score := lvl.Scoring.Calculate(save.State, lvl)
	result := record.NewGameResult(userEmail, lvl, save.State, score)

	if err := s.storage.AddResult(ctx, result); err != nil {
		return nil, err
	}
	if err := s.storage.DeleteActiveSave(ctx, userEmail); err != nil {
		return nil, err
	}

	s.logger.Info("Session finalized",
		"user", userEmail,
		"level_id", lvl.ID,
		"status", save.State.Status,
		"score", score,
		"moves", save.State.MoveCount)

	v := s.view(save, lvl)
	v.Score = &score
	return v, nil
}

func (s *Service) active(ctx context.Context, userEmail string) (*record.GameSave, *game.Level, error) {
	save, err := s.storage.GetActiveSave(ctx, userEmail)
	if err != nil {
		return nil, nil, err
	}
	if save == nil || save.State == nil {
		return nil, nil, ErrNoActiveSession
	}

	lvl := s.levels.Get(save.LevelID)
	if lvl == nil {
		// A save pointing at a level the registry no longer knows is
		// corrupted state, not a lookup miss.
		return nil, nil, fmt.Errorf("%w: save references %s", ErrUnknownLevel, save.LevelID)
	}

	return save, lvl, nil
}

func (s *Service) view(save *record.GameSave, lvl *game.Level) *View {
	return &View{
		Save:  save,
		Level: lvl.View(save.State),
	}
}
