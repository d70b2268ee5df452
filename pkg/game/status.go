package game

// Status is the lifecycle state of a game session. Transitions are
// one-directional: once terminal, a session never returns to in_progress.
type Status string

const (
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusGameOver   Status = "game_over"
)

// IsTerminal reports whether the session has ended, by win or loss.
func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusGameOver
}
