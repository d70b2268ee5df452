package game

import "time"

// Player carries the player's position only. Everything else the engine
// needs lives directly on GameState.
type Player struct {
	Location string `json:"location"`
}

// GameState is the mutable state of a single game session. It records what
// has happened, not what is allowed; rules and level configuration live on
// the Level. Mutation happens exclusively through Move — callers must not
// set Status themselves.
//
// Invariants:
//   - Player.Location is always a valid room of the bound level
//   - VisitedRooms always contains Player.Location
//   - MoveCount never decreases
//   - LevelID never changes for the life of the state
type GameState struct {
	LevelID            string    `json:"level_id"`
	Player             Player    `json:"player"`
	VisitedRooms       Set       `json:"visited_rooms"`
	CollectedItems     Set       `json:"collected_items"`
	MoveCount          int       `json:"move_count"`
	Status             Status    `json:"status"`
	Message            string    `json:"message,omitempty"`
	EventLog           []string  `json:"event_log"`
	EncounteredVillain bool      `json:"encountered_villain"`
	StartedAt          time.Time `json:"started_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// NewGameState creates the state of a freshly started session, bound to a
// level and positioned in its start room.
func NewGameState(levelID, startRoom string) *GameState {
	now := time.Now().UTC()
	return &GameState{
		LevelID:        levelID,
		Player:         Player{Location: startRoom},
		VisitedRooms:   NewSet(startRoom),
		CollectedItems: NewSet(),
		MoveCount:      0,
		Status:         StatusInProgress,
		EventLog:       make([]string, 0),
		StartedAt:      now,
		UpdatedAt:      now,
	}
}

// Visit records that the player has entered a room. It does not move the
// player or touch the move count; Move owns those.
func (gs *GameState) Visit(roomName string) {
	gs.VisitedRooms.Add(roomName)
}

// RepairInvariants re-asserts invariants that persisted data may have lost,
// currently that the current location is a visited room. Called after
// deserialization at the storage boundary.
func (gs *GameState) RepairInvariants() {
	if gs.VisitedRooms == nil {
		gs.VisitedRooms = NewSet()
	}
	if gs.CollectedItems == nil {
		gs.CollectedItems = NewSet()
	}
	if gs.EventLog == nil {
		gs.EventLog = make([]string, 0)
	}
	gs.VisitedRooms.Add(gs.Player.Location)
}
