package game

import "time"

// Player is the account identity behind a save. Created at login or
// register time, immutable afterwards, destroyed when the save is cleared.
type Player struct {
	Username string `json:"username"`
}

// Message is one line of the play transcript: either the echo of a player
// command or a scripted response. Order is insertion order, oldest first.
type Message struct {
	Text      string    `json:"text"`
	IsCommand bool      `json:"isCommand"`
	Timestamp time.Time `json:"timestamp"`
}

// SaveRecord is the single persisted snapshot of a play session. A record
// is only a live save when both Player and Character are non-nil; restoring
// a record with either missing never lands in the playing phase.
type SaveRecord struct {
	Player    *Player    `json:"player"`
	Character *Character `json:"character"`
	Messages  []Message  `json:"messageHistory"`
}
