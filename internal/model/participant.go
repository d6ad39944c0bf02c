package model

import "time"

// Participant is someone currently present in the chat room.
// Name is the primary key; identity is a bare claimed name, not verified.
type Participant struct {
	Name       string    `json:"name"`
	LastSeenAt time.Time `json:"last_seen_at"`
}
