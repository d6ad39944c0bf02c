package response

import (
	"time"

	"batepapo/internal/model"
)

// Participant represents a participant in API responses
type Participant struct {
	Name       string    `json:"name"`
	LastSeenAt time.Time `json:"last_seen_at"`
}

// ParticipantFromModel converts a model.Participant to a response Participant
func ParticipantFromModel(p *model.Participant) Participant {
	return Participant{
		Name:       p.Name,
		LastSeenAt: p.LastSeenAt,
	}
}

// ParticipantsFromModel converts a participant list
func ParticipantsFromModel(participants []*model.Participant) []Participant {
	out := make([]Participant, len(participants))
	for i, p := range participants {
		out[i] = ParticipantFromModel(p)
	}
	return out
}

// Message represents a chat message in API responses
type Message struct {
	ID   string `json:"id"`
	From string `json:"from"`
	To   string `json:"to"`
	Text string `json:"text"`
	Type string `json:"type"`
	Time string `json:"time"`
}

// MessageFromModel converts a model.Message to a response Message
func MessageFromModel(m *model.Message) Message {
	return Message{
		ID:   m.ID,
		From: m.From,
		To:   m.To,
		Text: m.Text,
		Type: string(m.Type),
		Time: m.Time,
	}
}

// MessagesFromModel converts a message list
func MessagesFromModel(messages []*model.Message) []Message {
	out := make([]Message, len(messages))
	for i, m := range messages {
		out[i] = MessageFromModel(m)
	}
	return out
}
