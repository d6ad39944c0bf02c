package model

// MessageType distinguishes interactive messages from system-generated events
type MessageType string

// Message type wire values
const (
	MessageTypeBroadcast MessageType = "message"
	MessageTypePrivate   MessageType = "private_message"
	MessageTypeStatus    MessageType = "status"
)

// BroadcastTarget is the reserved recipient meaning "visible to all"
const BroadcastTarget = "Everyone"

// TimeLayout is the time-of-day format recorded on messages
const TimeLayout = "15:04:05"

// Message is a single chat event: a broadcast, a private message, or a
// status record emitted by the system on join/leave.
type Message struct {
	ID   string      `json:"id"`
	From string      `json:"from"`
	To   string      `json:"to"`
	Text string      `json:"text"`
	Type MessageType `json:"type"`
	Time string      `json:"time"`
}

// Interactive reports whether t is a type participants may post.
// Status messages are system-authored only.
func (t MessageType) Interactive() bool {
	return t == MessageTypeBroadcast || t == MessageTypePrivate
}

// VisibleTo reports whether the message may appear in requester's view.
// Private messages are visible only to their sender and addressee.
func (m *Message) VisibleTo(requester string) bool {
	return m.From == requester || m.To == BroadcastTarget || m.To == requester
}
