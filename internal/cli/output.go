package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case Participant:
		o.printParticipant(v)
	case []Participant:
		o.printParticipants(v)
	case Message:
		o.printChatMessage(v)
	case []Message:
		o.printChatMessages(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Participant response type (matches API)
type Participant struct {
	Name       string    `json:"name"`
	LastSeenAt time.Time `json:"last_seen_at"`
}

// Message response type
type Message struct {
	ID   string `json:"id"`
	From string `json:"from"`
	To   string `json:"to"`
	Text string `json:"text"`
	Type string `json:"type"`
	Time string `json:"time"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printParticipant(p Participant) {
	fmt.Printf("Participant: %s\n", p.Name)
	fmt.Printf("Last seen: %s\n", p.LastSeenAt.Format(time.RFC3339))
}

func (o *Output) printParticipants(participants []Participant) {
	fmt.Printf("Participants (%d):\n", len(participants))
	for _, p := range participants {
		fmt.Printf("  - %s (last seen %s)\n", p.Name, p.LastSeenAt.Format(time.RFC3339))
	}
}

func (o *Output) printChatMessage(m Message) {
	switch m.Type {
	case "status":
		fmt.Printf("[%s] %s %s\n", m.Time, m.From, m.Text)
	case "private_message":
		fmt.Printf("[%s] %s -> %s (private): %s\n", m.Time, m.From, m.To, m.Text)
	default:
		fmt.Printf("[%s] %s -> %s: %s\n", m.Time, m.From, m.To, m.Text)
	}
}

func (o *Output) printChatMessages(messages []Message) {
	for _, m := range messages {
		o.printChatMessage(m)
	}
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
}
