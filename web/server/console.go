package server

import (
	"encoding/json"
	"time"

	"github.com/rs/zerolog"
	"github.com/sasha-s/go-deadlock"
)

// ConsoleMessage represents a console message with timestamp
type ConsoleMessage struct {
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Level     string    `json:"level"` // "debug", "info", "warn", "error"
	RenderID  string    `json:"renderId,omitempty"`
}

// Console keeps the most recent server log messages so clients can show them.
// It is an io.Writer for zerolog JSON output.
type Console struct {
	mu       deadlock.Mutex
	messages []ConsoleMessage
	next     int
	full     bool
}

// NewConsole creates a console that remembers up to capacity messages
func NewConsole(capacity int) *Console {
	if capacity < 1 {
		capacity = 1
	}
	return &Console{messages: make([]ConsoleMessage, capacity)}
}

// Write decodes one zerolog event. Lines that are not JSON are kept verbatim.
func (c *Console) Write(p []byte) (int, error) {
	var event map[string]interface{}
	msg := ConsoleMessage{Timestamp: time.Now(), Level: zerolog.InfoLevel.String()}
	if err := json.Unmarshal(p, &event); err != nil {
		msg.Message = string(p)
	} else {
		if m, ok := event[zerolog.MessageFieldName].(string); ok {
			msg.Message = m
		}
		if l, ok := event[zerolog.LevelFieldName].(string); ok {
			msg.Level = l
		}
		if id, ok := event["render_id"].(string); ok {
			msg.RenderID = id
		}
	}

	c.mu.Lock()
	c.messages[c.next] = msg
	c.next = (c.next + 1) % len(c.messages)
	if c.next == 0 {
		c.full = true
	}
	c.mu.Unlock()

	return len(p), nil
}

// Messages returns the remembered messages, oldest first
func (c *Console) Messages() []ConsoleMessage {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.full {
		return append([]ConsoleMessage(nil), c.messages[:c.next]...)
	}
	out := make([]ConsoleMessage, 0, len(c.messages))
	out = append(out, c.messages[c.next:]...)
	return append(out, c.messages[:c.next]...)
}
