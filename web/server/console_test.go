package server

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestConsole_BasicLogging(t *testing.T) {
	console := NewConsole(10)
	logger := zerolog.New(console)

	logger.Info().Str("render_id", "test-render-123").Msg("Test log message")

	messages := console.Messages()
	if len(messages) != 1 {
		t.Fatalf("Expected 1 message, got %d", len(messages))
	}
	msg := messages[0]
	if msg.Message != "Test log message" {
		t.Errorf("Expected message 'Test log message', got '%s'", msg.Message)
	}
	if msg.Level != "info" {
		t.Errorf("Expected level 'info', got '%s'", msg.Level)
	}
	if msg.RenderID != "test-render-123" {
		t.Errorf("Expected render id 'test-render-123', got '%s'", msg.RenderID)
	}
	if time.Since(msg.Timestamp) > time.Second {
		t.Errorf("Timestamp seems too old: %v", msg.Timestamp)
	}
}

func TestConsole_Levels(t *testing.T) {
	console := NewConsole(10)
	logger := zerolog.New(console)

	logger.Warn().Msg("careful")
	logger.Error().Msg("broken")

	messages := console.Messages()
	if len(messages) != 2 {
		t.Fatalf("Expected 2 messages, got %d", len(messages))
	}
	if messages[0].Level != "warn" || messages[1].Level != "error" {
		t.Errorf("Expected levels warn and error, got %s and %s", messages[0].Level, messages[1].Level)
	}
}

func TestConsole_Wraparound(t *testing.T) {
	console := NewConsole(3)
	logger := zerolog.New(console)

	for _, m := range []string{"Message 1", "Message 2", "Message 3", "Message 4", "Message 5"} {
		logger.Info().Msg(m)
	}

	messages := console.Messages()
	expected := []string{"Message 3", "Message 4", "Message 5"}
	if len(messages) != len(expected) {
		t.Fatalf("Expected %d messages, got %d", len(expected), len(messages))
	}
	for i, msg := range messages {
		if msg.Message != expected[i] {
			t.Errorf("Message %d: expected '%s', got '%s'", i, expected[i], msg.Message)
		}
	}
}

func TestConsole_PlainText(t *testing.T) {
	console := NewConsole(2)

	if _, err := console.Write([]byte("not json")); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	messages := console.Messages()
	if len(messages) != 1 || messages[0].Message != "not json" {
		t.Errorf("Expected plain text message, got %+v", messages)
	}
}

func TestConsole_Empty(t *testing.T) {
	if got := NewConsole(5).Messages(); len(got) != 0 {
		t.Errorf("Expected no messages, got %d", len(got))
	}
}
