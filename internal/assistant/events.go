package assistant

import (
	"time"

	"github.com/subuhana2303/vaanirakshak/internal/models"
)

// Status describes the listening loop's state as reported to consumers.
type Status string

const (
	StatusListening Status = "listening"
	StatusStopped   Status = "stopped"
	StatusError     Status = "error"
)

type EventKind string

const (
	EventResponse EventKind = "response"
	EventStatus   EventKind = "status"
)

// Event is what the assistant pushes to GUI/TTS consumers: either an
// answered utterance or a status change.
type Event struct {
	Kind      EventKind       `json:"kind"`
	Utterance string          `json:"utterance,omitempty"`
	Category  models.Category `json:"category,omitempty"`
	Response  string          `json:"response,omitempty"`
	Status    Status          `json:"status,omitempty"`
	Message   string          `json:"message,omitempty"`
	Timestamp time.Time       `json:"timestamp"`
}

// UtteranceSource produces recognized speech as plain text. Next must not
// block: it returns ok=false when nothing is pending. The speech engine and
// the virtual microphone both sit behind this interface.
type UtteranceSource interface {
	Next() (text string, ok bool)
}

// Speaker plays a response aloud, blocking until playback finishes. The
// session calls it off the UI thread.
type Speaker interface {
	Speak(text string)
}
