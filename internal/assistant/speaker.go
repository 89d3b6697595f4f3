package assistant

import "log/slog"

// NopSpeaker discards responses. Used when no TTS engine is available; the
// assistant still answers over the API and event stream.
type NopSpeaker struct{}

func (NopSpeaker) Speak(string) {}

// LogSpeaker stands in for a TTS engine by logging what would be spoken.
type LogSpeaker struct{}

func (LogSpeaker) Speak(text string) {
	slog.Info("speaking response", "text", text)
}
