package assistant

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/subuhana2303/vaanirakshak/internal/classify"
	"github.com/subuhana2303/vaanirakshak/internal/location"
	"github.com/subuhana2303/vaanirakshak/internal/models"
	"github.com/subuhana2303/vaanirakshak/internal/response"
)

// Session owns one assistant instance: the classifier, the response
// generator, the location fix, and the listening loop. Catalog data and the
// location are read-only after construction, so HandleText may run
// concurrently with the background loop without locking. The listening flag
// has a single writer (Start/Stop); the loop only reads it.
type Session struct {
	classifier   *classify.Classifier
	generator    *response.Generator
	locations    location.Provider
	source       UtteranceSource
	speaker      Speaker
	broadcaster  *Broadcaster
	pollInterval time.Duration

	listening atomic.Bool
	wg        sync.WaitGroup
}

func NewSession(
	classifier *classify.Classifier,
	generator *response.Generator,
	locations location.Provider,
	source UtteranceSource,
	speaker Speaker,
	broadcaster *Broadcaster,
	pollInterval time.Duration,
) *Session {
	if speaker == nil {
		speaker = NopSpeaker{}
	}
	return &Session{
		classifier:   classifier,
		generator:    generator,
		locations:    locations,
		source:       source,
		speaker:      speaker,
		broadcaster:  broadcaster,
		pollInterval: pollInterval,
	}
}

// HandleText classifies one utterance and produces its response. Pure over
// the session's read-only data apart from the alert side effect, so it is
// safe to call from any goroutine, including while the loop is listening.
func (s *Session) HandleText(text string) (models.Category, string) {
	category := s.classifier.Classify(text)
	answer := s.generator.Respond(category)

	if category != models.CategoryUnknown {
		slog.Info("handled emergency request", "category", category)
	}

	return category, answer
}

// Start launches the background listening loop. It returns an error if the
// session is already listening or has no utterance source.
func (s *Session) Start(ctx context.Context) error {
	if s.source == nil {
		return fmt.Errorf("no utterance source configured")
	}
	if !s.listening.CompareAndSwap(false, true) {
		return fmt.Errorf("already listening")
	}

	s.broadcastStatus(StatusListening, "Listening for emergency phrases...")

	s.wg.Add(1)
	go s.listen(ctx)

	return nil
}

// Stop asks the loop to exit and waits for it. In-flight speech playback is
// allowed to finish.
func (s *Session) Stop() {
	if !s.listening.CompareAndSwap(true, false) {
		return
	}
	s.wg.Wait()
	s.broadcastStatus(StatusStopped, "Voice recognition stopped")
}

func (s *Session) Listening() bool {
	return s.listening.Load()
}

func (s *Session) listen(ctx context.Context) {
	defer s.wg.Done()
	slog.Info("listening loop started", "poll_interval", s.pollInterval)

	ticker := time.NewTicker(s.pollInterval)
	defer ticker.Stop()

	for {
		// The flag is checked at the top of every iteration; Stop flips it
		// and waits for this goroutine.
		if !s.listening.Load() {
			slog.Info("listening loop stopping")
			return
		}

		select {
		case <-ctx.Done():
			slog.Info("listening loop cancelled")
			s.listening.Store(false)
			s.broadcastStatus(StatusStopped, "Voice recognition stopped")
			return
		case <-ticker.C:
			text, ok := s.source.Next()
			if !ok {
				continue
			}
			slog.Info("recognized utterance", "text", text)

			category, answer := s.HandleText(text)
			s.speaker.Speak(answer)

			if s.broadcaster != nil {
				s.broadcaster.Broadcast(Event{
					Kind:      EventResponse,
					Utterance: text,
					Category:  category,
					Response:  answer,
					Timestamp: time.Now(),
				})
			}
		}
	}
}

func (s *Session) broadcastStatus(status Status, message string) {
	slog.Info("assistant status", "status", status, "message", message)
	if s.broadcaster != nil {
		s.broadcaster.Broadcast(Event{
			Kind:      EventStatus,
			Status:    status,
			Message:   message,
			Timestamp: time.Now(),
		})
	}
}

// State is the readiness snapshot reported over the API.
type State struct {
	Initialized bool            `json:"initialized"`
	Listening   bool            `json:"listening"`
	Location    models.Location `json:"location"`
}

func (s *Session) State() State {
	return State{
		Initialized: s.classifier != nil && s.generator != nil,
		Listening:   s.listening.Load(),
		Location:    s.locations.CurrentLocation(),
	}
}
