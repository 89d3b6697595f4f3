package mic

import (
	"log/slog"
	"sync"
	"time"
)

// VirtualMicrophone simulates the speech engine for demos and tests. It
// cycles a fixed set of phrases on an interval and accepts injected phrases,
// which take priority over the canned rotation.
type VirtualMicrophone struct {
	phrases  []string
	interval time.Duration

	mu       sync.Mutex
	injected []string
	idx      int
	nextAt   time.Time
}

var simulationPhrases = []string{
	"help",
	"emergency",
	"nearest shelter",
	"medical emergency",
	"fire emergency",
	"flood emergency",
	"earthquake",
}

// NewVirtual creates a microphone that yields one canned phrase per
// interval. An interval of zero disables the rotation, leaving injection
// only.
func NewVirtual(interval time.Duration) *VirtualMicrophone {
	m := &VirtualMicrophone{
		phrases:  simulationPhrases,
		interval: interval,
	}
	if interval > 0 {
		m.nextAt = time.Now().Add(interval)
	}
	return m
}

// Inject queues a phrase for recognition ahead of the canned rotation.
func (m *VirtualMicrophone) Inject(phrase string) {
	m.mu.Lock()
	m.injected = append(m.injected, phrase)
	m.mu.Unlock()
	slog.Info("injected phrase for recognition", "phrase", phrase)
}

// Next returns the next pending utterance without blocking.
func (m *VirtualMicrophone) Next() (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.injected) > 0 {
		phrase := m.injected[0]
		m.injected = m.injected[1:]
		return phrase, true
	}

	if m.interval <= 0 || time.Now().Before(m.nextAt) {
		return "", false
	}

	phrase := m.phrases[m.idx%len(m.phrases)]
	m.idx++
	m.nextAt = time.Now().Add(m.interval)
	slog.Info("simulating recognized phrase", "phrase", phrase)

	return phrase, true
}
