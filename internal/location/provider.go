package location

import (
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"github.com/subuhana2303/vaanirakshak/internal/catalog"
	"github.com/subuhana2303/vaanirakshak/internal/models"
)

// Provider produces the current position fix. The fix is taken once and held
// for the session; Refresh replaces it wholesale. A real GPS implementation
// must preserve this contract.
type Provider interface {
	CurrentLocation() models.Location
	Refresh()
}

// SimulatedProvider jitters a fixed base coordinate by up to ±0.01 degrees
// (roughly ±1.1 km) to stand in for a GPS receiver.
type SimulatedProvider struct {
	base catalog.Place

	mu      sync.RWMutex
	current models.Location
}

const (
	jitterDegrees = 0.01
	mockAccuracy  = "50 meters"
)

func NewSimulated(base catalog.Place) *SimulatedProvider {
	p := &SimulatedProvider{base: base}
	p.Refresh()
	return p
}

func (p *SimulatedProvider) CurrentLocation() models.Location {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.current
}

func (p *SimulatedProvider) Refresh() {
	loc := models.Location{
		Latitude:  p.base.Latitude + (rand.Float64()*2-1)*jitterDegrees,
		Longitude: p.base.Longitude + (rand.Float64()*2-1)*jitterDegrees,
		Accuracy:  mockAccuracy,
		Timestamp: time.Now(),
	}

	p.mu.Lock()
	p.current = loc
	p.mu.Unlock()

	slog.Info("location fix set", "lat", loc.Latitude, "lon", loc.Longitude, "city", p.base.City)
}
