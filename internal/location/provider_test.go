package location

import (
	"math"
	"testing"

	"github.com/subuhana2303/vaanirakshak/internal/catalog"
)

func TestSimulatedProvider_JitterWithinBounds(t *testing.T) {
	base := catalog.DefaultPlace()

	for i := 0; i < 50; i++ {
		p := NewSimulated(base)
		loc := p.CurrentLocation()

		if math.Abs(loc.Latitude-base.Latitude) > jitterDegrees {
			t.Fatalf("latitude jitter out of bounds: %f", loc.Latitude)
		}
		if math.Abs(loc.Longitude-base.Longitude) > jitterDegrees {
			t.Fatalf("longitude jitter out of bounds: %f", loc.Longitude)
		}
		if loc.Timestamp.IsZero() {
			t.Fatal("expected a timestamped fix")
		}
		if loc.Accuracy != mockAccuracy {
			t.Fatalf("unexpected accuracy descriptor: %q", loc.Accuracy)
		}
	}
}

func TestSimulatedProvider_FixedUntilRefresh(t *testing.T) {
	p := NewSimulated(catalog.DefaultPlace())

	first := p.CurrentLocation()
	second := p.CurrentLocation()
	if first != second {
		t.Error("location changed without Refresh")
	}

	p.Refresh()
	refreshed := p.CurrentLocation()
	if refreshed.Timestamp.Before(first.Timestamp) {
		t.Error("refresh did not update the timestamp")
	}
}
