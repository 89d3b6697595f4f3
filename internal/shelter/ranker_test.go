package shelter

import (
	"testing"
	"time"

	"github.com/subuhana2303/vaanirakshak/internal/models"
)

func testLocation() models.Location {
	return models.Location{
		Latitude:  28.6139,
		Longitude: 77.2090,
		Accuracy:  "50 meters",
		Timestamp: time.Now(),
	}
}

func TestNearest_EmptyShelters(t *testing.T) {
	if got := Nearest(testLocation(), nil, 2); len(got) != 0 {
		t.Errorf("expected empty result for empty shelter list, got %d", len(got))
	}
}

func TestNearest_NoLocationFix(t *testing.T) {
	shelters := []models.Shelter{{Name: "A", Latitude: 28.6, Longitude: 77.2}}
	if got := Nearest(models.Location{}, shelters, 2); len(got) != 0 {
		t.Errorf("expected empty result without a location fix, got %d", len(got))
	}
}

func TestNearest_SortsAndLimits(t *testing.T) {
	shelters := []models.Shelter{
		{Name: "Far", Latitude: 28.70, Longitude: 77.30},
		{Name: "Near", Latitude: 28.6138, Longitude: 77.2091},
		{Name: "Mid", Latitude: 28.63, Longitude: 77.22},
	}

	got := Nearest(testLocation(), shelters, 2)
	if len(got) != 2 {
		t.Fatalf("expected 2 results, got %d", len(got))
	}
	if got[0].Shelter.Name != "Near" || got[1].Shelter.Name != "Mid" {
		t.Errorf("wrong order: %s, %s", got[0].Shelter.Name, got[1].Shelter.Name)
	}
	if got[0].DistanceKM > got[1].DistanceKM {
		t.Errorf("distances not non-decreasing: %f > %f", got[0].DistanceKM, got[1].DistanceKM)
	}
}

func TestNearest_TiesKeepCatalogOrder(t *testing.T) {
	shelters := []models.Shelter{
		{Name: "First", Latitude: 28.62, Longitude: 77.21},
		{Name: "Second", Latitude: 28.62, Longitude: 77.21},
	}

	got := Nearest(testLocation(), shelters, 2)
	if len(got) != 2 {
		t.Fatalf("expected 2 results, got %d", len(got))
	}
	if got[0].Shelter.Name != "First" {
		t.Errorf("tie broke catalog order: got %s first", got[0].Shelter.Name)
	}
}

func TestNearest_DefaultLimit(t *testing.T) {
	shelters := []models.Shelter{
		{Name: "A", Latitude: 28.61, Longitude: 77.21},
		{Name: "B", Latitude: 28.62, Longitude: 77.22},
		{Name: "C", Latitude: 28.63, Longitude: 77.23},
	}

	got := Nearest(testLocation(), shelters, 0)
	if len(got) != DefaultLimit {
		t.Errorf("expected default limit %d, got %d", DefaultLimit, len(got))
	}
}
