package shelter

import (
	"sort"

	"github.com/subuhana2303/vaanirakshak/internal/geo"
	"github.com/subuhana2303/vaanirakshak/internal/models"
)

// DefaultLimit is how many shelters a voice-triggered request returns.
const DefaultLimit = 2

// Nearest ranks shelters by great-circle distance from current and returns
// the closest limit entries. The sort is stable so ties keep catalog order.
// An empty shelter list or zero-value location yields an empty result.
func Nearest(current models.Location, shelters []models.Shelter, limit int) []models.RankedShelter {
	if len(shelters) == 0 || current.Timestamp.IsZero() {
		return nil
	}
	if limit <= 0 {
		limit = DefaultLimit
	}

	ranked := make([]models.RankedShelter, 0, len(shelters))
	for _, s := range shelters {
		ranked = append(ranked, models.RankedShelter{
			Shelter:    s,
			DistanceKM: geo.Distance(current.Latitude, current.Longitude, s.Latitude, s.Longitude),
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].DistanceKM < ranked[j].DistanceKM
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	return ranked
}
