package catalog

import "github.com/subuhana2303/vaanirakshak/internal/models"

// DefaultPhrases returns the built-in trigger-phrase catalog used when the
// phrase data file is missing or corrupt.
func DefaultPhrases() Phrases {
	return Phrases{
		models.CategoryHelp:       {"help", "emergency", "need help", "assist", "rescue"},
		models.CategoryShelter:    {"shelter", "safe place", "refuge", "evacuation center"},
		models.CategoryMedical:    {"medical", "doctor", "hospital", "injured", "hurt"},
		models.CategoryFire:       {"fire", "burning", "smoke", "flames"},
		models.CategoryFlood:      {"flood", "water", "drowning", "trapped by water"},
		models.CategoryEarthquake: {"earthquake", "tremor", "shaking", "collapsed"},
	}
}

// DefaultShelters returns the built-in demonstration shelter list.
func DefaultShelters() []models.Shelter {
	return []models.Shelter{
		{
			Name:       "Community Center Shelter",
			Address:    "123 Main Street",
			Capacity:   200,
			Latitude:   28.6139,
			Longitude:  77.2090,
			Facilities: []string{"Food", "Medical", "Communications"},
			Contact:    "Emergency Hotline: 108",
		},
		{
			Name:       "School Emergency Shelter",
			Address:    "456 Oak Avenue",
			Capacity:   150,
			Latitude:   28.6129,
			Longitude:  77.2080,
			Facilities: []string{"Food", "Basic Medical", "Childcare"},
			Contact:    "Emergency Hotline: 108",
		},
	}
}

// DefaultPlace returns the built-in base location (New Delhi).
func DefaultPlace() Place {
	return Place{
		Latitude:  28.6139,
		Longitude: 77.2090,
		City:      "New Delhi",
		Country:   "India",
	}
}
