package catalog

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/subuhana2303/vaanirakshak/internal/geo"
	"github.com/subuhana2303/vaanirakshak/internal/models"
)

// Phrases maps each emergency category to its trigger phrases, lowercase,
// in catalog order. Loaded once at startup and read-only afterwards.
type Phrases map[models.Category][]string

// Place is a named base location from the locations data file.
type Place struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	City      string  `json:"city"`
	Country   string  `json:"country"`
}

const phraseKeySuffix = "_phrases"

// LoadPhrases reads a category→phrases JSON file. Keys carry the "_phrases"
// suffix (e.g. "fire_phrases"); the suffix is stripped to obtain the
// category. Keys that don't resolve to a known category are skipped with a
// warning. An empty result is an error so callers fall back to defaults.
func LoadPhrases(path string) (Phrases, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading phrase file: %w", err)
	}

	var raw map[string][]string
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("error parsing phrase file: %w", err)
	}

	phrases := make(Phrases)
	for key, list := range raw {
		name := strings.TrimSuffix(key, phraseKeySuffix)
		cat := models.ParseCategory(name)
		if cat == models.CategoryUnknown {
			slog.Warn("skipping unknown phrase category", "key", key)
			continue
		}
		cleaned := make([]string, 0, len(list))
		for _, p := range list {
			p = strings.ToLower(strings.TrimSpace(p))
			if p != "" {
				cleaned = append(cleaned, p)
			}
		}
		if len(cleaned) > 0 {
			phrases[cat] = cleaned
		}
	}

	if len(phrases) == 0 {
		return nil, fmt.Errorf("phrase file %s contains no usable categories", path)
	}

	return phrases, nil
}

// LoadShelters reads the shelter list. Records with invalid capacity or
// coordinates are dropped with a warning rather than failing the load.
func LoadShelters(path string) ([]models.Shelter, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading shelter file: %w", err)
	}

	var raw []models.Shelter
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("error parsing shelter file: %w", err)
	}

	shelters := make([]models.Shelter, 0, len(raw))
	for _, s := range raw {
		if s.Capacity <= 0 || !geo.ValidCoordinates(s.Latitude, s.Longitude) {
			slog.Warn("dropping invalid shelter record", "name", s.Name)
			continue
		}
		shelters = append(shelters, s)
	}

	if len(shelters) == 0 {
		return nil, fmt.Errorf("shelter file %s contains no valid records", path)
	}

	return shelters, nil
}

// LoadLocations reads the locations file and returns its "default" entry.
func LoadLocations(path string) (Place, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Place{}, fmt.Errorf("error reading locations file: %w", err)
	}

	var raw map[string]Place
	if err := json.Unmarshal(data, &raw); err != nil {
		return Place{}, fmt.Errorf("error parsing locations file: %w", err)
	}

	place, ok := raw["default"]
	if !ok {
		return Place{}, fmt.Errorf("locations file %s has no default entry", path)
	}
	if !geo.ValidCoordinates(place.Latitude, place.Longitude) {
		return Place{}, fmt.Errorf("locations file %s default entry has invalid coordinates", path)
	}

	return place, nil
}

// Data bundles everything loaded at startup.
type Data struct {
	Phrases  Phrases
	Shelters []models.Shelter
	Base     Place
}

// Load reads all three data files, substituting built-in defaults for any
// source that is missing or malformed. Fallbacks are logged as warnings;
// Load itself never fails, so the assistant stays operable with default data.
func Load(phrasesPath, sheltersPath, locationsPath string) Data {
	var d Data

	phrases, err := LoadPhrases(phrasesPath)
	if err != nil {
		slog.Warn("falling back to built-in phrase catalog", "path", phrasesPath, "error", err)
		phrases = DefaultPhrases()
	}
	d.Phrases = phrases

	shelters, err := LoadShelters(sheltersPath)
	if err != nil {
		slog.Warn("falling back to built-in shelter list", "path", sheltersPath, "error", err)
		shelters = DefaultShelters()
	}
	d.Shelters = shelters

	base, err := LoadLocations(locationsPath)
	if err != nil {
		slog.Warn("falling back to built-in default location", "path", locationsPath, "error", err)
		base = DefaultPlace()
	}
	d.Base = base

	return d
}
