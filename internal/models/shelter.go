package models

import "time"

// Shelter is a known safe location. The collection is loaded at startup and
// read-only afterwards.
type Shelter struct {
	Name       string   `json:"name"`
	Address    string   `json:"address"`
	Capacity   int      `json:"capacity"`
	Latitude   float64  `json:"latitude"`
	Longitude  float64  `json:"longitude"`
	Facilities []string `json:"facilities"`
	Contact    string   `json:"contact"`
}

// RankedShelter pairs a shelter with its distance from the current location.
// Produced per request, never stored.
type RankedShelter struct {
	Shelter    Shelter `json:"shelter"`
	DistanceKM float64 `json:"distance_km"`
}

// Location is a position fix. One current location exists per session; it is
// replaced wholesale on refresh, never partially mutated.
type Location struct {
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Accuracy  string    `json:"accuracy"`
	Timestamp time.Time `json:"timestamp"`
}

type Coordinates struct {
	Latitude  float64
	Longitude float64
}

func (s *Shelter) Coordinates() Coordinates {
	return Coordinates{
		Latitude:  s.Latitude,
		Longitude: s.Longitude,
	}
}
