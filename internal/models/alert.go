package models

import "time"

// AlertRecord is an outbound emergency notification. Write-once: created,
// handed to the transport, and kept only for audit.
type AlertRecord struct {
	ID        string
	Category  Category
	Message   string
	Latitude  float64
	Longitude float64
	CreatedAt time.Time
}
