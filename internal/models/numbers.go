package models

import "strings"

// Indian emergency service numbers. 112 is the universal fallback.
var emergencyNumbers = map[string]string{
	"police":              "100",
	"fire":                "101",
	"ambulance":           "108",
	"disaster_management": "1070",
	"women_helpline":      "1091",
	"child_helpline":      "1098",
	"national_emergency":  "112",
}

const FallbackEmergencyNumber = "112"

// EmergencyNumber resolves a service key (case-insensitive) to its phone
// number. Unknown services resolve to the universal fallback.
func EmergencyNumber(service string) string {
	if n, ok := emergencyNumbers[strings.ToLower(service)]; ok {
		return n
	}
	return FallbackEmergencyNumber
}

// EmergencyNumbers returns a copy of the full service table.
func EmergencyNumbers() map[string]string {
	out := make(map[string]string, len(emergencyNumbers))
	for k, v := range emergencyNumbers {
		out[k] = v
	}
	return out
}
