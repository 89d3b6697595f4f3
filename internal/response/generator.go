package response

import (
	"fmt"
	"strings"

	"github.com/subuhana2303/vaanirakshak/internal/alert"
	"github.com/subuhana2303/vaanirakshak/internal/geo"
	"github.com/subuhana2303/vaanirakshak/internal/location"
	"github.com/subuhana2303/vaanirakshak/internal/models"
	"github.com/subuhana2303/vaanirakshak/internal/shelter"
)

// Generator turns a classified category into spoken guidance. It is a total
// function over the category set: every branch produces text, missing shelter
// data degrades to fallback strings, and alert failures never surface. Safe
// for concurrent use; all referenced data is read-only.
type Generator struct {
	shelters     []models.Shelter
	locations    location.Provider
	sink         alert.Sink
	shelterLimit int
}

func NewGenerator(shelters []models.Shelter, locations location.Provider, sink alert.Sink, shelterLimit int) *Generator {
	if shelterLimit <= 0 {
		shelterLimit = shelter.DefaultLimit
	}
	return &Generator{
		shelters:     shelters,
		locations:    locations,
		sink:         sink,
		shelterLimit: shelterLimit,
	}
}

// Respond returns the guidance text for a category. Every category except
// unknown also emits a best-effort alert as a side effect.
func (g *Generator) Respond(category models.Category) string {
	switch category {
	case models.CategoryHelp:
		return g.generalHelp()
	case models.CategoryShelter:
		return g.shelterInfo()
	case models.CategoryMedical:
		return g.medical()
	case models.CategoryFire:
		return g.fire()
	case models.CategoryFlood:
		return g.flood()
	case models.CategoryEarthquake:
		return g.earthquake()
	default:
		return g.unknown()
	}
}

func (g *Generator) emit(category models.Category, message string) {
	// Alerting is best-effort; the sink logs its own failures.
	g.sink.Emit(category, message, g.locations.CurrentLocation())
}

func (g *Generator) generalHelp() string {
	g.emit(models.CategoryHelp, "General emergency assistance requested")

	return "I'm here to help you in this emergency. " +
		"I can help you find the nearest shelter, provide medical guidance, " +
		"or connect you with emergency services. " +
		"Say 'nearest shelter' to find safe places, " +
		"or 'medical emergency' if you need medical assistance."
}

func (g *Generator) shelterInfo() string {
	if len(g.shelters) == 0 {
		return "I don't have shelter information available right now. Please contact emergency services at 108."
	}

	nearest := shelter.Nearest(g.locations.CurrentLocation(), g.shelters, g.shelterLimit)
	if len(nearest) == 0 {
		return "I couldn't find nearby shelters. Please contact emergency services at 108."
	}

	var b strings.Builder
	b.WriteString("Here are the nearest emergency shelters:\n\n")

	for i, rs := range nearest {
		fmt.Fprintf(&b, "%d. %s\n", i+1, rs.Shelter.Name)
		fmt.Fprintf(&b, "   Address: %s\n", rs.Shelter.Address)
		fmt.Fprintf(&b, "   Distance: %s\n", geo.FormatDistance(rs.DistanceKM))
		fmt.Fprintf(&b, "   Capacity: %d people\n", rs.Shelter.Capacity)
		fmt.Fprintf(&b, "   Facilities: %s\n", strings.Join(rs.Shelter.Facilities, ", "))
		fmt.Fprintf(&b, "   Contact: %s\n\n", rs.Shelter.Contact)
	}

	b.WriteString("Stay safe and move to the nearest shelter if possible.")

	g.emit(models.CategoryShelter, "Shelter information sent: "+nearest[0].Shelter.Name)

	return b.String()
}

func (g *Generator) medical() string {
	g.emit(models.CategoryMedical, "Medical emergency - immediate assistance needed")

	return "Medical emergency detected. " +
		"If someone is seriously injured, call emergency services immediately at 108. " +
		"For minor injuries: " +
		"1. Keep the person calm and still " +
		"2. Apply pressure to stop bleeding " +
		"3. Do not move someone with possible spinal injury " +
		"4. Check for breathing and pulse " +
		"The nearest medical facilities will be contacted."
}

func (g *Generator) fire() string {
	g.emit(models.CategoryFire, "Fire emergency - evacuation required")

	return "Fire emergency detected. " +
		"Safety instructions: " +
		"1. Get out of the building immediately " +
		"2. Stay low to avoid smoke " +
		"3. Feel doors before opening them " +
		"4. Don't use elevators " +
		"5. Call fire department at 101 " +
		"6. Go to your designated meeting point " +
		"Emergency services are being notified."
}

func (g *Generator) flood() string {
	g.emit(models.CategoryFlood, "Flood emergency - move to higher ground")

	return "Flood emergency detected. " +
		"Safety instructions: " +
		"1. Move to higher ground immediately " +
		"2. Avoid walking or driving through flood water " +
		"3. Stay away from electrical equipment " +
		"4. If trapped, signal for help from upper floors " +
		"5. Don't drink flood water " +
		"Emergency rescue teams are being alerted."
}

func (g *Generator) earthquake() string {
	g.emit(models.CategoryEarthquake, "Earthquake detected - following safety protocols")

	return "Earthquake emergency detected. " +
		"If shaking continues: Drop, Cover, and Hold On. " +
		"After shaking stops: " +
		"1. Check for injuries " +
		"2. Look for hazards like gas leaks or structural damage " +
		"3. Exit carefully if building is damaged " +
		"4. Stay away from damaged structures " +
		"5. Be prepared for aftershocks " +
		"Emergency teams are being mobilized."
}

func (g *Generator) unknown() string {
	// No alert for unrecognized input.
	return "I didn't recognize that emergency request. " +
		"You can say things like: " +
		"'I need help', 'nearest shelter', 'medical emergency', " +
		"'fire emergency', or 'earthquake'. " +
		"For immediate assistance, call emergency services at 108."
}
