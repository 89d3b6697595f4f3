package models

// Category classifies an emergency utterance. The set is closed; new
// categories require a phrase list and a response handler.
type Category string

const (
	CategoryHelp       Category = "help"
	CategoryShelter    Category = "shelter"
	CategoryMedical    Category = "medical"
	CategoryFire       Category = "fire"
	CategoryFlood      Category = "flood"
	CategoryEarthquake Category = "earthquake"
	CategoryUnknown    Category = "unknown"
)

// CategoryOrder is the priority order used during classification. When an
// utterance matches phrases from more than one category, the earliest entry
// here wins. The order is contractual and must stay stable across runs.
var CategoryOrder = []Category{
	CategoryHelp,
	CategoryShelter,
	CategoryMedical,
	CategoryFire,
	CategoryFlood,
	CategoryEarthquake,
}

func ParseCategory(s string) Category {
	switch Category(s) {
	case CategoryHelp, CategoryShelter, CategoryMedical, CategoryFire, CategoryFlood, CategoryEarthquake:
		return Category(s)
	default:
		return CategoryUnknown
	}
}
