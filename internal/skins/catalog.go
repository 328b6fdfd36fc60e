// Package skins provides the static catalog of unlockable player appearances.
package skins

// DefaultID is the skin every account owns from registration.
const DefaultID = "default"

// Skin is a purely visual unlockable appearance for the player character.
type Skin struct {
	ID    string
	Name  string
	Color string // Hex color used by the renderer
	Price int    // Coin price; 0 means owned by default
}

// catalog is the static skin list. Order matters: the first entry is the
// fallback for unknown IDs.
var catalog = []Skin{
	{ID: DefaultID, Name: "Classic", Color: "#333", Price: 0},
	{ID: "red", Name: "Crimson", Color: "#c33", Price: 50},
	{ID: "gold", Name: "Gold", Color: "#d6a95f", Price: 120},
	{ID: "neon", Name: "Neon", Color: "#6fa8ff", Price: 90},
}

// All returns the full catalog in display order.
// The returned slice is a copy; callers may not mutate the catalog.
func All() []Skin {
	out := make([]Skin, len(catalog))
	copy(out, catalog)
	return out
}

// Resolve returns the skin with the given ID, or the default entry if the ID
// is unknown.
func Resolve(id string) Skin {
	for _, s := range catalog {
		if s.ID == id {
			return s
		}
	}
	return catalog[0]
}

// Exists reports whether a skin with the given ID is in the catalog.
func Exists(id string) bool {
	for _, s := range catalog {
		if s.ID == id {
			return true
		}
	}
	return false
}
