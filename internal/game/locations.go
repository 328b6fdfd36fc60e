package game

// Location describes one of the scrolling backdrops. The simulation only
// tracks the active index; colors are consumed by the presentation layer.
type Location struct {
	Name     string
	Sky      string
	Ground   string
	Obstacle string
	Accent   string
}

// Locations is the fixed backdrop rotation, cycled with the location action.
var Locations = []Location{
	{Name: "Desert", Sky: "#f6ecd7", Ground: "#e5c07b", Obstacle: "#6b4f2b", Accent: "#d6a95f"},
	{Name: "Night", Sky: "#05060a", Ground: "#1b1f2a", Obstacle: "#9ab3ff", Accent: "#6fa8ff"},
	{Name: "Forest", Sky: "#dff3e6", Ground: "#6aa84f", Obstacle: "#2f5b2f", Accent: "#3c8c3c"},
	{Name: "Snow", Sky: "#e8f0ff", Ground: "#dbe9f7", Obstacle: "#6f8aa3", Accent: "#9fb7d9"},
}
