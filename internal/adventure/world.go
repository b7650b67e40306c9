package adventure

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"maps"
	"slices"
	"strings"
)

// DefaultLocationsFile is the bundled dungeon
const DefaultLocationsFile = "dungeon-locations.json"

// DefaultInitialLocation is where the bundled dungeon starts
const DefaultInitialLocation = "Room 1"

//go:embed data/*.json
var dataFS embed.FS

// World is a set of locations by name with a starting point
type World struct {
	locations           map[string]Location
	initialLocationName string
}

// NewWorld copies locations, so later changes to the map do not affect the world
func NewWorld(locations map[string]Location, initialLocationName string) *World {
	return &World{
		locations:           maps.Clone(locations),
		initialLocationName: initialLocationName,
	}
}

// Locations returns a copy of the locations by name
func (w *World) Locations() map[string]Location {
	return maps.Clone(w.locations)
}

// LocationByName returns the location with the given name
func (w *World) LocationByName(name string) (Location, bool) {
	l, ok := w.locations[name]
	return l, ok
}

func (w *World) InitialLocationName() string {
	return w.initialLocationName
}

// Names returns the location names in sorted order
func (w *World) Names() []string {
	return slices.Sorted(maps.Keys(w.locations))
}

// LoadData decodes a JSON array of location descriptions
func LoadData(fsys fs.FS, name string) ([]map[string]any, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	var descriptions []map[string]any
	if err := json.Unmarshal(data, &descriptions); err != nil {
		return nil, fmt.Errorf("parse %s: %w", name, err)
	}
	return descriptions, nil
}

// BuildWorld converts descriptions to locations. A later description
// with the same name replaces an earlier one.
func BuildWorld(descriptions []map[string]any, initialLocationName string) (*World, error) {
	locations := make(map[string]Location, len(descriptions))
	for _, d := range descriptions {
		l, err := LocationFromDescription(d)
		if err != nil {
			return nil, err
		}
		locations[l.Name] = l
	}
	if _, ok := locations[initialLocationName]; !ok {
		return nil, fmt.Errorf("%w: initial location %q does not exist", ErrInvalidLocation, initialLocationName)
	}
	return NewWorld(locations, initialLocationName), nil
}

// DefaultWorld loads the bundled dungeon
func DefaultWorld() (*World, error) {
	sub, err := fs.Sub(dataFS, "data")
	if err != nil {
		return nil, err
	}
	descriptions, err := LoadData(sub, DefaultLocationsFile)
	if err != nil {
		return nil, err
	}
	return BuildWorld(descriptions, DefaultInitialLocation)
}

// FormatRooms lists the rooms as "name | description" with names padded
// to the longest one, sorted by name
func FormatRooms(w *World) string {
	names := w.Names()
	width := 0
	for _, name := range names {
		width = max(width, len(name))
	}

	var b strings.Builder
	for _, name := range names {
		fmt.Fprintf(&b, "%-*s | %s\n", width, name, w.locations[name].Description)
	}
	return b.String()
}
