package suites

import (
	"strings"

	"xunit/internal/adventure"
	"xunit/internal/assert"
	"xunit/internal/registry"
)

func registerAdventureWorld(reg *registry.Registry) error {
	return reg.Suite("AdventureWorld").
		Test("locationFromDescription", func() {
			l, err := adventure.LocationFromDescription(map[string]any{
				"name":        "Room 1",
				"description": "An empty room",
			})
			assert.NoError(err)
			assert.Equals(adventure.Location{Name: "Room 1", Description: "An empty room"}, l)
		}).
		Test("descriptionDefaultsToEmpty", func() {
			l, err := adventure.LocationFromDescription(map[string]any{"name": "Exit"})
			assert.NoError(err)
			assert.Equals("", l.Description)
		}).
		Test("locationWithoutName", func() {
			_, err := adventure.LocationFromDescription(map[string]any{})
			assert.NotNil(err)
		}).
		Test("loadsDefaultWorld", func() {
			w, err := adventure.DefaultWorld()
			assert.NoError(err)
			assert.Equals(adventure.DefaultInitialLocation, w.InitialLocationName())
			_, ok := w.LocationByName(w.InitialLocationName())
			assert.True(ok, "initial location %q exists", w.InitialLocationName())
		}).
		Test("worldCopiesLocations", func() {
			locations := map[string]adventure.Location{"Hall": {Name: "Hall"}}
			w := adventure.NewWorld(locations, "Hall")
			delete(locations, "Hall")
			_, ok := w.LocationByName("Hall")
			assert.True(ok)
		}).
		Test("formatRoomsAlignsNames", func() {
			w, err := adventure.DefaultWorld()
			assert.NoError(err)
			lines := strings.Split(strings.TrimSuffix(adventure.FormatRooms(w), "\n"), "\n")
			assert.Equals(len(w.Names()), len(lines))
			column := strings.Index(lines[0], " | ")
			for _, line := range lines {
				assert.Equals(column, strings.Index(line, " | "), line)
			}
		}).
		Err()
}
