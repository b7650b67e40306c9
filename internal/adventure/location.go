// Package adventure holds the text adventure world exercised by the
// AdventureWorld suite: named locations loaded from JSON descriptions.
package adventure

import (
	"errors"
	"fmt"
)

// ErrInvalidLocation is returned for descriptions without a usable name
var ErrInvalidLocation = errors.New("invalid location")

// Location is a place in the world
type Location struct {
	Name        string
	Description string
}

func (l Location) String() string {
	return fmt.Sprintf("Location{name=%q, description=%q}", l.Name, l.Description)
}

// LocationFromDescription builds a location from a decoded JSON object.
// "name" must be a non-empty string, "description" defaults to empty.
func LocationFromDescription(description map[string]any) (Location, error) {
	name, ok := description["name"].(string)
	if !ok || name == "" {
		return Location{}, fmt.Errorf("%w: missing name in %v", ErrInvalidLocation, description)
	}

	var desc string
	if raw, present := description["description"]; present && raw != nil {
		if desc, ok = raw.(string); !ok {
			return Location{}, fmt.Errorf("%w: description of %s is %T, not a string", ErrInvalidLocation, name, raw)
		}
	}
	return Location{Name: name, Description: desc}, nil
}
