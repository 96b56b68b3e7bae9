// Package device defines the capability boundaries the mobile client got
// from hardware: geolocation and photo capture. The CLI substitutes flag
// and filesystem backed implementations.
package device

import (
	"context"
	"errors"
	"os"

	"geotask/internal/service"
)

// ErrNoLocation indicates no coordinates are available.
var ErrNoLocation = errors.New("location unavailable")

// Locator provides the device's current coordinates.
type Locator interface {
	Current(ctx context.Context) (service.Location, error)
}

// Camera captures a photo and returns its local URI.
type Camera interface {
	Capture(ctx context.Context) (string, error)
}

// StaticLocator returns fixed coordinates, e.g. taken from command flags.
type StaticLocator struct {
	Location service.Location
	Set      bool
}

// Current implements Locator.
func (l *StaticLocator) Current(ctx context.Context) (service.Location, error) {
	if !l.Set {
		return service.Location{}, ErrNoLocation
	}
	return l.Location, nil
}

// FileCamera "captures" a photo by pointing at an existing local file.
type FileCamera struct {
	Path string
}

// Capture implements Camera. The file must exist; an empty path means no
// photo was taken, which is not an error.
func (c *FileCamera) Capture(ctx context.Context) (string, error) {
	if c.Path == "" {
		return "", nil
	}
	if _, err := os.Stat(c.Path); err != nil {
		return "", err
	}
	return c.Path, nil
}
