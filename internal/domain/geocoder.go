package domain

import (
	"context"
	"fmt"
	"strconv"
)

// Coordinates is a geographic position in decimal degrees.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// String renders the position as "Latitude: x, Longitude: y" using the
// shortest decimal form of each value.
func (c Coordinates) String() string {
	return fmt.Sprintf("Latitude: %s, Longitude: %s",
		strconv.FormatFloat(c.Latitude, 'f', -1, 64),
		strconv.FormatFloat(c.Longitude, 'f', -1, 64),
	)
}

// Geocoder resolves a free-text city name to coordinates.
//
// A well-formed but unsuccessful upstream answer is reported as
// *UpstreamServiceError; transport and status failures are returned as
// plain errors so callers can tell the two apart.
type Geocoder interface {
	Locate(ctx context.Context, city string) (Coordinates, error)
}
