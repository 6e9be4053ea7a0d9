// FILE: pkg/geo/geo.go
package geo

import (
	"math"
	"time"
)

// EarthRadiusKm is the mean Earth radius used by the haversine formula.
const EarthRadiusKm = 6371.0

// Point is a coordinate pair in decimal degrees.
type Point struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Spanish 16-point compass rose, clockwise from north.
var cardinalDirections = []string{
	"Norte", "Nornoreste", "Noreste", "Estenoreste",
	"Este", "Estesureste", "Sureste", "Sursureste",
	"Sur", "Sursuroeste", "Suroeste", "Oestesuroeste",
	"Oeste", "Oestenoroeste", "Noroeste", "Nornoroeste",
}

// Distance returns the haversine distance between two points in kilometers.
func Distance(from, to Point) float64 {
	dLat := radians(to.Latitude - from.Latitude)
	dLon := radians(to.Longitude - from.Longitude)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(radians(from.Latitude))*math.Cos(radians(to.Latitude))*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusKm * c
}

// Bearing returns the initial compass bearing from one point to another,
// in whole degrees from north (0-360). Identical points yield 0.
func Bearing(from, to Point) int {
	if from == to {
		return 0
	}

	dLon := radians(to.Longitude - from.Longitude)

	y := math.Sin(dLon) * math.Cos(radians(to.Latitude))
	x := math.Cos(radians(from.Latitude))*math.Sin(radians(to.Latitude)) -
		math.Sin(radians(from.Latitude))*math.Cos(radians(to.Latitude))*math.Cos(dLon)

	// atan2 yields -pi..+pi; normalize to a 0-360 compass bearing.
	bearing := math.Mod(degrees(math.Atan2(y, x))+360, 360)

	return int(math.Round(bearing)) % 360
}

// Cardinal converts a bearing in degrees into a named direction (in Spanish).
func Cardinal(bearing int) string {
	index := int(math.Round(float64(bearing)/22.5)) % 16
	return cardinalDirections[index]
}

// WithinRadius reports whether the two points are at most thresholdKm apart.
func WithinRadius(from, to Point, thresholdKm float64) bool {
	return Distance(from, to) <= thresholdKm
}

// IsFresh reports whether a position recorded at recordedAt is still usable
// for a proximity decision at the given instant.
func IsFresh(recordedAt, now time.Time, maxAge time.Duration) bool {
	return now.Sub(recordedAt) <= maxAge
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}

func degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}
