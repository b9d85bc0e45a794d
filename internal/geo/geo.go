package geo

import (
	"math"

	"github.com/twpayne/go-geom"

	"orgconsole/internal/models"
)

const earthRadiusMeters = 6371000.0

// Circle is a geofence: a WGS84 center and a radius in meters. Coords are
// stored in go-geom's lng/lat order.
type Circle struct {
	Center       geom.Coord
	RadiusMeters float64
}

// NewCircle builds a geofence circle from latitude/longitude degrees.
func NewCircle(lat, lng, radiusMeters float64) Circle {
	return Circle{Center: geom.Coord{lng, lat}, RadiusMeters: radiusMeters}
}

// Contains reports whether the point falls inside the geofence, boundary
// included.
func (c Circle) Contains(lat, lng float64) bool {
	return HaversineMeters(c.Center, geom.Coord{lng, lat}) <= c.RadiusMeters
}

// HaversineMeters is the great-circle distance between two lng/lat coords.
func HaversineMeters(a, b geom.Coord) float64 {
	lat1 := a[1] * math.Pi / 180
	lat2 := b[1] * math.Pi / 180
	dLat := (b[1] - a[1]) * math.Pi / 180
	dLng := (b[0] - a[0]) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	return 2 * earthRadiusMeters * math.Asin(math.Sqrt(h))
}

// ValidLatLng checks WGS84 decimal-degree bounds.
func ValidLatLng(lat, lng float64) bool {
	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}

// CoveringLocations returns the geofence locations whose circle contains
// the gateway's reported GPS position. Gateways without a position match
// nothing.
func CoveringLocations(gw models.Gateway, locations []models.Location) []models.Location {
	if gw.Latitude == nil || gw.Longitude == nil {
		return nil
	}
	var out []models.Location
	for _, loc := range locations {
		circle := NewCircle(loc.Latitude, loc.Longitude, loc.RadiusMeters)
		if circle.Contains(*gw.Latitude, *gw.Longitude) {
			out = append(out, loc)
		}
	}
	return out
}
