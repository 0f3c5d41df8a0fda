package utils

import (
	"math"

	"github.com/mmcloughlin/geohash"
	"github.com/piresc/campusride/internal/pkg/models"
)

const earthRadiusKm = 6371.0

// TrackingGeohashPrecision gives cells of roughly 150m, enough to group samples by block
const TrackingGeohashPrecision = 7

// EncodeLocation converts a location to a geohash string
func EncodeLocation(location models.Location, precision uint) string {
	return geohash.EncodeWithPrecision(location.Latitude, location.Longitude, precision)
}

// CalculateDistance returns the great-circle distance in kilometers (haversine)
func CalculateDistance(from, to models.Location) float64 {
	lat1 := from.Latitude * math.Pi / 180.0
	lat2 := to.Latitude * math.Pi / 180.0
	dLat := lat2 - lat1
	dLon := (to.Longitude - from.Longitude) * math.Pi / 180.0

	a := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusKm * c
}

// ValidCoordinates reports whether lat/lng are within WGS84 ranges
func ValidCoordinates(lat, lng float64) bool {
	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}
