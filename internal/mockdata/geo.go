package mockdata

import (
	"math"
	"math/rand"
)

// Nigeria's approximate bounding box. Generated coordinates never leave it.
const (
	MinLatitude  = 4.0
	MaxLatitude  = 14.0
	MinLongitude = 2.5
	MaxLongitude = 15.0

	// Maximum jitter applied around a state's reference point, in degrees
	coordJitter = 0.25

	earthRadiusMeters = 6371000.0
)

// StateRegion anchors generated polling units to a state reference point
type StateRegion struct {
	Name string
	Ref  Coordinates
	LGAs []string
}

// stateRegions is the fixed cross product driving dataset size:
// states x LGAs x units-per-LGA.
var stateRegions = []StateRegion{
	{
		Name: "Lagos",
		Ref:  Coordinates{Lat: 6.5244, Lng: 3.3792},
		LGAs: []string{"Ikeja", "Surulere", "Eti-Osa", "Alimosho"},
	},
	{
		Name: "Kano",
		Ref:  Coordinates{Lat: 12.0022, Lng: 8.5920},
		LGAs: []string{"Nassarawa", "Fagge", "Dala"},
	},
	{
		Name: "Rivers",
		Ref:  Coordinates{Lat: 4.8156, Lng: 7.0498},
		LGAs: []string{"Port Harcourt", "Obio-Akpor", "Eleme"},
	},
	{
		Name: "FCT",
		Ref:  Coordinates{Lat: 9.0765, Lng: 7.3986},
		LGAs: []string{"Abuja Municipal", "Bwari", "Gwagwalada"},
	},
	{
		Name: "Enugu",
		Ref:  Coordinates{Lat: 6.4584, Lng: 7.5464},
		LGAs: []string{"Enugu North", "Enugu South", "Nsukka"},
	},
	{
		Name: "Kaduna",
		Ref:  Coordinates{Lat: 10.5105, Lng: 7.4165},
		LGAs: []string{"Kaduna North", "Kaduna South", "Zaria"},
	},
}

// jitterAround returns a point offset from ref by at most coordJitter
// degrees on each axis, clamped to the national bounding box.
func jitterAround(r *rand.Rand, ref Coordinates) Coordinates {
	lat := ref.Lat + (r.Float64()*2-1)*coordJitter
	lng := ref.Lng + (r.Float64()*2-1)*coordJitter

	return Coordinates{
		Lat: clamp(lat, MinLatitude, MaxLatitude),
		Lng: clamp(lng, MinLongitude, MaxLongitude),
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// DistanceMeters returns the haversine distance between two points
func DistanceMeters(a, b Coordinates) float64 {
	latA := a.Lat * math.Pi / 180
	latB := b.Lat * math.Pi / 180
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLng := (b.Lng - a.Lng) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(latA)*math.Cos(latB)*math.Sin(dLng/2)*math.Sin(dLng/2)

	return 2 * earthRadiusMeters * math.Asin(math.Sqrt(h))
}

// WithinRadius reports whether point lies inside the circular geofence
// centered on ref.
func WithinRadius(point, ref Coordinates, radiusMeters float64) bool {
	return DistanceMeters(point, ref) <= radiusMeters
}

// InsideBounds reports whether a point lies inside the national bounding box
func InsideBounds(c Coordinates) bool {
	return c.Lat >= MinLatitude && c.Lat <= MaxLatitude &&
		c.Lng >= MinLongitude && c.Lng <= MaxLongitude
}
