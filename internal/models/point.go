package models

// Point represents a stored observation that still needs its grid
// coordinates computed.
type Point struct {
	ID        int     // ID is the unique identifier for the point.
	Latitude  float64 // Latitude in degrees (WGS84).
	Longitude float64 // Longitude in degrees (WGS84).
	Epoch     float64 // Observation epoch as a decimal year, or 0 if unknown.
}
