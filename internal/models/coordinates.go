package models

// Geographic represents a WGS84 position in decimal degrees, with an
// optional observation epoch (decimal year) used by time-dependent datum
// transformations. An epoch of 0 means "no epoch".
type Geographic struct {
	Latitude  float64 // Latitude of the geographical point, degrees.
	Longitude float64 // Longitude of the geographical point, degrees.
	Epoch     float64 // Observation epoch as a decimal year, or 0.
}

// Projected represents a SWEREF99 TM (EPSG:3006) grid position in metres.
type Projected struct {
	North float64 // Northing in metres.
	East  float64 // Easting in metres.
}
