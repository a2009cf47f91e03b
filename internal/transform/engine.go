package transform

import "errors"

// Mode identifies which transformation path an engine selected at
// construction time.
type Mode int

const (
	// ModeStatic is an epoch-free transformation between the two frames.
	ModeStatic Mode = iota
	// ModeTimeDependent is a transformation that applies the observation
	// epoch to account for plate motion between the frames.
	ModeTimeDependent
)

func (m Mode) String() string {
	switch m {
	case ModeStatic:
		return "static"
	case ModeTimeDependent:
		return "time-dependent"
	default:
		return "unknown"
	}
}

// Common errors for transformation engines.
var (
	// ErrNotFinite is returned when the forward transform produced an
	// infinite or NaN coordinate, typically for input far outside the
	// projection's valid domain.
	ErrNotFinite = errors.New("transform produced non-finite coordinates")
	// ErrEngineUnavailable is returned by the factory when the requested
	// engine cannot be constructed in this build or environment.
	ErrEngineUnavailable = errors.New("transformation engine is unavailable")
)

// Engine converts WGS84 geographic coordinates to SWEREF99 TM grid
// coordinates. The source and target reference systems are fixed at
// construction; an Engine is safe for concurrent use by multiple
// goroutines.
type Engine interface {
	// Forward transforms latitude/longitude in degrees to northing/easting
	// in metres. The epoch (decimal year, 0 for none) is applied only by
	// time-dependent engines; static engines ignore it. Input is passed
	// through unvalidated; out-of-domain points surface as ErrNotFinite.
	Forward(lat, lon, epoch float64) (north, east float64, err error)

	// Mode reports which transformation path was selected at construction.
	Mode() Mode

	// Type identifies the concrete engine. With EngineTypeAuto requested,
	// this reports what the factory actually selected.
	Type() EngineType

	// Close releases any resources held by the engine. The engine must not
	// be used after Close.
	Close()
}
