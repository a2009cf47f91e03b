// Package sweref converts WGS84 latitude/longitude to SWEREF99 TM
// (EPSG:3006) northing/easting through a process-wide, lazily initialized
// converter.
//
// This surface keeps the historical in-process contract: conversions report
// failure as the zero pair (0, 0), which is indistinguishable from a result
// that legitimately computed to exactly zero. Callers that need the
// distinction should use ConvertStrict.
package sweref

import (
	"log/slog"

	"github.com/nordgrid/sweref/internal/converter"
	"github.com/nordgrid/sweref/internal/metrics"
	"github.com/nordgrid/sweref/internal/models"
	"github.com/nordgrid/sweref/internal/transform"
	"github.com/prometheus/client_golang/prometheus"
)

// DefaultConverter is the process-wide converter behind the package-level
// functions. It picks the best available engine (PROJ when the build
// carries it, the embedded transverse Mercator otherwise).
var DefaultConverter = converter.New(
	slog.New(slog.DiscardHandler),
	transform.EngineConfig{Type: transform.EngineTypeAuto},
	metrics.NewMetrics(prometheus.NewRegistry()),
)

// Init eagerly initializes the shared transformation handle and reports
// success. Calling it is optional (the first conversion initializes
// lazily) and idempotent.
func Init() bool {
	return DefaultConverter.Init() == nil
}

// Convert transforms a WGS84 latitude/longitude in degrees to SWEREF99 TM
// northing/easting in metres. On failure it returns (0, 0).
func Convert(lat, lon float64) (north, east float64) {
	return ConvertAt(lat, lon, 0)
}

// ConvertAt is Convert with an observation epoch (decimal year) applied
// when the active transformation path is time-dependent.
func ConvertAt(lat, lon, epoch float64) (north, east float64) {
	projected, err := ConvertStrict(lat, lon, epoch)
	if err != nil {
		return 0, 0
	}
	return projected.North, projected.East
}

// ConvertStrict is the explicit-error variant of ConvertAt, free of the
// zero-sentinel ambiguity.
func ConvertStrict(lat, lon, epoch float64) (models.Projected, error) {
	return DefaultConverter.Convert(models.Geographic{Latitude: lat, Longitude: lon, Epoch: epoch})
}

// Mode reports the active transformation path: -1 uninitialized, 0 static,
// 1 time-dependent.
func Mode() int {
	return DefaultConverter.Mode()
}

// Cleanup releases the shared handle. A later conversion re-initializes
// transparently; calling Cleanup before process exit is optional.
func Cleanup() {
	DefaultConverter.Cleanup()
}
