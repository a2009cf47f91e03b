//go:build !cgo

package transform

import "fmt"

const projAvailable = false

// newProjEngine is unavailable without CGO; the PROJ engine links against
// libproj. Build with CGO_ENABLED=1 and proj installed, or use the embedded
// engine.
func newProjEngine(_ EngineConfig) (Engine, error) {
	return nil, fmt.Errorf("PROJ engine requires CGO and libproj: %w", ErrEngineUnavailable)
}
