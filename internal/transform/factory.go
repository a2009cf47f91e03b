package transform

import (
	"fmt"
	"log/slog"
)

// EngineType represents the type of transformation engine.
type EngineType string

const (
	// EngineTypeAuto selects the PROJ engine when the build carries it and
	// falls back to the embedded engine otherwise.
	EngineTypeAuto EngineType = "auto"
	// EngineTypePROJ is the PROJ-library-backed engine (requires CGO).
	EngineTypePROJ EngineType = "proj"
	// EngineTypeEmbedded is the pure-Go engine built from the inlined
	// EPSG:3006 parameters.
	EngineTypeEmbedded EngineType = "embedded"
)

// EngineConfig holds configuration for creating a transformation engine.
type EngineConfig struct {
	Type    EngineType   // Type of engine to create
	Offline bool         // Use the embedded PROJJSON definitions instead of registry codes (PROJ engine only)
	Logger  *slog.Logger // Logger for the engine
}

// NewEngine creates a transformation engine based on the provided
// configuration. It decouples engine instantiation from the converter so
// callers select an engine at runtime the same way the rest of the
// configuration is chosen.
//
// Supported engine types:
// - "proj": PROJ library binding (most complete; time-dependent transforms)
// - "embedded": pure Go, no external library, static transform only
// - "auto": proj when available, embedded otherwise
//
// Returns an error if the engine type is unsupported or construction fails.
func NewEngine(config EngineConfig) (Engine, error) {
	switch config.Type {
	case EngineTypePROJ:
		return newProjEngine(config)
	case EngineTypeEmbedded:
		return NewEmbeddedEngine(), nil
	case EngineTypeAuto:
		if projAvailable {
			engine, err := newProjEngine(config)
			if err == nil {
				return engine, nil
			}
			if config.Logger != nil {
				config.Logger.Warn("PROJ engine unavailable, using embedded engine", "error", err)
			}
		}
		return NewEmbeddedEngine(), nil
	default:
		return nil, fmt.Errorf("unsupported engine type: %s", config.Type)
	}
}
