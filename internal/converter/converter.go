// Package converter owns the process-wide transformation handle and exposes
// the conversion operations around it. The handle is built lazily on first
// use, shared by every subsequent conversion, and guarded as a read-mostly
// resource: construction happens at most once under the write lock, while
// conversions take the read lock against the immutable handle.
package converter

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/nordgrid/sweref/internal/metrics"
	"github.com/nordgrid/sweref/internal/models"
	"github.com/nordgrid/sweref/internal/transform"
)

// Mode values reported by Mode.
const (
	ModeUninitialized = -1
	ModeStatic        = 0
	ModeTimeDependent = 1
)

// Converter converts WGS84 coordinates to SWEREF99 TM using a lazily
// initialized transformation engine. The zero value is not usable; create
// instances with New.
type Converter struct {
	log       *slog.Logger
	metrics   *metrics.Metrics
	engineCfg transform.EngineConfig

	mu     sync.RWMutex
	engine transform.Engine
}

// New creates a Converter that will build its engine from engineCfg on the
// first conversion (or an explicit Init call).
func New(log *slog.Logger, engineCfg transform.EngineConfig, appMetrics *metrics.Metrics) *Converter {
	if engineCfg.Logger == nil {
		engineCfg.Logger = log
	}
	return &Converter{
		log:       log,
		metrics:   appMetrics,
		engineCfg: engineCfg,
	}
}

// Init constructs the transformation engine if none exists yet. It is
// idempotent: a second call while initialized is a no-op. On failure no
// engine is retained and the next call (Init or Convert) retries
// construction from scratch.
func (c *Converter) Init() error {
	_, err := c.ensureEngine()
	return err
}

// Convert transforms a WGS84 coordinate to SWEREF99 TM, initializing the
// shared engine first if needed. Input is passed through to the engine
// unvalidated; a point outside the projection's domain surfaces as
// transform.ErrNotFinite rather than a crash.
func (c *Converter) Convert(geo models.Geographic) (models.Projected, error) {
	engine, err := c.ensureEngine()
	if err != nil {
		c.metrics.ConversionsTotal.WithLabelValues("failure").Inc()
		return models.Projected{}, fmt.Errorf("initialize transformation engine: %w", err)
	}

	startTime := time.Now()
	north, east, err := engine.Forward(geo.Latitude, geo.Longitude, geo.Epoch)
	c.metrics.ConvertSeconds.WithLabelValues(string(engine.Type())).Observe(time.Since(startTime).Seconds())

	if err != nil {
		c.metrics.ConversionsTotal.WithLabelValues("failure").Inc()
		return models.Projected{}, fmt.Errorf("convert (%.4f, %.4f): %w", geo.Latitude, geo.Longitude, err)
	}

	c.metrics.ConversionsTotal.WithLabelValues("success").Inc()
	return models.Projected{North: north, East: east}, nil
}

// Mode reports the active transformation path: ModeUninitialized when no
// engine exists, otherwise ModeStatic or ModeTimeDependent as selected when
// the engine was constructed.
func (c *Converter) Mode() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.engine == nil {
		return ModeUninitialized
	}
	if c.engine.Mode() == transform.ModeTimeDependent {
		return ModeTimeDependent
	}
	return ModeStatic
}

// Cleanup releases the cached engine and its resources. Optional: a later
// conversion re-initializes transparently and produces the same results.
func (c *Converter) Cleanup() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.engine != nil {
		c.engine.Close()
		c.engine = nil
		c.metrics.TransformMode.Set(ModeUninitialized)
	}
}

// ensureEngine returns the shared engine, constructing it under the write
// lock if no previous call succeeded.
func (c *Converter) ensureEngine() (transform.Engine, error) {
	c.mu.RLock()
	engine := c.engine
	c.mu.RUnlock()
	if engine != nil {
		return engine, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.engine != nil {
		return c.engine, nil
	}

	engine, err := transform.NewEngine(c.engineCfg)
	if err != nil {
		c.metrics.InitErrors.Inc()
		c.log.Error("Failed to initialize transformation engine", "type", c.engineCfg.Type, "error", err)
		return nil, err
	}

	c.engine = engine
	if engine.Mode() == transform.ModeTimeDependent {
		c.metrics.TransformMode.Set(ModeTimeDependent)
	} else {
		c.metrics.TransformMode.Set(ModeStatic)
	}
	c.log.Info("Transformation engine initialized", "type", c.engineCfg.Type, "mode", engine.Mode().String())

	return engine, nil
}
