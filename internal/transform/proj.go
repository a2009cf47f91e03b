//go:build cgo

package transform

import (
	"fmt"
	"math"
	"sync"

	proj "github.com/pebbe/proj/v5"
)

const projAvailable = true

// Registry codes for the fixed source/target pair.
const (
	// crsWGS84 is the ensemble WGS84 geographic CRS; the hop to SWEREF99 TM
	// from here is epoch-free.
	crsWGS84 = "EPSG:4326"
	// crsWGS84G2139 is the G2139 realization of WGS84. PROJ resolves the
	// path from here to SWEREF99 through a time-dependent Helmert, so a
	// transformation built from this code honours the observation epoch.
	// Trimmed registry databases (proj.db reduced to the Swedish systems)
	// do not carry this CRS, in which case construction fails and the
	// engine falls back to the static pair.
	crsWGS84G2139 = "EPSG:9755"
	// crsSWEREF99TM is the Swedish national grid.
	crsSWEREF99TM = "EPSG:3006"
)

// ProjEngine implements Engine on top of the PROJ library. It mirrors the
// classic proj_create_crs_to_crs / proj_normalize_for_visualization /
// proj_trans call sequence: the transformation object is built once, axis
// order is normalized to (lon, lat) in and (east, north) out, and every
// Forward call is a single 4D forward transform.
type ProjEngine struct {
	// A PJ keeps per-call scratch state (errno, internal buffers), so
	// concurrent Trans calls on the same handle are not safe. Conversions
	// are fast; a plain mutex is enough.
	mu   sync.Mutex
	ctx  *proj.Context
	pj   *proj.PJ
	mode Mode
}

// newProjEngine builds a PROJ-backed engine. With cfg.Offline set, the CRS
// pair is given to PROJ as the embedded PROJJSON documents, so no registry
// database is consulted. Otherwise the time-dependent pair is attempted
// first and the static registry pair is the fallback.
func newProjEngine(cfg EngineConfig) (Engine, error) {
	ctx := proj.NewContext()

	if cfg.Offline {
		pj, err := createNormalized(ctx, CRSWGS84, CRSSWEREF99TM)
		if err != nil {
			ctx.Close()
			return nil, fmt.Errorf("failed to create transformation from embedded definitions: %w", err)
		}
		return &ProjEngine{ctx: ctx, pj: pj, mode: ModeStatic}, nil
	}

	if pj, err := createNormalized(ctx, crsWGS84G2139, crsSWEREF99TM); err == nil {
		return &ProjEngine{ctx: ctx, pj: pj, mode: ModeTimeDependent}, nil
	} else if cfg.Logger != nil {
		cfg.Logger.Debug("Time-dependent transformation unavailable, falling back to static", "error", err)
	}

	pj, err := createNormalized(ctx, crsWGS84, crsSWEREF99TM)
	if err != nil {
		ctx.Close()
		return nil, fmt.Errorf("failed to create transformation object: %w", err)
	}
	return &ProjEngine{ctx: ctx, pj: pj, mode: ModeStatic}, nil
}

// createNormalized builds a CRS-to-CRS transformation and replaces it with
// its axis-normalized form. EPSG:4326 mandates (lat, lon) axis order; the
// normalized object always takes (lon, lat) and yields (east, north).
func createNormalized(ctx *proj.Context, sourceCrs, targetCrs string) (*proj.PJ, error) {
	pj, err := ctx.CreateCrsToCrs(sourceCrs, targetCrs)
	if err != nil {
		return nil, fmt.Errorf("create crs-to-crs: %w", err)
	}

	norm, err := pj.NormalizeForVisualization()
	pj.Close()
	if err != nil {
		return nil, fmt.Errorf("normalize transformation object: %w", err)
	}

	return norm, nil
}

// Forward transforms latitude/longitude in degrees to northing/easting in
// metres. The epoch rides in the fourth coordinate; static pipelines ignore
// it, time-dependent ones apply the plate-motion correction for it.
func (e *ProjEngine) Forward(lat, lon, epoch float64) (north, east float64, err error) {
	e.mu.Lock()
	if e.pj == nil {
		// Close won the lock against an in-flight conversion; surface an
		// error instead of dereferencing the released handle.
		e.mu.Unlock()
		return 0, 0, fmt.Errorf("forward transform: %w", ErrEngineUnavailable)
	}
	x, y, _, _, err := e.pj.Trans(proj.Fwd, lon, lat, 0, epoch)
	e.mu.Unlock()
	if err != nil {
		return 0, 0, fmt.Errorf("forward transform: %w", err)
	}

	if math.IsNaN(x) || math.IsInf(x, 0) || math.IsNaN(y) || math.IsInf(y, 0) {
		return 0, 0, ErrNotFinite
	}

	// Normalized output is (x=east, y=north).
	return y, x, nil
}

// Mode reports which transformation path construction selected.
func (e *ProjEngine) Mode() Mode { return e.mode }

// Type reports EngineTypePROJ.
func (e *ProjEngine) Type() EngineType { return EngineTypePROJ }

// Close releases the transformation object and its context.
func (e *ProjEngine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.pj != nil {
		e.pj.Close()
		e.pj = nil
	}
	if e.ctx != nil {
		e.ctx.Close()
		e.ctx = nil
	}
}
