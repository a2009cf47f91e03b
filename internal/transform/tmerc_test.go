package transform_test

import (
	"math"
	"testing"

	"github.com/nordgrid/sweref/internal/transform"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Reference points computed with the published EPSG:3006 transform
// (WGS84 lat/lon in degrees -> SWEREF99 TM northing/easting in metres).
var swerefRefPoints = []struct {
	name        string
	lat, lon    float64
	north, east float64
}{
	{name: "Stockholm", lat: 59.3293, lon: 18.0686, north: 6580743.009, east: 674571.866},
	{name: "Gothenburg", lat: 57.7089, lon: 11.9746, north: 6400326.037, east: 319758.020},
	{name: "Malmo", lat: 55.6050, lon: 13.0038, north: 6163926.554, east: 374243.759},
	{name: "Kiruna", lat: 67.8558, lon: 20.2253, north: 7536069.971, east: 719583.123},
	{name: "central point", lat: 61.8244, lon: 16.6000, north: 6855655.806, east: 584279.522},
}

func TestEmbeddedEngine_Forward_ReferencePoints(t *testing.T) {
	t.Parallel()
	engine := transform.NewEmbeddedEngine()

	for _, ref := range swerefRefPoints {
		t.Run(ref.name, func(t *testing.T) {
			north, east, err := engine.Forward(ref.lat, ref.lon, 0)

			require.NoError(t, err)
			// Tight tolerance on purpose: swapping the (lon, lat) input
			// order anywhere in the chain moves the result by hundreds of
			// kilometres and must not slip through.
			assert.InDelta(t, ref.north, north, 0.01)
			assert.InDelta(t, ref.east, east, 0.01)
		})
	}
}

func TestEmbeddedEngine_Forward_SwedishEnvelope(t *testing.T) {
	t.Parallel()
	engine := transform.NewEmbeddedEngine()

	// Sweden's extreme points must land inside the rough SWEREF99 TM
	// validity envelope. A plain lat/lon bounding box does not work here:
	// its low-latitude corners lie in Denmark and Finland, far enough from
	// the 15 degree central meridian that their eastings leave the envelope.
	points := [][2]float64{
		{55.3372, 13.3585}, // Smygehuk, southernmost
		{58.9371, 11.1706}, // Stromstad, near the western extreme
		{65.8356, 24.1367}, // Haparanda, easternmost
		{69.0599, 20.5488}, // Treriksroset, northernmost
		{62.0, 15.0},       // central meridian, mid-country
	}

	for _, pt := range points {
		north, east, err := engine.Forward(pt[0], pt[1], 0)

		require.NoError(t, err)
		assert.GreaterOrEqual(t, north, 6.0e6, "northing out of envelope for (%v, %v)", pt[0], pt[1])
		assert.LessOrEqual(t, north, 7.7e6, "northing out of envelope for (%v, %v)", pt[0], pt[1])
		assert.GreaterOrEqual(t, east, 250000.0, "easting out of envelope for (%v, %v)", pt[0], pt[1])
		assert.LessOrEqual(t, east, 920000.0, "easting out of envelope for (%v, %v)", pt[0], pt[1])
	}
}

func TestEmbeddedEngine_Forward_CentralMeridian(t *testing.T) {
	t.Parallel()
	engine := transform.NewEmbeddedEngine()

	// On the central meridian the easting is exactly the false easting.
	_, east, err := engine.Forward(60.0, 15.0, 0)

	require.NoError(t, err)
	assert.InDelta(t, 500000.0, east, 1e-6)
}

func TestEmbeddedEngine_RoundTrip(t *testing.T) {
	t.Parallel()
	engine := transform.NewEmbeddedEngine()

	for _, ref := range swerefRefPoints {
		t.Run(ref.name, func(t *testing.T) {
			north, east, err := engine.Forward(ref.lat, ref.lon, 0)
			require.NoError(t, err)

			lat, lon, err := engine.Inverse(north, east)
			require.NoError(t, err)

			// Series self-consistency is far below a millimetre.
			assert.InDelta(t, ref.lat, lat, 1e-8)
			assert.InDelta(t, ref.lon, lon, 1e-8)
		})
	}
}

func TestEmbeddedEngine_Forward_EpochIgnored(t *testing.T) {
	t.Parallel()
	engine := transform.NewEmbeddedEngine()

	n0, e0, err := engine.Forward(59.3293, 18.0686, 0)
	require.NoError(t, err)
	n1, e1, err := engine.Forward(59.3293, 18.0686, 2015.75)
	require.NoError(t, err)

	assert.InDelta(t, n0, n1, 0)
	assert.InDelta(t, e0, e1, 0)
	assert.Equal(t, transform.ModeStatic, engine.Mode())
}

func TestEmbeddedEngine_Forward_OutOfDomain(t *testing.T) {
	t.Parallel()
	engine := transform.NewEmbeddedEngine()

	// Inputs are deliberately not validated; a nonsense latitude must not
	// panic and must come back as either an error or a finite value.
	north, east, err := engine.Forward(999, 18.0686, 0)
	if err == nil {
		assert.False(t, math.IsNaN(north) || math.IsInf(north, 0))
		assert.False(t, math.IsNaN(east) || math.IsInf(east, 0))
	} else {
		assert.ErrorIs(t, err, transform.ErrNotFinite)
	}
}

func TestEmbeddedEngine_CloseIsNoop(t *testing.T) {
	t.Parallel()
	engine := transform.NewEmbeddedEngine()
	engine.Close()

	// Still usable: the embedded engine holds no external resources.
	north, _, err := engine.Forward(59.3293, 18.0686, 0)
	require.NoError(t, err)
	assert.InDelta(t, 6580743.009, north, 0.01)
}
