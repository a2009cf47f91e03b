package converter_test

import (
	"log/slog"
	"testing"

	"github.com/nordgrid/sweref/internal/converter"
	"github.com/nordgrid/sweref/internal/metrics"
	"github.com/nordgrid/sweref/internal/models"
	"github.com/nordgrid/sweref/internal/transform"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConverter(t *testing.T, engineType transform.EngineType) *converter.Converter {
	t.Helper()
	reg := prometheus.NewRegistry()
	return converter.New(
		slog.Default(),
		transform.EngineConfig{Type: engineType, Logger: slog.Default()},
		metrics.NewMetrics(reg),
	)
}

func TestConverter_ConvertWithoutExplicitInit(t *testing.T) {
	t.Parallel()
	conv := newTestConverter(t, transform.EngineTypeEmbedded)

	// First conversion initializes the engine lazily.
	assert.Equal(t, converter.ModeUninitialized, conv.Mode())

	got, err := conv.Convert(models.Geographic{Latitude: 59.3293, Longitude: 18.0686})

	require.NoError(t, err)
	assert.InDelta(t, 6580743.009, got.North, 0.01)
	assert.InDelta(t, 674571.866, got.East, 0.01)
	assert.Equal(t, converter.ModeStatic, conv.Mode())
}

func TestConverter_InitIsIdempotent(t *testing.T) {
	t.Parallel()
	conv := newTestConverter(t, transform.EngineTypeEmbedded)

	require.NoError(t, conv.Init())
	require.NoError(t, conv.Init())

	withInit, err := conv.Convert(models.Geographic{Latitude: 59.3293, Longitude: 18.0686})
	require.NoError(t, err)

	// A converter that was never explicitly initialized must agree.
	lazy := newTestConverter(t, transform.EngineTypeEmbedded)
	withoutInit, err := lazy.Convert(models.Geographic{Latitude: 59.3293, Longitude: 18.0686})
	require.NoError(t, err)

	assert.InDelta(t, withInit.North, withoutInit.North, 0)
	assert.InDelta(t, withInit.East, withoutInit.East, 0)
}

func TestConverter_CleanupThenConvert(t *testing.T) {
	t.Parallel()
	conv := newTestConverter(t, transform.EngineTypeEmbedded)

	before, err := conv.Convert(models.Geographic{Latitude: 67.8558, Longitude: 20.2253})
	require.NoError(t, err)

	conv.Cleanup()
	assert.Equal(t, converter.ModeUninitialized, conv.Mode())

	// Re-initialization is transparent and reproduces the prior result.
	after, err := conv.Convert(models.Geographic{Latitude: 67.8558, Longitude: 20.2253})
	require.NoError(t, err)
	assert.InDelta(t, before.North, after.North, 0)
	assert.InDelta(t, before.East, after.East, 0)
	assert.Equal(t, converter.ModeStatic, conv.Mode())

	// Cleanup on an already clean converter is a no-op.
	conv.Cleanup()
	conv.Cleanup()
}

func TestConverter_InitFailureIsRetried(t *testing.T) {
	t.Parallel()
	conv := newTestConverter(t, transform.EngineType("bogus"))

	require.Error(t, conv.Init())
	assert.Equal(t, converter.ModeUninitialized, conv.Mode())

	// Every conversion retries initialization rather than caching failure.
	_, err := conv.Convert(models.Geographic{Latitude: 59.3293, Longitude: 18.0686})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "initialize transformation engine")

	_, err = conv.Convert(models.Geographic{Latitude: 59.3293, Longitude: 18.0686})
	require.Error(t, err)
}

func TestConverter_OutOfDomainInput(t *testing.T) {
	t.Parallel()
	conv := newTestConverter(t, transform.EngineTypeEmbedded)

	// Validation is deliberately not performed; the engine decides.
	got, err := conv.Convert(models.Geographic{Latitude: 999, Longitude: 18.0686})
	if err != nil {
		assert.ErrorIs(t, err, transform.ErrNotFinite)
	} else {
		assert.NotZero(t, got.North)
	}
}

func TestConverter_DurationLabeledByConcreteEngine(t *testing.T) {
	t.Parallel()
	reg := prometheus.NewRegistry()
	conv := converter.New(
		slog.Default(),
		transform.EngineConfig{Type: transform.EngineTypeAuto, Logger: slog.Default()},
		metrics.NewMetrics(reg),
	)

	_, err := conv.Convert(models.Geographic{Latitude: 59.3293, Longitude: 18.0686})
	require.NoError(t, err)

	// The "auto" request resolves to a concrete engine; the duration
	// histogram must carry the resolved name, not the request.
	families, err := reg.Gather()
	require.NoError(t, err)

	var labels []string
	for _, fam := range families {
		if fam.GetName() != "sweref_conversion_duration_seconds" {
			continue
		}
		for _, metric := range fam.GetMetric() {
			for _, pair := range metric.GetLabel() {
				if pair.GetName() == "engine" {
					labels = append(labels, pair.GetValue())
				}
			}
		}
	}
	require.Len(t, labels, 1)
	assert.Contains(t, []string{"proj", "embedded"}, labels[0])
}

func TestConverter_ConcurrentConvert(t *testing.T) {
	t.Parallel()
	conv := newTestConverter(t, transform.EngineTypeEmbedded)

	done := make(chan struct{})
	for range 8 {
		go func() {
			defer func() { done <- struct{}{} }()
			for range 100 {
				got, err := conv.Convert(models.Geographic{Latitude: 59.3293, Longitude: 18.0686})
				if err != nil {
					t.Error(err)
					return
				}
				if got.North < 6.0e6 || got.North > 7.7e6 {
					t.Errorf("northing out of envelope: %f", got.North)
					return
				}
			}
		}()
	}
	for range 8 {
		<-done
	}
}
