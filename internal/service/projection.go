package service

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/nordgrid/sweref/internal/metrics"
	"github.com/nordgrid/sweref/internal/models"
	"github.com/nordgrid/sweref/internal/repository"
)

// Converter is the conversion operation the service needs; satisfied by
// converter.Converter.
type Converter interface {
	Convert(geo models.Geographic) (models.Projected, error)
}

// ProjectionService periodically scans the database for points whose grid
// coordinates are missing and backfills them through the shared converter.
type ProjectionService struct {
	log          *slog.Logger         // Logger for logging service activities
	repo         repository.Interface // Interface for data repository access
	converter    Converter            // Shared coordinate converter
	metrics      *metrics.Metrics     // Metrics for tracking service performance
	numWorkers   int                  // Number of concurrent workers for processing
	pollInterval time.Duration        // Interval for polling unprojected points
}

// NewProjectionService creates a new instance of ProjectionService. It
// takes a logger, a repository interface, the shared converter, metrics
// for monitoring, the number of workers to use, and a polling interval.
func NewProjectionService(
	log *slog.Logger,
	repo repository.Interface,
	conv Converter,
	appMetrics *metrics.Metrics,
	numWorkers int,
	pollInterval time.Duration,
) *ProjectionService {
	return &ProjectionService{
		log:          log,
		repo:         repo,
		converter:    conv,
		metrics:      appMetrics,
		numWorkers:   numWorkers,
		pollInterval: pollInterval,
	}
}

// Run starts the backfill service, which periodically polls for points to
// project. It listens for a cancellation signal from the context to
// gracefully stop the service.
func (ps *ProjectionService) Run(ctx context.Context) {
	ticker := time.NewTicker(ps.pollInterval)
	defer ticker.Stop()

	ps.log.InfoContext(ctx, "Projection backfill service started...")

	for {
		select {
		case <-ctx.Done():
			ps.log.InfoContext(ctx, "Projection backfill service stopped.")
			return
		case <-ticker.C:
			ps.log.InfoContext(ctx, "Polling for points to project...")
			ps.processBatch(ctx)
		}
	}
}

// processBatch fetches points without grid coordinates from the
// repository, starts a worker pool to project them, and waits for all
// workers to finish.
func (ps *ProjectionService) processBatch(ctx context.Context) {
	pointLimit := 100
	points, err := ps.repo.FetchPointsForProjection(ctx, pointLimit)
	if err != nil {
		ps.log.ErrorContext(ctx, "Failed to fetch points", "error", err)
		return
	}
	if len(points) == 0 {
		ps.log.InfoContext(ctx, "No points to process.")
		return
	}

	ps.log.InfoContext(
		ctx,
		"Found points to process. Starting worker pool.",
		"jobs",
		len(points),
		"num_workers",
		ps.numWorkers,
	)

	jobs := make(chan models.Point, len(points))
	var wgr sync.WaitGroup

	for i := 1; i <= ps.numWorkers; i++ {
		wgr.Add(1)
		go ps.worker(ctx, i, &wgr, jobs)
	}

	for _, point := range points {
		jobs <- point
	}
	close(jobs)

	wgr.Wait()
	ps.log.InfoContext(ctx, "Processing batch finished")
}

// worker projects points from the jobs channel. On success it writes the
// grid coordinates back; on failure it increments the point's failure
// count so that repeatedly failing points eventually leave the backlog.
func (ps *ProjectionService) worker(ctx context.Context, idx int, wg *sync.WaitGroup, jobs <-chan models.Point) {
	defer wg.Done()
	for point := range jobs {
		ps.metrics.ActiveWorkers.Inc()
		ps.log.DebugContext(ctx, "Processing point", "worker", idx, "point", point.ID)

		projected, err := ps.converter.Convert(models.Geographic{
			Latitude:  point.Latitude,
			Longitude: point.Longitude,
			Epoch:     point.Epoch,
		})

		if err != nil {
			ps.log.ErrorContext(ctx, "Failed to project", "worker", idx, "point", point.ID, "error", err)
			ps.metrics.PointsProcessed.WithLabelValues("failure").Inc()

			if err = ps.repo.IncrementFailureCount(ctx, point.ID, err.Error()); err != nil {
				ps.log.ErrorContext(
					ctx,
					"Could not update failure count for point",
					"worker", idx,
					"point", point.ID,
					"error", err,
				)
			}
			ps.metrics.ActiveWorkers.Dec()
			continue
		}

		ps.metrics.PointsProcessed.WithLabelValues("success").Inc()

		if err = ps.repo.UpdatePointProjection(ctx, point.ID, projected); err != nil {
			ps.log.ErrorContext(
				ctx,
				"Failed to update grid coordinates for point",
				"worker", idx,
				"point", point.ID,
				"error", err,
			)
		} else {
			ps.log.DebugContext(ctx, "Worker successfully processed the point", "worker", idx, "point", point.ID)
		}

		ps.metrics.ActiveWorkers.Dec()
	}
}
