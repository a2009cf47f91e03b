package repository

import (
	"context"
	"fmt"

	"github.com/nordgrid/sweref/internal/models"
)

// FetchPointsForProjection retrieves points whose grid coordinates are
// still missing. It returns points with a NULL northing, fewer than 5
// projection attempts, and both geographic coordinates present. The
// results are ordered by creation date and limited to the specified count.
//
// Parameters:
// - ctx: The context for the operation, allowing for cancellation and timeout.
// - limit: The maximum number of points to retrieve.
//
// Returns:
// - A slice of models.Point containing the points that match the criteria.
// - An error if the query fails or if there is an issue scanning the results.
func (r *Repository) FetchPointsForProjection(ctx context.Context, limit int) ([]models.Point, error) {
	var points []models.Point
	query := `
		SELECT point_id, latitude, longitude, COALESCE(epoch, 0)
		FROM public.points
		WHERE
			northing IS NULL
			AND projection_attempts < 5
			AND latitude IS NOT NULL
			AND longitude IS NOT NULL
		ORDER BY created_at ASC
		LIMIT $1;
	`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query points without grid coordinates: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var point models.Point
		if errScan := rows.Scan(&point.ID, &point.Latitude, &point.Longitude, &point.Epoch); errScan != nil {
			return nil, fmt.Errorf("failed to scan point without grid coordinates: %w", errScan)
		}
		r.log.DebugContext(ctx, "A new point without grid coordinates has been received.",
			"ID", point.ID, "lat", point.Latitude, "lon", point.Longitude)
		points = append(points, point)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read row: %w", err)
	}

	return points, nil
}

// UpdatePointProjection stores the computed northing and easting for the
// point identified by pointID and clears any previous projection error. It
// returns an error if the update fails.
func (r *Repository) UpdatePointProjection(ctx context.Context, pointID int, projected models.Projected) error {
	query := `
		UPDATE points
		SET
			northing = $1,
			easting = $2,
			projection_error = NULL
		WHERE
			point_id = $3;
	`

	_, err := r.db.Exec(ctx, query, projected.North, projected.East, pointID)
	if err != nil {
		return fmt.Errorf("failed to update point grid coordinates: %w", err)
	}

	return nil
}

// IncrementFailureCount increments the projection attempt count for a
// specific point identified by pointID and updates the associated error
// message. If the update operation fails, it returns an error with
// additional context.
func (r *Repository) IncrementFailureCount(ctx context.Context, pointID int, errMsg string) error {
	query := `
		UPDATE points
		SET
			projection_attempts = projection_attempts + 1,
			projection_error = $1
		WHERE point_id = $2;
	`

	_, err := r.db.Exec(ctx, query, errMsg, pointID)
	if err != nil {
		return fmt.Errorf("failed to update projection error and number of attempts: %w", err)
	}

	return nil
}
