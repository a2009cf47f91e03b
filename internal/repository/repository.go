package repository

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/nordgrid/sweref/internal/models"
)

// Database is the subset of pgxpool.Pool the repository needs; it is also
// satisfied by pgxmock pools in tests.
type Database interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Ping(ctx context.Context) error
	Close()
}

// Repository persists observation points and their computed grid
// coordinates.
type Repository struct {
	db  Database
	log *slog.Logger
}

// Interface describes the repository operations the backfill service needs.
type Interface interface {
	FetchPointsForProjection(ctx context.Context, limit int) ([]models.Point, error)
	UpdatePointProjection(ctx context.Context, pointID int, projected models.Projected) error
	IncrementFailureCount(ctx context.Context, pointID int, errMsg string) error
}

// NewRepository creates a new instance of Repository with the provided
// Database. It returns a pointer to the newly created Repository.
func NewRepository(db Database, log *slog.Logger) *Repository {
	return &Repository{db: db, log: log}
}
