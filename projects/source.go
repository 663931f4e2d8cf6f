// Package projects reads published projects from the hosted backend.
//
// Two sources are provided: Postgres talks to the backend database
// directly, REST goes through the service's PostgREST gateway. Both make
// exactly one round trip per call and keep nothing between calls.
package projects

import (
	"context"
	"errors"
	"fmt"

	"sparkshelf/models"
)

// ErrLoadFailed is the single failure kind of a Source. Transport, status
// and decoding errors all wrap it.
var ErrLoadFailed = errors.New("load projects failed")

// Source is the data access client used by the home page.
type Source interface {
	// GetPublishedProjects returns the published projects, newest first.
	GetPublishedProjects(ctx context.Context) ([]models.Project, error)
	// Sample returns one published project, or nil when there is none.
	Sample(ctx context.Context) (*models.Project, error)
	// Ping checks that the backend is reachable.
	Ping(ctx context.Context) error
}

// loadFailed wraps cause so that errors.Is matches both ErrLoadFailed and
// the underlying error.
func loadFailed(op string, cause error) error {
	return fmt.Errorf("%w: %s: %w", ErrLoadFailed, op, cause)
}
