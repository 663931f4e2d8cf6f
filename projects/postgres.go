package projects

import (
	"context"

	"github.com/jackc/pgx/v5"

	"sparkshelf/models"
)

// Querier is the part of a pgx pool the Postgres source uses.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Ping(ctx context.Context) error
}

const publishedQuery = `
        SELECT id::text, title, COALESCE(description, ''), COALESCE(difficulty, ''), cost::float8
          FROM projects
         WHERE is_published = true
      ORDER BY created_at DESC
         LIMIT $1`

// Postgres reads projects straight from the backend database.
type Postgres struct {
	db    Querier
	limit int
}

func NewPostgres(db Querier, limit int) *Postgres {
	return &Postgres{db: db, limit: limit}
}

func (s *Postgres) GetPublishedProjects(ctx context.Context) ([]models.Project, error) {
	return s.published(ctx, s.limit)
}

// Sample returns the newest published project, or nil when there is none.
func (s *Postgres) Sample(ctx context.Context) (*models.Project, error) {
	list, err := s.published(ctx, 1)
	if err != nil || len(list) == 0 {
		return nil, err
	}
	return &list[0], nil
}

func (s *Postgres) published(ctx context.Context, limit int) ([]models.Project, error) {
	rows, err := s.db.Query(ctx, publishedQuery, limit)
	if err != nil {
		return nil, loadFailed("select published projects", err)
	}
	defer rows.Close()

	list := []models.Project{}
	for rows.Next() {
		var p models.Project
		if err := rows.Scan(&p.ID, &p.Title, &p.Description, &p.Difficulty, &p.Cost); err != nil {
			return nil, loadFailed("scan project", err)
		}
		list = append(list, p)
	}
	if err := rows.Err(); err != nil {
		return nil, loadFailed("read projects", err)
	}
	return list, nil
}

func (s *Postgres) Ping(ctx context.Context) error {
	if err := s.db.Ping(ctx); err != nil {
		return loadFailed("ping", err)
	}
	return nil
}
