package cmd

import (
	"context"
	"fmt"
	"time"

	"sparkshelf/config"
	"sparkshelf/db"
	"sparkshelf/logger"
	"sparkshelf/projects"
)

// openSource builds the data source selected by s. The returned func
// releases its resources.
func openSource(ctx context.Context, s *config.Settings) (projects.Source, func(), error) {
	switch s.Backend {
	case config.BackendPostgres:
		pool, err := db.Open(ctx, s.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		if s.AutoMigrate {
			// An unreachable database must not keep the site down; the page
			// reports load failures itself.
			if err := db.EnsureSchema(ctx, pool); err != nil {
				logger.Errorf("%v", err)
			} else {
				logger.Infof("schema ensured")
			}
		}
		return projects.NewPostgres(pool, s.ProjectsLimit), pool.Close, nil

	case config.BackendREST:
		inspectKey(s.SupabaseAnonKey)
		return projects.NewREST(s.SupabaseURL, s.SupabaseAnonKey, s.ProjectsLimit), func() {}, nil
	}
	return nil, nil, fmt.Errorf("unknown backend %q", s.Backend)
}

// inspectKey reports problems with the API key. None of them stop the
// server: the gateway has the last word on what a key may read.
func inspectKey(key string) {
	info, err := projects.InspectKey(key, time.Now())
	if err != nil {
		logger.Errorf("api key: %v", err)
		return
	}
	if info.Role == projects.ServiceRole {
		logger.Errorf("api key has the %s role; prefer the anon key for a public site", projects.ServiceRole)
	}
	logger.Infof("api key: project=%s role=%s", info.Ref, info.Role)
}
