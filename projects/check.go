package projects

import (
	"context"
	"time"

	"sparkshelf/logger"
)

// Check tests the connection to the backend and logs the outcome: a ping,
// then a one-record read of the projects table. Callers decide whether a
// failure is fatal.
func Check(ctx context.Context, src Source) error {
	start := time.Now()
	if err := src.Ping(ctx); err != nil {
		logger.Errorf("backend connection failed: %v", err)
		return err
	}
	sample, err := src.Sample(ctx)
	if err != nil {
		logger.Errorf("backend connection failed: %v", err)
		return err
	}
	took := time.Since(start).Round(time.Millisecond)
	if sample == nil {
		logger.Infof("backend connection successful (%s), no published projects yet", took)
		return nil
	}
	logger.Infof("backend connection successful (%s), sample project: id=%s title=%q", took, sample.ID, sample.Title)
	return nil
}
