// Package home drives the project list page: one fetch per mount or
// retry, and a pure mapping from the resulting state to a view.
package home

import (
	"context"
	"slices"
	"sync"

	"sparkshelf/logger"
	"sparkshelf/projects"
)

// Controller owns the page state. A newer Load or Retry cancels the one in
// flight, and results of superseded requests are dropped, so the last
// request always wins.
type Controller struct {
	source projects.Source

	mu     sync.Mutex
	state  State
	gen    uint64
	cancel context.CancelFunc
}

// NewController returns a controller in the loading state.
func NewController(src projects.Source) *Controller {
	return &Controller{
		source: src,
		state:  State{Loading: true},
	}
}

// Load fetches the published projects and returns the state it settled on.
func (c *Controller) Load(ctx context.Context) State {
	c.mu.Lock()
	c.gen++
	gen := c.gen
	if c.cancel != nil {
		c.cancel()
	}
	ctx, cancel := context.WithCancel(ctx)
	c.cancel = cancel
	c.state.Loading = true
	c.mu.Unlock()

	list, err := c.source.GetPublishedProjects(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	cancel()
	if gen != c.gen {
		logger.Debugf("home: dropping result of superseded request %d", gen)
		return c.snapshot()
	}
	c.cancel = nil
	if err != nil {
		logger.Errorf("Error loading projects: %v", err)
		c.state.Err = LoadFailedMessage
	} else {
		c.state.Projects = list
		c.state.Err = ""
	}
	c.state.Loading = false
	return c.snapshot()
}

// Retry is the error panel's "Try Again": it re-enters loading and fetches
// again.
func (c *Controller) Retry(ctx context.Context) State {
	logger.Infof("home: retrying project load")
	return c.Load(ctx)
}

// State returns a copy of the current state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshot()
}

func (c *Controller) snapshot() State {
	s := c.state
	s.Projects = slices.Clone(s.Projects)
	return s
}
