package handlers

import (
	"net/http"

	"sparkshelf/home"
	"sparkshelf/logger"
	"sparkshelf/projects"
)

// Pages serves the project list. Every request mounts a fresh controller,
// so each page view costs exactly one fetch.
type Pages struct {
	source projects.Source
}

func NewPages(src projects.Source) *Pages {
	return &Pages{source: src}
}

// Index renders the home page after loading the published projects.
func (p *Pages) Index(w http.ResponseWriter, r *http.Request) {
	c := home.NewController(p.source)
	renderState(w, c.Load(r.Context()))
}

// Retry is the target of the error panel's "Try Again" button.
func (p *Pages) Retry(w http.ResponseWriter, r *http.Request) {
	logger.Debugf("retry requested (request %s)", GetRequestID(r.Context()))
	c := home.NewController(p.source)
	renderState(w, c.Retry(r.Context()))
}
