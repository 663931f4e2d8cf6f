package handlers

import (
	"io/fs"
	"net/http"

	"github.com/gorilla/mux"

	"sparkshelf/projects"
)

// NewRouter wires every route of the site around one data source.
func NewRouter(src projects.Source, version string) *mux.Router {
	pages := NewPages(src)
	health := NewHealthHandler("sparkshelf", version, src)

	r := mux.NewRouter()
	r.Use(RequestID)

	static, _ := fs.Sub(staticFS, "static")
	r.PathPrefix("/static/").Handler(
		http.StripPrefix("/static/", http.FileServer(http.FS(static))),
	)

	r.HandleFunc("/", pages.Index).Methods("GET")
	r.HandleFunc("/retry", pages.Retry).Methods("POST")
	r.HandleFunc("/api/projects", pages.ProjectsJSON).Methods("GET")
	r.HandleFunc("/healthz", health.HealthCheck).Methods("GET")

	return r
}
