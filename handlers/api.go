package handlers

import (
	"encoding/json"
	"net/http"

	"sparkshelf/home"
	"sparkshelf/logger"
	"sparkshelf/models"
)

type projectsResponse struct {
	Projects []models.Project `json:"projects"`
	Count    int              `json:"count"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Errorf("write json: %v", err)
	}
}

// ProjectsJSON serves the same snapshot as the home page as JSON.
func (p *Pages) ProjectsJSON(w http.ResponseWriter, r *http.Request) {
	st := home.NewController(p.source).Load(r.Context())
	if st.View() == home.ViewError {
		writeJSON(w, http.StatusBadGateway, errorResponse{Error: st.Err})
		return
	}
	list := st.Projects
	if list == nil {
		list = []models.Project{}
	}
	writeJSON(w, http.StatusOK, projectsResponse{Projects: list, Count: len(list)})
}
