package handlers

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"

	"sparkshelf/home"
	"sparkshelf/logger"
	"sparkshelf/models"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

var pages = template.Must(template.New("").Funcs(template.FuncMap{
	"markdown":  markdown,
	"costLabel": CostLabel,
}).ParseFS(templateFS, "templates/*.html"))

type homePageData struct {
	Projects  []models.Project
	CountText string
}

// renderState writes the page for st. The page is a pure function of the
// state; an error view answers 502 since the backend failed us.
func renderState(w http.ResponseWriter, st home.State) {
	name, status := "home", http.StatusOK
	var data any = homePageData{Projects: st.Projects, CountText: home.CountText(len(st.Projects))}
	switch st.View() {
	case home.ViewLoading:
		name, data = "loading", nil
	case home.ViewError:
		name, data, status = "error", st, http.StatusBadGateway
	}

	var buf bytes.Buffer
	if err := pages.ExecuteTemplate(&buf, name, data); err != nil {
		logger.Errorf("render %s: %v", name, err)
		http.Error(w, "Template error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}
