package home

import (
	"fmt"

	"sparkshelf/models"
)

// LoadFailedMessage is what the page shows for any load failure.
const LoadFailedMessage = "Failed to load projects. Please try again later."

// View is one of the mutually exclusive renderings of the page.
type View int

const (
	ViewLoading View = iota
	ViewError
	ViewEmpty
	ViewGrid
)

func (v View) String() string {
	switch v {
	case ViewLoading:
		return "loading"
	case ViewError:
		return "error"
	case ViewEmpty:
		return "empty"
	case ViewGrid:
		return "grid"
	}
	return fmt.Sprintf("View(%d)", int(v))
}

// State is everything the page renders from.
type State struct {
	Projects []models.Project
	Loading  bool
	Err      string
}

// View picks the rendering for s. Loading wins over a previous error.
func (s State) View() View {
	switch {
	case s.Loading:
		return ViewLoading
	case s.Err != "":
		return ViewError
	case len(s.Projects) == 0:
		return ViewEmpty
	default:
		return ViewGrid
	}
}

// CountText is the "N projects available" line above the grid.
func CountText(n int) string {
	if n == 1 {
		return "1 project available"
	}
	return fmt.Sprintf("%d projects available", n)
}
