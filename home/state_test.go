package home

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"sparkshelf/models"
)

func TestState_View(t *testing.T) {
	one := []models.Project{{ID: "1"}}

	cases := []struct {
		name  string
		state State
		want  View
	}{
		{"initial", State{Loading: true}, ViewLoading},
		{"loading over error", State{Loading: true, Err: LoadFailedMessage}, ViewLoading},
		{"error", State{Err: LoadFailedMessage, Projects: one}, ViewError},
		{"empty", State{Projects: []models.Project{}}, ViewEmpty},
		{"nil list", State{}, ViewEmpty},
		{"grid", State{Projects: one}, ViewGrid},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.state.View())
		})
	}
}

func TestCountText(t *testing.T) {
	assert.Equal(t, "0 projects available", CountText(0))
	assert.Equal(t, "1 project available", CountText(1))
	assert.Equal(t, "2 projects available", CountText(2))
	assert.Equal(t, "12 projects available", CountText(12))
}

func TestView_String(t *testing.T) {
	assert.Equal(t, "grid", ViewGrid.String())
	assert.Equal(t, "View(9)", View(9).String())
}
