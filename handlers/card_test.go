package handlers

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sparkshelf/models"
)

func cost(f float64) *float64 { return &f }

func executeCard(t *testing.T, p models.Project) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, pages.ExecuteTemplate(&buf, "project_card", p))
	return buf.String()
}

func TestCostLabel(t *testing.T) {
	assert.Equal(t, "N/A", CostLabel(nil))
	assert.Equal(t, "N/A", CostLabel(cost(math.NaN())))
	assert.Equal(t, "N/A", CostLabel(cost(math.Inf(1))))
	assert.Equal(t, "25 TND", CostLabel(cost(25)))
	assert.Equal(t, "0 TND", CostLabel(cost(0)))
	assert.Equal(t, "12.5 TND", CostLabel(cost(12.5)))
}

func TestRenderCard(t *testing.T) {
	out := executeCard(t, models.Project{
		ID:          "1",
		Title:       "Line Follower",
		Description: "...",
		Difficulty:  "easy",
		Cost:        cost(40),
	})

	assert.Contains(t, out, `<h2 class="card-title">Line Follower</h2>`)
	assert.Contains(t, out, "Difficulty: easy | Cost: 40 TND")
	assert.Contains(t, out, `data-project-id="1"`)
}

func TestRenderCard_NoCost(t *testing.T) {
	out := executeCard(t, models.Project{Title: "Rover", Difficulty: "medium"})
	assert.Contains(t, out, "Difficulty: medium | Cost: N/A")
}

func TestRenderCard_EscapesAndSanitizes(t *testing.T) {
	out := executeCard(t, models.Project{
		Title:       "<b>Arm</b>",
		Description: "**strong** <script>alert(1)</script>",
	})

	assert.Contains(t, out, "&lt;b&gt;Arm&lt;/b&gt;")
	assert.Contains(t, out, "<strong>strong</strong>")
	assert.NotContains(t, out, "<script>")
}

func TestMarkdown_KeepsTypedPunctuation(t *testing.T) {
	assert.Equal(t, "<p>...</p>", strings.TrimSpace(string(markdown("..."))))

	out := string(markdown("Wheels -- 1/2 inch, \"tested\""))
	assert.Contains(t, out, "--")
	assert.Contains(t, out, "1/2")
	assert.NotContains(t, out, "&hellip;")
	assert.NotContains(t, out, "&ndash;")
	assert.NotContains(t, out, "&frac12;")
	assert.NotContains(t, out, "&ldquo;")
}
