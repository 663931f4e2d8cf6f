package handlers

import (
	"html/template"
	"math"
	"strconv"

	"github.com/microcosm-cc/bluemonday"
	"github.com/russross/blackfriday/v2"

)

// CostCurrency is appended to every known cost.
const CostCurrency = "TND"

// CostLabel renders a project cost for its card: "N/A" when the cost is
// unknown or not a finite number, "25 TND" otherwise.
func CostLabel(cost *float64) string {
	if cost == nil || math.IsNaN(*cost) || math.IsInf(*cost, 0) {
		return "N/A"
	}
	return strconv.FormatFloat(*cost, 'f', -1, 64) + " " + CostCurrency
}

var descriptionPolicy = bluemonday.UGCPolicy()

// Plain XHTML output: no Smartypants, so "..." or "--" in a description are
// shown as typed.
var descriptionRenderer = blackfriday.WithRenderer(blackfriday.NewHTMLRenderer(
	blackfriday.HTMLRendererParameters{Flags: blackfriday.UseXHTML},
))

// markdown renders a project description. Descriptions are edited in the
// backend dashboard, so the output is sanitized before it reaches a page.
func markdown(s string) template.HTML {
	unsafe := blackfriday.Run([]byte(s), descriptionRenderer)
	return template.HTML(descriptionPolicy.SanitizeBytes(unsafe))
}
