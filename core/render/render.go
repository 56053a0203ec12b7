// ABOUTME: Presentation layer producing control, result, and page markup from engine state
// ABOUTME: Pure functions of (dataset, state, results); re-invoked in full on every state change

package render

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"arxiv-digest-api/core/domain"
	"arxiv-digest-api/core/query"
)

// ControlsData drives the filter-controls fragment.
type ControlsData struct {
	// Action is the form target path; submitting re-renders the page
	Action string

	// ResetHref restores default state without re-fetching data
	ResetHref string

	// State holds the current selections reflected back into controls
	State domain.QueryState

	// Months populates the scope selector; nil hides it (month view)
	Months []domain.ManifestEntry

	// Facets supplies tag options from the loaded dataset
	Facets domain.FacetIndex
}

// ResultsData drives the result-list fragment.
type ResultsData struct {
	Papers []domain.Paper

	// TopPicks marks ids that get the badge
	TopPicks map[string]bool

	// EmptyMessage is shown instead of cards when Papers is empty
	EmptyMessage string
}

// PageData assembles a full search-style page (explore or month view).
type PageData struct {
	SiteTitle string
	Title     string
	ActiveTab string
	Kicker    string
	Heading   string
	Subtitle  string
	Controls  template.HTML
	Meta      string
	Results   template.HTML
}

// HomeData assembles the months-listing home page.
type HomeData struct {
	SiteTitle  string
	AboutBlurb string
	Months     []domain.ManifestEntry
}

type option struct {
	Value    string
	Label    string
	Selected bool
}

type tagGroup struct {
	Category string
	Label    string
	Options  []tagOption
}

type tagOption struct {
	Category string
	Value    string
	Param    string
	Label    string
	Checked  bool
}

type link struct {
	Label string
	URL   string
}

type card struct {
	ID                 string
	Title              string
	AbsURL             string
	Byline             string
	TriageLine         string
	OneLiner           string
	DetailedSummary    string
	UniqueContribution string
	KeyPoints          []string
	TagChips           []string
	ExtraLinks         []link
	TopPick            bool
	Failed             bool
	FailedReason       string
}

type controlsView struct {
	Action       string
	ResetHref    string
	QueryText    string
	ScopeOptions []option
	SortOptions  []option
	TagGroups    []tagGroup
}

type resultsView struct {
	EmptyMessage string
	Cards        []card
}

var sortLabels = []option{
	{Value: string(domain.SortPublishedDesc), Label: "Newest first"},
	{Value: string(domain.SortPublishedAsc), Label: "Oldest first"},
	{Value: string(domain.SortTitleAsc), Label: "Title (A-Z)"},
	{Value: string(domain.SortConfidenceDesc), Label: "Triage confidence"},
}

// Controls renders the filter controls fragment.
func Controls(d ControlsData) (template.HTML, error) {
	return execute(controlsTmpl, buildControls(d))
}

// Results renders the result-list fragment.
func Results(d ResultsData) (template.HTML, error) {
	return execute(resultsTmpl, resultsView{
		EmptyMessage: d.EmptyMessage,
		Cards:        buildCards(d),
	})
}

// Meta renders the result-count line as an escaped fragment.
func Meta(line string) template.HTML {
	return template.HTML(template.HTMLEscapeString(line))
}

// SearchPage renders a full explore or month page around the fragments.
func SearchPage(d PageData) ([]byte, error) {
	var buf bytes.Buffer
	if err := searchPageTmpl.Execute(&buf, d); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// HomePage renders the months listing.
func HomePage(d HomeData) ([]byte, error) {
	var buf bytes.Buffer
	if err := homePageTmpl.Execute(&buf, d); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func execute(tmpl *template.Template, data interface{}) (template.HTML, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}

func buildControls(d ControlsData) controlsView {
	view := controlsView{
		Action:    d.Action,
		ResetHref: d.ResetHref,
		QueryText: d.State.Query,
	}

	if d.Months != nil {
		view.ScopeOptions = append(view.ScopeOptions, option{
			Value:    "",
			Label:    "All months",
			Selected: d.State.Month == "",
		})
		for _, entry := range d.Months {
			view.ScopeOptions = append(view.ScopeOptions, option{
				Value:    entry.Month,
				Label:    entry.MonthLabel,
				Selected: d.State.Month == entry.Month,
			})
		}
	}

	sortMode := d.State.Sort
	if sortMode == "" {
		sortMode = domain.DefaultSort
	}
	for _, opt := range sortLabels {
		opt.Selected = opt.Value == string(sortMode)
		view.SortOptions = append(view.SortOptions, opt)
	}

	for _, category := range d.Facets.Categories {
		group := tagGroup{Category: category, Label: query.CategoryLabel(category)}
		for _, value := range d.Facets.Values[category] {
			group.Options = append(group.Options, tagOption{
				Category: category,
				Value:    value,
				Param:    category + ":" + value,
				Label:    query.TagLabel(category, value),
				Checked:  isSelected(d.State.Tags[category], value),
			})
		}
		view.TagGroups = append(view.TagGroups, group)
	}
	return view
}

func isSelected(selected []string, value string) bool {
	for _, s := range selected {
		if s == value {
			return true
		}
	}
	return false
}

func buildCards(d ResultsData) []card {
	cards := make([]card, 0, len(d.Papers))
	for _, paper := range d.Papers {
		cards = append(cards, buildCard(paper, d.TopPicks[paper.ArxivIDBase]))
	}
	return cards
}

func buildCard(paper domain.Paper, topPick bool) card {
	c := card{
		ID:         paper.ArxivIDBase,
		Title:      cardTitle(paper),
		AbsURL:     paper.Links.Abs,
		Byline:     cardByline(paper),
		TriageLine: cardTriageLine(paper.Triage),
		TopPick:    topPick,
	}
	if paper.Links.PDF != "" {
		c.ExtraLinks = append(c.ExtraLinks, link{Label: "PDF", URL: paper.Links.PDF})
	}

	if paper.Summary == nil {
		c.Failed = true
		c.FailedReason = paper.SummaryFailedReason
		if c.FailedReason == "" {
			c.FailedReason = "No summary is available for this paper."
		}
		return c
	}

	summary := paper.Summary
	c.OneLiner = summary.OneLiner
	c.DetailedSummary = summary.DetailedSummary
	c.UniqueContribution = summary.UniqueContribution
	c.KeyPoints = summary.KeyPoints
	for _, category := range query.TagCategories {
		for _, value := range summary.Tags[category] {
			c.TagChips = append(c.TagChips, query.TagLabel(category, value))
		}
	}
	if summary.OpenSource.CodeURL != "" {
		c.ExtraLinks = append(c.ExtraLinks, link{Label: "Code", URL: summary.OpenSource.CodeURL})
	}
	if summary.OpenSource.WeightsURL != "" {
		c.ExtraLinks = append(c.ExtraLinks, link{Label: "Weights", URL: summary.OpenSource.WeightsURL})
	}
	return c
}

func cardTitle(paper domain.Paper) string {
	if paper.Title != "" {
		return paper.Title
	}
	if paper.Summary != nil && paper.Summary.Title != "" {
		return paper.Summary.Title
	}
	return paper.ArxivIDBase
}

func cardByline(paper domain.Paper) string {
	parts := make([]string, 0, 3)
	if len(paper.Authors) > 0 {
		parts = append(parts, strings.Join(paper.Authors, ", "))
	}
	if paper.PublishedDate != "" {
		parts = append(parts, paper.PublishedDate)
	}
	if paper.Month != "" {
		parts = append(parts, paper.Month)
	}
	return strings.Join(parts, " | ")
}

func cardTriageLine(t domain.Triage) string {
	line := fmt.Sprintf("%s (%.2f confidence)", t.Decision, t.Confidence)
	if len(t.Reasons) > 0 {
		line += ": " + strings.Join(t.Reasons, "; ")
	}
	return line
}
