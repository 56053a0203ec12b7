// ABOUTME: Server-rendered HTML pages for the digest site
// ABOUTME: Serves the home, explore, and month views plus the RSS feed and stylesheet

package handlers

import (
	_ "embed"
	"net/http"
	"net/url"

	"arxiv-digest-api/api/dto/requests"
	"arxiv-digest-api/core/domain"
	"arxiv-digest-api/core/feed"
	"arxiv-digest-api/core/interfaces"
	"arxiv-digest-api/core/normalize"
	"arxiv-digest-api/core/query"
	"arxiv-digest-api/core/render"

	"github.com/go-chi/chi/v5"
)

//go:embed assets/style.css
var styleCSS []byte

// exploreGatePrompt is shown on the explore page before a search is run.
const exploreGatePrompt = "Run a search to see matching papers."

// PageHandler serves the server-rendered site pages
type PageHandler struct {
	datasets DatasetService
	logger   interfaces.Logger
	site     feed.Site
}

// NewPageHandler creates a new page handler
func NewPageHandler(datasets DatasetService, logger interfaces.Logger, site feed.Site) *PageHandler {
	return &PageHandler{
		datasets: datasets,
		logger:   logger,
		site:     site,
	}
}

// RegisterRoutes registers the page routes on the chi router
func (h *PageHandler) RegisterRoutes(router chi.Router) {
	router.Get("/", h.Home)
	router.Get("/explore", h.Explore)
	router.Get("/digest/{month}", h.Month)
	router.Get("/feed.xml", h.Feed)
	router.Get("/assets/style.css", h.Stylesheet)
}

// Home renders the months listing
func (h *PageHandler) Home(w http.ResponseWriter, r *http.Request) {
	snapshot := h.datasets.Snapshot()

	page, err := render.HomePage(render.HomeData{
		SiteTitle:  h.site.Title,
		AboutBlurb: h.site.Description,
		Months:     snapshot.Manifest.Months,
	})
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	writeHTML(w, page)
}

// Explore renders the cross-month faceted search page. Results are
// gated until a search is submitted or a filter is active.
func (h *PageHandler) Explore(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()

	state, err := pageQueryState(params, domain.ViewAll, params.Get("scope"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	snapshot := h.datasets.Snapshot()
	submitted := params.Has("run") || state.HasFilters()

	var (
		results []domain.Paper
		meta    string
		empty   string
	)
	if submitted {
		results = query.Apply(snapshot.Papers, state)
		meta = query.MetaLine(len(results), query.ScopedTotal(snapshot.Papers, state))
		if len(results) == 0 {
			empty = query.EmptyMessage(state, snapshot.Months)
		}
	} else {
		empty = exploreGatePrompt
	}

	h.renderSearchPage(w, r, searchPage{
		title:    "Explore",
		tab:      "explore",
		kicker:   "All months",
		heading:  "Explore the corpus",
		subtitle: "Search and filter every accepted paper across all digest months.",
		action:   "/explore",
		state:    state,
		months:   snapshot.Manifest.Months,
		facets:   snapshot.Facets,
		results:  results,
		topPicks: allTopPicks(snapshot),
		meta:     meta,
		empty:    empty,
	})
}

// Month renders the single-month digest page
func (h *PageHandler) Month(w http.ResponseWriter, r *http.Request) {
	month := chi.URLParam(r, "month")
	snapshot := h.datasets.Snapshot()

	payload, ok := snapshot.Months[month]
	if !ok {
		http.NotFound(w, r)
		return
	}

	params := r.URL.Query()
	state, err := pageQueryState(params, domain.ViewMonth, month)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	results := query.Apply(snapshot.Papers, state)
	meta := query.MetaLine(len(results), query.ScopedTotal(snapshot.Papers, state))

	var empty string
	if len(results) == 0 {
		empty = query.EmptyMessage(state, snapshot.Months)
	}

	label := normalize.MonthLabel(month)
	h.renderSearchPage(w, r, searchPage{
		title:    label,
		tab:      "months",
		kicker:   "Monthly digest",
		heading:  label,
		subtitle: "Accepted papers for this month, with summaries and tags.",
		action:   "/digest/" + url.PathEscape(month),
		state:    state,
		months:   nil,
		facets:   query.Facets(payload.Papers),
		results:  results,
		topPicks: topPickSet(payload.TopPicks),
		meta:     meta,
		empty:    empty,
	})
}

// Feed serves the RSS feed for the latest month
func (h *PageHandler) Feed(w http.ResponseWriter, r *http.Request) {
	snapshot := h.datasets.Snapshot()

	payload, ok := snapshot.Months[snapshot.Manifest.Latest]
	if !ok {
		http.NotFound(w, r)
		return
	}

	body, err := feed.RenderRSS(h.site, payload)
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/rss+xml; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

// Stylesheet serves the embedded site stylesheet
func (h *PageHandler) Stylesheet(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(styleCSS)
}

type searchPage struct {
	title    string
	tab      string
	kicker   string
	heading  string
	subtitle string
	action   string
	state    domain.QueryState
	months   []domain.ManifestEntry
	facets   domain.FacetIndex
	results  []domain.Paper
	topPicks map[string]bool
	meta     string
	empty    string
}

func (h *PageHandler) renderSearchPage(w http.ResponseWriter, r *http.Request, p searchPage) {
	controls, err := render.Controls(render.ControlsData{
		Action:    p.action,
		ResetHref: p.action,
		State:     p.state,
		Months:    p.months,
		Facets:    p.facets,
	})
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	results, err := render.Results(render.ResultsData{
		Papers:       p.results,
		TopPicks:     p.topPicks,
		EmptyMessage: p.empty,
	})
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	page, err := render.SearchPage(render.PageData{
		SiteTitle: h.site.Title,
		Title:     p.title,
		ActiveTab: p.tab,
		Kicker:    p.kicker,
		Heading:   p.heading,
		Subtitle:  p.subtitle,
		Controls:  controls,
		Meta:      p.meta,
		Results:   results,
	})
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	writeHTML(w, page)
}

func (h *PageHandler) renderError(w http.ResponseWriter, r *http.Request, err error) {
	if h.logger != nil {
		h.logger.Error("page render failed", map[string]interface{}{
			"path":  r.URL.Path,
			"error": err.Error(),
		})
	}
	http.Error(w, "Internal Server Error", http.StatusInternalServerError)
}

func pageQueryState(params url.Values, view domain.View, month string) (domain.QueryState, error) {
	search := requests.SearchQuery{
		Q:     params.Get("q"),
		Month: month,
		Sort:  params.Get("sort"),
		Tags:  params["tag"],
	}
	return search.ToQueryState(view)
}

func allTopPicks(snapshot domain.Dataset) map[string]bool {
	picks := make(map[string]bool)
	for _, payload := range snapshot.Months {
		for _, id := range payload.TopPicks {
			picks[id] = true
		}
	}
	return picks
}

func topPickSet(ids []string) map[string]bool {
	picks := make(map[string]bool, len(ids))
	for _, id := range ids {
		picks[id] = true
	}
	return picks
}

func writeHTML(w http.ResponseWriter, page []byte) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(page)
}
