// ABOUTME: HTML templates for controls, result cards, and full site pages
// ABOUTME: Compiled once at init; the template engine escapes every interpolated string

package render

import "html/template"

var controlsTmpl = template.Must(template.New("controls").Parse(`<form class="controls-form" method="get" action="{{.Action}}">
  <div class="control search-control">
    <label for="search-input">Search</label>
    <input id="search-input" data-testid="search-input" type="search" name="q" value="{{.QueryText}}" placeholder="Title, author, tag...">
    <button type="submit" name="run" value="1" data-testid="search-run-btn">Search</button>
  </div>
{{- if .ScopeOptions}}
  <div class="control scope-control">
    <label for="scope-select">Month</label>
    <select id="scope-select" name="scope">
{{- range .ScopeOptions}}
      <option value="{{.Value}}"{{if .Selected}} selected{{end}}>{{.Label}}</option>
{{- end}}
    </select>
  </div>
{{- end}}
  <div class="control sort-control">
    <label for="sort-select">Sort</label>
    <select id="sort-select" name="sort">
{{- range .SortOptions}}
      <option value="{{.Value}}"{{if .Selected}} selected{{end}}>{{.Label}}</option>
{{- end}}
    </select>
  </div>
{{- range .TagGroups}}
  <fieldset class="tag-group">
    <legend>{{.Label}}</legend>
{{- range .Options}}
    <label class="tag-option">
      <input type="checkbox" name="tag" value="{{.Param}}" data-tag-category="{{.Category}}" data-tag-value="{{.Value}}"{{if .Checked}} checked{{end}}>
      {{.Label}}
    </label>
{{- end}}
  </fieldset>
{{- end}}
  <a class="reset-link" href="{{.ResetHref}}">Reset</a>
</form>
`))

var resultsTmpl = template.Must(template.New("results").Parse(`{{- if .EmptyMessage}}
<p class="empty-state">{{.EmptyMessage}}</p>
{{- end}}
{{- range .Cards}}
<article class="paper-card{{if .Failed}} paper-card-failed{{end}}" id="{{.ID}}">
{{- if .TopPick}}
  <span class="top-pick-badge">Top pick</span>
{{- end}}
  <h3><a href="{{.AbsURL}}">{{.Title}}</a></h3>
  <p class="byline">{{.Byline}}</p>
  <p class="triage-line">{{.TriageLine}}</p>
{{- if .Failed}}
  <p class="summary-failed">{{.FailedReason}}</p>
{{- else}}
  <p class="one-liner">{{.OneLiner}}</p>
{{- if .DetailedSummary}}
  <p class="detailed-summary">{{.DetailedSummary}}</p>
{{- end}}
{{- if .KeyPoints}}
  <ul class="key-points">
{{- range .KeyPoints}}
    <li>{{.}}</li>
{{- end}}
  </ul>
{{- end}}
{{- if .UniqueContribution}}
  <p class="unique-contribution"><strong>Unique contribution:</strong> {{.UniqueContribution}}</p>
{{- end}}
{{- if .TagChips}}
  <p class="tag-chips">
{{- range .TagChips}}
    <span class="tag-chip">{{.}}</span>
{{- end}}
  </p>
{{- end}}
{{- end}}
{{- if .ExtraLinks}}
  <p class="paper-links">
{{- range .ExtraLinks}}
    <a href="{{.URL}}">{{.Label}}</a>
{{- end}}
  </p>
{{- end}}
</article>
{{- end}}
`))

var searchPageTmpl = template.Must(template.New("search-page").Parse(`<!doctype html>
<html>
<head>
  <meta charset="utf-8">
  <title>{{.Title}}</title>
  <link rel="stylesheet" href="/assets/style.css">
</head>
<body>
  <header class="site-shell">
    <div class="site-shell-inner">
      <p class="site-title"><a class="site-title-link" href="/">{{.SiteTitle}}</a></p>
      <nav class="site-nav">
        <a class="site-nav-link{{if eq .ActiveTab "home"}} active{{end}}" href="/">Monthly Digest</a>
        <a class="site-nav-link{{if eq .ActiveTab "explore"}} active{{end}}" href="/explore">Search</a>
      </nav>
    </div>
  </header>
  <main id="digest-app" class="container">
    <section class="hero-banner">
{{- if .Kicker}}
      <p class="hero-kicker">{{.Kicker}}</p>
{{- end}}
      <h1>{{.Heading}}</h1>
{{- if .Subtitle}}
      <p class="sub">{{.Subtitle}}</p>
{{- end}}
    </section>
    <section id="controls" class="controls">{{.Controls}}</section>
    <p id="results-meta" class="small" data-testid="results-meta">{{.Meta}}</p>
    <section id="results">{{.Results}}</section>
  </main>
</body>
</html>
`))

var homePageTmpl = template.Must(template.New("home-page").Parse(`<!doctype html>
<html>
<head>
  <meta charset="utf-8">
  <title>{{.SiteTitle}}</title>
  <link rel="stylesheet" href="/assets/style.css">
</head>
<body>
  <header class="site-shell">
    <div class="site-shell-inner">
      <p class="site-title"><a class="site-title-link" href="/">{{.SiteTitle}}</a></p>
      <nav class="site-nav">
        <a class="site-nav-link active" href="/">Monthly Digest</a>
        <a class="site-nav-link" href="/explore">Search</a>
      </nav>
    </div>
  </header>
  <main id="digest-app" class="container">
{{- if .AboutBlurb}}
    <section class="digest-about">
      <h2>About This Digest</h2>
      <p>{{.AboutBlurb}}</p>
    </section>
{{- end}}
    <section class="month-list">
{{- range .Months}}
      <article class="month-entry">
        <h2><a href="/digest/{{.Month}}">{{.MonthLabel}}</a></h2>
        <p class="month-stats">{{.Stats.Candidates}} candidates &middot; {{.Stats.Accepted}} accepted &middot; {{.Stats.Summarized}} summarized</p>
{{- with .Featured}}
        <p class="month-featured"><strong>Featured:</strong> <a href="{{.AbsURL}}">{{.Title}}</a>{{if .OneLiner}} &middot; {{.OneLiner}}{{end}}</p>
{{- end}}
      </article>
{{- end}}
    </section>
  </main>
</body>
</html>
`))
