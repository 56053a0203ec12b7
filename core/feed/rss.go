// ABOUTME: RSS 2.0 feed generation for the latest digest month
// ABOUTME: One item per paper; description carries the one-liner or the summary failure reason

package feed

import (
	"encoding/xml"
	"fmt"
	"strings"
	"time"

	"arxiv-digest-api/core/domain"
	"arxiv-digest-api/core/query"
)

// Site describes the channel-level feed metadata.
type Site struct {
	Title       string
	URL         string
	Description string
}

type rssDoc struct {
	XMLName xml.Name `xml:"rss"`
	Version string   `xml:"version,attr"`
	Channel channel  `xml:"channel"`
}

type channel struct {
	Title       string `xml:"title"`
	Link        string `xml:"link"`
	Description string `xml:"description"`
	Items       []item `xml:"item"`
}

type item struct {
	Title       string   `xml:"title"`
	Link        string   `xml:"link"`
	GUID        string   `xml:"guid"`
	Description string   `xml:"description"`
	PubDate     string   `xml:"pubDate,omitempty"`
	Categories  []string `xml:"category"`
}

// RenderRSS builds an RSS 2.0 document for one month's papers.
func RenderRSS(site Site, payload domain.MonthPayload) ([]byte, error) {
	doc := rssDoc{
		Version: "2.0",
		Channel: channel{
			Title:       fmt.Sprintf("%s: %s", site.Title, payload.Month),
			Link:        site.URL,
			Description: site.Description,
			Items:       make([]item, 0, len(payload.Papers)),
		},
	}
	for _, paper := range payload.Papers {
		doc.Channel.Items = append(doc.Channel.Items, paperItem(paper))
	}

	body, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), body...), nil
}

func paperItem(paper domain.Paper) item {
	it := item{
		Title:       paper.Title,
		Link:        paper.Links.Abs,
		GUID:        paper.Links.Abs,
		Description: paperDescription(paper),
		Categories:  append([]string(nil), paper.Categories...),
	}
	if it.Title == "" {
		it.Title = paper.ArxivIDBase
	}
	if t, err := time.Parse("2006-01-02", paper.PublishedDate); err == nil {
		it.PubDate = t.Format(time.RFC1123Z)
	}
	if paper.Summary != nil {
		for _, category := range query.TagCategories {
			for _, value := range paper.Summary.Tags[category] {
				it.Categories = append(it.Categories, query.TagLabel(category, value))
			}
		}
	}
	return it
}

func paperDescription(paper domain.Paper) string {
	var parts []string
	if paper.Summary != nil && paper.Summary.OneLiner != "" {
		parts = append(parts, paper.Summary.OneLiner)
	} else if paper.SummaryFailedReason != "" {
		parts = append(parts, fmt.Sprintf("Summary unavailable: %s", paper.SummaryFailedReason))
	} else if paper.Summary == nil {
		parts = append(parts, "Summary unavailable.")
	}
	if len(paper.Authors) > 0 {
		parts = append(parts, "Authors: "+strings.Join(paper.Authors, ", "))
	}
	return strings.Join(parts, " ")
}
