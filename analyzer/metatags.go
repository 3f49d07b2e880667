package analyzer

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/theOrangeShi/seo-analazing/crawler"
)

// MetaTagsResult reports title/description/canonical findings plus
// cross-page duplicate titles when site data is available.
type MetaTagsResult struct {
	Metric
	Title             string `json:"title"`
	TitleLength       int    `json:"titleLength"`
	Description       string `json:"description"`
	DescriptionLength int    `json:"descriptionLength"`
	HasKeywordMeta    bool   `json:"hasKeywordMeta"`
	HasCanonical      bool   `json:"hasCanonical"`
	DuplicateTitles   int    `json:"duplicateTitles"`
}

func (a *Analyzer) analyzeMetaTags(pg *page, websiteType string, site *crawler.Result) MetaTagsResult {
	score := 100
	var issues []string

	title := strings.TrimSpace(pg.doc.Find("title").First().Text())
	titleLength := utf8.RuneCountInString(title)

	if websiteType == TypeFunctional {
		// Functional sites keep titles short on purpose.
		if titleLength < 10 {
			score -= 10
			issues = append(issues, fmt.Sprintf("Title too short: %d characters", titleLength))
		} else if titleLength > 50 {
			score -= 10
			issues = append(issues, fmt.Sprintf("Title too long: %d characters", titleLength))
		}
	} else {
		if titleLength < 30 {
			score -= 20
			issues = append(issues, fmt.Sprintf("Title too short: %d characters", titleLength))
		} else if titleLength > 60 {
			score -= 15
			issues = append(issues, fmt.Sprintf("Title too long: %d characters", titleLength))
		}
	}

	description, _ := pg.doc.Find(`meta[name="description"]`).First().Attr("content")
	descriptionLength := utf8.RuneCountInString(description)

	if websiteType == TypeFunctional {
		if descriptionLength > 200 {
			score -= 5
			issues = append(issues, fmt.Sprintf("Description too long: %d characters", descriptionLength))
		}
	} else {
		if descriptionLength < 120 {
			score -= 15
			issues = append(issues, fmt.Sprintf("Description too short: %d characters", descriptionLength))
		} else if descriptionLength > 160 {
			score -= 10
			issues = append(issues, fmt.Sprintf("Description too long: %d characters", descriptionLength))
		}
	}

	hasKeywordMeta := pg.doc.Find(`meta[name="keywords"]`).Length() > 0

	hasCanonical := pg.doc.Find(`link[rel="canonical"]`).Length() > 0
	if !hasCanonical {
		score -= 10
		issues = append(issues, "Missing canonical link")
	}

	// Duplicate titles only cover pages the bounded crawl actually
	// visited, not the true full site.
	duplicateTitles := 0
	if site != nil {
		counts := make(map[string]int)
		for _, p := range site.Pages {
			if p.Title != "" {
				counts[p.Title]++
			}
		}
		for _, n := range counts {
			if n > 1 {
				duplicateTitles++
			}
		}
		if duplicateTitles > 0 {
			score -= min(20, duplicateTitles*5)
			issues = append(issues, fmt.Sprintf("Found %d duplicate titles", duplicateTitles))
		}
	}

	return MetaTagsResult{
		Metric:            Metric{Score: clampScore(score), Issues: issues},
		Title:             title,
		TitleLength:       titleLength,
		Description:       description,
		DescriptionLength: descriptionLength,
		HasKeywordMeta:    hasKeywordMeta,
		HasCanonical:      hasCanonical,
		DuplicateTitles:   duplicateTitles,
	}
}
