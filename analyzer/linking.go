package analyzer

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/theOrangeShi/seo-analazing/crawler"
)

// brokenLinkSample bounds how many internal links get a live HEAD probe.
const brokenLinkSample = 5

// LinkingResult reports internal/external link balance, a sampled
// broken-link check, and site-wide orphan/deep-page counts.
type LinkingResult struct {
	Metric
	TotalLinks        int      `json:"totalLinks"`
	BrokenLinks       int      `json:"brokenLinks"`
	ExternalLinks     int      `json:"externalLinks"`
	ExternalLinksList []string `json:"externalLinksList"`
	OrphanPages       int      `json:"orphanPages"`
	DeepLinks         int      `json:"deepLinks"`
}

func (a *Analyzer) analyzeInternalLinking(ctx context.Context, pg *page, websiteType string, site *crawler.Result) LinkingResult {
	score := 100
	var issues []string

	base, err := url.Parse(pg.url)
	if err != nil {
		return LinkingResult{Metric: failed(err)}
	}

	totalLinks := 0
	var internal, external []string
	pg.doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		totalLinks++
		href, _ := s.Attr("href")
		resolved, err := base.Parse(strings.TrimSpace(href))
		if err != nil {
			return
		}
		if resolved.Host == base.Host {
			internal = append(internal, resolved.String())
		} else {
			external = append(external, resolved.String())
		}
	})

	// Live-check a small sample of internal links; a probe failure
	// counts as a broken link.
	brokenLinks := 0
	sample := internal
	if len(sample) > brokenLinkSample {
		sample = sample[:brokenLinkSample]
	}
	for _, link := range sample {
		resp, err := a.fetch.Head(ctx, link)
		if err != nil || resp.StatusCode >= 400 {
			brokenLinks++
		}
	}
	if brokenLinks > 0 {
		score -= brokenLinks * 10
		issues = append(issues, fmt.Sprintf("Found %d broken links", brokenLinks))
	}

	if len(external) > 15 {
		score -= 10
		issues = append(issues, "Too many external links")
	}

	orphanPages := 0
	deepLinks := 0
	if site != nil {
		for _, p := range site.Pages {
			if _, linked := site.AllInternalLinks[p.URL]; !linked && p.Depth > 0 {
				orphanPages++
			}
			if p.Depth >= 3 {
				deepLinks++
			}
		}
		if orphanPages > 0 {
			score -= min(15, orphanPages*5)
			issues = append(issues, fmt.Sprintf("Found %d orphan pages", orphanPages))
		}
		if deepLinks > 5 {
			score -= 10
			issues = append(issues, fmt.Sprintf("%d deeply nested pages may hurt crawlability", deepLinks))
		}
	}

	externalSample := external
	if len(externalSample) > 5 {
		externalSample = externalSample[:5]
	}

	return LinkingResult{
		Metric:            Metric{Score: clampScore(score), Issues: issues},
		TotalLinks:        totalLinks,
		BrokenLinks:       brokenLinks,
		ExternalLinks:     len(external),
		ExternalLinksList: externalSample,
		OrphanPages:       orphanPages,
		DeepLinks:         deepLinks,
	}
}
