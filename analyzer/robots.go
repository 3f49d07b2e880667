package analyzer

import (
	"context"
	"net/url"
	"strings"
)

// RobotsResult reports robots.txt availability and its directives.
type RobotsResult struct {
	Metric
	HasRobotsTxt           bool `json:"hasRobotsTxt"`
	BlockingImportantPages int  `json:"blockingImportantPages"`
	HasSitemapReference    bool `json:"hasSitemapReference"`
	BlockingCSS            bool `json:"blockingCSS"`
}

func (a *Analyzer) analyzeRobotsTxt(ctx context.Context, pageURL, websiteType string) RobotsResult {
	parsed, err := url.Parse(pageURL)
	if err != nil {
		return RobotsResult{Metric: failed(err)}
	}
	robotsURL := parsed.Scheme + "://" + parsed.Host + "/robots.txt"

	score := 100
	var issues []string

	resp, err := a.fetch.Get(ctx, robotsURL, true)
	if err != nil {
		return RobotsResult{
			Metric: Metric{Score: clampScore(score - 20), Issues: []string{"Cannot access robots.txt"}},
		}
	}

	hasRobotsTxt := resp.StatusCode == 200
	blockingImportantPages := 0
	hasSitemapReference := false
	blockingCSS := false

	if !hasRobotsTxt {
		score -= 20
		issues = append(issues, "Missing robots.txt file")
	} else {
		content := string(resp.Body)

		if strings.Contains(content, "Disallow: /admin") {
			blockingImportantPages++
		}
		hasSitemapReference = strings.Contains(content, "Sitemap:")
		blockingCSS = strings.Contains(content, "Disallow: /*.css")
		if blockingCSS {
			score -= 10
			issues = append(issues, "robots.txt blocks CSS files")
		}
	}

	return RobotsResult{
		Metric:                 Metric{Score: clampScore(score), Issues: issues},
		HasRobotsTxt:           hasRobotsTxt,
		BlockingImportantPages: blockingImportantPages,
		HasSitemapReference:    hasSitemapReference,
		BlockingCSS:            blockingCSS,
	}
}
