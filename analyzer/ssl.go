package analyzer

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/theOrangeShi/seo-analazing/fetcher"
)

// SSLResult reports transport security findings: HTTPS usage, HSTS,
// mixed content, and certificate expiry from a live handshake.
type SSLResult struct {
	Metric
	HasSSL       bool `json:"hasSSL"`
	DaysToExpire int  `json:"daysToExpire"`
	HasHSTS      bool `json:"hasHSTS"`
	MixedContent int  `json:"mixedContent"`
}

func (a *Analyzer) analyzeSSLCertificate(ctx context.Context, pg *page, websiteType string) SSLResult {
	parsed, err := url.Parse(pg.url)
	if err != nil {
		return SSLResult{Metric: failed(err)}
	}

	hasSSL := parsed.Scheme == "https"
	if !hasSSL {
		return SSLResult{
			Metric: Metric{Score: 0, Issues: []string{"Site does not use HTTPS"}},
		}
	}

	score := 100
	var issues []string

	hasHSTS := a.checkHSTS(ctx, pg.url)
	if !hasHSTS {
		score -= 10
		issues = append(issues, "HSTS header not enabled")
	}

	mixedContent := countMixedContent(pg.doc)
	if mixedContent > 0 {
		score -= min(30, mixedContent*10)
		issues = append(issues, fmt.Sprintf("Found %d mixed content issues", mixedContent))
	}

	port := 443
	if p := parsed.Port(); p != "" {
		fmt.Sscanf(p, "%d", &port)
	}

	daysToExpire, err := fetcher.CertExpiry(ctx, parsed.Hostname(), port)
	if err != nil {
		score -= 20
		issues = append(issues, fmt.Sprintf("SSL certificate check failed: %v", err))
	} else if daysToExpire < 30 {
		score -= 20
		issues = append(issues, fmt.Sprintf("SSL certificate expires in %d days", daysToExpire))
	}

	return SSLResult{
		Metric:       Metric{Score: clampScore(score), Issues: issues},
		HasSSL:       true,
		DaysToExpire: daysToExpire,
		HasHSTS:      hasHSTS,
		MixedContent: mixedContent,
	}
}

func (a *Analyzer) checkHSTS(ctx context.Context, pageURL string) bool {
	resp, err := a.fetch.Head(ctx, pageURL)
	if err != nil {
		slog.Warn("HSTS header check failed", "url", pageURL, "error", err)
		return false
	}
	return resp.Header.Get("Strict-Transport-Security") != ""
}

// countMixedContent counts http-scheme sub-resources referenced from the
// page: images, scripts, stylesheets/links, and iframes.
func countMixedContent(doc *goquery.Document) int {
	count := 0
	check := func(sel, attr string) {
		doc.Find(sel).Each(func(_ int, s *goquery.Selection) {
			if v, _ := s.Attr(attr); strings.HasPrefix(v, "http://") {
				count++
			}
		})
	}
	check("img[src]", "src")
	check("script[src]", "src")
	check("link[href]", "href")
	check("iframe[src]", "src")
	return count
}
