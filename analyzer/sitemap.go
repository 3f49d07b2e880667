package analyzer

import (
	"context"
	"encoding/xml"
	"fmt"
	"net/url"
)

// sitemapURLSet mirrors the parts of the sitemap protocol this check
// cares about. Namespaced image entries match by local name.
type sitemapURLSet struct {
	URLs []struct {
		Loc     string     `xml:"loc"`
		Lastmod string     `xml:"lastmod"`
		Images  []struct{} `xml:"image"`
	} `xml:"url"`
}

// SitemapResult reports sitemap.xml availability and its contents.
type SitemapResult struct {
	Metric
	HasSitemap     bool   `json:"hasSitemap"`
	TotalPages     int    `json:"totalPages"`
	LastModified   string `json:"lastModified,omitempty"`
	IncludesImages bool   `json:"includesImages"`
}

func (a *Analyzer) analyzeSitemap(ctx context.Context, pageURL, websiteType string) SitemapResult {
	parsed, err := url.Parse(pageURL)
	if err != nil {
		return SitemapResult{Metric: failed(err)}
	}
	sitemapURL := parsed.Scheme + "://" + parsed.Host + "/sitemap.xml"

	score := 100
	var issues []string

	resp, err := a.fetch.Get(ctx, sitemapURL, true)
	if err != nil {
		return SitemapResult{
			Metric: Metric{Score: clampScore(score - 30), Issues: []string{"Cannot access sitemap.xml"}},
		}
	}

	if resp.StatusCode != 200 {
		return SitemapResult{
			Metric: Metric{Score: clampScore(score - 30), Issues: []string{"Missing sitemap.xml file"}},
		}
	}

	var set sitemapURLSet
	if err := xml.Unmarshal(resp.Body, &set); err != nil {
		return SitemapResult{
			Metric:     Metric{Score: clampScore(score - 30), Issues: []string{"sitemap.xml is not parseable"}},
			HasSitemap: true,
		}
	}

	totalPages := len(set.URLs)
	lastModified := ""
	includesImages := false
	for _, u := range set.URLs {
		if len(u.Images) > 0 {
			includesImages = true
			break
		}
	}
	if totalPages > 0 {
		lastModified = set.URLs[0].Lastmod
	}

	if totalPages < 10 {
		score -= 10
		issues = append(issues, fmt.Sprintf("Sitemap lists few pages: %d", totalPages))
	}

	return SitemapResult{
		Metric:         Metric{Score: clampScore(score), Issues: issues},
		HasSitemap:     true,
		TotalPages:     totalPages,
		LastModified:   lastModified,
		IncludesImages: includesImages,
	}
}
