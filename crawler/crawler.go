// Package crawler performs a bounded breadth-first traversal of a site,
// collecting the cross-page dataset consumed by the site-wide checks
// (duplicate titles, orphan pages, pages without headings).
package crawler

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/time/rate"

	"github.com/theOrangeShi/seo-analazing/config"
	"github.com/theOrangeShi/seo-analazing/fetcher"
)

// Page is one visited page. Immutable once recorded.
type Page struct {
	URL   string
	Depth int
	Title string

	// HasHeadings is true when the page contains any h1-h6 element.
	HasHeadings bool

	// InternalLinks holds same-domain link targets with query and
	// fragment stripped.
	InternalLinks map[string]struct{}

	InternalLinkCount int
}

// Result is the site-wide dataset built by one crawl.
type Result struct {
	Pages      []Page
	TotalPages int

	// AllInternalLinks is the union of every page's internal links.
	AllInternalLinks map[string]struct{}

	// BaseDomain is scheme://host of the crawl root.
	BaseDomain string
}

// frontierItem is a pending URL at a given depth.
type frontierItem struct {
	url   string
	depth int
}

// Crawler runs bounded BFS crawls. Safe for concurrent use; each Crawl
// call is independent apart from the shared fetch client and pacing limiter.
type Crawler struct {
	fetch   *fetcher.Client
	cfg     config.CrawlConfig
	limiter *rate.Limiter
}

// New creates a crawler. The rate limiter spaces page fetches by the
// configured delay so a crawl cannot hammer the target site.
func New(fetch *fetcher.Client, cfg config.CrawlConfig) *Crawler {
	interval := rate.Inf
	if cfg.Delay > 0 {
		interval = rate.Every(cfg.Delay)
	}
	return &Crawler{
		fetch:   fetch,
		cfg:     cfg,
		limiter: rate.NewLimiter(interval, 1),
	}
}

// Crawl walks the site breadth-first from root, visiting at most
// cfg.MaxPages pages no deeper than cfg.MaxDepth. Per-page failures are
// logged and skipped. onProgress, if non-nil, receives one message before
// the crawl, one per visited page, and one on completion.
func (c *Crawler) Crawl(ctx context.Context, root string, onProgress func(string)) *Result {
	progress := func(msg string) {
		if onProgress != nil {
			onProgress(msg)
		}
	}

	parsedRoot, err := url.Parse(root)
	if err != nil || parsedRoot.Host == "" {
		slog.Error("crawl aborted, unusable root URL", "url", root, "error", err)
		return &Result{
			AllInternalLinks: map[string]struct{}{},
			BaseDomain:       root,
		}
	}
	baseDomain := parsedRoot.Scheme + "://" + parsedRoot.Host

	visited := make(map[string]struct{})
	frontier := []frontierItem{{url: root, depth: 0}}

	result := &Result{
		AllInternalLinks: map[string]struct{}{},
		BaseDomain:       baseDomain,
	}

	progress("Starting site crawl: " + baseDomain)

	for len(frontier) > 0 && len(visited) < c.cfg.MaxPages {
		item := frontier[0]
		frontier = frontier[1:]

		if _, seen := visited[item.url]; seen || item.depth > c.cfg.MaxDepth {
			continue
		}
		visited[item.url] = struct{}{}

		progress(fmt.Sprintf("Crawling page (%d/%d): %s", len(visited), c.cfg.MaxPages, item.url))

		page, links, err := c.visit(ctx, item)
		if err != nil {
			slog.Warn("crawl page failed", "url", item.url, "error", err)
			continue
		}

		result.Pages = append(result.Pages, page)

		for link := range links {
			result.AllInternalLinks[link] = struct{}{}
			if _, seen := visited[link]; !seen && item.depth+1 <= c.cfg.MaxDepth {
				frontier = append(frontier, frontierItem{url: link, depth: item.depth + 1})
			}
		}
	}

	result.TotalPages = len(result.Pages)
	progress(fmt.Sprintf("Crawl finished: %d pages visited", result.TotalPages))
	return result
}

// visit fetches and parses a single page. Certificate verification is
// disabled for crawl fetches: availability matters more than trust here.
func (c *Crawler) visit(ctx context.Context, item frontierItem) (Page, map[string]struct{}, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return Page{}, nil, err
	}

	fetchCtx, cancel := context.WithTimeout(ctx, c.cfg.PageTimeout)
	defer cancel()

	resp, err := c.fetch.Get(fetchCtx, item.url, false)
	if err != nil {
		return Page{}, nil, err
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(string(resp.Body)))
	if err != nil {
		return Page{}, nil, fmt.Errorf("parse %s: %w", item.url, err)
	}

	base, err := url.Parse(item.url)
	if err != nil {
		return Page{}, nil, err
	}

	links := extractInternalLinks(doc, base)

	page := Page{
		URL:               item.url,
		Depth:             item.depth,
		Title:             strings.TrimSpace(doc.Find("title").First().Text()),
		HasHeadings:       doc.Find("h1, h2, h3, h4, h5, h6").Length() > 0,
		InternalLinks:     links,
		InternalLinkCount: len(links),
	}
	return page, links, nil
}

// extractInternalLinks resolves every anchor href against the page URL and
// keeps those on the same host, with query string and fragment stripped.
func extractInternalLinks(doc *goquery.Document, base *url.URL) map[string]struct{} {
	links := make(map[string]struct{})
	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		resolved, err := base.Parse(strings.TrimSpace(href))
		if err != nil {
			return
		}
		if resolved.Host != base.Host {
			return
		}
		clean := resolved.Scheme + "://" + resolved.Host + resolved.Path
		links[clean] = struct{}{}
	})
	return links
}
