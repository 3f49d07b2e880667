package analyzer

import (
	"context"
	"log/slog"
	"math"
	"net/url"
	"strconv"

	"github.com/PuerkitoBio/goquery"
)

// Fallback size estimates (KB) when a resource HEAD probe fails.
const (
	estimateImageKB = 30
	estimateCSSKB   = 50
	estimateJSKB    = 100
)

// PageSpeedResult reports approximate page weight. True load performance
// needs a browser; this approximates it from static resource sizes.
type PageSpeedResult struct {
	Metric
	LoadTime    int64   `json:"loadTime"` // milliseconds for the primary fetch
	TotalSize   float64 `json:"totalSize"` // KB
	ImageSize   float64 `json:"imageSize"`
	CSSSize     float64 `json:"cssSize"`
	JSSize      float64 `json:"jsSize"`
	TotalImages int     `json:"totalImages"`
	LargeImages int     `json:"largeImages"`
}

func (a *Analyzer) analyzePageSpeed(ctx context.Context, pg *page, websiteType string) PageSpeedResult {
	totalKB := float64(len(pg.resp.Body)) / 1024

	var imageKB, cssKB, jsKB float64
	largeImages := 0
	totalImages := pg.doc.Find("img").Length()

	pg.doc.Find("img[src]").Each(func(_ int, s *goquery.Selection) {
		src, _ := s.Attr("src")
		size, ok := a.probeSize(ctx, pg.url, src)
		if !ok {
			imageKB += estimateImageKB
			return
		}
		imageKB += size / 1024
		if size > 100*1024 {
			largeImages++
		}
	})

	pg.doc.Find(`link[rel="stylesheet"][href]`).Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		size, ok := a.probeSize(ctx, pg.url, href)
		if !ok {
			cssKB += estimateCSSKB
			return
		}
		cssKB += size / 1024
	})

	pg.doc.Find("script[src]").Each(func(_ int, s *goquery.Selection) {
		src, _ := s.Attr("src")
		size, ok := a.probeSize(ctx, pg.url, src)
		if !ok {
			jsKB += estimateJSKB
			return
		}
		jsKB += size / 1024
	})

	score := 100
	switch {
	case totalKB > 2000:
		score -= 30
	case totalKB > 1000:
		score -= 15
	}
	switch {
	case largeImages > 5:
		score -= 20
	case largeImages > 2:
		score -= 10
	}
	if cssKB > 500 {
		score -= 10
	}
	if jsKB > 500 {
		score -= 10
	}

	return PageSpeedResult{
		Metric:      Metric{Score: clampScore(score)},
		LoadTime:    pg.resp.Elapsed.Milliseconds(),
		TotalSize:   round2(totalKB),
		ImageSize:   round2(imageKB),
		CSSSize:     round2(cssKB),
		JSSize:      round2(jsKB),
		TotalImages: totalImages,
		LargeImages: largeImages,
	}
}

// probeSize resolves ref against the page URL and asks the server for the
// resource size via HEAD. The bool is false when the probe failed or the
// resource was not OK, in which case the caller substitutes an estimate.
func (a *Analyzer) probeSize(ctx context.Context, pageURL, ref string) (float64, bool) {
	resolved, err := resolveRef(pageURL, ref)
	if err != nil {
		return 0, false
	}
	resp, err := a.fetch.Head(ctx, resolved)
	if err != nil || resp.StatusCode != 200 {
		slog.Debug("resource size probe failed", "url", resolved, "error", err)
		return 0, false
	}
	size, err := strconv.ParseInt(resp.Header.Get("Content-Length"), 10, 64)
	if err != nil {
		return 0, true
	}
	return float64(size), true
}

// resolveRef makes ref absolute relative to pageURL.
func resolveRef(pageURL, ref string) (string, error) {
	base, err := url.Parse(pageURL)
	if err != nil {
		return "", err
	}
	resolved, err := base.Parse(ref)
	if err != nil {
		return "", err
	}
	return resolved.String(), nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
