// Package analyzer runs the audit pipeline: URL normalization, optional
// site crawl, website type classification, the twelve-metric suite, and
// report shaping.
package analyzer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/theOrangeShi/seo-analazing/crawler"
	"github.com/theOrangeShi/seo-analazing/fetcher"
	"github.com/theOrangeShi/seo-analazing/models"
)

// page bundles the fetched artifacts every analyzer reads.
type page struct {
	url  string
	resp *fetcher.Response
	doc  *goquery.Document
	text string
}

// Analyzer orchestrates one analysis per call. Safe for concurrent use;
// all per-call state lives on the stack.
type Analyzer struct {
	fetch *fetcher.Client
	crawl *crawler.Crawler
}

// New creates an analyzer from its collaborators.
func New(fetch *fetcher.Client, crawl *crawler.Crawler) *Analyzer {
	return &Analyzer{fetch: fetch, crawl: crawl}
}

// Analyze audits rawURL and returns the raw outcome. When fullSite is
// set, a bounded crawl first builds the cross-page dataset for the
// site-wide checks. onProgress, if non-nil, receives one message per
// pipeline phase.
func (a *Analyzer) Analyze(ctx context.Context, rawURL string, fullSite bool, onProgress func(string)) (*Outcome, error) {
	progress := func(msg string) {
		if onProgress != nil {
			onProgress(msg)
		}
	}

	pageURL := Normalize(rawURL)
	slog.Info("starting analysis", "url", pageURL, "fullSite", fullSite)

	var site *crawler.Result
	if fullSite {
		progress("Crawling site pages...")
		site = a.crawl.Crawl(ctx, pageURL, onProgress)
	}

	progress("Fetching page content...")
	resp, err := a.fetchPage(ctx, pageURL)
	if err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(string(resp.Body)))
	if err != nil {
		return nil, models.NewAuditError(models.ErrCodeInternal, "failed to parse page HTML", err)
	}

	pg := &page{
		url:  pageURL,
		resp: resp,
		doc:  doc,
		text: visibleText(resp.Body),
	}

	progress("Detecting website type...")
	websiteType := Classify(pageURL, doc, pg.text)
	slog.Info("website type detected", "url", pageURL, "type", websiteType)

	outcome := &Outcome{URL: pageURL, WebsiteType: websiteType}
	add := func(name string, fn func() Result) {
		outcome.Metrics = append(outcome.Metrics, capture(name, fn))
	}

	progress("Analyzing page speed...")
	add(MetricPageSpeed, func() Result { return a.analyzePageSpeed(ctx, pg, websiteType) })

	progress("Analyzing mobile optimization...")
	add(MetricMobileOptimization, func() Result { return a.analyzeMobileOptimization(pg, websiteType) })

	progress("Analyzing meta tags...")
	add(MetricMetaTags, func() Result { return a.analyzeMetaTags(pg, websiteType, site) })

	progress("Analyzing heading structure...")
	add(MetricHeadingStructure, func() Result { return a.analyzeHeadingStructure(pg, websiteType, site) })

	progress("Analyzing image optimization...")
	add(MetricImageOptimization, func() Result { return a.analyzeImageOptimization(pg, websiteType) })

	progress("Analyzing internal linking...")
	add(MetricInternalLinking, func() Result { return a.analyzeInternalLinking(ctx, pg, websiteType, site) })

	progress("Analyzing SSL certificate...")
	add(MetricSSLCertificate, func() Result { return a.analyzeSSLCertificate(ctx, pg, websiteType) })

	progress("Analyzing social media tags...")
	add(MetricSocialMediaTags, func() Result { return a.analyzeSocialMediaTags(pg, websiteType) })

	progress("Analyzing content quality...")
	add(MetricContentQuality, func() Result { return a.analyzeContentQuality(pg, websiteType) })

	progress("Analyzing URL structure...")
	add(MetricURLStructure, func() Result { return a.analyzeURLStructure(pageURL, websiteType) })

	progress("Analyzing robots.txt...")
	add(MetricRobotsTxt, func() Result { return a.analyzeRobotsTxt(ctx, pageURL, websiteType) })

	progress("Analyzing sitemap...")
	add(MetricSitemap, func() Result { return a.analyzeSitemap(ctx, pageURL, websiteType) })

	progress("Analysis complete!")
	slog.Info("analysis finished", "url", pageURL)
	return outcome, nil
}

// fetchPage retrieves the primary page, retrying once without TLS
// verification when the certificate chain fails to validate.
func (a *Analyzer) fetchPage(ctx context.Context, pageURL string) (*fetcher.Response, error) {
	resp, err := a.fetch.Get(ctx, pageURL, true)
	if err != nil && fetcher.IsVerifyError(err) {
		slog.Warn("certificate verification failed, retrying unverified", "url", pageURL, "error", err)
		resp, err = a.fetch.Get(ctx, pageURL, false)
	}
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, models.NewAuditError(models.ErrCodeTimeout, "page fetch timed out", err)
		}
		return nil, models.NewAuditError(models.ErrCodeFetchFailed, fmt.Sprintf("failed to fetch %s", pageURL), err)
	}
	if resp.StatusCode >= 400 {
		return nil, models.NewAuditError(models.ErrCodeFetchFailed,
			fmt.Sprintf("page returned HTTP %d", resp.StatusCode), nil)
	}
	return resp, nil
}

// capture runs one analyzer and contains any panic as a zero-score
// result so sibling analyzers and the pipeline keep going.
func capture(name string, fn func() Result) (nr NamedResult) {
	nr.Name = name
	defer func() {
		if r := recover(); r != nil {
			slog.Error("metric analyzer failed", "metric", name, "panic", r)
			nr.Result = Metric{Score: 0, Err: fmt.Sprint(r)}
		}
	}()
	nr.Result = fn()
	return nr
}
