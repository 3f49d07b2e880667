// Package fetcher is the outbound HTTP capability for the audit pipeline.
// It issues GET and HEAD requests with bounded timeouts and supports a
// fallback from certificate-verified to unverified TLS when a site's
// certificate chain does not validate.
package fetcher

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/theOrangeShi/seo-analazing/config"
)

// Response is the subset of an HTTP exchange the analyzers consume.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte

	// FinalURL is the URL after following redirects.
	FinalURL string

	// Elapsed is the wall-clock duration of the request.
	Elapsed time.Duration
}

// Client wraps two http.Clients: one with normal certificate verification
// and one with verification disabled for sites with broken TLS chains.
// It is safe for concurrent use.
type Client struct {
	cfg      config.FetchConfig
	verified *http.Client
	insecure *http.Client
	probe    *http.Client
}

// New creates a fetch client from configuration.
func New(cfg config.FetchConfig) *Client {
	return &Client{
		cfg:      cfg,
		verified: &http.Client{Timeout: cfg.Timeout},
		insecure: &http.Client{
			Timeout: cfg.Timeout,
			Transport: &http.Transport{
				TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
			},
		},
		probe: &http.Client{Timeout: cfg.ProbeTimeout},
	}
}

// Get fetches url with the configured timeout. When verify is false the
// TLS certificate chain is not validated; crawl fetches use this mode
// since availability matters more than trust there.
func (c *Client) Get(ctx context.Context, url string, verify bool) (*Response, error) {
	client := c.verified
	if !verify {
		client = c.insecure
	}
	return c.do(ctx, client, http.MethodGet, url)
}

// Head issues a HEAD probe with the shorter probe timeout, following
// redirects. Used for resource-size and broken-link checks.
func (c *Client) Head(ctx context.Context, url string) (*Response, error) {
	return c.do(ctx, c.probe, http.MethodHead, url)
}

func (c *Client) do(ctx context.Context, client *http.Client, method, url string) (*Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, nil)
	if err != nil {
		return nil, fmt.Errorf("fetch: build request: %w", err)
	}
	req.Header.Set("User-Agent", c.cfg.UserAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	start := time.Now()
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch: request failed: %w", err)
	}
	defer resp.Body.Close()

	var body []byte
	if method != http.MethodHead {
		body, err = io.ReadAll(io.LimitReader(resp.Body, c.cfg.MaxBodyBytes))
		if err != nil {
			return nil, fmt.Errorf("fetch: read body: %w", err)
		}
	}

	finalURL := url
	if resp.Request != nil && resp.Request.URL != nil {
		finalURL = resp.Request.URL.String()
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       body,
		FinalURL:   finalURL,
		Elapsed:    time.Since(start),
	}, nil
}

// IsVerifyError reports whether err stems from TLS certificate
// verification, the one transport failure that warrants a retry with
// verification disabled.
func IsVerifyError(err error) bool {
	var certErr *tls.CertificateVerificationError
	return errors.As(err, &certErr)
}
