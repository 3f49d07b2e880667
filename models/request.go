package models

// AnalyzeRequest is the payload for POST /api/v1/analyze and
// POST /api/v1/analyze/stream.
type AnalyzeRequest struct {
	// URL is the page to audit. Required. Scheme may be omitted;
	// the normalizer repairs it.
	URL string `json:"url" binding:"required"`

	// FullSiteAnalysis enables the bounded site crawl so that
	// cross-page checks (duplicate titles, orphan pages, missing
	// headings) have data to work with.
	FullSiteAnalysis bool `json:"fullSiteAnalysis,omitempty"`

	// MaxAge, in milliseconds, allows a cached report no older than
	// this to be returned. Zero disables cache lookup.
	MaxAge int `json:"max_age,omitempty" binding:"omitempty,min=0"`
}
