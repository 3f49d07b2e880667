package models

// Report is the terminal artifact of one analysis.
type Report struct {
	// TotalScore is the weighted aggregate on a 0-120 scale.
	TotalScore float64 `json:"totalScore"`

	// Status is derived from TotalScore: excellent, good, warning, or poor.
	Status string `json:"status"`

	// WebsiteType is the classified category: content, functional, or ecommerce.
	WebsiteType string `json:"websiteType"`

	// Results maps metric name to its formatted result.
	Results map[string]MetricReport `json:"results"`
}

// MetricReport is the per-metric view inside a Report.
type MetricReport struct {
	Score int `json:"score"`

	// Status applies the same thresholds as the report-level status.
	Status string `json:"status"`

	// Details are the human-readable issue strings the analyzer collected.
	Details []string `json:"details"`

	// Recommendations come from a static table keyed by metric name,
	// independent of score or website type.
	Recommendations []string `json:"recommendations"`

	// SpecificData carries the analyzer's typed result struct.
	SpecificData any `json:"specificData"`
}

// HealthResponse is the response for GET /api/v1/health.
type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Uptime  string `json:"uptime"`
	Version string `json:"version"`
}

// MetricInfo describes one metric in the GET /api/v1/metrics catalog.
type MetricInfo struct {
	Name   string `json:"name"`
	Icon   string `json:"icon"`
	Weight int    `json:"weight"`
}
