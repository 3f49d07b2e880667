package analyzer

// Result is implemented by every typed metric result through the embedded
// Metric base. Downstream code reads the score and issue list without
// caring which metric produced them.
type Result interface {
	MetricScore() int
	MetricIssues() []string
}

// Metric is the base embedded in every analyzer result. Score is clamped
// to [0,100]; Err is set instead of propagating when an analyzer fails
// internally.
type Metric struct {
	Score  int      `json:"score"`
	Issues []string `json:"issues"`
	Err    string   `json:"error,omitempty"`
}

func (m Metric) MetricScore() int { return m.Score }

func (m Metric) MetricIssues() []string { return m.Issues }

// failed builds the zero-score result base for a contained analyzer failure.
func failed(err error) Metric {
	return Metric{Score: 0, Err: err.Error()}
}

// clampScore floors a running score at 0 and caps it at 100.
func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// Metric names, in pipeline order.
const (
	MetricPageSpeed          = "pageSpeed"
	MetricMobileOptimization = "mobileOptimization"
	MetricMetaTags           = "metaTags"
	MetricHeadingStructure   = "headingStructure"
	MetricImageOptimization  = "imageOptimization"
	MetricInternalLinking    = "internalLinking"
	MetricSSLCertificate     = "sslCertificate"
	MetricSocialMediaTags    = "socialMediaTags"
	MetricContentQuality     = "contentQuality"
	MetricURLStructure       = "urlStructure"
	MetricRobotsTxt          = "robotsTxt"
	MetricSitemap            = "sitemap"
)

// NamedResult pairs a metric name with its typed result.
type NamedResult struct {
	Name   string
	Result Result
}

// Outcome is the raw product of one analysis, before report shaping.
type Outcome struct {
	URL         string
	WebsiteType string

	// Metrics holds one entry per analyzer, in pipeline order.
	Metrics []NamedResult
}

// Scores returns the metric name to score mapping for aggregation.
func (o *Outcome) Scores() map[string]int {
	scores := make(map[string]int, len(o.Metrics))
	for _, m := range o.Metrics {
		scores[m.Name] = m.Result.MetricScore()
	}
	return scores
}
