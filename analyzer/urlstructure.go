package analyzer

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

var (
	pathSpecialRe  = regexp.MustCompile(`[^a-zA-Z0-9\-_/]`)
	urlKeywordList = []string{"seo", "optimization", "marketing"}
)

// URLStructureResult reports URL readability signals.
type URLStructureResult struct {
	Metric
	URLLength    int  `json:"urlLength"`
	URLDepth     int  `json:"urlDepth"`
	HasKeyword   bool `json:"hasKeyword"`
	SpecialChars bool `json:"specialChars"`
}

func (a *Analyzer) analyzeURLStructure(pageURL, websiteType string) URLStructureResult {
	parsed, err := url.Parse(pageURL)
	if err != nil {
		return URLStructureResult{Metric: failed(err)}
	}

	score := 100
	var issues []string

	urlLength := len(pageURL)
	if urlLength > 100 {
		score -= 20
		issues = append(issues, fmt.Sprintf("URL too long: %d characters", urlLength))
	}

	urlDepth := 0
	for _, seg := range strings.Split(parsed.Path, "/") {
		if seg != "" {
			urlDepth++
		}
	}
	if urlDepth > 5 {
		score -= 15
		issues = append(issues, fmt.Sprintf("URL nested too deeply: %d levels", urlDepth))
	}

	specialChars := pathSpecialRe.MatchString(parsed.Path)
	if specialChars {
		score -= 10
		issues = append(issues, "URL contains special characters")
	}

	hasKeyword := containsAny(strings.ToLower(pageURL), urlKeywordList)

	return URLStructureResult{
		Metric:       Metric{Score: clampScore(score), Issues: issues},
		URLLength:    urlLength,
		URLDepth:     urlDepth,
		HasKeyword:   hasKeyword,
		SpecialChars: specialChars,
	}
}
