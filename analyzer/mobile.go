package analyzer

import (
	"fmt"
	"regexp"

	"github.com/PuerkitoBio/goquery"
)

var mobileClassRe = regexp.MustCompile(`(?i)mobile|nav|menu`)

// MobileResult reports mobile-friendliness signals.
type MobileResult struct {
	Metric
	HasViewport       bool `json:"hasViewport"`
	SmallTouchTargets int  `json:"smallTouchTargets"`
	FontSize          int  `json:"fontSize"`
	HasMobileMenu     bool `json:"hasMobileMenu"`
}

func (a *Analyzer) analyzeMobileOptimization(pg *page, websiteType string) MobileResult {
	score := 100
	var issues []string

	hasViewport := pg.doc.Find(`meta[name="viewport"]`).Length() > 0

	// Interactive elements without explicit sizing are treated as small
	// touch targets. A crude proxy, but it catches unstyled link farms.
	smallTouchTargets := 0
	pg.doc.Find("button, a, input").Each(func(_ int, s *goquery.Selection) {
		style, _ := s.Attr("style")
		if !containsAny(style, []string{"width", "height"}) {
			smallTouchTargets++
		}
	})

	if websiteType == TypeFunctional {
		// Functional sites (search pages, tools) get looser thresholds.
		if !hasViewport {
			score -= 15
			issues = append(issues, "Missing viewport meta tag")
		}
		if smallTouchTargets > 20 {
			score -= 10
			issues = append(issues, fmt.Sprintf("Found %d small touch targets", smallTouchTargets))
		}
	} else {
		if !hasViewport {
			score -= 30
			issues = append(issues, "Missing viewport meta tag")
		}
		if smallTouchTargets > 10 {
			score -= 15
			issues = append(issues, fmt.Sprintf("Found %d small touch targets", smallTouchTargets))
		}
	}

	hasMobileMenu := false
	pg.doc.Find("[class]").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		class, _ := s.Attr("class")
		if mobileClassRe.MatchString(class) {
			hasMobileMenu = true
			return false
		}
		return true
	})

	return MobileResult{
		Metric:            Metric{Score: clampScore(score), Issues: issues},
		HasViewport:       hasViewport,
		SmallTouchTargets: smallTouchTargets,
		FontSize:          16, // static default; computed styles need a browser
		HasMobileMenu:     hasMobileMenu,
	}
}
