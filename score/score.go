// Package score turns per-metric scores into the weighted report total.
// Weight profiles, recommendations, and catalog metadata are immutable
// package-level configuration; nothing here mutates at runtime.
package score

import "math"

// Weight profiles per website type. Each maps metric name to its
// contribution weight in the aggregate score.
var weightProfiles = map[string]map[string]int{
	"content": {
		"pageSpeed":          15,
		"mobileOptimization": 12,
		"metaTags":           10,
		"headingStructure":   8,
		"imageOptimization":  7,
		"internalLinking":    8,
		"sslCertificate":     10,
		"socialMediaTags":    5,
		"contentQuality":     12,
		"urlStructure":       6,
		"robotsTxt":          4,
		"sitemap":            3,
	},
	"functional": {
		"pageSpeed":          20,
		"mobileOptimization": 15,
		"metaTags":           5,
		"headingStructure":   3,
		"imageOptimization":  5,
		"internalLinking":    8,
		"sslCertificate":     15,
		"socialMediaTags":    2,
		"contentQuality":     5,
		"urlStructure":       8,
		"robotsTxt":          6,
		"sitemap":            8,
	},
	"ecommerce": {
		"pageSpeed":          12,
		"mobileOptimization": 15,
		"metaTags":           12,
		"headingStructure":   6,
		"imageOptimization":  12,
		"internalLinking":    10,
		"sslCertificate":     12,
		"socialMediaTags":    8,
		"contentQuality":     8,
		"urlStructure":       8,
		"robotsTxt":          5,
		"sitemap":            2,
	},
}

// Aggregate computes the weighted mean of the metric scores present in
// both the result set and the website type's weight profile, rescaled so
// a perfect page lands at 120, rounded to one decimal place. Metrics
// absent from the result set are excluded entirely; they do not count as
// zero. A zero total weight yields 0.
func Aggregate(scores map[string]int, websiteType string) float64 {
	profile, ok := weightProfiles[websiteType]
	if !ok {
		profile = weightProfiles["content"]
	}
	return aggregate(scores, profile)
}

// aggregate applies one weight profile to a result set.
func aggregate(scores, profile map[string]int) float64 {
	weightedSum := 0
	totalWeight := 0
	for metric, weight := range profile {
		score, present := scores[metric]
		if !present {
			continue
		}
		weightedSum += score * weight
		totalWeight += weight
	}

	if totalWeight == 0 {
		return 0
	}
	base := float64(weightedSum) / float64(totalWeight)
	return math.Round(base*1.2*10) / 10
}

// StatusFor maps a score to its label. The same thresholds apply to
// per-metric scores and the rescaled report total.
func StatusFor(score float64) string {
	switch {
	case score >= 90:
		return "excellent"
	case score >= 75:
		return "good"
	case score >= 60:
		return "warning"
	default:
		return "poor"
	}
}
