package analyzer

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ImageResult reports alt coverage, format adoption, and lazy loading.
type ImageResult struct {
	Metric
	TotalImages int `json:"totalImages"`
	LargeImages int `json:"largeImages"`
	MissingAlt  int `json:"missingAlt"`
	WebpImages  int `json:"webpImages"`
	LazyLoaded  int `json:"lazyLoaded"`
}

func (a *Analyzer) analyzeImageOptimization(pg *page, websiteType string) ImageResult {
	score := 100
	var issues []string

	totalImages := 0
	largeImages := 0
	missingAlt := 0
	webpImages := 0
	lazyLoaded := 0

	pg.doc.Find("img").Each(func(_ int, s *goquery.Selection) {
		totalImages++

		if alt, _ := s.Attr("alt"); alt == "" {
			missingAlt++
		}

		src, _ := s.Attr("src")
		lower := strings.ToLower(src)
		if strings.HasSuffix(lower, ".webp") {
			webpImages++
		}
		// Name-based size heuristic; actual byte sizes are the page
		// speed analyzer's job.
		if strings.Contains(lower, "large") || strings.Contains(lower, "big") {
			largeImages++
		}

		if loading, _ := s.Attr("loading"); loading == "lazy" {
			lazyLoaded++
		}
	})

	if websiteType == TypeFunctional {
		if float64(missingAlt) > float64(totalImages)*0.5 {
			score -= missingAlt * 2
			issues = append(issues, fmt.Sprintf("%d images missing alt attributes", missingAlt))
		}
		if largeImages > 5 {
			score -= 10
			issues = append(issues, fmt.Sprintf("%d large images", largeImages))
		}
		if float64(webpImages) < float64(totalImages)*0.3 {
			score -= 5
			issues = append(issues, "Few WebP format images")
		}
	} else {
		if missingAlt > 0 {
			score -= missingAlt * 5
			issues = append(issues, fmt.Sprintf("%d images missing alt attributes", missingAlt))
		}
		if largeImages > 3 {
			score -= 15
			issues = append(issues, fmt.Sprintf("%d large images", largeImages))
		}
		if float64(webpImages) < float64(totalImages)*0.5 {
			score -= 10
			issues = append(issues, "Few WebP format images")
		}
	}

	return ImageResult{
		Metric:      Metric{Score: clampScore(score), Issues: issues},
		TotalImages: totalImages,
		LargeImages: largeImages,
		MissingAlt:  missingAlt,
		WebpImages:  webpImages,
		LazyLoaded:  lazyLoaded,
	}
}
