package analyzer

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/theOrangeShi/seo-analazing/crawler"
)

// HeadingResult reports the heading hierarchy of the page, plus pages
// missing any heading when site data is available.
type HeadingResult struct {
	Metric
	H1Count         int      `json:"h1Count"`
	H2Count         int      `json:"h2Count"`
	H3Count         int      `json:"h3Count"`
	H1Texts         []string `json:"h1Texts"`
	H2Texts         []string `json:"h2Texts"`
	H3Texts         []string `json:"h3Texts"`
	MissingHeadings int      `json:"missingHeadings"`
	SkippedLevels   int      `json:"skippedLevels"`
}

func (a *Analyzer) analyzeHeadingStructure(pg *page, websiteType string, site *crawler.Result) HeadingResult {
	score := 100
	var issues []string

	h1Texts := headingTexts(pg.doc, "h1")
	h2Texts := headingTexts(pg.doc, "h2")
	h3Texts := headingTexts(pg.doc, "h3")
	h1Count, h2Count, h3Count := len(h1Texts), len(h2Texts), len(h3Texts)

	if websiteType == TypeFunctional {
		// An H1 is nice-to-have for tool pages, not required.
		if h1Count == 0 {
			score -= 10
			issues = append(issues, "Missing H1 tag")
		} else if h1Count > 2 {
			score -= 15
			issues = append(issues, fmt.Sprintf("Found %d H1 tags", h1Count))
		}
		if h2Count < 1 {
			score -= 10
			issues = append(issues, fmt.Sprintf("Few H2 tags: %d", h2Count))
		}
	} else {
		if h1Count == 0 {
			score -= 30
			issues = append(issues, "Missing H1 tag")
		} else if h1Count > 1 {
			score -= 20
			issues = append(issues, fmt.Sprintf("Found %d H1 tags", h1Count))
		}
		if h2Count < 3 {
			score -= 15
			issues = append(issues, fmt.Sprintf("Few H2 tags: %d", h2Count))
		}
	}

	skippedLevels := countSkippedLevels(pg.doc)
	if skippedLevels > 0 {
		score -= skippedLevels * 5
		issues = append(issues, fmt.Sprintf("Heading hierarchy skips a level %d times", skippedLevels))
	}

	missingHeadings := 0
	if site != nil {
		for _, p := range site.Pages {
			if !p.HasHeadings {
				missingHeadings++
			}
		}
		if missingHeadings > 0 {
			score -= min(15, missingHeadings*3)
			issues = append(issues, fmt.Sprintf("%d pages have no heading tags", missingHeadings))
		}
	}

	return HeadingResult{
		Metric:          Metric{Score: clampScore(score), Issues: issues},
		H1Count:         h1Count,
		H2Count:         h2Count,
		H3Count:         h3Count,
		H1Texts:         h1Texts,
		H2Texts:         h2Texts,
		H3Texts:         h3Texts,
		MissingHeadings: missingHeadings,
		SkippedLevels:   skippedLevels,
	}
}

func headingTexts(doc *goquery.Document, tag string) []string {
	var texts []string
	doc.Find(tag).Each(func(_ int, s *goquery.Selection) {
		texts = append(texts, strings.TrimSpace(s.Text()))
	})
	return texts
}

// countSkippedLevels walks every heading in document order and counts
// transitions that jump more than one level down (e.g. H1 straight to H3).
func countSkippedLevels(doc *goquery.Document) int {
	skipped := 0
	prev := 0
	doc.Find("h1, h2, h3, h4, h5, h6").Each(func(_ int, s *goquery.Selection) {
		level := int(goquery.NodeName(s)[1] - '0')
		if prev > 0 && level-prev > 1 {
			skipped++
		}
		prev = level
	})
	return skipped
}
