package analyzer

// SocialResult reports Open Graph and Twitter Card coverage.
type SocialResult struct {
	Metric
	HasOpenGraph     bool `json:"hasOpenGraph"`
	HasTwitterCards  bool `json:"hasTwitterCards"`
	HasOGImage       bool `json:"hasOGImage"`
	HasOGDescription bool `json:"hasOGDescription"`
}

func (a *Analyzer) analyzeSocialMediaTags(pg *page, websiteType string) SocialResult {
	score := 100
	var issues []string

	hasOpenGraph := pg.doc.Find(`meta[property^="og:"]`).Length() > 0
	hasTwitterCards := pg.doc.Find(`meta[name^="twitter:"]`).Length() > 0
	hasOGImage := pg.doc.Find(`meta[property="og:image"]`).Length() > 0
	hasOGDescription := pg.doc.Find(`meta[property="og:description"]`).Length() > 0

	// Social sharing tags are meaningless for functional sites, so no
	// penalties apply there.
	if websiteType != TypeFunctional {
		if !hasOpenGraph {
			score -= 20
			issues = append(issues, "Missing Open Graph tags")
		}
		if !hasTwitterCards {
			score -= 15
			issues = append(issues, "Missing Twitter Cards tags")
		}
		if !hasOGImage {
			score -= 10
			issues = append(issues, "Missing og:image")
		}
		if !hasOGDescription {
			score -= 10
			issues = append(issues, "Missing og:description")
		}
	}

	return SocialResult{
		Metric:           Metric{Score: clampScore(score), Issues: issues},
		HasOpenGraph:     hasOpenGraph,
		HasTwitterCards:  hasTwitterCards,
		HasOGImage:       hasOGImage,
		HasOGDescription: hasOGDescription,
	}
}
