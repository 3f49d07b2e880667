package analyzer

import (
	"github.com/theOrangeShi/seo-analazing/models"
	"github.com/theOrangeShi/seo-analazing/score"
)

// Report shapes the outcome into the API response: weighted total,
// status labels, and the per-metric detail blocks.
func (o *Outcome) Report() *models.Report {
	results := make(map[string]models.MetricReport, len(o.Metrics))
	for _, m := range o.Metrics {
		details := m.Result.MetricIssues()
		if details == nil {
			details = []string{}
		}
		results[m.Name] = models.MetricReport{
			Score:           m.Result.MetricScore(),
			Status:          score.StatusFor(float64(m.Result.MetricScore())),
			Details:         details,
			Recommendations: score.Recommendations(m.Name),
			SpecificData:    m.Result,
		}
	}

	total := score.Aggregate(o.Scores(), o.WebsiteType)
	return &models.Report{
		TotalScore:  total,
		Status:      score.StatusFor(total),
		WebsiteType: o.WebsiteType,
		Results:     results,
	}
}
