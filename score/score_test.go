package score

import "testing"

func TestAggregate_WeightedMean(t *testing.T) {
	// Restricting the result set to two metrics isolates the weighted
	// mean: (100*15 + 50*12) / 27 * 1.2 = 93.3.
	scores := map[string]int{
		"pageSpeed":          100,
		"mobileOptimization": 50,
	}
	got := Aggregate(scores, "content")
	want := 93.3
	if got != want {
		t.Errorf("Aggregate() = %v, want %v", got, want)
	}
}

func TestAggregate_FixedProfile(t *testing.T) {
	// (100*10 + 50*20) / 30 * 1.2 = 80.0
	got := aggregate(map[string]int{"a": 100, "b": 50}, map[string]int{"a": 10, "b": 20})
	if got != 80.0 {
		t.Errorf("aggregate() = %v, want 80.0", got)
	}
	if status := StatusFor(got); status != "good" {
		t.Errorf("StatusFor(80.0) = %q, want good", status)
	}
}

func TestAggregate_PerfectPage(t *testing.T) {
	scores := make(map[string]int)
	for metric := range weightProfiles["content"] {
		scores[metric] = 100
	}
	if got := Aggregate(scores, "content"); got != 120.0 {
		t.Errorf("Aggregate() = %v, want 120.0", got)
	}
}

func TestAggregate_AbsentMetricsExcluded(t *testing.T) {
	full := make(map[string]int)
	for metric := range weightProfiles["content"] {
		full[metric] = 80
	}
	partial := map[string]int{"pageSpeed": 80, "sitemap": 80}

	fullScore := Aggregate(full, "content")
	partialScore := Aggregate(partial, "content")
	if fullScore != partialScore {
		t.Errorf("absent metrics should not drag the mean: full=%v partial=%v", fullScore, partialScore)
	}
}

func TestAggregate_EmptyScores(t *testing.T) {
	if got := Aggregate(map[string]int{}, "content"); got != 0 {
		t.Errorf("Aggregate(empty) = %v, want 0", got)
	}
}

func TestAggregate_UnknownTypeFallsBackToContent(t *testing.T) {
	scores := map[string]int{"pageSpeed": 100, "mobileOptimization": 50}
	if got, want := Aggregate(scores, "portal"), Aggregate(scores, "content"); got != want {
		t.Errorf("unknown type = %v, want content profile result %v", got, want)
	}
}

func TestAggregate_ProfilesDiffer(t *testing.T) {
	// pageSpeed weighs 20 for functional vs 12 for ecommerce, so the
	// same result set must aggregate differently.
	scores := map[string]int{"pageSpeed": 100, "contentQuality": 0}
	if Aggregate(scores, "functional") == Aggregate(scores, "ecommerce") {
		t.Error("functional and ecommerce profiles produced identical aggregates")
	}
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{100, "excellent"},
		{90, "excellent"},
		{89.9, "good"},
		{75, "good"},
		{74.9, "warning"},
		{60, "warning"},
		{59.9, "poor"},
		{0, "poor"},
		{120, "excellent"},
	}
	for _, tt := range tests {
		if got := StatusFor(tt.score); got != tt.want {
			t.Errorf("StatusFor(%v) = %q, want %q", tt.score, got, tt.want)
		}
	}
}

func TestRecommendations_KnownMetric(t *testing.T) {
	recs := Recommendations("pageSpeed")
	if len(recs) == 0 {
		t.Fatal("expected recommendations for pageSpeed")
	}
}

func TestRecommendations_UnknownMetric(t *testing.T) {
	recs := Recommendations("nosuchmetric")
	if recs == nil {
		t.Fatal("unknown metric should still return a non-nil fallback")
	}
}

func TestCatalog_CoversAllWeightedMetrics(t *testing.T) {
	catalog := Catalog()
	for metric := range weightProfiles["content"] {
		if _, ok := catalog[metric]; !ok {
			t.Errorf("catalog missing metric %q", metric)
		}
	}
}

func TestCatalog_ReturnsCopy(t *testing.T) {
	first := Catalog()
	for k := range first {
		entry := first[k]
		entry.Weight = -1
		first[k] = entry
	}
	second := Catalog()
	for _, info := range second {
		if info.Weight == -1 {
			t.Fatal("Catalog exposed shared mutable state")
		}
	}
}
