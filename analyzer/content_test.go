package analyzer

import (
	"strings"
	"testing"
)

func TestKeywordDensity(t *testing.T) {
	stats, avg := keywordDensity("seo seo seo test", []string{"seo"})
	if len(stats) != 1 {
		t.Fatalf("expected 1 stat, got %d", len(stats))
	}
	if stats[0].Count != 3 {
		t.Errorf("count = %d, want 3", stats[0].Count)
	}
	if stats[0].Density != 75.0 {
		t.Errorf("density = %v, want 75.0", stats[0].Density)
	}
	if avg != 75.0 {
		t.Errorf("avg = %v, want 75.0", avg)
	}
}

func TestKeywordDensity_AbsentKeywordsExcluded(t *testing.T) {
	stats, avg := keywordDensity("alpha beta gamma alpha", []string{"alpha", "missing"})
	if len(stats) != 1 {
		t.Fatalf("expected 1 stat, got %d", len(stats))
	}
	if stats[0].Keyword != "alpha" {
		t.Errorf("keyword = %q, want alpha", stats[0].Keyword)
	}
	// 2 of 4 words, the only contributing keyword.
	if avg != 50.0 {
		t.Errorf("avg = %v, want 50.0", avg)
	}
}

func TestKeywordDensity_EmptyText(t *testing.T) {
	stats, avg := keywordDensity("", []string{"seo"})
	if len(stats) != 0 || avg != 0 {
		t.Errorf("empty text: stats=%v avg=%v, want none and 0", stats, avg)
	}
}

func TestKeywordDensity_SortedByDensity(t *testing.T) {
	text := strings.Repeat("alpha ", 5) + strings.Repeat("beta ", 2)
	stats, _ := keywordDensity(text, []string{"beta", "alpha"})
	if len(stats) != 2 {
		t.Fatalf("expected 2 stats, got %d", len(stats))
	}
	if stats[0].Keyword != "alpha" {
		t.Errorf("densest keyword first: got %q", stats[0].Keyword)
	}
}

func TestExtractTopKeywords(t *testing.T) {
	text := "golang golang golang testing testing the the the the and"
	stats := extractTopKeywords(text, 10)
	if len(stats) != 2 {
		t.Fatalf("expected stop words filtered, got %d stats", len(stats))
	}
	if stats[0].Keyword != "golang" || stats[0].Count != 3 {
		t.Errorf("top keyword = %+v, want golang x3", stats[0])
	}
	if stats[1].Keyword != "testing" || stats[1].Count != 2 {
		t.Errorf("second keyword = %+v, want testing x2", stats[1])
	}
}

func TestExtractTopKeywords_Limit(t *testing.T) {
	words := []string{"apple", "banana", "cherry", "damson", "elder"}
	text := strings.Join(words, " ")
	stats := extractTopKeywords(text, 3)
	if len(stats) != 3 {
		t.Errorf("expected 3 stats, got %d", len(stats))
	}
}

func TestReadabilityScore(t *testing.T) {
	sentence := func(words int) string {
		return strings.TrimSpace(strings.Repeat("word ", words)) + ". "
	}

	tests := []struct {
		name string
		text string
		want float64
	}{
		{"in band", sentence(20), 100},
		{"short sentences", sentence(4) + sentence(4), 82}, // 100 - (10-4)*3
		{"long sentences", sentence(40), 80},               // 100 - (40-30)*2
		{"no sentences", "", 70},                           // avg 0 falls in the short band
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := readabilityScore(tt.text); got != tt.want {
				t.Errorf("readabilityScore = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDuplicateSentences(t *testing.T) {
	text := "Same sentence here. Same sentence here. Unique sentence here. Another one."
	if got := duplicateSentences(text); got != 1 {
		t.Errorf("duplicateSentences = %d, want 1", got)
	}
	if got := duplicateSentences("All different. Every one. No repeats."); got != 0 {
		t.Errorf("duplicateSentences = %d, want 0", got)
	}
}

func TestExtractURLKeywords(t *testing.T) {
	got := extractURLKeywords("https://example.com/seo-optimization/best_practices/2024/page.html")
	want := []string{"seo", "optimization", "best", "practices", "page"}
	if len(got) != len(want) {
		t.Fatalf("extractURLKeywords = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("keyword[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestDedupe_KeepsFirstSeenOrder(t *testing.T) {
	got := dedupe([]string{"b", "a", "b", "c", "a"})
	want := []string{"b", "a", "c"}
	if len(got) != len(want) {
		t.Fatalf("dedupe = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("dedupe[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestTokenize(t *testing.T) {
	got := tokenize("Go is FUN!! SEO 优化 x y z ab")
	want := []string{"fun", "seo", "优化"}
	if len(got) != len(want) {
		t.Fatalf("tokenize = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestVisibleText(t *testing.T) {
	html := `<html><head><title>Head title</title><style>body{}</style></head>
<body><h1>Hello</h1><script>var x = 1;</script><p>World</p><noscript>enable js</noscript></body></html>`
	got := visibleText([]byte(html))
	if strings.Contains(got, "Head title") {
		t.Error("head content leaked into visible text")
	}
	if strings.Contains(got, "var x") || strings.Contains(got, "enable js") {
		t.Error("script or noscript content leaked into visible text")
	}
	if !strings.Contains(got, "Hello") || !strings.Contains(got, "World") {
		t.Errorf("visible text missing body content: %q", got)
	}
}
