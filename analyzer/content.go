package analyzer

import (
	"fmt"
	"math"
	"net/url"
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
)

var (
	pathExtRe   = regexp.MustCompile(`\.(html|php|asp|jsp|htm)$`)
	pathSplitRe = regexp.MustCompile(`[/\-_]`)
	commaRe     = regexp.MustCompile(`[,，、]`)
	digitsRe    = regexp.MustCompile(`^[0-9]+$`)
)

// stopWords excluded from top-keyword extraction. English plus common
// Chinese function words; single-character CJK entries never survive the
// tokenizer but are kept with the rest of the table.
var stopWords = map[string]struct{}{}

func init() {
	for _, w := range []string{
		"the", "a", "an", "and", "or", "but", "in", "on", "at", "to", "for",
		"of", "with", "by", "from", "as", "is", "was", "are", "be", "been",
		"have", "has", "had", "do", "does", "did", "will", "would", "could",
		"should", "may", "might", "can", "this", "that", "these", "those",
		"的", "了", "在", "是", "我", "有", "和", "就", "不", "人", "都", "一",
		"一个", "上", "也", "很", "到", "说", "要", "去", "你", "会", "着", "没有",
		"看", "好", "自己", "这", "那", "里", "就是", "为", "能", "可以",
	} {
		stopWords[w] = struct{}{}
	}
}

// KeywordStat is one keyword with its occurrence count and density
// (percentage of the page's word count).
type KeywordStat struct {
	Keyword string  `json:"keyword"`
	Count   int     `json:"count"`
	Density float64 `json:"density"`
}

// KeywordSources breaks extracted keywords down by where they came from.
type KeywordSources struct {
	URL          []string `json:"url"`
	Title        []string `json:"title"`
	Description  []string `json:"description"`
	MetaKeywords []string `json:"metaKeywords"`
	H1           []string `json:"h1"`
	H2           []string `json:"h2"`
}

// ContentResult reports word count, keyword coverage and density,
// readability, and duplicate-sentence findings.
type ContentResult struct {
	Metric
	WordCount         int            `json:"wordCount"`
	KeywordDensity    float64        `json:"keywordDensity"`
	ReadabilityScore  int            `json:"readabilityScore"`
	DuplicateContent  int            `json:"duplicateContent"`
	InternalLinks     int            `json:"internalLinks"`
	ExtractedKeywords []string       `json:"extractedKeywords"`
	TopKeywords       []KeywordStat  `json:"topKeywords"`
	KeywordSources    KeywordSources `json:"keywordSources"`
	KeywordStats      []KeywordStat  `json:"keywordStats"`
}

func (a *Analyzer) analyzeContentQuality(pg *page, websiteType string) ContentResult {
	score := 100
	var issues []string

	wordCount := len(strings.Fields(pg.text))

	urlKeywords := extractURLKeywords(pg.url)
	sources := extractMetadataKeywords(pg.doc)
	sources.URL = urlKeywords

	// Candidate set: URL path, title, meta keywords, and H1 tokens,
	// deduplicated in first-seen order. Description and H2 tokens are
	// reported but do not feed the candidates.
	candidates := dedupe(concat(urlKeywords, sources.Title, sources.MetaKeywords, sources.H1))

	stats, avgDensity := keywordDensity(pg.text, candidates)
	topKeywords := extractTopKeywords(pg.text, 10)

	readability := readabilityScore(pg.text)
	duplicates := duplicateSentences(pg.text)
	internalLinks := pg.doc.Find("a[href]").Length()

	switch websiteType {
	case TypeFunctional:
		if wordCount < 50 {
			score -= 10
			issues = append(issues, fmt.Sprintf("Thin content: %d words", wordCount))
		} else if wordCount < 100 {
			score -= 5
			issues = append(issues, fmt.Sprintf("Thin content: %d words", wordCount))
		}
		if internalLinks < 2 {
			score -= 5
			issues = append(issues, "Few internal links")
		}
		if len(candidates) == 0 {
			score -= 5
			issues = append(issues, "No keywords detected")
		}
	case TypeEcommerce:
		if wordCount < 200 {
			score -= 15
			issues = append(issues, fmt.Sprintf("Thin content: %d words", wordCount))
		}
		if internalLinks < 3 {
			score -= 10
			issues = append(issues, "Few internal links")
		}
		if len(candidates) < 3 {
			score -= 10
			issues = append(issues, fmt.Sprintf("Too few keywords: %d", len(candidates)))
		}
		if avgDensity < 0.5 {
			score -= 10
			issues = append(issues, fmt.Sprintf("Keyword density too low: %.2f%%", avgDensity))
		} else if avgDensity > 5 {
			score -= 15
			issues = append(issues, fmt.Sprintf("Keyword density too high: %.2f%% (may read as keyword stuffing)", avgDensity))
		}
	default:
		if wordCount < 300 {
			score -= 20
			issues = append(issues, fmt.Sprintf("Thin content: %d words", wordCount))
		}
		if internalLinks < 5 {
			score -= 10
			issues = append(issues, "Few internal links")
		}
		if len(candidates) < 5 {
			score -= 15
			issues = append(issues, fmt.Sprintf("Too few keywords: %d (5 or more recommended)", len(candidates)))
		}
		if avgDensity < 1 {
			score -= 15
			issues = append(issues, fmt.Sprintf("Keyword density too low: %.2f%% (1-3%% recommended)", avgDensity))
		} else if avgDensity > 3 {
			score -= 20
			issues = append(issues, fmt.Sprintf("Keyword density too high: %.2f%% (may read as keyword stuffing)", avgDensity))
		}
	}

	if readability < 60 {
		score -= 10
		issues = append(issues, fmt.Sprintf("Poor readability: %d", int(readability)))
	}
	if duplicates > 3 {
		score -= 15
		issues = append(issues, fmt.Sprintf("Found %d duplicated passages", duplicates))
	}

	extracted := candidates
	if len(extracted) > 15 {
		extracted = extracted[:15]
	}
	if len(sources.Description) > 10 {
		sources.Description = sources.Description[:10]
	}
	if len(stats) > 10 {
		stats = stats[:10]
	}

	return ContentResult{
		Metric:            Metric{Score: clampScore(score), Issues: issues},
		WordCount:         wordCount,
		KeywordDensity:    round2(avgDensity),
		ReadabilityScore:  int(readability),
		DuplicateContent:  duplicates,
		InternalLinks:     internalLinks,
		ExtractedKeywords: extracted,
		TopKeywords:       topKeywords,
		KeywordSources:    sources,
		KeywordStats:      stats,
	}
}

// extractURLKeywords pulls alphabetic tokens from the URL path: file
// extensions stripped, split on slash/hyphen/underscore, digits and
// short fragments discarded.
func extractURLKeywords(rawURL string) []string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return nil
	}
	path := pathExtRe.ReplaceAllString(parsed.Path, "")
	var keywords []string
	for _, part := range pathSplitRe.Split(path, -1) {
		part = strings.ToLower(part)
		if utf8.RuneCountInString(part) > 2 && !digitsRe.MatchString(part) {
			keywords = append(keywords, part)
		}
	}
	return keywords
}

// extractMetadataKeywords gathers keyword tokens from the title, meta
// description, meta keywords, H1s, and the first five H2s.
func extractMetadataKeywords(doc *goquery.Document) KeywordSources {
	sources := KeywordSources{}

	sources.Title = longTokens(doc.Find("title").First().Text())

	if desc, ok := doc.Find(`meta[name="description"]`).First().Attr("content"); ok {
		sources.Description = longTokens(desc)
	}

	if kw, ok := doc.Find(`meta[name="keywords"]`).First().Attr("content"); ok {
		for _, k := range commaRe.Split(kw, -1) {
			if k = strings.ToLower(strings.TrimSpace(k)); k != "" {
				sources.MetaKeywords = append(sources.MetaKeywords, k)
			}
		}
	}

	doc.Find("h1").Each(func(_ int, s *goquery.Selection) {
		sources.H1 = append(sources.H1, longTokens(s.Text())...)
	})

	doc.Find("h2").Each(func(i int, s *goquery.Selection) {
		if i < 5 {
			sources.H2 = append(sources.H2, longTokens(s.Text())...)
		}
	})

	return sources
}

// longTokens tokenizes text and keeps tokens longer than two runes.
func longTokens(text string) []string {
	var out []string
	for _, w := range tokenize(text) {
		if utf8.RuneCountInString(w) > 2 {
			out = append(out, w)
		}
	}
	return out
}

// keywordDensity counts case-insensitive substring occurrences of up to
// the first ten keywords within the full text, expresses each as a
// percentage of the tokenized word count, and averages across keywords
// that appear at least once.
func keywordDensity(text string, keywords []string) ([]KeywordStat, float64) {
	textLower := strings.ToLower(text)
	totalWords := len(tokenize(text))
	if totalWords == 0 {
		return nil, 0
	}

	if len(keywords) > 10 {
		keywords = keywords[:10]
	}

	var stats []KeywordStat
	for _, kw := range keywords {
		count := strings.Count(textLower, strings.ToLower(kw))
		if count > 0 {
			stats = append(stats, KeywordStat{
				Keyword: kw,
				Count:   count,
				Density: round2(float64(count) / float64(totalWords) * 100),
			})
		}
	}

	sort.SliceStable(stats, func(i, j int) bool { return stats[i].Density > stats[j].Density })

	if len(stats) == 0 {
		return stats, 0
	}
	sum := 0.0
	for _, s := range stats {
		sum += s.Density
	}
	return stats, round2(sum / float64(len(stats)))
}

// extractTopKeywords returns the most frequent non-stop-word tokens with
// their density relative to the full token count.
func extractTopKeywords(text string, topN int) []KeywordStat {
	words := tokenize(text)
	if len(words) == 0 {
		return nil
	}

	counts := make(map[string]int)
	var order []string
	for _, w := range words {
		if _, stop := stopWords[w]; stop || utf8.RuneCountInString(w) <= 2 {
			continue
		}
		if counts[w] == 0 {
			order = append(order, w)
		}
		counts[w]++
	}

	sort.SliceStable(order, func(i, j int) bool { return counts[order[i]] > counts[order[j]] })
	if len(order) > topN {
		order = order[:topN]
	}

	stats := make([]KeywordStat, 0, len(order))
	for _, w := range order {
		stats = append(stats, KeywordStat{
			Keyword: w,
			Count:   counts[w],
			Density: round2(float64(counts[w]) / float64(len(words)) * 100),
		})
	}
	return stats
}

// readabilityScore approximates readability from mean sentence length.
// The 10-30 words-per-sentence band scores 100; distance outside the
// band is penalized linearly and floored at 0.
func readabilityScore(text string) float64 {
	sents := sentences(text)
	avg := 0.0
	if len(sents) > 0 {
		totalWords := 0
		for _, s := range sents {
			totalWords += len(strings.Fields(s))
		}
		avg = float64(totalWords) / float64(len(sents))
	}

	switch {
	case avg > 30:
		return math.Max(0, 100-(avg-30)*2)
	case avg < 10:
		return math.Max(0, 100-(10-avg)*3)
	default:
		return 100
	}
}

// duplicateSentences counts distinct sentences that occur more than once.
func duplicateSentences(text string) int {
	counts := make(map[string]int)
	for _, s := range sentences(text) {
		counts[s]++
	}
	duplicates := 0
	for _, n := range counts {
		if n > 1 {
			duplicates++
		}
	}
	return duplicates
}

func concat(lists ...[]string) []string {
	var out []string
	for _, l := range lists {
		out = append(out, l...)
	}
	return out
}

func dedupe(words []string) []string {
	seen := make(map[string]struct{}, len(words))
	var out []string
	for _, w := range words {
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	return out
}
