package analyzer

import (
	"log/slog"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Website type categories. Decided once per analysis; every analyzer and
// the weight profile selection key off the result.
const (
	TypeContent    = "content"
	TypeFunctional = "functional"
	TypeEcommerce  = "ecommerce"
)

// Keyword sets for the classifier decision list. Fixed configuration
// data, not learned.
var (
	functionalKeywords = []string{"search", "google", "bing", "yahoo", "login", "sign in", "register", "tool", "calculator"}
	functionalDomains  = []string{"google", "bing", "yahoo"}
	ecommerceKeywords  = []string{"shop", "store", "buy", "cart", "checkout", "product", "price", "sale"}
	ecommerceDomains   = []string{"shop", "store", "mall"}
	contentKeywords    = []string{"blog", "news", "article", "about", "company", "home", "welcome"}
)

// Classify assigns a website type from title/domain keywords, falling back
// to visible text length. First match in the decision list wins; any
// failure defaults to content.
func Classify(pageURL string, doc *goquery.Document, text string) string {
	parsed, err := url.Parse(pageURL)
	if err != nil {
		slog.Warn("website type detection failed", "url", pageURL, "error", err)
		return TypeContent
	}
	domain := strings.ToLower(parsed.Host)
	title := strings.ToLower(strings.TrimSpace(doc.Find("title").First().Text()))

	if containsAny(title, functionalKeywords) || containsAny(domain, functionalDomains) {
		return TypeFunctional
	}
	if containsAny(title, ecommerceKeywords) || containsAny(domain, ecommerceDomains) {
		return TypeEcommerce
	}
	if containsAny(title, contentKeywords) {
		return TypeContent
	}

	switch {
	case len(text) > 1000:
		return TypeContent
	case len(text) < 200:
		return TypeFunctional
	default:
		return TypeContent
	}
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}
