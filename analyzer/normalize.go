package analyzer

import (
	"regexp"
	"strings"
)

var protocolRe = regexp.MustCompile(`(?i)https?://`)

// Normalize canonicalizes a raw user-supplied URL string. It trims
// whitespace, repairs missing or doubled protocol prefixes (input like
// "https://Https://example.com" happens with copy-pasted URLs), and
// lower-cases the scheme. It never fails and is idempotent.
func Normalize(raw string) string {
	url := strings.TrimSpace(raw)
	lower := strings.ToLower(url)

	httpCount := strings.Count(lower, "http://")
	httpsCount := strings.Count(lower, "https://")

	switch {
	case httpCount+httpsCount > 1:
		// Malformed double-prefixed input: strip every protocol token
		// and prepend a single https.
		url = "https://" + protocolRe.ReplaceAllString(url, "")
	case strings.HasPrefix(lower, "https://"):
		url = "https://" + url[len("https://"):]
	case strings.HasPrefix(lower, "http://"):
		url = "http://" + url[len("http://"):]
	default:
		url = "https://" + url
	}

	return url
}
