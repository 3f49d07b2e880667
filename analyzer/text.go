package analyzer

import (
	"bytes"
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

// wordRe matches runs of at least 3 Latin letters or at least 2 CJK
// characters; everything else is punctuation or noise for keyword work.
var wordRe = regexp.MustCompile(`\b[a-zA-Z]{3,}\b|[\x{4e00}-\x{9fa5}]{2,}`)

// sentenceRe splits text on Latin and CJK sentence terminators.
var sentenceRe = regexp.MustCompile(`[.!?。！？]`)

// visibleText extracts the text a visitor would read from within <body>,
// stripping tags and <script>/<style>/<noscript> content.
func visibleText(body []byte) string {
	tokenizer := html.NewTokenizer(bytes.NewReader(body))
	var buf strings.Builder
	inBody := false
	skipDepth := 0

	for {
		tt := tokenizer.Next()
		switch tt {
		case html.ErrorToken:
			return buf.String()
		case html.StartTagToken:
			tn, _ := tokenizer.TagName()
			tag := string(tn)
			if tag == "body" {
				inBody = true
			}
			if tag == "script" || tag == "style" || tag == "noscript" {
				skipDepth++
			}
		case html.EndTagToken:
			tn, _ := tokenizer.TagName()
			tag := string(tn)
			if tag == "script" || tag == "style" || tag == "noscript" {
				if skipDepth > 0 {
					skipDepth--
				}
			}
		case html.TextToken:
			if inBody && skipDepth == 0 {
				text := strings.TrimSpace(string(tokenizer.Text()))
				if text != "" {
					buf.WriteString(text)
					buf.WriteByte(' ')
				}
			}
		}
	}
}

// tokenize extracts keyword-grade tokens from text, lower-cased.
func tokenize(text string) []string {
	return wordRe.FindAllString(strings.ToLower(text), -1)
}

// sentences splits text into trimmed, non-empty sentences.
func sentences(text string) []string {
	parts := sentenceRe.Split(text, -1)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}
