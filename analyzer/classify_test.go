package analyzer

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
)

func mustDoc(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		t.Fatalf("parse test document: %v", err)
	}
	return doc
}

func TestClassify(t *testing.T) {
	longText := strings.Repeat("word ", 250)
	midText := strings.Repeat("word ", 80)

	tests := []struct {
		name string
		url  string
		html string
		text string
		want string
	}{
		{
			name: "functional title keyword",
			url:  "https://example.com",
			html: "<html><head><title>Search Tools</title></head><body></body></html>",
			text: longText,
			want: TypeFunctional,
		},
		{
			name: "functional domain",
			url:  "https://www.google.com",
			html: "<html><head><title>Untitled</title></head><body></body></html>",
			text: longText,
			want: TypeFunctional,
		},
		{
			name: "ecommerce title keyword",
			url:  "https://example.com",
			html: "<html><head><title>Buy widgets at low price</title></head><body></body></html>",
			text: longText,
			want: TypeEcommerce,
		},
		{
			name: "ecommerce domain",
			url:  "https://myshop.example.com",
			html: "<html><head><title>Widgets</title></head><body></body></html>",
			text: longText,
			want: TypeEcommerce,
		},
		{
			name: "content title keyword",
			url:  "https://example.com",
			html: "<html><head><title>Company Blog</title></head><body></body></html>",
			text: "",
			want: TypeContent,
		},
		{
			name: "long text fallback",
			url:  "https://example.com",
			html: "<html><head><title>Widgets</title></head><body></body></html>",
			text: longText,
			want: TypeContent,
		},
		{
			name: "short text fallback",
			url:  "https://example.com",
			html: "<html><head><title>Widgets</title></head><body></body></html>",
			text: "tiny",
			want: TypeFunctional,
		},
		{
			name: "mid-length text fallback",
			url:  "https://example.com",
			html: "<html><head><title>Widgets</title></head><body></body></html>",
			text: midText,
			want: TypeContent,
		},
		{
			name: "no title",
			url:  "https://example.com",
			html: "<html><head></head><body></body></html>",
			text: "tiny",
			want: TypeFunctional,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.url, mustDoc(t, tt.html), tt.text)
			if got != tt.want {
				t.Errorf("Classify() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestClassify_FunctionalBeatsEcommerce(t *testing.T) {
	// "search" and "shop" both present; the functional check runs first.
	doc := mustDoc(t, "<html><head><title>Search our shop</title></head><body></body></html>")
	if got := Classify("https://example.com", doc, ""); got != TypeFunctional {
		t.Errorf("Classify() = %q, want %q", got, TypeFunctional)
	}
}
