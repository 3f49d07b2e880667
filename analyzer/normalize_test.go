package analyzer

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"bare domain", "example.com", "https://example.com"},
		{"bare domain with path", "example.com/page", "https://example.com/page"},
		{"already https", "https://example.com", "https://example.com"},
		{"already http", "http://example.com", "http://example.com"},
		{"uppercase scheme", "HTTPS://example.com", "https://example.com"},
		{"mixed case scheme", "HtTp://example.com", "http://example.com"},
		{"doubled prefix", "https://http://example.com", "https://example.com"},
		{"doubled https prefix", "https://https://example.com", "https://example.com"},
		{"surrounding whitespace", "  example.com  ", "https://example.com"},
		{"whitespace and scheme", " https://example.com ", "https://example.com"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.in); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"example.com",
		"https://example.com/path?q=1",
		"HTTP://EXAMPLE.COM",
		"https://http://example.com",
		"  shop.example.com/cart  ",
	}
	for _, in := range inputs {
		once := Normalize(in)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: %q then %q", in, once, twice)
		}
	}
}

func TestNormalize_PreservesCasePastScheme(t *testing.T) {
	got := Normalize("HTTPS://Example.com/Path")
	want := "https://Example.com/Path"
	if got != want {
		t.Errorf("Normalize = %q, want %q", got, want)
	}
}
