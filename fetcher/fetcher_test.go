package fetcher

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/theOrangeShi/seo-analazing/config"
)

func testClient() *Client {
	return New(config.FetchConfig{
		Timeout:      5 * time.Second,
		ProbeTimeout: 5 * time.Second,
		MaxBodyBytes: 1 << 20,
		UserAgent:    "seoaudit-test",
	})
}

func TestGet(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ua := r.Header.Get("User-Agent"); ua != "seoaudit-test" {
			t.Errorf("User-Agent = %q", ua)
		}
		w.Write([]byte("<html>hello</html>"))
	}))
	defer srv.Close()

	resp, err := testClient().Get(context.Background(), srv.URL, true)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d", resp.StatusCode)
	}
	if string(resp.Body) != "<html>hello</html>" {
		t.Errorf("body = %q", resp.Body)
	}
	if resp.Elapsed <= 0 {
		t.Error("elapsed not recorded")
	}
}

func TestGet_BodyCap(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(strings.Repeat("x", 4096)))
	}))
	defer srv.Close()

	c := New(config.FetchConfig{
		Timeout:      5 * time.Second,
		ProbeTimeout: 5 * time.Second,
		MaxBodyBytes: 100,
		UserAgent:    "seoaudit-test",
	})
	resp, err := c.Get(context.Background(), srv.URL, true)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if len(resp.Body) != 100 {
		t.Errorf("body length = %d, want capped at 100", len(resp.Body))
	}
}

func TestGet_FollowsRedirects(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/final", http.StatusMovedPermanently)
	})
	mux.HandleFunc("/final", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("landed"))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	resp, err := testClient().Get(context.Background(), srv.URL, true)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if resp.FinalURL != srv.URL+"/final" {
		t.Errorf("FinalURL = %q, want %q", resp.FinalURL, srv.URL+"/final")
	}
}

func TestHead(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodHead {
			t.Errorf("method = %s, want HEAD", r.Method)
		}
		w.Header().Set("Content-Length", "1234")
	}))
	defer srv.Close()

	resp, err := testClient().Head(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("Head: %v", err)
	}
	if len(resp.Body) != 0 {
		t.Errorf("HEAD response carried a body of %d bytes", len(resp.Body))
	}
	if resp.Header.Get("Content-Length") != "1234" {
		t.Errorf("Content-Length = %q", resp.Header.Get("Content-Length"))
	}
}

func TestGet_VerifyFallback(t *testing.T) {
	srv := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("insecure ok"))
	}))
	defer srv.Close()

	c := testClient()

	_, err := c.Get(context.Background(), srv.URL, true)
	if err == nil {
		t.Fatal("expected certificate verification to fail for self-signed server")
	}
	if !IsVerifyError(err) {
		t.Fatalf("IsVerifyError = false for %v", err)
	}

	resp, err := c.Get(context.Background(), srv.URL, false)
	if err != nil {
		t.Fatalf("unverified Get: %v", err)
	}
	if string(resp.Body) != "insecure ok" {
		t.Errorf("body = %q", resp.Body)
	}
}

func TestGet_ContextCancellation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	if _, err := testClient().Get(ctx, srv.URL, true); err == nil {
		t.Fatal("expected error after context deadline")
	}
}
