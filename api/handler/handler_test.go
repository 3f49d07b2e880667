package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/theOrangeShi/seo-analazing/analyzer"
	"github.com/theOrangeShi/seo-analazing/cache"
	"github.com/theOrangeShi/seo-analazing/config"
	"github.com/theOrangeShi/seo-analazing/crawler"
	"github.com/theOrangeShi/seo-analazing/fetcher"
	"github.com/theOrangeShi/seo-analazing/models"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestAnalyzer() *analyzer.Analyzer {
	fetch := fetcher.New(config.FetchConfig{
		Timeout:      5 * time.Second,
		ProbeTimeout: 5 * time.Second,
		MaxBodyBytes: 1 << 20,
		UserAgent:    "seoaudit-test",
	})
	crawl := crawler.New(fetch, config.CrawlConfig{
		MaxPages:    5,
		MaxDepth:    1,
		Delay:       0,
		PageTimeout: 5 * time.Second,
	})
	return analyzer.New(fetch, crawl)
}

func newTargetSite(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `<html><head><title>Company Blog</title>
<meta name="description" content="A blog about interesting company things and more."></head>
<body><h1>Welcome</h1><h2>First</h2><h2>Second</h2><h2>Third</h2>
<p>Plenty of readable words live here for the content checks to chew on today.</p>
<a href="/a">a</a></body></html>`)
	}))
	t.Cleanup(srv.Close)
	return srv
}

// closeNotifyRecorder adds the http.CloseNotifier method gin's Context.Stream
// asserts on, which httptest.ResponseRecorder does not implement.
type closeNotifyRecorder struct{ *httptest.ResponseRecorder }

func (closeNotifyRecorder) CloseNotify() <-chan bool { return make(chan bool) }

func postJSON(r http.Handler, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(closeNotifyRecorder{w}, req)
	return w
}

func TestAnalyzeHandler_Success(t *testing.T) {
	site := newTargetSite(t)
	r := gin.New()
	r.POST("/analyze", Analyze(newTestAnalyzer(), nil))

	w := postJSON(r, "/analyze", fmt.Sprintf(`{"url":%q}`, site.URL))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body: %s", w.Code, w.Body.String())
	}

	var report models.Report
	if err := json.Unmarshal(w.Body.Bytes(), &report); err != nil {
		t.Fatalf("unmarshal report: %v", err)
	}
	if len(report.Results) != 12 {
		t.Errorf("results = %d metrics, want 12", len(report.Results))
	}
	if report.Status == "" || report.WebsiteType == "" {
		t.Errorf("incomplete report: %+v", report)
	}
}

func TestAnalyzeHandler_MissingURL(t *testing.T) {
	r := gin.New()
	r.POST("/analyze", Analyze(newTestAnalyzer(), nil))

	w := postJSON(r, "/analyze", `{"fullSiteAnalysis":true}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}

	var resp models.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal error response: %v", err)
	}
	if resp.Error == nil || resp.Error.Code != models.ErrCodeInvalidInput {
		t.Errorf("error = %+v, want code %s", resp.Error, models.ErrCodeInvalidInput)
	}
}

func TestAnalyzeHandler_UpstreamFailure(t *testing.T) {
	site := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer site.Close()

	r := gin.New()
	r.POST("/analyze", Analyze(newTestAnalyzer(), nil))

	w := postJSON(r, "/analyze", fmt.Sprintf(`{"url":%q}`, site.URL))
	if w.Code != http.StatusBadGateway {
		t.Fatalf("status = %d, want 502, body: %s", w.Code, w.Body.String())
	}

	var resp models.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal error response: %v", err)
	}
	if resp.Error == nil || resp.Error.Code != models.ErrCodeFetchFailed {
		t.Errorf("error = %+v, want code %s", resp.Error, models.ErrCodeFetchFailed)
	}
}

func TestAnalyzeHandler_CacheHit(t *testing.T) {
	hits := 0
	site := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/" {
			hits++
		}
		fmt.Fprint(w, `<html><head><title>Company Blog</title></head><body><h1>Hi</h1></body></html>`)
	}))
	defer site.Close()

	r := gin.New()
	r.POST("/analyze", Analyze(newTestAnalyzer(), cache.New(10)))

	body := fmt.Sprintf(`{"url":%q,"max_age":60000}`, site.URL)
	if w := postJSON(r, "/analyze", body); w.Code != http.StatusOK {
		t.Fatalf("first request status = %d", w.Code)
	}
	first := hits
	if w := postJSON(r, "/analyze", body); w.Code != http.StatusOK {
		t.Fatalf("second request status = %d", w.Code)
	}
	if hits != first {
		t.Errorf("second request refetched the page (%d -> %d fetches), cache miss", first, hits)
	}
}

func TestAnalyzeStreamHandler_SSE(t *testing.T) {
	site := newTargetSite(t)
	r := gin.New()
	r.POST("/analyze/stream", AnalyzeStream(newTestAnalyzer()))

	w := postJSON(r, "/analyze/stream", fmt.Sprintf(`{"url":%q}`, site.URL))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/event-stream") {
		t.Errorf("Content-Type = %q, want text/event-stream", ct)
	}

	frames := strings.Split(strings.TrimSpace(w.Body.String()), "\n\n")
	if len(frames) < 2 {
		t.Fatalf("expected multiple SSE frames, got %d", len(frames))
	}

	var last models.ProgressEvent
	for i, frame := range frames {
		if !strings.HasPrefix(frame, "data: ") {
			t.Fatalf("frame %d not data-prefixed: %q", i, frame)
		}
		var ev models.ProgressEvent
		if err := json.Unmarshal([]byte(strings.TrimPrefix(frame, "data: ")), &ev); err != nil {
			t.Fatalf("frame %d: %v", i, err)
		}
		if i < len(frames)-1 && ev.Terminal() {
			t.Errorf("terminal event %d before the end of the stream", i)
		}
		last = ev
	}
	if last.Type != models.EventComplete {
		t.Errorf("last event type = %q, want complete", last.Type)
	}
	if last.Data == nil || len(last.Data.Results) != 12 {
		t.Error("complete event missing full report")
	}
}

func TestHealthHandler(t *testing.T) {
	r := gin.New()
	r.GET("/health", Health(time.Now().Add(-2*time.Second), "1.2.3"))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var resp models.HealthResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Status != "healthy" || resp.Version != "1.2.3" || resp.Uptime == "" {
		t.Errorf("unexpected health payload: %+v", resp)
	}
}

func TestMetricsHandler(t *testing.T) {
	r := gin.New()
	r.GET("/metrics", Metrics())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var resp struct {
		Metrics map[string]models.MetricInfo `json:"metrics"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(resp.Metrics) != 12 {
		t.Errorf("catalog has %d metrics, want 12", len(resp.Metrics))
	}
	if info, ok := resp.Metrics["pageSpeed"]; !ok || info.Name == "" || info.Icon == "" {
		t.Errorf("pageSpeed catalog entry = %+v", info)
	}
}
