package cache

import (
	"fmt"
	"testing"

	"github.com/theOrangeShi/seo-analazing/models"
)

func testReport(score float64) *models.Report {
	return &models.Report{TotalScore: score, Status: "good", WebsiteType: "content"}
}

func TestCache_SetGet(t *testing.T) {
	c := New(10)
	key := Key("https://example.com", false)

	if _, hit := c.Get(key, 60000); hit {
		t.Error("unexpected hit on empty cache")
	}

	c.Set(key, testReport(80))
	got, hit := c.Get(key, 60000)
	if !hit {
		t.Fatal("expected cache hit")
	}
	if got.TotalScore != 80 {
		t.Errorf("TotalScore = %v, want 80", got.TotalScore)
	}
}

func TestCache_MaxAgeZeroDisablesLookup(t *testing.T) {
	c := New(10)
	key := Key("https://example.com", false)
	c.Set(key, testReport(80))

	if _, hit := c.Get(key, 0); hit {
		t.Error("maxAge 0 must disable cache lookup")
	}
	if _, hit := c.Get(key, -1); hit {
		t.Error("negative maxAge must disable cache lookup")
	}
}

func TestKey_ModeSeparatesEntries(t *testing.T) {
	singlePage := Key("https://example.com", false)
	fullSite := Key("https://example.com", true)
	if singlePage == fullSite {
		t.Error("single-page and full-site runs must cache separately")
	}

	c := New(10)
	c.Set(singlePage, testReport(80))
	if _, hit := c.Get(fullSite, 60000); hit {
		t.Error("full-site lookup hit the single-page entry")
	}
}

func TestCache_EvictsAtCapacity(t *testing.T) {
	c := New(3)
	for i := 0; i < 5; i++ {
		c.Set(Key(fmt.Sprintf("https://example.com/%d", i), false), testReport(float64(i)))
	}

	c.mu.RLock()
	size := len(c.store)
	c.mu.RUnlock()
	if size > 3 {
		t.Errorf("cache grew to %d entries, capacity 3", size)
	}
}
