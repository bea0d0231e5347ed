package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/feedcomb/syndication/app/feed"
	"github.com/gin-gonic/gin"
)

func TestGetHealth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewHandler(feed.NewHTTPRetriever("Tester/1.0", time.Second), feed.NewDefaultCollection())

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/health", nil)
	handler.GetHealth(c)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var body struct {
		Timestamp string   `json:"timestamp"`
		Formats   []string `json:"formats"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("Expected JSON body, got error: %v", err)
	}

	parsed, err := time.Parse(time.RFC3339, body.Timestamp)
	if err != nil {
		t.Fatalf("Expected RFC3339 timestamp, got '%s': %v", body.Timestamp, err)
	}
	if !strings.HasSuffix(body.Timestamp, "Z") {
		t.Errorf("Expected UTC timestamp, got '%s'", body.Timestamp)
	}
	if time.Since(parsed) > time.Minute {
		t.Errorf("Expected a current timestamp, got %v", parsed)
	}

	if len(body.Formats) != 3 {
		t.Fatalf("Expected 3 registered formats, got %v", body.Formats)
	}
	if body.Formats[0] != "rss2" || body.Formats[1] != "rdf" || body.Formats[2] != "atom" {
		t.Errorf("Expected registration order preserved, got %v", body.Formats)
	}
}

func TestGetParseMissingURL(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewHandler(feed.NewHTTPRetriever("Tester/1.0", time.Second), feed.NewDefaultCollection())

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/parse", nil)
	handler.GetParse(c)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400 without url parameter, got %d", w.Code)
	}
}
