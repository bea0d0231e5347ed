package feed

import "testing"

func TestDiscoverAlternateLink(t *testing.T) {
	page := `<html><head>
    <link rel="alternate" type="application/rss+xml" title="Feed" href="/feed.xml">
  </head><body></body></html>`
	got := DiscoverFeedURL([]byte(page), "https://example.com/blog/")
	if got != "https://example.com/feed.xml" {
		t.Errorf("Expected resolved alternate link, got '%s'", got)
	}
}

func TestDiscoverAtomMediaType(t *testing.T) {
	page := `<html><head>
    <link rel="alternate" type="application/atom+xml" href="https://example.com/atom.xml">
  </head></html>`
	got := DiscoverFeedURL([]byte(page), "https://example.com/")
	if got != "https://example.com/atom.xml" {
		t.Errorf("Expected atom link, got '%s'", got)
	}
}

func TestDiscoverIgnoresStylesheetLinks(t *testing.T) {
	page := `<html><head>
    <link rel="stylesheet" type="text/css" href="/style.css">
    <link rel="alternate" type="text/html" href="/mobile">
  </head></html>`
	if got := DiscoverFeedURL([]byte(page), "https://example.com/"); got != "" {
		t.Errorf("Expected no candidate, got '%s'", got)
	}
}

func TestDiscoverAnchorFallback(t *testing.T) {
	page := `<html><body>
    <a href="/about.html">About</a>
    <a href="/feeds/main.rss">Subscribe</a>
  </body></html>`
	got := DiscoverFeedURL([]byte(page), "https://example.com/")
	if got != "https://example.com/feeds/main.rss" {
		t.Errorf("Expected anchor fallback, got '%s'", got)
	}
}

func TestDiscoverAnchorIgnoresQueryAndFragment(t *testing.T) {
	page := `<html><body><a href="/feed.xml?format=rss#top">Feed</a></body></html>`
	got := DiscoverFeedURL([]byte(page), "https://example.com/")
	if got != "https://example.com/feed.xml?format=rss#top" {
		t.Errorf("Expected candidate with query preserved, got '%s'", got)
	}
}

func TestDiscoverPrefersSameHost(t *testing.T) {
	page := `<html><head>
    <link rel="alternate" type="application/rss+xml" href="https://feedburner.example.org/proxy.xml">
    <link rel="alternate" type="application/rss+xml" href="https://example.com/own.xml">
  </head></html>`
	got := DiscoverFeedURL([]byte(page), "https://example.com/")
	if got != "https://example.com/own.xml" {
		t.Errorf("Expected same-host candidate to win, got '%s'", got)
	}
}

func TestDiscoverFallsBackToForeignHost(t *testing.T) {
	page := `<html><head>
    <link rel="alternate" type="application/rss+xml" href="https://feedburner.example.org/proxy.xml">
  </head></html>`
	got := DiscoverFeedURL([]byte(page), "https://example.com/")
	if got != "https://feedburner.example.org/proxy.xml" {
		t.Errorf("Expected foreign candidate as fallback, got '%s'", got)
	}
}

func TestDiscoverProtocolRelative(t *testing.T) {
	page := `<html><head>
    <link rel="alternate" type="application/rss+xml" href="//cdn.example.com/feed.xml">
  </head></html>`
	got := DiscoverFeedURL([]byte(page), "https://example.com/")
	if got != "https://cdn.example.com/feed.xml" {
		t.Errorf("Expected scheme filled in, got '%s'", got)
	}
}

func TestDiscoverNothingFound(t *testing.T) {
	cases := []string{
		``,
		`plain text, no markup`,
		`<html><body><p>no links here</p></body></html>`,
	}
	for _, page := range cases {
		if got := DiscoverFeedURL([]byte(page), "https://example.com/"); got != "" {
			t.Errorf("Expected no discovery for %q, got '%s'", page, got)
		}
	}
}
