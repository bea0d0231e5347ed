package feed

import (
	"bytes"
	"net/url"
	"strings"

	"golang.org/x/net/html"
)

// DiscoverFeedURL scans bytes that failed to parse as a feed, assuming
// they are an HTML page, and returns the most plausible feed URL linked
// from it. It prefers <link rel="alternate"> elements with a feed media
// type; failing that, anchors whose target ends in .rdf, .rss or .xml.
// Candidates on the page's own host win over foreign ones, first match
// breaking ties. Returns "" when nothing plausible is found; it never
// fails.
func DiscoverFeedURL(data []byte, pageURL string) string {
	base, err := url.Parse(pageURL)
	if err != nil {
		base = nil
	}

	// html.Parse is tolerant and only errors on reader failures, which a
	// bytes.Reader never produces.
	doc, err := html.Parse(bytes.NewReader(data))
	if err != nil {
		return ""
	}

	candidates := collectAlternateLinks(doc)
	if len(candidates) == 0 {
		candidates = collectFeedAnchors(doc)
	}

	return pickCandidate(candidates, base)
}

func collectAlternateLinks(doc *html.Node) []string {
	var found []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "link" {
			var rel, linkType, href string
			for _, attr := range n.Attr {
				switch attr.Key {
				case "rel":
					rel = attr.Val
				case "type":
					linkType = attr.Val
				case "href":
					href = attr.Val
				}
			}
			if strings.EqualFold(rel, "alternate") && isFeedMediaType(linkType) && href != "" {
				found = append(found, href)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return found
}

func collectFeedAnchors(doc *html.Node) []string {
	var found []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "a" {
			for _, attr := range n.Attr {
				if attr.Key != "href" {
					continue
				}
				if hasFeedExtension(attr.Val) {
					found = append(found, attr.Val)
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return found
}

func isFeedMediaType(mediaType string) bool {
	mediaType = strings.ToLower(mediaType)
	return strings.Contains(mediaType, "rss") ||
		strings.Contains(mediaType, "atom") ||
		strings.Contains(mediaType, "xml")
}

func hasFeedExtension(href string) bool {
	// strip query and fragment before looking at the path suffix
	if i := strings.IndexAny(href, "?#"); i >= 0 {
		href = href[:i]
	}
	href = strings.ToLower(href)
	return strings.HasSuffix(href, ".rdf") ||
		strings.HasSuffix(href, ".rss") ||
		strings.HasSuffix(href, ".xml")
}

// pickCandidate resolves each candidate against the page URL and returns
// the first one on the page's host, else the first that resolves at all.
func pickCandidate(candidates []string, base *url.URL) string {
	var first string
	for _, c := range candidates {
		ref, err := url.Parse(strings.TrimSpace(c))
		if err != nil {
			continue
		}
		resolved := ref
		if base != nil {
			resolved = base.ResolveReference(ref)
		}
		if resolved.Host == "" {
			continue
		}
		abs := resolved.String()
		if first == "" {
			first = abs
		}
		if base != nil && resolved.Host == base.Host {
			return abs
		}
	}
	return first
}
