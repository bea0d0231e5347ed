package syndication

import (
	"testing"
)

// stubDocument is a minimal SpecificDocument for dispatch tests.
type stubDocument struct {
	valid bool
}

func (d stubDocument) IsValid() bool     { return d.valid }
func (d stubDocument) DebugInfo() string { return "stub" }

// stubFeed is an empty Feed implementation.
type stubFeed struct {
	origin string
}

func (f stubFeed) Title() string          { return f.origin }
func (f stubFeed) Link() string           { return "" }
func (f stubFeed) Description() string    { return "" }
func (f stubFeed) Author() string         { return "" }
func (f stubFeed) Language() string       { return "" }
func (f stubFeed) Items() []Item          { return nil }
func (f stubFeed) Categories() []Category { return nil }
func (f stubFeed) Image() Image           { return nil }

// stubParser accepts sources whose root element matches its root name.
type stubParser struct {
	format     string
	root       string
	parseValid bool
	accepted   int
}

func (p *stubParser) Accept(src DocumentSource) bool {
	p.accepted++
	doc := src.AsDocument()
	return doc != nil && doc.Root.Name.Local == p.root
}

func (p *stubParser) Parse(src DocumentSource) SpecificDocument {
	return stubDocument{valid: p.parseValid}
}

func (p *stubParser) Format() string { return p.format }

type stubMapper struct {
	format string
}

func (m stubMapper) Map(doc SpecificDocument) Feed {
	if d, ok := doc.(stubDocument); !ok || !d.IsValid() {
		return nil
	}
	return stubFeed{origin: m.format}
}

func newTestCollection() (*ParserCollection, *stubParser, *stubParser) {
	alpha := &stubParser{format: "alpha", root: "alpha", parseValid: true}
	beta := &stubParser{format: "beta", root: "beta", parseValid: true}
	c := NewParserCollection()
	c.Register(alpha, stubMapper{format: "alpha"})
	c.Register(beta, stubMapper{format: "beta"})
	return c, alpha, beta
}

func TestRegisterRejectsDuplicate(t *testing.T) {
	c, _, _ := newTestCollection()
	if c.Register(&stubParser{format: "alpha", root: "other"}, stubMapper{}) {
		t.Error("Expected duplicate registration to be rejected")
	}
	formats := c.Formats()
	if len(formats) != 2 || formats[0] != "alpha" || formats[1] != "beta" {
		t.Errorf("Expected formats [alpha beta], got %v", formats)
	}
}

func TestChangeMapper(t *testing.T) {
	c, _, _ := newTestCollection()
	if !c.ChangeMapper("alpha", stubMapper{format: "replaced"}) {
		t.Error("Expected ChangeMapper to succeed for registered format")
	}
	if c.ChangeMapper("unknown", stubMapper{}) {
		t.Error("Expected ChangeMapper to fail for unknown format")
	}

	feed, code := c.Parse(NewDocumentSource([]byte("<alpha/>"), ""), "")
	if code != Success {
		t.Fatalf("Expected Success, got %v", code)
	}
	if feed.Title() != "replaced" {
		t.Errorf("Expected replaced mapper to run, got '%s'", feed.Title())
	}
}

func TestParseDispatchOrder(t *testing.T) {
	c, alpha, beta := newTestCollection()

	feed, code := c.Parse(NewDocumentSource([]byte("<beta/>"), ""), "")
	if code != Success {
		t.Fatalf("Expected Success, got %v", code)
	}
	if feed.Title() != "beta" {
		t.Errorf("Expected beta parser to win, got '%s'", feed.Title())
	}
	// registration order: alpha was asked first and declined
	if alpha.accepted != 1 || beta.accepted != 1 {
		t.Errorf("Expected both parsers sniffed once, got alpha=%d beta=%d", alpha.accepted, beta.accepted)
	}
	if c.LastError() != Success {
		t.Errorf("Expected LastError Success, got %v", c.LastError())
	}
}

func TestParseFormatHint(t *testing.T) {
	c, alpha, beta := newTestCollection()

	feed, code := c.Parse(NewDocumentSource([]byte("<beta/>"), ""), "beta")
	if code != Success {
		t.Fatalf("Expected Success, got %v", code)
	}
	if feed.Title() != "beta" {
		t.Errorf("Expected hinted parser to win, got '%s'", feed.Title())
	}
	if alpha.accepted != 0 {
		t.Errorf("Expected alpha to be skipped under hint, sniffed %d times", alpha.accepted)
	}
	if beta.accepted != 1 {
		t.Errorf("Expected beta sniffed once, got %d", beta.accepted)
	}
}

func TestParseHintDeclinesFallsBack(t *testing.T) {
	// when the hinted parser does not accept, the normal trial order runs
	c, alpha, _ := newTestCollection()

	feed, code := c.Parse(NewDocumentSource([]byte("<alpha/>"), ""), "beta")
	if code != Success {
		t.Fatalf("Expected Success, got %v", code)
	}
	if feed.Title() != "alpha" {
		t.Errorf("Expected fallback to alpha, got '%s'", feed.Title())
	}
	if alpha.accepted != 1 {
		t.Errorf("Expected alpha sniffed once, got %d", alpha.accepted)
	}
}

func TestParseInvalidXml(t *testing.T) {
	c, _, _ := newTestCollection()

	feed, code := c.Parse(NewDocumentSource([]byte("not xml at all"), ""), "")
	if feed != nil {
		t.Error("Expected nil feed")
	}
	if code != InvalidXml {
		t.Errorf("Expected InvalidXml, got %v", code)
	}
	if c.LastError() != InvalidXml {
		t.Errorf("Expected LastError InvalidXml, got %v", c.LastError())
	}
}

func TestParseXmlNotAccepted(t *testing.T) {
	c, _, _ := newTestCollection()

	feed, code := c.Parse(NewDocumentSource([]byte("<gamma/>"), ""), "")
	if feed != nil {
		t.Error("Expected nil feed")
	}
	if code != XmlNotAccepted {
		t.Errorf("Expected XmlNotAccepted, got %v", code)
	}
}

func TestParseInvalidFormat(t *testing.T) {
	broken := &stubParser{format: "broken", root: "broken", parseValid: false}
	c := NewParserCollection()
	c.Register(broken, stubMapper{format: "broken"})

	feed, code := c.Parse(NewDocumentSource([]byte("<broken/>"), ""), "")
	if feed != nil {
		t.Error("Expected nil feed")
	}
	if code != InvalidFormat {
		t.Errorf("Expected InvalidFormat, got %v", code)
	}
	if c.LastError() != InvalidFormat {
		t.Errorf("Expected LastError InvalidFormat, got %v", c.LastError())
	}
}

func TestParseResetsLastError(t *testing.T) {
	c, _, _ := newTestCollection()

	c.Parse(NewDocumentSource([]byte("garbage"), ""), "")
	if c.LastError() != InvalidXml {
		t.Fatalf("Expected InvalidXml, got %v", c.LastError())
	}

	c.Parse(NewDocumentSource([]byte("<alpha/>"), ""), "")
	if c.LastError() != Success {
		t.Errorf("Expected LastError reset to Success, got %v", c.LastError())
	}
}
