package rss2

import (
	"testing"
	"time"

	"github.com/feedcomb/syndication/app/syndication"
)

func source(data string) syndication.DocumentSource {
	return syndication.NewDocumentSource([]byte(data), "https://example.com/feed.xml")
}

func TestAccept(t *testing.T) {
	parser := NewParser()

	cases := []struct {
		name     string
		data     string
		expected bool
	}{
		{"rss 2.0", `<rss version="2.0"><channel/></rss>`, true},
		{"rss 0.91", `<rss version="0.91"><channel/></rss>`, true},
		{"missing version", `<rss><channel/></rss>`, false},
		{"rdf root", `<rdf:RDF xmlns:rdf="http://www.w3.org/1999/02/22-rdf-syntax-ns#"/>`, false},
		{"atom root", `<feed xmlns="http://www.w3.org/2005/Atom"/>`, false},
		{"garbage", `not xml`, false},
	}
	for _, c := range cases {
		if got := parser.Accept(source(c.data)); got != c.expected {
			t.Errorf("%s: expected accept=%v, got %v", c.name, c.expected, got)
		}
	}
}

func TestParseChannel(t *testing.T) {
	data := `<?xml version="1.0"?>
<rss version="2.0">
  <channel>
    <title>Test Feed</title>
    <link>https://example.com</link>
    <description>Test Description</description>
    <language>en-us</language>
    <managingEditor>editor@example.com</managingEditor>
    <webMaster>webmaster@example.com</webMaster>
    <ttl>60</ttl>
    <generator>Test Generator</generator>
    <docs>https://www.rssboard.org/rss-specification</docs>
    <category domain="https://taxonomy.example.com">News</category>
    <pubDate>Mon, 03 Jul 2023 12:00:00 GMT</pubDate>
    <image>
      <url>https://example.com/icon.png</url>
      <title>Test Feed</title>
      <link>https://example.com</link>
      <width>88</width>
      <height>31</height>
    </image>
    <skipDays>
      <day>Saturday</day>
      <day>Sunday</day>
    </skipDays>
    <skipHours>
      <hour>0</hour>
      <hour>23</hour>
    </skipHours>
    <cloud domain="rpc.example.com" port="80" path="/RPC2" registerProcedure="pingMe" protocol="soap"/>
    <textInput>
      <title>Search</title>
      <description>Search the site</description>
      <name>q</name>
      <link>https://example.com/search</link>
    </textInput>
    <item>
      <title>Item One</title>
    </item>
  </channel>
</rss>`

	parser := NewParser()
	parsed := parser.Parse(source(data))
	doc, ok := parsed.(Document)
	if !ok {
		t.Fatalf("Expected rss2.Document, got %T", parsed)
	}
	if !doc.IsValid() {
		t.Fatal("Expected valid document")
	}

	if doc.Title() != "Test Feed" {
		t.Errorf("Expected title 'Test Feed', got '%s'", doc.Title())
	}
	if doc.Link() != "https://example.com" {
		t.Errorf("Expected link 'https://example.com', got '%s'", doc.Link())
	}
	if doc.Description() != "Test Description" {
		t.Errorf("Expected description 'Test Description', got '%s'", doc.Description())
	}
	if doc.Language() != "en-us" {
		t.Errorf("Expected language 'en-us', got '%s'", doc.Language())
	}
	if doc.ManagingEditor() != "editor@example.com" {
		t.Errorf("Expected managing editor, got '%s'", doc.ManagingEditor())
	}
	if doc.WebMaster() != "webmaster@example.com" {
		t.Errorf("Expected webmaster, got '%s'", doc.WebMaster())
	}
	if doc.TTL() != 60 {
		t.Errorf("Expected ttl 60, got %d", doc.TTL())
	}
	if doc.Generator() != "Test Generator" {
		t.Errorf("Expected generator, got '%s'", doc.Generator())
	}

	if doc.PubDate().IsZero() {
		t.Error("Expected parsed pubDate")
	}
	if doc.PubDate().Day() != 3 || doc.PubDate().Month() != time.July {
		t.Errorf("Expected July 3rd, got %v", doc.PubDate())
	}

	cats := doc.Categories()
	if len(cats) != 1 {
		t.Fatalf("Expected 1 category, got %d", len(cats))
	}
	if cats[0].Category() != "News" {
		t.Errorf("Expected category 'News', got '%s'", cats[0].Category())
	}
	if cats[0].Domain() != "https://taxonomy.example.com" {
		t.Errorf("Expected category domain, got '%s'", cats[0].Domain())
	}

	img := doc.Image()
	if img.IsNil() {
		t.Fatal("Expected image")
	}
	if img.URL() != "https://example.com/icon.png" {
		t.Errorf("Expected image URL, got '%s'", img.URL())
	}
	if img.Width() != 88 || img.Height() != 31 {
		t.Errorf("Expected 88x31 image, got %dx%d", img.Width(), img.Height())
	}

	days := doc.SkipDays()
	if len(days) != 2 || days[0] != "Saturday" || days[1] != "Sunday" {
		t.Errorf("Expected skip days [Saturday Sunday], got %v", days)
	}
	hours := doc.SkipHours()
	if len(hours) != 2 || hours[0] != 0 || hours[1] != 23 {
		t.Errorf("Expected skip hours [0 23], got %v", hours)
	}

	cloud := doc.Cloud()
	if cloud.IsNil() {
		t.Fatal("Expected cloud element")
	}
	if cloud.Domain() != "rpc.example.com" || cloud.Port() != 80 {
		t.Errorf("Expected cloud rpc.example.com:80, got %s:%d", cloud.Domain(), cloud.Port())
	}
	if cloud.RegisterProcedure() != "pingMe" || cloud.Protocol() != "soap" {
		t.Errorf("Expected cloud procedure pingMe/soap, got %s/%s", cloud.RegisterProcedure(), cloud.Protocol())
	}

	ti := doc.TextInput()
	if ti.IsNil() {
		t.Fatal("Expected textInput element")
	}
	if ti.Name() != "q" || ti.Link() != "https://example.com/search" {
		t.Errorf("Expected textInput q/search link, got %s/%s", ti.Name(), ti.Link())
	}

	if len(doc.Items()) != 1 {
		t.Errorf("Expected 1 item, got %d", len(doc.Items()))
	}
}

func TestParseMissingChannel(t *testing.T) {
	parser := NewParser()
	parsed := parser.Parse(source(`<rss version="2.0"></rss>`))
	if parsed.(Document).IsValid() {
		t.Error("Expected invalid document when channel is missing")
	}
}

func TestItemFields(t *testing.T) {
	data := `<rss version="2.0" xmlns:content="http://purl.org/rss/1.0/modules/content/" xmlns:dc="http://purl.org/dc/elements/1.1/">
  <channel>
    <title>F</title>
    <item>
      <title>Item Title</title>
      <link>https://example.com/item</link>
      <description>Short summary</description>
      <content:encoded>&lt;p&gt;Full body&lt;/p&gt;</content:encoded>
      <author>author@example.com (Author Name)</author>
      <comments>https://example.com/item#comments</comments>
      <guid isPermaLink="false">tag:example.com,2023:item</guid>
      <pubDate>Mon, 03 Jul 2023 10:00:00 GMT</pubDate>
      <category>Tech</category>
      <category>Go</category>
      <enclosure url="https://example.com/ep.mp3" length="1024" type="audio/mpeg"/>
      <source url="https://origin.example.org/feed">Origin</source>
    </item>
  </channel>
</rss>`

	doc := NewParser().Parse(source(data)).(Document)
	items := doc.Items()
	if len(items) != 1 {
		t.Fatalf("Expected 1 item, got %d", len(items))
	}
	item := items[0]

	if item.Title() != "Item Title" {
		t.Errorf("Expected title, got '%s'", item.Title())
	}
	if item.Description() != "Short summary" {
		t.Errorf("Expected description, got '%s'", item.Description())
	}
	if item.Content() != "<p>Full body</p>" {
		t.Errorf("Expected decoded content, got '%s'", item.Content())
	}
	if item.Author() != "author@example.com (Author Name)" {
		t.Errorf("Expected author, got '%s'", item.Author())
	}
	if item.Comments() != "https://example.com/item#comments" {
		t.Errorf("Expected comments link, got '%s'", item.Comments())
	}
	if item.GUID() != "tag:example.com,2023:item" {
		t.Errorf("Expected guid, got '%s'", item.GUID())
	}
	if item.GUIDIsPermaLink() {
		t.Error("Expected isPermaLink=false to be honored")
	}
	if item.PubDate().Hour() != 10 {
		t.Errorf("Expected hour 10, got %d", item.PubDate().Hour())
	}

	if len(item.Categories()) != 2 {
		t.Errorf("Expected 2 categories, got %d", len(item.Categories()))
	}

	enc := item.Enclosure()
	if enc.IsNil() {
		t.Fatal("Expected enclosure")
	}
	if enc.URL() != "https://example.com/ep.mp3" || enc.Length() != 1024 || enc.Type() != "audio/mpeg" {
		t.Errorf("Unexpected enclosure: %s %d %s", enc.URL(), enc.Length(), enc.Type())
	}

	src := item.Source()
	if src.IsNil() {
		t.Fatal("Expected source")
	}
	if src.Source() != "Origin" || src.URL() != "https://origin.example.org/feed" {
		t.Errorf("Unexpected source: %s %s", src.Source(), src.URL())
	}
}

func TestGUIDIsPermaLinkDefault(t *testing.T) {
	data := `<rss version="2.0"><channel><item>
    <guid>https://example.com/item1</guid>
  </item></channel></rss>`
	item := NewParser().Parse(source(data)).(Document).Items()[0]
	if !item.GUIDIsPermaLink() {
		t.Error("Expected isPermaLink to default to true when guid is present")
	}

	data = `<rss version="2.0"><channel><item><title>t</title></item></channel></rss>`
	item = NewParser().Parse(source(data)).(Document).Items()[0]
	if item.GUIDIsPermaLink() {
		t.Error("Expected isPermaLink false when guid is absent")
	}
}

func TestItemDublinCoreFallbacks(t *testing.T) {
	data := `<rss version="2.0" xmlns:dc="http://purl.org/dc/elements/1.1/">
  <channel>
    <item>
      <title>T</title>
      <dc:creator>DC Author</dc:creator>
      <dc:date>2003-12-13T18:30:02Z</dc:date>
    </item>
  </channel>
</rss>`
	item := NewParser().Parse(source(data)).(Document).Items()[0]
	if item.Author() != "DC Author" {
		t.Errorf("Expected dc:creator fallback, got '%s'", item.Author())
	}
	if item.PubDate().Year() != 2003 {
		t.Errorf("Expected dc:date fallback, got %v", item.PubDate())
	}
}

func TestItemXHTMLBody(t *testing.T) {
	data := `<rss version="2.0" xmlns:xhtml="http://www.w3.org/1999/xhtml">
  <channel>
    <item>
      <title>T</title>
      <xhtml:body><xhtml:p>rich <xhtml:b>content</xhtml:b></xhtml:p></xhtml:body>
    </item>
  </channel>
</rss>`
	item := NewParser().Parse(source(data)).(Document).Items()[0]
	if item.Content() != "<p>rich <b>content</b></p>" {
		t.Errorf("Expected serialized XHTML body, got '%s'", item.Content())
	}
}
