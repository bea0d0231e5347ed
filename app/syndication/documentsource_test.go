package syndication

import (
	"bytes"
	"testing"
)

func TestDocumentSourceAccessors(t *testing.T) {
	data := []byte(`<?xml version="1.0"?><root><child>text</child></root>`)
	src := NewDocumentSource(data, "https://example.com/feed.xml")

	if src.IsNil() {
		t.Error("Expected non-nil source")
	}
	if !bytes.Equal(src.AsBytes(), data) {
		t.Error("Expected AsBytes to return the raw bytes unchanged")
	}
	if src.URL() != "https://example.com/feed.xml" {
		t.Errorf("Expected URL 'https://example.com/feed.xml', got '%s'", src.URL())
	}
}

func TestDocumentSourceAsDocument(t *testing.T) {
	src := NewDocumentSource([]byte(`<root><child>text</child></root>`), "")

	doc := src.AsDocument()
	if doc == nil {
		t.Fatal("Expected parsed document, got nil")
	}
	if doc.Root.Name.Local != "root" {
		t.Errorf("Expected root element 'root', got '%s'", doc.Root.Name.Local)
	}

	// parsing is memoized: repeated calls return the same tree
	if src.AsDocument() != doc {
		t.Error("Expected memoized document on second call")
	}
}

func TestDocumentSourceAsDocumentInvalid(t *testing.T) {
	cases := [][]byte{
		[]byte("this is not xml"),
		[]byte("<unclosed>"),
		[]byte(""),
		nil,
	}
	for _, data := range cases {
		src := NewDocumentSource(data, "")
		if doc := src.AsDocument(); doc != nil {
			t.Errorf("Expected nil document for %q, got %v", data, doc)
		}
	}
}

func TestDocumentSourceHash(t *testing.T) {
	src := NewDocumentSource([]byte("feed bytes"), "")
	if src.Hash() != src.Hash() {
		t.Error("Expected stable hash")
	}
	if src.Hash() != CalcHash([]byte("feed bytes")) {
		t.Error("Expected Hash to equal CalcHash over the raw bytes")
	}

	empty := NewDocumentSource(nil, "")
	if empty.Hash() != 0 {
		t.Errorf("Expected empty source to hash to 0, got %d", empty.Hash())
	}
}

func TestDocumentSourceSharing(t *testing.T) {
	// DocumentSource is a cheap value handle over shared state
	src := NewDocumentSource([]byte(`<root/>`), "https://example.com")
	copied := src

	if copied.AsDocument() != src.AsDocument() {
		t.Error("Expected copies to share the parsed document")
	}
}
