package syndication

import (
	"sync"

	"github.com/feedcomb/syndication/app/xmldom"
)

// DocumentSource wraps the raw bytes of one fetched feed document. It is a
// copy-cheap handle: copies share the same underlying buffer, parsed tree
// and hash. The DOM tree and the content hash are computed lazily on first
// access and cached; the source itself is read-only.
type DocumentSource struct {
	d *sourceData
}

type sourceData struct {
	data []byte
	url  string

	parseOnce sync.Once
	doc       *xmldom.Document

	hashOnce sync.Once
	hash     uint32
}

// NewDocumentSource creates a source from raw bytes and the URL they were
// fetched from.
func NewDocumentSource(data []byte, url string) DocumentSource {
	return DocumentSource{d: &sourceData{data: data, url: url}}
}

// IsNil reports whether this is the zero source.
func (s DocumentSource) IsNil() bool {
	return s.d == nil
}

// AsBytes returns the raw bytes unchanged.
func (s DocumentSource) AsBytes() []byte {
	if s.d == nil {
		return nil
	}
	return s.d.data
}

// URL returns the URL the document was fetched from.
func (s DocumentSource) URL() string {
	if s.d == nil {
		return ""
	}
	return s.d.url
}

// AsDocument parses the bytes into a DOM tree on first call and caches the
// result. It returns nil if the bytes are not well-formed XML; it never
// returns an error, callers test for nil.
func (s DocumentSource) AsDocument() *xmldom.Document {
	if s.d == nil {
		return nil
	}
	s.d.parseOnce.Do(func() {
		doc, err := xmldom.Parse(s.d.data)
		if err == nil {
			s.d.doc = doc
		}
	})
	return s.d.doc
}

// Hash returns a fast non-cryptographic fingerprint of the raw bytes, used
// for change detection between fetches. An empty buffer hashes to 0.
func (s DocumentSource) Hash() uint32 {
	if s.d == nil {
		return 0
	}
	s.d.hashOnce.Do(func() {
		s.d.hash = CalcHash(s.d.data)
	})
	return s.d.hash
}
