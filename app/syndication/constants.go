package syndication

// Namespace URIs shared across the syndication formats.
const (
	// ContentNamespace is the RSS 1.0 content module (content:encoded).
	ContentNamespace = "http://purl.org/rss/1.0/modules/content/"
	// XHTMLNamespace marks embedded rich content bodies.
	XHTMLNamespace = "http://www.w3.org/1999/xhtml"
	// DublinCoreNamespace is the Dublin Core element set.
	DublinCoreNamespace = "http://purl.org/dc/elements/1.1/"
)
