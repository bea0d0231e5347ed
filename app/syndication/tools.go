package syndication

import (
	"crypto/md5"
	"encoding/hex"
	"html"
	"regexp"
	"strings"
	"time"
)

// DateFormat hints which date grammar to try first when parsing.
type DateFormat int

const (
	// ISODate is ISO 8601 extended format (Atom, Dublin Core).
	ISODate DateFormat = iota
	// RFCDate is the RFC 822/1123 format used by RSS.
	RFCDate
)

// CalcHash computes a djb2 hash over the given bytes. Empty input hashes
// to 0, which callers treat as "no content".
func CalcHash(data []byte) uint32 {
	if len(data) == 0 {
		return 0
	}
	var hash uint32 = 5381
	for _, c := range data {
		hash = (hash << 5) + hash + uint32(c) // hash*33 + c
	}
	return hash
}

// CalcMD5Sum returns the hex MD5 digest of the string. Used to derive
// stable synthetic item identifiers; not a security boundary.
func CalcMD5Sum(str string) string {
	sum := md5.Sum([]byte(str))
	return hex.EncodeToString(sum[:])
}

var rfcDateLayouts = []string{
	time.RFC1123,
	time.RFC1123Z,
	"Mon, 2 Jan 2006 15:04:05 MST",
	"Mon, 2 Jan 2006 15:04:05 -0700",
	"Mon, 2 Jan 2006 15:04 MST",
	"Mon, 2 Jan 2006 15:04 -0700",
	"2 Jan 2006 15:04:05 MST",
	"2 Jan 2006 15:04:05 -0700",
	"2 Jan 2006 15:04 MST",
	time.RFC822,
	time.RFC822Z,
	"Mon, 2 Jan 06 15:04:05 MST",
	"Mon, 2 Jan 06 15:04:05 -0700",
}

// ParseRFCDate parses an RFC 822/1123 style date ("Sat, 07 Sep 2002
// 00:00:01 GMT"). Returns the zero time on failure; never panics.
func ParseRFCDate(str string) time.Time {
	str = strings.TrimSpace(str)
	if str == "" {
		return time.Time{}
	}
	for _, layout := range rfcDateLayouts {
		if t, err := time.Parse(layout, str); err == nil {
			return t
		}
	}
	return time.Time{}
}

var isoDateTimeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04",
}

// ParseISODate parses an ISO 8601 extended date, with or without a time
// component ("2003-12-13T18:30:02.25+01:00", "2003-12-13"). A date without
// a time defaults to noon. A string that does not start with a four-digit
// year fails outright instead of producing a bogus near-epoch result.
func ParseISODate(str string) time.Time {
	str = strings.TrimSpace(str)
	if len(str) < 4 {
		return time.Time{}
	}
	// guard: the year must lead, otherwise formats like "26-12-2004..."
	// would silently mis-parse
	for i := 0; i < 4; i++ {
		if str[i] < '0' || str[i] > '9' {
			return time.Time{}
		}
	}
	if len(str) > 4 && str[4] != '-' {
		return time.Time{}
	}

	for _, layout := range isoDateTimeLayouts {
		if t, err := time.Parse(layout, str); err == nil {
			return t
		}
	}
	if t, err := time.Parse("2006-01-02", str); err == nil {
		return time.Date(t.Year(), t.Month(), t.Day(), 12, 0, 0, 0, time.UTC)
	}
	return time.Time{}
}

// ParseDate tries both supported date grammars, starting with the hinted
// one. It returns the zero time when neither matches; callers treat that
// as "no date known".
func ParseDate(str string, hint DateFormat) time.Time {
	if strings.TrimSpace(str) == "" {
		return time.Time{}
	}
	if hint == RFCDate {
		if t := ParseRFCDate(str); !t.IsZero() {
			return t
		}
		return ParseISODate(str)
	}
	if t := ParseISODate(str); !t.IsZero() {
		return t
	}
	return ParseRFCDate(str)
}

// ResolveEntities replaces HTML entities by the characters they stand for.
func ResolveEntities(str string) string {
	return html.UnescapeString(str)
}

var tagRe = regexp.MustCompile(`<[a-zA-Z]+[^>]*/?>`)
var stripTagRe = regexp.MustCompile(`<[^>]*>`)

// IsHTML guesses whether a string contains HTML markup: either it carries
// unresolved entities, or it has a balanced, non-zero number of angle
// brackets together with at least one tag-like substring.
func IsHTML(str string) bool {
	if ResolveEntities(str) != str {
		return true
	}
	ltc := strings.Count(str, "<")
	if ltc == 0 || ltc != strings.Count(str, ">") {
		return false
	}
	return tagRe.MatchString(str)
}

// PlainTextToHTML escapes plain text for embedding into HTML and converts
// newlines to line breaks.
func PlainTextToHTML(plainText string) string {
	r := strings.NewReplacer(
		"&", "&amp;",
		"\"", "&quot;",
		"<", "&lt;",
		"\n", "<br/>",
	)
	return r.Replace(plainText)
}

// HTMLToPlainText strips tags, resolves entities and normalizes
// whitespace.
func HTMLToPlainText(htmlStr string) string {
	str := stripTagRe.ReplaceAllString(htmlStr, "")
	return simplified(ResolveEntities(str))
}

// Htmlize returns the string as HTML: markup passes through untouched,
// plain text is escaped and newline-converted.
func Htmlize(str string) string {
	if IsHTML(str) {
		return simplified(str)
	}
	return simplified(PlainTextToHTML(str))
}

// simplified collapses all whitespace runs to single spaces and trims.
func simplified(str string) string {
	return strings.Join(strings.Fields(str), " ")
}
