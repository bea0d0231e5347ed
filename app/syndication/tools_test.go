package syndication

import (
	"testing"
	"time"
)

func TestCalcHash(t *testing.T) {
	if got := CalcHash(nil); got != 0 {
		t.Errorf("Expected empty input to hash to 0, got %d", got)
	}
	if got := CalcHash([]byte{}); got != 0 {
		t.Errorf("Expected empty input to hash to 0, got %d", got)
	}

	// djb2: hash = hash*33 + c, seeded with 5381
	if got := CalcHash([]byte("a")); got != 5381*33+'a' {
		t.Errorf("Expected %d, got %d", 5381*33+'a', got)
	}

	first := CalcHash([]byte("some feed content"))
	second := CalcHash([]byte("some feed content"))
	if first != second {
		t.Errorf("Expected stable hash, got %d and %d", first, second)
	}
	if CalcHash([]byte("some feed content")) == CalcHash([]byte("other feed content")) {
		t.Error("Expected different content to hash differently")
	}
}

func TestCalcMD5Sum(t *testing.T) {
	// well-known digest
	if got := CalcMD5Sum(""); got != "d41d8cd98f00b204e9800998ecf8427e" {
		t.Errorf("Expected empty string digest, got %s", got)
	}
	if CalcMD5Sum("abc") != CalcMD5Sum("abc") {
		t.Error("Expected deterministic digest")
	}
	if len(CalcMD5Sum("abc")) != 32 {
		t.Errorf("Expected 32 hex chars, got %d", len(CalcMD5Sum("abc")))
	}
}

func TestParseRFCDate(t *testing.T) {
	parsed := ParseRFCDate("Sat, 07 Sep 2002 00:00:01 GMT")
	if parsed.IsZero() {
		t.Fatal("Expected valid date, got zero time")
	}
	if parsed.Year() != 2002 || parsed.Month() != time.September || parsed.Day() != 7 {
		t.Errorf("Expected 2002-09-07, got %v", parsed)
	}
	if parsed.Second() != 1 {
		t.Errorf("Expected second 1, got %d", parsed.Second())
	}

	if !ParseRFCDate("not a date").IsZero() {
		t.Error("Expected zero time for garbage input")
	}
	if !ParseRFCDate("").IsZero() {
		t.Error("Expected zero time for empty input")
	}
}

func TestParseISODate(t *testing.T) {
	parsed := ParseISODate("2003-12-13T18:30:02.25+01:00")
	if parsed.IsZero() {
		t.Fatal("Expected valid date, got zero time")
	}
	if parsed.Year() != 2003 || parsed.Month() != time.December || parsed.Day() != 13 {
		t.Errorf("Expected 2003-12-13, got %v", parsed)
	}

	// date-only input defaults to noon
	noon := ParseISODate("2003-12-13")
	if noon.Hour() != 12 || noon.Minute() != 0 {
		t.Errorf("Expected noon for date-only input, got %v", noon)
	}
}

func TestParseISODateYearGuard(t *testing.T) {
	// a leading segment that is not a four-digit year must fail outright
	cases := []string{
		"26-12-2004T12:00:00",
		"13/12/2003",
		"abc",
		"20031213",
	}
	for _, c := range cases {
		if got := ParseISODate(c); !got.IsZero() {
			t.Errorf("Expected zero time for %q, got %v", c, got)
		}
	}
}

func TestParseDate(t *testing.T) {
	// both grammars parse regardless of hint
	if ParseDate("Sat, 07 Sep 2002 00:00:01 GMT", ISODate).IsZero() {
		t.Error("Expected RFC date to parse under ISO hint")
	}
	if ParseDate("2003-12-13T18:30:02Z", RFCDate).IsZero() {
		t.Error("Expected ISO date to parse under RFC hint")
	}
	if !ParseDate("yesterday", RFCDate).IsZero() {
		t.Error("Expected zero time for unparsable input")
	}
	if !ParseDate("", ISODate).IsZero() {
		t.Error("Expected zero time for empty input")
	}
}

func TestIsHTML(t *testing.T) {
	cases := []struct {
		input    string
		expected bool
	}{
		{"plain text", false},
		{"entities &amp; markers", true},
		{"&quot;quoted&quot;", true},
		{"<p>paragraph</p>", true},
		{"<br/>", true},
		{"1 < 2", false},             // unbalanced brackets
		{"a < b > c", false},         // balanced but no tag
		{"5 <i>italic</i> ok", true}, // balanced with tag
		{"", false},
	}
	for _, c := range cases {
		if got := IsHTML(c.input); got != c.expected {
			t.Errorf("IsHTML(%q): expected %v, got %v", c.input, c.expected, got)
		}
	}
}

func TestPlainTextToHTML(t *testing.T) {
	got := PlainTextToHTML("a & b \"c\" <d\nnext")
	expected := "a &amp; b &quot;c&quot; &lt;d<br/>next"
	if got != expected {
		t.Errorf("Expected %q, got %q", expected, got)
	}
}

func TestHTMLToPlainText(t *testing.T) {
	got := HTMLToPlainText("<p>one   &amp;\ntwo</p>")
	if got != "one & two" {
		t.Errorf("Expected 'one & two', got %q", got)
	}
}

func TestHtmlize(t *testing.T) {
	// markup passes through
	if got := Htmlize("<b>bold</b>"); got != "<b>bold</b>" {
		t.Errorf("Expected markup untouched, got %q", got)
	}
	// plain text gets escaped and newline-converted
	if got := Htmlize("one < two"); got != "one &lt; two" {
		t.Errorf("Expected escaped text, got %q", got)
	}
}

func TestResolveEntities(t *testing.T) {
	if got := ResolveEntities("&lt;tag&gt; &amp; &quot;x&quot;"); got != `<tag> & "x"` {
		t.Errorf("Expected resolved entities, got %q", got)
	}
	if got := ResolveEntities("no entities"); got != "no entities" {
		t.Errorf("Expected input unchanged, got %q", got)
	}
}
