package mapper

import (
	"regexp"
	"strings"

	"github.com/feedcomb/syndication/app/syndication"
)

// syntheticID derives a stable item identifier from the item content.
// The concatenation order is part of the identifier contract: consumers
// de-duplicate across refetches by comparing ids, so changing the order
// or the included fields breaks them.
func syntheticID(title, description, content string) string {
	return "hash:" + syndication.CalcMD5Sum(title+description+content)
}

var (
	angleBracketAuthorRe = regexp.MustCompile(`^(.*?)\s*<([^>]+@[^>]+)>$`)
	parenAuthorRe        = regexp.MustCompile(`^([^\s(]+@[^\s(]+)\s*\(([^)]*)\)$`)
)

// personFromString splits the free-form author conventions found in the
// wild ("Name <mail@example.com>", "mail@example.com (Name)", a bare
// address, a bare name) into name and email. It never fails; unrecognized
// input becomes the name.
func personFromString(s string) person {
	s = strings.TrimSpace(s)
	if s == "" {
		return person{}
	}
	if m := angleBracketAuthorRe.FindStringSubmatch(s); m != nil {
		return person{name: strings.TrimSpace(m[1]), email: m[2]}
	}
	if m := parenAuthorRe.FindStringSubmatch(s); m != nil {
		return person{name: strings.TrimSpace(m[2]), email: m[1]}
	}
	if strings.Contains(s, "@") && !strings.ContainsAny(s, " \t") {
		return person{email: s}
	}
	return person{name: s}
}

// displayAuthor renders a person back to the abstraction's single-string
// author field.
func displayAuthor(p syndication.Person) string {
	switch {
	case p.IsNil():
		return ""
	case p.Name() != "" && p.Email() != "":
		return p.Name() + " <" + p.Email() + ">"
	case p.Email() != "":
		return p.Email()
	default:
		return p.Name()
	}
}
