package mapper

import "github.com/feedcomb/syndication/app/syndication"

// category is a plain value implementation of the Category abstraction,
// used where the source format carries classifications as bare literals.
type category struct {
	term   string
	scheme string
	label  string
}

var _ syndication.Category = category{}

func (c category) IsNil() bool {
	return c.term == "" && c.scheme == "" && c.label == ""
}

func (c category) Term() string   { return c.term }
func (c category) Scheme() string { return c.scheme }
func (c category) Label() string  { return c.label }
