package mapper

import "github.com/feedcomb/syndication/app/syndication"

// person is a plain value implementation of the Person abstraction, used
// where the source format carries author data as strings or literals.
type person struct {
	name  string
	email string
	uri   string
}

var _ syndication.Person = person{}

func (p person) IsNil() bool {
	return p.name == "" && p.email == "" && p.uri == ""
}

func (p person) Name() string  { return p.name }
func (p person) Email() string { return p.email }
func (p person) URI() string   { return p.uri }
