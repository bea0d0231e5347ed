package rss2

import "github.com/feedcomb/syndication/app/xmldom"

// TextInput wraps the channel <textInput> element.
type TextInput struct {
	xmldom.ElementWrapper
}

func NewTextInput(e *xmldom.Element) TextInput {
	return TextInput{ElementWrapper: xmldom.Wrap(e)}
}

func (t TextInput) Title() string {
	return t.ExtractElementText("title")
}

func (t TextInput) Description() string {
	return t.ExtractElementText("description")
}

func (t TextInput) Name() string {
	return t.ExtractElementText("name")
}

func (t TextInput) Link() string {
	return t.ExtractElementText("link")
}
