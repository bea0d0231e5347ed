package rss2

import (
	"strconv"

	"github.com/feedcomb/syndication/app/xmldom"
)

// Image wraps the channel <image> element.
type Image struct {
	xmldom.ElementWrapper
}

func NewImage(e *xmldom.Element) Image {
	return Image{ElementWrapper: xmldom.Wrap(e)}
}

func (i Image) URL() string {
	return i.ExtractElementText("url")
}

func (i Image) Title() string {
	return i.ExtractElementText("title")
}

func (i Image) Link() string {
	return i.ExtractElementText("link")
}

func (i Image) Description() string {
	return i.ExtractElementText("description")
}

// Width returns the image width in pixels, 0 when unspecified.
func (i Image) Width() int {
	n, err := strconv.Atoi(i.ExtractElementText("width"))
	if err != nil {
		return 0
	}
	return n
}

// Height returns the image height in pixels, 0 when unspecified.
func (i Image) Height() int {
	n, err := strconv.Atoi(i.ExtractElementText("height"))
	if err != nil {
		return 0
	}
	return n
}
