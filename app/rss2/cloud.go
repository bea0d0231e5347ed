package rss2

import (
	"strconv"

	"github.com/feedcomb/syndication/app/xmldom"
)

// Cloud wraps the <cloud> element describing the channel's publish-
// subscribe endpoint.
type Cloud struct {
	xmldom.ElementWrapper
}

func NewCloud(e *xmldom.Element) Cloud {
	return Cloud{ElementWrapper: xmldom.Wrap(e)}
}

func (c Cloud) Domain() string {
	return c.Attribute("domain")
}

func (c Cloud) Port() int {
	n, err := strconv.Atoi(c.Attribute("port"))
	if err != nil {
		return 0
	}
	return n
}

func (c Cloud) Path() string {
	return c.Attribute("path")
}

func (c Cloud) RegisterProcedure() string {
	return c.Attribute("registerProcedure")
}

func (c Cloud) Protocol() string {
	return c.Attribute("protocol")
}
