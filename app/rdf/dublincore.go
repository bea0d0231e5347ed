package rdf

import (
	"time"

	"github.com/feedcomb/syndication/app/syndication"
)

// DublinCore projects the Dublin Core properties of a resource. Both the
// channel and the items can carry a DC block.
type DublinCore struct {
	res *Resource
}

func NewDublinCore(res *Resource) DublinCore {
	return DublinCore{res: res}
}

func (dc DublinCore) Title() string       { return dc.res.PropertyText(dcTitle) }
func (dc DublinCore) Creator() string     { return dc.res.PropertyText(dcCreator) }
func (dc DublinCore) Subject() string     { return dc.res.PropertyText(dcSubject) }
func (dc DublinCore) Description() string { return dc.res.PropertyText(dcDescription) }
func (dc DublinCore) Publisher() string   { return dc.res.PropertyText(dcPublisher) }
func (dc DublinCore) Contributor() string { return dc.res.PropertyText(dcContributor) }
func (dc DublinCore) Format() string      { return dc.res.PropertyText(dcFormat) }
func (dc DublinCore) Identifier() string  { return dc.res.PropertyText(dcIdentifier) }
func (dc DublinCore) Language() string    { return dc.res.PropertyText(dcLanguage) }
func (dc DublinCore) Relation() string    { return dc.res.PropertyText(dcRelation) }
func (dc DublinCore) Rights() string      { return dc.res.PropertyText(dcRights) }
func (dc DublinCore) Source() string      { return dc.res.PropertyText(dcSource) }
func (dc DublinCore) Coverage() string    { return dc.res.PropertyText(dcCoverage) }
func (dc DublinCore) Type() string        { return dc.res.PropertyText(dcTypeProp) }

// Date parses dc:date, which is ISO 8601. Zero when absent or unparsable.
func (dc DublinCore) Date() time.Time {
	return syndication.ParseDate(dc.res.PropertyText(dcDate), syndication.ISODate)
}
