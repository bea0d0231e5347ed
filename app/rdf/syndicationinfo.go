package rdf

import (
	"strconv"
	"time"

	"github.com/feedcomb/syndication/app/syndication"
)

// UpdatePeriod is the unit of the syndication module's update schedule.
type UpdatePeriod int

const (
	// Hourly is also the module's default when no period is given.
	Hourly UpdatePeriod = iota
	Daily
	Weekly
	Monthly
	Yearly
)

// SyndicationInfo projects the RSS 1.0 syndication module properties of
// the channel.
type SyndicationInfo struct {
	res *Resource
}

func NewSyndicationInfo(res *Resource) SyndicationInfo {
	return SyndicationInfo{res: res}
}

// UpdatePeriod returns the schedule unit, Hourly when unspecified.
func (s SyndicationInfo) UpdatePeriod() UpdatePeriod {
	switch s.res.PropertyText(synUpdatePeriod) {
	case "daily":
		return Daily
	case "weekly":
		return Weekly
	case "monthly":
		return Monthly
	case "yearly":
		return Yearly
	default:
		return Hourly
	}
}

// UpdateFrequency returns how often per period the feed updates, 1 when
// unspecified.
func (s SyndicationInfo) UpdateFrequency() int {
	n, err := strconv.Atoi(s.res.PropertyText(synUpdateFrequency))
	if err != nil || n <= 0 {
		return 1
	}
	return n
}

// UpdateBase returns the base timestamp the schedule counts from, zero
// when unspecified.
func (s SyndicationInfo) UpdateBase() time.Time {
	return syndication.ParseDate(s.res.PropertyText(synUpdateBase), syndication.ISODate)
}
