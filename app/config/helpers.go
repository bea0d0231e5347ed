package config

import (
	"time"
)

// GetTimeout returns the entry timeout as time.Duration
func (e *FeedEntry) GetTimeout() time.Duration {
	if e.Timeout <= 0 {
		return 30 * time.Second // default 30 seconds
	}
	return time.Duration(e.Timeout) * time.Second
}
