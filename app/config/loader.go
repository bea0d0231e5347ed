package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Loader handles loading and validation of the feed list file
type Loader struct {
	path string
}

// NewLoader creates a new feed list loader
func NewLoader(path string) *Loader {
	return &Loader{path: path}
}

// Load reads and validates the YAML feed list. A missing file yields an
// empty list, not an error, so batch mode can run on URL arguments alone.
func (l *Loader) Load() (*FeedList, error) {
	data, err := os.ReadFile(l.path)
	if err != nil {
		if os.IsNotExist(err) {
			return &FeedList{}, nil
		}
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	var list FeedList
	if err := yaml.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	l.setDefaults(&list)

	if err := l.validate(&list); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", l.path, err)
	}

	return &list, nil
}

// setDefaults applies default values to the feed entries
func (l *Loader) setDefaults(list *FeedList) {
	for i := range list.Feeds {
		if list.Feeds[i].Timeout == 0 {
			list.Feeds[i].Timeout = 30 // seconds
		}
	}
}

// validate validates the feed entries
func (l *Loader) validate(list *FeedList) error {
	validFormats := map[string]bool{
		"":     true,
		"rss2": true,
		"rdf":  true,
		"atom": true,
	}

	for i, entry := range list.Feeds {
		if entry.URL == "" {
			return fmt.Errorf("feed URL is required at index %d", i)
		}
		if entry.Name == "" {
			return fmt.Errorf("feed name is required at index %d", i)
		}
		if !validFormats[entry.Format] {
			return fmt.Errorf("invalid format hint at index %d: %s", i, entry.Format)
		}
		if entry.Timeout < 0 {
			return fmt.Errorf("timeout must be non-negative at index %d", i)
		}
	}

	return nil
}
