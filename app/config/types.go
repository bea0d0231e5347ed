package config

// FeedList is the batch-mode feed configuration file
type FeedList struct {
	Feeds []FeedEntry `yaml:"feeds"`
}

// FeedEntry describes one feed to load
type FeedEntry struct {
	Name string `yaml:"name"`
	URL  string `yaml:"url"`
	// Format is an optional dispatch hint ("rss2", "rdf", "atom"); the
	// hinted parser is tried first
	Format  string `yaml:"format"`
	Timeout int    `yaml:"timeout"` // seconds
}
