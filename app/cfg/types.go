package cfg

type Cfg struct {
	// Application configuration
	FeedsFile    string
	Port         string
	APIAccessKey string

	// HTTP client configuration
	UserAgent string
	Timeout   int

	// Application metadata
	Serve   bool
	Verbose bool
	Debug   bool
	Version string

	// Positional feed URLs for batch mode
	URLs []string
}
