package cfg

import (
	"fmt"

	"github.com/jessevdk/go-flags"
)

// Version is set at build time via -ldflags
var Version = "dev"

func GetVersion() string {
	if Version != "" {
		return Version
	}
	return "unknown"
}

type rawCfg struct {
	// Application configuration
	FeedsFile    string `long:"feeds-file" env:"FEEDS_FILE" default:"./feeds.yml" description:"YAML file listing feeds for batch mode"`
	Port         string `long:"port" env:"PORT" default:"8080" description:"HTTP server port"`
	APIAccessKey string `long:"api-key" env:"API_ACCESS_KEY" description:"API access key for authentication (optional)"`

	// HTTP client configuration
	UserAgent string `long:"user-agent" env:"USER_AGENT" default:"FeedComb/1.0" description:"User agent string for HTTP requests"`
	Timeout   int    `long:"timeout" env:"HTTP_TIMEOUT" default:"30" description:"HTTP request timeout in seconds"`

	// Application metadata
	Serve   bool `long:"serve" env:"SERVE" description:"Run the HTTP API server instead of batch mode"`
	Verbose bool `long:"verbose" env:"VERBOSE" description:"Print per-item detail in batch mode"`
	Debug   bool `long:"debug" env:"DEBUG" description:"Enable debug logging"`

	Args struct {
		URLs []string `positional-arg-name:"url" description:"Feed URLs to load in batch mode"`
	} `positional-args:"yes"`
}

var globalCfg *Cfg

func Load() (*Cfg, error) {
	var raw rawCfg

	parser := flags.NewParser(&raw, flags.Default)

	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok {
			if flagsErr.Type == flags.ErrHelp {
				return nil, nil
			}
		}
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	cfg := &Cfg{
		FeedsFile:    raw.FeedsFile,
		Port:         raw.Port,
		APIAccessKey: raw.APIAccessKey,
		UserAgent:    raw.UserAgent,
		Timeout:      raw.Timeout,
		Serve:        raw.Serve,
		Verbose:      raw.Verbose,
		Debug:        raw.Debug,
		Version:      GetVersion(),
		URLs:         raw.Args.URLs,
	}

	globalCfg = cfg

	return cfg, nil
}

func Get() *Cfg {
	if globalCfg == nil {
		panic("configuration not loaded - call cfg.Load() first")
	}
	return globalCfg
}
