package feed

import (
	"context"
	"log/slog"
	"sync"

	"github.com/feedcomb/syndication/app/syndication"
)

// LoaderState is the phase of a Loader's single outstanding load.
type LoaderState int

const (
	LoaderIdle LoaderState = iota
	LoaderRetrieving
	LoaderParsing
	LoaderDone
)

// Result is the terminal outcome of one load. Feed is nil whenever Code
// is not Success. DiscoveredFeedURL is a best-effort autodiscovery hint,
// set only after a parse failure; it augments the failure report and
// never replaces the code.
type Result struct {
	Feed              syndication.Feed
	Code              syndication.ErrorCode
	DiscoveredFeedURL string
}

// Loader runs one asynchronous retrieve-then-parse cycle and delivers
// exactly one completion callback, either the real result or Aborted.
// A second LoadFrom call while a load is in flight is dropped.
type Loader struct {
	retriever  DataRetriever
	collection *syndication.ParserCollection

	mu         sync.Mutex
	state      LoaderState
	completed  bool
	cancel     context.CancelFunc
	done       func(Result)
	discovered string
}

func NewLoader(retriever DataRetriever, collection *syndication.ParserCollection) *Loader {
	return &Loader{
		retriever:  retriever,
		collection: collection,
	}
}

// State returns the current phase.
func (l *Loader) State() LoaderState {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}

// DiscoveredFeedURL returns the autodiscovery hint from the most recent
// completed load, "" when the load succeeded or found no candidate.
func (l *Loader) DiscoveredFeedURL() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.discovered
}

// LoadFrom starts loading the given URL. formatHint, when non-empty,
// names the parser to try first. The done callback fires exactly once,
// from the loader's goroutine. While a load is in flight further calls
// are no-ops.
func (l *Loader) LoadFrom(ctx context.Context, url, formatHint string, done func(Result)) {
	l.mu.Lock()
	if l.state == LoaderRetrieving || l.state == LoaderParsing {
		l.mu.Unlock()
		slog.Debug("Loader busy, dropping load request", "url", url)
		return
	}
	ctx, cancel := context.WithCancel(ctx)
	l.state = LoaderRetrieving
	l.completed = false
	l.cancel = cancel
	l.done = done
	l.discovered = ""
	l.mu.Unlock()

	go l.run(ctx, url, formatHint)
}

// Abort cancels the outstanding retrieval and completes with Aborted. It
// is idempotent and a no-op outside Retrieving/Parsing.
func (l *Loader) Abort() {
	l.mu.Lock()
	if l.completed || (l.state != LoaderRetrieving && l.state != LoaderParsing) {
		l.mu.Unlock()
		return
	}
	l.completed = true
	l.state = LoaderDone
	cancel := l.cancel
	done := l.done
	l.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	done(Result{Code: syndication.Aborted})
}

func (l *Loader) run(ctx context.Context, url, formatHint string) {
	data, code := l.retriever.Retrieve(ctx, url)
	if code != syndication.Success {
		l.complete(Result{Code: code})
		return
	}

	l.mu.Lock()
	if l.completed {
		l.mu.Unlock()
		return
	}
	l.state = LoaderParsing
	l.mu.Unlock()

	src := syndication.NewDocumentSource(data, url)
	parsed, code := l.collection.Parse(src, formatHint)
	result := Result{Feed: parsed, Code: code}
	if code == syndication.InvalidXml || code == syndication.XmlNotAccepted || code == syndication.InvalidFormat {
		result.DiscoveredFeedURL = DiscoverFeedURL(data, url)
	}
	l.complete(result)
}

// complete delivers the result unless an Abort got there first.
func (l *Loader) complete(result Result) {
	l.mu.Lock()
	if l.completed {
		l.mu.Unlock()
		return
	}
	l.completed = true
	l.state = LoaderDone
	l.discovered = result.DiscoveredFeedURL
	done := l.done
	l.mu.Unlock()

	done(result)
}
