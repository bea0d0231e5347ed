package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/feedcomb/syndication/app/api"
	"github.com/feedcomb/syndication/app/cfg"
	"github.com/feedcomb/syndication/app/config"
	"github.com/feedcomb/syndication/app/feed"
	"github.com/feedcomb/syndication/app/syndication"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	// Load configuration from environment variables and command-line flags
	appCfg, err := cfg.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if appCfg == nil {
		// Help was shown, exit gracefully
		return
	}

	logLevel := slog.LevelInfo
	if appCfg.Debug {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel})))

	collection := feed.NewDefaultCollection()
	retriever := feed.NewHTTPRetriever(appCfg.UserAgent, time.Duration(appCfg.Timeout)*time.Second)

	if appCfg.Serve {
		runServer(appCfg, retriever, collection)
		return
	}

	runBatch(appCfg, retriever, collection)
}

// runBatch loads every configured and argument URL once and prints a
// summary per feed.
func runBatch(appCfg *cfg.Cfg, retriever feed.DataRetriever, collection *syndication.ParserCollection) {
	type job struct {
		name    string
		url     string
		hint    string
		timeout time.Duration
	}

	var jobs []job

	list, err := config.NewLoader(appCfg.FeedsFile).Load()
	if err != nil {
		log.Fatalf("Failed to load feed list: %v", err)
	}
	for _, entry := range list.Feeds {
		jobs = append(jobs, job{name: entry.Name, url: entry.URL, hint: entry.Format, timeout: entry.GetTimeout()})
	}
	for _, url := range appCfg.URLs {
		jobs = append(jobs, job{name: url, url: url, timeout: time.Duration(appCfg.Timeout) * time.Second})
	}

	if len(jobs) == 0 {
		fmt.Println("Nothing to do: no feeds configured and no URLs given")
		return
	}

	failures := 0
	for _, j := range jobs {
		loader := feed.NewLoader(retriever, collection)
		done := make(chan feed.Result, 1)
		// per-feed timeout; the earlier of this and the retriever's own
		// deadline wins
		ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
		loader.LoadFrom(ctx, j.url, j.hint, func(r feed.Result) {
			done <- r
		})
		result := <-done
		cancel()

		if result.Code != syndication.Success {
			failures++
			slog.Error("Load failed", "feed", j.name, "code", result.Code.String())
			if result.DiscoveredFeedURL != "" {
				fmt.Printf("%s: failed (%s), discovered feed candidate: %s\n", j.name, result.Code, result.DiscoveredFeedURL)
			} else {
				fmt.Printf("%s: failed (%s)\n", j.name, result.Code)
			}
			continue
		}

		f := result.Feed
		fmt.Printf("%s: %q, %d items\n", j.name, f.Title(), len(f.Items()))
		if appCfg.Verbose {
			for _, item := range f.Items() {
				fmt.Printf("  - %s (%s)\n", item.Title(), item.ID())
			}
		}
	}

	if failures > 0 {
		os.Exit(1)
	}
}

func runServer(appCfg *cfg.Cfg, retriever feed.DataRetriever, collection *syndication.ParserCollection) {
	log.Println("Initializing HTTP server...")
	apiHandler := api.NewHandler(retriever, collection)
	server := api.NewServer(apiHandler, appCfg.APIAccessKey)

	// Create HTTP server with timeouts
	httpServer := &http.Server{
		Addr:         ":" + appCfg.Port,
		Handler:      server,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start HTTP server in a goroutine
	serverErrChan := make(chan error, 1)
	go func() {
		log.Printf("Starting HTTP server on port %s", appCfg.Port)
		log.Printf("API endpoints available:")
		log.Printf("  Parse:         http://localhost:%s/parse?url=<feed url>", appCfg.Port)
		log.Printf("  Health check:  http://localhost:%s/health", appCfg.Port)

		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrChan <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	// Wait for interrupt signal or server error
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	log.Println("Server started successfully!")
	log.Println("Press Ctrl+C to shutdown gracefully...")

	select {
	case sig := <-sigChan:
		log.Printf("Received signal: %v", sig)
	case err := <-serverErrChan:
		log.Printf("Server error: %v", err)
	}

	// Graceful shutdown
	log.Println("Shutting down server gracefully...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("HTTP server shutdown error: %v", err)
	} else {
		log.Println("HTTP server stopped")
	}

	log.Println("Server shutdown complete")
}
