package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/javadts"
	"github.com/fwojciec/javadts/batch"
	"github.com/fwojciec/javadts/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdin   io.Reader
	Stdout  io.Writer
	Stderr  io.Writer
	Logger  *slog.Logger
	Fetcher javadts.Fetcher
	Cache   *sqlite.PageCache
	Runner  *batch.Runner
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Types       string        `short:"T" type:"existingfile" help:"YAML file with lookup, indent and type mapping settings"`
	Cache       string        `env:"JAVADTS_CACHE" help:"SQLite database caching fetched pages"`
	CacheMaxAge time.Duration `name:"cache-max-age" default:"168h" help:"Refetch cached pages older than this (0 keeps them forever)"`
	Render      bool          `short:"r" help:"Render pages in headless Chrome before extraction"`
	Concurrency int           `short:"c" default:"4" help:"Concurrent page limit"`
	Timeout     time.Duration `short:"t" default:"10s" help:"Fetch timeout per page"`
	Retries     int           `default:"3" help:"Fetch retries per page for transient errors (at most 3)"`
	Rate        float64       `default:"2" help:"Requests per second per host (0 disables limiting)"`
	Markdown    bool          `short:"m" help:"Keep inline formatting in descriptions as Markdown"`
	SkipUnnamed bool          `name:"skip-unnamed" help:"Omit method rows without a method name"`
	Verbose     bool          `short:"v" help:"Log fetches and extraction to stderr"`

	Convert ConvertCmd `cmd:"" help:"Convert Javadoc pages to TypeScript declarations"`
	Prompt  PromptCmd  `cmd:"" help:"Read Javadoc URLs from stdin and print declarations"`
	Purge   PurgeCmd   `cmd:"" help:"Remove expired pages from the cache"`
}

// ConvertCmd is the "convert" subcommand.
type ConvertCmd struct {
	URLs     []string `arg:"" name:"url" help:"Javadoc page URLs"`
	Out      string   `short:"o" type:"path" help:"Write one .d.ts file per page into this directory"`
	Index    bool     `short:"i" help:"Treat URLs as package or index pages and convert every type they link to"`
	Progress bool     `short:"p" help:"Report each converted page on stderr"`
}

// PromptCmd is the "prompt" subcommand.
type PromptCmd struct{}

// PurgeCmd is the "purge" subcommand.
type PurgeCmd struct{}
