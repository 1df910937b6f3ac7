package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/javadts"
	"github.com/fwojciec/javadts/batch"
	"github.com/fwojciec/javadts/goquery"
	"github.com/fwojciec/javadts/htmltomarkdown"
	javadtshttp "github.com/fwojciec/javadts/http"
	"github.com/fwojciec/javadts/rod"
	javadtsslog "github.com/fwojciec/javadts/slog"
	"github.com/fwojciec/javadts/sqlite"
	"github.com/fwojciec/javadts/yaml"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Stdin feeds the prompt command. Set before calling Run().
	Stdin io.Reader

	// SQLite database backing the page cache, when one is configured.
	DB *sqlite.DB

	// Fetcher, if set, replaces the HTTP or browser fetcher. Used for
	// end-to-end testing.
	Fetcher javadts.Fetcher
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		Stdin: os.Stdin,
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdin:  m.Stdin,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("javadts"),
		kong.Description("Convert Javadoc pages to TypeScript declarations"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'javadts --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	deps.Logger = slog.New(slog.DiscardHandler)
	if cli.Verbose {
		deps.Logger = slog.New(slog.NewTextHandler(stderr, nil))
	}

	if cli.Cache != "" {
		m.DB = sqlite.NewDB(cli.Cache)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set JAVADTS_CACHE or --cache to use a different cache path\n")
			return fmt.Errorf("failed to open cache at %q: %w", cli.Cache, err)
		}
		defer m.Close()
		deps.Cache = sqlite.NewPageCache(m.DB, sqlite.WithMaxAge(cli.CacheMaxAge))
	}

	// Purge only needs the cache.
	if kongCtx.Command() == "purge" {
		return kongCtx.Run(deps)
	}

	emitter := javadts.NewEmitter(javadts.DefaultTypeMap())
	if cli.Types != "" {
		cfg, err := yaml.LoadFile(cli.Types)
		if err != nil {
			return fmt.Errorf("failed to load %q: %w", cli.Types, err)
		}
		cfg.Apply(emitter)
	}
	if cli.SkipUnnamed {
		emitter.SkipUnnamedMethods = true
	}

	fetcher := m.Fetcher
	if fetcher == nil {
		if cli.Render {
			rodFetcher, err := rod.NewFetcher(
				rod.WithFetchTimeout(cli.Timeout),
				rod.WithManagerOptions(rod.WithMaxPages(rod.PageBudget(cli.Concurrency))),
			)
			if err != nil {
				fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
				return fmt.Errorf("failed to start browser: %w", err)
			}
			defer rodFetcher.Close()
			fetcher = rodFetcher
		} else {
			fetcher = javadtshttp.NewFetcher(javadtshttp.WithTimeout(cli.Timeout))
		}
	}
	if deps.Cache != nil {
		fetcher = batch.NewCachingFetcher(fetcher,
			javadtsslog.NewLoggingPageCache(deps.Cache, deps.Logger),
			batch.WithCacheLogger(deps.Logger),
		)
	}
	fetcher = javadtsslog.NewLoggingFetcher(fetcher, deps.Logger)
	deps.Fetcher = fetcher

	var opts []goquery.Option
	if cli.Markdown {
		opts = append(opts, goquery.WithConverter(htmltomarkdown.NewConverter()))
	}
	extractor := javadtsslog.NewLoggingExtractor(goquery.NewExtractor(opts...), deps.Logger)

	deps.Runner = &batch.Runner{
		Fetcher:     fetcher,
		Extractor:   extractor,
		Emitter:     emitter,
		RateLimiter: batch.NewDomainLimiter(cli.Rate),
		Concurrency: cli.Concurrency,
		RetryDelays: retryDelays(cli.Retries),
		Logger:      deps.Logger,
	}

	return kongCtx.Run(deps)
}

// retryDelays returns the first n default backoff delays.
func retryDelays(n int) []time.Duration {
	delays := batch.DefaultRetryDelays()
	return delays[:max(0, min(n, len(delays)))]
}
