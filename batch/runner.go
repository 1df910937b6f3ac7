// Package batch converts many documentation pages concurrently. Each page
// is fetched, extracted and emitted independently; one page failing does
// not affect the others.
package batch

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/javadts"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the number of pages converted at once.
const DefaultConcurrency = 4

// Runner orchestrates the conversion of a list of page URLs.
type Runner struct {
	Fetcher     javadts.Fetcher
	Extractor   javadts.Extractor
	Emitter     *javadts.Emitter
	RateLimiter javadts.DomainLimiter // optional
	Concurrency int
	RetryDelays []time.Duration
	Logger      *slog.Logger // optional
}

// Result is the outcome of converting one URL.
type Result struct {
	URL         string
	Declaration *javadts.Declaration
	Err         error
}

// ProgressEvent reports progress during a run.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	URL       string
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting progress.
type ProgressFunc func(event ProgressEvent)

// Run converts every URL and returns one Result per distinct URL in input
// order. Duplicate URLs are converted once. Per-URL failures are reported
// in Result.Err; the returned error is non-nil only for invalid input or a
// canceled context.
//
// The progress callback, if provided, is called from a single goroutine.
func (r *Runner) Run(ctx context.Context, urls []string, progress ProgressFunc) ([]Result, error) {
	urls = Dedupe(urls)
	if len(urls) == 0 {
		return nil, javadts.Errorf(javadts.EINVALID, "at least one URL required")
	}

	logger := r.logger().With("run", uuid.New().String())
	logger.Info("batch started", "urls", len(urls))
	begin := time.Now()

	concurrency := r.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	type indexed struct {
		position int
		result   Result
	}
	resultCh := make(chan indexed, len(urls))

	total := len(urls)
	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: total})
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for i, url := range urls {
			g.Go(func() error {
				resultCh <- indexed{position: i, result: r.convert(gctx, logger, url)}
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	results := make([]Result, len(urls))
	var completed, failed int
	for res := range resultCh {
		results[res.position] = res.result
		completed++

		if res.result.Err != nil {
			failed++
			if progress != nil {
				progress(ProgressEvent{Type: ProgressFailed, Completed: completed, Total: total, URL: res.result.URL, Error: res.result.Err})
			}
			continue
		}
		if progress != nil {
			progress(ProgressEvent{Type: ProgressCompleted, Completed: completed, Total: total, URL: res.result.URL})
		}
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})
	}

	logger.Info("batch finished",
		"urls", total,
		"failed", failed,
		"duration", time.Since(begin),
	)

	if err := ctx.Err(); err != nil {
		return results, err
	}
	return results, nil
}

// convert runs the fetch, extract and emit pipeline for one URL.
func (r *Runner) convert(ctx context.Context, logger *slog.Logger, url string) Result {
	result := Result{URL: url}

	if r.RateLimiter != nil {
		if err := r.RateLimiter.Wait(ctx, hostOf(url)); err != nil {
			result.Err = err
			return result
		}
	}

	delays := r.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}
	onRetry := func(url string, attempt int, err error) {
		logger.Warn("retry", "url", url, "attempt", attempt, "err", err)
	}
	html, err := FetchWithRetryDelays(ctx, url, r.Fetcher.Fetch, onRetry, delays)
	if err != nil {
		result.Err = err
		return result
	}

	page, err := r.Extractor.Extract(html)
	if err != nil {
		result.Err = err
		return result
	}
	page.URL = url

	emitter := r.Emitter
	if emitter == nil {
		emitter = javadts.NewEmitter(javadts.DefaultTypeMap())
	}
	result.Declaration, result.Err = emitter.Generate(page)
	return result
}

func (r *Runner) logger() *slog.Logger {
	if r.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return r.Logger
}

// Dedupe returns urls without blanks or repeats, keeping first occurrences
// in order.
func Dedupe(urls []string) []string {
	seen := make(map[string]struct{}, len(urls))
	out := make([]string, 0, len(urls))
	for _, u := range urls {
		if u == "" {
			continue
		}
		if _, ok := seen[u]; ok {
			continue
		}
		seen[u] = struct{}{}
		out = append(out, u)
	}
	return out
}

// Failed counts the results that carry an error.
func Failed(results []Result) int {
	n := 0
	for _, r := range results {
		if r.Err != nil {
			n++
		}
	}
	return n
}
