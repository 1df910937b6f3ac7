package rod

import (
	"fmt"
	"sync"

	"github.com/fwojciec/javadts"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
)

// DefaultMaxPages is the number of rendered pages after which the browser
// is replaced with a fresh instance.
const DefaultMaxPages = 75

// PageBudget returns a page budget for a batch converting concurrency
// pages at once: DefaultMaxPages rounded up to a multiple of concurrency,
// so the browser is swapped between waves of pages rather than inside one.
func PageBudget(concurrency int) int {
	if concurrency <= 1 {
		return DefaultMaxPages
	}
	return (DefaultMaxPages + concurrency - 1) / concurrency * concurrency
}

// BrowserManager owns a headless Chrome instance and replaces it after a
// page budget is spent. A replacement waits until every page acquired from
// the old browser is released, so in-flight renders are never cut off.
//
// BrowserManager is safe for concurrent use.
type BrowserManager struct {
	mu       sync.Mutex
	idle     *sync.Cond
	browser  *rod.Browser
	launcher *launcher.Launcher
	bin      string
	maxPages int
	rendered int // pages acquired from the current browser
	active   int // pages acquired and not yet released
	closed   bool
}

// ManagerOption configures a BrowserManager.
type ManagerOption func(*BrowserManager)

// WithMaxPages sets how many pages are rendered before the browser is
// replaced. Zero or less never replaces it.
func WithMaxPages(n int) ManagerOption {
	return func(bm *BrowserManager) {
		bm.maxPages = n
	}
}

// WithBrowserBin uses the Chrome binary at path instead of the one rod
// finds or downloads.
func WithBrowserBin(path string) ManagerOption {
	return func(bm *BrowserManager) {
		bm.bin = path
	}
}

// NewBrowserManager launches a headless browser.
// Close must be called when the BrowserManager is no longer needed.
func NewBrowserManager(opts ...ManagerOption) (*BrowserManager, error) {
	bm := &BrowserManager{maxPages: DefaultMaxPages}
	bm.idle = sync.NewCond(&bm.mu)
	for _, opt := range opts {
		opt(bm)
	}

	b, l, err := bm.launch()
	if err != nil {
		return nil, err
	}
	bm.browser, bm.launcher = b, l
	return bm, nil
}

// Acquire returns the browser to render one page on and a release func
// that must be called once the page is closed. When the budget is spent,
// Acquire blocks until the current pages are released and the browser is
// replaced.
func (bm *BrowserManager) Acquire() (*rod.Browser, func(), error) {
	bm.mu.Lock()
	defer bm.mu.Unlock()

	for {
		if bm.closed {
			return nil, nil, javadts.Errorf(javadts.EINVALID, "browser manager is closed")
		}
		if bm.maxPages <= 0 || bm.rendered < bm.maxPages {
			break
		}
		if bm.active == 0 {
			bm.replace()
			break
		}
		bm.idle.Wait()
	}

	bm.rendered++
	bm.active++
	return bm.browser, sync.OnceFunc(bm.release), nil
}

func (bm *BrowserManager) release() {
	bm.mu.Lock()
	defer bm.mu.Unlock()

	bm.active--
	if bm.active == 0 {
		bm.idle.Broadcast()
	}
}

// Rendered returns the number of pages acquired from the current browser.
func (bm *BrowserManager) Rendered() int {
	bm.mu.Lock()
	defer bm.mu.Unlock()
	return bm.rendered
}

// Close releases browser resources and wakes blocked Acquire calls.
// Close is safe to call multiple times.
func (bm *BrowserManager) Close() error {
	bm.mu.Lock()
	defer bm.mu.Unlock()

	if bm.closed {
		return nil
	}
	bm.closed = true
	bm.idle.Broadcast()

	var err error
	if bm.browser != nil {
		err = bm.browser.Close()
		bm.browser = nil
	}
	if bm.launcher != nil {
		bm.launcher.Kill()
		bm.launcher = nil
	}
	return err
}

// LauncherPID returns the process ID of the browser launcher, or 0 when
// no browser is running.
func (bm *BrowserManager) LauncherPID() int {
	bm.mu.Lock()
	defer bm.mu.Unlock()
	if bm.launcher == nil {
		return 0
	}
	return bm.launcher.PID()
}

func (bm *BrowserManager) launch() (*rod.Browser, *launcher.Launcher, error) {
	l := launcher.New().
		Set("disable-background-timer-throttling").
		Set("disable-renderer-backgrounding").
		Set("disable-dev-shm-usage").
		Leakless(true).
		Headless(true)
	if bm.bin != "" {
		l = l.Bin(bm.bin)
	}

	u, err := l.Launch()
	if err != nil {
		return nil, nil, fmt.Errorf("launching browser: %w", err)
	}

	b := rod.New().ControlURL(u)
	if err := b.Connect(); err != nil {
		l.Kill()
		return nil, nil, fmt.Errorf("connecting to browser: %w", err)
	}
	return b, l, nil
}

// replace swaps in a new browser. A failed launch keeps the old one for
// another budget. Must be called with mu held and no active pages.
func (bm *BrowserManager) replace() {
	bm.rendered = 0

	b, l, err := bm.launch()
	if err != nil {
		return
	}
	if bm.browser != nil {
		_ = bm.browser.Close()
	}
	if bm.launcher != nil {
		bm.launcher.Kill()
	}
	bm.browser, bm.launcher = b, l
}
