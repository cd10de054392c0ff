package browser

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/chromedp/chromedp"
)

// ChromeLauncher starts headless Chrome sessions through chromedp.
type ChromeLauncher struct {
	headless  bool
	execPath  string
	userAgent string
	log       *slog.Logger
}

// ChromeOption configures a ChromeLauncher.
type ChromeOption func(*ChromeLauncher)

// WithHeadless toggles headless mode. Default true.
func WithHeadless(headless bool) ChromeOption {
	return func(l *ChromeLauncher) { l.headless = headless }
}

// WithExecPath sets the Chrome binary. Default lets chromedp search PATH.
func WithExecPath(path string) ChromeOption {
	return func(l *ChromeLauncher) { l.execPath = path }
}

// WithUserAgent overrides the browser user agent.
func WithUserAgent(ua string) ChromeOption {
	return func(l *ChromeLauncher) { l.userAgent = ua }
}

// WithLogger sets the launcher logger.
func WithLogger(log *slog.Logger) ChromeOption {
	return func(l *ChromeLauncher) { l.log = log }
}

// NewChromeLauncher creates a ChromeLauncher.
func NewChromeLauncher(opts ...ChromeOption) *ChromeLauncher {
	l := &ChromeLauncher{
		headless: true,
		log:      slog.Default(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Launch starts a Chrome process and returns a session bound to it.
func (l *ChromeLauncher) Launch(ctx context.Context) (Session, error) {
	opts := append([]chromedp.ExecAllocatorOption{}, chromedp.DefaultExecAllocatorOptions[:]...)
	opts = append(opts, chromedp.Flag("headless", l.headless))
	if l.execPath != "" {
		opts = append(opts, chromedp.ExecPath(l.execPath))
	}
	if l.userAgent != "" {
		opts = append(opts, chromedp.UserAgent(l.userAgent))
	}

	allocCtx, allocCancel := chromedp.NewExecAllocator(context.WithoutCancel(ctx), opts...)
	browserCtx, browserCancel := chromedp.NewContext(allocCtx)

	// The first Run starts the browser process.
	if err := chromedp.Run(browserCtx); err != nil {
		browserCancel()
		allocCancel()
		return nil, fmt.Errorf("starting chrome: %w", err)
	}

	l.log.Debug("browser session started", "headless", l.headless)

	return &chromeSession{
		ctx: browserCtx,
		cancel: func() {
			browserCancel()
			allocCancel()
		},
		log: l.log,
	}, nil
}

type chromeSession struct {
	ctx    context.Context
	cancel context.CancelFunc
	log    *slog.Logger

	mu     sync.Mutex
	pages  []*chromePage
	closed bool
}

func (s *chromeSession) NewPage(_ context.Context) (Page, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, ErrClosed
	}

	tabCtx, cancel := chromedp.NewContext(s.ctx)
	if err := chromedp.Run(tabCtx); err != nil {
		cancel()
		return nil, fmt.Errorf("opening tab: %w", err)
	}

	p := &chromePage{ctx: tabCtx, cancel: cancel}
	s.pages = append(s.pages, p)
	return p, nil
}

func (s *chromeSession) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true

	for _, p := range s.pages {
		p.cancel()
	}
	s.cancel()
	s.log.Debug("browser session closed", "pages", len(s.pages))
	return nil
}

type chromePage struct {
	ctx    context.Context
	cancel context.CancelFunc
}

// run executes actions on the tab, bounded by the caller's deadline and
// cancellation.
func (p *chromePage) run(ctx context.Context, actions ...chromedp.Action) error {
	if p.ctx.Err() != nil {
		return ErrClosed
	}

	runCtx, cancel := context.WithCancel(p.ctx)
	defer cancel()

	if deadline, ok := ctx.Deadline(); ok {
		var cancelDeadline context.CancelFunc
		runCtx, cancelDeadline = context.WithDeadline(runCtx, deadline)
		defer cancelDeadline()
	}

	stop := context.AfterFunc(ctx, cancel)
	defer stop()

	return chromedp.Run(runCtx, actions...)
}

func (p *chromePage) Navigate(ctx context.Context, url string) error {
	if err := p.run(ctx, chromedp.Navigate(url)); err != nil {
		return fmt.Errorf("navigating to %s: %w", url, err)
	}
	return nil
}

func (p *chromePage) WaitVisible(ctx context.Context, selector string) error {
	return p.run(ctx, chromedp.WaitVisible(selector, chromedp.ByQuery))
}

func (p *chromePage) HTML(ctx context.Context) (string, error) {
	var html string
	if err := p.run(ctx, chromedp.OuterHTML("html", &html, chromedp.ByQuery)); err != nil {
		return "", fmt.Errorf("reading document: %w", err)
	}
	return html, nil
}
