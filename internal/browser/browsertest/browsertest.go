// Package browsertest provides in-memory browser fakes that serve fixture
// HTML, for testing code that drives browser.Page.
package browsertest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/PuerkitoBio/goquery"

	"github.com/donaldgifford/mtg-price-tracker/internal/browser"
)

// Page is a fake browser.Page. Navigate looks the URL up in the fixture
// set; WaitVisible succeeds when the selector matches the loaded document
// and otherwise returns ctx's error after it is done, or
// context.DeadlineExceeded immediately when ctx has no deadline.
type Page struct {
	mu       sync.Mutex
	fixtures map[string]string
	navErr   map[string]error
	current  string
	doc      *goquery.Document
	visited  []string
}

// NewPage creates a Page serving fixtures keyed by URL.
func NewPage(fixtures map[string]string) *Page {
	return &Page{
		fixtures: fixtures,
		navErr:   map[string]error{},
	}
}

// FailNavigation makes Navigate to url return err.
func (p *Page) FailNavigation(url string, err error) *Page {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.navErr[url] = err
	return p
}

// Visited returns every URL passed to Navigate, in order.
func (p *Page) Visited() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.visited...)
}

// Navigate implements browser.Page.
func (p *Page) Navigate(ctx context.Context, url string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.visited = append(p.visited, url)

	if err := ctx.Err(); err != nil {
		return err
	}
	if err, ok := p.navErr[url]; ok {
		return fmt.Errorf("navigating to %s: %w", url, err)
	}

	html, ok := p.fixtures[url]
	if !ok {
		return fmt.Errorf("navigating to %s: no fixture", url)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return fmt.Errorf("parsing fixture for %s: %w", url, err)
	}

	p.current = html
	p.doc = doc
	return nil
}

// WaitVisible implements browser.Page.
func (p *Page) WaitVisible(ctx context.Context, selector string) error {
	p.mu.Lock()
	found := p.doc != nil && p.doc.Find(selector).Length() > 0
	p.mu.Unlock()

	if found {
		return nil
	}
	if _, ok := ctx.Deadline(); !ok {
		return context.DeadlineExceeded
	}
	<-ctx.Done()
	return ctx.Err()
}

// HTML implements browser.Page.
func (p *Page) HTML(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.doc == nil {
		return "", fmt.Errorf("no document loaded")
	}
	return p.current, nil
}

// Session is a fake browser.Session handing out pages built from the same
// fixtures.
type Session struct {
	fixtures map[string]string

	mu     sync.Mutex
	pages  []*Page
	closed bool
}

// NewPage implements browser.Session.
func (s *Session) NewPage(_ context.Context) (browser.Page, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, browser.ErrClosed
	}

	p := NewPage(s.fixtures)
	s.pages = append(s.pages, p)
	return p, nil
}

// Close implements browser.Session.
func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

// Closed reports whether Close was called.
func (s *Session) Closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

// Pages returns the pages opened so far.
func (s *Session) Pages() []*Page {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*Page(nil), s.pages...)
}

// Launcher is a fake browser.Launcher that counts launches.
type Launcher struct {
	Fixtures map[string]string
	// Err, when set, is returned by every Launch.
	Err error

	launches atomic.Int32
	mu       sync.Mutex
	sessions []*Session
}

// Launch implements browser.Launcher.
func (l *Launcher) Launch(_ context.Context) (browser.Session, error) {
	l.launches.Add(1)
	if l.Err != nil {
		return nil, l.Err
	}

	s := &Session{fixtures: l.Fixtures}
	l.mu.Lock()
	l.sessions = append(l.sessions, s)
	l.mu.Unlock()
	return s, nil
}

// Launches returns how many times Launch was called.
func (l *Launcher) Launches() int {
	return int(l.launches.Load())
}

// Sessions returns the sessions launched so far.
func (l *Launcher) Sessions() []*Session {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]*Session(nil), l.sessions...)
}
