// Package browser provides the script-rendering page capability the vendor
// adapters drive. The chromedp implementation runs one Chrome process per
// session and one tab per page.
package browser

import (
	"context"
	"errors"
)

// ErrClosed is returned by pages and sessions used after Close.
var ErrClosed = errors.New("browser: closed")

// Page is a single browser tab. A Page is not safe for concurrent use; the
// analyzer lends each page to one adapter at a time.
type Page interface {
	// Navigate loads url and waits for the document to be ready.
	Navigate(ctx context.Context, url string) error
	// WaitVisible blocks until an element matching the CSS selector is
	// visible or ctx is done.
	WaitVisible(ctx context.Context, selector string) error
	// HTML returns the rendered document.
	HTML(ctx context.Context) (string, error)
}

// Session owns a browser process and the pages opened from it.
type Session interface {
	NewPage(ctx context.Context) (Page, error)
	Close() error
}

// Launcher starts browser sessions.
type Launcher interface {
	Launch(ctx context.Context) (Session, error)
}

// OpenPages opens n pages on s. On failure the pages already opened stay
// owned by s and are released by s.Close.
func OpenPages(ctx context.Context, s Session, n int) ([]Page, error) {
	if n < 1 {
		n = 1
	}

	pages := make([]Page, 0, n)
	for range n {
		p, err := s.NewPage(ctx)
		if err != nil {
			return nil, err
		}
		pages = append(pages, p)
	}

	return pages, nil
}
