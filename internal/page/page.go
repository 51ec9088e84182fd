// Package page loads registration pages into parsed documents.
//
// The page package is the input side of the pipeline: it turns a saved HTML
// file, a reader, or a live URL into a goquery document for the schedule
// parser. It knows nothing about the table layout itself.
package page

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/PuerkitoBio/goquery"
)

const (
	// UserAgent identifies fetches made on behalf of the CLI.
	UserAgent = "langara-ics/1.0 (github.com/Shexter/langara-ics)"

	// DefaultTimeout bounds a page fetch.
	DefaultTimeout = 30 * time.Second
)

// Loader fetches registration pages over HTTP.
type Loader struct {
	client *http.Client
}

// NewLoader creates a Loader with the given fetch timeout. A zero timeout
// uses DefaultTimeout.
func NewLoader(timeout time.Duration) *Loader {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Loader{
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// FromURL fetches a page and parses it into a document.
func (l *Loader) FromURL(url string) (*goquery.Document, error) {
	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", UserAgent)

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	return FromReader(resp.Body)
}

// FromFile parses a saved HTML file into a document.
func FromFile(path string) (*goquery.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening page file: %w", err)
	}
	defer f.Close()

	return FromReader(f)
}

// FromReader parses HTML from r into a document.
func FromReader(r io.Reader) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}
	return doc, nil
}
