package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// Sentinel errors for fetch operations.
var (
	ErrFetchURL       = errors.New("failed to fetch URL")
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageLoad       = errors.New("page failed to load")
)

// maxFetchSize caps fetched response bodies (16MB).
const maxFetchSize = 16 << 20

// fetcher abstracts URL fetching to allow plain HTTP and browser-rendered backends.
type fetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
	Close() error
}

// Compile-time interface checks
var (
	_ fetcher = (*httpFetcher)(nil)
	_ fetcher = (*rodFetcher)(nil)
)

// httpFetcher fetches page HTML over plain HTTP.
type httpFetcher struct {
	client *http.Client
}

// newHTTPFetcher creates an httpFetcher with the given timeout.
func newHTTPFetcher(timeout time.Duration) *httpFetcher {
	return &httpFetcher{client: &http.Client{Timeout: timeout}}
}

// Fetch retrieves the raw HTML at url.
func (f *httpFetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrFetchURL, err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrFetchURL, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return "", fmt.Errorf("%w: %s returned %s", ErrFetchURL, url, resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxFetchSize))
	if err != nil {
		return "", fmt.Errorf("%w: reading response: %v", ErrFetchURL, err)
	}

	return string(body), nil
}

// Close is a no-op for httpFetcher.
func (f *httpFetcher) Close() error { return nil }

// rodFetcher fetches the JS-rendered DOM using headless Chrome via go-rod.
// Rod automatically downloads Chromium on first run if not found.
type rodFetcher struct {
	browser *rod.Browser
	timeout time.Duration
}

// newRodFetcher creates a rodFetcher with the given timeout.
func newRodFetcher(timeout time.Duration) *rodFetcher {
	return &rodFetcher{timeout: timeout}
}

// ensureBrowser lazily connects to the browser.
func (f *rodFetcher) ensureBrowser() error {
	if f.browser != nil {
		return nil
	}

	// Configure launcher
	l := launcher.New()

	// Use pre-installed browser if specified (Docker/containerized environments)
	if bin := os.Getenv("ROD_BROWSER_BIN"); bin != "" {
		l = l.Bin(bin)
	}

	// NoSandbox required for CI and containerized environments
	if os.Getenv("CI") == "true" || os.Getenv("ROD_BROWSER_BIN") != "" {
		l = l.NoSandbox(true)
	}
	u, err := l.Launch()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}

	f.browser = rod.New().ControlURL(u)
	if err := f.browser.Connect(); err != nil {
		f.browser = nil
		return fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}
	return nil
}

// Fetch loads url in headless Chrome, waits for the page to finish loading,
// and returns the rendered DOM as HTML.
// Returns explicit errors instead of panicking when browser operations fail.
func (f *rodFetcher) Fetch(ctx context.Context, url string) (string, error) {
	// Check context before starting
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if err := f.ensureBrowser(); err != nil {
		return "", err
	}

	page, err := f.browser.Page(proto.TargetCreateTarget{URL: url})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrPageLoad, err)
	}
	defer page.Close()

	// Wait for page to load with timeout from context or default
	timeout := f.timeout
	if deadline, ok := ctx.Deadline(); ok {
		timeout = time.Until(deadline)
		if timeout <= 0 {
			return "", context.DeadlineExceeded
		}
	}

	if err := page.Timeout(timeout).WaitLoad(); err != nil {
		return "", fmt.Errorf("%w: %v", ErrPageLoad, err)
	}

	rendered, err := page.HTML()
	if err != nil {
		return "", fmt.Errorf("%w: reading rendered DOM: %v", ErrPageLoad, err)
	}

	return rendered, nil
}

// Close releases browser resources.
func (f *rodFetcher) Close() error {
	if f.browser != nil {
		err := f.browser.Close()
		f.browser = nil
		return err
	}
	return nil
}
