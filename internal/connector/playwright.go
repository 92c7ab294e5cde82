package connector

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/playwright-community/playwright-go"
)

var (
	pwOnce     sync.Once
	pwInstance *playwright.Playwright
	pwErr      error
)

// getPlaywright returns the process-wide Playwright driver. Browser downloads
// are skipped: this dialer only ever attaches to an already-running Chrome.
func getPlaywright() (*playwright.Playwright, error) {
	pwOnce.Do(func() {
		if err := playwright.Install(&playwright.RunOptions{SkipInstallBrowsers: true}); err != nil {
			pwErr = fmt.Errorf("failed to install playwright driver: %w", err)
			return
		}

		pw, err := playwright.Run()
		if err != nil {
			pwErr = fmt.Errorf("failed to start playwright: %w", err)
			return
		}
		pwInstance = pw
	})

	return pwInstance, pwErr
}

// PlaywrightDialer attaches to a browser over CDP using Playwright.
type PlaywrightDialer struct{}

func (PlaywrightDialer) Dial(ctx context.Context, endpoint string) (Browser, error) {
	pw, err := getPlaywright()
	if err != nil {
		return nil, err
	}

	browser, err := pw.Chromium.ConnectOverCDP(endpoint)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to CDP at %s: %w", endpoint, err)
	}
	return &pwBrowser{browser: browser}, nil
}

type pwBrowser struct {
	browser playwright.Browser
}

func (b *pwBrowser) Contexts() []BrowserContext {
	contexts := b.browser.Contexts()
	wrapped := make([]BrowserContext, 0, len(contexts))
	for _, c := range contexts {
		wrapped = append(wrapped, &pwContext{context: c})
	}
	return wrapped
}

func (b *pwBrowser) NewContext() (BrowserContext, error) {
	c, err := b.browser.NewContext()
	if err != nil {
		return nil, err
	}
	return &pwContext{context: c}, nil
}

func (b *pwBrowser) IsConnected() bool {
	return b.browser.IsConnected()
}

// Close releases the CDP connection. For a browser attached over CDP this
// disconnects without terminating the process.
func (b *pwBrowser) Close() error {
	return b.browser.Close()
}

type pwContext struct {
	context playwright.BrowserContext
}

func (c *pwContext) Pages() []Page {
	pages := c.context.Pages()
	wrapped := make([]Page, 0, len(pages))
	for _, p := range pages {
		wrapped = append(wrapped, &pwPage{page: p})
	}
	return wrapped
}

func (c *pwContext) NewPage() (Page, error) {
	p, err := c.context.NewPage()
	if err != nil {
		return nil, err
	}
	return &pwPage{page: p}, nil
}

type pwPage struct {
	page playwright.Page
}

func (p *pwPage) Goto(ctx context.Context, url string) error {
	opts := playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateLoad,
	}
	if deadline, ok := ctx.Deadline(); ok {
		opts.Timeout = playwright.Float(float64(time.Until(deadline).Milliseconds()))
	}
	_, err := p.page.Goto(url, opts)
	return err
}

func (p *pwPage) URL() string {
	return p.page.URL()
}

func (p *pwPage) Title() (string, error) {
	return p.page.Title()
}
