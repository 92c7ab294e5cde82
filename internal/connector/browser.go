package connector

import "context"

// Browser is an attached browser. Handles are borrowed: closing the Browser
// releases the attachment, never the underlying process.
type Browser interface {
	Contexts() []BrowserContext
	NewContext() (BrowserContext, error)
	IsConnected() bool
	Close() error
}

// BrowserContext is a browsing context inside an attached browser.
type BrowserContext interface {
	Pages() []Page
	NewPage() (Page, error)
}

// Page is a single tab of an attached browser.
type Page interface {
	Goto(ctx context.Context, url string) error
	URL() string
	Title() (string, error)
}

// Dialer establishes a control connection to a browser's remote-debugging
// endpoint.
type Dialer interface {
	Dial(ctx context.Context, endpoint string) (Browser, error)
}
