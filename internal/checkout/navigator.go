package checkout

import (
	"fmt"
	"io"

	"github.com/pkg/browser"
)

// Navigator is the navigation port: it sends the user agent to a URL. It
// exists so the checkout flow can be exercised without a real browsing
// context.
type Navigator interface {
	NavigateTo(url string) error
}

// BrowserNavigator opens the URL in the system browser, the closest
// equivalent of a full-page navigation for a native client.
type BrowserNavigator struct{}

func (BrowserNavigator) NavigateTo(url string) error {
	return browser.OpenURL(url)
}

// PrintNavigator writes the URL to W instead of navigating. Useful for
// headless environments and scripts that pipe the URL elsewhere.
type PrintNavigator struct {
	W io.Writer
}

func (p PrintNavigator) NavigateTo(url string) error {
	_, err := fmt.Fprintln(p.W, url)
	return err
}
