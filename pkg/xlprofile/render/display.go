package render

import (
	"io"
	"os"

	"github.com/pkg/browser"
)

// Displayer shows a rendered chart page.
type Displayer interface {
	Display(page io.Reader) error
}

// DisplayerFunc adapts a function to the Displayer interface.
type DisplayerFunc func(page io.Reader) error

// Display calls f(page).
func (f DisplayerFunc) Display(page io.Reader) error {
	return f(page)
}

// BrowserDisplayer opens the page in the system web browser.
type BrowserDisplayer struct{}

// Display hands the page to the browser and returns once it is launched.
func (BrowserDisplayer) Display(page io.Reader) error {
	return browser.OpenReader(page)
}

// FileDisplayer saves the page to Path instead of showing it.
type FileDisplayer struct {
	Path string
}

// Display writes the page to the configured path.
func (d FileDisplayer) Display(page io.Reader) error {
	f, err := os.Create(d.Path)
	if err != nil {
		return err
	}
	if _, err := io.Copy(f, page); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
