package dom

import (
	"errors"
	"fmt"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
)

// ErrNoMatch is returned if a selector does not match any element.
var ErrNoMatch = errors.New("no element matches selector")

// QuerySelector returns the first element below (and including) root which
// matches a CSS selector, e.g. "#chart-wrapper".
func QuerySelector(root *html.Node, selector string) (*html.Node, error) {
	sel, err := cascadia.Compile(selector)
	if err != nil {
		return nil, fmt.Errorf("invalid selector %q: %w", selector, err)
	}
	el := sel.MatchFirst(root)
	if el == nil {
		tracer().Debugf("selector %q does not match", selector)
		return nil, fmt.Errorf("%w: %q", ErrNoMatch, selector)
	}
	return el, nil
}

// QuerySelectorAll returns all elements below (and including) root which
// match a CSS selector, in document order.
func QuerySelectorAll(root *html.Node, selector string) ([]*html.Node, error) {
	sel, err := cascadia.Compile(selector)
	if err != nil {
		return nil, fmt.Errorf("invalid selector %q: %w", selector, err)
	}
	return sel.MatchAll(root), nil
}
