package pages

import (
	"strings"

	"github.com/playwright-community/playwright-go"
)

// probeText reads the trimmed text of the first match of loc.
// A missing element is reported as found=false; driver errors are returned.
func probeText(loc playwright.Locator) (string, bool, error) {
	n, err := loc.Count()
	if err != nil {
		return "", false, err
	}
	if n == 0 {
		return "", false, nil
	}
	text, err := loc.First().TextContent()
	if err != nil {
		return "", false, err
	}
	return strings.TrimSpace(text), true, nil
}

// probeVisible reports whether loc has a visible first match.
func probeVisible(loc playwright.Locator) (bool, error) {
	n, err := loc.Count()
	if err != nil || n == 0 {
		return false, err
	}
	return loc.First().IsVisible()
}

// texts collects the trimmed, non-empty text of every match of loc.
func texts(loc playwright.Locator) ([]string, error) {
	all, err := loc.All()
	if err != nil {
		return nil, err
	}
	var out []string
	for _, l := range all {
		text, err := l.TextContent()
		if err != nil {
			return nil, err
		}
		if text = strings.TrimSpace(text); text != "" {
			out = append(out, text)
		}
	}
	return out, nil
}

// categoryText strips the " /" separator Lever appends to posting categories.
func categoryText(s string) string {
	return strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "/"))
}
