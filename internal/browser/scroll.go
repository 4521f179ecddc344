package browser

import (
	"github.com/playwright-community/playwright-go"
)

// ScrollToBottom scrolls the page so lazy sections and the footer render.
func ScrollToBottom(page playwright.Page) error {
	_, err := page.Evaluate("window.scrollTo(0, document.body.scrollHeight)")
	return err
}
