package pages

import (
	"fmt"
	"time"

	"go-lever-e2e/internal/browser"
	"go-lever-e2e/internal/config"

	"github.com/playwright-community/playwright-go"
)

// DefaultJobTitle is the posting both page objects are written against.
const DefaultJobTitle = "Software Engineer - QA"

// basePage holds what both page objects share: the tab, the site and the
// cookie banner that Lever renders on every page.
type basePage struct {
	page     playwright.Page
	site     config.SiteConfig
	timeouts config.TimeoutConfig
	expect   playwright.PlaywrightAssertions

	CookieDismiss playwright.Locator
}

func newBasePage(page playwright.Page, cfg *config.Config) basePage {
	return basePage{
		page:          page,
		site:          cfg.Site,
		timeouts:      cfg.Timeouts,
		expect:        playwright.NewPlaywrightAssertions(ms(cfg.Timeouts.Assertion)),
		CookieDismiss: page.Locator("button.cc-dismiss").First(),
	}
}

func ms(d time.Duration) float64 {
	return float64(d.Milliseconds())
}

// Page is the underlying tab.
func (b *basePage) Page() playwright.Page { return b.page }

func (b *basePage) goTo(url string) error {
	if _, err := b.page.Goto(url, playwright.PageGotoOptions{
		Timeout: playwright.Float(ms(b.timeouts.Navigation)),
	}); err != nil {
		return fmt.Errorf("navigate to %s: %w", url, err)
	}
	return nil
}

func (b *basePage) loadTimeout(timeout time.Duration) time.Duration {
	if timeout <= 0 {
		return b.timeouts.PageLoad
	}
	return timeout
}

func waitFor(loc playwright.Locator, state *playwright.WaitForSelectorState, timeout time.Duration) error {
	return loc.WaitFor(playwright.LocatorWaitForOptions{
		State:   state,
		Timeout: playwright.Float(ms(timeout)),
	})
}

func (b *basePage) PageTitle() (string, error) {
	return b.page.Title()
}

// DismissCookieNotice closes the cookie banner if it is showing.
func (b *basePage) DismissCookieNotice() error {
	visible, err := b.CookieDismiss.IsVisible()
	if err != nil || !visible {
		return err
	}
	return b.CookieDismiss.Click()
}

func (b *basePage) ScrollToBottom() error {
	return browser.ScrollToBottom(b.page)
}

// Assertion helpers. Each failure is an *AssertionError naming the field.

func (b *basePage) expectVisible(field string, loc playwright.Locator) error {
	if err := b.expect.Locator(loc).ToBeVisible(); err != nil {
		return assertionFailed(field, "visible", "not visible", err)
	}
	return nil
}

func (b *basePage) expectHidden(field string, loc playwright.Locator) error {
	if err := b.expect.Locator(loc).ToBeHidden(); err != nil {
		actual := "visible"
		if text, found, perr := probeText(loc); perr == nil && found {
			actual = fmt.Sprintf("visible %q", text)
		}
		return assertionFailed(field, "hidden", actual, err)
	}
	return nil
}

func (b *basePage) expectEnabled(field string, loc playwright.Locator) error {
	if err := b.expect.Locator(loc).ToBeEnabled(); err != nil {
		return assertionFailed(field, "enabled", "disabled", err)
	}
	return nil
}

func (b *basePage) expectText(field string, loc playwright.Locator, expected string) error {
	if err := b.expect.Locator(loc).ToContainText(expected); err != nil {
		actual, _, _ := probeText(loc)
		return assertionFailed(field, fmt.Sprintf("text containing %q", expected), fmt.Sprintf("%q", actual), err)
	}
	return nil
}

func (b *basePage) expectValue(field string, loc playwright.Locator, expected string) error {
	if err := b.expect.Locator(loc).ToHaveValue(expected); err != nil {
		actual, _ := loc.InputValue(playwright.LocatorInputValueOptions{Timeout: playwright.Float(1000)})
		return assertionFailed(field, fmt.Sprintf("value %q", expected), fmt.Sprintf("%q", actual), err)
	}
	return nil
}

func (b *basePage) expectChecked(field string, loc playwright.Locator) error {
	if err := b.expect.Locator(loc).ToBeChecked(); err != nil {
		return assertionFailed(field, "checked", "unchecked", err)
	}
	return nil
}
