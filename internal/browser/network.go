package browser

import (
	"time"

	"github.com/playwright-community/playwright-go"
)

// SimulateSlowNetwork delays every request made by bctx by latency.
func SimulateSlowNetwork(bctx playwright.BrowserContext, latency time.Duration) error {
	return bctx.Route("**/*", func(route playwright.Route) {
		time.Sleep(latency)
		route.Fallback()
	})
}

// BlockHosts aborts requests whose URL matches any of the glob patterns.
func BlockHosts(bctx playwright.BrowserContext, patterns ...string) error {
	for _, p := range patterns {
		if err := bctx.Route(p, func(route playwright.Route) {
			route.Abort()
		}); err != nil {
			return err
		}
	}
	return nil
}
