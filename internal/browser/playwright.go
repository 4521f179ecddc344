package browser

import (
	"context"
	"fmt"
	"log"

	"go-lever-e2e/internal/config"

	"github.com/playwright-community/playwright-go"
)

type PlaywrightManager struct {
	pw      *playwright.Playwright
	browser playwright.Browser
}

// NewPlaywright starts the driver and launches the configured browser engine.
func NewPlaywright(ctx context.Context, cfg config.BrowserConfig) (*PlaywrightManager, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	pw, err := playwright.Run()
	if err != nil {
		return nil, fmt.Errorf("could not start playwright: %w", err)
	}

	browserType, err := engine(pw, cfg.Name)
	if err != nil {
		pw.Stop()
		return nil, err
	}

	b, err := browserType.Launch(LaunchOptions(cfg))
	if err != nil {
		pw.Stop()
		return nil, fmt.Errorf("could not launch %s: %w", cfg.Name, err)
	}
	log.Printf("🌐 Launched %s (headless=%v)", cfg.Name, cfg.Headless)

	return &PlaywrightManager{pw: pw, browser: b}, nil
}

func engine(pw *playwright.Playwright, name string) (playwright.BrowserType, error) {
	switch name {
	case "", "chromium":
		return pw.Chromium, nil
	case "firefox":
		return pw.Firefox, nil
	case "webkit":
		return pw.WebKit, nil
	}
	return nil, fmt.Errorf("unsupported browser %q", name)
}

// LaunchOptions maps the browser config onto playwright launch options.
func LaunchOptions(cfg config.BrowserConfig) playwright.BrowserTypeLaunchOptions {
	opts := playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(cfg.Headless),
	}
	if cfg.SlowMo > 0 {
		opts.SlowMo = playwright.Float(float64(cfg.SlowMo.Milliseconds()))
	}
	return opts
}

// ContextOptions maps a resolved profile onto playwright context options.
func ContextOptions(profile config.ContextProfile) playwright.BrowserNewContextOptions {
	opts := playwright.BrowserNewContextOptions{}
	if profile.Viewport.Width > 0 && profile.Viewport.Height > 0 {
		opts.Viewport = &playwright.Size{
			Width:  profile.Viewport.Width,
			Height: profile.Viewport.Height,
		}
	}
	if profile.UserAgent != "" {
		opts.UserAgent = playwright.String(profile.UserAgent)
	}
	if profile.Locale != "" {
		opts.Locale = playwright.String(profile.Locale)
	}
	if len(profile.ExtraHTTPHeaders) > 0 {
		opts.ExtraHttpHeaders = make(map[string]string, len(profile.ExtraHTTPHeaders))
		for k, v := range profile.ExtraHTTPHeaders {
			opts.ExtraHttpHeaders[k] = v
		}
	}
	return opts
}

// NewContext opens an isolated browser context for one suite or check.
func (pm *PlaywrightManager) NewContext(profile config.ContextProfile, cookies []playwright.OptionalCookie) (playwright.BrowserContext, error) {
	bctx, err := pm.browser.NewContext(ContextOptions(profile))
	if err != nil {
		return nil, fmt.Errorf("could not create context: %w", err)
	}

	if len(cookies) > 0 {
		if err := bctx.AddCookies(cookies); err != nil {
			bctx.Close()
			return nil, fmt.Errorf("could not add cookies: %w", err)
		}
	}
	return bctx, nil
}

func (pm *PlaywrightManager) Close() error {
	if pm.browser != nil {
		if err := pm.browser.Close(); err != nil {
			log.Printf("⚠️ Failed to close browser: %v", err)
		}
	}
	if pm.pw != nil {
		return pm.pw.Stop()
	}
	return nil
}
