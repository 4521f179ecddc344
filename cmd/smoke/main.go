package main

import (
	"context"
	"log"
	"os"
	"path/filepath"
	"time"

	"go-lever-e2e/internal/browser"
	"go-lever-e2e/internal/checks"
	"go-lever-e2e/internal/config"
	"go-lever-e2e/internal/reporter"

	"github.com/playwright-community/playwright-go"
)

// analytics and chat widgets only slow the job board down
var blockedHosts = []string{
	"**/*google-analytics.com/**",
	"**/*googletagmanager.com/**",
	"**/*hotjar.com/**",
	"**/*intercom.io/**",
}

type errorSender interface {
	SendError(err error) error
}

// notifyError forwards a fatal error to Telegram when it is configured.
func notifyError(tg errorSender, err error) {
	if tg == nil {
		return
	}
	if serr := tg.SendError(err); serr != nil {
		log.Printf("⚠️ Failed to send error to Telegram: %v", serr)
	}
}

// exitCode is 1 unless every check passed.
func exitCode(s checks.Summary) int {
	if s.OK() {
		return 0
	}
	return 1
}

func main() {
	os.Exit(run())
}

// run returns the process exit code so deferred cleanup always happens.
func run() int {
	//load config
	cfg := config.Load()
	log.Printf("🔧 Config loaded. Org: %s, browser: %s", cfg.Site.Org, cfg.Browser.Name)

	//setup context with timeout = 10 mins
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	var tg *reporter.TelegramReporter
	var errs errorSender
	if cfg.TelegramEnabled() {
		r, err := reporter.NewTelegramReporter(cfg)
		if err != nil {
			log.Printf("⚠️ Telegram disabled: %v", err)
		} else {
			tg, errs = r, r
			log.Println("🤖 Telegram reporter initialized.")
		}
	}

	pwManager, err := browser.NewPlaywright(ctx, cfg.Browser)
	if err != nil {
		log.Printf("❌ Failed to init Playwright: %v", err)
		notifyError(errs, err)
		return 1
	}
	defer pwManager.Close()

	//cookies are optional, a consent cookie keeps the banner away
	var cookies []playwright.OptionalCookie
	cookieFile := filepath.Join(cfg.CookiesPath, "cookies-lever.json")
	if c, err := browser.LoadCookies(cookieFile); err != nil {
		log.Printf("⚠️ Could not load cookies from %s: %v. Continuing.", cookieFile, err)
	} else {
		log.Printf("🍪 Loaded %d cookies", len(c))
		cookies = c
	}

	resumeDir, err := os.MkdirTemp("", "lever-resume-*")
	if err != nil {
		log.Printf("❌ Failed to create resume dir: %v", err)
		notifyError(errs, err)
		return 1
	}
	defer os.RemoveAll(resumeDir)

	runner := checks.NewRunner(cfg, pwManager, cookies)
	runner.Prepare = func(bctx playwright.BrowserContext) error {
		return browser.BlockHosts(bctx, blockedHosts...)
	}

	summary := runner.Run(ctx, checks.All(cfg, resumeDir, uint64(time.Now().UnixNano())))

	//save results
	if path, err := checks.Save(cfg.LogDir, summary); err != nil {
		log.Printf("⚠️ Failed to save summary: %v", err)
	} else {
		log.Printf("📁 Results saved to %s", path)
	}

	if tg != nil {
		if err := tg.SendSummary(summary, cfg.Site); err != nil {
			log.Printf("⚠️ Failed to send summary to Telegram: %v", err)
		}
	}

	log.Println("🏁 Execution finished.")
	return exitCode(summary)
}
