package checks

import (
	"context"
	"log"
	"time"

	"go-lever-e2e/internal/config"
	"go-lever-e2e/utils"

	"github.com/google/uuid"
	"github.com/playwright-community/playwright-go"
)

// ContextFactory creates browser contexts. *browser.PlaywrightManager satisfies it.
type ContextFactory interface {
	NewContext(profile config.ContextProfile, cookies []playwright.OptionalCookie) (playwright.BrowserContext, error)
}

// Runner runs checks one at a time, each in a fresh context.
type Runner struct {
	cfg      *config.Config
	contexts ContextFactory
	cookies  []playwright.OptionalCookie
	debugger *utils.ScreenShotDebugger

	//Prepare runs on every new context before the page opens
	Prepare func(bctx playwright.BrowserContext) error
}

func NewRunner(cfg *config.Config, contexts ContextFactory, cookies []playwright.OptionalCookie) *Runner {
	return &Runner{
		cfg:      cfg,
		contexts: contexts,
		cookies:  cookies,
		debugger: utils.NewScreenShotDebugger(cfg.ScreenshotDir),
	}
}

// Run executes checks in order. A cancelled ctx marks the remaining checks failed.
func (r *Runner) Run(ctx context.Context, checks []Check) Summary {
	s := Summary{
		RunID:   uuid.New(),
		Started: time.Now(),
	}
	log.Printf("🚀 Smoke run %s: %d checks", s.RunID, len(checks))

	for _, c := range checks {
		res := r.runOne(ctx, c)
		if res.Passed {
			log.Printf("✅ %s (%dms)", res.Name, res.DurationMS)
		} else {
			log.Printf("❌ %s: %s", res.Name, res.Error)
		}
		s.Results = append(s.Results, res)
	}

	s.Finished = time.Now()
	log.Printf("🏁 Smoke run finished: %d passed, %d failed in %s", s.Passed(), s.Failed(), s.Duration().Round(time.Millisecond))
	return s
}

func (r *Runner) runOne(ctx context.Context, c Check) Result {
	res := Result{Name: c.Name(), Profile: c.Profile()}
	start := time.Now()

	fail := func(err error) Result {
		res.Error = err.Error()
		res.DurationMS = time.Since(start).Milliseconds()
		return res
	}

	if err := ctx.Err(); err != nil {
		return fail(err)
	}

	bctx, err := r.contexts.NewContext(r.cfg.Profile(c.Profile()), r.cookies)
	if err != nil {
		return fail(err)
	}
	defer bctx.Close()

	if r.Prepare != nil {
		if err := r.Prepare(bctx); err != nil {
			return fail(err)
		}
	}

	page, err := bctx.NewPage()
	if err != nil {
		return fail(err)
	}
	page.SetDefaultTimeout(float64(r.cfg.Timeouts.PageLoad.Milliseconds()))
	page.SetDefaultNavigationTimeout(float64(r.cfg.Timeouts.Navigation.Milliseconds()))

	if err := c.Run(ctx, page); err != nil {
		if path, serr := r.debugger.CaptureAndLog(page, c.Name(), "Check failed: "+c.Name()); serr == nil {
			res.Screenshot = path
		}
		return fail(err)
	}

	res.Passed = true
	res.DurationMS = time.Since(start).Milliseconds()
	return res
}
