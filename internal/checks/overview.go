package checks

import (
	"context"
	"fmt"

	"go-lever-e2e/internal/config"
	"go-lever-e2e/internal/pages"
	"go-lever-e2e/internal/posting"

	"github.com/playwright-community/playwright-go"
)

func openJobPage(cfg *config.Config, page playwright.Page) (*pages.JobPage, error) {
	p := pages.NewJobPage(page, cfg)
	if err := p.Navigate(""); err != nil {
		return nil, err
	}
	if err := p.WaitForLoad(0); err != nil {
		return nil, err
	}
	if err := p.DismissCookieNotice(); err != nil {
		return nil, err
	}
	return p, nil
}

// overviewCheck opens the posting before running fn.
func overviewCheck(cfg *config.Config, name string, fn func(p *pages.JobPage) error) Check {
	return New("overview/"+name, config.ProfileOverview, func(_ context.Context, page playwright.Page) error {
		p, err := openJobPage(cfg, page)
		if err != nil {
			return err
		}
		return fn(p)
	})
}

// OverviewChecks covers the public posting page.
func OverviewChecks(cfg *config.Config) []Check {
	return []Check{
		overviewCheck(cfg, "loads", func(p *pages.JobPage) error {
			if err := p.AssertPageLoaded(); err != nil {
				return err
			}
			return p.AssertJobTitle(pages.DefaultJobTitle)
		}),
		overviewCheck(cfg, "details", func(p *pages.JobPage) error {
			d, err := p.JobDetails()
			if err != nil {
				return err
			}
			if d.Location == "" || d.Department == "" || d.Type == "" {
				return fmt.Errorf("incomplete job details: %+v", d)
			}
			return nil
		}),
		overviewCheck(cfg, "sections", func(p *pages.JobPage) error {
			return p.AssertAllSectionsPresent()
		}),
		overviewCheck(cfg, "requirements", func(p *pages.JobPage) error {
			if err := p.AssertTechnicalRequirementsPresent(); err != nil {
				return err
			}
			text, err := p.Body.InnerText()
			if err != nil {
				return err
			}
			if !posting.MentionsKeyword(text, "python") {
				return fmt.Errorf("posting does not mention Python")
			}
			return nil
		}),
		overviewCheck(cfg, "salary", func(p *pages.JobPage) error {
			if err := p.ScrollToSection(pages.Compensation); err != nil {
				return err
			}
			if err := p.AssertSalaryRangeVisible(); err != nil {
				return err
			}
			r, ok, err := p.Salary()
			if err != nil {
				return err
			}
			if !ok || r.Min <= 0 || r.Max < r.Min {
				return fmt.Errorf("unparseable salary range %q", r.Raw)
			}
			return nil
		}),
		overviewCheck(cfg, "apply-button", func(p *pages.JobPage) error {
			if err := p.ScrollToApplyButton(); err != nil {
				return err
			}
			return p.AssertApplyButtonVisible()
		}),
		overviewCheck(cfg, "no-errors", func(p *pages.JobPage) error {
			return p.AssertNoErrors()
		}),
	}
}
