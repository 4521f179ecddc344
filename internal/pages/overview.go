package pages

import (
	"fmt"
	"strings"
	"time"

	"go-lever-e2e/internal/config"
	"go-lever-e2e/internal/posting"

	"github.com/playwright-community/playwright-go"
)

// JobPage is the public posting page, <base>/<org>/<job-id>.
type JobPage struct {
	basePage

	//Header
	Logo         playwright.Locator
	TitleHeading playwright.Locator

	//Posting categories
	Location       playwright.Locator
	Department     playwright.Locator
	EmploymentType playwright.Locator
	RemoteBadge    playwright.Locator
	SalaryText     playwright.Locator

	ApplyButton  playwright.Locator
	HomepageLink playwright.Locator

	//Footer
	LeverBranding    playwright.Locator
	PrivacyNotice    playwright.Locator
	CookiePolicyLink playwright.Locator

	Body        playwright.Locator
	Spinner     playwright.Locator
	ErrorBanner playwright.Locator
}

func NewJobPage(page playwright.Page, cfg *config.Config) *JobPage {
	return &JobPage{
		basePage: newBasePage(page, cfg),

		Logo:         page.Locator(".main-header-logo img[alt*='Aerostrat']"),
		TitleHeading: page.GetByRole(*playwright.AriaRoleHeading, playwright.PageGetByRoleOptions{Level: playwright.Int(2)}).First(),

		Location:       page.Locator(".posting-categories .location").First(),
		Department:     page.Locator(".posting-categories .department").First(),
		EmploymentType: page.Locator(".posting-categories .commitment, .posting-categories .employment-type").First(),
		RemoteBadge:    page.Locator(".workplaceTypes:has-text('Remote')").First(),
		SalaryText:     page.Locator(".posting-categories .sort-by-salary").First(),

		ApplyButton:  page.Locator("a:has-text('APPLY FOR THIS JOB')").First(),
		HomepageLink: page.Locator(".main-header-logo a[href*='aerostrat']").First(),

		LeverBranding:    page.Locator("text='Jobs powered by Lever'"),
		PrivacyNotice:    page.Locator("text='Privacy Notice'"),
		CookiePolicyLink: page.Locator("a:has-text('Cookie Policy')"),

		Body:        page.Locator("body"),
		Spinner:     page.Locator(".loading"),
		ErrorBanner: page.Locator(".error"),
	}
}

// SectionHeading locates the heading of s.
func (p *JobPage) SectionHeading(s Section) playwright.Locator {
	return p.page.Locator(fmt.Sprintf("text='%s'", s.heading)).First()
}

// Requirement locates the first case-insensitive mention of a technology.
func (p *JobPage) Requirement(name string) playwright.Locator {
	return p.page.Locator("text=" + posting.KeywordPattern(name)).First()
}

// Navigate opens the posting; an empty id opens the configured overview posting.
func (p *JobPage) Navigate(jobID string) error {
	if jobID == "" {
		jobID = p.site.OverviewJobID
	}
	return p.goTo(p.site.JobURL(jobID))
}

// WaitForLoad blocks until the body and title are visible and any spinner
// is gone. timeout <= 0 uses the configured page load timeout.
func (p *JobPage) WaitForLoad(timeout time.Duration) error {
	timeout = p.loadTimeout(timeout)

	if err := waitFor(p.Body, playwright.WaitForSelectorStateVisible, timeout); err != nil {
		return loadError("page body", timeout, err)
	}
	if err := waitFor(p.TitleHeading, playwright.WaitForSelectorStateVisible, timeout); err != nil {
		return loadError("job title", timeout, err)
	}

	n, err := p.Spinner.Count()
	if err != nil {
		return err
	}
	if n > 0 {
		if err := waitFor(p.Spinner.First(), playwright.WaitForSelectorStateHidden, timeout); err != nil {
			return loadError("loading spinner", timeout, err)
		}
	}
	return nil
}

// IsLoaded reports whether the page currently looks fully rendered.
func (p *JobPage) IsLoaded() (bool, error) {
	for _, loc := range []playwright.Locator{p.Body, p.TitleHeading} {
		visible, err := loc.IsVisible()
		if err != nil || !visible {
			return false, err
		}
	}
	spinning, err := probeVisible(p.Spinner)
	if err != nil {
		return false, err
	}
	return !spinning, nil
}

func (p *JobPage) JobTitle() (string, error) {
	text, err := p.TitleHeading.TextContent()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

func (p *JobPage) ClickApply() error {
	return p.ApplyButton.Click()
}

func (p *JobPage) OpenHomepage() error {
	return p.HomepageLink.Click()
}

// JobDetails is the headline information of a posting.
type JobDetails struct {
	Title      string `json:"title"`
	Location   string `json:"location"`
	Department string `json:"department"`
	Type       string `json:"type"`
	Remote     bool   `json:"remote"`
}

// JobDetails reads the posting categories. Missing categories are left empty.
func (p *JobPage) JobDetails() (JobDetails, error) {
	var d JobDetails
	var err error

	if d.Title, err = p.JobTitle(); err != nil {
		return d, err
	}

	for _, f := range []struct {
		loc playwright.Locator
		dst *string
	}{
		{p.Location, &d.Location},
		{p.Department, &d.Department},
		{p.EmploymentType, &d.Type},
	} {
		text, found, err := probeText(f.loc)
		if err != nil {
			return d, err
		}
		if found {
			*f.dst = categoryText(text)
		}
	}

	if d.Remote, err = probeVisible(p.RemoteBadge); err != nil {
		return d, err
	}
	return d, nil
}

func (p *JobPage) HasSalaryRange() (bool, error) {
	n, err := p.SalaryText.Count()
	return n > 0, err
}

// SalaryRange returns the raw salary text, or "" when the posting shows none.
func (p *JobPage) SalaryRange() (string, error) {
	text, _, err := probeText(p.SalaryText)
	return text, err
}

// Salary parses the salary text. ok is false when no band is shown.
func (p *JobPage) Salary() (posting.SalaryRange, bool, error) {
	text, err := p.SalaryRange()
	if err != nil || text == "" {
		return posting.SalaryRange{}, false, err
	}
	r, ok := posting.ParseSalaryRange(text)
	return r, ok, nil
}

// HasTechnicalRequirement reports whether name is mentioned anywhere visible, ignoring case.
func (p *JobPage) HasTechnicalRequirement(name string) (bool, error) {
	if strings.TrimSpace(name) == "" {
		return false, nil
	}
	return probeVisible(p.Requirement(name))
}

// Technologies checked by TechnicalRequirements.
var Technologies = []string{"playwright", "cypress", "python"}

func (p *JobPage) TechnicalRequirements() (map[string]bool, error) {
	out := make(map[string]bool, len(Technologies))
	for _, name := range Technologies {
		ok, err := p.HasTechnicalRequirement(name)
		if err != nil {
			return nil, err
		}
		out[name] = ok
	}
	return out, nil
}

// Sections reports the visibility of every known section heading.
func (p *JobPage) Sections() (map[Section]bool, error) {
	out := make(map[Section]bool, len(Sections()))
	for _, s := range Sections() {
		visible, err := probeVisible(p.SectionHeading(s))
		if err != nil {
			return nil, err
		}
		out[s] = visible
	}
	return out, nil
}

func (p *JobPage) HasErrorMessage() (bool, error) {
	return probeVisible(p.ErrorBanner)
}

// ErrorMessage returns the visible error text, or "".
func (p *JobPage) ErrorMessage() (string, error) {
	visible, err := p.HasErrorMessage()
	if err != nil || !visible {
		return "", err
	}
	text, _, err := probeText(p.ErrorBanner)
	return text, err
}

func (p *JobPage) ScrollToApplyButton() error {
	return p.ApplyButton.ScrollIntoViewIfNeeded()
}

func (p *JobPage) ScrollToSection(s Section) error {
	if s.IsZero() {
		return fmt.Errorf("%w: empty section", ErrUnknownOption)
	}
	return p.SectionHeading(s).ScrollIntoViewIfNeeded()
}

func (p *JobPage) AssertJobTitle(expected string) error {
	if expected == "" {
		expected = DefaultJobTitle
	}
	return p.expectText("job title", p.TitleHeading, expected)
}

func (p *JobPage) AssertPageLoaded() error {
	if err := p.expectVisible("page body", p.Body); err != nil {
		return err
	}
	if err := p.expectVisible("job title", p.TitleHeading); err != nil {
		return err
	}
	return p.expectVisible("apply button", p.ApplyButton)
}

func (p *JobPage) AssertNoErrors() error {
	return p.expectHidden("error message", p.ErrorBanner)
}

func (p *JobPage) AssertApplyButtonVisible() error {
	if err := p.expectVisible("apply button", p.ApplyButton); err != nil {
		return err
	}
	return p.expectEnabled("apply button", p.ApplyButton)
}

func (p *JobPage) AssertSalaryRangeVisible() error {
	return p.expectVisible("salary range", p.SalaryText)
}

// AssertTechnicalRequirementsPresent requires Playwright to be mentioned.
// Python is checked by the callers that need it.
func (p *JobPage) AssertTechnicalRequirementsPresent() error {
	if err := p.expectVisible("Playwright requirement", p.Requirement("playwright")); err != nil {
		return err
	}
	reqs, err := p.TechnicalRequirements()
	if err != nil {
		return err
	}
	if !reqs["playwright"] && !reqs["cypress"] {
		return assertionFailed("technical requirements", "Playwright or Cypress mentioned", "neither mentioned", nil)
	}
	return nil
}

func (p *JobPage) AssertAllSectionsPresent() error {
	sections, err := p.Sections()
	if err != nil {
		return err
	}
	var missing []string
	for _, s := range RequiredSections() {
		if !sections[s] {
			missing = append(missing, s.heading)
		}
	}
	if len(missing) > 0 {
		return assertionFailed("sections", "all required sections visible", "missing "+strings.Join(missing, ", "), nil)
	}
	return nil
}
