package pages

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJobPage_LoadsSuccessfully(t *testing.T) {
	p := fixtureJobPage(t)

	require.NoError(t, p.DismissCookieNotice())
	assert.NoError(t, p.AssertPageLoaded())
	assert.NoError(t, p.AssertJobTitle(DefaultJobTitle))

	loaded, err := p.IsLoaded()
	require.NoError(t, err)
	assert.True(t, loaded)
}

func TestJobPage_WaitForLoadOnLoadedPage(t *testing.T) {
	p := fixtureJobPage(t)

	start := time.Now()
	require.NoError(t, p.WaitForLoad(time.Second))
	assert.Less(t, time.Since(start), time.Second)
}

func TestJobPage_WaitForLoadTimeout(t *testing.T) {
	p := fixtureJobPage(t)

	require.NoError(t, p.Navigate(missingJobID))
	err := p.WaitForLoad(500 * time.Millisecond)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrLoadTimeout)
	assert.False(t, errors.Is(err, ErrAssertion))
}

func TestJobPage_JobDetails(t *testing.T) {
	p := fixtureJobPage(t)

	details, err := p.JobDetails()
	require.NoError(t, err)
	assert.Equal(t, JobDetails{
		Title:      DefaultJobTitle,
		Location:   "Seattle, WA",
		Department: "Software Engineering",
		Type:       "Full-Time",
		Remote:     true,
	}, details)
}

func TestJobPage_JobDetailsMissingCategories(t *testing.T) {
	p := fixtureJobPage(t)
	_, err := p.Page().Evaluate(`() => document.querySelectorAll('.department, .workplaceTypes').forEach(e => e.remove())`)
	require.NoError(t, err)

	details, err := p.JobDetails()
	require.NoError(t, err)
	assert.Equal(t, "", details.Department)
	assert.False(t, details.Remote)
	assert.Equal(t, "Seattle, WA", details.Location)
}

func TestJobPage_AllSectionsPresent(t *testing.T) {
	p := fixtureJobPage(t)

	sections, err := p.Sections()
	require.NoError(t, err)
	for _, s := range Sections() {
		assert.True(t, sections[s], "section %s", s)
	}
	assert.NoError(t, p.AssertAllSectionsPresent())
}

func TestJobPage_MissingSectionFailsAssertion(t *testing.T) {
	p := fixtureJobPage(t)
	_, err := p.Page().Evaluate(`() => [...document.querySelectorAll('h3')].find(h => h.textContent === 'Benefits').remove()`)
	require.NoError(t, err)

	err = p.AssertAllSectionsPresent()
	require.ErrorIs(t, err, ErrAssertion)
	var ae *AssertionError
	require.True(t, errors.As(err, &ae))
	assert.Contains(t, ae.Actual, "Benefits")
}

func TestJobPage_TechnicalRequirements(t *testing.T) {
	p := fixtureJobPage(t)

	for _, name := range []string{"python", "Python", "PYTHON"} {
		ok, err := p.HasTechnicalRequirement(name)
		require.NoError(t, err)
		assert.True(t, ok, name)
	}

	reqs, err := p.TechnicalRequirements()
	require.NoError(t, err)
	assert.Equal(t, map[string]bool{"playwright": true, "cypress": false, "python": true}, reqs)

	for _, name := range []string{"rust", "", "c++"} {
		ok, err := p.HasTechnicalRequirement(name)
		require.NoError(t, err)
		assert.False(t, ok, name)
	}

	assert.NoError(t, p.AssertTechnicalRequirementsPresent())
}

func TestJobPage_TechnicalRequirementsNeedPlaywright(t *testing.T) {
	p := fixtureJobPage(t)
	_, err := p.Page().Evaluate(`() => [...document.querySelectorAll('li')].forEach(li => {
		li.textContent = li.textContent.replace('Playwright', 'Cypress')
	})`)
	require.NoError(t, err)

	reqs, err := p.TechnicalRequirements()
	require.NoError(t, err)
	assert.Equal(t, map[string]bool{"playwright": false, "cypress": true, "python": true}, reqs)

	err = p.AssertTechnicalRequirementsPresent()
	require.ErrorIs(t, err, ErrAssertion)
	var ae *AssertionError
	require.True(t, errors.As(err, &ae))
	assert.Equal(t, "Playwright requirement", ae.Field)
}

func TestJobPage_TechnicalRequirementsWithoutPython(t *testing.T) {
	p := fixtureJobPage(t)
	_, err := p.Page().Evaluate(`() => [...document.querySelectorAll('li')].filter(li => li.textContent.includes('Python')).forEach(li => li.remove())`)
	require.NoError(t, err)

	ok, err := p.HasTechnicalRequirement("python")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.NoError(t, p.AssertTechnicalRequirementsPresent())
}

func TestJobPage_AccentedRequirement(t *testing.T) {
	p := fixtureJobPage(t)
	_, err := p.Page().Evaluate(`() => document.querySelector('li').textContent = 'Keep your Résumé current'`)
	require.NoError(t, err)

	ok, err := p.HasTechnicalRequirement("Résumé")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestJobPage_SalaryRange(t *testing.T) {
	p := fixtureJobPage(t)

	require.NoError(t, p.ScrollToSection(Compensation))
	require.NoError(t, p.AssertSalaryRangeVisible())

	has, err := p.HasSalaryRange()
	require.NoError(t, err)
	assert.True(t, has)

	text, err := p.SalaryRange()
	require.NoError(t, err)
	assert.Contains(t, text, "$100,000")
	assert.Contains(t, text, "$150,000")

	r, ok, err := p.Salary()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 100000, r.Min)
	assert.Equal(t, 150000, r.Max)
	assert.Equal(t, "$", r.Currency)
	assert.Equal(t, "year", r.Period)
}

func TestJobPage_NoSalaryRange(t *testing.T) {
	p := fixtureJobPage(t)
	_, err := p.Page().Evaluate(`() => document.querySelector('.sort-by-salary').remove()`)
	require.NoError(t, err)

	has, err := p.HasSalaryRange()
	require.NoError(t, err)
	assert.False(t, has)

	text, err := p.SalaryRange()
	require.NoError(t, err)
	assert.Equal(t, "", text)

	_, ok, err := p.Salary()
	require.NoError(t, err)
	assert.False(t, ok)

	assert.ErrorIs(t, p.AssertSalaryRangeVisible(), ErrAssertion)
}

func TestJobPage_ErrorHandling(t *testing.T) {
	p := fixtureJobPage(t)

	require.NoError(t, p.AssertNoErrors())
	has, err := p.HasErrorMessage()
	require.NoError(t, err)
	assert.False(t, has)
	msg, err := p.ErrorMessage()
	require.NoError(t, err)
	assert.Equal(t, "", msg)

	_, err = p.Page().Evaluate(`() => document.body.insertAdjacentHTML('afterbegin', '<div class="error">Posting not found</div>')`)
	require.NoError(t, err)

	has, err = p.HasErrorMessage()
	require.NoError(t, err)
	assert.True(t, has)
	msg, err = p.ErrorMessage()
	require.NoError(t, err)
	assert.Equal(t, "Posting not found", msg)

	err = p.AssertNoErrors()
	var ae *AssertionError
	require.True(t, errors.As(err, &ae))
	assert.Equal(t, "hidden", ae.Expected)
	assert.Contains(t, ae.Actual, "Posting not found")
}

func TestJobPage_DismissCookieNotice(t *testing.T) {
	p := fixtureJobPage(t)

	visible, err := p.PrivacyNotice.IsVisible()
	require.NoError(t, err)
	require.True(t, visible)

	require.NoError(t, p.DismissCookieNotice())
	visible, err = p.PrivacyNotice.IsVisible()
	require.NoError(t, err)
	assert.False(t, visible)

	assert.NoError(t, p.DismissCookieNotice(), "dismissing twice is a no-op")
}

func TestJobPage_ApplyButton(t *testing.T) {
	p := fixtureJobPage(t)

	require.NoError(t, p.ScrollToApplyButton())
	require.NoError(t, p.AssertApplyButtonVisible())

	require.NoError(t, p.ClickApply())
	form := NewApplicationForm(p.Page(), fixtureConfig(t))
	require.NoError(t, form.WaitForLoad(0))
	assert.True(t, strings.HasSuffix(p.Page().URL(), "/apply"))
}

func TestJobPage_NavigationElements(t *testing.T) {
	p := fixtureJobPage(t)

	require.NoError(t, p.expectVisible("logo", p.Logo))
	require.NoError(t, p.expectVisible("homepage link", p.HomepageLink))

	require.NoError(t, p.OpenHomepage())
	require.NoError(t, p.Page().WaitForURL("https://www.aerostrat.com/"))
}

func TestJobPage_Footer(t *testing.T) {
	p := fixtureJobPage(t)

	require.NoError(t, p.ScrollToBottom())
	assert.NoError(t, p.expectVisible("lever branding", p.LeverBranding))
	assert.NoError(t, p.expectVisible("cookie policy", p.CookiePolicyLink))
}

func TestJobPage_ScrollToSections(t *testing.T) {
	p := fixtureJobPage(t)

	for _, s := range Sections() {
		assert.NoError(t, p.ScrollToSection(s), s.String())
	}
	assert.ErrorIs(t, p.ScrollToSection(Section{}), ErrUnknownOption)
}

func TestJobPage_PageTitle(t *testing.T) {
	p := fixtureJobPage(t)

	title, err := p.PageTitle()
	require.NoError(t, err)
	assert.Contains(t, title, DefaultJobTitle)
	assert.Contains(t, title, "Aerostrat")
}

func TestJobPage_DifferentPostings(t *testing.T) {
	p := fixtureJobPage(t)
	cfg := fixtureConfig(t)

	for _, id := range []string{cfg.Site.ApplicationJobID, cfg.Site.OverviewJobID} {
		require.NoError(t, p.Navigate(id))
		require.NoError(t, p.WaitForLoad(0))
		title, err := p.JobTitle()
		require.NoError(t, err)
		assert.Contains(t, title, DefaultJobTitle)
		assert.Contains(t, p.Page().URL(), id)
	}
}

func TestJobPage_ProbesReportDriverErrors(t *testing.T) {
	p := fixtureJobPage(t)
	require.NoError(t, p.Page().Close())

	_, err := p.HasTechnicalRequirement("python")
	assert.Error(t, err, "a closed page is not the same as a missing element")

	_, err = p.SalaryRange()
	assert.Error(t, err)
}
