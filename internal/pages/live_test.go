package pages

import (
	"path/filepath"
	"testing"
	"time"

	"go-lever-e2e/internal/fakedata"
	"go-lever-e2e/internal/models"
	"go-lever-e2e/internal/resume"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Suites against jobs.lever.co. They never submit the form.

func TestLiveJobPage_PageLoadsSuccessfully(t *testing.T) {
	p := liveJobPage(t)
	require.NoError(t, p.AssertPageLoaded())
	assert.NoError(t, p.AssertJobTitle(DefaultJobTitle))
}

func TestLiveJobPage_JobDetails(t *testing.T) {
	p := liveJobPage(t)

	d, err := p.JobDetails()
	require.NoError(t, err)
	assert.Equal(t, DefaultJobTitle, d.Title)
	assert.Contains(t, d.Location, "Seattle")
	assert.Contains(t, d.Department, "Software Engineering")
	assert.Contains(t, d.Type, "Full-Time")
	assert.True(t, d.Remote)
}

func TestLiveJobPage_AllSectionsPresent(t *testing.T) {
	p := liveJobPage(t)
	assert.NoError(t, p.AssertAllSectionsPresent())
}

func TestLiveJobPage_TechnicalRequirements(t *testing.T) {
	p := liveJobPage(t)

	ok, err := p.HasTechnicalRequirement("python")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.NoError(t, p.AssertTechnicalRequirementsPresent())
}

func TestLiveJobPage_SalaryRange(t *testing.T) {
	p := liveJobPage(t)
	require.NoError(t, p.ScrollToSection(Compensation))
	require.NoError(t, p.AssertSalaryRangeVisible())

	text, err := p.SalaryRange()
	require.NoError(t, err)
	assert.Contains(t, text, "$100,000")
	assert.Contains(t, text, "$150,000")
}

func TestLiveJobPage_ApplyButton(t *testing.T) {
	p := liveJobPage(t)
	require.NoError(t, p.ScrollToApplyButton())
	assert.NoError(t, p.AssertApplyButtonVisible())
}

func TestLiveJobPage_NavigationElements(t *testing.T) {
	p := liveJobPage(t)
	assert.NoError(t, p.expectVisible("logo", p.Logo))
	assert.NoError(t, p.expectVisible("homepage link", p.HomepageLink))
}

func TestLiveJobPage_SectionScrolling(t *testing.T) {
	p := liveJobPage(t)
	for _, s := range RequiredSections() {
		assert.NoError(t, p.ScrollToSection(s), s.String())
	}
}

func TestLiveJobPage_PageTitle(t *testing.T) {
	p := liveJobPage(t)
	title, err := p.PageTitle()
	require.NoError(t, err)
	assert.Contains(t, title, DefaultJobTitle)
	assert.Contains(t, title, "Aerostrat")
}

func TestLiveJobPage_LoadPerformance(t *testing.T) {
	if testing.Short() {
		t.Skip("slow")
	}
	p := liveJobPage(t)

	start := time.Now()
	require.NoError(t, p.Navigate(""))
	require.NoError(t, p.WaitForLoad(10*time.Second))
	assert.Less(t, time.Since(start), 10*time.Second)

	loaded, err := p.IsLoaded()
	require.NoError(t, err)
	assert.True(t, loaded)
}

func TestLiveJobPage_NoErrors(t *testing.T) {
	p := liveJobPage(t)
	require.NoError(t, p.AssertNoErrors())
	has, err := p.HasErrorMessage()
	require.NoError(t, err)
	assert.False(t, has)
}

func TestLiveJobPage_DifferentPostings(t *testing.T) {
	p := liveJobPage(t)
	tests := []struct {
		jobID string
		title string
	}{
		{"2cce6cc2-dcdd-4562-af4d-8eb6afd5b281", DefaultJobTitle},
	}
	for _, tt := range tests {
		require.NoError(t, p.Navigate(tt.jobID))
		require.NoError(t, p.WaitForLoad(0))
		require.NoError(t, p.DismissCookieNotice())
		title, err := p.JobTitle()
		require.NoError(t, err)
		assert.Contains(t, title, tt.title)
	}
}

func TestLiveApplicationForm_LoadsSuccessfully(t *testing.T) {
	f := liveApplicationForm(t)
	require.NoError(t, f.AssertPageLoaded())
	assert.NoError(t, f.AssertFormSectionsPresent())
}

func TestLiveApplicationForm_RequiredFieldsAreMarked(t *testing.T) {
	f := liveApplicationForm(t)
	require.NoError(t, f.AssertRequiredFieldsPresent())
	fields, err := f.RequiredFields()
	require.NoError(t, err)
	assert.NotEmpty(t, fields)
}

func TestLiveApplicationForm_PersonalInformation(t *testing.T) {
	f := liveApplicationForm(t)

	require.NoError(t, f.FillPersonalInfo(janeDoe))
	assert.NoError(t, f.AssertPersonalInfo(janeDoe))

	g := fakedata.New(0)
	info := g.PersonalInfo()
	info.Pronoun = g.Pronoun()
	require.NoError(t, f.FillPersonalInfo(info))
	assert.NoError(t, f.AssertPersonalInfo(info))
}

func TestLiveApplicationForm_PronounSelection(t *testing.T) {
	f := liveApplicationForm(t)
	for _, p := range []models.Pronoun{models.HeHim, models.SheHer, models.TheyThem, models.UseNameOnly} {
		require.NoError(t, f.SelectPronoun(p))
		loc, err := f.PronounOption(p)
		require.NoError(t, err)
		assert.NoError(t, f.expectChecked(p.String(), loc))
	}
}

func TestLiveApplicationForm_Links(t *testing.T) {
	f := liveApplicationForm(t)
	require.NoError(t, f.ScrollToSection(LinksSection))

	links := fakedata.New(0).Links()
	require.NoError(t, f.FillLinks(links))
	assert.NoError(t, f.expectValue("linkedin", f.LinkedIn, links.LinkedIn))
	assert.NoError(t, f.expectValue("portfolio", f.Portfolio, links.Portfolio))
	assert.NoError(t, f.expectValue("github", f.GitHub, links.GitHub))
	assert.NoError(t, f.expectValue("other", f.OtherURL, links.Other))
}

func TestLiveApplicationForm_ExperienceQuestions(t *testing.T) {
	f := liveApplicationForm(t)
	require.NoError(t, f.ScrollToSection(QuestionsSection))
	require.NoError(t, f.AssertAllExperienceQuestionsPresent())

	answers := models.ExperienceAnswers{
		E2EAutomation:   models.TwoToFour,
		Python:          models.FivePlus,
		Playwright:      models.OneToTwo,
		AutomationTypes: models.TwoToFour,
	}
	require.NoError(t, f.AnswerExperienceQuestions(answers))
	for _, q := range Questions() {
		assert.NoError(t, f.AssertExperience(q, q.Answer(answers)))
	}
}

func TestLiveApplicationForm_AllExperienceLevelsSelectable(t *testing.T) {
	f := liveApplicationForm(t)
	for _, l := range models.ExperienceLevels() {
		require.NoError(t, f.SelectE2EAutomationExperience(l))
		assert.NoError(t, f.AssertExperience(E2EAutomationQuestion, l))
	}
}

func TestLiveApplicationForm_AdditionalInfo(t *testing.T) {
	f := liveApplicationForm(t)
	require.NoError(t, f.ScrollToSection(AdditionalSection))

	text := fakedata.New(0).AdditionalInfo()
	require.NoError(t, f.FillAdditionalInfo(text))
	assert.NoError(t, f.expectValue("additional info", f.AdditionalInfo, text))
}

func TestLiveApplicationForm_ResumeUpload(t *testing.T) {
	f := liveApplicationForm(t)

	path, err := resume.WriteText(t.TempDir(), fakedata.New(0).ResumeProfile())
	require.NoError(t, err)
	require.NoError(t, f.UploadResume(path))

	n, err := f.UploadedFileCount()
	require.NoError(t, err)
	assert.Greater(t, n, 0)
}

func TestLiveApplicationForm_CompleteWorkflow(t *testing.T) {
	f := liveApplicationForm(t)
	g := fakedata.New(0)

	path, err := resume.WriteText(filepath.Join(t.TempDir(), "upload"), g.ResumeProfile())
	require.NoError(t, err)
	a := g.Applicant()
	require.NoError(t, f.FillCompleteApplication(path, a))

	assert.NoError(t, f.AssertPersonalInfo(a.Personal))
	assert.NoError(t, f.expectValue("linkedin", f.LinkedIn, a.Links.LinkedIn))
	assert.NoError(t, f.expectValue("additional info", f.AdditionalInfo, a.AdditionalInfo))
	for _, q := range Questions() {
		assert.NoError(t, f.AssertExperience(q, q.Answer(a.Experience)))
	}
}

func TestLiveApplicationForm_Validation(t *testing.T) {
	f := liveApplicationForm(t)
	require.NoError(t, f.Refresh())

	if has, err := f.HasValidationErrors(); err == nil && has {
		errs, _ := f.ValidationErrors()
		t.Logf("pre-existing validation messages: %q", errs)
	}

	before, err := f.IsFormComplete()
	require.NoError(t, err)
	require.NoError(t, f.FillPersonalInfo(fakedata.New(0).PersonalInfo()))
	after, err := f.IsFormComplete()
	require.NoError(t, err)
	//the submit state is only a hint, log it rather than assert on it
	t.Logf("form complete before=%v after=%v", before, after)
}

func TestLiveApplicationForm_SectionScrolling(t *testing.T) {
	f := liveApplicationForm(t)
	for _, s := range FormSections() {
		assert.NoError(t, f.ScrollToSection(s), s.String())
	}
}

func TestLiveApplicationForm_NavigationElements(t *testing.T) {
	f := liveApplicationForm(t)
	assert.NoError(t, f.expectVisible("logo", f.Logo))
	assert.NoError(t, f.expectVisible("job title", f.TitleHeading))
	assert.NoError(t, f.expectVisible("homepage link", f.HomepageLink))
	assert.NoError(t, f.expectVisible("lever branding", f.LeverBranding))
}

func TestLiveApplicationForm_AIDisclosure(t *testing.T) {
	f := liveApplicationForm(t)
	require.NoError(t, f.ScrollToBottom())
	assert.NoError(t, f.expectVisible("ai disclosure", f.AIDisclosure))
	assert.NoError(t, f.expectVisible("lever branding", f.LeverBranding))
}

func TestLiveApplicationForm_LoadPerformance(t *testing.T) {
	if testing.Short() {
		t.Skip("slow")
	}
	f := liveApplicationForm(t)

	start := time.Now()
	require.NoError(t, f.Navigate(""))
	require.NoError(t, f.WaitForLoad(0))
	assert.Less(t, time.Since(start), 10*time.Second)
	require.NoError(t, f.DismissCookieNotice())

	fillStart := time.Now()
	require.NoError(t, f.FillPersonalInfo(fakedata.New(0).PersonalInfo()))
	assert.Less(t, time.Since(fillStart), 5*time.Second)
}

func TestLiveApplicationForm_Accessibility(t *testing.T) {
	f := liveApplicationForm(t)
	assert.NoError(t, f.expectVisible("full name label", f.FullNameLabel))
	assert.NoError(t, f.expectVisible("resume label", f.ResumeLabel))
	assert.NoError(t, f.expectVisible("submit button", f.SubmitButton))
	assert.NoError(t, f.AssertSubmitEnabled())
}
