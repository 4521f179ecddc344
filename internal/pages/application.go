package pages

import (
	"fmt"
	"strings"
	"time"

	"go-lever-e2e/internal/config"
	"go-lever-e2e/internal/models"

	"github.com/playwright-community/playwright-go"
)

const requiredMark = "✱"

// ExpectedRequiredFields are the labels Lever marks as required on this form.
var ExpectedRequiredFields = []string{"Resume/CV", "Full name", "Email", "Phone", "Current location", "Current company"}

// ApplicationForm is the application page, <base>/<org>/<job-id>/apply.
type ApplicationForm struct {
	basePage

	//Header
	Logo         playwright.Locator
	TitleHeading playwright.Locator
	PageHeading  playwright.Locator

	//Personal information
	ResumeInput        playwright.Locator
	AttachResumeButton playwright.Locator
	ResumeLabel        playwright.Locator
	FullName           playwright.Locator
	FullNameLabel      playwright.Locator
	PronounsSection    playwright.Locator
	Email              playwright.Locator
	Phone              playwright.Locator
	Location           playwright.Locator
	Company            playwright.Locator

	//Links
	LinksHeading playwright.Locator
	LinkedIn     playwright.Locator
	Portfolio    playwright.Locator
	GitHub       playwright.Locator
	OtherURL     playwright.Locator

	QuestionsHeading  playwright.Locator
	AdditionalHeading playwright.Locator
	AdditionalInfo    playwright.Locator

	SubmitButton playwright.Locator
	HomepageLink playwright.Locator

	//Footer
	AIDisclosure  playwright.Locator
	LeverBranding playwright.Locator
	CookieBanner  playwright.Locator

	//Validation and status
	RequiredIndicators playwright.Locator
	ErrorMessages      playwright.Locator
	ErrorCloseButtons  playwright.Locator
	Spinner            playwright.Locator
	SuccessMessage     playwright.Locator
}

func NewApplicationForm(page playwright.Page, cfg *config.Config) *ApplicationForm {
	return &ApplicationForm{
		basePage: newBasePage(page, cfg),

		Logo:         page.Locator(".main-header-logo img[alt*='Aerostrat']"),
		TitleHeading: page.Locator(fmt.Sprintf("h2:has-text('%s')", DefaultJobTitle)),
		PageHeading:  page.Locator("h4:has-text('SUBMIT YOUR APPLICATION')"),

		ResumeInput:        page.Locator("input[type='file']"),
		AttachResumeButton: page.Locator("button:has-text('ATTACH RESUME/CV')"),
		ResumeLabel:        page.Locator("div.application-label:has-text('Resume/CV')"),
		FullName:           page.Locator("input[name='name']"),
		FullNameLabel:      page.Locator("label:has-text('Full name')"),
		PronounsSection:    page.Locator("text='Pronouns'").Locator(".."),
		Email:              page.Locator("input[name='email']"),
		Phone:              page.Locator("input[name='phone']"),
		Location:           page.Locator("input[name='location'][type='text']"),
		Company:            page.Locator("input[data-qa='org-input']"),

		LinksHeading: page.Locator("h4:has-text('LINKS')"),
		LinkedIn:     page.Locator("input[name='urls[LinkedIn]'][type='text']"),
		Portfolio:    page.Locator("input[name*='portfolio' i]"),
		GitHub:       page.Locator("input[name*='github' i]"),
		OtherURL:     page.Locator("input[name*='other' i]"),

		QuestionsHeading:  page.Locator(fmt.Sprintf("h4:has-text('%s QUESTIONS')", strings.ToUpper(DefaultJobTitle))),
		AdditionalHeading: page.Locator("h4:has-text('ADDITIONAL INFORMATION')"),
		AdditionalInfo:    page.Locator("textarea"),

		SubmitButton: page.Locator("button:has-text('SUBMIT APPLICATION')"),
		HomepageLink: page.Locator("img[alt='Aerostrat logo']"),

		AIDisclosure:  page.Locator("p:has-text('We may use artificial intelligence (AI) tools to support parts of the hiring process')"),
		LeverBranding: page.Locator("a[href='https://www.lever.co/job-seeker-support/']"),
		CookieBanner:  page.Locator("text='Privacy Notice'"),

		RequiredIndicators: page.Locator(fmt.Sprintf("text='%s'", requiredMark)),
		ErrorMessages:      page.Locator(".error-message, .field-error, .validation-error, [class*='error']"),
		ErrorCloseButtons:  page.Locator(".error-close, .alert-close, [aria-label='close']"),
		Spinner:            page.Locator(".loading"),
		SuccessMessage:     page.Locator(".success-message"),
	}
}

// PronounOption locates the control for p. The zero Pronoun is rejected.
func (f *ApplicationForm) PronounOption(p models.Pronoun) (playwright.Locator, error) {
	if p.IsZero() {
		return nil, fmt.Errorf("%w: empty pronoun", ErrUnknownOption)
	}
	return f.page.Locator(fmt.Sprintf("input[value='%s']", p)), nil
}

// ExperienceOption locates the control for level within question q.
func (f *ApplicationForm) ExperienceOption(q Question, level models.ExperienceLevel) (playwright.Locator, error) {
	if q.IsZero() {
		return nil, fmt.Errorf("%w: empty question", ErrUnknownOption)
	}
	if level.IsZero() {
		return nil, fmt.Errorf("%w: empty experience level for %s", ErrUnknownOption, q)
	}
	return f.page.Locator(fmt.Sprintf("input[value='%s']", level)).Nth(q.index), nil
}

// QuestionPrompt locates the prompt text of q.
func (f *ApplicationForm) QuestionPrompt(q Question) playwright.Locator {
	return f.page.Locator(q.promptSelector())
}

// Navigate opens the form; an empty id opens the configured application posting.
func (f *ApplicationForm) Navigate(jobID string) error {
	if jobID == "" {
		jobID = f.site.ApplicationJobID
	}
	return f.goTo(f.site.ApplyURL(jobID))
}

// WaitForLoad blocks until the heading, name field and submit button are
// visible and any spinner is gone. timeout <= 0 uses the configured default.
func (f *ApplicationForm) WaitForLoad(timeout time.Duration) error {
	timeout = f.loadTimeout(timeout)

	for _, w := range []struct {
		what string
		loc  playwright.Locator
	}{
		{"page heading", f.PageHeading},
		{"full name field", f.FullName},
		{"submit button", f.SubmitButton},
	} {
		if err := waitFor(w.loc, playwright.WaitForSelectorStateVisible, timeout); err != nil {
			return loadError(w.what, timeout, err)
		}
	}

	spinning, err := probeVisible(f.Spinner)
	if err != nil {
		return err
	}
	if spinning {
		if err := waitFor(f.Spinner.First(), playwright.WaitForSelectorStateHidden, timeout); err != nil {
			return loadError("loading spinner", timeout, err)
		}
	}
	return nil
}

// Refresh reloads the form to clear any state left from earlier interactions.
func (f *ApplicationForm) Refresh() error {
	if _, err := f.page.Reload(playwright.PageReloadOptions{
		Timeout: playwright.Float(ms(f.timeouts.Navigation)),
	}); err != nil {
		return fmt.Errorf("reload: %w", err)
	}
	if err := f.WaitForLoad(0); err != nil {
		return err
	}
	return f.DismissCookieNotice()
}

func (f *ApplicationForm) UploadResume(path string) error {
	if err := f.ResumeInput.SetInputFiles(path); err != nil {
		return fmt.Errorf("upload %s: %w", path, err)
	}
	return nil
}

// UploadedFileCount is the number of files currently attached to the resume input.
func (f *ApplicationForm) UploadedFileCount() (int, error) {
	v, err := f.page.Evaluate("() => document.querySelector('input[type=file]').files.length")
	if err != nil {
		return 0, err
	}
	switch n := v.(type) {
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case float64:
		return int(n), nil
	}
	return 0, fmt.Errorf("unexpected file count %v (%T)", v, v)
}

// FillPersonalInfo fills the contact fields and selects the pronoun when set.
func (f *ApplicationForm) FillPersonalInfo(info models.PersonalInfo) error {
	for _, field := range []struct {
		name  string
		loc   playwright.Locator
		value string
	}{
		{"full name", f.FullName, info.FullName},
		{"email", f.Email, info.Email},
		{"phone", f.Phone, info.Phone},
		{"location", f.Location, info.Location},
		{"company", f.Company, info.Company},
	} {
		if err := field.loc.Fill(field.value); err != nil {
			return fmt.Errorf("fill %s: %w", field.name, err)
		}
	}

	if info.Pronoun.IsZero() {
		return nil
	}
	return f.SelectPronoun(info.Pronoun)
}

// SelectPronoun checks p and unchecks any other pronoun, so exactly one
// pronoun is selected afterwards.
func (f *ApplicationForm) SelectPronoun(p models.Pronoun) error {
	target, err := f.PronounOption(p)
	if err != nil {
		return err
	}
	if err := target.Check(); err != nil {
		return fmt.Errorf("check pronoun %s: %w", p, err)
	}

	for _, other := range models.Pronouns() {
		if other == p {
			continue
		}
		loc, _ := f.PronounOption(other)
		n, err := loc.Count()
		if err != nil {
			return err
		}
		if n == 0 {
			continue
		}
		checked, err := loc.IsChecked()
		if err != nil {
			return err
		}
		if checked {
			if err := loc.Uncheck(); err != nil {
				return fmt.Errorf("uncheck pronoun %s: %w", other, err)
			}
		}
	}
	return nil
}

// FillLinks fills the non-empty URLs and leaves the other fields untouched.
func (f *ApplicationForm) FillLinks(links models.Links) error {
	for _, field := range []struct {
		name  string
		loc   playwright.Locator
		value string
	}{
		{"linkedin", f.LinkedIn, links.LinkedIn},
		{"portfolio", f.Portfolio, links.Portfolio},
		{"github", f.GitHub, links.GitHub},
		{"other", f.OtherURL, links.Other},
	} {
		if field.value == "" {
			continue
		}
		if err := field.loc.Fill(field.value); err != nil {
			return fmt.Errorf("fill %s url: %w", field.name, err)
		}
	}
	return nil
}

// SelectExperience checks level for question q.
func (f *ApplicationForm) SelectExperience(q Question, level models.ExperienceLevel) error {
	loc, err := f.ExperienceOption(q, level)
	if err != nil {
		return err
	}
	if err := loc.Check(); err != nil {
		return fmt.Errorf("select %s for %s: %w", level, q, err)
	}
	return nil
}

func (f *ApplicationForm) SelectE2EAutomationExperience(level models.ExperienceLevel) error {
	return f.SelectExperience(E2EAutomationQuestion, level)
}

func (f *ApplicationForm) SelectPythonExperience(level models.ExperienceLevel) error {
	return f.SelectExperience(PythonQuestion, level)
}

func (f *ApplicationForm) SelectPlaywrightExperience(level models.ExperienceLevel) error {
	return f.SelectExperience(PlaywrightQuestion, level)
}

func (f *ApplicationForm) SelectAutomationTypesExperience(level models.ExperienceLevel) error {
	return f.SelectExperience(AutomationTypesQuestion, level)
}

// AnswerExperienceQuestions answers all four questions. Every answer must be set.
func (f *ApplicationForm) AnswerExperienceQuestions(a models.ExperienceAnswers) error {
	for _, q := range Questions() {
		if err := f.SelectExperience(q, q.Answer(a)); err != nil {
			return err
		}
	}
	return nil
}

func (f *ApplicationForm) FillAdditionalInfo(text string) error {
	return f.AdditionalInfo.Fill(text)
}

// Submit clicks the submit button. It does not wait for or confirm success.
func (f *ApplicationForm) Submit() error {
	return f.SubmitButton.Click()
}

// FillCompleteApplication uploads the resume and fills every section.
// Unset experience answers fall back to models.DefaultExperience.
func (f *ApplicationForm) FillCompleteApplication(resumePath string, a models.Applicant) error {
	if err := f.UploadResume(resumePath); err != nil {
		return err
	}
	if err := f.FillPersonalInfo(a.Personal); err != nil {
		return err
	}
	if err := f.FillLinks(a.Links); err != nil {
		return err
	}
	if err := f.AnswerExperienceQuestions(a.Experience.WithDefaults()); err != nil {
		return err
	}
	if a.AdditionalInfo == "" {
		return nil
	}
	return f.FillAdditionalInfo(a.AdditionalInfo)
}

func (f *ApplicationForm) sectionHeading(s FormSection) (playwright.Locator, error) {
	switch s {
	case PersonalSection:
		return f.PageHeading, nil
	case LinksSection:
		return f.LinksHeading, nil
	case QuestionsSection:
		return f.QuestionsHeading, nil
	case AdditionalSection:
		return f.AdditionalHeading, nil
	}
	return nil, fmt.Errorf("%w: form section %q", ErrUnknownOption, s)
}

func (f *ApplicationForm) ScrollToSection(s FormSection) error {
	heading, err := f.sectionHeading(s)
	if err != nil {
		return err
	}
	return heading.ScrollIntoViewIfNeeded()
}

// RequiredFields lists the labels carrying the required mark, mark removed.
func (f *ApplicationForm) RequiredFields() ([]string, error) {
	marks, err := f.RequiredIndicators.All()
	if err != nil {
		return nil, err
	}
	var fields []string
	for _, m := range marks {
		text, err := m.Locator("..").TextContent()
		if err != nil {
			return nil, err
		}
		if label := strings.TrimSpace(strings.ReplaceAll(text, requiredMark, "")); label != "" {
			fields = append(fields, label)
		}
	}
	return fields, nil
}

func (f *ApplicationForm) HasValidationErrors() (bool, error) {
	n, err := f.ErrorMessages.Count()
	return n > 0, err
}

func (f *ApplicationForm) ValidationErrors() ([]string, error) {
	return texts(f.ErrorMessages)
}

// ClearFormErrors clicks every visible close button on error messages.
func (f *ApplicationForm) ClearFormErrors() error {
	buttons, err := f.ErrorCloseButtons.All()
	if err != nil {
		return err
	}
	for _, b := range buttons {
		visible, err := b.IsVisible()
		if err != nil {
			return err
		}
		if !visible {
			continue
		}
		if err := b.Click(); err != nil {
			return err
		}
	}
	return nil
}

// IsFormComplete reports whether the submit button is enabled. Lever keeps
// the button enabled and validates on submit, so this is only a hint.
func (f *ApplicationForm) IsFormComplete() (bool, error) {
	return f.SubmitButton.IsEnabled()
}

func (f *ApplicationForm) AssertPageLoaded() error {
	for _, v := range []struct {
		field string
		loc   playwright.Locator
	}{
		{"page heading", f.PageHeading},
		{"full name field", f.FullName},
		{"submit button", f.SubmitButton},
	} {
		if err := f.expectVisible(v.field, v.loc); err != nil {
			return err
		}
	}
	return nil
}

// AssertRequiredFieldsPresent checks every expected label is marked required.
func (f *ApplicationForm) AssertRequiredFieldsPresent() error {
	fields, err := f.RequiredFields()
	if err != nil {
		return err
	}
	var missing []string
	for _, want := range ExpectedRequiredFields {
		found := false
		for _, got := range fields {
			if strings.Contains(got, want) {
				found = true
				break
			}
		}
		if !found {
			missing = append(missing, want)
		}
	}
	if len(missing) > 0 {
		return assertionFailed("required fields", strings.Join(ExpectedRequiredFields, ", "),
			fmt.Sprintf("%s (missing %s)", strings.Join(fields, ", "), strings.Join(missing, ", ")), nil)
	}
	return nil
}

func (f *ApplicationForm) AssertNoValidationErrors() error {
	has, err := f.HasValidationErrors()
	if err != nil || !has {
		return err
	}
	errs, err := f.ValidationErrors()
	if err != nil {
		return err
	}
	return assertionFailed("validation errors", "none", fmt.Sprintf("%q", errs), nil)
}

func (f *ApplicationForm) AssertFormSectionsPresent() error {
	for _, s := range FormSections() {
		heading, _ := f.sectionHeading(s)
		if err := f.expectVisible(s.String()+" section", heading); err != nil {
			return err
		}
	}
	return nil
}

func (f *ApplicationForm) AssertSubmitEnabled() error {
	return f.expectEnabled("submit button", f.SubmitButton)
}

func (f *ApplicationForm) AssertAllExperienceQuestionsPresent() error {
	for _, q := range Questions() {
		if err := f.expectVisible(q.String()+" question", f.QuestionPrompt(q)); err != nil {
			return err
		}
	}
	return nil
}

// AssertPersonalInfo checks each contact field holds exactly the given value.
func (f *ApplicationForm) AssertPersonalInfo(info models.PersonalInfo) error {
	for _, field := range []struct {
		name  string
		loc   playwright.Locator
		value string
	}{
		{"full name", f.FullName, info.FullName},
		{"email", f.Email, info.Email},
		{"phone", f.Phone, info.Phone},
		{"location", f.Location, info.Location},
		{"company", f.Company, info.Company},
	} {
		if err := f.expectValue(field.name, field.loc, field.value); err != nil {
			return err
		}
	}
	return nil
}

// AssertExperience checks the selected level of question q.
func (f *ApplicationForm) AssertExperience(q Question, level models.ExperienceLevel) error {
	loc, err := f.ExperienceOption(q, level)
	if err != nil {
		return err
	}
	return f.expectChecked(fmt.Sprintf("%s answer %s", q, level), loc)
}
