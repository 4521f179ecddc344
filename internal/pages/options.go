package pages

import (
	"fmt"

	"go-lever-e2e/internal/models"
)

// Question is one of the job-specific experience questions on the form.
// Each question owns its prompt and the ordinal of its radio group.
type Question struct {
	key    string
	index  int
	prompt string
	// selector overrides the exact-text prompt locator when set
	selector string
}

var (
	E2EAutomationQuestion = Question{
		key:    "e2e_automation",
		index:  0,
		prompt: "How many years of work experience do you have developing E2E test automation?",
	}
	PythonQuestion = Question{
		key:    "python",
		index:  1,
		prompt: "How many years of direct work experience do you have developing code in Python?",
	}
	PlaywrightQuestion = Question{
		key:    "playwright",
		index:  2,
		prompt: "How many years of direct work experience do you have developing E2E tests with Playwright?",
	}
	AutomationTypesQuestion = Question{
		key:      "automation_types",
		index:    3,
		prompt:   "How many years of experience do you have developing different types of automated tests (i.e. API, Security, Performance, etc.)?",
		selector: "div.text:has-text('How many years of experience do you have developing different types of automated tests (i.e. API, Security, Performance, etc.)?')",
	}
)

// Questions lists the questions in form order.
func Questions() []Question {
	return []Question{E2EAutomationQuestion, PythonQuestion, PlaywrightQuestion, AutomationTypesQuestion}
}

func (q Question) String() string { return q.key }

func (q Question) Prompt() string { return q.prompt }

func (q Question) IsZero() bool { return q.key == "" }

func (q Question) promptSelector() string {
	if q.selector != "" {
		return q.selector
	}
	return fmt.Sprintf("text='%s'", q.prompt)
}

// Answer returns the level chosen for q in a.
func (q Question) Answer(a models.ExperienceAnswers) models.ExperienceLevel {
	switch q {
	case E2EAutomationQuestion:
		return a.E2EAutomation
	case PythonQuestion:
		return a.Python
	case PlaywrightQuestion:
		return a.Playwright
	case AutomationTypesQuestion:
		return a.AutomationTypes
	}
	return models.ExperienceLevel{}
}

// Section is a heading on the job overview page.
type Section struct {
	key     string
	heading string
}

var (
	AboutAerostrat   = Section{"about_aerostrat", "About Aerostrat"}
	AboutRole        = Section{"about_role", "About this role"}
	Responsibilities = Section{"responsibilities", "In this role, you will..."}
	Requirements     = Section{"requirements", "This role is great for you if..."}
	Compensation     = Section{"compensation", "Compensation"}
	Benefits         = Section{"benefits", "Benefits"}
	WhyAerostrat     = Section{"why_aerostrat", "Why Aerostrat"}
)

func Sections() []Section {
	return []Section{AboutAerostrat, AboutRole, Responsibilities, Requirements, Compensation, Benefits, WhyAerostrat}
}

// RequiredSections must be present on every posting.
func RequiredSections() []Section {
	return []Section{AboutAerostrat, Responsibilities, Requirements, Compensation, Benefits}
}

func (s Section) String() string { return s.key }

func (s Section) Heading() string { return s.heading }

func (s Section) IsZero() bool { return s.key == "" }

// FormSection is a scroll target on the application form.
type FormSection struct {
	key string
}

var (
	PersonalSection   = FormSection{"personal"}
	LinksSection      = FormSection{"links"}
	QuestionsSection  = FormSection{"questions"}
	AdditionalSection = FormSection{"additional"}
)

func FormSections() []FormSection {
	return []FormSection{PersonalSection, LinksSection, QuestionsSection, AdditionalSection}
}

func (s FormSection) String() string { return s.key }

func (s FormSection) IsZero() bool { return s.key == "" }
