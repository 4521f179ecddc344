package models

type PersonalInfo struct {
	FullName string  `json:"full_name"`
	Email    string  `json:"email"`
	Phone    string  `json:"phone"`
	Location string  `json:"location"`
	Company  string  `json:"company"`
	Pronoun  Pronoun `json:"pronoun"`
}

// Links holds the optional profile URLs. Empty fields are left untouched on the form.
type Links struct {
	LinkedIn  string `json:"linkedin,omitempty"`
	Portfolio string `json:"portfolio,omitempty"`
	GitHub    string `json:"github,omitempty"`
	Other     string `json:"other,omitempty"`
}

// ExperienceAnswers is one answer per job-specific experience question.
type ExperienceAnswers struct {
	E2EAutomation   ExperienceLevel `json:"e2e_automation"`
	Python          ExperienceLevel `json:"python"`
	Playwright      ExperienceLevel `json:"playwright"`
	AutomationTypes ExperienceLevel `json:"automation_types"`
}

// DefaultExperience is used for any answer left unset on a complete application.
func DefaultExperience() ExperienceAnswers {
	return ExperienceAnswers{
		E2EAutomation:   TwoToFour,
		Python:          TwoToFour,
		Playwright:      OneToTwo,
		AutomationTypes: TwoToFour,
	}
}

// WithDefaults fills the unset answers from DefaultExperience.
func (a ExperienceAnswers) WithDefaults() ExperienceAnswers {
	def := DefaultExperience()
	if a.E2EAutomation.IsZero() {
		a.E2EAutomation = def.E2EAutomation
	}
	if a.Python.IsZero() {
		a.Python = def.Python
	}
	if a.Playwright.IsZero() {
		a.Playwright = def.Playwright
	}
	if a.AutomationTypes.IsZero() {
		a.AutomationTypes = def.AutomationTypes
	}
	return a
}

// Applicant is a generated record for one form fill. Nothing is persisted.
type Applicant struct {
	Personal       PersonalInfo      `json:"personal"`
	Links          Links             `json:"links"`
	Experience     ExperienceAnswers `json:"experience"`
	AdditionalInfo string            `json:"additional_info,omitempty"`
}
