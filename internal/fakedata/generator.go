package fakedata

import (
	"fmt"
	"strings"

	"go-lever-e2e/internal/models"

	"github.com/brianvoe/gofakeit/v7"
)

var (
	portfolioTLDs = []string{"dev", "com", "io"}
	passionAreas  = []string{"test automation", "quality assurance", "software development", "system integration"}
	frameworks    = []string{"Playwright", "Selenium", "Cypress", "TestCafe", "Jest", "PyTest"}
	strengths     = []string{"automation", "quality engineering", "test strategy", "continuous integration"}
	missions      = []string{"aviation technology", "aerospace innovation", "technical excellence"}
	degrees       = []string{"B.Sc.", "M.Sc.", "B.Eng.", "Associate degree"}
	studyFields   = []string{"Computer Science", "Software Engineering", "Information Systems", "Electrical Engineering"}
)

// Generator produces applicant data. The same seed yields the same sequence.
type Generator struct {
	f *gofakeit.Faker
}

// New returns a generator seeded with seed; 0 picks a random seed.
func New(seed uint64) *Generator {
	return &Generator{f: gofakeit.New(seed)}
}

func (g *Generator) PersonalInfo() models.PersonalInfo {
	return models.PersonalInfo{
		FullName: g.f.Name(),
		Email:    g.f.Email(),
		Phone:    g.f.PhoneFormatted(),
		Location: fmt.Sprintf("%s, %s", g.f.City(), g.f.StateAbr()),
		Company:  g.f.Company(),
	}
}

// Pronoun picks one of choices, or one of She/her, He/him, They/them.
func (g *Generator) Pronoun(choices ...models.Pronoun) models.Pronoun {
	if len(choices) == 0 {
		choices = []models.Pronoun{models.SheHer, models.HeHim, models.TheyThem}
	}
	return choices[g.f.IntRange(0, len(choices)-1)]
}

// Level picks one of choices, or any band.
func (g *Generator) Level(choices ...models.ExperienceLevel) models.ExperienceLevel {
	if len(choices) == 0 {
		choices = models.ExperienceLevels()
	}
	return choices[g.f.IntRange(0, len(choices)-1)]
}

// Links derives every profile URL from one username.
func (g *Generator) Links() models.Links {
	username := strings.ToLower(g.f.Username())
	return models.Links{
		LinkedIn:  "https://linkedin.com/in/" + username,
		Portfolio: fmt.Sprintf("https://%s.%s", username, g.f.RandomString(portfolioTLDs)),
		GitHub:    "https://github.com/" + username,
		Other:     fmt.Sprintf("https://blog.%s.%s", username, g.f.RandomString(portfolioTLDs)),
	}
}

// Experience answers with the bands a plausible QA candidate would pick.
func (g *Generator) Experience() models.ExperienceAnswers {
	return models.ExperienceAnswers{
		E2EAutomation:   g.Level(models.OneToTwo, models.TwoToFour, models.FivePlus),
		Python:          g.Level(models.TwoToFour, models.FivePlus),
		Playwright:      g.Level(models.OneToTwo, models.TwoToFour),
		AutomationTypes: g.Level(models.TwoToFour, models.FivePlus),
	}
}

// AdditionalInfo is a short cover note naming three frameworks.
func (g *Generator) AdditionalInfo() string {
	picked := append([]string(nil), frameworks...)
	g.f.ShuffleStrings(picked)
	picked = picked[:3]

	return fmt.Sprintf(
		"I am passionate about %s and have %d years of experience in the field. "+
			"I have hands-on experience with testing frameworks including %s, %s, and %s. "+
			"I am excited to bring my expertise in %s to %s.",
		g.f.RandomString(passionAreas),
		g.f.IntRange(2, 8),
		picked[0], picked[1], picked[2],
		g.f.RandomString(strengths),
		g.f.RandomString(missions),
	)
}

func (g *Generator) Applicant() models.Applicant {
	personal := g.PersonalInfo()
	personal.Pronoun = g.Pronoun()
	return models.Applicant{
		Personal:       personal,
		Links:          g.Links(),
		Experience:     g.Experience(),
		AdditionalInfo: g.AdditionalInfo(),
	}
}

// ResumeProfile builds the content of a throwaway resume.
func (g *Generator) ResumeProfile() models.ResumeProfile {
	skills := make([]string, 5)
	for i := range skills {
		skills[i] = g.f.Word()
	}
	addr := g.f.Address()

	return models.ResumeProfile{
		FullName:  g.f.Name(),
		Email:     g.f.Email(),
		Phone:     g.f.PhoneFormatted(),
		Address:   addr.Address,
		JobTitle:  g.f.JobTitle(),
		Company:   g.f.Company(),
		Years:     g.f.IntRange(1, 15),
		Field:     g.f.BS(),
		Skills:    skills,
		Education: fmt.Sprintf("%s in %s", g.f.RandomString(degrees), g.f.RandomString(studyFields)),
	}
}
