package checks

import (
	"context"
	"fmt"

	"go-lever-e2e/internal/config"
	"go-lever-e2e/internal/fakedata"
	"go-lever-e2e/internal/pages"
	"go-lever-e2e/internal/resume"

	"github.com/playwright-community/playwright-go"
)

func openApplicationForm(cfg *config.Config, page playwright.Page) (*pages.ApplicationForm, error) {
	f := pages.NewApplicationForm(page, cfg)
	if err := f.Navigate(""); err != nil {
		return nil, err
	}
	if err := f.WaitForLoad(0); err != nil {
		return nil, err
	}
	if err := f.DismissCookieNotice(); err != nil {
		return nil, err
	}
	return f, nil
}

func applicationCheck(cfg *config.Config, name string, fn func(f *pages.ApplicationForm) error) Check {
	return New("application/"+name, config.ProfileApplication, func(_ context.Context, page playwright.Page) error {
		f, err := openApplicationForm(cfg, page)
		if err != nil {
			return err
		}
		return fn(f)
	})
}

// ApplicationChecks covers the application form. Resumes are written to
// resumeDir. Nothing is ever submitted.
func ApplicationChecks(cfg *config.Config, resumeDir string, seed uint64) []Check {
	g := fakedata.New(seed)

	return []Check{
		applicationCheck(cfg, "loads", func(f *pages.ApplicationForm) error {
			if err := f.AssertPageLoaded(); err != nil {
				return err
			}
			return f.AssertFormSectionsPresent()
		}),
		applicationCheck(cfg, "required-fields", func(f *pages.ApplicationForm) error {
			return f.AssertRequiredFieldsPresent()
		}),
		applicationCheck(cfg, "questions", func(f *pages.ApplicationForm) error {
			return f.AssertAllExperienceQuestionsPresent()
		}),
		applicationCheck(cfg, "personal-info", func(f *pages.ApplicationForm) error {
			info := g.PersonalInfo()
			info.Pronoun = g.Pronoun()
			if err := f.FillPersonalInfo(info); err != nil {
				return err
			}
			return f.AssertPersonalInfo(info)
		}),
		applicationCheck(cfg, "resume-upload", func(f *pages.ApplicationForm) error {
			path, err := resume.WriteText(resumeDir, g.ResumeProfile())
			if err != nil {
				return err
			}
			if err := f.UploadResume(path); err != nil {
				return err
			}
			n, err := f.UploadedFileCount()
			if err != nil {
				return err
			}
			if n == 0 {
				return fmt.Errorf("resume input has no files after upload")
			}
			return nil
		}),
		applicationCheck(cfg, "complete-fill", func(f *pages.ApplicationForm) error {
			path, err := resume.WriteText(resumeDir, g.ResumeProfile())
			if err != nil {
				return err
			}
			a := g.Applicant()
			if err := f.FillCompleteApplication(path, a); err != nil {
				return err
			}
			if err := f.AssertPersonalInfo(a.Personal); err != nil {
				return err
			}
			for _, q := range pages.Questions() {
				if err := f.AssertExperience(q, q.Answer(a.Experience.WithDefaults())); err != nil {
					return err
				}
			}
			return f.AssertSubmitEnabled()
		}),
	}
}

// All returns every smoke check, overview first.
func All(cfg *config.Config, resumeDir string, seed uint64) []Check {
	return append(OverviewChecks(cfg), ApplicationChecks(cfg, resumeDir, seed)...)
}
