// Smoke checks run against the job board
// Each check gets its own browser context

package checks

import (
	"context"

	"github.com/playwright-community/playwright-go"
)

//Check is one smoke check against the job board
type Check interface {
	//Name is the check id, e.g. overview/loads
	Name() string

	//Profile names the context profile the check runs under
	Profile() string

	//Run performs the check on a fresh page
	Run(ctx context.Context, page playwright.Page) error
}

type check struct {
	name    string
	profile string
	run     func(ctx context.Context, page playwright.Page) error
}

func (c check) Name() string    { return c.name }
func (c check) Profile() string { return c.profile }

func (c check) Run(ctx context.Context, page playwright.Page) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return c.run(ctx, page)
}

// New wraps fn as a Check.
func New(name, profile string, fn func(ctx context.Context, page playwright.Page) error) Check {
	return check{name: name, profile: profile, run: fn}
}
