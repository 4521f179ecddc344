package pages

import (
	"errors"
	"fmt"
	"time"

	"go-lever-e2e/internal/models"

	"github.com/playwright-community/playwright-go"
)

var (
	// ErrLoadTimeout is returned when a page does not reach its loaded state in time.
	ErrLoadTimeout = errors.New("page load timeout")
	// ErrAssertion matches every *AssertionError.
	ErrAssertion = errors.New("assertion failed")
	// ErrUnknownOption is returned for zero-valued options and sections.
	ErrUnknownOption = models.ErrUnknownOption
)

// AssertionError reports a mismatch between the expected and actual page state.
type AssertionError struct {
	Field    string
	Expected string
	Actual   string
	Err      error
}

func (e *AssertionError) Error() string {
	msg := fmt.Sprintf("%s: expected %s, got %s", e.Field, e.Expected, e.Actual)
	if e.Err != nil {
		msg += " (" + e.Err.Error() + ")"
	}
	return msg
}

func (e *AssertionError) Is(target error) bool { return target == ErrAssertion }

func (e *AssertionError) Unwrap() error { return e.Err }

func assertionFailed(field, expected, actual string, err error) error {
	return &AssertionError{Field: field, Expected: expected, Actual: actual, Err: err}
}

// loadError classifies a wait failure. Only driver timeouts become ErrLoadTimeout.
func loadError(what string, timeout time.Duration, err error) error {
	if errors.Is(err, playwright.ErrTimeout) {
		return fmt.Errorf("%w: %s not ready after %s: %w", ErrLoadTimeout, what, timeout, err)
	}
	return fmt.Errorf("wait for %s: %w", what, err)
}
