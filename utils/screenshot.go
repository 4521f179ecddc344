package utils

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/playwright-community/playwright-go"
)

var unsafeName = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

// ScreenShotDebugger saves full-page screenshots for failed checks.
type ScreenShotDebugger struct {
	outputDir string
}

func NewScreenShotDebugger(dir string) *ScreenShotDebugger {
	if dir == "" {
		dir = filepath.Join(".", "logs", "screenshots")
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		log.Printf("⚠️ Failed to create screenshot dir %s: %v", dir, err)
	}
	return &ScreenShotDebugger{
		outputDir: dir,
	}
}

// FileName builds the timestamped screenshot name for a check.
func (s *ScreenShotDebugger) FileName(name string, at time.Time) string {
	clean := strings.Trim(unsafeName.ReplaceAllString(name, "_"), "_")
	if clean == "" {
		clean = "page"
	}
	return filepath.Join(s.outputDir, fmt.Sprintf("%s_%s.png", clean, at.Format("2006-01-02_15-04-05")))
}

// CaptureAndLog saves a screenshot of page and returns its path.
func (s *ScreenShotDebugger) CaptureAndLog(page playwright.Page, name, message string) (string, error) {
	path := s.FileName(name, time.Now())
	log.Printf("📸 %s", message)

	_, err := page.Screenshot(playwright.PageScreenshotOptions{
		Path:     playwright.String(path),
		FullPage: playwright.Bool(true),
	})
	if err != nil {
		log.Printf("⚠️ Failed to capture screenshot: %v", err)
		return "", err
	}

	log.Printf("   Screenshot saved: %s", path)
	return path, nil
}
