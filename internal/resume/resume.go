package resume

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"go-lever-e2e/internal/models"
)

var slugRegex = regexp.MustCompile(`[^a-z0-9]+`)

// Text renders the plain-text resume uploaded by the form tests.
func Text(p models.ResumeProfile) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Resume for %s\n", p.FullName)
	fmt.Fprintf(&b, "Email: %s\n", p.Email)
	fmt.Fprintf(&b, "Phone: %s\n", p.Phone)
	fmt.Fprintf(&b, "Address: %s\n", p.Address)
	fmt.Fprintf(&b, "Job Title: %s\n", p.JobTitle)
	fmt.Fprintf(&b, "Company: %s\n", p.Company)
	fmt.Fprintf(&b, "Experience: %d years in %s\n", p.Years, p.Field)
	fmt.Fprintf(&b, "Skills: %s\n", strings.Join(p.Skills, ", "))
	fmt.Fprintf(&b, "Education: %s\n", p.Education)
	return b.String()
}

// FileName is the base name used for a profile's resume, without extension.
func FileName(p models.ResumeProfile) string {
	slug := strings.Trim(slugRegex.ReplaceAllString(strings.ToLower(p.FullName), "-"), "-")
	if slug == "" {
		slug = "applicant"
	}
	return "resume-" + slug
}

// WriteText writes the text resume into dir and returns its path.
func WriteText(dir string, p models.ResumeProfile) (string, error) {
	path := filepath.Join(dir, FileName(p)+".txt")
	if err := SaveToFile([]byte(Text(p)), path); err != nil {
		return "", err
	}
	return path, nil
}

// SaveToFile writes data to outputPath, creating parent directories.
func SaveToFile(data []byte, outputPath string) error {
	dir := filepath.Dir(outputPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("could not create directory: %w", err)
	}

	return os.WriteFile(outputPath, data, 0644)
}
