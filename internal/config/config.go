// Load envs from .env
// Load YAML config
// Apply env overrides and defaults
// Validate config

package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const DefaultPath = "configs/config.yaml"

// Profile names used by the suites. Each suite asks for its profile
// explicitly instead of shadowing a shared fixture.
const (
	ProfileDefault     = "default"
	ProfileOverview    = "overview"
	ProfileApplication = "application"
)

type Config struct {
	Site     SiteConfig                `yaml:"site"`
	Browser  BrowserConfig             `yaml:"browser"`
	Context  ContextProfile            `yaml:"context"`
	Profiles map[string]ContextProfile `yaml:"profiles"`
	Timeouts TimeoutConfig             `yaml:"timeouts"`

	//Live enables the suites that hit the real job board
	Live bool `yaml:"live"`

	//Paths
	CookiesPath   string `yaml:"cookies_path"`
	ScreenshotDir string `yaml:"screenshot_dir" validate:"required"`
	LogDir        string `yaml:"log_dir" validate:"required"`

	//Reporting, both optional
	TelegramToken  string `yaml:"telegram_token"`
	TelegramChatID int64  `yaml:"telegram_chat_id"`
}

type SiteConfig struct {
	BaseURL          string `yaml:"base_url" validate:"required,url"`
	Org              string `yaml:"org" validate:"required"`
	OverviewJobID    string `yaml:"overview_job_id" validate:"required"`
	ApplicationJobID string `yaml:"application_job_id" validate:"required"`
}

// JobURL is the public posting page for a job id.
func (s SiteConfig) JobURL(jobID string) string {
	return fmt.Sprintf("%s/%s/%s", strings.TrimRight(s.BaseURL, "/"), s.Org, jobID)
}

// ApplyURL is the application form for a job id.
func (s SiteConfig) ApplyURL(jobID string) string {
	return s.JobURL(jobID) + "/apply"
}

type BrowserConfig struct {
	Name     string        `yaml:"name" validate:"oneof=chromium firefox webkit"`
	Headless bool          `yaml:"headless"`
	SlowMo   time.Duration `yaml:"slow_mo" validate:"gte=0"`
}

type Viewport struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// ContextProfile is the browser context configuration for one suite.
type ContextProfile struct {
	Viewport         Viewport          `yaml:"viewport"`
	UserAgent        string            `yaml:"user_agent"`
	ExtraHTTPHeaders map[string]string `yaml:"extra_http_headers"`
	Locale           string            `yaml:"locale"`
}

// Merge returns p with every non-zero field of over applied on top.
// Headers are merged key by key.
func (p ContextProfile) Merge(over ContextProfile) ContextProfile {
	out := p
	if over.Viewport.Width > 0 && over.Viewport.Height > 0 {
		out.Viewport = over.Viewport
	}
	if over.UserAgent != "" {
		out.UserAgent = over.UserAgent
	}
	if over.Locale != "" {
		out.Locale = over.Locale
	}
	if len(p.ExtraHTTPHeaders)+len(over.ExtraHTTPHeaders) > 0 {
		out.ExtraHTTPHeaders = make(map[string]string, len(p.ExtraHTTPHeaders)+len(over.ExtraHTTPHeaders))
		for k, v := range p.ExtraHTTPHeaders {
			out.ExtraHTTPHeaders[k] = v
		}
		for k, v := range over.ExtraHTTPHeaders {
			out.ExtraHTTPHeaders[k] = v
		}
	}
	return out
}

type TimeoutConfig struct {
	PageLoad   time.Duration `yaml:"page_load" validate:"gt=0"`
	Navigation time.Duration `yaml:"navigation" validate:"gt=0"`
	Assertion  time.Duration `yaml:"assertion" validate:"gt=0"`
}

// Profile resolves a named profile on top of the base context profile.
// Unknown names resolve to the base profile.
func (c *Config) Profile(name string) ContextProfile {
	if over, ok := c.Profiles[name]; ok && name != ProfileDefault {
		return c.Context.Merge(over)
	}
	return c.Context.Merge(ContextProfile{})
}

// TelegramEnabled reports whether both bot credentials were provided.
func (c *Config) TelegramEnabled() bool {
	return c.TelegramToken != "" && c.TelegramChatID != 0
}

// Default returns the built-in configuration for the aerostrat QA posting.
func Default() *Config {
	return &Config{
		Site: SiteConfig{
			BaseURL:          "https://jobs.lever.co",
			Org:              "aerostrat",
			OverviewJobID:    "adac8189-b81c-4d24-9b66-a43f138685ac",
			ApplicationJobID: "2cce6cc2-dcdd-4562-af4d-8eb6afd5b281",
		},
		Browser: BrowserConfig{
			Name:     "chromium",
			Headless: true,
		},
		Context: ContextProfile{
			Viewport:  Viewport{Width: 1280, Height: 720},
			UserAgent: "Aerostrat-Playwright-Tests/1.0",
			ExtraHTTPHeaders: map[string]string{
				"Accept-Language": "en-US,en;q=0.9",
			},
		},
		Profiles: map[string]ContextProfile{
			ProfileOverview: {
				Viewport:  Viewport{Width: 1280, Height: 720},
				UserAgent: "Mozilla/5.0 (Playwright Test Runner)",
			},
			ProfileApplication: {
				Viewport:  Viewport{Width: 1440, Height: 900},
				UserAgent: "Aerostrat-Application-Tests/1.0",
			},
		},
		Timeouts: TimeoutConfig{
			PageLoad:   30 * time.Second,
			Navigation: 30 * time.Second,
			Assertion:  5 * time.Second,
		},
		CookiesPath:   "../.cookies",
		ScreenshotDir: "logs/screenshots",
		LogDir:        "logs",
	}
}

// Load reads the config from CONFIG_PATH or configs/config.yaml and exits on error.
func Load() *Config {
	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = DefaultPath
	}
	cfg, err := LoadFrom(path)
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}
	return cfg
}

// LoadFrom layers the YAML file at path (optional), env vars and defaults.
func LoadFrom(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
			log.Printf("Warning: config file %s not found, using defaults", path)
		case err != nil:
			return nil, fmt.Errorf("read %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse %s: %w", path, err)
			}
		}
	}

	if err := ApplyEnv(cfg); err != nil {
		return nil, err
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyEnv overrides cfg with the supported environment variables.
func ApplyEnv(cfg *Config) error {
	if v := os.Getenv("LEVER_BASE_URL"); v != "" {
		cfg.Site.BaseURL = v
	}
	if v := os.Getenv("LEVER_ORG"); v != "" {
		cfg.Site.Org = v
	}
	if v := os.Getenv("BROWSER"); v != "" {
		cfg.Browser.Name = strings.ToLower(v)
	}
	if v := os.Getenv("HEADLESS"); v != "" {
		headless, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid HEADLESS: %w", err)
		}
		cfg.Browser.Headless = headless
	}
	if v := os.Getenv("LEVER_LIVE"); v != "" {
		live, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid LEVER_LIVE: %w", err)
		}
		cfg.Live = live
	}
	if token := os.Getenv("TELEGRAM_BOT_TOKEN"); token != "" {
		cfg.TelegramToken = token
	}
	if chatID := os.Getenv("TELEGRAM_CHAT_ID"); chatID != "" {
		id, err := strconv.ParseInt(chatID, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid TELEGRAM_CHAT_ID: %w", err)
		}
		cfg.TelegramChatID = id
	}
	return nil
}

var validate = validator.New()

// Validate checks struct tags and that every profile resolves to a usable viewport.
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	for _, name := range []string{ProfileDefault, ProfileOverview, ProfileApplication} {
		vp := cfg.Profile(name).Viewport
		if vp.Width <= 0 || vp.Height <= 0 {
			return fmt.Errorf("invalid config: profile %q has no viewport", name)
		}
	}
	return nil
}
