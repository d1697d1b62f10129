package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all configuration required by the API process.
// All values come from env (or an env-file loaded before Load runs).
// No business logic should depend on raw environment variables.
type Config struct {
	App     AppConfig
	Redis   RedisConfig
	Session SessionConfig
	AI      AIConfig
}

type AppConfig struct {
	Env  string
	Port int
}

type RedisConfig struct {
	Host string
	Port int
}

type SessionConfig struct {
	Secret string
	Issuer string
	TTL    time.Duration
}

// AIConfig drives the narrative collaborator. An empty APIKey disables
// the collaborator entirely; the application runs on fallback annotations.
type AIConfig struct {
	APIKey     string
	FlashModel string
	ProModel   string
	BaseURL    string

	// Timeout bounds every collaborator call; expiry is treated the same
	// as "unavailable".
	Timeout time.Duration
}

const (
	defaultFlashModel = "gemini-3-flash-preview"
	defaultProModel   = "gemini-3-pro-preview"
	defaultAIBaseURL  = "https://generativelanguage.googleapis.com"
	defaultAITimeout  = 15 * time.Second
	defaultSessionTTL = 12 * time.Hour
)

func Load() (Config, error) {
	c := Config{}
	var parseErrs []error

	c.App.Env = strings.TrimSpace(os.Getenv("APP_ENV"))
	{
		n, err := mustInt("APP_PORT")
		if err != nil {
			parseErrs = append(parseErrs, err)
		}
		c.App.Port = n
	}

	c.Redis.Host = strings.TrimSpace(os.Getenv("REDIS_HOST"))
	{
		n, err := mustInt("REDIS_PORT")
		if err != nil {
			parseErrs = append(parseErrs, err)
		}
		c.Redis.Port = n
	}

	c.Session.Secret = os.Getenv("SESSION_SECRET")
	c.Session.Issuer = strings.TrimSpace(os.Getenv("SESSION_ISSUER"))
	c.Session.TTL = optDuration("SESSION_TTL")

	c.AI.APIKey = os.Getenv("GEMINI_API_KEY")
	c.AI.FlashModel = strings.TrimSpace(os.Getenv("GEMINI_FLASH_MODEL"))
	c.AI.ProModel = strings.TrimSpace(os.Getenv("GEMINI_PRO_MODEL"))
	c.AI.BaseURL = strings.TrimSpace(os.Getenv("GEMINI_BASE_URL"))
	c.AI.Timeout = optDuration("AI_TIMEOUT")

	if err := joinErrors(parseErrs); err != nil {
		return Config{}, err
	}
	c.applyDefaults()
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func (c *Config) applyDefaults() {
	if c.Session.TTL <= 0 {
		c.Session.TTL = defaultSessionTTL
	}
	if c.AI.FlashModel == "" {
		c.AI.FlashModel = defaultFlashModel
	}
	if c.AI.ProModel == "" {
		c.AI.ProModel = defaultProModel
	}
	if c.AI.BaseURL == "" {
		c.AI.BaseURL = defaultAIBaseURL
	}
	if c.AI.Timeout <= 0 {
		c.AI.Timeout = defaultAITimeout
	}
}

func (c Config) Validate() error {
	var errs []error

	if c.App.Env == "" {
		errs = append(errs, errors.New("APP_ENV is required"))
	} else if !isValidEnv(c.App.Env) {
		errs = append(errs, fmt.Errorf("APP_ENV must be one of local, dev, staging, production, got %q", c.App.Env))
	}
	if c.App.Port <= 0 || c.App.Port > 65535 {
		errs = append(errs, fmt.Errorf("APP_PORT must be a valid port, got %d", c.App.Port))
	}

	if c.Redis.Host == "" {
		errs = append(errs, errors.New("REDIS_HOST is required"))
	}
	if c.Redis.Port <= 0 || c.Redis.Port > 65535 {
		errs = append(errs, fmt.Errorf("REDIS_PORT must be a valid port, got %d", c.Redis.Port))
	}

	if c.Session.Secret == "" {
		errs = append(errs, errors.New("SESSION_SECRET is required"))
	}
	if c.IsProduction() && c.Session.Issuer == "" {
		errs = append(errs, errors.New("SESSION_ISSUER is required in production"))
	}

	if c.AI.Timeout < time.Second {
		errs = append(errs, fmt.Errorf("AI_TIMEOUT must be at least 1s, got %s", c.AI.Timeout))
	}

	return joinErrors(errs)
}

func (c Config) IsProduction() bool {
	return c.App.Env == "production"
}

func (c Config) HTTPAddr() string {
	return fmt.Sprintf(":%d", c.App.Port)
}

func (c Config) RedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}

func mustInt(key string) (int, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return 0, fmt.Errorf("%s is required", key)
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer, got %q", key, v)
	}
	return n, nil
}

func optDuration(key string) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return 0
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0
	}
	return d
}

func isValidEnv(v string) bool {
	switch v {
	case "local", "dev", "staging", "production":
		return true
	default:
		return false
	}
}

func joinErrors(errs []error) error {
	if len(errs) == 0 {
		return nil
	}
	if len(errs) == 1 {
		return errs[0]
	}
	var b strings.Builder
	b.WriteString("config errors:\n")
	for _, e := range errs {
		b.WriteString("- ")
		b.WriteString(e.Error())
		b.WriteString("\n")
	}
	return errors.New(strings.TrimSpace(b.String()))
}
