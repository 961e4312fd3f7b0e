package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	LogMode string

	APIBaseURL     string
	RequestTimeout time.Duration
	UploadTimeout  time.Duration

	SettleDelay         time.Duration
	PollStatus          bool
	PollInitialInterval time.Duration
	PollMaxInterval     time.Duration
	PollMaxAttempts     int

	IDToken string

	MailerSendAPIKey string
	NotifyEmailFrom  string
	NotifyEmailTo    []string

	ServerPort          string
	MaxActiveJobs       int
	StubProcessingDelay time.Duration
}

var defaults = map[string]any{
	"API_BASE_URL":          "http://localhost:8080/api/v1",
	"REQUEST_TIMEOUT":       "20s",
	"UPLOAD_TIMEOUT":        "60s",
	"SETTLE_DELAY":          "3s",
	"POLL_STATUS":           false,
	"POLL_INITIAL_INTERVAL": "1s",
	"POLL_MAX_INTERVAL":     "10s",
	"POLL_MAX_ATTEMPTS":     10,
	"SERVER_PORT":           "8080",
	"MAX_ACTIVE_JOBS":       10,
	"STUB_PROCESSING_DELAY": "2s",
}

func checkEnv(envVars []string) error {
	var missingVars []string

	for _, envVar := range envVars {
		if value, exists := os.LookupEnv(envVar); !exists || value == "" {
			missingVars = append(missingVars, envVar)
		}
	}

	if len(missingVars) > 0 {
		return fmt.Errorf("error: this env vars are missing: %v", missingVars)
	}

	return nil
}

func validateEnv() error {
	return checkEnv([]string{
		"LOG_MODE",
	})
}

func newViper() *viper.Viper {
	v := viper.New()
	v.AutomaticEnv()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	return v
}

func parseDuration(v *viper.Viper, key string) (time.Duration, error) {
	raw := v.GetString(key)
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%s must be positive, got %s", key, raw)
	}
	return d, nil
}

func splitList(raw string) []string {
	var items []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

// LoadConfig reads envFile into the environment, checks the required
// variables and fills the rest from the environment or defaults.
func LoadConfig(envFile string) (*Config, error) {
	err := godotenv.Load(envFile)
	if err != nil {
		return nil, fmt.Errorf("load cofiguration file: %w", err)
	}

	return FromEnv()
}

// FromEnv builds the configuration from the process environment only.
func FromEnv() (*Config, error) {
	if err := validateEnv(); err != nil {
		return nil, fmt.Errorf("LoadConfig: %w", err)
	}

	v := newViper()
	cfg := &Config{
		LogMode:          v.GetString("LOG_MODE"),
		APIBaseURL:       v.GetString("API_BASE_URL"),
		PollStatus:       v.GetBool("POLL_STATUS"),
		PollMaxAttempts:  v.GetInt("POLL_MAX_ATTEMPTS"),
		IDToken:          v.GetString("ID_TOKEN"),
		MailerSendAPIKey: v.GetString("MAILERSEND_API_KEY"),
		NotifyEmailFrom:  v.GetString("NOTIFY_EMAIL_FROM"),
		NotifyEmailTo:    splitList(v.GetString("NOTIFY_EMAIL_TO")),
		ServerPort:       v.GetString("SERVER_PORT"),
		MaxActiveJobs:    v.GetInt("MAX_ACTIVE_JOBS"),
	}

	durations := []struct {
		key    string
		target *time.Duration
	}{
		{"REQUEST_TIMEOUT", &cfg.RequestTimeout},
		{"UPLOAD_TIMEOUT", &cfg.UploadTimeout},
		{"SETTLE_DELAY", &cfg.SettleDelay},
		{"POLL_INITIAL_INTERVAL", &cfg.PollInitialInterval},
		{"POLL_MAX_INTERVAL", &cfg.PollMaxInterval},
		{"STUB_PROCESSING_DELAY", &cfg.StubProcessingDelay},
	}
	for _, d := range durations {
		value, err := parseDuration(v, d.key)
		if err != nil {
			return nil, fmt.Errorf("LoadConfig: %w", err)
		}
		*d.target = value
	}

	if cfg.PollMaxAttempts <= 0 {
		return nil, fmt.Errorf("LoadConfig: POLL_MAX_ATTEMPTS must be positive, got %d", cfg.PollMaxAttempts)
	}
	if cfg.MaxActiveJobs <= 0 {
		return nil, fmt.Errorf("LoadConfig: MAX_ACTIVE_JOBS must be positive, got %d", cfg.MaxActiveJobs)
	}

	return cfg, nil
}

// EmailEnabled reports whether settle notifications can also go out by email.
func (c *Config) EmailEnabled() bool {
	return c.MailerSendAPIKey != "" && c.NotifyEmailFrom != "" && len(c.NotifyEmailTo) > 0
}
