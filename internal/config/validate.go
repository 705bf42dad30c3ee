package config

import (
	"fmt"
	"slices"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if err := c.Worker.validate(); err != nil {
		return fmt.Errorf("worker: %w", err)
	}
	if err := c.Fraud.validate(); err != nil {
		return fmt.Errorf("fraud: %w", err)
	}
	if err := c.Oracle.validate(); err != nil {
		return fmt.Errorf("oracle: %w", err)
	}
	if err := c.Notify.validate(); err != nil {
		return fmt.Errorf("notify: %w", err)
	}
	if c.RateLimit.Enabled && c.RateLimit.PerMinute <= 0 {
		return fmt.Errorf("ratelimit: per_minute must be > 0 (got %d)", c.RateLimit.PerMinute)
	}
	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		return fmt.Errorf("metrics: path must start with / (got %q)", c.Metrics.Path)
	}

	return nil
}

func (w *WorkerConfig) validate() error {
	if w.Workers <= 0 {
		return fmt.Errorf("workers must be > 0 (got %d)", w.Workers)
	}
	if w.QueueSize <= 0 {
		return fmt.Errorf("queue_size must be > 0 (got %d)", w.QueueSize)
	}
	if w.TaskTimeout <= 0 {
		return fmt.Errorf("task_timeout must be > 0 (got %s)", w.TaskTimeout)
	}
	return nil
}

func (f *FraudConfig) validate() error {
	if !slices.Contains([]string{"rules", "http"}, f.Mode) {
		return fmt.Errorf("mode must be rules or http (got %q)", f.Mode)
	}
	if f.Mode == "http" && f.BaseURL == "" {
		return fmt.Errorf("base_url is required in http mode")
	}
	if f.Threshold <= 0 || f.Threshold > 1 {
		return fmt.Errorf("threshold must be in (0,1] (got %v)", f.Threshold)
	}
	return nil
}

func (o *OracleConfig) validate() error {
	if !slices.Contains([]string{"static", "http"}, o.Mode) {
		return fmt.Errorf("mode must be static or http (got %q)", o.Mode)
	}
	if o.Mode == "http" && o.BaseURL == "" {
		return fmt.Errorf("base_url is required in http mode")
	}
	return nil
}

func (n *NotifyConfig) validate() error {
	if !slices.Contains([]string{"log", "webhook"}, n.Mode) {
		return fmt.Errorf("mode must be log or webhook (got %q)", n.Mode)
	}
	if n.Mode == "webhook" && n.WebhookURL == "" {
		return fmt.Errorf("webhook_url is required in webhook mode")
	}
	return nil
}
