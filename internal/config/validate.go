package config

import (
	"fmt"
	"net/url"
	"strings"
)

// Validate checks the configuration for fatal problems. A bad category
// table must be caught here, before any category is processed.
func Validate(cfg *Config) error {
	if cfg.Fetcher.RequestTimeout <= 0 {
		return fmt.Errorf("fetcher.request_timeout must be positive, got %s", cfg.Fetcher.RequestTimeout)
	}
	if cfg.Fetcher.UserAgent == "" {
		return fmt.Errorf("fetcher.user_agent must not be empty")
	}
	if cfg.Pipeline.Workers < 1 {
		return fmt.Errorf("pipeline.workers must be at least 1, got %d", cfg.Pipeline.Workers)
	}
	switch cfg.Storage.Type {
	case "csv", "json", "jsonl":
	default:
		return fmt.Errorf("storage.type must be csv, json, or jsonl, got %q", cfg.Storage.Type)
	}
	if len(cfg.Categories) == 0 {
		return fmt.Errorf("at least one category must be configured")
	}
	for i, cat := range cfg.Categories {
		if cat.Name == "" {
			return fmt.Errorf("category %d: name must not be empty", i)
		}
		if err := ValidateURL(cat.URL); err != nil {
			return fmt.Errorf("category %q: %w", cat.Name, err)
		}
		if strings.TrimSpace(cat.Title.Selector) == "" {
			return fmt.Errorf("category %q: title selector must not be empty", cat.Name)
		}
		if strings.TrimSpace(cat.Link.Selector) == "" {
			return fmt.Errorf("category %q: link selector must not be empty", cat.Name)
		}
		if err := validateRuleType(cat.Title); err != nil {
			return fmt.Errorf("category %q: title rule: %w", cat.Name, err)
		}
		if err := validateRuleType(cat.Link); err != nil {
			return fmt.Errorf("category %q: link rule: %w", cat.Name, err)
		}
	}
	return nil
}

// ValidateURL checks that a raw URL is absolute http(s).
func ValidateURL(rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("invalid URL %q: %w", rawURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("URL %q must use http or https", rawURL)
	}
	if u.Host == "" {
		return fmt.Errorf("URL %q has no host", rawURL)
	}
	return nil
}

func validateRuleType(rule SelectorRule) error {
	switch rule.Type {
	case "", "css", "xpath":
		return nil
	default:
		return fmt.Errorf("unsupported selector type %q", rule.Type)
	}
}
