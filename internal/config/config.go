package config

import (
	"time"
)

// Version is set at build time via ldflags.
var Version = "dev"

// Config is the root configuration for NewsLens.
type Config struct {
	Fetcher    FetcherConfig    `mapstructure:"fetcher"    yaml:"fetcher"`
	Pipeline   PipelineConfig   `mapstructure:"pipeline"   yaml:"pipeline"`
	Storage    StorageConfig    `mapstructure:"storage"    yaml:"storage"`
	Logging    LoggingConfig    `mapstructure:"logging"    yaml:"logging"`
	Categories []CategorySource `mapstructure:"categories" yaml:"categories"`
}

// FetcherConfig controls the HTTP fetcher.
type FetcherConfig struct {
	UserAgent       string        `mapstructure:"user_agent"        yaml:"user_agent"`
	RequestTimeout  time.Duration `mapstructure:"request_timeout"   yaml:"request_timeout"`
	MaxRedirects    int           `mapstructure:"max_redirects"     yaml:"max_redirects"`
	MaxBodySize     int64         `mapstructure:"max_body_size"     yaml:"max_body_size"`
	IdleConnTimeout time.Duration `mapstructure:"idle_conn_timeout" yaml:"idle_conn_timeout"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"    yaml:"max_idle_conns"`
}

// PipelineConfig controls the per-article processing stage.
// Workers bounds the article fetch+analyze pool; 1 means strictly
// sequential. Output order is identical either way.
type PipelineConfig struct {
	Workers int `mapstructure:"workers" yaml:"workers"`
}

// StorageConfig controls record export.
type StorageConfig struct {
	Type       string `mapstructure:"type"        yaml:"type"`
	OutputPath string `mapstructure:"output_path" yaml:"output_path"`
}

// LoggingConfig controls logging behavior.
type LoggingConfig struct {
	Level  string `mapstructure:"level"  yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// SelectorRule is a structural query identifying which markup elements
// represent titles or links on a listing page. Type selects the query
// language: "css" (default) or "xpath".
type SelectorRule struct {
	Selector string `mapstructure:"selector" yaml:"selector"`
	Type     string `mapstructure:"type"     yaml:"type"`
}

// CategorySource is one configured category: a listing URL plus the
// selector rules for its article titles and links. Selector rules are
// part of the deployed configuration and change when the target site's
// markup changes.
type CategorySource struct {
	Name  string       `mapstructure:"name"  yaml:"name"`
	URL   string       `mapstructure:"url"   yaml:"url"`
	Title SelectorRule `mapstructure:"title" yaml:"title"`
	Link  SelectorRule `mapstructure:"link"  yaml:"link"`
}

// DefaultConfig returns a Config with the deployed ABC News category
// table and sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Fetcher: FetcherConfig{
			UserAgent:       "Mozilla/5.0",
			RequestTimeout:  10 * time.Second,
			MaxRedirects:    10,
			MaxBodySize:     10 * 1024 * 1024, // 10MB
			IdleConnTimeout: 90 * time.Second,
			MaxIdleConns:    100,
		},
		Pipeline: PipelineConfig{
			Workers: 1,
		},
		Storage: StorageConfig{
			Type:       "csv",
			OutputPath: "./output",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
		Categories: []CategorySource{
			{
				Name:  "Politics",
				URL:   "https://abcnews.go.com/Politics",
				Title: SelectorRule{Selector: "h2 a.AnchorLink"},
				Link:  SelectorRule{Selector: "h2 a.AnchorLink"},
			},
			{
				Name:  "Business",
				URL:   "https://abcnews.go.com/Business",
				Title: SelectorRule{Selector: "h2.News__Item__Headline, h4.News__title"},
				Link:  SelectorRule{Selector: "h2.News__Item__Headline a, h4.News__title a"},
			},
			{
				Name:  "Tech",
				URL:   "https://abcnews.go.com/Technology",
				Title: SelectorRule{Selector: "h2 a.AnchorLink"},
				Link:  SelectorRule{Selector: "h2 a.AnchorLink"},
			},
		},
	}
}
