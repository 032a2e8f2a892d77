package config

// ConfigVersion is the only supported configuration schema version.
const ConfigVersion = "1"

// DefaultConfigFile is looked up when no --config flag is given.
const DefaultConfigFile = "docnav.yaml"

// Config is the site configuration. The navigation sections are kept raw;
// internal/nav validates them.
type Config struct {
	Version      string                       `yaml:"version"`
	Site         SiteConfig                   `yaml:"site"`
	Environments map[string]EnvironmentConfig `yaml:"environments,omitempty"`
	Sidebars     map[string]any               `yaml:"sidebars"`
	Navbar       NavbarConfig                 `yaml:"navbar,omitempty"`
	Footer       FooterConfig                 `yaml:"footer,omitempty"`
	Build        BuildConfig                  `yaml:"build,omitempty"`
	Logging      LoggingConfig                `yaml:"logging,omitempty"`

	// Environment is the overlay applied by Load, empty for the base site.
	Environment string `yaml:"-"`
}

// SiteConfig carries the site metadata the host needs to build absolute links.
type SiteConfig struct {
	Title        string `yaml:"title"`
	Tagline      string `yaml:"tagline,omitempty"`
	URL          string `yaml:"url"`
	BaseURL      string `yaml:"base_url,omitempty"`
	Organization string `yaml:"organization,omitempty"`
	Project      string `yaml:"project,omitempty"`
}

// EnvironmentConfig overrides site metadata for a named deployment target
// (e.g. a staging fork published under another organization). Empty fields
// keep the base value.
type EnvironmentConfig struct {
	Title        string `yaml:"title,omitempty"`
	URL          string `yaml:"url,omitempty"`
	BaseURL      string `yaml:"base_url,omitempty"`
	Organization string `yaml:"organization,omitempty"`
	Project      string `yaml:"project,omitempty"`
}

// NavbarConfig holds the raw navbar items.
type NavbarConfig struct {
	Items []any `yaml:"items,omitempty"`
}

// FooterConfig holds the footer style and raw link groups.
type FooterConfig struct {
	Style FooterStyle `yaml:"style,omitempty"`
	Links []any       `yaml:"links,omitempty"`
}

// BuildConfig tunes navigation validation.
type BuildConfig struct {
	// MaxDepth limits category nesting in sidebars; 0 means unbounded.
	MaxDepth int `yaml:"max_depth,omitempty"`
}

// LoggingConfig selects the slog handler.
type LoggingConfig struct {
	Level  LogLevel  `yaml:"level,omitempty"`
	Format LogFormat `yaml:"format,omitempty"`
}
