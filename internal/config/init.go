package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Init writes an example configuration file. An existing file is only
// replaced when force is set.
func Init(configPath string, force bool) error {
	if _, err := os.Stat(configPath); err == nil && !force {
		return fmt.Errorf("configuration file already exists: %s (use --force to overwrite)", configPath)
	}

	data, err := yaml.Marshal(ExampleConfig())
	if err != nil {
		return fmt.Errorf("failed to marshal example config: %w", err)
	}
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

func category(label string, items ...any) map[string]any {
	return map[string]any{"type": "category", "label": label, "items": items}
}

func link(label, key, target string) map[string]any {
	return map[string]any{"label": label, key: target}
}

// ExampleConfig returns the configuration written by Init.
func ExampleConfig() *Config {
	return &Config{
		Version: ConfigVersion,
		Site: SiteConfig{
			Title:        "DeepSeek MCP Client",
			Tagline:      "Python client for connecting DeepSeek language models with MCP servers",
			URL:          "https://carlosmaroruiz.github.io",
			BaseURL:      "/deepseek-mcp-client/",
			Organization: "CarlosMaroRuiz",
			Project:      "deepseek-mcp-client",
		},
		Environments: map[string]EnvironmentConfig{
			"staging": {
				URL:          "https://${DOCNAV_STAGING_ORG}.github.io",
				Organization: "${DOCNAV_STAGING_ORG}",
			},
		},
		Sidebars: map[string]any{
			"tutorialSidebar": []any{
				"intro",
				"installation",
				"quickstart",
				category("Configuration",
					"configuration/http-servers",
					"configuration/stdio-servers",
				),
				category("Examples",
					"examples/basic-usage",
					"examples/multiple-servers",
				),
				"environment-variables",
				category("API Reference",
					"api-reference/deepseek-client",
				),
			},
		},
		Navbar: NavbarConfig{
			Items: []any{
				map[string]any{"type": "docSidebar", "sidebarId": "tutorialSidebar", "position": "left", "label": "Documentation"},
				map[string]any{"href": "https://github.com/CarlosMaroRuiz/deepseek-mcp-client", "label": "GitHub", "position": "right"},
			},
		},
		Footer: FooterConfig{
			Style: FooterStyleDark,
			Links: []any{
				map[string]any{
					"title": "Getting Started",
					"items": []any{
						link("Introduction", "to", "/docs/intro"),
						link("Installation", "to", "/docs/installation"),
					},
				},
				map[string]any{
					"title": "Community",
					"items": []any{
						link("GitHub", "href", "https://github.com/CarlosMaroRuiz/deepseek-mcp-client"),
						link("PyPI", "href", "https://pypi.org/project/deepseek-mcp-client/"),
					},
				},
			},
		},
		Logging: LoggingConfig{Level: LogLevelInfo, Format: LogFormatText},
	}
}
