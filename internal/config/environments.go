package config

import (
	"slices"

	"dario.cat/mergo"

	"git.home.luguber.info/inful/docnav/internal/foundation/errors"
)

// EnvironmentNames returns the configured environment names in sorted order.
func (c *Config) EnvironmentNames() []string {
	names := make([]string, 0, len(c.Environments))
	for name := range c.Environments {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// ApplyEnvironment overlays the named environment onto Site. Non-empty
// overlay fields replace the base values. An empty name is a no-op.
func (c *Config) ApplyEnvironment(name string) error {
	if name == "" {
		return nil
	}
	env, ok := c.Environments[name]
	if !ok {
		return errors.ConfigError("unknown environment").
			WithContext("environment", name).
			WithContext("available", c.EnvironmentNames()).
			Build()
	}

	overlay := SiteConfig{
		Title:        env.Title,
		URL:          env.URL,
		BaseURL:      env.BaseURL,
		Organization: env.Organization,
		Project:      env.Project,
	}
	if err := mergo.Merge(&c.Site, overlay, mergo.WithOverride); err != nil {
		return errors.WrapError(err, errors.CategoryInternal, "merge environment overlay").
			WithContext("environment", name).
			Build()
	}
	c.Environment = name
	return nil
}
