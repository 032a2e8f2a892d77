package config

import (
	"net/url"
	"strings"

	"git.home.luguber.info/inful/docnav/internal/foundation/errors"
)

// ValidateConfig checks the site metadata and build settings. The navigation
// sections are left to internal/site.
func ValidateConfig(c *Config) error {
	v := configurationValidator{config: c}
	for _, check := range []func() error{v.validateVersion, v.validateSite, v.validateBuild} {
		if err := check(); err != nil {
			return err
		}
	}
	return nil
}

type configurationValidator struct {
	config *Config
}

func (cv configurationValidator) validateVersion() error {
	if cv.config.Version != ConfigVersion {
		return errors.ConfigError("unsupported configuration version").
			WithContext("version", cv.config.Version).
			WithContext("expected", ConfigVersion).
			Build()
	}
	return nil
}

func (cv configurationValidator) validateSite() error {
	s := cv.config.Site
	if strings.TrimSpace(s.Title) == "" {
		return errors.ConfigError("site.title is required").Build()
	}

	u, err := url.Parse(s.URL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return errors.ConfigError("site.url must be an absolute http(s) URL").
			WithContext("url", s.URL).
			Build()
	}

	if !strings.HasPrefix(s.BaseURL, "/") || !strings.HasSuffix(s.BaseURL, "/") {
		return errors.ConfigError("site.base_url must start and end with '/'").
			WithContext("base_url", s.BaseURL).
			Build()
	}
	return nil
}

func (cv configurationValidator) validateBuild() error {
	if cv.config.Build.MaxDepth < 0 {
		return errors.ConfigError("build.max_depth must not be negative").
			WithContext("max_depth", cv.config.Build.MaxDepth).
			Build()
	}
	return nil
}
