package config

import "fmt"

// NormalizationResult captures adjustments and warnings from the normalization pass.
type NormalizationResult struct {
	Warnings []string
}

// NormalizeConfig canonicalizes enumerated fields and bounds in place.
func NormalizeConfig(c *Config) (*NormalizationResult, error) {
	if c == nil {
		return nil, fmt.Errorf("config nil")
	}
	res := &NormalizationResult{}

	level := logLevelNormalizer.Resolve("logging.level", string(c.Logging.Level))
	c.Logging.Level = level.Value
	res.warn(level.Warning)

	format := logFormatNormalizer.Resolve("logging.format", string(c.Logging.Format))
	c.Logging.Format = format.Value
	res.warn(format.Warning)

	style := footerStyleNormalizer.Resolve("footer.style", string(c.Footer.Style))
	c.Footer.Style = style.Value
	res.warn(style.Warning)

	if c.Site.BaseURL == "" {
		c.Site.BaseURL = "/"
	}
	return res, nil
}

func (r *NormalizationResult) warn(msg string) {
	if msg != "" {
		r.Warnings = append(r.Warnings, msg)
	}
}
