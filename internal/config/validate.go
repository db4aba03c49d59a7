package config

import (
	"fmt"
	"net/url"
)

// ConfigurationError is returned when a required configuration value is
// missing or malformed. It is always raised before any network activity.
type ConfigurationError struct {
	Field  string
	Reason string
}

func (e ConfigurationError) Error() string {
	return fmt.Sprintf("invalid configuration for %q: %s", e.Field, e.Reason)
}

// Requirement selects which parts of the configuration a command depends on.
type Requirement int

const (
	RequireGitHub Requirement = 1 << iota
	RequireSite
)

// Validate checks that the configuration values needed by the given
// requirements are present.
func Validate(req Requirement) error {
	if req&RequireGitHub != 0 {
		if Hideoo.GitHub.Token == "" {
			return ConfigurationError{Field: "github.token", Reason: "no GitHub token provided"}
		}
		if Hideoo.GitHub.Endpoint == "" {
			return ConfigurationError{Field: "github.endpoint", Reason: "no GraphQL endpoint provided"}
		}
	}
	if req&RequireSite != 0 {
		if Hideoo.Site.URL == "" {
			return ConfigurationError{Field: "site.url", Reason: "missing site URL"}
		}
		u, err := url.Parse(Hideoo.Site.URL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return ConfigurationError{Field: "site.url", Reason: "site URL must be absolute"}
		}
	}
	return nil
}
