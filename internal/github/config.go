package github

import (
	"errors"

	"github.com/cosmichub/api/internal/errx"
	"github.com/kelseyhightower/envconfig"
)

// Config locates the repository holding the remote document and the token
// used to write to it.
type Config struct {
	Token string `envconfig:"GITHUB_TOKEN"`
	Owner string `envconfig:"GITHUB_OWNER"`
	Repo  string `envconfig:"GITHUB_REPO"`
}

// ConfigFromEnv reads the GitHub configuration from the environment. Missing
// values are not an error here: validation happens at call time, before any
// network I/O, so the server can start without link-store credentials.
func ConfigFromEnv() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks that all required fields are present.
func (c Config) Validate() error {
	const op = "github.Config.Validate"

	if c.Token == "" {
		return errx.E(op, errx.Config, errors.New("GITHUB_TOKEN environment variable is not set"))
	}

	if c.Owner == "" || c.Repo == "" {
		return errx.E(op, errx.Config,
			errors.New("GITHUB_OWNER and GITHUB_REPO environment variables are required"))
	}

	return nil
}
