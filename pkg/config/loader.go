package config

import (
	"fmt"

	"github.com/caarlos0/env/v10"
)

// Validator is implemented by configs that check their own invariants after
// parsing.
type Validator interface {
	Validate() error
}

// Load parses environment variables into cfg using its `env` tags and then
// runs cfg.Validate when cfg implements Validator.
func Load(cfg any) error {
	return LoadWithOptions(cfg, env.Options{})
}

// LoadFromMap is like Load but reads variables from vars instead of the
// process environment.
func LoadFromMap(cfg any, vars map[string]string) error {
	return LoadWithOptions(cfg, env.Options{Environment: vars})
}

// LoadWithOptions parses cfg with explicit env options, such as a Prefix.
func LoadWithOptions(cfg any, opts env.Options) error {
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}
	if v, ok := cfg.(Validator); ok {
		if err := v.Validate(); err != nil {
			return fmt.Errorf("validate config: %w", err)
		}
	}
	return nil
}
