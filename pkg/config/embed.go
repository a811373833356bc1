package config

import (
	_ "embed"

	"github.com/arthur-debert/csvmv/pkg/errors"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
)

//go:embed embedded/defaults.toml
var defaultConfig []byte

// loadDefaults puts the embedded defaults at the bottom of k
func loadDefaults(k *koanf.Koanf) error {
	if err := k.Load(rawbytes.Provider(defaultConfig), toml.Parser()); err != nil {
		return errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}
	return nil
}
