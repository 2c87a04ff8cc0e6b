// Package config holds the run configuration of the selection tool and
// loads it from TOML.
package config

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/carbocation/pfx"
)

// DefaultPiHat treats third-degree relatives (first cousins) and closer as related.
const DefaultPiHat = 0.125

// Sentinel errors for configuration problems.
var (
	ErrMissingField  = errors.New("config: required field is empty")
	ErrBadPiHat      = errors.New("config: pihat must be a finite value in [0, 1]")
	ErrKinshipSource = errors.New("config: set exactly one of kinship or kinship_matrix")
	ErrUnknownKey    = errors.New("config: unknown key")
)

// Config describes one selection run. The TOML keys match the command-line flags.
type Config struct {
	Pheno     string  `toml:"pheno"`
	CaseValue string  `toml:"case_value"`
	PiHat     float64 `toml:"pihat"`

	Kinship       string `toml:"kinship"`
	KinshipMatrix string `toml:"kinship_matrix"`
	KinshipIDs    string `toml:"kinship_ids"`

	Samples string `toml:"samples"`
	Output  string `toml:"output"`
	Report  string `toml:"report"`
}

// Default returns a Config with DefaultPiHat and nothing else set.
func Default() *Config {
	return &Config{PiHat: DefaultPiHat}
}

// Load reads a TOML file over the defaults. Keys the Config does not know
// are rejected with ErrUnknownKey. The result is not validated.
func Load(path string) (*Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, pfx.Err(fmt.Errorf("%s: %w", path, err))
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, pfx.Err(fmt.Errorf("%s: %w: %s", path, ErrUnknownKey, strings.Join(keys, ", ")))
	}

	return cfg, nil
}

// Validate checks that the inputs a run needs are present and consistent.
func (c *Config) Validate() error {
	for _, f := range []struct{ name, value string }{
		{"pheno", c.Pheno},
		{"case_value", c.CaseValue},
		{"samples", c.Samples},
		{"output", c.Output},
	} {
		if strings.TrimSpace(f.value) == "" {
			return fmt.Errorf("%w: %s", ErrMissingField, f.name)
		}
	}
	if math.IsNaN(c.PiHat) || c.PiHat < 0 || c.PiHat > 1 {
		return fmt.Errorf("%w: %v", ErrBadPiHat, c.PiHat)
	}
	if (c.Kinship == "") == (c.KinshipMatrix == "") {
		return ErrKinshipSource
	}
	if c.KinshipMatrix != "" && c.KinshipIDs == "" {
		return fmt.Errorf("%w: kinship_ids (required with kinship_matrix)", ErrMissingField)
	}

	return nil
}

// UsesMatrix reports whether kinship comes from a .npy matrix.
func (c *Config) UsesMatrix() bool { return c.KinshipMatrix != "" }
