package repl

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFileName is the name of eta's optional REPL configuration file,
// looked up first in the working directory, then in $HOME.
const ConfigFileName = ".etarc.yaml"

// Config holds the subset of Repl fields a user can override from
// .etarc.yaml. Any field left unset in the file falls back to the
// hardcoded defaults in NewRepl's caller (cmd/eta).
type Config struct {
	Prompt string `yaml:"prompt"`
	Color  *bool  `yaml:"color"`
	Banner string `yaml:"banner"`
}

// LoadConfig looks for .etarc.yaml in dir, then $HOME, and parses the
// first one found. A missing file is not an error: it returns a zero
// Config so callers fall back entirely to their own defaults.
func LoadConfig(dir string) (Config, error) {
	for _, candidate := range configSearchPath(dir) {
		data, err := os.ReadFile(candidate)
		if os.IsNotExist(err) {
			continue
		}
		if err != nil {
			return Config{}, err
		}

		var cfg Config
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, err
		}
		return cfg, nil
	}
	return Config{}, nil
}

func configSearchPath(dir string) []string {
	paths := []string{filepath.Join(dir, ConfigFileName)}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ConfigFileName))
	}
	return paths
}

// Apply overlays non-zero fields of cfg onto r.
func (cfg Config) Apply(r *Repl) {
	if cfg.Prompt != "" {
		r.Prompt = cfg.Prompt
	}
	if cfg.Banner != "" {
		r.Banner = cfg.Banner
	}
	if cfg.Color != nil {
		r.Color = *cfg.Color
	}
}
