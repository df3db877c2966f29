package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/gorewood/admonitions/internal/logging"
)

const appName = "admonitions"

// ProjectFile is the config file looked up in the working directory.
const ProjectFile = "admonitions.yml"

// Environment overrides, applied after config files.
const (
	EnvBackend   = "ADMONITIONS_BACKEND"
	EnvSrc       = "ADMONITIONS_SRC"
	EnvLogLevel  = "ADMONITIONS_LOG_LEVEL"
	EnvLogFormat = "ADMONITIONS_LOG_FORMAT"
)

// Config is the run-scoped configuration. It is read-only once a run starts.
type Config struct {
	// Backend selects the renderer. Unknown values disable processing.
	Backend string `yaml:"backend"`
	// Target is the output target of the surrounding build (pdf, site, ...).
	// It is carried for reporting only.
	Target     string         `yaml:"target,omitempty"`
	Src        string         `yaml:"src_dir"`
	Extensions []string       `yaml:"extensions"`
	Log        logging.Config `yaml:"log"`
}

// Default returns the built-in configuration. The backend is empty, so an
// unconfigured run changes nothing.
func Default() Config {
	return Config{
		Src:        "src",
		Extensions: []string{".md"},
		Log: logging.Config{
			Level:  "warn",
			Format: "console",
		},
	}
}

// LoadOptions controls Load.
type LoadOptions struct {
	// Path is an explicit config file. When set it must exist.
	Path string
	// SkipGlobal disables the global config file.
	SkipGlobal bool
}

// Loaded is a resolved configuration together with the files it came from.
type Loaded struct {
	Config  Config
	Sources []string
}

// Load resolves the configuration: defaults, then the global file, then the
// project file (or opts.Path), then environment overrides.
func Load(opts LoadOptions) (*Loaded, error) {
	cfg := Default()
	var sources []string

	if !opts.SkipGlobal {
		if path := GlobalFile(); path != "" {
			found, err := mergeFile(&cfg, path)
			if err != nil {
				return nil, err
			}
			if found {
				sources = append(sources, path)
			}
		}
	}

	projectPath := opts.Path
	if projectPath == "" {
		projectPath = ProjectFile
	}
	found, err := mergeFile(&cfg, projectPath)
	if err != nil {
		return nil, err
	}
	if found {
		sources = append(sources, projectPath)
	} else if opts.Path != "" {
		return nil, fmt.Errorf("config file %s not found", opts.Path)
	}

	if ApplyEnv(&cfg) {
		sources = append(sources, "env")
	}
	cfg.Extensions = NormalizeExtensions(cfg.Extensions)

	return &Loaded{Config: cfg, Sources: sources}, nil
}

// Parse decodes YAML over a copy of base.
// Keys absent from data keep their value from base.
func Parse(data []byte, base Config) (Config, error) {
	cfg := base
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// ApplyEnv overlays environment overrides onto cfg and reports whether any
// were set.
func ApplyEnv(cfg *Config) bool {
	applied := false
	set := func(key string, dst *string) {
		if v := strings.TrimSpace(os.Getenv(key)); v != "" {
			*dst = v
			applied = true
		}
	}

	set(EnvBackend, &cfg.Backend)
	set(EnvSrc, &cfg.Src)
	set(EnvLogLevel, &cfg.Log.Level)
	set(EnvLogFormat, &cfg.Log.Format)
	return applied
}

// mergeFile decodes the YAML file at path over cfg.
// A missing file is not an error; found reports whether it existed.
func mergeFile(cfg *Config, path string) (found bool, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("reading config %s: %w", path, err)
	}

	merged, err := Parse(data, *cfg)
	if err != nil {
		return true, fmt.Errorf("%s: %w", path, err)
	}
	*cfg = merged
	return true, nil
}

// NormalizeExtensions lowercases extensions and ensures a leading dot.
// Duplicates and blanks are dropped.
func NormalizeExtensions(exts []string) []string {
	seen := make(map[string]bool, len(exts))
	out := make([]string, 0, len(exts))
	for _, ext := range exts {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		if seen[ext] {
			continue
		}
		seen[ext] = true
		out = append(out, ext)
	}
	return out
}
