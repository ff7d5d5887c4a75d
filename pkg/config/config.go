// Package config loads copurchase settings from a TOML file.
//
// The file is optional. [Load] returns [Default] when no path was given and
// the default file does not exist; an explicitly named file must exist.
// Command-line flags override values read here.
//
//	input = "data/amazon-meta.txt.gz"
//	reset_fields = false
//	statistics = ["category_counts", "average_degree"]
//
//	[report]
//	format = "text"
//	precision = 2
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	errs "github.com/matzehuels/copurchase/pkg/errors"
	"github.com/matzehuels/copurchase/pkg/report"
	"github.com/matzehuels/copurchase/pkg/stats"
)

const (
	// AppName names the config directory.
	AppName = "copurchase"

	// FileName is the config file name inside the config directory.
	FileName = "config.toml"

	// DefaultFormat is the report format used when none is configured.
	DefaultFormat = string(report.FormatText)
)

// Config holds file-level settings.
type Config struct {
	Input       string   `toml:"input"`
	ResetFields bool     `toml:"reset_fields"`
	Statistics  []string `toml:"statistics"`
	Report      Report   `toml:"report"`
}

// Report holds output settings.
type Report struct {
	Format    string `toml:"format"`
	Precision int    `toml:"precision"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Statistics: []string{},
		Report: Report{
			Format:    DefaultFormat,
			Precision: report.DefaultPrecision,
		},
	}
}

// Dir returns the config directory, following XDG (~/.config/copurchase/).
func Dir() (string, error) {
	if home := os.Getenv("XDG_CONFIG_HOME"); home != "" {
		return filepath.Join(home, AppName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", AppName), nil
}

// Path returns explicit if set, else the default file location.
func Path(explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	dir, err := Dir()
	if err != nil {
		return "", errs.Wrap(errs.ErrCodeInvalidConfig, err, "locate config directory")
	}
	return filepath.Join(dir, FileName), nil
}

// Load reads the config file. Keys absent from the file keep their
// defaults.
func Load(explicit string) (Config, error) {
	cfg := Default()
	path, err := Path(explicit)
	if err != nil {
		return cfg, err
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if explicit == "" && errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return Default(), errs.Wrap(errs.ErrCodeInvalidConfig, err, "read %s", path)
	}
	if keys := md.Undecoded(); len(keys) > 0 {
		return Default(), errs.New(errs.ErrCodeInvalidConfig, "%s: unknown key %q", path, keys[0].String())
	}
	if err := cfg.Validate(); err != nil {
		return Default(), errs.Wrap(errs.ErrCodeInvalidConfig, err, "%s", path)
	}
	return cfg, nil
}

// Validate checks the statistic names, report format and precision.
func (c Config) Validate() error {
	if _, err := stats.Select(c.Statistics); err != nil {
		return err
	}
	if err := report.ValidateFormat(c.Report.Format); err != nil {
		return err
	}
	return errs.ValidatePrecision(c.Report.Precision)
}

// Write encodes cfg to path, creating parent directories. It refuses to
// overwrite an existing file unless force is set.
func Write(cfg Config, path string, force bool) (err error) {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return errs.New(errs.ErrCodeInvalidConfig, "%s already exists", path)
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errs.Wrap(errs.ErrCodeInvalidConfig, err, "create config directory")
	}
	f, err := os.Create(path)
	if err != nil {
		return errs.Wrap(errs.ErrCodeInvalidConfig, err, "create %s", path)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errs.Wrap(errs.ErrCodeInvalidConfig, cerr, "close %s", path)
		}
	}()
	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return errs.Wrap(errs.ErrCodeInvalidConfig, err, "encode %s", path)
	}
	return nil
}
