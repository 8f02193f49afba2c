package recordkit

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk recordkit configuration.
type Config struct {
	Log   LogConfig   `json:"log"   yaml:"log"`
	Store StoreConfig `json:"store" yaml:"store"`
}

// LogConfig selects the log level and output format.
type LogConfig struct {
	Level  string `json:"level,omitempty"  yaml:"level"`
	Format string `json:"format,omitempty" yaml:"format"`
}

// StoreConfig mirrors the Store options.
// FilePerm is an octal string such as "0644".
type StoreConfig struct {
	FilePerm    string `json:"file_perm,omitempty"    yaml:"file_perm"`
	AtomicWrite bool   `json:"atomic_write,omitempty" yaml:"atomic_write"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
		Store: StoreConfig{
			FilePerm: fmt.Sprintf("%#o", uint32(DefaultFilePerm)),
		},
	}
}

// LoadConfig reads a YAML config file on top of DefaultConfig.
// Unknown keys are rejected.
func LoadConfig(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	return DecodeConfig(f)
}

// DecodeConfig reads a YAML config from r on top of DefaultConfig.
func DecodeConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	return cfg, nil
}

// Options converts the store section into Store options.
func (c StoreConfig) Options() ([]Option, error) {
	opts := []Option{WithAtomicWrite(c.AtomicWrite)}

	if c.FilePerm != "" {
		perm, err := strconv.ParseUint(c.FilePerm, 8, 32)
		if err != nil {
			return nil, fmt.Errorf("parse file_perm %q: %w", c.FilePerm, err)
		}

		opts = append(opts, WithFilePerm(os.FileMode(perm)))
	}

	return opts, nil
}
