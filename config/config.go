// Package config loads and saves the toml configuration consumed by the
// mrbtctl command-line tool, following the teacher's AppConfig /
// LoadConfig / SaveConfig pattern.
package config

import (
	"errors"
	"log"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/mrbt-go/mrbt/utils/binutils"
)

// ErrUnknownOperation is returned when a seed script entry's Kind is not
// one of "insert", "set", "upsert" or "delete".
var ErrUnknownOperation = errors.New("[config] unknown operation kind")

// Operation is a single step of an optional seed script applied to a
// freshly built tree before mrbtctl prints its digest.
type Operation struct {
	Kind  string      `toml:"kind"`
	Key   int64       `toml:"key"`
	Value interface{} `toml:"value,omitempty"`
}

// Validate reports whether op's Kind is recognised.
func (op Operation) Validate() error {
	switch op.Kind {
	case "insert", "set", "delete", "upsert":
		return nil
	default:
		return ErrUnknownOperation
	}
}

// Config is the on-disk, toml-encoded configuration for an mrbtctl
// instance: which hash function to build the tree with, an optional
// signing key for the digest history, and an optional seed script.
type Config struct {
	HashName       string            `toml:"hash"`
	SigningKeyPath string            `toml:"signing_key_path,omitempty"`
	Script         []Operation       `toml:"operations,omitempty"`
	Logger         binutils.LoggerConfig `toml:"logger"`
}

// Default returns the configuration mrbtctl's "init" command writes out
// when the user supplies no overrides.
func Default() *Config {
	return &Config{
		HashName: "sha256",
		Logger: binutils.LoggerConfig{
			Environment: "development",
		},
	}
}

// Load reads and decodes the toml configuration at path.
func Load(path string) (*Config, error) {
	var c Config
	if _, err := toml.DecodeFile(path, &c); err != nil {
		return nil, err
	}
	for _, op := range c.Script {
		if err := op.Validate(); err != nil {
			return nil, err
		}
	}
	return &c, nil
}

// Save encodes c as toml and writes it to path, refusing to overwrite an
// existing file.
func (c *Config) Save(path string) error {
	if _, err := os.Stat(path); err == nil {
		log.Printf("%s already exists\n", path)
		return nil
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return toml.NewEncoder(f).Encode(c)
}
