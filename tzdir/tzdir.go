// Package tzdir locates and reads compiled TZif files from the system
// zoneinfo directory and decodes them into named zones.
package tzdir

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v7"

	"github.com/offsetlab/tzq/tzif"
)

// ErrInvalidName reports a zone name that is empty, absolute or escapes
// the zoneinfo directory.
var ErrInvalidName = errors.New("invalid zone name")

// Config holds the zoneinfo location.
type Config struct {
	// Dir is the root of the compiled zoneinfo tree.
	Dir string `env:"TZDIR" envDefault:"/usr/share/zoneinfo"`
}

// FromEnv builds a Config from the process environment.
func FromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parsing environment: %w", err)
	}
	return cfg, nil
}

// Load reads and decodes the TZif file for the named zone, e.g.
// "Europe/Paris" or "EST". The returned Zone carries the requested name.
func (c Config) Load(name string) (tzif.Zone, error) {
	if err := checkName(name); err != nil {
		return tzif.Zone{}, err
	}
	buf, err := os.ReadFile(filepath.Join(c.Dir, filepath.FromSlash(name)))
	if err != nil {
		return tzif.Zone{}, fmt.Errorf("reading zone %s: %w", name, err)
	}
	z, err := tzif.Decode(buf)
	if err != nil {
		return tzif.Zone{}, fmt.Errorf("decoding zone %s: %w", name, err)
	}
	z.Name = name
	return z, nil
}

// checkName rejects names that would resolve outside the zoneinfo tree.
func checkName(name string) error {
	if name == "" ||
		strings.HasPrefix(name, "/") ||
		strings.Contains(name, `\`) ||
		containsDotDot(name) {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return nil
}

func containsDotDot(name string) bool {
	for _, part := range strings.Split(name, "/") {
		if part == ".." {
			return true
		}
	}
	return false
}
