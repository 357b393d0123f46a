package profile

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sdefoundry/sdectl/internal/options"
)

// Resolve maps a profile argument to a file path. A path that exists is
// used as-is. Only a bare name (no separator, no yaml extension) is
// searched in the profiles directory with .yaml and .yml extensions.
func Resolve(arg, profilesDir string) (string, error) {
	if _, err := os.Stat(arg); err == nil {
		return arg, nil
	}

	attempted := []string{arg}
	argExt := filepath.Ext(arg)
	if !strings.ContainsRune(arg, os.PathSeparator) && argExt != ".yaml" && argExt != ".yml" {
		for _, ext := range []string{".yaml", ".yml"} {
			candidate := filepath.Join(profilesDir, arg+ext)
			if _, err := os.Stat(candidate); err == nil {
				return candidate, nil
			}
			attempted = append(attempted, candidate)
		}
	}
	return "", fmt.Errorf("profile not found, tried: %s: %w", strings.Join(attempted, ", "), os.ErrNotExist)
}

// Load reads and parses a profile from a YAML file.
func Load(path string, catalog *options.Catalog) (*Profile, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open profile: %w", err)
	}
	defer file.Close()

	return LoadFromReader(file, catalog)
}

// LoadFromReader parses a profile from an io.Reader. Useful for tests with
// in-memory YAML data.
func LoadFromReader(r io.Reader, catalog *options.Catalog) (*Profile, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile: %w", err)
	}
	return Unmarshal(data, catalog)
}

// Save writes the profile document to a file.
func Save(p *Profile, path string) error {
	data, err := Marshal(p)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write profile: %w", err)
	}
	return nil
}
