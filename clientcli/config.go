package clientcli

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultEndpoint is the default server endpoint URL.
const DefaultEndpoint = "http://localhost:3118"

// Profile holds configuration for a single server profile.
type Profile struct {
	Name      string `yaml:"name"`
	Endpoint  string `yaml:"endpoint"`
	SecretKey string `yaml:"secret_key,omitempty"`
	Default   bool   `yaml:"default,omitempty"`
}

// ConfigFile holds the full config file structure with multiple profiles.
type ConfigFile struct {
	Profiles []Profile `yaml:"profiles"`
}

// GetProfile returns the profile by name.
// If name is empty, returns the default profile.
func (c *ConfigFile) GetProfile(name string) (*Profile, error) {
	if len(c.Profiles) == 0 {
		return nil, ErrNoProfiles
	}

	if name == "" {
		return c.GetDefaultProfile()
	}

	for i := range c.Profiles {
		if c.Profiles[i].Name == name {
			return &c.Profiles[i], nil
		}
	}

	return nil, fmt.Errorf("%w: %s", ErrProfileNotFound, name)
}

// GetDefaultProfile returns the default profile.
// If no profile is marked as default, returns the first profile.
func (c *ConfigFile) GetDefaultProfile() (*Profile, error) {
	if len(c.Profiles) == 0 {
		return nil, ErrNoProfiles
	}

	for i := range c.Profiles {
		if c.Profiles[i].Default {
			return &c.Profiles[i], nil
		}
	}

	return &c.Profiles[0], nil
}

// AddProfile adds a new profile. Returns ErrProfileExists if a profile
// with the same name already exists.
func (c *ConfigFile) AddProfile(p Profile) error {
	for i := range c.Profiles {
		if c.Profiles[i].Name == p.Name {
			return fmt.Errorf("%w: %s", ErrProfileExists, p.Name)
		}
	}
	c.Profiles = append(c.Profiles, p)
	return nil
}

// RemoveProfile removes a profile by name. Returns ErrProfileNotFound
// if no profile with that name exists.
func (c *ConfigFile) RemoveProfile(name string) error {
	for i := range c.Profiles {
		if c.Profiles[i].Name == name {
			c.Profiles = append(c.Profiles[:i], c.Profiles[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrProfileNotFound, name)
}

// SetDefault marks the named profile as default and clears the flag on
// all others. Returns ErrProfileNotFound if the profile does not exist.
func (c *ConfigFile) SetDefault(name string) error {
	found := false
	for i := range c.Profiles {
		if c.Profiles[i].Name == name {
			found = true
		}
	}
	if !found {
		return fmt.Errorf("%w: %s", ErrProfileNotFound, name)
	}

	for i := range c.Profiles {
		c.Profiles[i].Default = c.Profiles[i].Name == name
	}
	return nil
}

// ConfigPath returns the path of the client config file,
// ~/.nosvault/config.yaml.
func ConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".nosvault", "config.yaml"), nil
}

// LoadConfigFile reads the config file at path. A missing file yields
// an empty ConfigFile, not an error.
func LoadConfigFile(path string) (*ConfigFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &ConfigFile{}, nil
		}
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var cfg ConfigFile
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}
	return &cfg, nil
}

// SaveConfigFile writes the config file to path, creating the parent
// directory if needed. The file is written 0600 since it holds secret keys.
func SaveConfigFile(path string, cfg *ConfigFile) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}
