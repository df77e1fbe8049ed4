package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// YAMLConfig represents the structure of the config.yaml file.
// Network definitions are easier to manage in YAML than env vars.
type YAMLConfig struct {
	Networks []NetworkConfig `yaml:"networks"`
}

// NetworkConfig names a call endpoint and the GalaxyMember contract deployed there.
type NetworkConfig struct {
	Name     string `yaml:"name"`
	CallURL  string `yaml:"call_url"`
	Contract string `yaml:"contract"`
}

// LoadYAMLConfig loads the YAML configuration file.
// Path is determined by CONFIG_FILE env var, defaulting to "config.yaml".
// Returns nil without error if the config file doesn't exist.
func LoadYAMLConfig() (*YAMLConfig, error) {
	return LoadYAMLConfigFile(getEnv("CONFIG_FILE", "config.yaml"))
}

// LoadYAMLConfigFile loads the YAML configuration from path.
func LoadYAMLConfigFile(path string) (*YAMLConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Config file is optional
			return nil, nil
		}
		return nil, err
	}

	var cfg YAMLConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// GetNetwork finds a network by name.
func (c *YAMLConfig) GetNetwork(name string) *NetworkConfig {
	if c == nil {
		return nil
	}
	for i := range c.Networks {
		if c.Networks[i].Name == name {
			return &c.Networks[i]
		}
	}
	return nil
}
