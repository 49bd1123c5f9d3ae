package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Matrix binds the 5x5 panel to host pins. Driver is "gpio" or "console".
type Matrix struct {
	Driver  string   `yaml:"driver"`
	RowPins []string `yaml:"row_pins"`
	ColPins []string `yaml:"col_pins"`
}

// Config binds the fixed bring-up script to a specific board. It never
// alters the script itself, only which host peripherals carry it.
type Config struct {
	I2CBus string `yaml:"i2c_bus"` // empty means first available bus
	Matrix Matrix `yaml:"matrix"`
}

func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func Save(path string, c *Config) error {
	b, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0644)
}
