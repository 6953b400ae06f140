package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Seed mirrors the state file of the legacy Python notifier so an existing
// deployment can migrate without re-notifying everything it already knew.
type Seed struct {
	TelegramToken string   `yaml:"tg_token"`
	ChatIDs       []int64  `yaml:"chat_ids"`
	Listings      []string `yaml:"listings"`
	Verbosity     string   `yaml:"verbosity"`
}

// LoadSeed reads and parses a legacy state file.
func LoadSeed(path string) (Seed, error) {
	var res Seed

	data, err := os.ReadFile(path)
	if err != nil {
		return res, fmt.Errorf("read seed file: %w", err)
	}
	if err := yaml.Unmarshal(data, &res); err != nil {
		return res, fmt.Errorf("parse seed file: %w", err)
	}

	return res, nil
}
