package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Chapter describes one themed chapter of the book and the sections it
// contains. Each section gets its own generation plan.
type Chapter struct {
	Title    string   `yaml:"title"`
	File     string   `yaml:"file"`
	Sections []string `yaml:"sections"`
}

type Config struct {
	Book          string    `yaml:"book"`
	Model         string    `yaml:"model"`
	MaxRounds     int       `yaml:"max-rounds"`
	PlanTokens    int64     `yaml:"plan-tokens"`
	ExampleTokens int64     `yaml:"example-tokens"`
	PollSeconds   int       `yaml:"poll-seconds"`
	Chapters      []Chapter `yaml:"chapters"`
}

// Load reads a YAML config file and returns a validated Config.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ChapterIndex returns the index of the named chapter, or -1 if not found.
func (c *Config) ChapterIndex(title string) int {
	for i, ch := range c.Chapters {
		if ch.Title == title {
			return i
		}
	}
	return -1
}

// SectionCount returns the total number of sections across all chapters.
func (c *Config) SectionCount() int {
	n := 0
	for _, ch := range c.Chapters {
		n += len(ch.Sections)
	}
	return n
}
