package app

import (
	"strings"

	"github.com/cohesivestack/valgo"
	"github.com/joshjon/kit/log"

	"github.com/isshub/isshub/entity"
	"github.com/isshub/isshub/internal/valgoutil"
)

const (
	defaultFakeCount = 1
	maxFakeCount     = 10_000
)

// Config is the configuration shared by every command.
type Config struct {
	Logger LoggerConfig `yaml:"logger" envPrefix:"LOGGER_"`
	Fake   FakeConfig   `yaml:"fake" envPrefix:"FAKE_"`
}

func (c *Config) InitDefaults() {
	c.Logger.InitDefaults()
	c.Fake.InitDefaults()
}

func (c *Config) Validation() *valgo.Validation {
	v := valgo.New()
	v.In("logger", c.Logger.Validation())
	v.In("fake", c.Fake.Validation())
	return v
}

// Component configs

type LoggerConfig struct {
	Level      string `yaml:"level" env:"LEVEL"`           // default: info
	Structured bool   `yaml:"structured" env:"STRUCTURED"` // default: true
}

func (c *LoggerConfig) InitDefaults() {
	c.Structured = true
	c.Level = "info"
}

func (c *LoggerConfig) Validation() *valgo.Validation {
	return valgo.Is(valgo.String(c.Level, "level").Passing(func(_ string) bool {
		_, ok := log.ParseLevel(c.Level)
		return ok
	}, "Must be one of [debug, info, warn, error]"))
}

// FakeConfig controls the namespaces generated by the fake command.
type FakeConfig struct {
	// Seed makes generation reproducible. Zero picks a random seed.
	Seed  uint64 `yaml:"seed" env:"SEED"`
	Count int    `yaml:"count" env:"COUNT"` // default: 1
	// Kind pins the kind of every generated namespace (optional).
	Kind string `yaml:"kind" env:"KIND"`
}

func (c *FakeConfig) InitDefaults() {
	c.Count = defaultFakeCount
}

func (c *FakeConfig) Validation() *valgo.Validation {
	v := valgo.Is(valgo.Int(c.Count, "count").Between(1, maxFakeCount))
	if c.Kind != "" {
		v.Is(valgoutil.OneOfValidator(strings.ToLower(c.Kind), namespaceKindNames(), "kind"))
	}
	return v
}

func namespaceKindNames() []string {
	kinds := entity.NamespaceKinds()
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = k.String()
	}
	return names
}
