package test

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	// LAB_COLOURS enables colorized output for better log readability
	Colours bool `envconfig:"LAB_COLOURS" default:"false"`
	// LAB_DEBUG dumps every demo line into the test log
	Debug bool `envconfig:"LAB_DEBUG" default:"false"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
