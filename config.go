// Copyright 2017, Timothy Bogdala <tdb@animal-machine.com>
// See the LICENSE file for more details.

package main

import (
	"flag"
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v3"
)

// Config holds the startup settings for the demo. Values come from an
// optional yaml file and can be overridden on the command line.
type Config struct {
	Width       int    `yaml:"width"`
	Height      int    `yaml:"height"`
	MSAASamples int    `yaml:"msaa_samples"`
	VSync       bool   `yaml:"vsync"`
	CubeCount   int    `yaml:"cube_count"`
	Seed        int64  `yaml:"seed"`
	TexturePath string `yaml:"texture_path"`
}

// DefaultConfig returns the settings used when nothing is overridden.
func DefaultConfig() Config {
	return Config{
		Width:       800,
		Height:      600,
		MSAASamples: 4,
		VSync:       true,
		CubeCount:   10,
		Seed:        1,
	}
}

// LoadConfig builds the effective configuration: defaults, then the yaml
// file if one was named, then command line flags. args should not include
// the program name.
func LoadConfig(args []string) (Config, error) {
	cfg := DefaultConfig()

	fs := flag.NewFlagSet("cubelight", flag.ContinueOnError)
	configPath := fs.String("config", "", "path to a yaml configuration file")
	fs.IntVar(&cfg.Width, "width", cfg.Width, "window width in pixels")
	fs.IntVar(&cfg.Height, "height", cfg.Height, "window height in pixels")
	fs.IntVar(&cfg.MSAASamples, "msaa", cfg.MSAASamples, "MSAA sample count for the offscreen target")
	fs.BoolVar(&cfg.VSync, "vsync", cfg.VSync, "synchronize presentation to the display")
	fs.IntVar(&cfg.CubeCount, "cubes", cfg.CubeCount, "number of cubes to place in the scene")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "seed for the cube placement")
	fs.StringVar(&cfg.TexturePath, "textures", cfg.TexturePath, "directory holding material texture files")

	// parse twice so flags beat the file regardless of ordering
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	if *configPath != "" {
		data, err := os.ReadFile(*configPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read the config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse the config file: %w", err)
		}
		if err := fs.Parse(args); err != nil {
			return cfg, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate rejects settings the renderer cannot start with.
func (c Config) Validate() error {
	if c.Width < 1 || c.Height < 1 {
		return fmt.Errorf("window size %dx%d is not valid", c.Width, c.Height)
	}
	if c.MSAASamples < 1 {
		return fmt.Errorf("MSAA sample count %d is not valid; use 1 to disable", c.MSAASamples)
	}
	if c.CubeCount < 1 {
		return fmt.Errorf("cube count %d is not valid", c.CubeCount)
	}
	return nil
}
