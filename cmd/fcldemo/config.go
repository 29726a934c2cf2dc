// Copyright 2024 The FCL Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"os"

	"github.com/pelletier/go-toml"
	"github.com/spf13/cast"
)

// runConfig is the CLI's own run configuration, a second and independent
// config surface from the fixture format: which fixture to load, how many
// terms to print, and at what logrus level.
type runConfig struct {
	Fixture  string `toml:"fixture"`
	MaxCount int    `toml:"max_count"`
	LogLevel string `toml:"log_level"`
}

func defaultRunConfig() runConfig {
	return runConfig{Fixture: "testdata/example.yaml", MaxCount: 5, LogLevel: "info"}
}

// loadRunConfig parses a TOML config file, falling back to defaults, and
// applies FCL_MAX_COUNT / FCL_LOG_LEVEL / FCL_FIXTURE environment overrides
// through cast. FCL_MAX_COUNT must be integer text; any other value is
// returned as an error.
func loadRunConfig(path string) (runConfig, error) {
	cfg := defaultRunConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, err
		}
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return cfg, err
		}
	}

	if v, ok := os.LookupEnv("FCL_MAX_COUNT"); ok {
		n, err := cast.ToIntE(v)
		if err != nil {
			return cfg, err
		}
		cfg.MaxCount = n
	}
	if v, ok := os.LookupEnv("FCL_LOG_LEVEL"); ok {
		cfg.LogLevel = cast.ToString(v)
	}
	if v, ok := os.LookupEnv("FCL_FIXTURE"); ok {
		cfg.Fixture = cast.ToString(v)
	}

	return cfg, nil
}
