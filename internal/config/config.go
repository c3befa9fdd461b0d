// Copyright 2025 Blink Labs Software
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

package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/blinklabs-io/cardano-bech32/address"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

type ctxKey string

const configContextKey ctxKey = "cardano-bech32.config"

const (
	OutputJson = "json"
	OutputYaml = "yaml"
	OutputText = "text"

	DefaultNetwork = "mainnet"
	DefaultOutput  = OutputJson

	envPrefix = "cardano_bech32"
)

func WithContext(ctx context.Context, cfg *Config) context.Context {
	return context.WithValue(ctx, configContextKey, cfg)
}

func FromContext(ctx context.Context) *Config {
	cfg, ok := ctx.Value(configContextKey).(*Config)
	if !ok {
		return nil
	}
	return cfg
}

type Config struct {
	Network string `yaml:"network" envconfig:"network"`
	Output  string `yaml:"output"  envconfig:"output"`
}

// NetworkId returns the address header network ID for the configured network
func (c *Config) NetworkId() uint8 {
	network, ok := address.NetworkByName(c.Network)
	if !ok {
		return address.AddressNetworkMainnet
	}
	return network.Id
}

// Validate checks that the network and output format are known
func (c *Config) Validate() error {
	if _, ok := address.NetworkByName(c.Network); !ok {
		return fmt.Errorf("unknown network: %s", c.Network)
	}
	switch c.Output {
	case OutputJson, OutputYaml, OutputText:
	default:
		return fmt.Errorf(
			"invalid output: %q (must be '%s', '%s', or '%s')",
			c.Output,
			OutputJson,
			OutputYaml,
			OutputText,
		)
	}
	return nil
}

func defaultConfig() *Config {
	return &Config{
		Network: DefaultNetwork,
		Output:  DefaultOutput,
	}
}

func LoadConfig(configFile string) (*Config, error) {
	cfg := defaultConfig()
	if configFile == "" {
		// Check for config file in this path: ~/.cardano-bech32/config.yaml
		if homeDir, err := os.UserHomeDir(); err == nil {
			userPath := filepath.Join(homeDir, ".cardano-bech32", "config.yaml")
			if _, err := os.Stat(userPath); err == nil {
				configFile = userPath
			}
		}
	}
	if configFile != "" {
		buf, err := os.ReadFile(configFile)
		if err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		err = yaml.Unmarshal(buf, cfg)
		if err != nil {
			return nil, fmt.Errorf("error parsing config file: %w", err)
		}
	}
	// Process environment variables
	err := envconfig.Process(envPrefix, cfg)
	if err != nil {
		return nil, fmt.Errorf("error processing environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
