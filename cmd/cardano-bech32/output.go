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

package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/blinklabs-io/cardano-bech32/internal/config"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var errNoConfig = errors.New("no config found in context")

// textMarshaler is implemented by results that have a plain text rendering
type textMarshaler interface {
	Text() string
}

func commandConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.FromContext(cmd.Context())
	if cfg == nil {
		return nil, errNoConfig
	}
	return cfg, nil
}

func writeResult(w io.Writer, format string, result textMarshaler) error {
	switch format {
	case config.OutputJson:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	case config.OutputYaml:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(result); err != nil {
			return err
		}
		return enc.Close()
	case config.OutputText:
		_, err := fmt.Fprintln(w, result.Text())
		return err
	default:
		return fmt.Errorf("unknown output format: %s", format)
	}
}

func outputResult(cmd *cobra.Command, result textMarshaler) error {
	cfg, err := commandConfig(cmd)
	if err != nil {
		return err
	}
	return writeResult(cmd.OutOrStdout(), cfg.Output, result)
}
