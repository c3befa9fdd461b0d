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
	"encoding/hex"
	"log/slog"
	"strings"

	"github.com/blinklabs-io/cardano-bech32/bech32"
	"github.com/spf13/cobra"
)

type bech32Result struct {
	Hrp    string `json:"hrp"    yaml:"hrp"`
	Data   string `json:"data"   yaml:"data"`
	Bech32 string `json:"bech32" yaml:"bech32"`
}

func (r bech32Result) Text() string {
	return r.Bech32
}

func encodeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "encode <hrp> <hex-data>",
		Short: "Encode hex data as a bech32 string",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			words, err := bech32.HexToWords(args[1])
			if err != nil {
				return err
			}
			encoded, err := bech32.Encode(args[0], words)
			if err != nil {
				return err
			}
			slog.Debug(
				"encoded bech32",
				"component", programName,
				"hrp", args[0],
				"words", len(words),
			)
			return outputResult(cmd, bech32Result{
				Hrp:    strings.ToLower(args[0]),
				Data:   strings.ToLower(args[1]),
				Bech32: encoded,
			})
		},
	}
	return cmd
}

type decodeResult struct {
	Hrp  string `json:"hrp"  yaml:"hrp"`
	Data string `json:"data" yaml:"data"`
}

func (r decodeResult) Text() string {
	return r.Hrp + " " + r.Data
}

func decodeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decode <bech32>",
		Short: "Decode a bech32 string to its HRP and hex data",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hrp, data, err := bech32.DecodeToBytes(args[0])
			if err != nil {
				return err
			}
			return outputResult(cmd, decodeResult{
				Hrp:  hrp,
				Data: hex.EncodeToString(data),
			})
		},
	}
	return cmd
}
