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
	"github.com/blinklabs-io/cardano-bech32/address"
	"github.com/spf13/cobra"
)

type assetResult struct {
	PolicyId    string `json:"policyId,omitempty"  yaml:"policyId,omitempty"`
	AssetName   string `json:"assetName,omitempty" yaml:"assetName,omitempty"`
	Hash        string `json:"hash"                yaml:"hash"`
	Fingerprint string `json:"fingerprint"         yaml:"fingerprint"`
}

func (r assetResult) Text() string {
	return r.Fingerprint + " " + r.Hash
}

func assetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "asset",
		Short: "Native asset fingerprint commands",
	}
	cmd.AddCommand(assetFingerprintCommand())
	cmd.AddCommand(assetDecodeCommand())
	return cmd
}

func assetFingerprintCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fingerprint <policy-id> [asset-name]",
		Short: "Compute the fingerprint for a hex policy ID and hex asset name",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			policyId := args[0]
			var assetName string
			if len(args) > 1 {
				assetName = args[1]
			}
			fingerprint, err := address.EncodeNativeAsset(policyId, assetName)
			if err != nil {
				return err
			}
			hash, err := address.HashNativeAsset(policyId, assetName)
			if err != nil {
				return err
			}
			return outputResult(cmd, assetResult{
				PolicyId:    policyId,
				AssetName:   assetName,
				Hash:        hash,
				Fingerprint: fingerprint,
			})
		},
	}
	return cmd
}

func assetDecodeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decode <fingerprint>",
		Short: "Validate a fingerprint and show its digest",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hash, err := address.DecodeNativeAsset(args[0])
			if err != nil {
				return err
			}
			return outputResult(cmd, assetResult{
				Hash:        hash,
				Fingerprint: args[0],
			})
		},
	}
	return cmd
}
