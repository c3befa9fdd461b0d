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
	"fmt"
	"log/slog"
	"strings"

	"github.com/blinklabs-io/cardano-bech32/address"
	"github.com/spf13/cobra"
)

type addressResult struct {
	address.Address `yaml:",inline"`
}

func (r addressResult) Text() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "address:      %s\n", r.Address.Address)
	fmt.Fprintf(&sb, "type:         %d\n", r.AddressType)
	if network, ok := address.NetworkById(r.NetworkId); ok {
		fmt.Fprintf(&sb, "network:      %d (%s)\n", r.NetworkId, network)
	} else {
		fmt.Fprintf(&sb, "network:      %d\n", r.NetworkId)
	}
	fmt.Fprintf(&sb, "payment hash: %s\n", r.PaymentHash)
	fmt.Fprintf(&sb, "staking hash: %s\n", r.StakingHash)
	if r.StakeAddress != nil {
		fmt.Fprintf(&sb, "stake:        %s", *r.StakeAddress)
	} else {
		sb.WriteString("stake:        -")
	}
	return sb.String()
}

type stakeAddressResult struct {
	StakeAddress string `json:"stakeAddress" yaml:"stakeAddress"`
}

func (r stakeAddressResult) Text() string {
	return r.StakeAddress
}

func addressCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "address",
		Short: "Cardano Shelley address commands",
	}
	cmd.AddCommand(addressDecodeCommand())
	cmd.AddCommand(addressEncodeCommand())
	cmd.AddCommand(addressStakeCommand())
	return cmd
}

func addressDecodeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decode <address>",
		Short: "Decode a bech32 address into its parts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			addr, err := address.Decode(args[0])
			if err != nil {
				return err
			}
			slog.Debug(
				"decoded address",
				"component", programName,
				"type", addr.AddressType,
				"network", addr.NetworkId,
			)
			return outputResult(cmd, addressResult{addr})
		},
	}
	return cmd
}

func addressEncodeCommand() *cobra.Command {
	var addrType uint8
	var paymentHash, stakeHash string
	cmd := &cobra.Command{
		Use:   "encode",
		Short: "Encode a bech32 address from a type and hex hashes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := commandConfig(cmd)
			if err != nil {
				return err
			}
			addr, err := address.Encode(
				addrType,
				cfg.NetworkId(),
				paymentHash,
				stakeHash,
			)
			if err != nil {
				return err
			}
			return outputResult(cmd, addressResult{addr})
		},
	}
	cmd.Flags().Uint8Var(&addrType, "type", 0, "address type (0-7)")
	cmd.Flags().StringVar(&paymentHash, "payment", "", "payment credential hash as hex")
	cmd.Flags().StringVar(&stakeHash, "stake", "", "staking credential hash as hex")
	_ = cmd.MarkFlagRequired("payment")
	return cmd
}

func addressStakeCommand() *cobra.Command {
	var addrType uint8
	cmd := &cobra.Command{
		Use:   "stake <stake-hash>",
		Short: "Encode the stake address for a staking credential hash",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := commandConfig(cmd)
			if err != nil {
				return err
			}
			stakeAddr, ok, err := address.EncodeStakeAddress(
				cfg.NetworkId(),
				addrType,
				args[0],
			)
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("address type %d has no stake address", addrType)
			}
			return outputResult(cmd, stakeAddressResult{StakeAddress: stakeAddr})
		},
	}
	cmd.Flags().Uint8Var(&addrType, "type", 0, "address type (0-3)")
	return cmd
}
