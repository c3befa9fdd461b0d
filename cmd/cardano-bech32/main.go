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
	"io"
	"log/slog"
	"os"

	"github.com/blinklabs-io/cardano-bech32/internal/config"
	"github.com/blinklabs-io/cardano-bech32/internal/version"
	"github.com/spf13/cobra"
	"go.uber.org/automaxprocs/maxprocs"
)

const (
	programName = "cardano-bech32"
)

func slogPrintf(format string, v ...any) {
	slog.Debug(fmt.Sprintf(format, v...),
		"component", programName,
	)
}

var (
	globalFlags = struct {
		debug   bool
		network string
		output  string
	}{}
	configFile string
)

func commonRun(w io.Writer) *slog.Logger {
	// Configure logger
	logLevel := slog.LevelInfo
	addSource := false
	if globalFlags.debug {
		logLevel = slog.LevelDebug
		addSource = true
	}
	logger := slog.New(
		slog.NewJSONHandler(w, &slog.HandlerOptions{
			AddSource: addSource,
			Level:     logLevel,
		}),
	)
	slog.SetDefault(logger)
	// Configure max processes with our logger wrapper, toss undo func
	_, err := maxprocs.Set(maxprocs.Logger(slogPrintf))
	if err != nil {
		// If we hit this, something really wrong happened
		slog.Error(err.Error())
		os.Exit(1)
	}
	logger.Debug(
		"version: "+version.GetVersionString(),
		"component", programName,
	)
	return logger
}

func rootCommand() *cobra.Command {
	globalFlags.debug = false
	globalFlags.network = ""
	globalFlags.output = ""
	configFile = ""

	rootCmd := &cobra.Command{
		Use:           programName,
		Short:         "Bech32, Cardano address and native asset fingerprint codec",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags
	rootCmd.PersistentFlags().
		BoolVarP(&globalFlags.debug, "debug", "D", false, "enable debug logging")
	rootCmd.PersistentFlags().
		StringVar(&configFile, "config", "", "path to config file")
	rootCmd.PersistentFlags().
		StringVar(&globalFlags.network, "network", "", "network to encode addresses for (mainnet, testnet, preprod, preview, or sanchonet)")
	rootCmd.PersistentFlags().
		StringVarP(&globalFlags.output, "output", "o", "", "output format (json, yaml, or text)")

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		commonRun(cmd.ErrOrStderr())
		cfg, err := config.LoadConfig(configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		// Override config with command line flags
		if globalFlags.network != "" {
			cfg.Network = globalFlags.network
		}
		if globalFlags.output != "" {
			cfg.Output = globalFlags.output
		}
		if err := cfg.Validate(); err != nil {
			return err
		}
		slog.Debug(
			"loaded config",
			"component", programName,
			"network", cfg.Network,
			"output", cfg.Output,
		)
		cmd.SetContext(config.WithContext(cmd.Context(), cfg))
		return nil
	}

	// Subcommands
	rootCmd.AddCommand(encodeCommand())
	rootCmd.AddCommand(decodeCommand())
	rootCmd.AddCommand(addressCommand())
	rootCmd.AddCommand(assetCommand())
	rootCmd.AddCommand(versionCommand())

	return rootCmd
}

func main() {
	rootCmd := rootCommand()
	if err := rootCmd.Execute(); err != nil {
		slog.Error(err.Error(), "component", programName)
		os.Exit(1)
	}
}
