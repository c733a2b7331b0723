// Copyright 2025 Anapaya Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package command contains the cobra subcommands shared by the edge router
// binaries.
package command

import (
	"fmt"
	"io"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/sixlowpan/edgerouter/private/config"
)

// Pather returns the command path of the parent command. It is used in the
// examples of the subcommands.
type Pather interface {
	CommandPath() string
}

// NewSample creates a command that prints a sample configuration. The
// sample is produced by the given samplers.
func NewSample(pather Pather, samplers ...config.Sampler) *cobra.Command {
	var cmd = &cobra.Command{
		Use:     "sample",
		Short:   "Display sample configuration",
		Example: fmt.Sprintf("  %[1]s sample > edgerouter.toml", pather.CommandPath()),
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			config.WriteSample(cmd.OutOrStdout(), nil, nil, samplers...)
			return nil
		},
	}
	return cmd
}

// NewVersion creates a command that prints the build information.
func NewVersion(pather Pather) *cobra.Command {
	var cmd = &cobra.Command{
		Use:     "version",
		Short:   "Show the version information",
		Example: fmt.Sprintf("  %[1]s version", pather.CommandPath()),
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return writeVersion(cmd.OutOrStdout())
		},
	}
	return cmd
}

func writeVersion(w io.Writer) error {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		_, err := fmt.Fprintln(w, "version: unknown")
		return err
	}
	_, err := fmt.Fprintf(w, "version: %s\ngo: %s\nmodule: %s\n",
		info.Main.Version, info.GoVersion, info.Main.Path)
	return err
}
