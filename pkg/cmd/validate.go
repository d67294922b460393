// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gogpu/glslx/pkg/glsl/translator"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate [flags] shader_file",
	Short: "Check whether a shader translates cleanly to a target version.",
	Long: `Check whether a shader translates cleanly to a target version,
	reporting every error and warning without emitting source.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}

		cfg := getTranslatorConfig(cmd)

		src, err := os.ReadFile(args[0])
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		valid, errs, warnings := translator.New(cfg).Validate(string(src))

		printDiagnostics(args[0], errs)
		printDiagnostics(args[0], warnings)
		fmt.Printf("%s: %d errors, %d warnings\n", args[0], len(errs), len(warnings))

		if !valid {
			os.Exit(2)
		}
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
	addPipelineFlags(validateCmd)
}
