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
	"errors"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/gogpu/glslx/pkg/glsl/diskcache"
	"github.com/gogpu/glslx/pkg/glsl/translator"
)

// translateCmd represents the translate command
var translateCmd = &cobra.Command{
	Use:   "translate [flags] shader_file",
	Short: "Translate a GLSL shader to a target language version.",
	Long: `Translate a GLSL shader to a target language version.
	The source version is detected from the #version directive (or inferred
	from vocabulary) unless --source-version overrides it.`,
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

		var store *diskcache.Store

		if dir := GetString(cmd, "disk-cache"); dir != "" {
			if store, err = diskcache.Open(dir); err != nil {
				fmt.Println(err)
				os.Exit(1)
			}

			if e, ok := store.Get(string(src), cfg.Stage, cfg.TargetVersion); ok {
				log.Debugf("disk cache hit for %s", args[0])
				writeOutput(cmd, e.Text)

				return
			}
		}

		result, err := translator.New(cfg).Translate(string(src))
		if err != nil {
			var terr *translator.Error
			if errors.As(err, &terr) {
				printDiagnostics(args[0], terr.Diagnostics)
			} else {
				fmt.Println(err)
			}

			os.Exit(2)
		}

		printDiagnostics(args[0], result.Warnings)
		log.Debugf("translated %s from %s to %s in %s",
			args[0], result.SourceVersion, result.TargetVersion, result.Elapsed)

		if store != nil {
			entry := diskcache.Entry{
				SourceVersion: result.SourceVersion,
				TargetVersion: result.TargetVersion,
				Stage:         result.Stage,
				Text:          result.Source,
			}

			if err := store.Put(string(src), entry); err != nil {
				log.Warnf("disk cache write failed: %v", err)
			}
		}

		writeOutput(cmd, result.Source)
	},
}

// writeOutput sends translated source to -o's file, or stdout.
func writeOutput(cmd *cobra.Command, text string) {
	if out := GetString(cmd, "output"); out != "" {
		if err := os.WriteFile(out, []byte(text), 0o644); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		return
	}

	fmt.Print(text)
}

func init() {
	rootCmd.AddCommand(translateCmd)
	addPipelineFlags(translateCmd)
	translateCmd.Flags().StringP("output", "o", "", "write translated source to a file instead of stdout")
	translateCmd.Flags().String("disk-cache", "", "directory for the serialized-result disk cache")
}
