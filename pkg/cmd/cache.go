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

	"github.com/gogpu/glslx/pkg/glsl/diskcache"
)

// cacheCmd represents the cache command
var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Inspect or clean the on-disk translation cache.",
}

var cacheStatsCmd = &cobra.Command{
	Use:   "stats [flags] cache_dir",
	Short: "Report entry counts for a disk-cache directory.",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}

		files, err := os.ReadDir(args[0])
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		entries := 0
		for _, f := range files {
			if !f.IsDir() {
				entries++
			}
		}

		fmt.Printf("%s: %d entries\n", args[0], entries)
	},
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear [flags] cache_dir",
	Short: "Remove disk-cache entries older than the retention window.",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}

		store, err := diskcache.Open(args[0])
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		removed, err := store.Cleanup()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		fmt.Printf("removed %d entries\n", removed)
	},
}

func init() {
	rootCmd.AddCommand(cacheCmd)
	cacheCmd.AddCommand(cacheStatsCmd)
	cacheCmd.AddCommand(cacheClearCmd)
}
