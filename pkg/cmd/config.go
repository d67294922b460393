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

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/gogpu/glslx/pkg/glsl/translator"
	"github.com/gogpu/glslx/pkg/glsl/version"
)

// getTranslatorConfig builds a translator.Config from the shared flags on a
// translate/validate command.
func getTranslatorConfig(cmd *cobra.Command) translator.Config {
	if GetFlag(cmd, "verbose") {
		log.SetLevel(log.DebugLevel)
	}

	var cfg translator.Config

	cfg.TargetVersion = parseVersionFlag(cmd, "target")
	cfg.Stage = parseStageFlag(cmd)
	cfg.OptimizationLevel = GetUint(cmd, "opt")
	cfg.StrictMode = GetFlag(cmd, "strict")

	if s := GetString(cmd, "source-version"); s != "" {
		v := parseVersionString(s)
		cfg.SourceVersion = &v
	}

	if s := GetString(cmd, "hardware-max"); s != "" {
		cfg.HardwareMax = parseVersionString(s)
	}

	if cfg.OptimizationLevel > 3 {
		fmt.Printf("invalid optimization level %d\n", cfg.OptimizationLevel)
		os.Exit(1)
	}

	return cfg
}

func parseVersionFlag(cmd *cobra.Command, flag string) version.Version {
	return parseVersionString(GetString(cmd, flag))
}

func parseVersionString(s string) version.Version {
	v, ok := version.ParseDriverString(s)
	if !ok || !version.IsRecognized(v.Code()) {
		fmt.Printf("unknown GLSL version %q\n", s)
		os.Exit(1)
	}

	return v
}

func parseStageFlag(cmd *cobra.Command) version.Stage {
	name := GetString(cmd, "stage")

	for _, s := range []version.Stage{
		version.Vertex, version.Fragment, version.Geometry,
		version.TessControl, version.TessEval, version.Compute,
	} {
		if s.String() == name {
			return s
		}
	}

	fmt.Printf("unknown shader stage %q\n", name)
	os.Exit(1)

	return version.Vertex
}

// addPipelineFlags registers the flags translate and validate share.
func addPipelineFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("target", "t", "3.30", "target GLSL version")
	cmd.Flags().StringP("stage", "s", "fragment", "shader stage (vertex, fragment, geometry, tess-control, tess-eval, compute)")
	cmd.Flags().String("source-version", "", "override source-version detection")
	cmd.Flags().String("hardware-max", "", "maximum GLSL version the driver supports")
	cmd.Flags().UintP("opt", "O", 1, "optimization level (0..3)")
	cmd.Flags().Bool("strict", false, "escalate warnings to errors")
}
