/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/zhangxiao6776/fluid-engine-dev/InputParameters"
	"github.com/zhangxiao6776/fluid-engine-dev/model_problems"
)

type Model interface {
	Run()
}

// TwoDCmd represents the 2D command
var TwoDCmd = &cobra.Command{
	Use:   "2D",
	Short: "Two dimensional solver, reads a YAML input file and runs a model problem",
	Long:  `Two dimensional solver, reads a YAML input file and runs a model problem`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			err error
		)
		inputFile, err := cmd.Flags().GetString("inputFile")
		if err != nil {
			panic(err)
		}
		prof, err := cmd.Flags().GetBool("profile")
		if err != nil {
			panic(err)
		}
		if prof {
			defer profile.Start(profile.CPUProfile).Stop()
		}
		data, err := os.ReadFile(inputFile)
		if err != nil {
			fmt.Printf("unable to read input file [%s]: %v\n", inputFile, err)
			os.Exit(1)
		}
		sp := &InputParameters.SimParameters{}
		if err = sp.Parse(data); err != nil {
			fmt.Printf("unable to parse input file [%s]: %v\n", inputFile, err)
			os.Exit(1)
		}
		sp.Print()

		var m Model
		switch sp.Model {
		case "liquid":
			m = model_problems.NewLiquid2D(sp)
		case "diffusion":
			fallthrough
		default:
			if m, err = model_problems.NewDiffusion2D(sp); err != nil {
				fmt.Println(err)
				os.Exit(1)
			}
		}
		m.Run()
	},
}

func init() {
	rootCmd.AddCommand(TwoDCmd)
	TwoDCmd.Flags().StringP("inputFile", "I", "input.yaml", "YAML input file with simulation parameters")
	TwoDCmd.Flags().Bool("profile", false, "write a CPU profile while running")
}
