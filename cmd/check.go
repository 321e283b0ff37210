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

	"github.com/spf13/cobra"
)

// CheckCmd represents the check command
var CheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate a grid description file",
	Long: `Validate a grid description file without evaluating anything,

interpn check -g grid.yaml`,
	Run: func(cmd *cobra.Command, args []string) {
		gridFile, _ := cmd.Flags().GetString("gridFile")
		if len(gridFile) == 0 {
			fmt.Printf("error: must supply a grid file (-g, --gridFile)\n")
			os.Exit(1)
		}
		ip := ReadInterpParameters(gridFile)
		ip.Print()
		itp, err := ip.Interpolator()
		if err != nil {
			fmt.Printf("invalid: %s\n", err.Error())
			os.Exit(1)
		}
		g := itp.Grid()
		for d := 0; d < g.NDims(); d++ {
			ax := g.Axis(d)
			fmt.Printf("axis %d spans [%8.5f, %8.5f] with %d knots\n",
				d, ax.First(), ax.Last(), ax.Count)
		}
		fmt.Printf("valid: %d dimensions, %d grid points, %s bounds\n",
			g.NDims(), g.Size(), itp.Mode())
	},
}

func init() {
	rootCmd.AddCommand(CheckCmd)
	CheckCmd.Flags().StringP("gridFile", "g", "", "YAML file describing the grid, values and bounds mode")
}
