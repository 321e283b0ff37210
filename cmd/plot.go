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
	"strconv"
	"strings"
	"time"

	"github.com/notargets/avs/chart2d"
	utils2 "github.com/notargets/avs/utils"
	"github.com/spf13/cobra"

	"github.com/notargets/interpn/multilinear"
)

// PlotCmd represents the plot command
var PlotCmd = &cobra.Command{
	Use:   "plot",
	Short: "Plot a 1D trace through the interpolant along one axis",
	Long: `Plot a 1D trace through the interpolant along one axis, holding the
other coordinates fixed and sampling beyond the grid ends to show the
affine extension,

interpn plot -g grid.yaml --axis 0`,
	Run: func(cmd *cobra.Command, args []string) {
		gridFile, _ := cmd.Flags().GetString("gridFile")
		if len(gridFile) == 0 {
			fmt.Printf("error: must supply a grid file (-g, --gridFile)\n")
			os.Exit(1)
		}
		axis, _ := cmd.Flags().GetInt("axis")
		at, _ := cmd.Flags().GetString("at")
		samples, _ := cmd.Flags().GetInt("samples")
		overhang, _ := cmd.Flags().GetFloat64("overhang")
		hold, _ := cmd.Flags().GetInt("hold")
		ip := ReadInterpParameters(gridFile)
		itp, err := ip.Interpolator()
		if err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
		RunPlot(itp, axis, at, samples, overhang, time.Duration(hold)*time.Second)
	},
}

func init() {
	rootCmd.AddCommand(PlotCmd)
	PlotCmd.Flags().StringP("gridFile", "g", "", "YAML file describing the grid, values and bounds mode")
	PlotCmd.Flags().IntP("axis", "a", 0, "axis to trace along")
	PlotCmd.Flags().String("at", "", "comma separated fixed coordinates for the other axes (default grid centers)")
	PlotCmd.Flags().IntP("samples", "s", 200, "number of samples along the trace")
	PlotCmd.Flags().Float64("overhang", 0.25, "fraction of the axis span to sample beyond each end")
	PlotCmd.Flags().Int("hold", 30, "seconds to hold the plot window open")
}

func RunPlot(itp *multilinear.Interpolator, axis int, at string, samples int,
	overhang float64, hold time.Duration) {
	var (
		g  = itp.Grid()
		nd = g.NDims()
	)
	if axis < 0 || axis >= nd {
		fmt.Printf("error: axis %d out of range [0,%d)\n", axis, nd)
		os.Exit(1)
	}
	point := make([]float64, nd)
	for d := 0; d < nd; d++ {
		ax := g.Axis(d)
		point[d] = 0.5 * (ax.First() + ax.Last())
	}
	if len(at) != 0 {
		fields := strings.Split(at, ",")
		if len(fields) != nd {
			fmt.Printf("error: --at needs %d coordinates\n", nd)
			os.Exit(1)
		}
		for d, field := range fields {
			x, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				fmt.Printf("error: --at: %s\n", err.Error())
				os.Exit(1)
			}
			point[d] = x
		}
	}

	ax := g.Axis(axis)
	span := ax.Last() - ax.First()
	x0 := ax.First() - overhang*span
	x1 := ax.Last() + overhang*span
	xs := make([]float64, samples)
	ys := make([]float64, samples)
	yMin, yMax := 0., 0.
	for i := 0; i < samples; i++ {
		x := x0 + (x1-x0)*float64(i)/float64(samples-1)
		point[axis] = x
		y, err := itp.Evaluate(point)
		if err != nil {
			fmt.Printf("error: sample at %g: %s\n", x, err.Error())
			os.Exit(1)
		}
		xs[i], ys[i] = x, y
		if i == 0 || y < yMin {
			yMin = y
		}
		if i == 0 || y > yMax {
			yMax = y
		}
	}
	if yMax == yMin {
		yMax = yMin + 1
	}

	chart := chart2d.NewChart2D(1280, 1024,
		float32(x0), float32(x1), float32(yMin), float32(yMax))
	colorMap := utils2.NewColorMap(-1, 1, 1)
	go chart.Plot()
	if err := chart.AddSeries("f", xs, ys,
		chart2d.NoGlyph, chart2d.Solid, colorMap.GetRGB(0)); err != nil {
		panic("unable to add graph series")
	}
	fmt.Printf("trace along axis %d, %d samples in [%8.5f, %8.5f]\n",
		axis, samples, x0, x1)
	time.Sleep(hold)
}
