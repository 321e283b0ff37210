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
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/notargets/interpn/InputParameters"
	"github.com/notargets/interpn/multilinear"
)

type ModelEval struct {
	GridFile   string
	PointsFile string
	OutputFile string
	Bounds     string
	Profile    bool
}

// EvalCmd represents the eval command
var EvalCmd = &cobra.Command{
	Use:   "eval",
	Short: "Batch-evaluate an interpolant at points read from a file",
	Long: `Batch-evaluate an interpolant at points read from a file,

interpn eval -g grid.yaml -p points.txt`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			err error
		)
		me := &ModelEval{}
		if me.GridFile, err = cmd.Flags().GetString("gridFile"); err != nil {
			panic(err)
		}
		if me.PointsFile, err = cmd.Flags().GetString("pointsFile"); err != nil {
			panic(err)
		}
		me.OutputFile, _ = cmd.Flags().GetString("outputFile")
		me.Bounds, _ = cmd.Flags().GetString("bounds")
		me.Profile, _ = cmd.Flags().GetBool("cpuprofile")
		itp := processEvalInput(me)
		RunEval(me, itp)
	},
}

func init() {
	rootCmd.AddCommand(EvalCmd)
	EvalCmd.Flags().StringP("gridFile", "g", "", "YAML file describing the grid, values and bounds mode")
	EvalCmd.Flags().StringP("pointsFile", "p", "", "text file of observation points, one per line, whitespace separated")
	EvalCmd.Flags().StringP("outputFile", "o", "", "write results here instead of stdout")
	EvalCmd.Flags().StringP("bounds", "b", "", "override bounds mode: Extrapolate, Clamp or Error")
	EvalCmd.Flags().Bool("cpuprofile", false, "write a CPU profile of the evaluation to the current directory")
}

func processEvalInput(me *ModelEval) (itp *multilinear.Interpolator) {
	var (
		err      error
		willExit bool
	)
	if len(me.GridFile) == 0 {
		err := fmt.Errorf("must supply a grid file (-g, --gridFile) in YAML format")
		fmt.Printf("error: %s\n", err.Error())
		exampleFile := `
########################################
Title: "Test Case"
Bounds: Extrapolate
Axes:
  - Kind: regular
    Start: 0.
    Step: 1.
    Count: 4
Values: [0., 10., 20., 30.]
########################################
`
		fmt.Printf("Example File:%s\n", exampleFile)
		willExit = true
	}
	if len(me.PointsFile) == 0 {
		err := fmt.Errorf("must supply a points file (-p, --pointsFile), one point per line")
		fmt.Printf("error: %s\n", err.Error())
		willExit = true
	}
	if willExit {
		os.Exit(1)
	}
	ip := ReadInterpParameters(me.GridFile)
	ip.Print()
	if len(me.Bounds) != 0 {
		ip.Bounds = me.Bounds
	}
	if itp, err = ip.Interpolator(); err != nil {
		fmt.Printf("error: %s\n", err.Error())
		os.Exit(1)
	}
	return
}

func ReadInterpParameters(fileName string) (ip *InputParameters.InterpParameters) {
	var (
		err  error
		data []byte
	)
	if data, err = os.ReadFile(fileName); err != nil {
		panic(err)
	}
	ip = &InputParameters.InterpParameters{}
	if err = ip.Parse(data); err != nil {
		panic(err)
	}
	return
}

// ReadPoints parses a whitespace separated points file, nDims columns per
// line, skipping blank lines and # comments.
func ReadPoints(fileName string, nDims int) (points [][]float64, err error) {
	var (
		f *os.File
	)
	if f, err = os.Open(fileName); err != nil {
		return
	}
	defer f.Close()
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if len(line) == 0 || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != nDims {
			err = fmt.Errorf("line %d: %d fields for a %d dimensional grid",
				lineNo, len(fields), nDims)
			return
		}
		pt := make([]float64, nDims)
		for d, field := range fields {
			if pt[d], err = strconv.ParseFloat(field, 64); err != nil {
				err = fmt.Errorf("line %d: %s", lineNo, err)
				return
			}
		}
		points = append(points, pt)
	}
	err = scanner.Err()
	return
}

func RunEval(me *ModelEval, itp *multilinear.Interpolator) {
	var (
		err error
	)
	if me.Profile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}
	points, err := ReadPoints(me.PointsFile, itp.NDims())
	if err != nil {
		fmt.Printf("error: %s\n", err.Error())
		os.Exit(1)
	}
	out, errs := itp.EvalBatch(points, nil)
	w := os.Stdout
	if len(me.OutputFile) != 0 {
		if w, err = os.Create(me.OutputFile); err != nil {
			panic(err)
		}
		defer w.Close()
	}
	failed := make(map[int]bool, len(errs))
	for _, pe := range errs {
		failed[pe.Index] = true
		fmt.Printf("point %d failed: %s\n", pe.Index, pe.Err.Error())
	}
	for i, y := range out {
		if failed[i] {
			fmt.Fprintf(w, "# point %d failed\n", i)
			continue
		}
		fmt.Fprintf(w, "%.17g\n", y)
	}
	fmt.Printf("%d points evaluated, %d failed\n", len(points), len(errs))
}
