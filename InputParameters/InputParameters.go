package InputParameters

import (
	"fmt"

	"github.com/ghodss/yaml"

	"github.com/notargets/interpn/grid"
	"github.com/notargets/interpn/multilinear"
)

// Parameters obtained from the YAML input file
type InterpParameters struct {
	Title  string           `yaml:"Title"`
	Bounds string           `yaml:"Bounds"` // Extrapolate, Clamp or Error
	Axes   []AxisParameters `yaml:"Axes"`
	Values []float64        `yaml:"Values"` // flat, C order, last axis fastest
}

type AxisParameters struct {
	Kind  string    `yaml:"Kind"` // "regular" or "rectilinear"
	Start float64   `yaml:"Start"`
	Step  float64   `yaml:"Step"`
	Count int       `yaml:"Count"`
	Knots []float64 `yaml:"Knots"`
}

func (ip *InterpParameters) Parse(data []byte) error {
	return yaml.Unmarshal(data, ip)
}

func (ip *InterpParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", ip.Title)
	fmt.Printf("[%s]\t\t= Bounds\n", ip.Bounds)
	fmt.Printf("[%d]\t\t\t= Dimensions\n", len(ip.Axes))
	for d, axp := range ip.Axes {
		switch {
		case axp.Kind == "rectilinear" && len(axp.Knots) > 0:
			fmt.Printf("Axis[%d] = rectilinear, %d knots in [%8.5f, %8.5f]\n",
				d, len(axp.Knots), axp.Knots[0], axp.Knots[len(axp.Knots)-1])
		default:
			fmt.Printf("Axis[%d] = regular, %d knots, start %8.5f, step %8.5f\n",
				d, axp.Count, axp.Start, axp.Step)
		}
	}
	fmt.Printf("[%d]\t\t\t= Values\n", len(ip.Values))
}

// Grid builds the validated grid description from the parsed axes.
func (ip *InterpParameters) Grid() (*grid.Grid, error) {
	axes := make([]grid.Axis, len(ip.Axes))
	for d, axp := range ip.Axes {
		switch axp.Kind {
		case "regular", "":
			axes[d] = grid.RegularAxis(axp.Start, axp.Step, axp.Count)
		case "rectilinear":
			axes[d] = grid.RectilinearAxis(axp.Knots)
		default:
			return nil, fmt.Errorf("%w: axis %d: unknown kind %q",
				grid.ErrMalformedGrid, d, axp.Kind)
		}
	}
	return grid.NewGrid(axes...)
}

// Interpolator builds the full evaluation engine described by the file.
func (ip *InterpParameters) Interpolator() (*multilinear.Interpolator, error) {
	g, err := ip.Grid()
	if err != nil {
		return nil, err
	}
	mode, err := multilinear.NewBoundsMode(ip.Bounds)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", grid.ErrMalformedGrid, err)
	}
	return multilinear.New(g, ip.Values, mode)
}
