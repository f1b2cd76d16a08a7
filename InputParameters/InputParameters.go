package InputParameters

import (
	"fmt"

	"github.com/ghodss/yaml"
)

// Parameters obtained from the YAML input file
type InputParametersLOR struct {
	Title             string  `yaml:"Title"`
	Dimension         int     `yaml:"Dimension"`
	PolynomialOrder   int     `yaml:"PolynomialOrder"`
	Nx                int     `yaml:"Nx"`
	Ny                int     `yaml:"Ny"`
	Nz                int     `yaml:"Nz"`
	Lx                float64 `yaml:"Lx"`
	Ly                float64 `yaml:"Ly"`
	Lz                float64 `yaml:"Lz"`
	Quadrature        string  `yaml:"Quadrature"` // GaussLobatto or GaussLegendre
	Parallel          int     `yaml:"Parallel"`
	DirichletBoundary bool    `yaml:"DirichletBoundary"`
}

func (ip *InputParametersLOR) Parse(data []byte) error {
	return yaml.Unmarshal(data, ip)
}

func (ip *InputParametersLOR) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", ip.Title)
	fmt.Printf("[%d]\t\t\t\t= Dimension\n", ip.Dimension)
	fmt.Printf("[%d]\t\t\t\t= Polynomial Order\n", ip.PolynomialOrder)
	fmt.Printf("%d x %d x %d\t\t\t= Element Grid\n", ip.Nx, ip.Ny, ip.Nz)
	fmt.Printf("%8.5f x %8.5f x %8.5f = Domain\n", ip.Lx, ip.Ly, ip.Lz)
	fmt.Printf("[%s]\t\t= Quadrature\n", ip.Quadrature)
	fmt.Printf("[%d]\t\t\t\t= Parallel Workers\n", ip.Parallel)
	fmt.Printf("[%v]\t\t\t= Dirichlet Boundary\n", ip.DirichletBoundary)
}
