package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/ResiduaLiu/mfem/InputParameters"
	"github.com/ResiduaLiu/mfem/fespace"
	"github.com/ResiduaLiu/mfem/lor"
	"github.com/ResiduaLiu/mfem/mesh"
	"github.com/ResiduaLiu/mfem/utils"
)

// lorCmd represents the lor command
var lorCmd = &cobra.Command{
	Use:   "lor",
	Short: "Assemble the batched LOR stiffness matrix for a Cartesian problem",
	Long: `
Builds a Cartesian high-order mesh, refines it into low-order cells, runs the
batched LOR assembly and reports matrix size, nonzeros and timing.

mfem lor -d 3 -n 4 -k 8`,
	Run: func(cmd *cobra.Command, args []string) {
		ip := defaultParameters()
		if icFile, _ := cmd.Flags().GetString("inputFile"); icFile != "" {
			data, err := os.ReadFile(icFile)
			if err != nil {
				fmt.Printf("unable to read input file %s: %v\n", icFile, err)
				os.Exit(1)
			}
			if err = ip.Parse(data); err != nil {
				fmt.Printf("unable to parse input file %s: %v\n", icFile, err)
				os.Exit(1)
			}
		} else {
			ip.Dimension, _ = cmd.Flags().GetInt("dimension")
			ip.PolynomialOrder, _ = cmd.Flags().GetInt("order")
			k, _ := cmd.Flags().GetInt("elements")
			ip.Nx, ip.Ny, ip.Nz = k, k, k
			ip.Quadrature, _ = cmd.Flags().GetString("quadrature")
			ip.Parallel, _ = cmd.Flags().GetInt("parallel")
			ip.DirichletBoundary, _ = cmd.Flags().GetBool("dirichlet")
		}
		ip.Print()
		if prof, _ := cmd.Flags().GetBool("profile"); prof {
			defer profile.Start(profile.CPUProfile).Stop()
		}
		RunLOR(ip)
	},
}

func init() {
	rootCmd.AddCommand(lorCmd)
	lorCmd.Flags().StringP("inputFile", "I", "", "YAML input deck; overrides the other flags")
	lorCmd.Flags().IntP("dimension", "d", 2, "spatial dimension, 2 or 3")
	lorCmd.Flags().IntP("order", "n", 4, "polynomial order of the high-order space")
	lorCmd.Flags().IntP("elements", "k", 8, "number of high-order elements per axis")
	lorCmd.Flags().StringP("quadrature", "q", "GaussLobatto", "quadrature rule: GaussLobatto or GaussLegendre")
	lorCmd.Flags().IntP("parallel", "p", 1, "number of assembly workers")
	lorCmd.Flags().Bool("dirichlet", true, "eliminate boundary dofs (diagonal kept)")
	lorCmd.Flags().Bool("profile", false, "write a CPU profile")
}

func defaultParameters() *InputParameters.InputParametersLOR {
	return &InputParameters.InputParametersLOR{
		Title:             "batched LOR assembly",
		Dimension:         2,
		PolynomialOrder:   4,
		Nx:                8,
		Ny:                8,
		Nz:                8,
		Lx:                1.0,
		Ly:                1.0,
		Lz:                1.0,
		Quadrature:        "GaussLobatto",
		Parallel:          1,
		DirichletBoundary: true,
	}
}

func RunLOR(ip *InputParameters.InputParametersLOR) {
	var (
		mHO *mesh.Mesh
		err error
	)
	switch ip.Dimension {
	case 2:
		mHO = mesh.NewCartesian2D(ip.Nx, ip.Ny, ip.Lx, ip.Ly)
	case 3:
		mHO = mesh.NewCartesian3D(ip.Nx, ip.Ny, ip.Nz, ip.Lx, ip.Ly, ip.Lz)
	default:
		fmt.Printf("unsupported dimension %d\n", ip.Dimension)
		os.Exit(1)
	}
	fmt.Println(mHO)

	fes, err := fespace.NewH1Space(mHO, ip.PolynomialOrder)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	mLOR := mesh.LORRefinement(mHO, ip.PolynomialOrder)
	fmt.Println(mLOR)

	var essDofs utils.Index
	if ip.DirichletBoundary {
		essDofs = fes.BoundaryDofs()
	}

	opts := lor.AssemblyOptions{Parallel: ip.Parallel}
	switch ip.Quadrature {
	case "GaussLegendre":
		opts.Quadrature = lor.GaussLegendre
	case "GaussLobatto", "":
		opts.Quadrature = lor.GaussLobatto
	default:
		fmt.Printf("unknown quadrature %q\n", ip.Quadrature)
		os.Exit(1)
	}

	start := time.Now()
	A, err := lor.AssembleBatchedLOR(mLOR, fes, essDofs, opts)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	elapsed := time.Since(start)

	nr, nc := A.Dims()
	fmt.Printf("assembled %d x %d matrix, %d nonzeros, %d essential dofs, %v\n",
		nr, nc, A.NNZ(), len(essDofs), elapsed)
}
