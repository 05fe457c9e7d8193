package cmd

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/umitkrkmz/ChaoticEngine/chaos"
	"github.com/umitkrkmz/ChaoticEngine/generator"
)

var (
	genN     int
	genX0    float64
	genY0    float64
	genZ0    float64
	genSigma float64
	genRho   float64
	genBeta  float64
	genDt    float64
)

// genCmd represents the gen command
var genCmd = &cobra.Command{
	Use:   "gen",
	Short: "Dump a chaotic trajectory as CSV",
	Long: `Dump a chaotic trajectory as CSV, For example:
  chaoticengine gen --map=lorenz -n 50000 --x0=0.1 --y0=0.1 --z0=0.1 > lorenz.csv
  chaoticengine gen --map=logistic -n 10000 --x0=0.4 > logistic.csv`,
	RunE: func(cmd *cobra.Command, args []string) error {
		m, ok := chaos.ParseMap(mapName)
		if !ok || m.Integer() {
			return fmt.Errorf("--map must name a float map, got %q", mapName)
		}
		if genN <= 0 {
			return fmt.Errorf("-n must be positive")
		}

		g, err := generator.New(m, generator.WithLorenzParams(chaos.LorenzParams{
			Sigma: genSigma, Rho: genRho, Beta: genBeta, Dt: genDt,
		}))
		if err != nil {
			return err
		}

		w := bufio.NewWriter(os.Stdout)
		defer w.Flush()

		switch m.Dim() {
		case 1:
			buf := make([]float64, genN)
			if err := g.Generate1D(buf, genX0); err != nil {
				return err
			}
			fmt.Fprintln(w, "x")
			for _, x := range buf {
				fmt.Fprintf(w, "%g\n", x)
			}
		case 2:
			xb := make([]float64, genN)
			yb := make([]float64, genN)
			if err := g.Generate2D(xb, yb, genX0, genY0); err != nil {
				return err
			}
			fmt.Fprintln(w, "x,y")
			for i := range xb {
				fmt.Fprintf(w, "%g,%g\n", xb[i], yb[i])
			}
		default:
			xb := make([]float64, genN)
			yb := make([]float64, genN)
			zb := make([]float64, genN)
			if err := g.Generate3D(xb, yb, zb, genX0, genY0, genZ0); err != nil {
				return err
			}
			fmt.Fprintln(w, "x,y,z")
			for i := range xb {
				fmt.Fprintf(w, "%g,%g,%g\n", xb[i], yb[i], zb[i])
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(genCmd)

	flags := genCmd.Flags()
	flags.IntVarP(&genN, "count", "n", 10000, "samples to generate")
	flags.Float64Var(&genX0, "x0", 0.1, "initial x")
	flags.Float64Var(&genY0, "y0", 0.1, "initial y")
	flags.Float64Var(&genZ0, "z0", 0.1, "initial z")
	flags.Float64Var(&genSigma, "sigma", 10, "Lorenz sigma")
	flags.Float64Var(&genRho, "rho", 28, "Lorenz rho")
	flags.Float64Var(&genBeta, "beta", 8.0/3.0, "Lorenz beta")
	flags.Float64Var(&genDt, "dt", 0.01, "Lorenz Euler step")
}
