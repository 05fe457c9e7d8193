package cmd

import (
	"encoding/hex"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/umitkrkmz/ChaoticEngine/chaos"
	"github.com/umitkrkmz/ChaoticEngine/rng"
)

var (
	randN   int
	randHex bool
)

// randCmd represents the rand command
var randCmd = &cobra.Command{
	Use:   "rand",
	Short: "Emit random bytes from the chaotic keystream",
	Long: `Emit random bytes from the chaotic keystream, For example:
  chaoticengine rand -n 32
  chaoticengine rand -n 1048576 --hex=false > random.bin`,
	RunE: func(cmd *cobra.Command, args []string) error {
		m, ok := chaos.ParseMap(mapName)
		if !ok || !m.Integer() {
			return fmt.Errorf("--map must name an integer map, got %q", mapName)
		}
		if randN <= 0 {
			return fmt.Errorf("-n must be positive")
		}

		r, err := rng.New(rng.WithMap(m))
		if err != nil {
			return err
		}
		buf := make([]byte, randN)
		r.Fill(buf)

		if randHex {
			fmt.Println(hex.EncodeToString(buf))
			return nil
		}
		_, err = os.Stdout.Write(buf)
		return err
	},
}

func init() {
	rootCmd.AddCommand(randCmd)

	flags := randCmd.Flags()
	flags.IntVarP(&randN, "count", "n", 32, "bytes to emit")
	flags.BoolVar(&randHex, "hex", true, "hex-encode the output")
}
