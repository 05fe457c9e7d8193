package cmd

import (
	"encoding/hex"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/umitkrkmz/ChaoticEngine/chaos"
	"github.com/umitkrkmz/ChaoticEngine/counter/period"
	"github.com/umitkrkmz/ChaoticEngine/stream"
)

var (
	inPath  string
	outPath string
)

// encryptCmd represents the encrypt command. The cipher is an involution,
// so the same command decrypts: pass the ciphertext and the original IV.
var encryptCmd = &cobra.Command{
	Use:     "encrypt",
	Aliases: []string{"decrypt"},
	Short:   "Encrypt or decrypt a file with the chaotic stream cipher",
	Long: `Encrypt or decrypt a file with the chaotic stream cipher, For example:
  chaoticengine encrypt --map=int-lorenz --key-file=key.bin --in=plain.bin --out=cipher.bin
  chaoticengine decrypt --map=int-lorenz --key-file=key.bin --iv-hex=<printed iv> --in=cipher.bin --out=plain.bin`,
	RunE: func(cmd *cobra.Command, args []string) error {
		m, ok := chaos.ParseMap(mapName)
		if !ok || !m.Integer() {
			return fmt.Errorf("--map must name an integer map, got %q", mapName)
		}
		key, err := loadKey()
		if err != nil {
			return err
		}
		iv, generated, err := loadIV()
		if err != nil {
			return err
		}
		if generated {
			if cmd.CalledAs() == "decrypt" {
				return fmt.Errorf("decrypt needs the --iv-hex the data was encrypted with")
			}
			log.Println("iv:", hex.EncodeToString(iv))
		}

		in, err := os.Open(inPath)
		if err != nil {
			return err
		}
		defer in.Close()
		out, err := os.Create(outPath)
		if err != nil {
			return err
		}
		defer out.Close()

		s, err := stream.New(out, m, key, iv)
		if err != nil {
			return err
		}

		c := period.NewPeriodCounter(time.Second)
		buf := make([]byte, 64<<10)
		start := time.Now()
		for {
			n, rerr := in.Read(buf)
			if n > 0 {
				if _, werr := s.Write(buf[:n]); werr != nil {
					return werr
				}
				c.Add(int64(n))
			}
			if rerr == io.EOF {
				break
			}
			if rerr != nil {
				return rerr
			}
		}
		log.Printf("%d bytes in %v", c.Value(), time.Since(start))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(encryptCmd)

	flags := encryptCmd.Flags()
	flags.StringVar(&inPath, "in", "", "input file")
	flags.StringVar(&outPath, "out", "", "output file")
	flags.StringVar(&keyFile, "key-file", "", "key file (first 32 bytes; prompt if absent)")
	flags.StringVar(&ivHex, "iv-hex", "", "base IV as hex (random if absent)")
	encryptCmd.MarkFlagRequired("in")
	encryptCmd.MarkFlagRequired("out")
}
