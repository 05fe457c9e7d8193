package cmd

import (
	"fmt"
	"log"
	"time"

	"github.com/spf13/cobra"

	"github.com/umitkrkmz/ChaoticEngine/chaos"
	"github.com/umitkrkmz/ChaoticEngine/counter/period"
	"github.com/umitkrkmz/ChaoticEngine/crypt/chaotic"
	"github.com/umitkrkmz/ChaoticEngine/relay"
)

var (
	listenAddress           string
	connectAddress          string
	tunServerListenAddress  string
	tunClientConnectAddress string
)

// tunnelCmd represents the tunnel command
var tunnelCmd = &cobra.Command{
	Use:   "tunnel",
	Short: "Relay a TCP stream through an encrypted tunnel",
	Long: `Relay a TCP stream through an encrypted tunnel, For example:
  chaoticengine tunnel --tunnel-listen=ws://0.0.0.0:8080/stream --connect=127.0.0.1:3128 --key-file=key.bin
  chaoticengine tunnel --listen=127.0.0.1:5600 --tunnel-connect=ws://123.45.67.89:8080/stream --key-file=key.bin`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if tunClientConnectAddress != "" && tunServerListenAddress != "" {
			return fmt.Errorf("cannot specify both --tunnel-connect and --tunnel-listen")
		}
		if tunClientConnectAddress == "" && tunServerListenAddress == "" {
			return fmt.Errorf("must specify either --tunnel-connect or --tunnel-listen")
		}

		m, ok := chaos.ParseMap(mapName)
		if !ok || !m.Integer() {
			return fmt.Errorf("--map must name an integer map, got %q", mapName)
		}
		key, err := loadKey()
		if err != nil {
			return err
		}
		iv, _, err := loadIV()
		if err != nil {
			return err
		}
		c, err := chaotic.NewCrypt(key, iv, chaotic.WithMap(m))
		if err != nil {
			return err
		}

		r := relay.New(
			relay.WithListenAddress(listenAddress),
			relay.WithConnectAddress(connectAddress),
			relay.WithTunListenAddress(tunServerListenAddress),
			relay.WithTunConnectAddress(tunClientConnectAddress),
			relay.WithCrypt(c),
			relay.WithUploadCounter(period.NewPeriodCounter(time.Second)),
			relay.WithDownloadCounter(period.NewPeriodCounter(time.Second)),
		)

		// backoff
		var tempDelay time.Duration
		for {
			err := r.Serve()
			if err == nil {
				return nil
			}
			if tempDelay == 0 {
				tempDelay = 5 * time.Millisecond
			} else {
				tempDelay *= 2
			}
			if max := 1 * time.Second; tempDelay > max {
				tempDelay = max
			}
			log.Printf("relay error: %v; retrying in %v", err, tempDelay)
			time.Sleep(tempDelay)
		}
	},
}

func init() {
	rootCmd.AddCommand(tunnelCmd)

	flags := tunnelCmd.Flags()
	flags.StringVar(&listenAddress, "listen", relay.DefaultListenAddress, "local TCP listen address (entry side)")
	flags.StringVar(&connectAddress, "connect", relay.DefaultConnectAddress, "target TCP address (exit side)")
	flags.StringVar(&tunServerListenAddress, "tunnel-listen", "", "tunnel listen address, e.g. ws://0.0.0.0:8080/stream")
	flags.StringVar(&tunClientConnectAddress, "tunnel-connect", "", "tunnel connect address, e.g. ws://host:8080/stream")
	flags.StringVar(&keyFile, "key-file", "", "key file (first 32 bytes; prompt if absent)")
	flags.StringVar(&ivHex, "iv-hex", "", "base IV as hex (random if absent; both ends must match)")
}
