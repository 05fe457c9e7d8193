package cmd

import (
	"log"
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string

	// Shared flags
	mapName string
	keyFile string
	ivHex   string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "chaoticengine",
	Short: "Chaotic dynamical systems and a chaotic stream cipher.",
	Long: `Chaotic dynamical systems and a chaotic stream cipher.
Repo: https://github.com/umitkrkmz/ChaoticEngine
Encrypt a file, dump a trajectory, draw random bytes or relay an
encrypted stream, For example:
  chaoticengine encrypt --map=int-lorenz --key-file=key.bin --in=plain.bin --out=cipher.bin
  chaoticengine gen --map=lorenz -n 50000 > lorenz.csv
  chaoticengine rand -n 32
  chaoticengine tunnel --tunnel-listen=ws://0.0.0.0:8080/stream --connect=127.0.0.1:3128 --key-file=key.bin`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.chaoticengine.yaml)")
	rootCmd.PersistentFlags().StringVar(&mapName, "map", "int-tent", "chaotic map")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		if err != nil {
			log.Println(err)
			os.Exit(1)
		}

		// Search config in home directory with name ".chaoticengine" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigName(".chaoticengine")
	}

	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		log.Println("Using config file:", viper.ConfigFileUsed())
	}
}
