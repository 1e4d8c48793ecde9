package main

import (
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var version = "dev"

var rootCmd = &cobra.Command{
	Version: version,
	Use:     "nosvault",
	Short:   "Per-pubkey file store with Nostr signed-event authentication",
	Long: `Nosvault is a minimal file store: anyone may read, and a client
holding a Nostr keypair may upload into the single directory named
by its public key, authenticated by a signed event.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		readConfig(cmd)
		setupLogging()
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "config file path (default: ./config.yaml)")
	rootCmd.PersistentFlags().String("storage-path", "", "storage directory path (default: ./data, env: NOSVAULT_STORAGE_PATH)")

	_ = viper.BindPFlag("storage.path", rootCmd.PersistentFlags().Lookup("storage-path"))
}

func readConfig(cmd *cobra.Command) {
	configFile, _ := cmd.Flags().GetString("config")
	if configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
	}

	_ = viper.ReadInConfig()

	viper.SetEnvPrefix("NOSVAULT")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
