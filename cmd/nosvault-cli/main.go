package main

import (
	"os"

	"github.com/spf13/cobra"

	"nosvault/clientcli"
)

var (
	version = "dev"

	cfgFile     string
	profileName string
	server      string
	secretKey   string
)

var rootCmd = &cobra.Command{
	Use:     "nosvault-cli",
	Version: version,
	Short:   "Client for the nosvault file store",
	Long: `nosvault-cli - client for a nosvault server

A keypair owns exactly one remote path: the directory named by its
public key. Uploads are signed with the profile's secret key; downloads
are public and need no key.`,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default: ~/.nosvault/config.yaml)")
	rootCmd.PersistentFlags().StringVarP(&profileName, "profile", "p", "", "profile name (env: NOSVAULT_PROFILE)")
	rootCmd.PersistentFlags().StringVarP(&server, "server", "s", "", "server URL (default: "+clientcli.DefaultEndpoint+", env: NOSVAULT_SERVER)")
	rootCmd.PersistentFlags().StringVarP(&secretKey, "secret-key", "k", "", "nostr secret key, hex (env: NOSVAULT_SECRET_KEY)")

	rootCmd.AddCommand(keygenCmd)
	rootCmd.AddCommand(putCmd)
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(configureCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// configPath resolves the config file location, preferring the flag.
func configPath() (string, error) {
	if cfgFile != "" {
		return cfgFile, nil
	}
	return clientcli.ConfigPath()
}

// buildConfig merges config from the profile file, env vars, and flags
// (flags take precedence).
func buildConfig() (*clientcli.Config, error) {
	cfg := &clientcli.Config{}

	path, err := configPath()
	if err == nil {
		file, loadErr := clientcli.LoadConfigFile(path)
		if loadErr != nil {
			return nil, loadErr
		}

		name := profileName
		if name == "" {
			name = os.Getenv("NOSVAULT_PROFILE")
		}

		if profile, profErr := file.GetProfile(name); profErr == nil {
			cfg.Endpoint = profile.Endpoint
			cfg.SecretKey = profile.SecretKey
		}
	}

	if env := os.Getenv("NOSVAULT_SERVER"); env != "" {
		cfg.Endpoint = env
	}
	if env := os.Getenv("NOSVAULT_SECRET_KEY"); env != "" {
		cfg.SecretKey = env
	}

	if server != "" {
		cfg.Endpoint = server
	}
	if secretKey != "" {
		cfg.SecretKey = secretKey
	}

	return cfg, nil
}

// getClient creates and returns a configured client.
func getClient() (*clientcli.Client, error) {
	cfg, err := buildConfig()
	if err != nil {
		return nil, err
	}

	return clientcli.New(cfg)
}
