package main

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/nbd-wtf/go-nostr"
	"github.com/spf13/cobra"

	"nosvault/clientcli"
)

var configureCmd = &cobra.Command{
	Use:   "configure",
	Short: "Manage server profiles",
	Long: `Manage server profiles in the configuration file.

Profiles save connection settings for multiple nosvault servers; switch
between them with --profile or NOSVAULT_PROFILE.

Configuration is stored in ~/.nosvault/config.yaml`,
}

var configureListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all configured profiles",
	Long: `List all profiles configured in the config file.

The default profile is marked with an asterisk (*).`,
	RunE: runConfigureList,
}

var configureAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a new profile",
	Long: `Add a new profile interactively.

You will be prompted for:
  - Endpoint URL
  - Secret key (hex, may be left empty for a read-only profile)
  - Whether to set as default`,
	Args: cobra.ExactArgs(1),
	RunE: runConfigureAdd,
}

var configureRemoveCmd = &cobra.Command{
	Use:     "remove <name>",
	Aliases: []string{"rm"},
	Short:   "Remove a profile",
	Args:    cobra.ExactArgs(1),
	RunE:    runConfigureRemove,
}

var configureSetDefaultCmd = &cobra.Command{
	Use:   "set-default <name>",
	Short: "Set the default profile",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigureSetDefault,
}

var showSecrets bool

func init() {
	configureCmd.AddCommand(configureListCmd)
	configureCmd.AddCommand(configureAddCmd)
	configureCmd.AddCommand(configureRemoveCmd)
	configureCmd.AddCommand(configureSetDefaultCmd)

	configureListCmd.Flags().BoolVar(&showSecrets, "show-secrets", false, "show secret values")
}

func runConfigureList(cmd *cobra.Command, args []string) error {
	path, err := configPath()
	if err != nil {
		return err
	}

	file, err := clientcli.LoadConfigFile(path)
	if err != nil {
		return err
	}

	if len(file.Profiles) == 0 {
		fmt.Println("no profiles configured")
		return nil
	}

	def, _ := file.GetDefaultProfile()
	for _, p := range file.Profiles {
		marker := " "
		if def != nil && p.Name == def.Name {
			marker = "*"
		}
		secret := maskSecret(p.SecretKey)
		if showSecrets {
			secret = p.SecretKey
		}
		fmt.Printf("%s %-16s %-32s %s\n", marker, p.Name, p.Endpoint, secret)
	}
	return nil
}

func runConfigureAdd(cmd *cobra.Command, args []string) error {
	name := args[0]

	path, err := configPath()
	if err != nil {
		return err
	}

	file, err := clientcli.LoadConfigFile(path)
	if err != nil {
		return err
	}

	endpointPrompt := promptui.Prompt{
		Label:   "Endpoint URL",
		Default: clientcli.DefaultEndpoint,
		Validate: func(s string) error {
			u, parseErr := url.Parse(s)
			if parseErr != nil || u.Scheme == "" || u.Host == "" {
				return errors.New("must be a valid http(s) URL")
			}
			return nil
		},
	}
	endpoint, err := endpointPrompt.Run()
	if err != nil {
		return err
	}

	secretPrompt := promptui.Prompt{
		Label: "Secret key (hex, empty for read-only)",
		Mask:  '*',
		Validate: func(s string) error {
			if s == "" {
				return nil
			}
			if _, keyErr := nostr.GetPublicKey(strings.TrimSpace(s)); keyErr != nil {
				return errors.New("must be a 64-character hex secret key")
			}
			return nil
		},
	}
	secret, err := secretPrompt.Run()
	if err != nil {
		return err
	}

	defaultPrompt := promptui.Prompt{
		Label:     "Set as default profile",
		IsConfirm: true,
	}
	_, confirmErr := defaultPrompt.Run()
	makeDefault := confirmErr == nil

	profile := clientcli.Profile{
		Name:      name,
		Endpoint:  strings.TrimSuffix(endpoint, "/"),
		SecretKey: strings.TrimSpace(secret),
		Default:   makeDefault,
	}

	if err := file.AddProfile(profile); err != nil {
		return err
	}
	if makeDefault {
		if err := file.SetDefault(name); err != nil {
			return err
		}
	}

	if err := clientcli.SaveConfigFile(path, file); err != nil {
		return err
	}

	fmt.Printf("profile %q saved to %s\n", name, path)
	return nil
}

func runConfigureRemove(cmd *cobra.Command, args []string) error {
	path, err := configPath()
	if err != nil {
		return err
	}

	file, err := clientcli.LoadConfigFile(path)
	if err != nil {
		return err
	}

	if err := file.RemoveProfile(args[0]); err != nil {
		return err
	}

	if err := clientcli.SaveConfigFile(path, file); err != nil {
		return err
	}

	fmt.Printf("profile %q removed\n", args[0])
	return nil
}

func runConfigureSetDefault(cmd *cobra.Command, args []string) error {
	path, err := configPath()
	if err != nil {
		return err
	}

	file, err := clientcli.LoadConfigFile(path)
	if err != nil {
		return err
	}

	if err := file.SetDefault(args[0]); err != nil {
		return err
	}

	if err := clientcli.SaveConfigFile(path, file); err != nil {
		return err
	}

	fmt.Printf("default profile set to %q\n", args[0])
	return nil
}

func maskSecret(s string) string {
	if s == "" {
		return "-"
	}
	if len(s) <= 8 {
		return "********"
	}
	return s[:4] + "..." + s[len(s)-4:]
}
