package main

import (
	"fmt"

	"github.com/nbd-wtf/go-nostr"
	"github.com/spf13/cobra"
)

var keygenCmd = &cobra.Command{
	Use:   "keygen",
	Short: "Generate a new Nostr keypair",
	Long: `Generate a new Nostr keypair.

The public key is the directory the keypair may upload to. Keep the
secret key private; pass it via --secret-key, NOSVAULT_SECRET_KEY, or a
configured profile.`,
	RunE: runKeygen,
}

func runKeygen(cmd *cobra.Command, args []string) error {
	sk := nostr.GeneratePrivateKey()
	pk, err := nostr.GetPublicKey(sk)
	if err != nil {
		return fmt.Errorf("derive public key: %w", err)
	}

	fmt.Printf("secret key: %s\n", sk)
	fmt.Printf("public key: %s\n", pk)
	return nil
}
