package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var putCmd = &cobra.Command{
	Use:   "put <file>",
	Short: "Upload a file into your namespace",
	Long: `Upload a local file to the server.

The remote path is always the directory named by your public key; the
upload is authenticated with a signed event built from your secret key.`,
	Args: cobra.ExactArgs(1),
	RunE: runPut,
}

func runPut(cmd *cobra.Command, args []string) error {
	client, err := getClient()
	if err != nil {
		return err
	}

	remotePath, err := client.Upload(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	fmt.Printf("uploaded %s to %s\n", args[0], remotePath)
	return nil
}
