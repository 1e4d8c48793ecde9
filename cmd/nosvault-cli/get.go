package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var getOutput string

var getCmd = &cobra.Command{
	Use:   "get <remote-path>",
	Short: "Download a stored file",
	Long: `Download a file from the server.

Reads are public; any stored path may be fetched without a key. The
file is written to --output, or to stdout if no output is given.`,
	Args: cobra.ExactArgs(1),
	RunE: runGet,
}

func init() {
	getCmd.Flags().StringVarP(&getOutput, "output", "o", "", "write to file instead of stdout")
}

func runGet(cmd *cobra.Command, args []string) error {
	client, err := getClient()
	if err != nil {
		return err
	}

	out := os.Stdout
	if getOutput != "" {
		f, createErr := os.Create(getOutput)
		if createErr != nil {
			return fmt.Errorf("create output file: %w", createErr)
		}
		defer func() { _ = f.Close() }()
		out = f
	}

	contentType, err := client.Download(cmd.Context(), args[0], out)
	if err != nil {
		return err
	}

	if getOutput != "" {
		fmt.Fprintf(os.Stderr, "downloaded %s (%s) to %s\n", args[0], contentType, getOutput)
	}
	return nil
}
