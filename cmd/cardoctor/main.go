package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "cardoctor",
		Short:        "Car Doctor booking server",
		SilenceUsage: true,
	}

	cmd.AddCommand(serveCmd(), tokenCmd(), userCmd())
	return cmd
}
