// Package main is the entry point for the toon-tailor server and client
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/toon-tailor/cmd/server/client"
)

var rootCmd = &cobra.Command{
	Use:   "toon-tailor",
	Short: "Toon Tailor character creator",
	Long:  `Toon Tailor serves a gRPC API for building, generating, importing, and exporting RPG characters.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(client.ClientCmd)
}
