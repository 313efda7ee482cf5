// Package main is the shop CLI: it serves the exercise pages and runs the
// calculators against local files.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "shop",
	Short: "Classroom shop: cart, loyalty, renewal and form pages",
	Long: `shop hosts the classroom exercises behind one HTTP service.

Run "shop serve" to start the pages and JSON API, or use the
products, loyalty and renewal commands to run a calculator offline.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(serveCmd, productsCmd, loyaltyCmd, renewalCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
