package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Version information - will be set at build time
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
	GoVersion = "unknown"
)

var noColor bool

func main() {
	rootCmd := &cobra.Command{
		Use:   "annodex",
		Short: "Annotation index query tooling",
		Long: `Annodex builds and queries in-memory annotation indexes over compiled
type metadata. The query commands operate on the bundled sample index;
embedding applications assemble their own index through the library API.`,
	}

	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(classesCmd)
	rootCmd.AddCommand(fieldsCmd)
	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(serveCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
