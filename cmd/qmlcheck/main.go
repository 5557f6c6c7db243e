package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"qmlcheck/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "qmlcheck",
	Short: "Static semantic checker for QML documents",
	Long:  `qmlcheck finds type, property, and binding mistakes in QML files without running them`,
}

func main() {
	rootCmd.Version = version.Colored()

	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(cacheCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().Int("max-diagnostics", 0, "maximum diagnostics per file (0=default)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
