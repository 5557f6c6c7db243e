package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"qmlcheck/internal/driver"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage the persistent check-result cache",
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Drop every cached check result",
	RunE: func(cmd *cobra.Command, args []string) error {
		cache, err := driver.OpenDiskCache("qmlcheck")
		if err != nil {
			return fmt.Errorf("failed to open disk cache: %w", err)
		}
		if err := cache.DropAll(); err != nil {
			return fmt.Errorf("failed to clear cache: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "cache cleared")
		return nil
	},
}

func init() {
	cacheCmd.AddCommand(cacheClearCmd)
}
