package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"scribe/internal/driver"
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Drop the on-disk emission cache",
	Args:  cobra.NoArgs,
	RunE:  runClean,
}

func runClean(cmd *cobra.Command, _ []string) error {
	cache, err := driver.OpenCache(appName)
	if err != nil {
		return fmt.Errorf("failed to open emission cache: %w", err)
	}
	if err := cache.DropAll(); err != nil {
		return fmt.Errorf("failed to drop emission cache: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), "emission cache dropped")
	return nil
}
