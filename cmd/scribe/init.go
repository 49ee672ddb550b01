package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"scribe/internal/project"
)

var initCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write a starter emission manifest",
	Long: `Initialize a directory for scribe by writing a ` + project.ManifestName + `
with the default emission settings spelled out. If [path] is omitted,
the current directory is used; a non-existing path will be created.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

const starterManifest = `[emit]
newline = "lf"
indent_width = 4
use_tabs = false
comments = true
source_map = true
isolated_modules = false

# [helpers] overrides replace the body of a built-in shim, keeping its
# name and emission order. Known shims: extends, decorate, metadata,
# param, awaiter, exportStar.
`

func runInit(cmd *cobra.Command, args []string) error {
	target := "."
	if len(args) > 0 && args[0] != "" {
		target = args[0]
	}
	target, err := filepath.Abs(target)
	if err != nil {
		return err
	}

	if st, err := os.Stat(target); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return err
		}
		if err := os.MkdirAll(target, 0o755); err != nil {
			return fmt.Errorf("failed to create %q: %w", target, err)
		}
	} else if !st.IsDir() {
		return fmt.Errorf("%q is not a directory", target)
	}

	manifestPath := filepath.Join(target, project.ManifestName)
	if _, err := os.Stat(manifestPath); err == nil {
		return fmt.Errorf("%s already exists in %q", project.ManifestName, target)
	} else if !errors.Is(err, os.ErrNotExist) {
		return err
	}

	if err := os.WriteFile(manifestPath, []byte(starterManifest), 0o644); err != nil {
		return fmt.Errorf("failed to write %q: %w", manifestPath, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "created %s\n", manifestPath)
	return nil
}
