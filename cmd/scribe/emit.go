package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"scribe/internal/driver"
	"scribe/internal/helpers"
	"scribe/internal/printer"
	"scribe/internal/project"
	"scribe/internal/srcmap"
)

const appName = "scribe"

// OutputExt is the extension of emitted files; the position map is
// written next to each output with MapExt appended.
const (
	OutputExt = ".js"
	MapExt    = ".map"
)

var emitCmd = &cobra.Command{
	Use:   "emit [paths...]",
	Short: "Emit JavaScript for lowered tree artifacts",
	Long: `Emit prints every input file as JavaScript. Inputs are ` + driver.SourceExt + ` sources
with a sibling ` + TreeExt + ` artifact holding the lowered tree; directories are
searched recursively. Configuration comes from the nearest ` + project.ManifestName + `,
overridable per flag.`,
	RunE: runEmit,
}

func init() {
	emitCmd.Flags().String("out", "", "directory for emitted files (default: next to inputs)")
	emitCmd.Flags().Bool("source-map", true, "write position-map artifacts next to outputs")
	emitCmd.Flags().Bool("cache", true, "reuse the on-disk emission cache")
	emitCmd.Flags().String("ui", "auto", "interactive progress (auto|on|off)")
	emitCmd.Flags().Bool("isolated", false, "treat every file as its own compilation unit")
	emitCmd.Flags().Int("jobs", 0, "parallel file passes (0 = one per CPU)")
}

func runEmit(cmd *cobra.Command, args []string) error {
	outDir, err := cmd.Flags().GetString("out")
	if err != nil {
		return err
	}
	useCache, err := cmd.Flags().GetBool("cache")
	if err != nil {
		return err
	}
	uiValue, err := cmd.Flags().GetString("ui")
	if err != nil {
		return err
	}
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return err
	}
	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return err
	}
	progress, err := parseProgressMode(uiValue)
	if err != nil {
		return err
	}

	paths, err := collectInputs(args)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		return fmt.Errorf("no %s inputs found", driver.SourceExt)
	}

	opts, sourceMap, err := emitOptions(cmd, filepath.Dir(paths[0]))
	if err != nil {
		return err
	}
	opts.Jobs = jobs
	if useCache {
		cache, err := driver.OpenCache(appName)
		if err != nil {
			return fmt.Errorf("failed to open emission cache: %w", err)
		}
		opts.Cache = cache
	}

	ctx := cmd.Context()
	var results []driver.FileResult
	if progress.interactive() {
		results, err = runEmitWithUI(ctx, "emitting", opts, paths)
	} else {
		d := driver.New(treeFrontend, opts)
		results, err = d.EmitPaths(ctx, paths)
	}
	if err != nil {
		return err
	}

	cached := 0
	for _, res := range results {
		if err := writeOutput(res, outDir, sourceMap); err != nil {
			return err
		}
		if res.Cached {
			cached++
		}
	}
	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "emitted %d file(s), %d from cache\n", len(results), cached)
	}
	return nil
}

// emitOptions merges the nearest manifest with command-line overrides.
// Flags win when set explicitly; otherwise the manifest decides, and a
// missing manifest leaves everything at defaults.
func emitOptions(cmd *cobra.Command, startDir string) (driver.Options, bool, error) {
	var (
		printerOpts printer.Options
		registry    *helpers.Registry
		sourceMap   = true
	)
	manifest, found, err := project.Load(startDir)
	if err != nil {
		return driver.Options{}, false, err
	}
	if found {
		printerOpts = manifest.Config.PrinterOptions()
		registry = manifest.Config.HelperRegistry()
		sourceMap = manifest.Config.SourceMapEnabled()
	}
	if cmd.Flags().Changed("isolated") {
		isolated, err := cmd.Flags().GetBool("isolated")
		if err != nil {
			return driver.Options{}, false, err
		}
		printerOpts.IsolatedModules = isolated
	}
	if cmd.Flags().Changed("source-map") {
		flagged, err := cmd.Flags().GetBool("source-map")
		if err != nil {
			return driver.Options{}, false, err
		}
		sourceMap = flagged
	}
	return driver.Options{Printer: printerOpts, Helpers: registry}, sourceMap, nil
}

// collectInputs expands the argument list into concrete input files.
// Directories are searched recursively; no arguments means the current
// directory.
func collectInputs(args []string) ([]string, error) {
	if len(args) == 0 {
		args = []string{"."}
	}
	var paths []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, fmt.Errorf("failed to stat %q: %w", arg, err)
		}
		if !info.IsDir() {
			paths = append(paths, arg)
			continue
		}
		found, err := driver.ListFiles(arg)
		if err != nil {
			return nil, err
		}
		paths = append(paths, found...)
	}
	return paths, nil
}

// outputPath maps one input path to its emitted file.
func outputPath(input, outDir string) string {
	out := strings.TrimSuffix(input, driver.SourceExt) + OutputExt
	if outDir != "" {
		out = filepath.Join(outDir, filepath.Base(out))
	}
	return out
}

func writeOutput(res driver.FileResult, outDir string, sourceMap bool) error {
	out := outputPath(res.Path, outDir)
	if dir := filepath.Dir(out); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create %q: %w", dir, err)
		}
	}
	if err := os.WriteFile(out, []byte(res.Text), 0o644); err != nil {
		return fmt.Errorf("failed to write %q: %w", out, err)
	}
	if !sourceMap {
		return nil
	}
	mapPath := out + MapExt
	f, err := os.Create(mapPath)
	if err != nil {
		return fmt.Errorf("failed to write %q: %w", mapPath, err)
	}
	if err := srcmap.WriteArtifact(f, res.Path, out, res.Mappings); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to write %q: %w", mapPath, err)
	}
	return f.Close()
}
