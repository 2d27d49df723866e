package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/lottiedoc/pkg/errors"
	"github.com/matzehuels/lottiedoc/pkg/pipeline"
	"github.com/matzehuels/lottiedoc/pkg/render"
)

// stdoutPath selects standard output for -o.
const stdoutPath = "-"

// buildOpts holds the command-line flags for the build command.
type buildOpts struct {
	convertFlags
	output string // output file, base path, directory, or "-"
	jobs   int    // concurrent conversions for multiple inputs
}

// buildCommand creates the build command, which converts scene files into
// documents.
func (c *CLI) buildCommand() *cobra.Command {
	opts := buildOpts{jobs: pipeline.DefaultConcurrency}

	cmd := &cobra.Command{
		Use:   "build <scene.json>...",
		Short: "Convert scene graphs into documents",
		Long: `Convert one or more Lottie scene-graph JSON files into documents.

Outputs are written next to each input by default (scene.json → scene.xml).
With a single input and a single format, -o names the output file and "-o -"
writes to standard output. With several inputs, -o names a directory.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runBuild(cmd.Context(), cmd.OutOrStdout(), args, opts)
		},
	}

	opts.register(cmd, true)
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", `output file, directory, or "-" for stdout`)
	cmd.Flags().IntVarP(&opts.jobs, "jobs", "j", opts.jobs, "concurrent conversions")

	return cmd
}

func (c *CLI) runBuild(ctx context.Context, stdout io.Writer, inputs []string, opts buildOpts) error {
	logger := loggerFromContext(ctx)
	popts, err := c.options(opts.convertFlags)
	if err != nil {
		return err
	}
	if opts.output == stdoutPath && (len(inputs) > 1 || len(popts.Formats) > 1) {
		return errors.New(errors.ErrCodeInvalidInput, "-o - needs exactly one input and one format")
	}

	runner, err := c.newRunner(ctx, opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	if len(inputs) == 1 {
		prog := newProgress(logger)
		result, err := runner.ConvertFile(ctx, inputs[0], popts)
		if err != nil {
			return err
		}
		logResult(logger, inputs[0], result)
		if opts.output == stdoutPath {
			_, err := stdout.Write(result.Artifacts[popts.Formats[0]])
			return err
		}
		paths, err := writeArtifacts(result, inputs[0], opts.output, popts.Formats, false)
		if err != nil {
			return err
		}
		prog.done(fmt.Sprintf("Built %s", inputs[0]))
		for _, p := range paths {
			printFile(p)
		}
		printStats(result.Stats, result.CacheInfo.RenderHit)
		return nil
	}

	if opts.output != "" {
		if err := os.MkdirAll(opts.output, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}

	spin := newSpinnerWithContext(ctx, fmt.Sprintf("Converting %d scenes", len(inputs)))
	spin.Start()
	results, err := runner.ConvertFiles(ctx, inputs, popts, opts.jobs)
	if err != nil {
		spin.StopWithError("Conversion cancelled")
		return err
	}
	spin.StopWithSuccess(fmt.Sprintf("Converted %d scenes", len(inputs)))

	failed := 0
	for _, fr := range results {
		if fr.Err != nil {
			failed++
			printError("%s: %s", fr.Path, errors.UserMessage(fr.Err))
			continue
		}
		logResult(logger, fr.Path, fr.Result)
		paths, err := writeArtifacts(fr.Result, fr.Path, opts.output, popts.Formats, true)
		if err != nil {
			failed++
			printError("%s: %v", fr.Path, err)
			continue
		}
		printSuccess("%s", fr.Path)
		for _, p := range paths {
			printFile(p)
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d scenes failed", failed, len(inputs))
	}
	return nil
}

// writeArtifacts writes each format of result and returns the written paths.
// When dirMode is set, output names a directory.
func writeArtifacts(result *pipeline.Result, input, output string, formats []render.Format, dirMode bool) ([]string, error) {
	base := outputBase(input, output, dirMode)
	var paths []string
	for _, f := range formats {
		path := base + f.Extension()
		if !dirMode && len(formats) == 1 && output != "" {
			path = output
		}
		if filepath.Clean(path) == filepath.Clean(input) {
			path = base + ".doc" + f.Extension()
		}
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return paths, fmt.Errorf("create %s: %w", dir, err)
			}
		}
		if err := os.WriteFile(path, result.Artifacts[f], 0o644); err != nil {
			return paths, fmt.Errorf("write %s: %w", path, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// outputBase derives the output path without extension.
//
// An empty output strips the extension from input. In directory mode the
// input's base name is placed in output. Otherwise a known format extension
// is stripped from output.
func outputBase(input, output string, dirMode bool) string {
	stem := strings.TrimSuffix(input, filepath.Ext(input))
	switch {
	case output == "":
		return stem
	case dirMode:
		return filepath.Join(output, filepath.Base(stem))
	}
	ext := filepath.Ext(output)
	if _, err := render.ParseFormat(strings.TrimPrefix(ext, ".")); err == nil {
		return strings.TrimSuffix(output, ext)
	}
	return output
}
