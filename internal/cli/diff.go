package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/lottiedoc/pkg/doc"
	"github.com/matzehuels/lottiedoc/pkg/errors"
	"github.com/matzehuels/lottiedoc/pkg/render"
)

// diffCommand creates the diff command, which compares the document built
// from a scene with a golden XML file.
func (c *CLI) diffCommand() *cobra.Command {
	var flags convertFlags

	cmd := &cobra.Command{
		Use:   "diff <scene.json> <golden.xml>",
		Short: "Compare a scene's document with a golden XML file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runDiff(cmd.Context(), cmd.OutOrStdout(), args[0], args[1], flags)
		},
	}
	flags.register(cmd, false)
	return cmd
}

func (c *CLI) runDiff(ctx context.Context, out io.Writer, scenePath, goldenPath string, flags convertFlags) error {
	golden, err := readGolden(goldenPath)
	if err != nil {
		return err
	}

	d, err := c.buildDocument(ctx, scenePath, flags)
	if err != nil {
		return err
	}

	diffs := doc.Diff(golden, d)
	if len(diffs) == 0 {
		printSuccess("%s matches %s", scenePath, goldenPath)
		return nil
	}
	printDifferences(out, diffs)
	return errors.New(errors.ErrCodeSnapshotMismatch, "%s differs from %s in %d place(s)", scenePath, goldenPath, len(diffs))
}

func readGolden(path string) (*doc.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeNotFound, err, "open %s", path)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	d, err := render.ParseXML(f)
	if err != nil {
		return nil, fmt.Errorf("golden %s: %w", path, err)
	}
	return d, nil
}

// buildDocument converts a scene file into its document, using the xml cache
// entry when present.
func (c *CLI) buildDocument(ctx context.Context, scenePath string, flags convertFlags) (*doc.Document, error) {
	opts, err := c.xmlOptions(flags)
	if err != nil {
		return nil, err
	}
	runner, err := c.newRunner(ctx, flags.noCache)
	if err != nil {
		return nil, err
	}
	defer runner.Close()

	result, err := runner.ConvertFile(ctx, scenePath, opts)
	if err != nil {
		return nil, err
	}
	return result.XMLDocument()
}
