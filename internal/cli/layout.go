package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	lcerrors "github.com/matzehuels/linkchart/pkg/errors"
	"github.com/matzehuels/linkchart/pkg/graph"
	lcio "github.com/matzehuels/linkchart/pkg/io"
	"github.com/matzehuels/linkchart/pkg/layout"
	"github.com/matzehuels/linkchart/pkg/pipeline"
)

// layoutFlags holds the flags of the layout command. Zero values defer to
// the config file.
type layoutFlags struct {
	layout  string
	seed    uint64
	width   float64
	height  float64
	output  string
	format  string
	refresh bool
	noCache bool
}

// layoutCommand creates the layout command for computing chart positions.
func (c *CLI) layoutCommand() *cobra.Command {
	var flags layoutFlags

	cmd := &cobra.Command{
		Use:   "layout [graph.json]",
		Short: "Compute node positions for a link chart",
		Long: `Compute node positions for a link chart.

The input is a JSON or YAML graph with "items" and "links". The output is a
result file with the strategy that ran and one position per item. Pass
--width and --height to also compute the zoom and pan that fit the chart in
a viewport.

Use "-" as input to read JSON from stdin. Without --output the result is
written next to the input as <input>.layout.json, or to stdout for stdin.

Results are cached; --refresh recomputes and --no-cache skips the cache.`,
		Args: cobra.ExactArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			return []string{"json", "yaml", "yml"}, cobra.ShellCompDirectiveFilterFileExt
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runLayout(cmd, args[0], flags)
		},
	}

	cmd.Flags().StringVarP(&flags.layout, "layout", "l", "", "layout strategy (see 'linkchart layouts')")
	cmd.Flags().Uint64Var(&flags.seed, "seed", 0, "seed for the force layout (0 = random)")
	cmd.Flags().Float64Var(&flags.width, "width", 0, "viewport width for the fit transform")
	cmd.Flags().Float64Var(&flags.height, "height", 0, "viewport height for the fit transform")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "output file, or - for stdout")
	cmd.Flags().StringVarP(&flags.format, "format", "f", "", "output format: json, yaml (default: from output extension)")
	cmd.Flags().BoolVar(&flags.refresh, "refresh", false, "recompute even if a cached result exists")
	cmd.Flags().BoolVar(&flags.noCache, "no-cache", false, "disable caching")

	_ = cmd.RegisterFlagCompletionFunc("layout", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return layout.Names(), cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

// runLayout loads the graph, computes the layout, and writes output.
func (c *CLI) runLayout(cmd *cobra.Command, input string, flags layoutFlags) error {
	ctx := cmd.Context()
	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}

	g, err := lcio.ImportGraph(input)
	if err != nil {
		return fmt.Errorf("load graph %s: %w", input, err)
	}

	opts := layoutOptions(cfg)
	if flags.layout != "" {
		opts.Layout = flags.layout
	}
	if flags.seed != 0 {
		opts.Seed = flags.seed
	}
	opts.Width, opts.Height = flags.width, flags.height
	opts.Refresh = flags.refresh
	opts.Logger = c.Logger

	runner, err := c.newRunner(ctx, cfg, flags.noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	res, err := c.computeLayout(ctx, opts.Layout, func() (*pipeline.Result, error) {
		return runner.Run(ctx, g, opts)
	})
	if err != nil {
		return err
	}

	outputPath := resolveOutput(input, flags.output)
	format, err := resolveFormat(flags.format, outputPath)
	if err != nil {
		return err
	}

	if outputPath == "-" {
		return lcio.WriteResult(cmd.OutOrStdout(), res.Output(), format)
	}
	if err := writeResultFile(res.Output(), outputPath, format); err != nil {
		return err
	}

	printSuccess("Layout complete")
	printFile(outputPath)
	printStats(res.Layout, res.Stats.Items, res.Stats.Links, res.CacheHit)
	if res.Transform == nil {
		printNewline()
		printNextStep("Fit to a viewport", fmt.Sprintf("%s fit %s --width %g --height %g", appName, outputPath, pipeline.DefaultWidth, pipeline.DefaultHeight))
	}
	return nil
}

// computeLayout runs fn behind a spinner, logging the elapsed time.
func (c *CLI) computeLayout(ctx context.Context, name string, fn func() (*pipeline.Result, error)) (*pipeline.Result, error) {
	if !layout.Known(name) {
		name = layout.DefaultName
	}
	prog := newProgress(c.Logger)
	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Computing %s layout...", name))
	spinner.Start()

	res, err := fn()
	if err != nil {
		spinner.StopWithError("Layout failed")
		return nil, fmt.Errorf("compute layout: %w", err)
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	prog.done(fmt.Sprintf("Laid out %d items with %s", res.Stats.Items, res.Layout))
	return res, nil
}

// resolveOutput picks the output path: the flag, stdout for stdin input,
// or <input>.layout.json.
func resolveOutput(input, output string) string {
	if output != "" {
		return output
	}
	if input == "-" {
		return "-"
	}
	base := strings.TrimSuffix(input, filepath.Ext(input))
	return base + ".layout.json"
}

// resolveFormat maps the --format flag, falling back to the output
// extension.
func resolveFormat(name, outputPath string) (lcio.Format, error) {
	if name == "" {
		return lcio.FormatFromPath(outputPath), nil
	}
	format, ok := lcio.ParseFormat(name)
	if !ok {
		return "", lcerrors.New(lcerrors.ErrCodeInvalidInput, "unknown format %q (want json or yaml)", name)
	}
	return format, nil
}

// writeResultFile writes res to path in the given format, which may differ
// from the one the extension implies.
func writeResultFile(res graph.Result, path string, format lcio.Format) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := lcio.WriteResult(f, res, format); err != nil {
		f.Close()
		return fmt.Errorf("write output %s: %w", path, err)
	}
	return f.Close()
}
