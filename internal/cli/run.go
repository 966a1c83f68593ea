package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/roach88/demokit/internal/demo"
	"github.com/roach88/demokit/internal/trace"
)

// RunOptions holds flags for the run command.
type RunOptions struct {
	*RootOptions
	Token string

	// TokenGenerator allows overriding the run token generator (for
	// testing). If nil, defaults to UUIDv7Generator.
	TokenGenerator trace.RunTokenGenerator
}

// NewRunCommand creates the run command.
func NewRunCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RunOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "run <demo>",
		Short: "Run a demo",
		Long: `Run a registered demo to completion.

The demo's normal output goes to stdout and its diagnostics to stderr,
exactly as the standalone program would emit them. Each run gets a run
token for correlation with transcripts; pass --token to pin it.

Example:
  demokit run faults
  demokit run macros --verbose`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Token, "token", "", "fixed run token (default: generated UUIDv7)")

	return cmd
}

func runDemo(opts *RunOptions, name string, cmd *cobra.Command) error {
	// Configure logging based on verbose flag
	logLevel := slog.LevelWarn
	if opts.Verbose {
		logLevel = slog.LevelDebug
	}
	handler := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
		Level: logLevel,
	})
	logger := slog.New(handler)

	d, err := demo.Get(name)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to resolve demo", err)
	}

	token := opts.Token
	if token == "" {
		gen := opts.TokenGenerator
		if gen == nil {
			gen = trace.UUIDv7Generator{}
		}
		token = gen.Generate()
	}
	logger.Debug("demo starting", "demo", name, "run_token", token)

	// Pass the command's writers straight through: run reproduces the
	// standalone program's output without any capture layer.
	streams := demo.Streams{
		Out: cmd.OutOrStdout(),
		Err: cmd.ErrOrStderr(),
	}

	ctx := cmd.Context()
	if err := d.Run(ctx, streams); err != nil {
		return WrapExitError(ExitFailure, "demo aborted", err)
	}

	logger.Debug("demo finished", "demo", name, "run_token", token)
	return nil
}
