package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/roach88/demokit/internal/demo"
)

// DemoInfo is the JSON payload for one registered demo.
type DemoInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List registered demos",
		Long: `List every registered demo with its description.

Example:
  demokit list
  demokit list --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return listDemos(rootOpts, cmd)
		},
	}

	return cmd
}

func listDemos(opts *RootOptions, cmd *cobra.Command) error {
	demos := demo.All()

	if opts.Format == "json" {
		infos := make([]DemoInfo, len(demos))
		for i, d := range demos {
			infos[i] = DemoInfo{Name: d.Name(), Description: d.Description()}
		}
		formatter := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
		return formatter.Success(infos)
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	for _, d := range demos {
		fmt.Fprintf(w, "%s\t%s\n", d.Name(), d.Description())
	}
	return w.Flush()
}
