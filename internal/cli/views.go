package cli

import (
	"github.com/spf13/cobra"
)

// viewsCommand creates the views command, which lists the views a
// workspace defines without rendering them.
func (c *CLI) viewsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "views <workspace>",
		Short: "List the views defined in a workspace",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner, err := c.newRunner(true)
			if err != nil {
				return err
			}
			defer runner.Close()

			ws, err := runner.Load(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			out := newPrinter(cmd.OutOrStdout())
			views := ws.Views.Views()
			if len(views) == 0 {
				out.warning("%s defines no views", args[0])
				return nil
			}
			out.title(ws.Name)
			for _, v := range views {
				snap := v.Snapshot()
				out.line(StyleNumber.Render(v.Key()) + " " + StyleDim.Render(v.Kind().String()))
				out.detail("%s", snap.Title)
				out.counts(len(snap.Elements), len(snap.Relationships))
			}
			return nil
		},
	}
}
