package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// validateCommand creates the validate command. It loads the workspace,
// checks model consistency and materializes every view.
func (c *CLI) validateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <workspace>",
		Short: "Check a workspace definition for errors",
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
			if err := ws.Validate(); err != nil {
				return err
			}
			snaps, err := ws.Snapshots()
			if err != nil {
				return err
			}

			out := newPrinter(cmd.OutOrStdout())
			out.success("%s is valid", args[0])
			out.keyValue("Elements", fmt.Sprint(ws.Model.ElementCount()))
			out.keyValue("Relations", fmt.Sprint(ws.Model.RelationshipCount()))
			out.keyValue("Views", fmt.Sprint(len(snaps)))
			for _, s := range snaps {
				if len(s.Elements) == 0 {
					out.warning("view %q is empty", s.Key)
				}
			}
			out.nextStep("Render it", "archtower render "+args[0])
			return nil
		},
	}
}
