package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// browseCommand creates the browse command, an interactive explorer for the
// document built from a scene.
func (c *CLI) browseCommand() *cobra.Command {
	var flags convertFlags

	cmd := &cobra.Command{
		Use:   "browse <scene.json>",
		Short: "Explore the document of a scene interactively",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			d, err := c.buildDocument(ctx, args[0], flags)
			if err != nil {
				return err
			}
			p := tea.NewProgram(NewDocumentModel(d), tea.WithAltScreen(), tea.WithContext(ctx))
			_, err = p.Run()
			return err
		},
	}
	flags.register(cmd, false)
	return cmd
}
