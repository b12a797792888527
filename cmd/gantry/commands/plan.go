package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newPlanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "plan",
		Short: "Print the activities in schedule order without running them",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			order, err := c.app.Plan(cmd.Context(), configPath)
			if err != nil {
				return err
			}
			for i, name := range order {
				fmt.Printf("%d. %s\n", i+1, name)
			}
			return nil
		},
	}
}
