package commands

import (
	"fmt"

	"github.com/gantrybuild/gantry/internal/build"
	"github.com/spf13/cobra"
)

func (c *CLI) newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the application version",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("gantry version %s\n", build.Version)
		},
	}
}
