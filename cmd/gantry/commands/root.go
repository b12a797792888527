// Package commands implements the CLI commands for the gantry pipeline runner.
package commands

import (
	"context"

	"github.com/gantrybuild/gantry/internal/app"
	"github.com/gantrybuild/gantry/internal/build"
	"github.com/spf13/cobra"
)

// CLI represents the command line interface for gantry.
type CLI struct {
	app     *app.App
	rootCmd *cobra.Command
}

// New creates a new CLI instance with the given app.
func New(a *app.App) *CLI {
	rootCmd := &cobra.Command{
		Use:           "gantry",
		Short:         "A dependency-aware pipeline runner",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().StringP("config", "c", "gantry.yaml", "Path to the pipeline definition")
	rootCmd.PersistentFlags().IntP("parallelism", "j", 0, "Maximum number of concurrently running activities (0 = one per CPU)")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newRunCmd())
	rootCmd.AddCommand(c.newPlanCmd())
	rootCmd.AddCommand(c.newWatchCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// runOptions collects the flags shared by the run and watch commands.
func runOptions(cmd *cobra.Command) app.RunOptions {
	configPath, _ := cmd.Flags().GetString("config")
	parallelism, _ := cmd.Flags().GetInt("parallelism")
	progress, _ := cmd.Flags().GetBool("progress")
	return app.RunOptions{
		ConfigPath:  configPath,
		Parallelism: parallelism,
		Progress:    progress,
	}
}
