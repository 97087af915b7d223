package cmd

import (
	"concatlist/pkg/logging"
	"concatlist/pkg/version"

	"github.com/spf13/cobra"
)

// debug enables development logging at debug level.
var debug bool

// RootCmd is the base command when called without any subcommands.
var RootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   version.AppName,
		Short: "Concatenate a project's relevant files into one text file",
		Long: `concatlist scans the current directory, writes the content of every relevant
source and config file into <project>.txt and lists every file and directory
it walked in <project>_estructura.csv.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return logging.Setup(debug, version.AppName, version.Version)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCombine(cmd, logging.Logger)
		},
	}

	root.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
	root.AddCommand(newVersionCmd())
	return root
}

// Execute runs the root command.
func Execute() error {
	return RootCmd.Execute()
}
