package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	source      string
	destination string
	debug       bool
)

var rootCmd = &cobra.Command{
	Use:   "filebak [source] [destination]",
	Short: "Whenever a file changes, copy its content to a backup file",
	Long: `filebak watches a single file and mirrors it into a destination
directory under the same name, keeping a best-effort backup copy.
It runs until killed.`,
	Args:         cobra.MaximumNArgs(2),
	SilenceUsage: true,
	RunE:         runWatch,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().StringVarP(&source, "source", "s", "", "source file to watch")
	rootCmd.Flags().StringVarP(&destination, "destination", "d", "", "target directory in which the file will be copied")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug mode")
}
