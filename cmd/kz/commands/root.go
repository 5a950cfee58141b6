package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	version string
	commit  string
	date    string
)

var (
	boardOverride string
	verbose       bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "kz",
	Short: "KanbanZone API CLI client",
	Long: `kz is a command-line client for the KanbanZone web API.

Every invocation writes exactly one pretty-printed JSON document to stdout:
the command's payload on success, or a uniform error document on failure
(exit code 1).

Credentials and the default board come from the environment:
  KANBANZONE_API_KEY   Raw API key (Base64-encoded automatically)
  KANBANZONE_BOARD_ID  Default board public ID (override with --board)
  KANBANZONE_CONFIG    Optional YAML config file (api_key, board, base_url)`,
	Version: version,
	RunE: func(cmd *cobra.Command, args []string) error {
		return fmt.Errorf("no command specified (see 'kz --help')")
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	// Silence Cobra's default error and usage printing; main renders the
	// uniform JSON error document instead
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
	return rootCmd.Execute()
}

// SetVersionInfo sets the version information for the CLI
func SetVersionInfo(v, c, d string) {
	version = v
	commit = c
	date = d
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", v, c, d)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&boardOverride, "board", "", "Board public ID (overrides KANBANZONE_BOARD_ID)")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Write diagnostics to stderr")
}
