package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/iheanyi/lazyopencode/internal/tui"
	"github.com/iheanyi/lazyopencode/pkg/discovery"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "unknown"
)

var (
	projectRoot      string
	globalConfigPath string
)

var rootCmd = &cobra.Command{
	Use:   "lazyopencode",
	Short: "A lazygit-style TUI for browsing OpenCode customizations",
	Long: `lazyopencode discovers and displays OpenCode customizations: commands,
agents, skills, rules (AGENTS.md), MCP servers, and plugins, from both the
global config (~/.config/opencode) and the current project's .opencode
directory.

It is read-only introspection: nothing is validated, executed, or changed.

Examples:
  lazyopencode                      # Launch the TUI in the current project
  lazyopencode --project ~/src/app  # Browse another project's customizations
  lazyopencode list                 # Plain-text listing
  lazyopencode list --type mcp      # Only MCP servers`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return tui.Run(newService())
	},
}

// newService builds the discovery service from the root flags.
func newService() *discovery.Service {
	return discovery.NewService(projectRoot, globalConfigPath)
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&projectRoot, "project", "", "Project root to inspect (default: current directory)")
	rootCmd.PersistentFlags().StringVar(&globalConfigPath, "global-config", "", "Global OpenCode config directory (default: ~/.config/opencode)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(listCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("lazyopencode version %s (%s)\n", Version, Commit)
	},
}
