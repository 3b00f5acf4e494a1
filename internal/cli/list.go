package cli

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/iheanyi/lazyopencode/pkg/customization"
	"github.com/iheanyi/lazyopencode/pkg/output"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List discovered customizations",
	Long: `List customizations discovered at both configuration levels.

Level indicators in output:
  [G] = global (user-wide, ~/.config/opencode)
  [P] = project (repository-local, .opencode)

Examples:
  lazyopencode list                 # Everything
  lazyopencode list --type command  # Only commands
  lazyopencode list --level project # Only project-level items
  lazyopencode list --json          # Machine-readable output`,
	RunE: runList,
}

var (
	listType  string
	listLevel string
	listJSON  bool
)

func init() {
	listCmd.Flags().StringVarP(&listType, "type", "t", "", "Filter by type (command, agent, skill, rules, mcp, plugin)")
	listCmd.Flags().StringVarP(&listLevel, "level", "l", "", "Filter by level (global, project)")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output as JSON")
}

func runList(cmd *cobra.Command, args []string) error {
	svc := newService()

	customizations := svc.DiscoverAll()
	if listType != "" {
		t, err := customization.ParseType(listType)
		if err != nil {
			if listJSON {
				return output.NewJSONWriter().WriteError(err)
			}
			return err
		}
		customizations = svc.ByType(t)
	}
	if listLevel != "" {
		l, err := customization.ParseLevel(listLevel)
		if err != nil {
			if listJSON {
				return output.NewJSONWriter().WriteError(err)
			}
			return err
		}
		customizations = filterLevel(customizations, l)
	}

	if listJSON {
		out := output.ListOutput{
			ProjectRoot:      svc.ProjectRoot,
			GlobalConfigPath: svc.GlobalConfigPath,
			Customizations:   make([]output.CustomizationInfo, 0, len(customizations)),
		}
		for _, c := range customizations {
			out.Customizations = append(out.Customizations, output.NewCustomizationInfo(c))
		}
		return output.NewJSONWriter().WriteSuccess(out)
	}

	w := output.DefaultWriter()
	if len(customizations) == 0 {
		w.Info("No customizations found")
		return nil
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "TYPE\tLEVEL\tNAME\tDESCRIPTION")
	for _, c := range customizations {
		desc := c.Description
		if c.HasError() {
			desc = "error: " + c.Error
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
			c.TypeLabel(), c.Level.ShortString(), c.Name, firstLine(desc))
	}
	return tw.Flush()
}

func filterLevel(items []*customization.Customization, l customization.Level) []*customization.Customization {
	var out []*customization.Customization
	for _, c := range items {
		if c.Level == l {
			out = append(out, c)
		}
	}
	return out
}

func firstLine(s string) string {
	if idx := strings.IndexByte(s, '\n'); idx >= 0 {
		return s[:idx]
	}
	return s
}
