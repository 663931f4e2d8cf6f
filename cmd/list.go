package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"sparkshelf/config"
	"sparkshelf/handlers"
	"sparkshelf/home"
	"sparkshelf/models"
)

func listCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Fetch and print the published projects",
		Long: `Fetch the published projects once and print them.

Examples:
  # Human-readable table
  sparkshelf list

  # JSON output
  sparkshelf list --json
`,
		RunE: runList,
	}
	cmd.Flags().Bool("json", false, "Output in JSON format")
	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	jsonOutput, _ := cmd.Flags().GetBool("json")

	settings, err := config.FromEnv()
	if err != nil {
		return err
	}
	src, closeSource, err := openSource(cmd.Context(), settings)
	if err != nil {
		return err
	}
	defer closeSource()

	st := home.NewController(src).Load(cmd.Context())
	if st.View() == home.ViewError {
		return fmt.Errorf("%s", st.Err)
	}
	return printProjects(cmd.OutOrStdout(), st.Projects, jsonOutput)
}

func printProjects(w io.Writer, list []models.Project, asJSON bool) error {
	if asJSON {
		if list == nil {
			list = []models.Project{}
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(list)
	}

	fmt.Fprintln(w, home.CountText(len(list)))
	if len(list) == 0 {
		return nil
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tDIFFICULTY\tCOST")
	for _, p := range list {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", p.ID, p.Title, p.Difficulty, handlers.CostLabel(p.Cost))
	}
	return tw.Flush()
}
