package commands

import (
	"os"

	"sejmdata-backend/services/sejm"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var mpsSearch *string

func init() {
	mpsSearch = mpsCmd.Flags().String("search", "", "Filter MPs by a fuzzy name match.")
	rootCmd.AddCommand(mpsCmd)
}

var mpsCmd = &cobra.Command{
	Use:   "mps [--search <name>]",
	Short: "Prints the current list of MPs.",
	Run: func(cmd *cobra.Command, args []string) {
		client := newSejmClient()

		var mps []sejm.MP
		if *mpsSearch != "" {
			mps = client.FindMPsByName(cmd.Context(), *mpsSearch)
		} else {
			mps = client.MPs(cmd.Context())
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"ID", "Name", "Club", "District", "Active"})
		for _, mp := range mps {
			t.AppendRow(table.Row{
				sejm.FormatMPID(mp.ID),
				mp.FirstLastName,
				mp.Club,
				mp.DistrictName,
				mp.Active,
			})
		}
		t.SetStyle(table.StyleRounded)
		t.Render()
	},
}
