package commands

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"sejmdata-backend/services/sejm"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(profileCmd)
}

var profileCmd = &cobra.Command{
	Use:   "profile <mp id>",
	Short: "Prints the full profile of one MP.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			fatal("parse mp id", err)
		}

		client := newSejmClient()
		profile, err := client.Profile(cmd.Context(), id)
		if errors.Is(err, sejm.ErrMPNotFound) {
			fmt.Fprintf(os.Stderr, "no MP with id %s\n", sejm.FormatMPID(id))
			os.Exit(1)
		}
		if err != nil {
			fatal("fetch profile", err)
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendRows([]table.Row{
			{"ID", sejm.FormatMPID(profile.ID)},
			{"Name", profile.FirstLastName},
			{"Club", profile.Club},
			{"District", profile.DistrictName},
			{"Age", profile.Age},
			{"Presence", fmt.Sprintf("%d%%", profile.PresencePct)},
			{"Votings", fmt.Sprintf("%d voted / %d missed / %d total",
				profile.Stats.Voted, profile.Stats.Missed, profile.Stats.TotalVotings)},
			{"Interpellations", profile.InterpellationsCount},
			{"Written questions", profile.QuestionsCount},
			{"Financial declaration", profile.FinancialDeclaration != nil},
		})
		t.SetStyle(table.StyleRounded)
		t.Render()
	},
}
