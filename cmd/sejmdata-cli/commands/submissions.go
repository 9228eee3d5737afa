package commands

import (
	"os"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(interpellationsCmd)
	rootCmd.AddCommand(questionsCmd)
}

func submissionStatus(answered bool) string {
	if answered {
		return "answered"
	}
	return "pending"
}

var interpellationsCmd = &cobra.Command{
	Use:   "interpellations <mp id>",
	Short: "Prints the interpellations submitted by one MP.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			fatal("parse mp id", err)
		}

		client := newSejmClient()
		interpellations := client.Interpellations(cmd.Context(), id)

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"Num", "Title", "Sent", "Replies", "Status"})
		for _, item := range interpellations {
			t.AppendRow(table.Row{
				item.Num,
				item.Title,
				item.SentDate,
				len(item.Replies),
				submissionStatus(item.Answered()),
			})
		}
		t.SetStyle(table.StyleRounded)
		t.Render()
	},
}

var questionsCmd = &cobra.Command{
	Use:   "questions <mp id>",
	Short: "Prints the written questions submitted by one MP.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			fatal("parse mp id", err)
		}

		client := newSejmClient()
		questions := client.WrittenQuestions(cmd.Context(), id)

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"Num", "Title", "Sent", "Replies", "Status"})
		for _, item := range questions {
			t.AppendRow(table.Row{
				item.Num,
				item.Title,
				item.SentDate,
				len(item.Replies),
				submissionStatus(item.Answered()),
			})
		}
		t.SetStyle(table.StyleRounded)
		t.Render()
	},
}
