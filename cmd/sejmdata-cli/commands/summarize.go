package commands

import (
	"fmt"
	"os"
	"strconv"

	"sejmdata-backend/services/sejm"
	"sejmdata-backend/services/summarizer"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(summarizeCmd)
}

var summarizeCmd = &cobra.Command{
	Use:   "summarize <mp id> <interpellation num>",
	Short: "Summarizes one interpellation and its reply using OpenAI, with a deterministic fallback.",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			fatal("parse mp id", err)
		}
		num, err := strconv.Atoi(args[1])
		if err != nil {
			fatal("parse interpellation num", err)
		}

		client := newSejmClient()

		var interpellation *sejm.Interpellation
		for _, item := range client.Interpellations(cmd.Context(), id) {
			if item.Num == num {
				interpellation = &item
				break
			}
		}
		if interpellation == nil {
			fmt.Fprintf(os.Stderr, "MP %s has no interpellation %d\n", sejm.FormatMPID(id), num)
			os.Exit(1)
		}

		questionBody := client.InterpellationBody(cmd.Context(), num)

		replyBody := ""
		for _, reply := range interpellation.Replies {
			if reply.Prolongation || reply.Key == "" {
				continue
			}
			replyBody = client.InterpellationReplyBody(cmd.Context(), num, reply.Key)
			break
		}

		summarizerClient := summarizer.NewClient(summarizer.ConfigFromEnv())
		summary := summarizerClient.SummarizeOrFallback(cmd.Context(), questionBody, replyBody)

		fmt.Printf("%s\n\n", interpellation.Title)
		fmt.Printf("Zapytanie: %s\n\n", summary.QuestionSummary)
		fmt.Printf("Odpowiedź: %s\n", summary.ReplySummary)
	},
}
