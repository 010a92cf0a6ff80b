package history

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"yt-transcribe/cmd/transcribe/cmd/shared"
	"yt-transcribe/internal/app"
	"yt-transcribe/internal/app/model"
	"yt-transcribe/internal/app/transcript"
)

var limit int

func init() {
	Cmd.Flags().IntVarP(&limit, "limit", "n", 20, "number of runs to show, 0 for all")
}

// Cmd represents the history command
var Cmd = &cobra.Command{
	Use:   "history",
	Short: "List recent transcriptions",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := shared.LoadSettings()
		if err != nil {
			return err
		}
		dao, err := app.InitializeHistory(settings)
		if err != nil {
			return err
		}
		defer dao.Close()

		transcriptions, err := dao.List(cmd.Context(), limit)
		if err != nil {
			return err
		}
		if len(transcriptions) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No transcriptions yet.")
			return nil
		}
		return printTable(cmd, transcriptions)
	},
}

func printTable(cmd *cobra.Command, transcriptions []model.Transcription) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "DATE\tDURATION\tENGINE\tTITLE\tOUTPUT")
	for _, t := range transcriptions {
		duration, err := transcript.FormatTimestamp(t.DurationSeconds)
		if err != nil {
			duration = "?"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			t.CreatedAt.Local().Format(time.DateTime), duration, t.Engine, t.Title, t.OutputPath)
	}
	return w.Flush()
}
