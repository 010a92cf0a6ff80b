package export

import (
	"fmt"

	"github.com/spf13/cobra"

	"yt-transcribe/cmd/transcribe/cmd/shared"
	"yt-transcribe/internal/app"
	"yt-transcribe/internal/app/converter/export"
)

var outputFilePath string

func init() {
	Cmd.Flags().StringVarP(&outputFilePath, "outputFilePath", "o", "", "set outputFilePath")

	Cmd.MarkFlagRequired("outputFilePath")
}

// Cmd represents the export command
var Cmd = &cobra.Command{
	Use:   "export",
	Short: "Export the transcription history to excel",
	Long: `Export the transcription history to excel

- One row per transcribed video, newest first
- Transcripts themselves stay in their markdown files`,
	Args: cobra.NoArgs,
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

		transcriptions, err := dao.List(cmd.Context(), 0)
		if err != nil {
			return err
		}

		if err := export.ToExcel(transcriptions, outputFilePath); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "export finished, exported %d rows to: %v\n", len(transcriptions), outputFilePath)
		return nil
	},
}
