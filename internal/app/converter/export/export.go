package export

import (
	"fmt"
	"time"

	"github.com/tealeg/xlsx"

	"yt-transcribe/internal/app/model"
)

const sheetName = "Transcriptions"

var headers = []string{"ID", "Transcribed At", "Title", "Source URL", "Duration (s)", "Segments", "Paragraphs", "Engine", "Output File"}

// ToExcel writes the history records to an .xlsx workbook at outputFilePath.
func ToExcel(transcriptions []model.Transcription, outputFilePath string) error {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet(sheetName)
	if err != nil {
		return err
	}

	headerRow := sheet.AddRow()
	for _, h := range headers {
		headerRow.AddCell().Value = h
	}

	for _, t := range transcriptions {
		row := sheet.AddRow()
		row.AddCell().Value = t.ID
		row.AddCell().Value = t.CreatedAt.Format(time.RFC3339)
		row.AddCell().Value = t.Title
		row.AddCell().Value = t.SourceURL
		row.AddCell().Value = fmt.Sprintf("%.2f", t.DurationSeconds)
		row.AddCell().SetInt(t.SegmentCount)
		row.AddCell().SetInt(t.ParagraphCount)
		row.AddCell().Value = t.Engine
		row.AddCell().Value = t.OutputPath
	}

	if err := file.Save(outputFilePath); err != nil {
		return fmt.Errorf("failed to save %s: %w", outputFilePath, err)
	}
	return nil
}
