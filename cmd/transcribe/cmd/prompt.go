package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	apperrors "yt-transcribe/internal/app/errors"
	"yt-transcribe/internal/app/util/files"
)

type promptLine struct {
	text string
	err  error
}

// newCollisionPrompter asks on out and reads the answer from in. End of input
// cancels; a done ctx returns ErrCancelled without waiting for the answer.
func newCollisionPrompter(in io.Reader, out io.Writer) files.CollisionPrompter {
	reader := bufio.NewReader(in)
	return func(ctx context.Context, path string) (files.CollisionChoice, error) {
		fmt.Fprintf(out, "\nFile already exists: %s\n", path)
		for {
			fmt.Fprint(out, "[o] Overwrite  [r] Rename  [c] Cancel: ")
			line, err := readLine(ctx, reader)
			if ctx.Err() != nil {
				fmt.Fprintln(out)
				return files.Cancel, apperrors.ErrCancelled
			}
			switch strings.ToLower(strings.TrimSpace(line)) {
			case "o", "overwrite":
				return files.Overwrite, nil
			case "r", "rename":
				return files.Rename, nil
			case "c", "cancel":
				return files.Cancel, nil
			}
			if err != nil {
				fmt.Fprintln(out)
				return files.Cancel, nil
			}
		}
	}
}

// readLine reads one line in the background so a blocked terminal read does
// not hold up cancellation. The read goroutine stays parked on in until it
// returns.
func readLine(ctx context.Context, reader *bufio.Reader) (string, error) {
	result := make(chan promptLine, 1)
	go func() {
		text, err := reader.ReadString('\n')
		result <- promptLine{text: text, err: err}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line := <-result:
		return line.text, line.err
	}
}
