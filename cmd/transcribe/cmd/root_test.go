package cmd

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"yt-transcribe/internal/app/converter"
	apperrors "yt-transcribe/internal/app/errors"
	"yt-transcribe/internal/app/transcript"
	"yt-transcribe/internal/app/util/files"
)

func TestCollisionPrompter(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  files.CollisionChoice
	}{
		{name: "overwrite", input: "o\n", want: files.Overwrite},
		{name: "rename upper case", input: "R\n", want: files.Rename},
		{name: "cancel word", input: "cancel\n", want: files.Cancel},
		{name: "retries until valid", input: "x\n\nr\n", want: files.Rename},
		{name: "answer without newline", input: "o", want: files.Overwrite},
		{name: "end of input", input: "", want: files.Cancel},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			prompt := newCollisionPrompter(strings.NewReader(tt.input), &out)

			got, err := prompt(context.Background(), "/tmp/Talk Transcript.md")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Contains(t, out.String(), "File already exists: /tmp/Talk Transcript.md")
		})
	}
}

func TestCollisionPrompter_CancelWhileWaiting(t *testing.T) {
	in, writer := io.Pipe()
	defer writer.Close()

	var out bytes.Buffer
	prompt := newCollisionPrompter(in, &out)

	ctx, cancel := context.WithCancel(context.Background())
	time.AfterFunc(20*time.Millisecond, cancel)

	done := make(chan error, 1)
	go func() {
		_, err := prompt(ctx, "/tmp/Talk Transcript.md")
		done <- err
	}()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, apperrors.ErrCancelled)
	case <-time.After(2 * time.Second):
		t.Fatal("prompt did not return after the context was cancelled")
	}
}

func TestTimestampMode(t *testing.T) {
	assert.Equal(t, transcript.NoTimestamps, timestampMode(false, false))
	assert.Equal(t, transcript.GroupTimestamps, timestampMode(true, false))
	assert.Equal(t, transcript.SegmentTimestamps, timestampMode(false, true))
	assert.Equal(t, transcript.SegmentTimestamps, timestampMode(true, true))
}

func TestReport(t *testing.T) {
	newCmd := func() (*bytes.Buffer, *bytes.Buffer) {
		var stdout, stderr bytes.Buffer
		rootCmd.SetOut(&stdout)
		rootCmd.SetErr(&stderr)
		return &stdout, &stderr
	}
	defer rootCmd.SetOut(nil)
	defer rootCmd.SetErr(nil)

	t.Run("success", func(t *testing.T) {
		stdout, _ := newCmd()
		err := report(context.Background(), rootCmd, zap.NewNop(), &converter.Result{OutputPath: "/tmp/a.md", Paragraphs: 2}, nil)
		require.NoError(t, err)
		assert.Equal(t, "Saved to: /tmp/a.md (2 paragraphs)\n", stdout.String())
	})

	t.Run("cancelled at prompt", func(t *testing.T) {
		_, stderr := newCmd()
		err := report(context.Background(), rootCmd, zap.NewNop(), nil, apperrors.ErrCancelled)
		assert.NoError(t, err)
		assert.Equal(t, "Cancelled.\n", stderr.String())
	})

	t.Run("interrupted", func(t *testing.T) {
		newCmd()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		err := report(ctx, rootCmd, zap.NewNop(), nil, apperrors.ErrCancelled)
		var exitErr *exitError
		require.True(t, errors.As(err, &exitErr))
		assert.Equal(t, exitInterrupted, exitErr.code)
	})

	t.Run("failure", func(t *testing.T) {
		newCmd()
		err := report(context.Background(), rootCmd, zap.NewNop(), nil, apperrors.ErrFetchFailed)
		assert.ErrorIs(t, err, apperrors.ErrFetchFailed)
	})
}
