package source

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "yt-transcribe/internal/app/errors"
)

const videoURL = "https://www.youtube.com/watch?v=abc123"

type call struct {
	name string
	args []string
}

type fakeRunner struct {
	calls  []call
	output []byte
	err    error
	onRun  func(args []string)
}

func (f *fakeRunner) run(_ context.Context, name string, args ...string) ([]byte, error) {
	f.calls = append(f.calls, call{name: name, args: args})
	if f.onRun != nil {
		f.onRun(args)
	}
	return f.output, f.err
}

func TestYtDlp_FetchInfo(t *testing.T) {
	runner := &fakeRunner{output: []byte(`{"id":"abc123","title":"Go Concurrency Patterns","duration":1925.0,"webpage_url":"https://www.youtube.com/watch?v=abc123","uploader":"GopherCon"}`)}
	fetcher := NewYtDlp("yt-dlp", runner.run, nil, nil)

	info, err := fetcher.FetchInfo(context.Background(), videoURL)
	require.NoError(t, err)
	assert.Equal(t, "Go Concurrency Patterns", info.Title)
	assert.Equal(t, 1925.0, info.Duration)
	assert.Equal(t, "GopherCon", info.Uploader)

	require.Len(t, runner.calls, 1)
	assert.Equal(t, "yt-dlp", runner.calls[0].name)
	assert.Contains(t, runner.calls[0].args, "--dump-json")
	assert.Contains(t, runner.calls[0].args, "--no-download")
	assert.Equal(t, videoURL, runner.calls[0].args[len(runner.calls[0].args)-1])
}

func TestYtDlp_FetchInfo_TitleFallback(t *testing.T) {
	runner := &fakeRunner{output: []byte(`{"id":"abc123","duration":10}`)}

	var asked string
	pageTitle := func(_ context.Context, url string) (string, error) {
		asked = url
		return "Scraped Title", nil
	}
	info, err := NewYtDlp("yt-dlp", runner.run, pageTitle, nil).FetchInfo(context.Background(), videoURL)
	require.NoError(t, err)
	assert.Equal(t, videoURL, asked)
	assert.Equal(t, "Scraped Title", info.Title)
	assert.Equal(t, videoURL, info.WebpageURL)

	failing := func(context.Context, string) (string, error) { return "", errors.New("offline") }
	info, err = NewYtDlp("yt-dlp", runner.run, failing, nil).FetchInfo(context.Background(), videoURL)
	require.NoError(t, err)
	assert.Empty(t, info.Title)
}

func TestYtDlp_FetchInfo_Errors(t *testing.T) {
	runner := &fakeRunner{err: errors.New("yt-dlp: exit status 1, stderr: ERROR: Video unavailable")}
	_, err := NewYtDlp("yt-dlp", runner.run, nil, nil).FetchInfo(context.Background(), videoURL)
	assert.ErrorIs(t, err, apperrors.ErrFetchFailed)
	assert.Contains(t, err.Error(), "Video unavailable")

	runner = &fakeRunner{output: []byte("not json")}
	_, err = NewYtDlp("yt-dlp", runner.run, nil, nil).FetchInfo(context.Background(), videoURL)
	assert.ErrorIs(t, err, apperrors.ErrFetchFailed)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	runner = &fakeRunner{err: context.Canceled}
	_, err = NewYtDlp("yt-dlp", runner.run, nil, nil).FetchInfo(ctx, videoURL)
	assert.ErrorIs(t, err, apperrors.ErrCancelled)
}

func TestYtDlp_DownloadAudio(t *testing.T) {
	dir := t.TempDir()
	runner := &fakeRunner{onRun: func([]string) {
		// yt-dlp names the file after the post-processed extension.
		_ = os.WriteFile(filepath.Join(dir, "audio.wav"), []byte("RIFF"), 0o644)
	}}

	path, err := NewYtDlp("yt-dlp", runner.run, nil, nil).DownloadAudio(context.Background(), videoURL, dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "audio.wav"), path)

	args := runner.calls[0].args
	assert.Contains(t, args, "-x")
	assert.Contains(t, args, filepath.Join(dir, "audio.%(ext)s"))
}

func TestYtDlp_DownloadAudio_NoWav(t *testing.T) {
	dir := t.TempDir()
	runner := &fakeRunner{onRun: func([]string) {
		_ = os.WriteFile(filepath.Join(dir, "audio.webm"), []byte("x"), 0o644)
	}}

	_, err := NewYtDlp("yt-dlp", runner.run, nil, nil).DownloadAudio(context.Background(), videoURL, dir)
	assert.ErrorIs(t, err, apperrors.ErrDownloadFailed)
	assert.Contains(t, err.Error(), "audio.webm")
}

func TestYtDlp_DownloadAudio_CommandFails(t *testing.T) {
	runner := &fakeRunner{err: errors.New("exit status 1")}
	_, err := NewYtDlp("yt-dlp", runner.run, nil, nil).DownloadAudio(context.Background(), videoURL, t.TempDir())
	assert.ErrorIs(t, err, apperrors.ErrDownloadFailed)
	assert.Contains(t, err.Error(), "--cookies-from-browser")
}
