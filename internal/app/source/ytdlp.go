// Package source resolves a video URL to its metadata and a local audio file.
package source

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	apperrors "yt-transcribe/internal/app/errors"
	"yt-transcribe/internal/app/model"
	"yt-transcribe/internal/app/util/files"
	"yt-transcribe/internal/app/util/shell"
)

// Fetcher resolves a URL to metadata and downloaded audio.
type Fetcher interface {
	FetchInfo(ctx context.Context, url string) (*model.VideoInfo, error)
	// DownloadAudio stores the audio track as WAV inside dir and returns its path.
	DownloadAudio(ctx context.Context, url string, dir string) (string, error)
}

// YtDlp implements Fetcher with the yt-dlp command line tool.
type YtDlp struct {
	binary    string
	run       shell.Runner
	pageTitle PageTitleFunc
	logger    *zap.Logger
}

// NewYtDlp creates a fetcher around binary. pageTitle is consulted when yt-dlp reports no title and may be nil.
func NewYtDlp(binary string, run shell.Runner, pageTitle PageTitleFunc, logger *zap.Logger) *YtDlp {
	if run == nil {
		run = shell.Exec
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &YtDlp{binary: binary, run: run, pageTitle: pageTitle, logger: logger}
}

func (y *YtDlp) FetchInfo(ctx context.Context, url string) (*model.VideoInfo, error) {
	args := []string{"--dump-json", "--no-download", "--no-warnings", "--no-playlist", url}
	y.logger.Debug("fetching video info", zap.String("command", shell.CommandLine(y.binary, args...)))

	out, err := y.run(ctx, y.binary, args...)
	if err != nil {
		if ctx.Err() != nil {
			return nil, apperrors.ErrCancelled
		}
		return nil, apperrors.Wrap(err, apperrors.ErrFetchFailed.Error())
	}

	var info model.VideoInfo
	if err := json.Unmarshal(out, &info); err != nil {
		return nil, apperrors.Wrap(fmt.Errorf("decode yt-dlp metadata: %w", err), apperrors.ErrFetchFailed.Error())
	}
	if info.WebpageURL == "" {
		info.WebpageURL = url
	}

	if strings.TrimSpace(info.Title) == "" && y.pageTitle != nil {
		title, err := y.pageTitle(ctx, url)
		if err != nil {
			y.logger.Warn("title lookup failed", zap.String("url", url), zap.Error(err))
		} else {
			info.Title = title
		}
	}

	y.logger.Info("fetched video info",
		zap.String("title", info.Title),
		zap.Float64("duration", info.Duration),
		zap.String("id", info.ID))
	return &info, nil
}

func (y *YtDlp) DownloadAudio(ctx context.Context, url string, dir string) (string, error) {
	args := []string{
		"-x",
		"--audio-format", "wav",
		"--audio-quality", "0",
		"-o", filepath.Join(dir, "audio.%(ext)s"),
		"--no-playlist",
		"--no-progress",
		"--no-warnings",
		url,
	}
	y.logger.Debug("downloading audio", zap.String("command", shell.CommandLine(y.binary, args...)))

	if _, err := y.run(ctx, y.binary, args...); err != nil {
		if ctx.Err() != nil {
			return "", apperrors.ErrCancelled
		}
		hint := fmt.Errorf("%w (try browser cookies: %s --cookies-from-browser chrome ...)", err, y.binary)
		return "", apperrors.Wrap(hint, apperrors.ErrDownloadFailed.Error())
	}

	// yt-dlp may rename the output, so look for whatever WAV it produced.
	audioPath, err := files.FindFirstFile(dir, "*.wav")
	if err != nil {
		missing := fmt.Errorf("no wav file in %s (found: %s)", dir, strings.Join(files.ListDir(dir), ", "))
		return "", apperrors.Wrap(missing, apperrors.ErrDownloadFailed.Error())
	}

	y.logger.Info("downloaded audio", zap.String("audio", audioPath))
	return audioPath, nil
}
