package converter

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"yt-transcribe/internal/app/api"
	apperrors "yt-transcribe/internal/app/errors"
	"yt-transcribe/internal/app/model"
	"yt-transcribe/internal/app/repository"
	"yt-transcribe/internal/app/source"
	"yt-transcribe/internal/app/transcript"
	"yt-transcribe/internal/app/util/files"
)

// DurationProber measures a local audio file, used when the fetcher reports no duration.
type DurationProber interface {
	GetAudioDuration(ctx context.Context, filePath string) (float64, error)
}

// Options carries the converter settings that are not collaborators.
type Options struct {
	// Engine is recorded in the history.
	Engine string
	// Progress draws the spinner while the recognizer runs. Nil disables it.
	Progress *ProgressReporter
	// WorkDir is where per-run temporary directories are created. Empty means os.TempDir().
	WorkDir string
	Now     func() time.Time
}

// Request describes one URL to transcribe.
type Request struct {
	URL string
	// Output is the transcript path. Empty means the suggested filename inside OutputDir.
	Output     string
	OutputDir  string
	Timestamps transcript.TimestampMode
	Kebab      bool
	Force      bool
	// GapSeconds overrides the converter's paragraph gap when non-nil.
	GapSeconds *float64
	Prompt     files.CollisionPrompter
}

// Result summarizes a finished transcription.
type Result struct {
	OutputPath string
	Title      string
	Segments   int
	Paragraphs int
	Duration   float64
}

type Converter struct {
	fetcher    source.Fetcher
	recognizer api.Recognizer
	prober     DurationProber
	grouper    *transcript.Grouper
	sanitizer  *files.Sanitizer
	db         repository.TranscriptionDAO
	logger     *zap.Logger
	opts       Options
}

// NewConverter assembles the pipeline. prober and db may be nil.
func NewConverter(fetcher source.Fetcher, recognizer api.Recognizer, prober DurationProber,
	grouper *transcript.Grouper, sanitizer *files.Sanitizer, db repository.TranscriptionDAO,
	logger *zap.Logger, opts Options) *Converter {
	if grouper == nil {
		grouper = transcript.NewGrouper(transcript.DefaultParagraphGapSeconds)
	}
	if sanitizer == nil {
		sanitizer = files.NewSanitizer()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Converter{
		fetcher:    fetcher,
		recognizer: recognizer,
		prober:     prober,
		grouper:    grouper,
		sanitizer:  sanitizer,
		db:         db,
		logger:     logger,
		opts:       opts,
	}
}

func (c *Converter) Close() error {
	if c.db == nil {
		return nil
	}
	return c.db.Close()
}

// History returns the most recent runs, newest first.
func (c *Converter) History(ctx context.Context, limit int) ([]model.Transcription, error) {
	if c.db == nil {
		return []model.Transcription{}, nil
	}
	return c.db.List(ctx, limit)
}

// Do runs fetch, recognize, group, render and write for one URL.
func (c *Converter) Do(ctx context.Context, req Request) (*Result, error) {
	if !source.IsYouTubeURL(req.URL) {
		return nil, apperrors.Wrapf(apperrors.ErrInvalidURL, "%q", req.URL)
	}
	logger := c.logger.With(zap.String("url", req.URL))

	info, err := c.fetcher.FetchInfo(ctx, req.URL)
	if err != nil {
		return nil, err
	}

	outputPath, err := c.outputPath(ctx, req, info.Title)
	if err != nil {
		return nil, err
	}
	logger.Info("resolved output path", zap.String("output", outputPath))

	workDir, err := os.MkdirTemp(c.opts.WorkDir, "transcribe-*")
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrFileWriteFailed.Error())
	}
	defer os.RemoveAll(workDir)

	audioPath, err := c.fetcher.DownloadAudio(ctx, req.URL, workDir)
	if err != nil {
		return nil, err
	}

	duration := info.Duration
	if duration <= 0 && c.prober != nil {
		if d, err := c.prober.GetAudioDuration(ctx, audioPath); err != nil {
			logger.Warn("could not probe audio duration", zap.String("audio", audioPath), zap.Error(err))
		} else {
			duration = d
		}
	}

	segments, err := c.recognize(ctx, audioPath)
	if err != nil {
		return nil, err
	}
	logger.Info("recognized speech", zap.String("audio", audioPath), zap.Int("segments", len(segments)))

	grouper := c.grouper
	if req.GapSeconds != nil {
		grouper = transcript.NewGrouper(*req.GapSeconds)
	}
	groups, err := grouper.Group(segments)
	if err != nil {
		return nil, err
	}

	meta := model.TranscriptMetadata{
		Title:           info.Title,
		SourceURL:       info.WebpageURL,
		DurationSeconds: duration,
		TranscribedDate: c.opts.Now(),
	}
	document, err := transcript.Render(meta, groups, transcript.RenderOptions{Timestamps: req.Timestamps})
	if err != nil {
		return nil, err
	}

	if err := files.WriteTranscript(outputPath, document); err != nil {
		return nil, err
	}
	logger.Info("saved transcript",
		zap.String("output", outputPath),
		zap.Int("segments", len(segments)),
		zap.Int("paragraphs", len(groups)))

	result := &Result{
		OutputPath: outputPath,
		Title:      info.Title,
		Segments:   len(segments),
		Paragraphs: len(groups),
		Duration:   duration,
	}
	c.record(ctx, req.URL, result)
	return result, nil
}

func (c *Converter) outputPath(ctx context.Context, req Request, title string) (string, error) {
	path := req.Output
	if path == "" {
		path = filepath.Join(req.OutputDir, c.sanitizer.SuggestedFilename(title, req.Kebab))
	}
	path, err := files.GetAbsolutePath(path)
	if err != nil {
		return "", apperrors.Wrap(err, apperrors.ErrFileWriteFailed.Error())
	}
	return files.ResolveOutputPath(ctx, path, req.Force, req.Prompt)
}

// recognize runs the recognizer with the spinner scoped to the call.
func (c *Converter) recognize(ctx context.Context, audioPath string) ([]model.Segment, error) {
	handle := c.opts.Progress.Start(ctx, "Transcribing")
	segments, err := c.recognizer.Recognize(ctx, audioPath)
	handle.Stop(err == nil)

	if err != nil {
		if ctx.Err() != nil && !errors.Is(err, apperrors.ErrCancelled) {
			return nil, apperrors.ErrCancelled
		}
		return nil, err
	}
	return segments, nil
}

// record stores the run in the history. Failures are only logged.
func (c *Converter) record(ctx context.Context, url string, result *Result) {
	if c.db == nil {
		return
	}
	err := c.db.Record(ctx, &model.Transcription{
		SourceURL:       url,
		Title:           result.Title,
		OutputPath:      result.OutputPath,
		DurationSeconds: result.Duration,
		SegmentCount:    result.Segments,
		ParagraphCount:  result.Paragraphs,
		Engine:          c.opts.Engine,
		CreatedAt:       c.opts.Now().UTC(),
	})
	if err != nil {
		c.logger.Warn("failed to record history", zap.String("url", url), zap.Error(err))
	}
}
