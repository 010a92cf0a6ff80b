package app

import (
	"context"

	"go.uber.org/zap"

	"yt-transcribe/internal/app/api"
	"yt-transcribe/internal/app/api/openai"
	"yt-transcribe/internal/app/api/openai/whisper"
	"yt-transcribe/internal/app/api/parakeet"
	"yt-transcribe/internal/app/api/whisper_cpp"
	"yt-transcribe/internal/app/audio"
	"yt-transcribe/internal/app/converter"
	apperrors "yt-transcribe/internal/app/errors"
	"yt-transcribe/internal/app/repository"
	"yt-transcribe/internal/app/repository/sqlite"
	"yt-transcribe/internal/app/source"
	"yt-transcribe/internal/app/transcript"
	"yt-transcribe/internal/app/util/files"
	"yt-transcribe/internal/app/util/shell"
	"yt-transcribe/internal/config"
)

func provideAudioTools(settings *config.Settings, logger *zap.Logger) *audio.Tools {
	return audio.NewTools(settings.Binaries.FFmpeg, settings.Binaries.FFprobe, logger)
}

// provideRecognizer picks the speech-to-text engine named in the settings.
func provideRecognizer(settings *config.Settings, tools *audio.Tools, logger *zap.Logger) (api.Recognizer, error) {
	switch settings.Engine {
	case config.EngineParakeet:
		return parakeet.NewLocalRecognizer(settings.Binaries.Parakeet, shell.Exec, logger), nil
	case config.EngineWhisperCpp:
		return whisper_cpp.NewLocalRecognizer(settings.Binaries.WhisperCpp, settings.WhisperCppModel, settings.Language, tools, logger), nil
	case config.EngineOpenAI:
		client, err := openai.NewClient(settings.OpenAIAPIKey, "")
		if err != nil {
			return nil, err
		}
		return whisper.NewRemoteRecognizer(client, settings.OpenAIModel, settings.Language, tools, logger), nil
	default:
		return nil, apperrors.Wrapf(apperrors.ErrUnknownEngine, "%q", settings.Engine)
	}
}

func provideFetcher(settings *config.Settings, logger *zap.Logger) source.Fetcher {
	return source.NewYtDlp(settings.Binaries.YtDlp, shell.Exec, source.NewPageTitleFunc(nil), logger)
}

func provideGrouper(settings *config.Settings) *transcript.Grouper {
	return transcript.NewGrouper(settings.ParagraphGapSeconds)
}

func provideSanitizer(settings *config.Settings) *files.Sanitizer {
	return &files.Sanitizer{
		MaxLength:   settings.MaxFilenameLength,
		Placeholder: settings.PlaceholderTitle,
		TitleSuffix: settings.TitleSuffix,
		KebabSuffix: settings.KebabSuffix,
	}
}

func provideOptions(settings *config.Settings, progress converter.ProgressConfig) converter.Options {
	return converter.Options{
		Engine:   settings.Engine,
		Progress: converter.NewProgressReporter(progress),
	}
}

// openHistory opens the sqlite history database named in the settings.
func openHistory(settings *config.Settings) (repository.TranscriptionDAO, error) {
	path, err := files.GetAbsolutePath(settings.HistoryDB)
	if err != nil {
		return nil, err
	}
	db, err := sqlite.Open(context.Background(), path)
	if err != nil {
		return nil, err
	}
	return db, nil
}

// provideTranscriptionDAO is openHistory for the pipeline, where history is
// optional: failures are logged and the converter runs without it.
func provideTranscriptionDAO(settings *config.Settings, logger *zap.Logger) repository.TranscriptionDAO {
	if settings.HistoryDB == "" {
		return nil
	}
	dao, err := openHistory(settings)
	if err != nil {
		logger.Warn("history disabled", zap.String("path", settings.HistoryDB), zap.Error(err))
		return nil
	}
	return dao
}
