//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"
	"go.uber.org/zap"

	"yt-transcribe/internal/app/audio"
	"yt-transcribe/internal/app/converter"
	"yt-transcribe/internal/app/repository"
	"yt-transcribe/internal/config"
)

func InitializeConverter(settings *config.Settings, logger *zap.Logger, progress converter.ProgressConfig) (*converter.Converter, error) {
	wire.Build(
		converter.NewConverter,
		provideAudioTools,
		provideRecognizer,
		provideFetcher,
		provideGrouper,
		provideSanitizer,
		provideTranscriptionDAO,
		provideOptions,
		wire.Bind(new(converter.DurationProber), new(*audio.Tools)),
	)
	return &converter.Converter{}, nil
}

func InitializeHistory(settings *config.Settings) (repository.TranscriptionDAO, error) {
	wire.Build(openHistory)
	return nil, nil
}
