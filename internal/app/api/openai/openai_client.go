package openai

import (
	"github.com/sashabaranov/go-openai"

	apperrors "yt-transcribe/internal/app/errors"
)

// NewClient returns an OpenAI client for apiKey. baseURL overrides the API
// endpoint when set.
func NewClient(apiKey string, baseURL string) (*openai.Client, error) {
	if apiKey == "" {
		return nil, apperrors.Wrap(apperrors.ErrMissingAPIKey, "OPENAI_API_KEY environment variable not set")
	}
	config := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = baseURL
	}
	return openai.NewClientWithConfig(config), nil
}
