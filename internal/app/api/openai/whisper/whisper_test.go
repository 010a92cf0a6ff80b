package whisper

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "yt-transcribe/internal/app/errors"
	"yt-transcribe/internal/app/model"
)

// TestRemoteRecognizer_Recognize tests the RemoteRecognizer against a mock API server
func TestRemoteRecognizer_Recognize(t *testing.T) {
	tests := []struct {
		name          string
		mockResponse  string
		mockStatus    int
		expected      []model.Segment
		expectError   bool
		errorContains string
	}{
		{
			name:         "successful transcription",
			mockResponse: `{"task":"transcribe","language":"english","duration":8.0,"text":"Hello there. How are you?","segments":[{"id":0,"start":0.0,"end":2.0,"text":" Hello there."},{"id":1,"start":2.2,"end":4.0,"text":" How are you?"}]}`,
			mockStatus:   http.StatusOK,
			expected: []model.Segment{
				{StartSeconds: 0, EndSeconds: 2, Text: "Hello there."},
				{StartSeconds: 2.2, EndSeconds: 4, Text: "How are you?"},
			},
		},
		{
			name:         "no segments",
			mockResponse: `{"task":"transcribe","text":"","segments":[]}`,
			mockStatus:   http.StatusOK,
			expected:     []model.Segment{},
		},
		{
			name:          "API error - unauthorized",
			mockResponse:  `{"error": {"message": "Invalid API key", "type": "invalid_request_error"}}`,
			mockStatus:    http.StatusUnauthorized,
			expectError:   true,
			errorContains: "401",
		},
		{
			name:          "API error - rate limit",
			mockResponse:  `{"error": {"message": "Rate limit exceeded", "type": "rate_limit_error"}}`,
			mockStatus:    http.StatusTooManyRequests,
			expectError:   true,
			errorContains: "429",
		},
		{
			name:          "backwards segment",
			mockResponse:  `{"segments":[{"id":0,"start":5.0,"end":1.0,"text":"oops"}]}`,
			mockStatus:    http.StatusOK,
			expectError:   true,
			errorContains: "invalid time range",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.True(t, strings.Contains(r.Header.Get("Content-Type"), "multipart/form-data"))
				assert.NotEmpty(t, r.Header.Get("Authorization"))

				if err := r.ParseMultipartForm(32 << 20); err != nil {
					t.Errorf("Failed to parse multipart form: %v", err)
				}
				assert.Equal(t, "whisper-1", r.FormValue("model"))
				assert.Equal(t, "verbose_json", r.FormValue("response_format"))

				file, _, err := r.FormFile("file")
				if assert.NoError(t, err) {
					file.Close()
				}

				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.mockStatus)
				w.Write([]byte(tt.mockResponse))
			}))
			defer server.Close()

			config := openai.DefaultConfig("test-api-key")
			config.BaseURL = server.URL + "/v1"
			client := openai.NewClientWithConfig(config)

			rr := NewRemoteRecognizer(client, "", "", nil, nil)

			segments, err := rr.Recognize(context.Background(), createTempAudio(t, 16))

			if tt.expectError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorContains)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, segments)
		})
	}
}

func TestRemoteRecognizer_ErrorKinds(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error": {"message": "Internal server error", "type": "server_error"}}`))
	}))
	defer server.Close()

	config := openai.DefaultConfig("test-api-key")
	config.BaseURL = server.URL + "/v1"
	rr := NewRemoteRecognizer(openai.NewClientWithConfig(config), "", "", nil, nil)

	_, err := rr.Recognize(context.Background(), createTempAudio(t, 16))
	assert.ErrorIs(t, err, apperrors.ErrRecognizeFailed)

	_, err = rr.Recognize(context.Background(), filepath.Join(t.TempDir(), "missing.wav"))
	assert.ErrorIs(t, err, apperrors.ErrRecognizeFailed)

	server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"segments":[{"id":2,"start":-1.0,"end":1.0,"text":"x"}]}`))
	}))
	defer server.Close()
	config.BaseURL = server.URL + "/v1"
	rr = NewRemoteRecognizer(openai.NewClientWithConfig(config), "", "", nil, nil)

	_, err = rr.Recognize(context.Background(), createTempAudio(t, 16))
	var segErr *apperrors.MalformedSegmentError
	require.True(t, errors.As(err, &segErr))
	assert.Equal(t, 3, segErr.Record)

	server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"segments":[{"id":0,"start":0,"end":1,"text":"a"},{"id":1,"start":1,"end":2,"text":"   "}]}`))
	}))
	defer server.Close()
	config.BaseURL = server.URL + "/v1"
	rr = NewRemoteRecognizer(openai.NewClientWithConfig(config), "", "", nil, nil)

	segments, err := rr.Recognize(context.Background(), createTempAudio(t, 16))
	assert.Nil(t, segments)
	require.True(t, errors.As(err, &segErr))
	assert.Equal(t, 2, segErr.Record)
	assert.Equal(t, "missing text", segErr.Reason)
}

func createTempAudio(t *testing.T, size int) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "audio.wav")
	require.NoError(t, os.WriteFile(path, make([]byte, size), 0o644))
	return path
}
