package testutil

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	"yt-transcribe/internal/app/api"
	"yt-transcribe/internal/app/model"
	"yt-transcribe/internal/app/repository"
	"yt-transcribe/internal/app/source"
)

var (
	_ source.Fetcher              = (*MockFetcher)(nil)
	_ api.Recognizer              = (*MockRecognizer)(nil)
	_ repository.TranscriptionDAO = (*MockTranscriptionDAO)(nil)
)

// MockFetcher is a mock implementation of the Fetcher interface. DownloadAudio
// writes a small placeholder WAV into the requested directory.
type MockFetcher struct {
	info          model.VideoInfo
	infoErr       error
	downloadErr   error
	infoCalls     int
	downloadCalls int
	lastDir       string
}

// NewMockFetcher creates a MockFetcher returning TestVideoInfo
func NewMockFetcher() *MockFetcher {
	return &MockFetcher{info: TestVideoInfo}
}

// WithInfo sets the metadata returned by FetchInfo
func (m *MockFetcher) WithInfo(info model.VideoInfo) *MockFetcher {
	m.info = info
	return m
}

// WithInfoError makes FetchInfo fail
func (m *MockFetcher) WithInfoError(err error) *MockFetcher {
	m.infoErr = err
	return m
}

// WithDownloadError makes DownloadAudio fail
func (m *MockFetcher) WithDownloadError(err error) *MockFetcher {
	m.downloadErr = err
	return m
}

func (m *MockFetcher) FetchInfo(ctx context.Context, url string) (*model.VideoInfo, error) {
	m.infoCalls++
	if m.infoErr != nil {
		return nil, m.infoErr
	}
	info := m.info
	return &info, nil
}

func (m *MockFetcher) DownloadAudio(ctx context.Context, url string, dir string) (string, error) {
	m.downloadCalls++
	m.lastDir = dir
	if m.downloadErr != nil {
		return "", m.downloadErr
	}
	path := filepath.Join(dir, "audio.wav")
	if err := os.WriteFile(path, []byte("RIFF"), 0o644); err != nil {
		return "", err
	}
	return path, nil
}

// GetInfoCalls returns the number of FetchInfo calls
func (m *MockFetcher) GetInfoCalls() int {
	return m.infoCalls
}

// GetDownloadCalls returns the number of DownloadAudio calls
func (m *MockFetcher) GetDownloadCalls() int {
	return m.downloadCalls
}

// GetLastDir returns the directory passed to the last DownloadAudio call
func (m *MockFetcher) GetLastDir() string {
	return m.lastDir
}

// MockRecognizer is a mock implementation of the Recognizer interface
type MockRecognizer struct {
	RecognizeFunc func(ctx context.Context, audioPath string) ([]model.Segment, error)
	segments      []model.Segment
	err           error
	callCount     int
	lastAudioPath string
}

// NewMockRecognizer creates a MockRecognizer returning TestSegments
func NewMockRecognizer() *MockRecognizer {
	return &MockRecognizer{segments: TestSegments}
}

// WithSegments sets the segments returned by Recognize
func (m *MockRecognizer) WithSegments(segments []model.Segment) *MockRecognizer {
	m.segments = segments
	return m
}

// WithError makes Recognize fail
func (m *MockRecognizer) WithError(err error) *MockRecognizer {
	m.err = err
	return m
}

// Recognize implements the Recognizer interface
func (m *MockRecognizer) Recognize(ctx context.Context, audioPath string) ([]model.Segment, error) {
	m.callCount++
	m.lastAudioPath = audioPath
	if m.RecognizeFunc != nil {
		return m.RecognizeFunc(ctx, audioPath)
	}
	if m.err != nil {
		return nil, m.err
	}
	return append([]model.Segment(nil), m.segments...), nil
}

// GetCallCount returns the number of times Recognize was called
func (m *MockRecognizer) GetCallCount() int {
	return m.callCount
}

// GetLastAudioPath returns the last audio path passed to Recognize
func (m *MockRecognizer) GetLastAudioPath() string {
	return m.lastAudioPath
}

// MockTranscriptionDAO is an in-memory implementation of the TranscriptionDAO interface
type MockTranscriptionDAO struct {
	transcriptions []model.Transcription
	recordErr      error
	listErr        error
	closeErr       error
	closeCalled    bool
}

// NewMockTranscriptionDAO creates an empty MockTranscriptionDAO
func NewMockTranscriptionDAO() *MockTranscriptionDAO {
	return &MockTranscriptionDAO{transcriptions: make([]model.Transcription, 0)}
}

// WithTranscriptions seeds the mock, newest first
func (m *MockTranscriptionDAO) WithTranscriptions(transcriptions []model.Transcription) *MockTranscriptionDAO {
	m.transcriptions = append([]model.Transcription(nil), transcriptions...)
	return m
}

// WithRecordError makes Record fail
func (m *MockTranscriptionDAO) WithRecordError(err error) *MockTranscriptionDAO {
	m.recordErr = err
	return m
}

// WithListError makes List fail
func (m *MockTranscriptionDAO) WithListError(err error) *MockTranscriptionDAO {
	m.listErr = err
	return m
}

// WithCloseError sets an error to be returned when Close is called
func (m *MockTranscriptionDAO) WithCloseError(err error) *MockTranscriptionDAO {
	m.closeErr = err
	return m
}

func (m *MockTranscriptionDAO) Close() error {
	m.closeCalled = true
	return m.closeErr
}

func (m *MockTranscriptionDAO) Record(ctx context.Context, t *model.Transcription) error {
	if m.recordErr != nil {
		return m.recordErr
	}
	if t == nil {
		return errors.New("nil transcription")
	}
	m.transcriptions = append([]model.Transcription{*t}, m.transcriptions...)
	return nil
}

func (m *MockTranscriptionDAO) List(ctx context.Context, limit int) ([]model.Transcription, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	if limit <= 0 || limit > len(m.transcriptions) {
		limit = len(m.transcriptions)
	}
	return append([]model.Transcription(nil), m.transcriptions[:limit]...), nil
}

// GetTranscriptions returns everything recorded, newest first
func (m *MockTranscriptionDAO) GetTranscriptions() []model.Transcription {
	return m.transcriptions
}

// WasCloseCalled returns true if Close was called
func (m *MockTranscriptionDAO) WasCloseCalled() bool {
	return m.closeCalled
}
