// Package testutil provides hand-rolled collaborators and fixtures for the
// pipeline tests.
//
//	fetcher := testutil.NewMockFetcher().WithInfo(testutil.TestVideoInfo)
//	recognizer := testutil.NewMockRecognizer().WithSegments(testutil.TestSegments)
//	dao := testutil.NewMockTranscriptionDAO()
//
// The mocks record their calls and are not safe for concurrent use.
package testutil
