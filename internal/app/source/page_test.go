package source

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func servePage(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestPageTitle(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		want    string
		wantErr bool
	}{
		{
			name:   "og title",
			status: http.StatusOK,
			body:   `<html><head><meta property="og:title" content="Deep Dive: Go Scheduling"><title>ignored - YouTube</title></head></html>`,
			want:   "Deep Dive: Go Scheduling",
		},
		{
			name:   "title tag",
			status: http.StatusOK,
			body:   `<html><head><title> Talk Recording - YouTube </title></head></html>`,
			want:   "Talk Recording",
		},
		{
			name:    "no title",
			status:  http.StatusOK,
			body:    `<html><head></head><body>nothing</body></html>`,
			wantErr: true,
		},
		{
			name:    "bad status",
			status:  http.StatusNotFound,
			body:    `<title>Not Found</title>`,
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := servePage(t, tt.status, tt.body)

			got, err := NewPageTitleFunc(srv.Client())(context.Background(), srv.URL)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
