package files

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	apperrors "yt-transcribe/internal/app/errors"
)

// CollisionChoice is the answer to "the output file already exists".
type CollisionChoice int

const (
	Overwrite CollisionChoice = iota
	Rename
	Cancel
)

// CollisionPrompter decides what to do when path already exists. It should
// return promptly once ctx is done.
type CollisionPrompter func(ctx context.Context, path string) (CollisionChoice, error)

func GetAbsolutePath(path string) (string, error) {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		path = filepath.Join(home, path[2:])
	}
	return filepath.Abs(path)
}

func FileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// NextAvailablePath returns the first "<stem> N<ext>" (N >= 2) next to path that does not exist.
func NextAvailablePath(path string) string {
	dir := filepath.Dir(path)
	ext := filepath.Ext(path)
	stem := strings.TrimSuffix(filepath.Base(path), ext)

	for n := 2; ; n++ {
		candidate := filepath.Join(dir, fmt.Sprintf("%s %d%s", stem, n, ext))
		if !FileExists(candidate) {
			return candidate
		}
	}
}

// ResolveOutputPath applies the overwrite policy for path. With force, or
// when nothing exists at path, path is returned unchanged. Otherwise prompt
// decides; a nil prompt refuses with ErrOutputExists.
func ResolveOutputPath(ctx context.Context, path string, force bool, prompt CollisionPrompter) (string, error) {
	if force || !FileExists(path) {
		return path, nil
	}
	if prompt == nil {
		return "", apperrors.AlreadyExists("file", path)
	}

	choice, err := prompt(ctx, path)
	if err != nil {
		return "", err
	}
	switch choice {
	case Overwrite:
		return path, nil
	case Rename:
		return NextAvailablePath(path), nil
	default:
		return "", apperrors.ErrCancelled
	}
}

// WriteTranscript writes content to path, creating parent directories.
func WriteTranscript(path string, content string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, os.ModePerm); err != nil {
			return apperrors.Wrapf(apperrors.ErrFileWriteFailed, "create directory %s: %v", dir, err)
		}
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return apperrors.Wrap(err, apperrors.ErrFileWriteFailed.Error())
	}
	return nil
}

// FindFirstFile returns the lexically first file in dir matching pattern, e.g. "*.srt".
func FindFirstFile(dir string, pattern string) (string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, pattern))
	if err != nil {
		return "", err
	}
	sort.Strings(matches)
	for _, m := range matches {
		if FileExists(m) {
			return m, nil
		}
	}
	return "", os.ErrNotExist
}

// ListDir returns the names of the entries in dir, for diagnostics.
func ListDir(dir string) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}
