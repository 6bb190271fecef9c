package source

import (
	"context"
	"fmt"
	"log/slog"
	"os"
)

// FileSource reads a search response stored on disk.
type FileSource struct {
	Name string
	Path string
}

func NewFileSource(name, path string) *FileSource {
	return &FileSource{
		Name: name,
		Path: path,
	}
}

func (s *FileSource) Fetch(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("fetch %s: %w: %w", s.Name, ErrSourceUnavailable, err)
	}

	data, err := os.ReadFile(s.Path)
	if err != nil {
		slog.ErrorContext(ctx, "failed to read source file",
			slog.String("source", s.Name),
			slog.String("path", s.Path),
			slog.String("error", err.Error()))

		return "", fmt.Errorf("fetch %s: %w: %w", s.Name, ErrSourceUnavailable, err)
	}

	slog.DebugContext(ctx, "source fetched", slog.String("source", s.Name), slog.Int("bytes", len(data)))

	return string(data), nil
}
