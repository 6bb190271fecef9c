package source

import (
	"context"
	"fmt"
	"maps"
	"slices"
)

// Source supplies the raw XML text of one search response.
type Source interface {
	Fetch(ctx context.Context) (string, error)
}

type SourceFactory struct {
	Source map[string]Source
}

func NewSourceFactory() *SourceFactory {
	return &SourceFactory{
		Source: make(map[string]Source),
	}
}

func (f *SourceFactory) AddSource(name string, source Source) {
	f.Source[name] = source
}

func (f *SourceFactory) GetSource(name string) (Source, error) {
	source, ok := f.Source[name]
	if !ok {
		return nil, fmt.Errorf("source %q: %w", name, ErrUnknownSource)
	}

	return source, nil
}

// Names returns the registered source names in sorted order.
func (f *SourceFactory) Names() []string {
	return slices.Sorted(maps.Keys(f.Source))
}
