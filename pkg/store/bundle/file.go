package bundle

import (
	"context"
	"fmt"
	"os"

	"github.com/de-tools/sales-atlas/pkg/models/domain"
	"github.com/rs/zerolog"
)

// FileSource loads a bundle from a JSON file on disk
type FileSource struct {
	path string
}

func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

func (s *FileSource) Load(ctx context.Context) (*domain.Bundle, error) {
	logger := zerolog.Ctx(ctx)

	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("open bundle file: %w", err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			logger.Warn().Err(err).Str("path", s.path).Msg("failed to close bundle file")
		}
	}()

	logger.Debug().Str("path", s.path).Msg("loading bundle from file")
	return Decode(f)
}
