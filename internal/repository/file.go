package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/varoOP/sankanime/internal/domain"
	"gopkg.in/yaml.v3"
)

// FileRepository implements domain.ResultRepository using file storage.
// Files ending in .yaml or .yml are written as YAML, everything else as JSON.
type FileRepository struct {
	log zerolog.Logger
}

// NewFileRepository creates a new file-based repository
func NewFileRepository(log zerolog.Logger) *FileRepository {
	return &FileRepository{
		log: log.With().Str("module", "repository").Logger(),
	}
}

var _ domain.ResultRepository = (*FileRepository)(nil)

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

// Get reads the file at path into v
func (r *FileRepository) Get(ctx context.Context, path string, v any) error {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("file does not exist: %s: %w", path, err)
		}
		return fmt.Errorf("failed to stat file %s: %w", path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("path is a directory, not a file: %s", path)
	}

	body, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", path, err)
	}

	if isYAML(path) {
		if err := yaml.Unmarshal(body, v); err != nil {
			return fmt.Errorf("failed to unmarshal yaml from %s: %w", path, err)
		}
		return nil
	}

	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("failed to unmarshal json from %s: %w", path, err)
	}
	return nil
}

// Store writes v to path, creating parent directories as needed
func (r *FileRepository) Store(ctx context.Context, path string, v any) error {
	var (
		b   []byte
		err error
	)
	if isYAML(path) {
		b, err = yaml.Marshal(v)
		if err != nil {
			return fmt.Errorf("failed to marshal yaml: %w", err)
		}
	} else {
		b, err = json.MarshalIndent(v, "", "   ")
		if err != nil {
			return fmt.Errorf("failed to marshal json: %w", err)
		}
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	if err := os.WriteFile(path, b, 0644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", path, err)
	}

	r.log.Debug().Str("path", path).Int("bytes", len(b)).Msg("stored result")
	return nil
}
