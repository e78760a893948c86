package persistence

import (
	"context"
	"errors"
	"io/fs"
	"path/filepath"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/khoahotran/portfolio-builder/internal/domain/portfolio"
	"github.com/khoahotran/portfolio-builder/pkg/apperror"
	"github.com/khoahotran/portfolio-builder/pkg/logger"
)

// fileSlot keeps the record in <dir>/<key>.json. Writes go to a temp file
// that is renamed over the slot, so a crash never leaves half a record.
type fileSlot struct {
	fs     afero.Fs
	path   string
	logger logger.Logger
}

func NewFileSlot(fsys afero.Fs, dir, key string, log logger.Logger) portfolio.Repository {
	return &fileSlot{fs: fsys, path: filepath.Join(dir, key+".json"), logger: log}
}

func (s *fileSlot) Get(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := afero.ReadFile(s.fs, s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, portfolio.ErrNoSavedData
		}
		return nil, apperror.NewUnavailable("failed to read portfolio file", err)
	}
	return data, nil
}

func (s *fileSlot) Put(ctx context.Context, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.fs.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return apperror.NewUnavailable("failed to create data directory", err)
	}

	tmp := s.path + ".tmp"
	if err := afero.WriteFile(s.fs, tmp, data, 0o644); err != nil {
		return apperror.NewUnavailable("failed to write portfolio file", err)
	}
	if err := s.fs.Rename(tmp, s.path); err != nil {
		_ = s.fs.Remove(tmp)
		return apperror.NewUnavailable("failed to replace portfolio file", err)
	}

	s.logger.Debug("Portfolio written", zap.String("path", s.path), zap.Int("bytes", len(data)))
	return nil
}
