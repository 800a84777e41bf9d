package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/infinitty/infinitty/internal/application/port"
	"github.com/infinitty/infinitty/internal/security"
)

// FileService wraps the filesystem mutations driven from the file
// explorer. Every path argument — source and destination both — passes
// through the path policy before the filesystem is touched.
type FileService struct {
	fs  port.FileSystem
	log zerolog.Logger
}

// NewFileService creates the filesystem gate.
func NewFileService(fs port.FileSystem, log zerolog.Logger) *FileService {
	return &FileService{
		fs:  fs,
		log: log.With().Str("component", "files").Logger(),
	}
}

// ServiceName returns the service name.
func (s *FileService) ServiceName() string {
	return "FileService"
}

// CreateFile creates an empty file.
func (s *FileService) CreateFile(ctx context.Context, path string) error {
	clean, err := security.SanitizePath(path)
	if err != nil {
		return err
	}
	return s.fs.CreateFile(ctx, clean)
}

// CreateDirectory creates a directory, including missing parents.
func (s *FileService) CreateDirectory(ctx context.Context, path string) error {
	clean, err := security.SanitizePath(path)
	if err != nil {
		return err
	}
	return s.fs.CreateDirectory(ctx, clean)
}

// Rename renames a file or directory.
func (s *FileService) Rename(ctx context.Context, oldPath, newPath string) error {
	oldClean, err := security.SanitizePath(oldPath)
	if err != nil {
		return err
	}
	newClean, err := security.SanitizePath(newPath)
	if err != nil {
		return err
	}
	return s.fs.Rename(ctx, oldClean, newClean)
}

// Delete removes a file, or a directory tree when isDirectory is set.
func (s *FileService) Delete(ctx context.Context, path string, isDirectory bool) error {
	clean, err := security.SanitizePath(path)
	if err != nil {
		return err
	}
	s.log.Debug().Str("path", clean).Bool("dir", isDirectory).Msg("deleting")
	return s.fs.Remove(ctx, clean, isDirectory)
}

// Copy copies a file, or a directory tree when isDirectory is set.
func (s *FileService) Copy(ctx context.Context, source, destination string, isDirectory bool) error {
	srcClean, err := security.SanitizePath(source)
	if err != nil {
		return err
	}
	dstClean, err := security.SanitizePath(destination)
	if err != nil {
		return err
	}
	return s.fs.Copy(ctx, srcClean, dstClean, isDirectory)
}

// Move moves a file or directory.
func (s *FileService) Move(ctx context.Context, source, destination string) error {
	srcClean, err := security.SanitizePath(source)
	if err != nil {
		return err
	}
	dstClean, err := security.SanitizePath(destination)
	if err != nil {
		return err
	}
	return s.fs.Move(ctx, srcClean, dstClean)
}
