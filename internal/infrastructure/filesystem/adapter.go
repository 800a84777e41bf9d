// Package filesystem implements port.FileSystem against the OS.
package filesystem

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/infinitty/infinitty/internal/application/port"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// Adapter implements port.FileSystem using the OS filesystem.
type Adapter struct{}

// New creates a new filesystem adapter.
func New() *Adapter {
	return &Adapter{}
}

func (a *Adapter) CreateFile(_ context.Context, path string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY, filePerm)
	if err != nil {
		return err
	}
	return f.Close()
}

func (a *Adapter) CreateDirectory(_ context.Context, path string) error {
	return os.MkdirAll(path, dirPerm)
}

func (a *Adapter) Rename(_ context.Context, oldPath, newPath string) error {
	return os.Rename(oldPath, newPath)
}

func (a *Adapter) Remove(_ context.Context, path string, isDirectory bool) error {
	if isDirectory {
		return os.RemoveAll(path)
	}
	return os.Remove(path)
}

func (a *Adapter) Copy(ctx context.Context, source, destination string, isDirectory bool) error {
	if isDirectory {
		return copyDir(ctx, source, destination)
	}
	return copyFile(source, destination)
}

func (a *Adapter) Move(_ context.Context, source, destination string) error {
	return os.Rename(source, destination)
}

func copyFile(source, destination string) error {
	src, err := os.Open(source)
	if err != nil {
		return err
	}
	defer func() { _ = src.Close() }()

	dst, err := os.OpenFile(destination, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, filePerm)
	if err != nil {
		return err
	}

	if _, err := io.Copy(dst, src); err != nil {
		_ = dst.Close()
		return err
	}
	return dst.Close()
}

// copyDir copies a directory tree. Subdirectories are created in order;
// file copies within each directory fan out on an errgroup.
func copyDir(ctx context.Context, source, destination string) error {
	if err := os.MkdirAll(destination, dirPerm); err != nil {
		return err
	}

	entries, err := os.ReadDir(source)
	if err != nil {
		return err
	}

	g, ctx := errgroup.WithContext(ctx)
	for _, entry := range entries {
		srcChild := filepath.Join(source, entry.Name())
		dstChild := filepath.Join(destination, entry.Name())

		if entry.IsDir() {
			if err := copyDir(ctx, srcChild, dstChild); err != nil {
				return fmt.Errorf("copy %s: %w", srcChild, err)
			}
			continue
		}

		g.Go(func() error {
			return copyFile(srcChild, dstChild)
		})
	}
	return g.Wait()
}

var _ port.FileSystem = (*Adapter)(nil)
