package port

import "context"

// FileSystem performs the mutating filesystem operations the file explorer
// exposes. Paths handed to implementations are already canonical; policy
// checks happen in the service layer before any call lands here.
type FileSystem interface {
	CreateFile(ctx context.Context, path string) error
	CreateDirectory(ctx context.Context, path string) error
	Rename(ctx context.Context, oldPath, newPath string) error
	Remove(ctx context.Context, path string, isDirectory bool) error
	Copy(ctx context.Context, source, destination string, isDirectory bool) error
	Move(ctx context.Context, source, destination string) error
}
