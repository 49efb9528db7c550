// Package fsutil reads Markdown sources for the tree tools and records
// enough metadata to notice when a file changes underneath a run.
package fsutil

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"time"
)

// StdinPath is the conventional path naming standard input.
const StdinPath = "-"

// Sentinel errors for error categorization via errors.Is.
var (
	// ErrNilFileInfo is returned when a nil FileInfo is passed.
	ErrNilFileInfo = errors.New("nil FileInfo")

	// ErrNotFound indicates the file does not exist.
	ErrNotFound = errors.New("file not found")

	// ErrPermissionDenied indicates a permission error.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrIsDirectory indicates the path is a directory, not a file.
	ErrIsDirectory = errors.New("path is a directory")

	// ErrTooLarge indicates the input exceeds the configured size limit.
	ErrTooLarge = errors.New("file too large")
)

// FileInfo is the state of a source at the moment it was read.
type FileInfo struct {
	// Path is the path the source was read from, or StdinPath.
	Path string

	Mode    os.FileMode
	ModTime time.Time

	// Size is the number of bytes read.
	Size int64

	// Hash is the SHA-256 of the content.
	Hash [32]byte
}

// Digest returns the first 12 hex digits of the content hash.
func (fi *FileInfo) Digest() string {
	if fi == nil {
		return ""
	}
	return hex.EncodeToString(fi.Hash[:6])
}

// IsStdin reports whether the source was read from standard input.
func (fi *FileInfo) IsStdin() bool {
	return fi != nil && fi.Path == StdinPath
}

// ReadFile reads path without a size limit.
func ReadFile(ctx context.Context, path string) ([]byte, *FileInfo, error) {
	return ReadFileLimit(ctx, path, 0)
}

// ReadFileLimit reads path and returns its content and metadata. A
// positive limit rejects files larger than limit bytes with ErrTooLarge.
func ReadFileLimit(ctx context.Context, path string, limit int64) ([]byte, *FileInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, fmt.Errorf("read file: %w", err)
	}

	stat, err := os.Stat(path)
	if err != nil {
		return nil, nil, classify(path, "stat", err)
	}
	if stat.IsDir() {
		return nil, nil, fmt.Errorf("%w: %s", ErrIsDirectory, path)
	}
	if limit > 0 && stat.Size() > limit {
		return nil, nil, fmt.Errorf("%w: %s is %d bytes, limit %d", ErrTooLarge, path, stat.Size(), limit)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, classify(path, "read", err)
	}

	return content, &FileInfo{
		Path:    path,
		Mode:    stat.Mode(),
		ModTime: stat.ModTime(),
		Size:    int64(len(content)),
		Hash:    sha256.Sum256(content),
	}, nil
}

// ReadFrom drains r, typically standard input, under the same limit rules
// as ReadFileLimit. The returned FileInfo carries StdinPath.
func ReadFrom(ctx context.Context, r io.Reader, limit int64) ([]byte, *FileInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, fmt.Errorf("read input: %w", err)
	}

	src := r
	if limit > 0 {
		src = io.LimitReader(r, limit+1)
	}

	content, err := io.ReadAll(src)
	if err != nil {
		return nil, nil, fmt.Errorf("read input: %w", err)
	}
	if limit > 0 && int64(len(content)) > limit {
		return nil, nil, fmt.Errorf("%w: input exceeds limit %d", ErrTooLarge, limit)
	}

	return content, &FileInfo{
		Path:    StdinPath,
		ModTime: time.Now(),
		Size:    int64(len(content)),
		Hash:    sha256.Sum256(content),
	}, nil
}

// CheckModified reports whether the file described by info changed since
// it was read. A mod time or size difference counts immediately; otherwise
// the content is re-hashed. A deleted file counts as modified. Sources
// read from standard input never change.
func CheckModified(ctx context.Context, info *FileInfo) (bool, error) {
	stat, changed, err := quickCheck(ctx, info)
	if err != nil || changed || stat == nil {
		return changed, err
	}

	content, err := os.ReadFile(info.Path)
	if err != nil {
		return false, fmt.Errorf("read %s: %w", info.Path, err)
	}
	return sha256.Sum256(content) != info.Hash, nil
}

// CheckModifiedQuick is CheckModified without the re-hash.
func CheckModifiedQuick(ctx context.Context, info *FileInfo) (bool, error) {
	_, changed, err := quickCheck(ctx, info)
	return changed, err
}

// quickCheck compares mod time and size. It returns a nil stat when no
// further comparison is possible.
func quickCheck(ctx context.Context, info *FileInfo) (os.FileInfo, bool, error) {
	if info == nil {
		return nil, false, ErrNilFileInfo
	}
	if err := ctx.Err(); err != nil {
		return nil, false, fmt.Errorf("check modified: %w", err)
	}
	if info.IsStdin() {
		return nil, false, nil
	}

	stat, err := os.Stat(info.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, true, nil
		}
		return nil, false, fmt.Errorf("stat %s: %w", info.Path, err)
	}

	if !stat.ModTime().Equal(info.ModTime) || stat.Size() != info.Size {
		return stat, true, nil
	}
	return stat, false, nil
}

func classify(path, op string, err error) error {
	switch {
	case os.IsNotExist(err):
		return fmt.Errorf("%w: %s: %w", ErrNotFound, path, err)
	case os.IsPermission(err):
		return fmt.Errorf("%w: %s: %w", ErrPermissionDenied, path, err)
	default:
		return fmt.Errorf("%s %s: %w", op, path, err)
	}
}
