package fsutil_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/disrupted/dprint-plugin-markdown/pkg/fsutil"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "doc.md")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}
	return path
}

func TestReadFile(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "# Title\n")

	got, info, err := fsutil.ReadFile(context.Background(), path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}

	if string(got) != "# Title\n" {
		t.Errorf("content = %q", got)
	}
	if info.Path != path {
		t.Errorf("Path = %q, want %q", info.Path, path)
	}
	if info.Size != 8 {
		t.Errorf("Size = %d, want 8", info.Size)
	}
	if info.Mode.Perm() != 0o644 {
		t.Errorf("Mode = %o, want 644", info.Mode.Perm())
	}
	if len(info.Digest()) != 12 {
		t.Errorf("Digest() = %q, want 12 hex digits", info.Digest())
	}
	if info.IsStdin() {
		t.Error("IsStdin() = true for a file")
	}
}

func TestReadFile_Errors(t *testing.T) {
	t.Parallel()

	cancelled, cancel := context.WithCancel(context.Background())
	cancel()

	tests := []struct {
		name string
		ctx  context.Context
		path string
		want error
	}{
		{"missing", context.Background(), filepath.Join(t.TempDir(), "missing.md"), fsutil.ErrNotFound},
		{"directory", context.Background(), t.TempDir(), fsutil.ErrIsDirectory},
		{"cancelled", cancelled, "any.md", context.Canceled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, _, err := fsutil.ReadFile(tt.ctx, tt.path)
			if !errors.Is(err, tt.want) {
				t.Errorf("ReadFile() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestReadFileLimit(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "0123456789")

	if _, _, err := fsutil.ReadFileLimit(context.Background(), path, 10); err != nil {
		t.Errorf("at limit: error = %v", err)
	}
	if _, _, err := fsutil.ReadFileLimit(context.Background(), path, 9); !errors.Is(err, fsutil.ErrTooLarge) {
		t.Errorf("over limit: error = %v, want ErrTooLarge", err)
	}
}

func TestReadFrom(t *testing.T) {
	t.Parallel()

	got, info, err := fsutil.ReadFrom(context.Background(), strings.NewReader("text"), 0)
	if err != nil {
		t.Fatalf("ReadFrom() error = %v", err)
	}
	if string(got) != "text" {
		t.Errorf("content = %q", got)
	}
	if !info.IsStdin() {
		t.Errorf("Path = %q, want %q", info.Path, fsutil.StdinPath)
	}

	_, _, err = fsutil.ReadFrom(context.Background(), strings.NewReader("too long"), 3)
	if !errors.Is(err, fsutil.ErrTooLarge) {
		t.Errorf("over limit: error = %v, want ErrTooLarge", err)
	}
}

func TestCheckModified(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		change func(t *testing.T, path string, info *fsutil.FileInfo)
		want   bool
	}{
		{
			name:   "unchanged",
			change: func(*testing.T, string, *fsutil.FileInfo) {},
			want:   false,
		},
		{
			name: "content changed",
			change: func(t *testing.T, path string, _ *fsutil.FileInfo) {
				if err := os.WriteFile(path, []byte("# Other title\n"), 0o644); err != nil {
					t.Fatal(err)
				}
			},
			want: true,
		},
		{
			name: "deleted",
			change: func(t *testing.T, path string, _ *fsutil.FileInfo) {
				if err := os.Remove(path); err != nil {
					t.Fatal(err)
				}
			},
			want: true,
		},
		{
			name: "touched only",
			change: func(t *testing.T, path string, info *fsutil.FileInfo) {
				later := info.ModTime.Add(time.Hour)
				if err := os.Chtimes(path, later, later); err != nil {
					t.Fatal(err)
				}
			},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			path := writeFile(t, "# Title\n")
			ctx := context.Background()

			_, info, err := fsutil.ReadFile(ctx, path)
			if err != nil {
				t.Fatalf("ReadFile() error = %v", err)
			}

			tt.change(t, path, info)

			got, err := fsutil.CheckModified(ctx, info)
			if err != nil {
				t.Fatalf("CheckModified() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("CheckModified() = %v, want %v", got, tt.want)
			}

			quick, err := fsutil.CheckModifiedQuick(ctx, info)
			if err != nil {
				t.Fatalf("CheckModifiedQuick() error = %v", err)
			}
			if quick != tt.want {
				t.Errorf("CheckModifiedQuick() = %v, want %v", quick, tt.want)
			}
		})
	}
}

func TestCheckModified_SameSizeRewrite(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "aaaa")
	ctx := context.Background()

	_, info, err := fsutil.ReadFile(ctx, path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}

	if err := os.WriteFile(path, []byte("bbbb"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.Chtimes(path, info.ModTime, info.ModTime); err != nil {
		t.Fatal(err)
	}

	quick, err := fsutil.CheckModifiedQuick(ctx, info)
	if err != nil {
		t.Fatal(err)
	}
	if quick {
		t.Error("quick check should not see a same-size rewrite with restored mod time")
	}

	full, err := fsutil.CheckModified(ctx, info)
	if err != nil {
		t.Fatal(err)
	}
	if !full {
		t.Error("hash check should see the rewrite")
	}
}

func TestCheckModified_Errors(t *testing.T) {
	t.Parallel()

	if _, err := fsutil.CheckModified(context.Background(), nil); !errors.Is(err, fsutil.ErrNilFileInfo) {
		t.Errorf("nil info: error = %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := fsutil.CheckModified(ctx, &fsutil.FileInfo{Path: "x"}); !errors.Is(err, context.Canceled) {
		t.Errorf("cancelled: error = %v", err)
	}

	stdin := &fsutil.FileInfo{Path: fsutil.StdinPath}
	if changed, err := fsutil.CheckModified(context.Background(), stdin); err != nil || changed {
		t.Errorf("stdin: changed = %v, error = %v", changed, err)
	}
}
