package runner

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"

	"github.com/disrupted/dprint-plugin-markdown/pkg/fsutil"
)

// Discover resolves opts.Paths into a sorted, de-duplicated list of
// absolute Markdown file paths. A "-" entry is kept verbatim and placed
// first.
func Discover(ctx context.Context, opts Options) ([]string, error) {
	workDir, err := resolveWorkDir(opts.WorkingDir)
	if err != nil {
		return nil, fmt.Errorf("resolve working directory: %w", err)
	}

	w := &walker{
		ctx:     ctx,
		opts:    opts,
		workDir: workDir,
		exts:    make(map[string]struct{}),
		seen:    make(map[string]struct{}),
	}
	for _, ext := range opts.extensions() {
		w.exts[strings.ToLower(ext)] = struct{}{}
	}

	stdin := false
	for _, input := range opts.paths() {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("discovery cancelled: %w", err)
		}

		if input == fsutil.StdinPath {
			stdin = true
			continue
		}

		abs := input
		if !filepath.IsAbs(abs) {
			abs = filepath.Join(workDir, abs)
		}
		abs = filepath.Clean(abs)

		info, err := os.Stat(abs)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", input, err)
		}

		if !info.IsDir() {
			// Named files skip the extension filter but not exclusion.
			if !w.excluded(abs) {
				w.add(abs)
			}
			continue
		}

		if err := w.walk(abs); err != nil {
			return nil, err
		}
	}

	slices.Sort(w.files)
	if stdin {
		w.files = append([]string{fsutil.StdinPath}, w.files...)
	}
	return w.files, nil
}

func resolveWorkDir(workDir string) (string, error) {
	if workDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
		return wd, nil
	}
	abs, err := filepath.Abs(workDir)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path: %w", err)
	}
	return abs, nil
}

type walker struct {
	ctx     context.Context
	opts    Options
	workDir string
	exts    map[string]struct{}
	seen    map[string]struct{}
	files   []string
}

func (w *walker) add(p string) {
	if _, ok := w.seen[p]; ok {
		return
	}
	w.seen[p] = struct{}{}
	w.files = append(w.files, p)
}

func (w *walker) walk(root string) error {
	err := filepath.WalkDir(root, func(p string, entry fs.DirEntry, walkErr error) error {
		if err := w.ctx.Err(); err != nil {
			return err
		}
		if walkErr != nil {
			if os.IsPermission(walkErr) {
				return nil
			}
			return walkErr
		}

		hidden := p != root && strings.HasPrefix(entry.Name(), ".")

		if entry.IsDir() {
			if hidden || w.excluded(p) {
				return filepath.SkipDir
			}
			return nil
		}
		if hidden {
			return nil
		}

		if entry.Type()&fs.ModeSymlink != 0 {
			return w.symlink(p)
		}

		if w.markdown(p) && !w.excluded(p) {
			w.add(p)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("walk directory %s: %w", root, err)
	}
	return nil
}

// symlink handles a link found during a walk. Broken links are skipped;
// directory links are walked through their target only with FollowSymlinks.
func (w *walker) symlink(p string) error {
	target, err := filepath.EvalSymlinks(p)
	if err != nil {
		return nil //nolint:nilerr // broken symlinks are skipped
	}
	info, err := os.Stat(target)
	if err != nil {
		return nil //nolint:nilerr // unreadable targets are skipped
	}

	if info.IsDir() {
		if !w.opts.FollowSymlinks {
			return nil
		}
		return w.walk(target)
	}

	if w.markdown(p) && !w.excluded(p) {
		w.add(p)
	}
	return nil
}

func (w *walker) markdown(p string) bool {
	_, ok := w.exts[strings.ToLower(filepath.Ext(p))]
	return ok
}

func (w *walker) excluded(p string) bool {
	if len(w.opts.Exclude) == 0 {
		return false
	}
	rel, err := filepath.Rel(w.workDir, p)
	if err != nil {
		rel = p
	}
	rel = filepath.ToSlash(rel)

	for _, pattern := range w.opts.Exclude {
		if matchGlob(rel, pattern) {
			return true
		}
	}
	return false
}

// matchGlob matches a slash-separated relative path against pattern.
// A pattern without a slash matches any single segment, so "vendor" or
// "*.tmp.md" apply at every depth. Otherwise the pattern is matched
// segment by segment, with "**" standing for zero or more segments.
func matchGlob(rel, pattern string) bool {
	pattern = strings.Trim(filepath.ToSlash(pattern), "/")
	if pattern == "" {
		return false
	}

	segments := strings.Split(rel, "/")

	if !strings.Contains(pattern, "/") && pattern != "**" {
		for _, seg := range segments {
			if ok, _ := path.Match(pattern, seg); ok {
				return true
			}
		}
		return false
	}

	return matchSegments(segments, strings.Split(pattern, "/"))
}

func matchSegments(segments, pattern []string) bool {
	for len(pattern) > 0 {
		if pattern[0] == "**" {
			rest := pattern[1:]
			for i := 0; i <= len(segments); i++ {
				if matchSegments(segments[i:], rest) {
					return true
				}
			}
			return false
		}
		if len(segments) == 0 {
			return false
		}
		if ok, _ := path.Match(pattern[0], segments[0]); !ok {
			return false
		}
		segments, pattern = segments[1:], pattern[1:]
	}
	// A directory pattern also covers everything beneath it.
	return true
}
