package operation

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 🔍 Discover returns the files under root that match pattern, relative to
// root, in traversal order. Directories are skipped, and so are dotfiles and
// anything below a dot directory unless the pattern names that segment.
func Discover(ctx context.Context, root, pattern string) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, errors.Errorf("checking root: %w", err)
	}
	if !info.IsDir() {
		return nil, errors.Errorf("root %s is not a directory", root)
	}

	matches, err := doublestar.Glob(os.DirFS(root), pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, errors.Errorf("matching %q: %w", pattern, err)
	}

	literal := make(map[string]bool)
	for _, seg := range strings.Split(pattern, "/") {
		literal[seg] = true
	}

	files := make([]string, 0, len(matches))
	for _, m := range matches {
		if isHidden(m, literal) {
			zerolog.Ctx(ctx).Debug().Str("file", m).Msg("skipping hidden file")
			continue
		}
		files = append(files, filepath.FromSlash(m))
	}

	zerolog.Ctx(ctx).Debug().
		Str("root", root).
		Str("pattern", pattern).
		Int("files", len(files)).
		Msg("discovered files")

	return files, nil
}

// isHidden reports whether a slash separated match has a segment starting
// with a dot that the pattern did not spell out
func isHidden(match string, literal map[string]bool) bool {
	for _, seg := range strings.Split(match, "/") {
		if strings.HasPrefix(seg, ".") && !literal[seg] {
			return true
		}
	}
	return false
}
