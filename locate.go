package glyphgen

import (
	"io/fs"
	"os"
	"os/user"
	"path/filepath"
	"slices"
	"strings"

	findfont "github.com/flopp/go-findfont"
	"github.com/go-text/typesetting/fontscan"
)

// DefaultSearchRoots returns the usual Linux font installation directories.
func DefaultSearchRoots() []string {
	return []string{
		"/usr/share/fonts/",
		"~/.local/share/fonts/",
		"~/.fonts/",
	}
}

// DefaultExtensions returns the font file suffixes matched by default.
func DefaultExtensions() []string {
	return []string{".ttf", ".otf", ".ttc", ".woff", ".woff2"}
}

// SystemSearchRoots returns the platform font directories known to
// go-text/typesetting. It returns nil when none of them exist.
func SystemSearchRoots() []string {
	dirs, err := fontscan.DefaultFontDirectories(printfLogger{Logger()})
	if err != nil {
		Logger().Debug("no system font directories", "err", err)
		return nil
	}
	return dirs
}

// ExpandHome replaces a leading "~" with the current user's home directory
// and a leading "~name" with the home directory of user name. Paths naming
// an unknown user, and paths without a leading "~", are returned unchanged.
func ExpandHome(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}

	i := strings.IndexFunc(path, func(r rune) bool { return r == '/' || r == filepath.Separator })
	if i < 0 {
		i = len(path)
	}
	name, rest := path[1:i], path[i:]

	if name == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, rest), nil
	}

	u, err := user.Lookup(name)
	if err != nil || u.HomeDir == "" {
		return path, nil
	}
	return filepath.Join(u.HomeDir, rest), nil
}

// Discover searches every existing root recursively and returns the font
// files whose names end with one of extensions. Matching is case-sensitive.
//
// Symbolic links to directories are followed, including a root that is
// itself a link; each resolved directory is entered at most once per root.
// Names starting with "." are ignored and hidden directories are not
// entered. Missing roots and unreadable subdirectories are skipped with a
// debug log line.
//
// Paths are reported under the root they were found from. The result is
// deduplicated and sorted; it may be empty.
func Discover(roots, extensions []string) ([]string, error) {
	if len(extensions) == 0 {
		return nil, ErrNoExtensions
	}

	log := Logger()
	seen := make(map[string]struct{})

	for _, root := range roots {
		dir, err := ExpandHome(root)
		if err != nil {
			log.Debug("cannot expand search root", "root", root, "err", err)
			continue
		}
		dir = filepath.Clean(dir)

		resolved, err := filepath.EvalSymlinks(dir)
		if err != nil {
			log.Debug("search root missing", "root", dir, "err", err)
			continue
		}
		if info, err := os.Stat(resolved); err != nil || !info.IsDir() {
			log.Debug("search root missing", "root", dir)
			continue
		}

		w := fontWalker{
			extensions: extensions,
			found:      seen,
			visited:    make(map[string]struct{}),
		}
		w.walk(dir, resolved)
	}

	fonts := make([]string, 0, len(seen))
	for path := range seen {
		fonts = append(fonts, path)
	}
	slices.Sort(fonts)
	return fonts, nil
}

// fontWalker collects font files below one search root.
type fontWalker struct {
	extensions []string
	found      map[string]struct{}
	// visited holds resolved directory paths, so link cycles terminate.
	visited map[string]struct{}
}

// walk scans dir, whose symlink-free location is resolved.
func (w *fontWalker) walk(dir, resolved string) {
	if _, ok := w.visited[resolved]; ok {
		Logger().Debug("directory already searched", "path", dir, "target", resolved)
		return
	}
	w.visited[resolved] = struct{}{}

	entries, err := os.ReadDir(dir)
	if err != nil {
		Logger().Debug("skipping unreadable directory", "path", dir, "err", err)
		return
	}

	for _, e := range entries {
		name := e.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}
		path := filepath.Join(dir, name)

		if e.Type()&fs.ModeSymlink != 0 {
			info, err := os.Stat(path)
			if err == nil && info.IsDir() {
				target, err := filepath.EvalSymlinks(path)
				if err != nil {
					Logger().Debug("skipping unresolvable link", "path", path, "err", err)
					continue
				}
				w.walk(path, target)
				continue
			}
		} else if e.IsDir() {
			w.walk(path, filepath.Join(resolved, name))
			continue
		}

		if hasExtension(name, w.extensions) {
			w.found[path] = struct{}{}
		}
	}
}

// hasExtension reports whether name ends with any of extensions.
func hasExtension(name string, extensions []string) bool {
	for _, ext := range extensions {
		if ext != "" && strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}

// ResolveFonts looks up each name (a file name or part of one) in the
// platform font directories. Names that cannot be found are returned as
// errors alongside the paths that were.
func ResolveFonts(names []string) ([]string, []error) {
	var (
		paths []string
		errs  []error
	)
	for _, name := range names {
		path, err := findfont.Find(name)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		paths = append(paths, path)
	}
	return paths, errs
}

// MergeFonts unions font path lists, dropping duplicates, and sorts the result.
func MergeFonts(lists ...[]string) []string {
	var out []string
	for _, l := range lists {
		for _, p := range l {
			out = append(out, filepath.Clean(p))
		}
	}
	slices.Sort(out)
	return slices.Compact(out)
}
