// Package attach stages local files as task attachments. Only file metadata
// is collected; contents are never read or uploaded.
package attach

import (
	"errors"
	"fmt"
	"mime"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"
)

// imagePattern matches the file names accepted by the image picker. Names are
// lowercased before matching.
const imagePattern = "*.{png,jpg,jpeg,gif,webp,bmp,svg,heic,tif,tiff,avif}"

const defaultMediaType = "application/octet-stream"

var (
	// ErrIsDirectory is returned when a single-file pick resolves to a directory.
	ErrIsDirectory = errors.New("path is a directory")
	// ErrNotDirectory is returned when a directory pick resolves to a file.
	ErrNotDirectory = errors.New("path is not a directory")
)

// File is a reference to a local file selected by the user.
type File struct {
	Name      string
	Path      string
	Size      int64
	MediaType string
	ModTime   time.Time
}

// IsImage reports whether the file looks like an image based on its name.
func (f File) IsImage() bool {
	ok, _ := doublestar.Match(imagePattern, strings.ToLower(f.Name))
	return ok
}

// Stat builds a File for a single path. A leading ~ is expanded to the home
// directory and relative paths are resolved against the working directory.
func Stat(p string) (File, error) {
	abs, err := resolve(p)
	if err != nil {
		return File{}, err
	}

	info, err := os.Stat(abs)
	if err != nil {
		return File{}, fmt.Errorf("stat %s: %w", p, err)
	}
	if info.IsDir() {
		return File{}, fmt.Errorf("%s: %w", p, ErrIsDirectory)
	}

	return File{
		Name:      info.Name(),
		Path:      abs,
		Size:      info.Size(),
		MediaType: mediaType(info.Name()),
		ModTime:   info.ModTime(),
	}, nil
}

// Files picks individual files. Every path must exist and be a regular file.
func Files(paths ...string) ([]File, error) {
	files := make([]File, 0, len(paths))
	for _, p := range paths {
		f, err := Stat(p)
		if err != nil {
			return nil, err
		}
		files = append(files, f)
	}
	return files, nil
}

// Directory picks every file below dir, recursively, in lexical order.
func Directory(dir string) ([]File, error) {
	return glob(dir, "**", nil)
}

// Images picks the image files directly inside dir.
func Images(dir string) ([]File, error) {
	return glob(dir, "*", func(name string) bool {
		ok, _ := doublestar.Match(imagePattern, strings.ToLower(name))
		return ok
	})
}

// ParsePaths splits pasted picker input into individual paths. Entries are
// separated by commas or newlines; surrounding quotes added by terminals on
// drag-and-drop are removed.
func ParsePaths(input string) []string {
	parts := strings.FieldsFunc(input, func(r rune) bool {
		return r == ',' || r == '\n'
	})

	paths := make([]string, 0, len(parts))
	for _, part := range parts {
		p := strings.TrimSpace(part)
		p = strings.Trim(p, "\"'")
		if p != "" {
			paths = append(paths, p)
		}
	}
	return paths
}

func glob(dir, pattern string, keep func(name string) bool) ([]File, error) {
	root, err := resolve(dir)
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s: %w", dir, ErrNotDirectory)
	}

	matches, err := doublestar.Glob(os.DirFS(root), pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("glob %s: %w", dir, err)
	}
	slices.Sort(matches)

	files := make([]File, 0, len(matches))
	for _, m := range matches {
		if keep != nil && !keep(path.Base(m)) {
			continue
		}

		f, err := Stat(filepath.Join(root, filepath.FromSlash(m)))
		if errors.Is(err, ErrIsDirectory) {
			// symlinked directories pass the files-only filter
			continue
		}
		if err != nil {
			return nil, err
		}
		files = append(files, f)
	}
	return files, nil
}

func resolve(p string) (string, error) {
	p = strings.TrimSpace(p)
	if p == "" {
		return "", errors.New("empty path")
	}

	if p == "~" || strings.HasPrefix(p, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("expand home: %w", err)
		}
		p = filepath.Join(home, strings.TrimPrefix(p, "~"))
	}

	abs, err := filepath.Abs(p)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", p, err)
	}
	return abs, nil
}

func mediaType(name string) string {
	t := mime.TypeByExtension(strings.ToLower(filepath.Ext(name)))
	if t == "" {
		return defaultMediaType
	}
	// drop parameters such as "; charset=utf-8"
	if i := strings.IndexByte(t, ';'); i >= 0 {
		t = strings.TrimSpace(t[:i])
	}
	return t
}
