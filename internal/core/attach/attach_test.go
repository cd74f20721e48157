package attach

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func names(files []File) []string {
	out := make([]string, len(files))
	for i, f := range files {
		out[i] = f.Name
	}
	return out
}

func TestStat(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "notes.png"), "12345")

	t.Run("regular file", func(t *testing.T) {
		f, err := Stat(filepath.Join(dir, "notes.png"))
		require.NoError(t, err)
		assert.Equal(t, "notes.png", f.Name)
		assert.Equal(t, int64(5), f.Size)
		assert.Equal(t, "image/png", f.MediaType)
		assert.True(t, filepath.IsAbs(f.Path))
		assert.False(t, f.ModTime.IsZero())
	})

	t.Run("unknown extension falls back to octet-stream", func(t *testing.T) {
		writeFile(t, filepath.Join(dir, "blob.zzz"), "x")
		f, err := Stat(filepath.Join(dir, "blob.zzz"))
		require.NoError(t, err)
		assert.Equal(t, defaultMediaType, f.MediaType)
	})

	t.Run("directory is rejected", func(t *testing.T) {
		_, err := Stat(dir)
		require.ErrorIs(t, err, ErrIsDirectory)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Stat(filepath.Join(dir, "missing.txt"))
		require.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("empty path", func(t *testing.T) {
		_, err := Stat("  ")
		require.Error(t, err)
	})
}

func TestFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.pdf"), "a")
	writeFile(t, filepath.Join(dir, "b.pdf"), "bb")

	t.Run("keeps argument order", func(t *testing.T) {
		files, err := Files(filepath.Join(dir, "b.pdf"), filepath.Join(dir, "a.pdf"))
		require.NoError(t, err)
		assert.Equal(t, []string{"b.pdf", "a.pdf"}, names(files))
	})

	t.Run("duplicates are kept", func(t *testing.T) {
		p := filepath.Join(dir, "a.pdf")
		files, err := Files(p, p)
		require.NoError(t, err)
		assert.Len(t, files, 2)
	})

	t.Run("fails on first missing path", func(t *testing.T) {
		_, err := Files(filepath.Join(dir, "a.pdf"), filepath.Join(dir, "nope.pdf"))
		require.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestDirectory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "b.txt"), "b")
	writeFile(t, filepath.Join(dir, "a.txt"), "a")
	writeFile(t, filepath.Join(dir, "sub", "c.png"), "c")
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "empty"), 0o755))

	files, err := Directory(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"a.txt", "b.txt", "c.png"}, names(files))

	t.Run("file is rejected", func(t *testing.T) {
		_, err := Directory(filepath.Join(dir, "a.txt"))
		require.ErrorIs(t, err, ErrNotDirectory)
	})
}

func TestImages(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "photo.JPG"), "1")
	writeFile(t, filepath.Join(dir, "diagram.svg"), "2")
	writeFile(t, filepath.Join(dir, "essay.docx"), "3")
	writeFile(t, filepath.Join(dir, "nested", "deep.png"), "4")

	files, err := Images(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"diagram.svg", "photo.JPG"}, names(files))
	for _, f := range files {
		assert.True(t, f.IsImage(), f.Name)
	}
}

func TestParsePaths(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty", "", []string{}},
		{"single", "/tmp/a.txt", []string{"/tmp/a.txt"}},
		{"comma separated", "/tmp/a.txt, /tmp/b.txt", []string{"/tmp/a.txt", "/tmp/b.txt"}},
		{"newline separated", "/tmp/a.txt\n/tmp/b.txt\n", []string{"/tmp/a.txt", "/tmp/b.txt"}},
		{"quoted drag and drop", `'/tmp/my file.txt'`, []string{"/tmp/my file.txt"}},
		{"blank entries skipped", " , ,/tmp/a.txt", []string{"/tmp/a.txt"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParsePaths(tt.input))
		})
	}
}
