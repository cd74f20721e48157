package iojson

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type doc struct {
	Title string `json:"title"`
}

func TestWrite(t *testing.T) {
	var out, errOut bytes.Buffer
	require.NoError(t, Write(&out, &errOut, doc{Title: "Essay"}))
	assert.JSONEq(t, `{"title":"Essay"}`, out.String())
	assert.Empty(t, errOut.String())

	out.Reset()
	err := Write(&out, &errOut, map[string]any{"bad": func() {}})
	require.Error(t, err)
	assert.Empty(t, out.String())
	assert.Contains(t, errOut.String(), "json_error")
}

func TestWriteError(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, WriteError(&out, "create task failed", map[string]any{"status": 500}))
	assert.JSONEq(t, `{"message":"create task failed","data":{"status":500}}`, out.String())
}

func TestFileReader(t *testing.T) {
	t.Run("not provided", func(t *testing.T) {
		var fr FileReader[doc]
		assert.False(t, fr.Provided())
		_, err := fr.Read()
		require.Error(t, err)
	})

	t.Run("file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "in.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"title":"Essay"}`), 0o644))

		fr := FileReader[doc]{path: path}
		got, err := fr.Read()
		require.NoError(t, err)
		assert.Equal(t, "Essay", got.Title)
	})

	t.Run("stdin", func(t *testing.T) {
		fr := FileReader[doc]{path: "-", stdin: strings.NewReader(`{"title":"Lab"}`)}
		got, err := fr.Read()
		require.NoError(t, err)
		assert.Equal(t, "Lab", got.Title)
	})

	t.Run("unknown fields rejected", func(t *testing.T) {
		fr := FileReader[doc]{path: "-", stdin: strings.NewReader(`{"titel":"typo"}`)}
		_, err := fr.Read()
		require.Error(t, err)
	})

	t.Run("flag binds path", func(t *testing.T) {
		var fr FileReader[doc]
		flag := fr.Flag()
		assert.Equal(t, "file", flag.Name)
		*flag.Destination = "x.json"
		assert.True(t, fr.Provided())
	})
}
